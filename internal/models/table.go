package models

import (
	"fmt"
	"strconv"
	"strings"
)

// Table is the tabular result of a query: the projected column names and the
// scanned rows. A NULL column value is stored as nil.
type Table struct {
	Columns []string `json:"columns"`
	Rows    [][]any  `json:"rows"`
}

// Empty reports whether the table holds no rows.
func (t Table) Empty() bool {
	return len(t.Rows) == 0
}

// Len returns the number of rows.
func (t Table) Len() int {
	return len(t.Rows)
}

// ColumnIndex returns the position of the named column, matched
// case-insensitively, or -1.
func (t Table) ColumnIndex(name string) int {
	for i, col := range t.Columns {
		if strings.EqualFold(col, name) {
			return i
		}
	}
	return -1
}

// Value returns the value at row/column, or nil when either is out of range.
func (t Table) Value(row int, column string) any {
	idx := t.ColumnIndex(column)
	if idx < 0 || row < 0 || row >= len(t.Rows) || idx >= len(t.Rows[row]) {
		return nil
	}
	return t.Rows[row][idx]
}

// String returns the value at row/column formatted as text. NULL becomes "".
func (t Table) String(row int, column string) string {
	return AsString(t.Value(row, column))
}

// Float returns the value at row/column as a float64. Non-numeric values
// yield 0 and false.
func (t Table) Float(row int, column string) (float64, bool) {
	return AsFloat(t.Value(row, column))
}

// AsString formats a scanned column value for display.
func AsString(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case []byte:
		return string(val)
	case fmt.Stringer:
		return val.String()
	default:
		return fmt.Sprint(val)
	}
}

// AsFloat converts a scanned numeric column value. NUMERIC columns arrive
// from the drivers as text, so strings are parsed as well.
func AsFloat(v any) (float64, bool) {
	switch val := v.(type) {
	case float64:
		return val, true
	case float32:
		return float64(val), true
	case int64:
		return float64(val), true
	case int32:
		return float64(val), true
	case int:
		return float64(val), true
	case []byte:
		return parseFloat(string(val))
	case string:
		return parseFloat(val)
	default:
		return 0, false
	}
}

func parseFloat(s string) (float64, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

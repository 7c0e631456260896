package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/haguru/raikiri/internal/interfaces"
	"github.com/haguru/raikiri/internal/models"
	"github.com/haguru/raikiri/pkg/helper"
)

// DefaultQueryTimeout bounds a single statement when none is configured.
const DefaultQueryTimeout = 10 * time.Second

// Executor runs dashboard queries over a fresh connection per call.
type Executor struct {
	Connector    interfaces.Connector
	Logger       interfaces.Logger
	QueryTimeout time.Duration
}

// NewExecutor creates a new Executor instance.
func NewExecutor(connector interfaces.Connector, logger interfaces.Logger, queryTimeout time.Duration) interfaces.QueryExecutor {
	if queryTimeout <= 0 {
		queryTimeout = DefaultQueryTimeout
	}
	return &Executor{
		Connector:    connector,
		Logger:       logger,
		QueryTimeout: queryTimeout,
	}
}

// Execute runs query with bound args. Failures are logged, reported once to
// notifier and turned into an empty table.
func (e *Executor) Execute(ctx context.Context, notifier interfaces.Notifier, query string, args ...any) models.Table {
	funcName := helper.GetFuncName()

	table, err := e.query(ctx, query, args...)
	if err != nil {
		classified := Classify(err)
		e.Logger.Error(ErrMsgQueryFailed, "func", funcName, "kind", Kind(classified), "error", classified)
		if notifier != nil {
			notifier.Notify(UserMessage(classified))
		}
		return models.Table{}
	}

	e.Logger.Debug("Query executed", "func", funcName, "rows", table.Len())
	return table
}

func (e *Executor) query(ctx context.Context, query string, args ...any) (models.Table, error) {
	db, err := e.Connector.Open(ctx)
	if err != nil {
		return models.Table{}, err
	}
	defer func() {
		if cerr := db.Close(); cerr != nil {
			e.Logger.Warn(ErrMsgCloseFailed, "error", cerr)
		}
	}()

	queryCtx, cancel := context.WithTimeout(ctx, e.QueryTimeout)
	defer cancel()

	rows, err := db.QueryContext(queryCtx, query, args...)
	if err != nil {
		return models.Table{}, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			e.Logger.Warn(ErrMsgCloseRowsFailed, "error", cerr)
		}
	}()

	return scanTable(rows)
}

// scanTable reads every row into a Table. Byte slices are converted to
// strings so NUMERIC and text columns look the same for both drivers.
func scanTable(rows *sql.Rows) (models.Table, error) {
	columns, err := rows.Columns()
	if err != nil {
		return models.Table{}, err
	}

	table := models.Table{Columns: columns}
	for rows.Next() {
		columnValues := make([]any, len(columns))
		columnPointers := make([]any, len(columns))
		for i := range columns {
			columnPointers[i] = &columnValues[i]
		}

		if err := rows.Scan(columnPointers...); err != nil {
			return models.Table{}, err
		}

		for i, val := range columnValues {
			if b, ok := val.([]byte); ok {
				columnValues[i] = string(b)
			}
		}
		table.Rows = append(table.Rows, columnValues)
	}

	if err := rows.Err(); err != nil {
		return models.Table{}, err
	}
	return table, nil
}

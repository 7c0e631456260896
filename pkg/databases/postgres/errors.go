package postgres

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

var (
	// ErrConnectivity covers missing connections, unreachable hosts, bad
	// credentials and timeouts.
	ErrConnectivity = errors.New("database unreachable")
	// ErrConstraint is an integrity constraint violation (SQLSTATE class 23).
	ErrConstraint = errors.New("constraint violation")
	// ErrNotFound means a single-row lookup matched nothing.
	ErrNotFound = errors.New("record not found")
	// ErrQuery is any other statement failure.
	ErrQuery = errors.New("query failed")
)

const (
	uniqueViolation       = "23505"
	integrityClass        = "23"
	connectionClass       = "08"
	invalidAuthClass      = "28"
	invalidCatalogName    = "3D000"
	cannotConnectNowState = "57P03"
)

// Messages shown to end users for each error kind.
const (
	MsgConnectivity = "Error connecting to the database. Please try again later."
	MsgNotFound     = "No matching data was found."
	MsgQuery        = "This report could not be loaded."
)

// SQLState extracts the SQLSTATE code from a lib/pq or pgx error, or "".
func SQLState(err error) string {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// IsUniqueViolation reports whether err is a duplicate-key error from either driver.
func IsUniqueViolation(err error) bool {
	return SQLState(err) == uniqueViolation
}

// Classify wraps err with the sentinel matching its kind. Errors that
// already carry a sentinel are returned unchanged.
func Classify(err error) error {
	if err == nil {
		return nil
	}
	for _, known := range []error{ErrConnectivity, ErrConstraint, ErrNotFound, ErrQuery} {
		if errors.Is(err, known) {
			return err
		}
	}

	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	}
	if errors.Is(err, driver.ErrBadConn) || errors.Is(err, sql.ErrConnDone) ||
		errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %w", ErrConnectivity, err)
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return fmt.Errorf("%w: %w", ErrConnectivity, err)
	}

	state := SQLState(err)
	switch {
	case strings.HasPrefix(state, integrityClass):
		return fmt.Errorf("%w: %w", ErrConstraint, err)
	case strings.HasPrefix(state, connectionClass), strings.HasPrefix(state, invalidAuthClass),
		state == invalidCatalogName, state == cannotConnectNowState:
		return fmt.Errorf("%w: %w", ErrConnectivity, err)
	}

	return fmt.Errorf("%w: %w", ErrQuery, err)
}

// UserMessage maps an error to the text shown in the view. Driver details
// stay in the logs.
func UserMessage(err error) string {
	switch {
	case errors.Is(err, ErrConnectivity):
		return MsgConnectivity
	case errors.Is(err, ErrNotFound):
		return MsgNotFound
	default:
		return MsgQuery
	}
}

// Kind returns a short label for logs and metrics.
func Kind(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrConnectivity):
		return "connectivity"
	case errors.Is(err, ErrConstraint):
		return "constraint"
	case errors.Is(err, ErrNotFound):
		return "not_found"
	default:
		return "query"
	}
}

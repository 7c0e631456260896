package interfaces

import (
	"context"
	"database/sql"

	"github.com/haguru/raikiri/internal/models"
)

// Connector hands out short-lived database handles.
// Every handle returned by Open must be closed by the caller before it returns.
type Connector interface {
	// Open establishes a fresh connection and checks that it is alive.
	// Connectivity failures are reported as errors, never as panics.
	Open(ctx context.Context) (*sql.DB, error)
}

// Notifier receives user-facing messages raised while a view is built.
type Notifier interface {
	Notify(message string)
}

// QueryExecutor runs read queries for the dashboard.
type QueryExecutor interface {
	// Execute runs query with the given bound arguments and returns its rows.
	// On any failure it logs the cause, sends exactly one message to notifier
	// and returns an empty table. It never returns an error.
	Execute(ctx context.Context, notifier Notifier, query string, args ...any) models.Table
}

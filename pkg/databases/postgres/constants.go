package postgres

const (
	// Log messages for database operations
	ErrMsgQueryFailed     = "query failed"
	ErrMsgCloseFailed     = "failed to close database connection"
	ErrMsgCloseRowsFailed = "failed to close rows"
	ErrMsgMigrationFailed = "failed to run migrations"
)

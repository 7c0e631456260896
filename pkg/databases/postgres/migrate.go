package postgres

import (
	"context"
	"database/sql"
	"embed"
	"fmt"

	"github.com/haguru/raikiri/internal/interfaces"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var Migrations embed.FS

const migrationsDir = "migrations"

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// gooseLogger routes goose output through the service logger.
type gooseLogger struct {
	logger interfaces.Logger
}

func (g gooseLogger) Printf(format string, v ...interface{}) {
	g.logger.Info(fmt.Sprintf(format, v...), "component", "goose")
}

func (g gooseLogger) Fatalf(format string, v ...interface{}) {
	g.logger.Error(fmt.Sprintf(format, v...), "component", "goose")
}

// RunMigrations applies the embedded migrations over a short-lived connection.
func RunMigrations(ctx context.Context, connector interfaces.Connector, logger interfaces.Logger) error {
	db, err := connector.Open(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgMigrationFailed, err)
	}
	defer func() {
		if cerr := db.Close(); cerr != nil {
			logger.Warn(ErrMsgCloseFailed, "error", cerr)
		}
	}()

	goose.SetBaseFS(Migrations)
	goose.SetLogger(gooseLogger{logger: logger})
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgMigrationFailed, err)
	}

	if err := gooseUpContext(ctx, db, migrationsDir); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgMigrationFailed, err)
	}

	logger.Info("Migrations applied")
	return nil
}

package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/haguru/raikiri/internal/interfaces"
	"github.com/haguru/raikiri/internal/models"
	"github.com/haguru/raikiri/internal/userrepo/constants"
	"github.com/haguru/raikiri/pkg/databases/postgres"
)

// This is a safe use of fmt.Sprintf for SQL query construction, as the table and column names are constants and not user input.
var (
	insertUserQuery = fmt.Sprintf("INSERT INTO %s (%s, %s) VALUES ($1, $2)",
		constants.UsersTable, constants.UsernameColumn, constants.PasswordColumn) // #nosec G201
	selectUserQuery = fmt.Sprintf("SELECT %s, %s FROM %s WHERE %s = $1 LIMIT 1",
		constants.UsernameColumn, constants.PasswordColumn, constants.UsersTable, constants.UsernameColumn) // #nosec G201
)

// PostgresUserRepository implements UserRepository over short-lived connections.
type PostgresUserRepository struct {
	connector interfaces.Connector
}

// NewPostgresUserRepository creates a new PostgreSQL repository instance.
func NewPostgresUserRepository(connector interfaces.Connector) (interfaces.UserRepository, error) {
	if connector == nil {
		return nil, fmt.Errorf("connector cannot be nil")
	}
	return &PostgresUserRepository{connector: connector}, nil
}

// AddUser inserts a new user. A duplicate username yields ErrUsernameTaken
// wrapped together with postgres.ErrConstraint.
func (r *PostgresUserRepository) AddUser(ctx context.Context, user models.User) (err error) {
	db, err := r.connector.Open(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := db.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%s: %w", postgres.ErrMsgCloseFailed, cerr)
		}
	}()

	_, err = db.ExecContext(ctx, insertUserQuery, user.Username, user.HashedPassword)
	if err != nil {
		if postgres.IsUniqueViolation(err) {
			return fmt.Errorf("%w: %w", constants.ErrDuplicateUsername, postgres.Classify(err))
		}
		return fmt.Errorf("failed to add user to PostgreSQL: %w", postgres.Classify(err))
	}
	return nil
}

// GetUserByUsername looks a user up by name. A missing user yields
// postgres.ErrNotFound.
func (r *PostgresUserRepository) GetUserByUsername(ctx context.Context, username string) (user *models.User, err error) {
	db, err := r.connector.Open(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := db.Close(); cerr != nil && err == nil {
			user, err = nil, fmt.Errorf("%s: %w", postgres.ErrMsgCloseFailed, cerr)
		}
	}()

	found := &models.User{}
	err = db.QueryRowContext(ctx, selectUserQuery, username).Scan(&found.Username, &found.HashedPassword)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, postgres.Classify(err)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user by username from PostgreSQL: %w", postgres.Classify(err))
	}
	return found, nil
}

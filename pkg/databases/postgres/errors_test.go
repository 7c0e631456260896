package postgres

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		want     error
		wantKind string
	}{
		{name: "no rows", err: sql.ErrNoRows, want: ErrNotFound, wantKind: "not_found"},
		{name: "bad conn", err: driver.ErrBadConn, want: ErrConnectivity, wantKind: "connectivity"},
		{name: "deadline", err: fmt.Errorf("ping: %w", context.DeadlineExceeded), want: ErrConnectivity, wantKind: "connectivity"},
		{name: "pq unique violation", err: &pq.Error{Code: "23505"}, want: ErrConstraint, wantKind: "constraint"},
		{name: "pgx not null violation", err: &pgconn.PgError{Code: "23502"}, want: ErrConstraint, wantKind: "constraint"},
		{name: "pq auth failure", err: &pq.Error{Code: "28P01"}, want: ErrConnectivity, wantKind: "connectivity"},
		{name: "pgx unknown database", err: &pgconn.PgError{Code: "3D000"}, want: ErrConnectivity, wantKind: "connectivity"},
		{name: "syntax error", err: &pq.Error{Code: "42601"}, want: ErrQuery, wantKind: "query"},
		{name: "plain error", err: errors.New("boom"), want: ErrQuery, wantKind: "query"},
		{name: "already classified", err: fmt.Errorf("%w: x", ErrConnectivity), want: ErrConnectivity, wantKind: "connectivity"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.err)
			assert.ErrorIs(t, got, tt.want)
			assert.ErrorIs(t, got, tt.err)
			assert.Equal(t, tt.wantKind, Kind(got))
		})
	}

	assert.NoError(t, Classify(nil))
	assert.Equal(t, "ok", Kind(nil))
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, IsUniqueViolation(&pq.Error{Code: "23505"}))
	assert.True(t, IsUniqueViolation(fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"})))
	assert.False(t, IsUniqueViolation(&pq.Error{Code: "23503"}))
	assert.False(t, IsUniqueViolation(errors.New("23505")))
}

func TestUserMessage(t *testing.T) {
	assert.Equal(t, MsgConnectivity, UserMessage(Classify(driver.ErrBadConn)))
	assert.Equal(t, MsgNotFound, UserMessage(Classify(sql.ErrNoRows)))
	assert.Equal(t, MsgQuery, UserMessage(Classify(errors.New("boom"))))
}

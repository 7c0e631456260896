package postgres

import (
	"context"
	"database/sql"
	"io"

	zlog "github.com/haguru/raikiri/pkg/zerolog"
)

var testLogger = zlog.NewLogger(io.Discard, "raikiri-test")

type stubConnector struct {
	db    *sql.DB
	err   error
	opens int
}

func (s *stubConnector) Open(ctx context.Context) (*sql.DB, error) {
	s.opens++
	if s.err != nil {
		return nil, s.err
	}
	return s.db, nil
}

type recordingNotifier struct {
	messages []string
}

func (n *recordingNotifier) Notify(message string) {
	n.messages = append(n.messages, message)
}

// Package session implements the two-state authentication gate of the
// dashboard. A Session is created per browser and passed explicitly to
// every view; nothing about it is stored in process-wide state.
package session

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// State is the authentication state of a browsing session.
type State int

const (
	Unauthenticated State = iota
	Authenticated
)

func (s State) String() string {
	switch s {
	case Authenticated:
		return "authenticated"
	default:
		return "unauthenticated"
	}
}

var ErrInvalidTransition = errors.New("invalid session transition")

// Session is the per-browser authentication context.
type Session struct {
	ID       string
	State    State
	Username string
}

// New returns a fresh Unauthenticated session.
func New() *Session {
	return &Session{ID: uuid.NewString(), State: Unauthenticated}
}

// Authenticated reports whether the session has signed in.
func (s *Session) Authenticated() bool {
	return s != nil && s.State == Authenticated
}

// signIn moves Unauthenticated to Authenticated.
func (s *Session) signIn(username string) error {
	if s.State != Unauthenticated {
		return ErrInvalidTransition
	}
	if username == "" {
		return errors.New("username is required to sign in")
	}
	s.State = Authenticated
	s.Username = username
	return nil
}

// signOut moves Authenticated back to Unauthenticated and drops every
// piece of authenticated data.
func (s *Session) signOut() error {
	if s.State != Authenticated {
		return ErrInvalidTransition
	}
	*s = *New()
	return nil
}

type contextKey struct{}

// WithSession stores s in ctx.
func WithSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, contextKey{}, s)
}

// Lookup returns the session stored in ctx, if any.
func Lookup(ctx context.Context) (*Session, bool) {
	s, ok := ctx.Value(contextKey{}).(*Session)
	return s, ok && s != nil
}

// FromContext returns the session stored in ctx, or a fresh Unauthenticated one.
func FromContext(ctx context.Context) *Session {
	if s, ok := Lookup(ctx); ok {
		return s
	}
	return New()
}

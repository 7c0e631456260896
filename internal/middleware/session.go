package middleware

import (
	"net/http"

	"github.com/haguru/raikiri/internal/session"
)

// SessionLoader loads sessions from requests.
type SessionLoader interface {
	Load(r *http.Request) *session.Session
}

// SessionMiddleware attaches the request's session to its context.
func SessionMiddleware(loader SessionLoader) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			s := loader.Load(r)
			next.ServeHTTP(w, r.WithContext(session.WithSession(r.Context(), s)))
		})
	}
}

// Chain wraps h with middlewares, the first one outermost.
func Chain(h http.Handler, middlewares ...func(http.Handler) http.Handler) http.Handler {
	for i := len(middlewares) - 1; i >= 0; i-- {
		h = middlewares[i](h)
	}
	return h
}

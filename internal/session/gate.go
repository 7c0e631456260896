package session

import (
	"crypto/ecdsa"
	"fmt"
	"net/http"
	"time"

	"github.com/haguru/raikiri/internal/auth"
	"github.com/haguru/raikiri/internal/interfaces"
	"github.com/haguru/raikiri/pkg/helper"
)

// CookieName is the cookie carrying the signed session token.
const CookieName = "raikiri_session"

// Gate loads sessions from requests and performs the state transitions,
// keeping the signed cookie in step with the Session.
type Gate struct {
	privateKey *ecdsa.PrivateKey
	ttl        time.Duration
	secure     bool
	logger     interfaces.Logger
	revoked    *revocations
}

// NewGate creates a new Gate instance.
func NewGate(privateKey *ecdsa.PrivateKey, ttl time.Duration, secure bool, logger interfaces.Logger) *Gate {
	if ttl <= 0 {
		ttl = auth.DefaultTTL
	}
	return &Gate{
		privateKey: privateKey,
		ttl:        ttl,
		secure:     secure,
		logger:     logger,
		revoked:    newRevocations(),
	}
}

// Load returns the session for r. A missing, expired, tampered or signed-out
// cookie yields a fresh Unauthenticated session.
func (g *Gate) Load(r *http.Request) *Session {
	cookie, err := r.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return New()
	}

	claims, err := auth.VerifyToken(cookie.Value, &g.privateKey.PublicKey)
	if err != nil {
		g.logger.Debug("Discarding session cookie", "func", helper.GetFuncName(), "error", err)
		return New()
	}

	if claims.SessionID == "" || g.revoked.revoked(claims.SessionID) {
		g.logger.Debug("Discarding signed-out session cookie", "func", helper.GetFuncName())
		return New()
	}

	s := &Session{ID: claims.SessionID, State: Unauthenticated}
	if err := s.signIn(claims.Username); err != nil {
		return New()
	}
	return s
}

// SignIn authenticates s as username and issues the session cookie.
func (g *Gate) SignIn(w http.ResponseWriter, s *Session, username string) error {
	if err := s.signIn(username); err != nil {
		return err
	}

	token, err := auth.CreateToken(s.ID, username, g.privateKey, g.ttl)
	if err != nil {
		*s = *New()
		return fmt.Errorf("failed to generate session token: %w", err)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(g.ttl / time.Second),
		HttpOnly: true,
		Secure:   g.secure,
		SameSite: http.SameSiteLaxMode,
	})
	g.logger.Info("Session signed in", "session", s.ID, "user", username)
	return nil
}

// SignOut returns s to Unauthenticated, expires the session cookie and
// rejects its token for the rest of its lifetime.
func (g *Gate) SignOut(w http.ResponseWriter, s *Session) error {
	previous := s.ID
	if err := s.signOut(); err != nil {
		return err
	}
	g.revoked.revoke(previous, time.Now().Add(g.ttl))

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   g.secure,
		SameSite: http.SameSiteLaxMode,
	})
	g.logger.Info("Session signed out", "session", previous)
	return nil
}

// Package services holds the business logic behind the HTTP handlers.
// File: services/auth_service.go
package services

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-contrib/sessions"

	"go-clan-admin/logger"
	"go-clan-admin/models"
)

const (
	// SessionCookieName is the cookie that carries the admin session.
	SessionCookieName = "admin_session"
	// SessionSentinel is the token value of a logged-in session.
	SessionSentinel = "admin_logged_in"

	sessionTokenKey   = "token"
	sessionExpiresKey = "expiresAt"
)

// ErrInvalidCredentials is returned for any failed login, including empty input.
var ErrInvalidCredentials = errors.New("invalid credentials")

// SessionAuthority validates credentials and issues, checks and clears the
// admin session.
type SessionAuthority struct {
	verifier CredentialVerifier
	admin    models.AdminIdentity
	ttl      time.Duration
	secure   bool
	now      func() time.Time
}

// NewSessionAuthority creates an authority for the single admin identity.
// secure marks the cookie Secure and should be set in production.
func NewSessionAuthority(verifier CredentialVerifier, admin models.AdminIdentity, ttl time.Duration, secure bool) *SessionAuthority {
	return &SessionAuthority{
		verifier: verifier,
		admin:    admin,
		ttl:      ttl,
		secure:   secure,
		now:      time.Now,
	}
}

// SetClock replaces the time source; used by tests to age sessions.
func (a *SessionAuthority) SetClock(now func() time.Time) {
	a.now = now
}

// Admin returns a copy of the configured admin identity.
func (a *SessionAuthority) Admin() *models.AdminIdentity {
	admin := a.admin
	admin.Roles = append([]string(nil), a.admin.Roles...)
	return &admin
}

// Authenticate checks email and password against the verifier.
func (a *SessionAuthority) Authenticate(email, password string) (*models.AdminIdentity, error) {
	if email == "" || password == "" || !a.verifier.Verify(email, password) {
		return nil, ErrInvalidCredentials
	}
	return a.Admin(), nil
}

// SessionOptions are the cookie attributes of a live session.
func (a *SessionAuthority) SessionOptions() sessions.Options {
	return sessions.Options{
		Path:     "/",
		MaxAge:   int(a.ttl.Seconds()),
		HttpOnly: true,
		Secure:   a.secure,
		SameSite: http.SameSiteLaxMode,
	}
}

// IssueSession marks session as logged in until now + TTL and saves it.
func (a *SessionAuthority) IssueSession(session sessions.Session) error {
	session.Set(sessionTokenKey, SessionSentinel)
	session.Set(sessionExpiresKey, a.now().Add(a.ttl).Unix())
	session.Options(a.SessionOptions())
	if err := session.Save(); err != nil {
		logger.Error.Printf("IssueSession - failed to save session: %v", err)
		return err
	}
	return nil
}

// InvalidateSession clears the session and expires the cookie. Calling it
// without a session is harmless.
func (a *SessionAuthority) InvalidateSession(session sessions.Session) error {
	session.Clear()
	opts := a.SessionOptions()
	opts.MaxAge = -1
	session.Options(opts)
	return session.Save()
}

// IsValidSession reports whether session holds the sentinel and has not expired.
func (a *SessionAuthority) IsValidSession(session sessions.Session) bool {
	token, ok := session.Get(sessionTokenKey).(string)
	if !ok || token != SessionSentinel {
		return false
	}
	expiresAt, ok := session.Get(sessionExpiresKey).(int64)
	if !ok {
		return false
	}
	return a.now().Unix() < expiresAt
}

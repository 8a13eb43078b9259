package auth

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"time"

	"leadhub/internal"
	"leadhub/internal/config"
	"leadhub/internal/errors"
	"leadhub/ports"
)

// Service gates access behind the shared password. A successful login
// mints a random token persisted with a server-side expiry; there is no
// per-user identity and no process-global "logged in" flag.
type Service struct {
	config   config.AuthConfig
	sessions ports.SessionRepository
	logger   *internal.Logger
}

// NewService creates the auth service.
func NewService(cfg config.AuthConfig, sessions ports.SessionRepository) *Service {
	return &Service{
		config:   cfg,
		sessions: sessions,
		logger:   internal.NewLogger("Auth"),
	}
}

// Login checks the shared password and creates a session. The error for
// a wrong password is deliberately generic.
func (s *Service) Login(ctx context.Context, password string) (*ports.Session, error) {
	if subtle.ConstantTimeCompare([]byte(password), []byte(s.config.AccessPassword)) != 1 {
		s.logger.Warn("Login rejected: incorrect password")
		return nil, errors.Unauthorized("incorrect password")
	}

	token, err := generateToken()
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate session token")
	}

	now := time.Now()
	session := &ports.Session{
		Token:     token,
		CreatedAt: now,
		ExpiresAt: now.Add(s.config.SessionTTL),
	}
	if err := s.sessions.CreateSession(ctx, session); err != nil {
		return nil, errors.Wrap(err, "failed to persist session")
	}

	s.logger.Info("Login accepted, session expires %s", session.ExpiresAt.Format(time.RFC3339))
	return session, nil
}

// Validate reports whether the token belongs to a live session.
func (s *Service) Validate(ctx context.Context, token string) bool {
	if token == "" {
		return false
	}
	session, err := s.sessions.GetSession(ctx, token)
	if err != nil || session == nil {
		return false
	}
	if time.Now().After(session.ExpiresAt) {
		// Lazy cleanup; DeleteExpired handles the rest periodically.
		_ = s.sessions.DeleteSession(ctx, token)
		return false
	}
	return true
}

// Logout deletes the session server-side.
func (s *Service) Logout(ctx context.Context, token string) {
	if token == "" {
		return
	}
	if err := s.sessions.DeleteSession(ctx, token); err != nil {
		s.logger.Warn("Failed to delete session: %v", err)
	}
}

// CookieName returns the configured session cookie name.
func (s *Service) CookieName() string {
	return s.config.CookieName
}

// SessionTTL returns the configured session lifetime.
func (s *Service) SessionTTL() time.Duration {
	return s.config.SessionTTL
}

func generateToken() (string, error) {
	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return "", err
	}
	return hex.EncodeToString(raw), nil
}

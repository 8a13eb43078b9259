package ports

import (
	"context"
	"time"
)

// Session is one authenticated login: a random token with a server-side
// expiry. There is no per-user identity; access is gated by the shared
// password and each login gets its own token.
type Session struct {
	Token     string    `db:"token"`
	CreatedAt time.Time `db:"created_at"`
	ExpiresAt time.Time `db:"expires_at"`
}

// SessionRepository stores login sessions.
type SessionRepository interface {
	CreateSession(ctx context.Context, session *Session) error
	GetSession(ctx context.Context, token string) (*Session, error)
	DeleteSession(ctx context.Context, token string) error
	DeleteExpired(ctx context.Context) error
}

package postgres

import (
	"context"
	"database/sql"

	"leadhub/ports"

	"github.com/jmoiron/sqlx"
)

// SessionRepositoryImpl implements SessionRepository for PostgreSQL.
type SessionRepositoryImpl struct {
	db *sqlx.DB
}

// NewSessionRepository creates a new PostgreSQL session repository.
func NewSessionRepository(db *sqlx.DB) ports.SessionRepository {
	return &SessionRepositoryImpl{db: db}
}

// CreateSession inserts a new login session.
func (r *SessionRepositoryImpl) CreateSession(ctx context.Context, session *ports.Session) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO sessions (token, created_at, expires_at)
		VALUES ($1, $2, $3)
	`, session.Token, session.CreatedAt, session.ExpiresAt)
	return err
}

// GetSession loads a session by token, or nil when it doesn't exist.
func (r *SessionRepositoryImpl) GetSession(ctx context.Context, token string) (*ports.Session, error) {
	var session ports.Session
	err := r.db.GetContext(ctx, &session, `
		SELECT token, created_at, expires_at
		FROM sessions
		WHERE token = $1
	`, token)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &session, nil
}

// DeleteSession removes a session.
func (r *SessionRepositoryImpl) DeleteSession(ctx context.Context, token string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM sessions WHERE token = $1`, token)
	return err
}

// DeleteExpired removes all sessions past their expiry.
func (r *SessionRepositoryImpl) DeleteExpired(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM sessions WHERE expires_at < NOW()`)
	return err
}

package auth

import (
	"context"
	"sync"
	"time"

	"leadhub/ports"
)

// MemorySessionRepository keeps sessions in process memory, for running
// without a database. Sessions die with the process, which matches how
// the tool is actually operated on a laptop.
type MemorySessionRepository struct {
	mu       sync.RWMutex
	sessions map[string]ports.Session
}

// NewMemorySessionRepository creates an empty in-memory store.
func NewMemorySessionRepository() *MemorySessionRepository {
	return &MemorySessionRepository{sessions: make(map[string]ports.Session)}
}

var _ ports.SessionRepository = (*MemorySessionRepository)(nil)

func (r *MemorySessionRepository) CreateSession(ctx context.Context, session *ports.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[session.Token] = *session
	return nil
}

func (r *MemorySessionRepository) GetSession(ctx context.Context, token string) (*ports.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	session, ok := r.sessions[token]
	if !ok {
		return nil, nil
	}
	return &session, nil
}

func (r *MemorySessionRepository) DeleteSession(ctx context.Context, token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, token)
	return nil
}

func (r *MemorySessionRepository) DeleteExpired(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now()
	for token, session := range r.sessions {
		if now.After(session.ExpiresAt) {
			delete(r.sessions, token)
		}
	}
	return nil
}

package auth

import (
	"context"
	"testing"
	"time"

	"leadhub/internal/config"
	"leadhub/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(ttl time.Duration) (*Service, *MemorySessionRepository) {
	store := NewMemorySessionRepository()
	cfg := config.AuthConfig{
		AccessPassword: "hunter2",
		SessionTTL:     ttl,
		CookieName:     "leadhub_session",
	}
	return NewService(cfg, store), store
}

func TestLoginCorrectPassword(t *testing.T) {
	service, _ := newTestService(time.Hour)
	ctx := context.Background()

	session, err := service.Login(ctx, "hunter2")
	require.NoError(t, err)
	assert.Len(t, session.Token, 64, "token should be 32 random bytes hex-encoded")
	assert.True(t, service.Validate(ctx, session.Token))
}

func TestLoginWrongPassword(t *testing.T) {
	service, _ := newTestService(time.Hour)

	_, err := service.Login(context.Background(), "guess")
	require.Error(t, err)
	assert.Equal(t, "incorrect password", err.Error())
}

func TestValidateExpiredSession(t *testing.T) {
	service, store := newTestService(-time.Minute)
	ctx := context.Background()

	session, err := service.Login(ctx, "hunter2")
	require.NoError(t, err)

	assert.False(t, service.Validate(ctx, session.Token))

	// Expired sessions are deleted on validation.
	got, err := store.GetSession(ctx, session.Token)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestLogout(t *testing.T) {
	service, _ := newTestService(time.Hour)
	ctx := context.Background()

	session, err := service.Login(ctx, "hunter2")
	require.NoError(t, err)

	service.Logout(ctx, session.Token)
	assert.False(t, service.Validate(ctx, session.Token))
}

func TestMemoryStoreDeleteExpired(t *testing.T) {
	store := NewMemorySessionRepository()
	ctx := context.Background()

	require.NoError(t, store.CreateSession(ctx, &ports.Session{
		Token: "live", ExpiresAt: time.Now().Add(time.Hour),
	}))
	require.NoError(t, store.CreateSession(ctx, &ports.Session{
		Token: "dead", ExpiresAt: time.Now().Add(-time.Hour),
	}))

	require.NoError(t, store.DeleteExpired(ctx))

	live, _ := store.GetSession(ctx, "live")
	dead, _ := store.GetSession(ctx, "dead")
	assert.NotNil(t, live)
	assert.Nil(t, dead)
}

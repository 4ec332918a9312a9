package redis

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IHARC/stevi-portal/internal/domain/access"
	"github.com/IHARC/stevi-portal/internal/testutil"
)

// setupTestRedis creates a Redis client for testing.
// Tests will be skipped if Redis is not available.
func setupTestRedis(t *testing.T) *redis.Client {
	t.Helper()
	return testutil.SetupTestRedis(t)
}

func TestSessionStore_SaveAndGet(t *testing.T) {
	client := setupTestRedis(t)
	defer client.Close()

	store := NewSessionStore(client)
	ctx := context.Background()

	session := access.Session{
		ID:        "test-session-1",
		UserID:    "ident-123",
		Email:     "user@example.org",
		ExpiresAt: time.Now().Add(30 * time.Minute),
	}

	require.NoError(t, store.Save(ctx, session))

	retrieved, err := store.Get(ctx, "test-session-1")
	require.NoError(t, err)
	assert.Equal(t, session.ID, retrieved.ID)
	assert.Equal(t, session.UserID, retrieved.UserID)
	assert.Equal(t, session.Email, retrieved.Email)
	assert.WithinDuration(t, session.ExpiresAt, retrieved.ExpiresAt, time.Second)
}

func TestSessionStore_SaveRejectsEmptyID(t *testing.T) {
	client := setupTestRedis(t)
	defer client.Close()

	store := NewSessionStore(client)
	err := store.Save(context.Background(), access.Session{ExpiresAt: time.Now().Add(time.Hour)})
	require.Error(t, err)
}

func TestSessionStore_SaveRejectsExpiredSession(t *testing.T) {
	client := setupTestRedis(t)
	defer client.Close()

	store := NewSessionStore(client)
	err := store.Save(context.Background(), access.Session{
		ID:        "expired-session",
		ExpiresAt: time.Now().Add(-time.Minute),
	})
	require.Error(t, err)
}

func TestSessionStore_GetMissing(t *testing.T) {
	client := setupTestRedis(t)
	defer client.Close()

	store := NewSessionStore(client)
	_, err := store.Get(context.Background(), "nope")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestSessionStore_Delete(t *testing.T) {
	client := setupTestRedis(t)
	defer client.Close()

	store := NewSessionStore(client)
	ctx := context.Background()

	session := access.Session{ID: "delete-me", ExpiresAt: time.Now().Add(time.Hour)}
	require.NoError(t, store.Save(ctx, session))
	require.NoError(t, store.Delete(ctx, session.ID))

	_, err := store.Get(ctx, session.ID)
	require.ErrorIs(t, err, ErrNotFound)

	// Deleting an unknown or empty ID is a no-op.
	require.NoError(t, store.Delete(ctx, "missing"))
	require.NoError(t, store.Delete(ctx, ""))
}

func TestSessionStore_CustomPrefix(t *testing.T) {
	client := setupTestRedis(t)
	defer client.Close()

	store := NewSessionStoreWithPrefix(client, "portal-session:")
	ctx := context.Background()

	session := access.Session{ID: "prefixed", ExpiresAt: time.Now().Add(time.Hour)}
	require.NoError(t, store.Save(ctx, session))

	exists, err := client.Exists(ctx, "portal-session:prefixed").Result()
	require.NoError(t, err)
	assert.Equal(t, int64(1), exists)
}

package infrastructure

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fashion-advisor/backend/internal/features/settings/domain"
)

// ==========================
// Test Helper Functions
// ==========================

func setupRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

// exerciseStore runs the behaviour every Store implementation shares.
func exerciseStore(t *testing.T, store Store) {
	t.Helper()
	ctx := context.Background()

	_, err := store.Get(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	require.NoError(t, store.Set(ctx, domain.CredentialKey, "sk-1"))
	got, err := store.Get(ctx, domain.CredentialKey)
	require.NoError(t, err)
	assert.Equal(t, "sk-1", got)

	require.NoError(t, store.Set(ctx, domain.CredentialKey, "sk-2"))
	got, err = store.Get(ctx, domain.CredentialKey)
	require.NoError(t, err)
	assert.Equal(t, "sk-2", got)
}

// ==========================
// Implementations
// ==========================

func TestMemoryStore(t *testing.T) {
	exerciseStore(t, NewMemoryStore())
}

func TestFileStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "settings.json")
	store, err := NewFileStore(path)
	require.NoError(t, err)

	exerciseStore(t, store)

	reopened, err := NewFileStore(path)
	require.NoError(t, err)
	got, err := reopened.Get(context.Background(), domain.CredentialKey)
	require.NoError(t, err)
	assert.Equal(t, "sk-2", got)
}

func TestFileStore_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	store, err := NewFileStore(path)
	require.NoError(t, err)

	_, err = store.Get(context.Background(), domain.PromptSettingsKey)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrNotFound)
}

func TestRedisStore(t *testing.T) {
	mr, client := setupRedis(t)
	store := NewRedisStore(client, "test:")

	exerciseStore(t, store)

	raw, err := mr.Get("test:" + domain.CredentialKey)
	require.NoError(t, err)
	assert.Equal(t, "sk-2", raw)
}

func TestRedisStore_ConnectionFailure(t *testing.T) {
	mr, client := setupRedis(t)
	store := NewRedisStore(client, "")
	mr.Close()

	_, err := store.Get(context.Background(), domain.PromptSettingsKey)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrNotFound)
}

package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kravdojo/gym-api/internal/db"
)

func exerciseKV(t *testing.T, kv KV) {
	t.Helper()
	ctx := context.Background()

	_, ok, err := kv.Get(ctx, "auth-storage")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, kv.Set(ctx, "auth-storage", `{"token":"a"}`))
	v, ok, err := kv.Get(ctx, "auth-storage")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `{"token":"a"}`, v)

	require.NoError(t, kv.Set(ctx, "auth-storage", `{"token":"b"}`))
	v, _, err = kv.Get(ctx, "auth-storage")
	require.NoError(t, err)
	assert.Equal(t, `{"token":"b"}`, v)

	require.NoError(t, kv.Delete(ctx, "auth-storage"))
	_, ok, err = kv.Get(ctx, "auth-storage")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, kv.Delete(ctx, "auth-storage"))
}

func TestMemory(t *testing.T) {
	exerciseKV(t, NewMemory())
}

func TestSQLite(t *testing.T) {
	gdb, err := db.OpenSQLite(filepath.Join(t.TempDir(), "session.db"))
	require.NoError(t, err)

	kv, err := NewSQLite(gdb)
	require.NoError(t, err)
	exerciseKV(t, kv)
}

func TestSQLiteSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "session.db")

	gdb, err := db.OpenSQLite(path)
	require.NoError(t, err)
	kv, err := NewSQLite(gdb)
	require.NoError(t, err)
	require.NoError(t, kv.Set(ctx, "auth-storage", "persisted"))
	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	gdb, err = db.OpenSQLite(path)
	require.NoError(t, err)
	kv, err = NewSQLite(gdb)
	require.NoError(t, err)
	v, ok, err := kv.Get(ctx, "auth-storage")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "persisted", v)
}

func TestRedis(t *testing.T) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set")
	}
	client := redis.NewClient(&redis.Options{Addr: addr})
	defer client.Close()

	exerciseKV(t, NewRedis(client, "gym-test:"))
}

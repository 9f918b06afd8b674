package store_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Spok95/techvault/internal/infra/db"
	"github.com/Spok95/techvault/internal/store"
)

func openSQLite(t *testing.T) *store.SQLite {
	t.Helper()
	sqlDB, err := db.OpenSQLite(filepath.Join(t.TempDir(), "data", "techvault.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, db.MigrateSQLite(sqlDB))
	return store.NewSQLite(sqlDB)
}

func TestSQLiteGetPut(t *testing.T) {
	kv := openSQLite(t)
	ctx := context.Background()

	_, err := kv.Get(ctx, store.KeyCables)
	assert.ErrorIs(t, err, store.ErrNoValue)

	require.NoError(t, kv.Put(ctx, store.KeyCables, []byte(`[{"id":1}]`)))
	require.NoError(t, kv.Put(ctx, store.KeyCables, []byte(`[{"id":2}]`)))
	raw, err := kv.Get(ctx, store.KeyCables)
	require.NoError(t, err)
	assert.Equal(t, `[{"id":2}]`, string(raw))
}

type item struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func (i item) RecordID() int64 { return i.ID }

func TestSQLiteCollection(t *testing.T) {
	kv := openSQLite(t)
	ctx := context.Background()
	c := store.NewCollection(kv, store.KeyHardware, func() []item {
		return []item{{1, "a"}, {2, "b"}, {3, "c"}}
	})
	require.NoError(t, c.Delete(ctx, 2))

	// новая коллекция поверх той же базы видит изменения
	again := store.NewCollection[item](kv, store.KeyHardware, nil)
	got, err := again.LoadAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []item{{1, "a"}, {3, "c"}}, got)
}

func TestPostgres(t *testing.T) {
	dsn := os.Getenv("APP_TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("APP_TEST_POSTGRES_DSN not set")
	}
	ctx := context.Background()
	require.NoError(t, db.MigratePostgres(dsn))
	pool, err := db.Connect(ctx, dsn)
	require.NoError(t, err)
	defer pool.Close()

	kv := store.NewPostgres(pool)
	require.NoError(t, kv.Put(ctx, "test_items", []byte(`[{"id":1,"name":"x"}]`)))
	raw, err := kv.Get(ctx, "test_items")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":1,"name":"x"}]`, string(raw))

	_, err = kv.Get(ctx, "test_missing")
	assert.ErrorIs(t, err, store.ErrNoValue)
}

package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ebenezerdon/lunasleep-sleep-tracker/internal"
)

func nopLogger() internal.Logger {
	return internal.NewZapLogger(zap.NewNop().Sugar())
}

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "sleep_logs.json")
	store, err := NewFileStore(path, nopLogger())
	require.NoError(t, err)
	ctx := context.Background()

	_, ok, err := store.Read(ctx)
	assert.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Write(ctx, []byte(`[{"id":"a"}]`)))
	data, ok, err := store.Read(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.JSONEq(t, `[{"id":"a"}]`, string(data))

	// No temp file left behind after an atomic write.
	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err))

	require.NoError(t, store.Delete(ctx))
	_, ok, err = store.Read(ctx)
	assert.NoError(t, err)
	assert.False(t, ok)

	// Deleting an absent key is not an error.
	assert.NoError(t, store.Delete(ctx))
}

func TestSQLiteStoreRoundTrip(t *testing.T) {
	store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "lunasleep.db"), nopLogger())
	require.NoError(t, err)
	defer store.Close()
	ctx := context.Background()

	_, ok, err := store.Read(ctx)
	assert.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Write(ctx, []byte(`[1,2,3]`)))
	require.NoError(t, store.Write(ctx, []byte(`[4]`))) // upsert, not insert
	data, ok, err := store.Read(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[4]`, string(data))

	require.NoError(t, store.Delete(ctx))
	_, ok, err = store.Read(ctx)
	assert.NoError(t, err)
	assert.False(t, ok)
}

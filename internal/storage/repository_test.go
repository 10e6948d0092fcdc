package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ebenezerdon/lunasleep-sleep-tracker/internal"
)

func newTestRepo(t *testing.T) (*LogRepository, *FileStore) {
	t.Helper()
	logger := internal.NewZapLogger(zap.NewNop().Sugar())
	store, err := NewFileStore(filepath.Join(t.TempDir(), "sleep_logs.json"), logger)
	require.NoError(t, err)
	return NewLogRepository(store, logger), store
}

func TestLoadAbsent(t *testing.T) {
	repo, _ := newTestRepo(t)
	logs, err := repo.Load(context.Background())
	assert.NoError(t, err)
	assert.Empty(t, logs)
	assert.NotNil(t, logs)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	in := []internal.LogEntry{
		{ID: "a", Date: "2025-06-03", Bedtime: "23:10", Waketime: "07:05", Quality: 4, Notes: "Felt rested."},
		{ID: "b", Date: "2025-06-02", Bedtime: "00:15", Waketime: "08:00", Quality: 3.5},
	}
	require.NoError(t, repo.Save(ctx, in))

	out, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestDurationNeverPersisted(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	in := []internal.LogEntry{
		{ID: "a", Date: "2025-06-03", Bedtime: "23:10", Waketime: "07:05", Quality: 4, DurationMinutes: 999},
	}
	require.NoError(t, repo.Save(ctx, in))

	out, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, out[0].DurationMinutes)
}

func TestLoadDegradesOnGarbage(t *testing.T) {
	repo, store := newTestRepo(t)
	ctx := context.Background()

	for _, payload := range []string{"not json at all", `{"id":"a"}`, `42`} {
		require.NoError(t, store.Write(ctx, []byte(payload)))
		logs, err := repo.Load(ctx)
		assert.NoError(t, err, payload)
		assert.Empty(t, logs, payload)
	}
}

func TestClear(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, []internal.LogEntry{{ID: "a", Quality: 3}}))
	require.NoError(t, repo.Clear(ctx))

	logs, err := repo.Load(ctx)
	assert.NoError(t, err)
	assert.Empty(t, logs)

	// Clearing an already-empty store is fine.
	assert.NoError(t, repo.Clear(ctx))
}

func TestImportRejectsNonArray(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	existing := []internal.LogEntry{{ID: "keep", Date: "2025-06-03", Quality: 4}}
	require.NoError(t, repo.Save(ctx, existing))

	for _, payload := range []string{"not an array", "{}", `{"a":[1,2]}`, "true"} {
		n, err := repo.Import(ctx, []byte(payload))
		assert.ErrorIs(t, err, ErrInvalidFormat, payload)
		assert.Zero(t, n)
	}

	// A rejected import leaves the stored collection untouched.
	logs, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, existing, logs)
}

func TestImportNormalizesPartialRecords(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	payload := `[
		{"date":"2025-06-03","bedtime":"23:10","waketime":"07:05","quality":4,"notes":"ok"},
		{"id":"given","quality":"not-a-number"},
		{}
	]`
	n, err := repo.Import(ctx, []byte(payload))
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	logs, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Len(t, logs, 3)

	assert.NotEmpty(t, logs[0].ID) // generated
	assert.Equal(t, 4.0, logs[0].Quality)
	assert.Equal(t, "ok", logs[0].Notes)

	assert.Equal(t, "given", logs[1].ID)
	assert.Equal(t, 3.0, logs[1].Quality) // non-numeric quality defaults to 3

	assert.NotEmpty(t, logs[2].ID)
	assert.Equal(t, "", logs[2].Date)
	assert.Equal(t, "", logs[2].Bedtime)
	assert.Equal(t, "", logs[2].Waketime)
	assert.Equal(t, 3.0, logs[2].Quality)
}

func TestImportIsFullReplace(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, []internal.LogEntry{{ID: "old", Quality: 3}}))
	_, err := repo.Import(ctx, []byte(`[{"id":"new","quality":5}]`))
	require.NoError(t, err)

	logs, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, "new", logs[0].ID)
}

func TestExportImportRoundTrip(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	in := []internal.LogEntry{
		{ID: "a", Date: "2025-06-03", Bedtime: "23:10", Waketime: "07:05", Quality: 4, Notes: "Felt rested."},
		{ID: "b", Date: "2025-06-02", Bedtime: "00:15", Waketime: "08:00", Quality: 3},
	}
	require.NoError(t, repo.Save(ctx, in))

	data, err := repo.Export(ctx)
	require.NoError(t, err)

	n, err := repo.Import(ctx, data)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	out, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

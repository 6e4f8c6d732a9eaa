package transcript

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codelens/internal/domain/analysis"
)

var testSuggestion = analysis.Suggestion{
	Original:    "def foo(): pass",
	Suggested:   "def foo():\n    return None",
	Explanation: "explicit return",
}

func openTestSQLite(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := OpenSQLite(filepath.Join(t.TempDir(), "transcript.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSQLiteStoreLoadEmpty(t *testing.T) {
	store := openTestSQLite(t)

	msgs, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, msgs)
}

func TestSQLiteStoreAppendRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := openTestSQLite(t)

	first, err := store.Append(ctx, nil, testMessage("speed up rendering"))
	require.NoError(t, err)

	second, err := store.Append(ctx, first, testMessage("and collisions"))
	require.NoError(t, err)
	require.Len(t, second, 2)

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 2)
	assert.Equal(t, "speed up rendering", loaded[0].Content)
	assert.Equal(t, "and collisions", loaded[1].Content)
}

func TestSQLiteStoreClear(t *testing.T) {
	ctx := context.Background()
	store := openTestSQLite(t)

	_, err := store.Append(ctx, nil, testMessage("hello"))
	require.NoError(t, err)
	require.NoError(t, store.Clear(ctx))

	msgs, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, msgs)
}

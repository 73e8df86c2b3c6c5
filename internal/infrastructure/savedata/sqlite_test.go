package savedata

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestSQLite(t *testing.T) (*SQLiteStore, string) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "nested", "scores.db")
	store, err := OpenSQLite(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store, dbPath
}

func TestSQLiteStore_OpenCreatesFile(t *testing.T) {
	_, dbPath := openTestSQLite(t)

	_, err := os.Stat(dbPath)
	assert.NoError(t, err, "database file and parent directory are created")
}

func TestSQLiteStore(t *testing.T) {
	store, _ := openTestSQLite(t)
	testStoreContract(t, store)
}

func TestSQLiteStore_Persists(t *testing.T) {
	store, dbPath := openTestSQLite(t)

	_, err := store.Update("lvl1", 33.333, 2, 5)
	require.NoError(t, err)
	require.NoError(t, store.Close())

	reopened, err := OpenSQLite(dbPath)
	require.NoError(t, err)
	defer reopened.Close()

	r, err := reopened.Get("lvl1")
	require.NoError(t, err)
	require.True(t, r.HasTime())
	assert.Equal(t, 33.33, *r.BestTime)
	assert.Equal(t, 2, r.BestStars)
	assert.Equal(t, 5, r.TotalStars)
}

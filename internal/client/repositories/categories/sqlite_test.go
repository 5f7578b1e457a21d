package categories

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE kv (
  key   TEXT PRIMARY KEY,
  value BLOB NOT NULL
);`)
	require.NoError(t, err)
	return db
}

func rawValue(t *testing.T, db *sql.DB, key string) []byte {
	t.Helper()
	var v []byte
	err := db.QueryRow(`SELECT value FROM kv WHERE key=?`, key).Scan(&v)
	require.NoError(t, err)
	return v
}

func TestLoad_NoRow_ReturnsEmptyMap(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))

	m, err := r.Load(context.Background(), "user-1")
	require.NoError(t, err)
	require.NotNil(t, m)
	assert.Empty(t, m)
}

func TestAssign_UpsertsEntry(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Assign(ctx, "user-1", "docA", "1"))
	require.NoError(t, r.Assign(ctx, "user-1", "docA", "2")) // overwrite

	m, err := r.Load(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"docA": "2"}, m)
}

func TestClear_RemovesKeyEntirely(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, r.Assign(ctx, "user-1", "docA", "1"))
	require.NoError(t, r.Assign(ctx, "user-1", "docB", "2"))
	require.NoError(t, r.Clear(ctx, "user-1", "docA"))

	m, err := r.Load(ctx, "user-1")
	require.NoError(t, err)
	_, ok := m["docA"]
	assert.False(t, ok, "cleared entry must not survive a reload")
	assert.Equal(t, "2", m["docB"])

	// The stored JSON itself must not contain the cleared key either.
	var stored map[string]string
	require.NoError(t, json.Unmarshal(rawValue(t, db, "user-1-categories"), &stored))
	_, ok = stored["docA"]
	assert.False(t, ok)
}

func TestClear_UnknownDoc_NoError(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	require.NoError(t, r.Clear(context.Background(), "user-1", "missing"))
}

func TestLoad_IsolatedPerUser(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Assign(ctx, "user-1", "docA", "1"))

	m, err := r.Load(ctx, "user-2")
	require.NoError(t, err)
	assert.Empty(t, m)
}

func TestSave_OverwritesWholeMap(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Save(ctx, "user-1", map[string]string{"a": "1", "b": "2"}))
	require.NoError(t, r.Save(ctx, "user-1", map[string]string{"c": "3"}))

	m, err := r.Load(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"c": "3"}, m)
}

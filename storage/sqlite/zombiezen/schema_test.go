package zombiezen

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"zombiezen.com/go/sqlite/sqlitex"
)

func TestCreateDocTablesReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "arbre.db")

	store, pool, err := OpenDocStore(dbPath)
	require.NoError(t, err)
	_, err = store.Write(sampleDoc("first"))
	require.NoError(t, err)
	require.NoError(t, pool.Close())

	store, pool, err = OpenDocStore(dbPath)
	require.NoError(t, err)
	defer pool.Close()

	docs, err := store.List("")
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "first", docs[0].Title)

	conn, err := pool.Take(context.Background())
	require.NoError(t, err)
	defer pool.Put(conn)

	version, err := userVersion(conn)
	require.NoError(t, err)
	assert.Equal(t, schemaVersion, version)
}

func TestCreateDocTablesNewerSchema(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "arbre.db")

	pool, err := NewPool(dbPath)
	require.NoError(t, err)

	conn, err := pool.Take(context.Background())
	require.NoError(t, err)
	require.NoError(t, sqlitex.ExecuteTransient(conn, "PRAGMA user_version = 7;", nil))
	pool.Put(conn)
	require.NoError(t, pool.Close())

	_, _, err = OpenDocStore(dbPath)
	assert.EqualError(t, err, "database schema version 7 is newer than the supported 1")
}

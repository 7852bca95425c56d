package zombiezen

import (
	"fmt"
	"runtime"

	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"
)

// NewPool opens the SQLite database at dbPath, creating it if needed. Every
// connection enforces foreign keys.
func NewPool(dbPath string) (*sqlitex.Pool, error) {
	pool, err := sqlitex.NewPool("file:"+dbPath, sqlitex.PoolOptions{
		PoolSize: runtime.NumCPU(),
		PrepareConn: func(conn *sqlite.Conn) error {
			return sqlitex.ExecuteTransient(conn, "PRAGMA foreign_keys = ON;", nil)
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database %s: %w", dbPath, err)
	}

	return pool, nil
}

// OpenDocStore opens the database at dbPath and makes sure the document
// tables exist. The caller closes the returned pool.
func OpenDocStore(dbPath string) (*DocStore, *sqlitex.Pool, error) {
	pool, err := NewPool(dbPath)
	if err != nil {
		return nil, nil, err
	}

	if err := CreateDocTables(pool); err != nil {
		pool.Close()
		return nil, nil, err
	}

	return NewDocStore(pool), pool, nil
}

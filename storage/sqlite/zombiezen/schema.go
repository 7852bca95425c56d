package zombiezen

import (
	"context"
	"embed"
	"fmt"
	"path"

	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"
)

// schemaVersion is stored in PRAGMA user_version once the doc tables exist.
const schemaVersion = 1

//go:embed sql/*.sql
var sqlFiles embed.FS

// CreateDocTables creates the tables of the DocStore in a new database. A
// database written by a newer schema is rejected.
func CreateDocTables(pool *sqlitex.Pool) error {
	conn, err := pool.Take(context.TODO())
	if err != nil {
		return err
	}
	defer pool.Put(conn)

	version, err := userVersion(conn)
	if err != nil {
		return err
	}

	switch {
	case version == schemaVersion:
		return nil
	case version > schemaVersion:
		return fmt.Errorf("database schema version %d is newer than the supported %d", version, schemaVersion)
	}

	return execScript(conn, "docs.sql", schemaVersion)
}

func userVersion(conn *sqlite.Conn) (int, error) {
	version := 0
	err := sqlitex.ExecuteTransient(conn, "PRAGMA user_version;", &sqlitex.ExecOptions{
		ResultFunc: func(stmt *sqlite.Stmt) error {
			version = stmt.ColumnInt(0)
			return nil
		},
	})
	if err != nil {
		return 0, fmt.Errorf("failed to read schema version: %w", err)
	}

	return version, nil
}

// execScript runs an embedded script of the sql/ directory and records
// version, all in one transaction.
func execScript(conn *sqlite.Conn, name string, version int) (err error) {
	scriptPath := path.Join("sql", name)
	script, err := sqlFiles.ReadFile(scriptPath)
	if err != nil {
		return fmt.Errorf("failed to read embedded sql file %s: %w", scriptPath, err)
	}

	defer sqlitex.Save(conn)(&err)

	if err := sqlitex.ExecuteScript(conn, string(script), nil); err != nil {
		return fmt.Errorf("failed to execute script %s: %w", name, err)
	}

	// PRAGMA does not accept bound parameters
	if err := sqlitex.ExecuteTransient(conn, fmt.Sprintf("PRAGMA user_version = %d;", version), nil); err != nil {
		return fmt.Errorf("failed to set schema version: %w", err)
	}

	return nil
}

package repository

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite" // Pure Go SQLite driver - no CGO required
)

// OpenSQLite opens the SQLite inventory database read-only.
// dbPath is the path to the database file (e.g., "./data/inventory.db").
func OpenSQLite(dbPath string, pool PoolConfig) (*sql.DB, error) {
	dsn := fmt.Sprintf("file:%s?mode=ro&_pragma=busy_timeout(5000)", dbPath)
	return openDB("sqlite", dsn, pool)
}

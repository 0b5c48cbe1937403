package repository

import (
	"database/sql"

	_ "github.com/go-sql-driver/mysql"
)

// OpenMySQL opens a MySQL pool.
// dsn format: "user:password@tcp(host:port)/dbname"
func OpenMySQL(dsn string, pool PoolConfig) (*sql.DB, error) {
	return openDB("mysql", dsn, pool)
}

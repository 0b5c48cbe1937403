// Package sqlitetest provides an in-memory inventory database for tests.
package sqlitetest

import (
	"database/sql"
	"path/filepath"
	"testing"

	"jewelry-inventory-api/internal/model"

	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE inventory (
	id INTEGER PRIMARY KEY,
	name TEXT NOT NULL,
	category TEXT NOT NULL,
	metal TEXT NOT NULL,
	price REAL NOT NULL,
	stock INTEGER NOT NULL
);`

// Items returns five sample items. By price descending they rank
// 5, 4, 2, 1, 3; the gold ones priced at most 100 are 1 and 3.
func Items() []model.Item {
	return []model.Item{
		{ID: 1, Name: "Collar Heart", Category: "necklace", Metal: "gold", Price: 80, Stock: 2},
		{ID: 2, Name: "Collar History", Category: "necklace", Metal: "silver", Price: 150, Stock: 5},
		{ID: 3, Name: "Aros Berry", Category: "earrings", Metal: "gold", Price: 60, Stock: 10},
		{ID: 4, Name: "Aros Hook Blue", Category: "earrings", Metal: "gold", Price: 250, Stock: 4},
		{ID: 5, Name: "Anillo Wish", Category: "ring", Metal: "silver", Price: 300, Stock: 4},
	}
}

// New opens an in-memory database seeded with items (Items() when none are
// given). The pool is pinned to one connection so every query sees the
// same memory database.
func New(t testing.TB, items ...model.Item) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	seed(t, db, items)
	return db
}

// NewFile writes a seeded database file under t.TempDir and returns its path.
func NewFile(t testing.TB, items ...model.Item) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "inventory.db")
	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer db.Close()

	seed(t, db, items)
	return path
}

func seed(t testing.TB, db *sql.DB, items []model.Item) {
	t.Helper()

	_, err := db.Exec(schema)
	require.NoError(t, err)

	if len(items) == 0 {
		items = Items()
	}
	for _, it := range items {
		_, err := db.Exec(
			`INSERT INTO inventory (id, name, category, metal, price, stock) VALUES (?, ?, ?, ?, ?, ?)`,
			it.ID, it.Name, it.Category, it.Metal, it.Price, it.Stock,
		)
		require.NoError(t, err)
	}
}

// Exec runs a raw statement against db, failing the test on error.
func Exec(t testing.TB, db *sql.DB, stmt string, args ...any) {
	t.Helper()
	_, err := db.Exec(stmt, args...)
	require.NoError(t, err)
}

package repository

import (
	"context"
	"database/sql"

	"jewelry-inventory-api/internal/model"
	"jewelry-inventory-api/internal/query"
)

// Querier is the database capability the inventory reader depends on.
// *sql.DB satisfies it; its lifecycle belongs to the caller.
type Querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	PingContext(ctx context.Context) error
}

// InventoryRepository defines inventory read access.
type InventoryRepository interface {
	// FetchList runs a listing statement built by query.Builder.BuildList.
	FetchList(ctx context.Context, stmt query.Statement) ([]model.Item, error)

	// FetchFiltered runs a filter statement built by query.Builder.BuildFilter.
	FetchFiltered(ctx context.Context, stmt query.Statement) ([]model.Item, error)

	// FetchByID returns the item with the given id, or nil when it does not exist.
	FetchByID(ctx context.Context, id int64) (*model.Item, error)

	// Stats returns statistics about the inventory database.
	Stats(ctx context.Context) (map[string]interface{}, error)

	// Ping checks that the backend is reachable.
	Ping(ctx context.Context) error
}

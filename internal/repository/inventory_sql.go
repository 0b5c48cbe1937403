package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"jewelry-inventory-api/internal/model"
	"jewelry-inventory-api/internal/query"

	"go.uber.org/zap"
)

// PoolConfig holds connection pool settings shared by all SQL backends.
type PoolConfig struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

// DefaultPoolConfig returns pool settings suited to a read-heavy API.
func DefaultPoolConfig() PoolConfig {
	return PoolConfig{
		MaxOpenConns:    25,
		MaxIdleConns:    10,
		ConnMaxLifetime: 5 * time.Minute,
		ConnMaxIdleTime: 1 * time.Minute,
	}
}

// openDB opens a pool for driver, applies pool settings and pings it.
func openDB(driver, dsn string, pool PoolConfig) (*sql.DB, error) {
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", driver, err)
	}

	db.SetMaxOpenConns(pool.MaxOpenConns)
	db.SetMaxIdleConns(pool.MaxIdleConns)
	db.SetConnMaxLifetime(pool.ConnMaxLifetime)
	db.SetConnMaxIdleTime(pool.ConnMaxIdleTime)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping %s: %w", driver, err)
	}
	return db, nil
}

// SQLInventoryRepository implements InventoryRepository over database/sql.
// It works with every supported backend; only the placeholder dialect of
// the statements differs.
type SQLInventoryRepository struct {
	db      Querier
	builder *query.Builder
	logger  *zap.Logger
}

// NewSQLInventoryRepository creates a reader over an injected database handle.
func NewSQLInventoryRepository(db Querier, builder *query.Builder, logger *zap.Logger) *SQLInventoryRepository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SQLInventoryRepository{
		db:      db,
		builder: builder,
		logger:  logger.With(zap.String("component", "inventory_repository")),
	}
}

// FetchList runs a listing statement.
func (r *SQLInventoryRepository) FetchList(ctx context.Context, stmt query.Statement) ([]model.Item, error) {
	items, err := r.queryItems(ctx, stmt)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch inventory list: %w", err)
	}
	return items, nil
}

// FetchFiltered runs a filter statement.
func (r *SQLInventoryRepository) FetchFiltered(ctx context.Context, stmt query.Statement) ([]model.Item, error) {
	items, err := r.queryItems(ctx, stmt)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch filtered inventory: %w", err)
	}
	return items, nil
}

// FetchByID returns the item with the given id. A missing row yields
// (nil, nil).
func (r *SQLInventoryRepository) FetchByID(ctx context.Context, id int64) (*model.Item, error) {
	stmt := r.builder.BuildByID(id)

	item, err := scanItem(r.db.QueryRowContext(ctx, stmt.SQL, stmt.Args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get item %d: %w", id, err)
	}
	return &item, nil
}

// Stats returns the item count and, when available, connection pool stats.
func (r *SQLInventoryRepository) Stats(ctx context.Context) (map[string]interface{}, error) {
	stats := make(map[string]interface{})
	stats["dialect"] = r.builder.Dialect().String()

	count := r.builder.BuildCount()
	var total int64
	if err := r.db.QueryRowContext(ctx, count.SQL, count.Args...).Scan(&total); err != nil {
		return nil, fmt.Errorf("failed to count inventory: %w", err)
	}
	stats["total_items"] = total

	if s, ok := r.db.(interface{ Stats() sql.DBStats }); ok {
		dbStats := s.Stats()
		stats["connections"] = map[string]interface{}{
			"open":     dbStats.OpenConnections,
			"in_use":   dbStats.InUse,
			"idle":     dbStats.Idle,
			"max_open": dbStats.MaxOpenConnections,
		}
	}

	return stats, nil
}

// Ping checks that the backend is reachable.
func (r *SQLInventoryRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

func (r *SQLInventoryRepository) queryItems(ctx context.Context, stmt query.Statement) ([]model.Item, error) {
	r.logger.Debug("executing statement", zap.String("sql", stmt.SQL), zap.Int("args", len(stmt.Args)))

	rows, err := r.db.QueryContext(ctx, stmt.SQL, stmt.Args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Item, 0)
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

// scanItem maps one row. Stock scans into an integer, so a NULL or
// non-numeric stock value fails the whole read.
func scanItem(row rowScanner) (model.Item, error) {
	var item model.Item
	err := row.Scan(
		&item.ID,
		&item.Name,
		&item.Category,
		&item.Metal,
		&item.Price,
		&item.Stock,
	)
	return item, err
}

// Ensure SQLInventoryRepository implements InventoryRepository
var _ InventoryRepository = (*SQLInventoryRepository)(nil)

package query

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"jewelry-inventory-api/internal/model"
)

// Table is the inventory relation every statement reads from.
const Table = "inventory"

const selectColumns = "SELECT id, name, category, metal, price, stock FROM " + Table

// Statement is SQL text plus its positional bound arguments.
type Statement struct {
	SQL  string
	Args []any
}

// Builder turns validated request parameters into statements for one dialect.
type Builder struct {
	dialect Dialect
}

// NewBuilder creates a builder for the given dialect.
func NewBuilder(d Dialect) *Builder {
	return &Builder{dialect: d}
}

// Dialect returns the builder's dialect.
func (b *Builder) Dialect() Dialect {
	return b.dialect
}

// BuildList builds the paginated, ordered listing statement.
//
// Sort field and direction are checked against their allow-lists again here
// because they are the only tokens interpolated into the SQL text; limit and
// offset are always bound.
func (b *Builder) BuildList(q model.ListQuery) (Statement, error) {
	if err := validateSortField(q.SortField); err != nil {
		return Statement{}, err
	}
	direction := strings.ToUpper(q.SortDirection)
	if err := validateSortDirection(direction); err != nil {
		return Statement{}, err
	}
	if q.Limit < 1 {
		return Statement{}, invalid(ParamLimit, strconv.Itoa(q.Limit), "must be at least 1")
	}
	if q.Page < 1 {
		return Statement{}, invalid(ParamPage, strconv.Itoa(q.Page), "must be at least 1")
	}
	if q.Page-1 > math.MaxInt/q.Limit {
		return Statement{}, invalid(ParamPage, strconv.Itoa(q.Page), "offset out of range")
	}

	sql := fmt.Sprintf("%s ORDER BY %s %s LIMIT %s OFFSET %s",
		selectColumns, q.SortField, direction,
		b.dialect.Placeholder(1), b.dialect.Placeholder(2))

	return Statement{SQL: sql, Args: []any{q.Limit, q.Offset()}}, nil
}

// BuildFilter builds the unpaginated filter statement. Each present filter
// adds one predicate and one bound argument, in the order maxPrice,
// minPrice, category, metal. With no filters the WHERE clause is omitted.
func (b *Builder) BuildFilter(f model.FilterQuery) Statement {
	where := []string{}
	args := []any{}

	add := func(predicate string, value any) {
		args = append(args, value)
		where = append(where, predicate+" "+b.dialect.Placeholder(len(args)))
	}

	if f.MaxPrice != nil {
		add("price <=", *f.MaxPrice)
	}
	if f.MinPrice != nil {
		add("price >=", *f.MinPrice)
	}
	if f.Category != nil {
		add("category =", *f.Category)
	}
	if f.Metal != nil {
		add("metal =", *f.Metal)
	}

	sql := selectColumns
	if len(where) > 0 {
		sql += " WHERE " + strings.Join(where, " AND ")
	}
	sql += " ORDER BY id ASC"

	return Statement{SQL: sql, Args: args}
}

// BuildByID builds the single-row lookup by identifier.
func (b *Builder) BuildByID(id int64) Statement {
	return Statement{
		SQL:  selectColumns + " WHERE id = " + b.dialect.Placeholder(1),
		Args: []any{id},
	}
}

// BuildCount builds a row count over the whole relation.
func (b *Builder) BuildCount() Statement {
	return Statement{SQL: "SELECT COUNT(*) FROM " + Table}
}

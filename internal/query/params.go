package query

import (
	"math"
	"net/url"
	"strconv"
	"strings"

	"jewelry-inventory-api/internal/model"
)

// Query string parameter names.
const (
	ParamLimit    = "limits"
	ParamPage     = "page"
	ParamOrderBy  = "order_by"
	ParamMaxPrice = "maxPrice"
	ParamMinPrice = "minPrice"
	ParamCategory = "category"
	ParamMetal    = "metal"
)

// Listing defaults.
const (
	DefaultLimit    = 10
	DefaultPage     = 1
	DefaultSortSpec = "id_ASC"
)

// Sort directions.
const (
	Asc  = "ASC"
	Desc = "DESC"
)

// sortFields is the closed set of columns accepted in ORDER BY.
var sortFields = map[string]struct{}{
	"id":       {},
	"name":     {},
	"category": {},
	"metal":    {},
	"price":    {},
	"stock":    {},
}

// SortFields returns the accepted sort columns in display order.
func SortFields() []string {
	return []string{"id", "name", "category", "metal", "price", "stock"}
}

// ParseSortSpec splits a "<field>_<direction>" spec on its first underscore
// and validates both halves. Direction is matched case-insensitively and
// returned uppercased. An empty spec yields the default id ASC.
func ParseSortSpec(spec string) (field, direction string, err error) {
	if spec == "" {
		spec = DefaultSortSpec
	}

	field, direction, _ = strings.Cut(spec, "_")
	if err := validateSortField(field); err != nil {
		return "", "", err
	}

	direction = strings.ToUpper(direction)
	if err := validateSortDirection(direction); err != nil {
		return "", "", err
	}
	return field, direction, nil
}

func validateSortField(field string) error {
	if _, ok := sortFields[field]; !ok {
		return &ValidationError{
			Param:  ParamOrderBy,
			Value:  field,
			Reason: "unknown sort field",
			Err:    ErrInvalidSortSpec,
		}
	}
	return nil
}

func validateSortDirection(direction string) error {
	if direction != Asc && direction != Desc {
		return &ValidationError{
			Param:  ParamOrderBy,
			Value:  direction,
			Reason: "sort direction must be ASC or DESC",
			Err:    ErrInvalidSortSpec,
		}
	}
	return nil
}

// ParseListQuery reads limits, page and order_by, applying defaults for
// missing values.
func ParseListQuery(values url.Values) (model.ListQuery, error) {
	limit, err := positiveInt(values, ParamLimit, DefaultLimit)
	if err != nil {
		return model.ListQuery{}, err
	}

	page, err := positiveInt(values, ParamPage, DefaultPage)
	if err != nil {
		return model.ListQuery{}, err
	}

	field, direction, err := ParseSortSpec(values.Get(ParamOrderBy))
	if err != nil {
		return model.ListQuery{}, err
	}

	return model.ListQuery{
		Limit:         limit,
		Page:          page,
		SortField:     field,
		SortDirection: direction,
	}, nil
}

// ParseFilterQuery reads the optional filters. Empty values count as absent.
func ParseFilterQuery(values url.Values) (model.FilterQuery, error) {
	var f model.FilterQuery
	var err error

	if f.MaxPrice, err = optionalPrice(values, ParamMaxPrice); err != nil {
		return model.FilterQuery{}, err
	}
	if f.MinPrice, err = optionalPrice(values, ParamMinPrice); err != nil {
		return model.FilterQuery{}, err
	}
	f.Category = optionalString(values, ParamCategory)
	f.Metal = optionalString(values, ParamMetal)

	return f, nil
}

// ParseID validates an item identifier taken from the request path.
func ParseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, invalid("id", raw, "must be an integer")
	}
	return id, nil
}

func positiveInt(values url.Values, param string, def int) (int, error) {
	raw := values.Get(param)
	if raw == "" {
		return def, nil
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, invalid(param, raw, "must be an integer")
	}
	if n < 1 {
		return 0, invalid(param, raw, "must be at least 1")
	}
	return n, nil
}

func optionalPrice(values url.Values, param string) (*float64, error) {
	raw := strings.TrimSpace(values.Get(param))
	if raw == "" {
		return nil, nil
	}

	price, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(price) || math.IsInf(price, 0) {
		return nil, invalid(param, raw, "must be a number")
	}
	if price < 0 {
		return nil, invalid(param, raw, "must not be negative")
	}
	return &price, nil
}

func optionalString(values url.Values, param string) *string {
	v := values.Get(param)
	if v == "" {
		return nil
	}
	return &v
}

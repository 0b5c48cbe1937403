package model

// Item represents a single row of the inventory table.
type Item struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Metal    string  `json:"metal"`
	Price    float64 `json:"price"`
	Stock    int64   `json:"stock"`
}

// ListQuery holds validated pagination and sort settings for the listing.
type ListQuery struct {
	Limit         int
	Page          int
	SortField     string
	SortDirection string
}

// Offset returns the number of rows skipped before the requested page.
func (q ListQuery) Offset() int {
	return (q.Page - 1) * q.Limit
}

// FilterQuery holds the optional filters of the filter endpoint.
// A nil field means the filter is absent.
type FilterQuery struct {
	MaxPrice *float64
	MinPrice *float64
	Category *string
	Metal    *string
}

// Link points to a single item resource.
type Link struct {
	Name string `json:"name"`
	Href string `json:"href"`
}

// HateoasEnvelope is the listing response: summary fields plus links.
type HateoasEnvelope struct {
	TotalCount int    `json:"totalCount"`
	TotalStock int64  `json:"totalStock"`
	Results    []Link `json:"results"`
}

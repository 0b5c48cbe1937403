package handler

import (
	"net/http"
	"strings"

	"jewelry-inventory-api/internal/query"
	"jewelry-inventory-api/pkg/apierror"
	"jewelry-inventory-api/pkg/response"
)

// EndpointDoc describes one public endpoint.
type EndpointDoc struct {
	URL         string            `json:"url"`
	Method      string            `json:"method"`
	Description string            `json:"description"`
	Params      map[string]string `json:"params,omitempty"`
}

// IndexResponse is the static API description served at the root.
type IndexResponse struct {
	Message   string                 `json:"message"`
	Version   string                 `json:"version"`
	Endpoints map[string]EndpointDoc `json:"endpoints"`
}

// Index handles GET /
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	response.OK(w, IndexResponse{
		Message: "Jewelry store inventory API",
		Version: h.version,
		Endpoints: map[string]EndpointDoc{
			"items": {
				URL:         "/items",
				Method:      http.MethodGet,
				Description: "List items in HATEOAS format with pagination and ordering",
				Params: map[string]string{
					"limits":   "Items per page (default: 10)",
					"page":     "Page number, starting at 1 (default: 1)",
					"order_by": "Ordering as field_DIRECTION, field one of " + strings.Join(query.SortFields(), ", ") + " (e.g. stock_ASC, price_DESC)",
				},
			},
			"filters": {
				URL:         "/items/filters",
				Method:      http.MethodGet,
				Description: "Filter items by price range, category and metal",
				Params: map[string]string{
					"maxPrice": "Maximum price (inclusive)",
					"minPrice": "Minimum price (inclusive)",
					"category": "Category (e.g. necklace, earrings, ring)",
					"metal":    "Metal (e.g. gold, silver)",
				},
			},
			"item": {
				URL:         "/items/item/{id}",
				Method:      http.MethodGet,
				Description: "Get a single item by id",
			},
		},
	})
}

// NotFound handles every unmatched route, including a known path with the
// wrong method.
func NotFound(w http.ResponseWriter, r *http.Request) {
	response.Error(w, apierror.RouteNotFound(r.URL.RequestURI()))
}

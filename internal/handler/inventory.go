package handler

import (
	"context"
	"errors"
	"net/http"

	"jewelry-inventory-api/internal/metrics"
	"jewelry-inventory-api/internal/model"
	"jewelry-inventory-api/internal/query"
	"jewelry-inventory-api/pkg/apierror"
	"jewelry-inventory-api/pkg/response"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// InventoryService is the read side the inventory handler depends on.
type InventoryService interface {
	List(ctx context.Context, q model.ListQuery) (model.HateoasEnvelope, error)
	Filter(ctx context.Context, f model.FilterQuery) ([]model.Item, error)
	Get(ctx context.Context, id int64) (*model.Item, error)
}

// InventoryHandler handles inventory-related HTTP requests.
type InventoryHandler struct {
	inventoryService InventoryService
	logger           *zap.Logger
}

// NewInventoryHandler creates a new inventory handler.
func NewInventoryHandler(inventoryService InventoryService, logger *zap.Logger) *InventoryHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &InventoryHandler{
		inventoryService: inventoryService,
		logger:           logger.With(zap.String("component", "inventory_handler")),
	}
}

// ListItems handles GET /items
func (h *InventoryHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	q, err := query.ParseListQuery(r.URL.Query())
	if err != nil {
		h.invalidParams(w, err)
		return
	}

	envelope, err := h.inventoryService.List(r.Context(), q)
	if err != nil {
		if query.IsValidation(err) {
			h.invalidParams(w, err)
			return
		}
		h.backendError(w, r, "Failed to fetch items", err)
		return
	}

	response.OK(w, envelope)
}

// FilterItems handles GET /items/filters
func (h *InventoryHandler) FilterItems(w http.ResponseWriter, r *http.Request) {
	f, err := query.ParseFilterQuery(r.URL.Query())
	if err != nil {
		h.invalidParams(w, err)
		return
	}

	items, err := h.inventoryService.Filter(r.Context(), f)
	if err != nil {
		h.backendError(w, r, "Failed to filter items", err)
		return
	}

	response.OK(w, items)
}

// GetItem handles GET /items/item/{id}
func (h *InventoryHandler) GetItem(w http.ResponseWriter, r *http.Request) {
	rawID := chi.URLParam(r, "id")

	id, err := query.ParseID(rawID)
	if err != nil {
		h.invalidParams(w, err)
		return
	}

	item, err := h.inventoryService.Get(r.Context(), id)
	if err != nil {
		h.backendError(w, r, "Failed to fetch item", err)
		return
	}
	if item == nil {
		response.Error(w, apierror.NotFound("Item not found", rawID))
		return
	}

	response.OK(w, item)
}

func (h *InventoryHandler) invalidParams(w http.ResponseWriter, err error) {
	var verr *query.ValidationError
	if errors.As(err, &verr) {
		metrics.ValidationRejections.WithLabelValues(verr.Param).Inc()
	}
	response.Error(w, apierror.BadRequest("Invalid query parameters", err.Error()))
}

func (h *InventoryHandler) backendError(w http.ResponseWriter, r *http.Request, message string, err error) {
	h.logger.Error(message,
		zap.String("path", r.URL.Path),
		zap.String("request_id", requestID(r)),
		zap.Error(err),
	)
	response.Error(w, apierror.InternalError(message, err.Error()))
}

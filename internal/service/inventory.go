package service

import (
	"context"

	"jewelry-inventory-api/internal/hateoas"
	"jewelry-inventory-api/internal/model"
	"jewelry-inventory-api/internal/query"
	"jewelry-inventory-api/internal/repository"
)

// InventoryService handles inventory read logic: build the statement,
// fetch the rows, shape the response.
type InventoryService struct {
	inventoryRepo repository.InventoryRepository
	builder       *query.Builder
}

// NewInventoryService creates a new inventory service.
// Returns nil if inventoryRepo is nil (required dependency).
func NewInventoryService(inventoryRepo repository.InventoryRepository, builder *query.Builder) *InventoryService {
	if inventoryRepo == nil || builder == nil {
		return nil
	}
	return &InventoryService{
		inventoryRepo: inventoryRepo,
		builder:       builder,
	}
}

// List returns one page of items wrapped in the HATEOAS envelope.
// Validation errors are returned before anything is sent to the backend.
func (s *InventoryService) List(ctx context.Context, q model.ListQuery) (model.HateoasEnvelope, error) {
	stmt, err := s.builder.BuildList(q)
	if err != nil {
		return model.HateoasEnvelope{}, err
	}

	items, err := s.inventoryRepo.FetchList(ctx, stmt)
	if err != nil {
		return model.HateoasEnvelope{}, err
	}

	return hateoas.ToHateoas(items)
}

// Filter returns every item matching the present filters, unpaginated.
func (s *InventoryService) Filter(ctx context.Context, f model.FilterQuery) ([]model.Item, error) {
	return s.inventoryRepo.FetchFiltered(ctx, s.builder.BuildFilter(f))
}

// Get returns a single item, or nil when it does not exist.
func (s *InventoryService) Get(ctx context.Context, id int64) (*model.Item, error) {
	return s.inventoryRepo.FetchByID(ctx, id)
}

// Stats returns inventory database statistics.
func (s *InventoryService) Stats(ctx context.Context) (map[string]interface{}, error) {
	return s.inventoryRepo.Stats(ctx)
}

// Ping checks the inventory backend.
func (s *InventoryService) Ping(ctx context.Context) error {
	return s.inventoryRepo.Ping(ctx)
}

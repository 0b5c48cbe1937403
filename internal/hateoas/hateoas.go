// Package hateoas shapes inventory rows into the listing envelope.
package hateoas

import (
	"fmt"

	"jewelry-inventory-api/internal/model"
)

// ItemPath is the path template of a single item resource.
const ItemPath = "/items/item/%d"

// ItemHref returns the link to the item with the given identifier.
func ItemHref(id int64) string {
	return fmt.Sprintf(ItemPath, id)
}

// ToHateoas builds the envelope for items, preserving their order.
// A negative stock value is reported as a data-integrity error instead of
// being folded into the total.
func ToHateoas(items []model.Item) (model.HateoasEnvelope, error) {
	results := make([]model.Link, 0, len(items))
	var totalStock int64

	for _, item := range items {
		if item.Stock < 0 {
			return model.HateoasEnvelope{}, fmt.Errorf("item %d has invalid stock %d", item.ID, item.Stock)
		}
		totalStock += item.Stock
		results = append(results, model.Link{
			Name: item.Name,
			Href: ItemHref(item.ID),
		})
	}

	return model.HateoasEnvelope{
		TotalCount: len(items),
		TotalStock: totalStock,
		Results:    results,
	}, nil
}

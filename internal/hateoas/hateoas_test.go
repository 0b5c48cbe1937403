package hateoas

import (
	"testing"

	"jewelry-inventory-api/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToHateoas(t *testing.T) {
	items := []model.Item{
		{ID: 3, Name: "Collar Heart", Category: "necklace", Metal: "gold", Price: 20000, Stock: 2},
		{ID: 1, Name: "Aros Berry", Category: "earrings", Metal: "silver", Price: 8000, Stock: 5},
		{ID: 7, Name: "Anillo Wish", Category: "ring", Metal: "silver", Price: 30000, Stock: 0},
	}
	before := append([]model.Item(nil), items...)

	env, err := ToHateoas(items)
	require.NoError(t, err)

	assert.Equal(t, 3, env.TotalCount)
	assert.Equal(t, int64(7), env.TotalStock)
	require.Len(t, env.Results, 3)
	for i, item := range items {
		assert.Equal(t, item.Name, env.Results[i].Name)
		assert.Equal(t, ItemHref(item.ID), env.Results[i].Href)
	}
	assert.Equal(t, "/items/item/3", env.Results[0].Href)
	assert.Equal(t, before, items, "input must not be mutated")
}

func TestToHateoas_Empty(t *testing.T) {
	env, err := ToHateoas(nil)
	require.NoError(t, err)

	assert.Equal(t, 0, env.TotalCount)
	assert.Equal(t, int64(0), env.TotalStock)
	assert.NotNil(t, env.Results)
	assert.Empty(t, env.Results)
}

func TestToHateoas_NegativeStockFails(t *testing.T) {
	_, err := ToHateoas([]model.Item{
		{ID: 1, Name: "ok", Stock: 3},
		{ID: 2, Name: "broken", Stock: -1},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "item 2")
}

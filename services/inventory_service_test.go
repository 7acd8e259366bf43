package services

import (
	"testing"

	"hotelops-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInventoryValidation(t *testing.T) {
	db := newTestDB(t)
	svc := NewInventoryService(db)

	assert.ErrorIs(t, svc.Create(&models.InventoryItem{HotelID: 1, Category: "linen"}), ErrInvalidInventoryItem)
	assert.ErrorIs(t, svc.Create(&models.InventoryItem{HotelID: 1, Name: "Towels"}), ErrInvalidInventoryItem)
	assert.ErrorIs(t, svc.Create(&models.InventoryItem{HotelID: 1, Name: "Towels", Category: "linen", Quantity: -1}), ErrInvalidInventoryItem)
}

func TestInventoryCategoryFilter(t *testing.T) {
	db := newTestDB(t)
	svc := NewInventoryService(db)

	require.NoError(t, svc.Create(&models.InventoryItem{HotelID: 1, Name: "Towels", Category: "linen", Quantity: 40, Unit: "pcs"}))
	require.NoError(t, svc.Create(&models.InventoryItem{HotelID: 1, Name: "Rice", Category: "kitchen", Quantity: 25, Unit: "kg"}))
	require.NoError(t, svc.Create(&models.InventoryItem{HotelID: 2, Name: "Towels", Category: "linen", Quantity: 10, Unit: "pcs"}))

	all, err := svc.GetAll(1, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	linen, err := svc.GetAll(1, "linen")
	require.NoError(t, err)
	require.Len(t, linen, 1)
	assert.Equal(t, "Towels", linen[0].Name)
}

func TestLowStockBoundary(t *testing.T) {
	db := newTestDB(t)
	svc := NewInventoryService(db)

	require.NoError(t, svc.Create(&models.InventoryItem{HotelID: 1, Name: "At minimum", Category: "linen", Quantity: 10, MinimumStock: 10}))
	require.NoError(t, svc.Create(&models.InventoryItem{HotelID: 1, Name: "Below minimum", Category: "linen", Quantity: 2, MinimumStock: 10}))
	require.NoError(t, svc.Create(&models.InventoryItem{HotelID: 1, Name: "Healthy", Category: "linen", Quantity: 11, MinimumStock: 10}))

	low, err := svc.LowStock(1)
	require.NoError(t, err)
	require.Len(t, low, 2)
	// quantity == minimum counts as low
	assert.Equal(t, "At minimum", low[0].Name)
	assert.Equal(t, "Below minimum", low[1].Name)
	for _, item := range low {
		assert.True(t, item.LowStock())
	}
}

func TestInventoryUpdateAndDelete(t *testing.T) {
	db := newTestDB(t)
	svc := NewInventoryService(db)

	item := models.InventoryItem{HotelID: 1, Name: "Rice", Category: "kitchen", Quantity: 25, Unit: "kg", MinimumStock: 5}
	require.NoError(t, svc.Create(&item))

	edit := item
	edit.Quantity = 4
	assert.ErrorIs(t, svc.Update(2, &edit), ErrInventoryItemNotFound)
	require.NoError(t, svc.Update(1, &edit))

	low, err := svc.LowStock(1)
	require.NoError(t, err)
	require.Len(t, low, 1)
	assert.Equal(t, 4.0, low[0].Quantity)

	assert.ErrorIs(t, svc.Delete(2, item.ID), ErrInventoryItemNotFound)
	require.NoError(t, svc.Delete(1, item.ID))
	assert.ErrorIs(t, svc.Delete(1, item.ID), ErrInventoryItemNotFound)
}

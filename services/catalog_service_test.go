package services

import (
	"testing"

	"hotelops-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogExcludesUnavailable(t *testing.T) {
	db := newTestDB(t)
	svc := NewCatalogService(db)

	require.NoError(t, db.Create(&models.RoomType{HotelID: 1, Name: "Deluxe", BasePrice: 2000, Available: models.BoolPtr(true), SortOrder: 2}).Error)
	require.NoError(t, db.Create(&models.RoomType{HotelID: 1, Name: "Standard", BasePrice: 1200, Available: models.BoolPtr(true), SortOrder: 1}).Error)
	require.NoError(t, db.Create(&models.RoomType{HotelID: 1, Name: "Closed Wing", BasePrice: 900, Available: models.BoolPtr(false)}).Error)
	require.NoError(t, db.Create(&models.FoodItem{HotelID: 1, Name: "Tea", Price: 20, Category: models.FoodCategoryBeverages, Available: models.BoolPtr(true)}).Error)
	require.NoError(t, db.Create(&models.FoodItem{HotelID: 1, Name: "Off Menu", Price: 99, Category: models.FoodCategoryLunch, Available: models.BoolPtr(false)}).Error)
	require.NoError(t, db.Create(&models.ServiceItem{HotelID: 1, Name: "Laundry", Price: 100, Available: models.BoolPtr(true)}).Error)

	catalog, err := svc.Load(1)
	require.NoError(t, err)

	require.Len(t, catalog.RoomTypes, 2)
	assert.Equal(t, "Standard", catalog.RoomTypes[0].Name) // sort_order wins
	require.Len(t, catalog.FoodItems, 1)
	assert.Equal(t, "Tea", catalog.FoodItems[0].Name)
	require.Len(t, catalog.Services, 1)
}

func TestCatalogFoodCategoryFilter(t *testing.T) {
	db := newTestDB(t)
	svc := NewCatalogService(db)

	require.NoError(t, db.Create(&models.FoodItem{HotelID: 1, Name: "Tea", Price: 20, Category: models.FoodCategoryBeverages, Available: models.BoolPtr(true)}).Error)
	require.NoError(t, db.Create(&models.FoodItem{HotelID: 1, Name: "Thali", Price: 150, Category: models.FoodCategoryLunch, Available: models.BoolPtr(true)}).Error)

	items, err := svc.ActiveFoodItems(1, models.FoodCategoryLunch)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Thali", items[0].Name)
}

func TestCatalogScopedToHotel(t *testing.T) {
	db := newTestDB(t)
	svc := NewCatalogService(db)

	require.NoError(t, db.Create(&models.ServiceItem{HotelID: 2, Name: "Spa", Price: 800, Available: models.BoolPtr(true)}).Error)

	catalog, err := svc.Load(1)
	require.NoError(t, err)
	assert.Empty(t, catalog.Services)
	assert.Empty(t, catalog.RoomTypes)
	assert.Empty(t, catalog.FoodItems)
}

// services/catalog_service.go
package services

import (
	"fmt"

	"hotelops-backend/models"

	"gorm.io/gorm"
)

// CatalogService serves the billing screen's read side: available
// items only, sorted for display, loaded in full (catalogs are small).
type CatalogService struct {
	DB *gorm.DB
}

func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{DB: db}
}

// Catalog bundles everything the billing form needs in one fetch.
type Catalog struct {
	RoomTypes []models.RoomType    `json:"room_types"`
	FoodItems []models.FoodItem    `json:"food_items"`
	Services  []models.ServiceItem `json:"services"`
}

func (s *CatalogService) ActiveRoomTypes(hotelID uint) ([]models.RoomType, error) {
	var types []models.RoomType
	err := s.DB.
		Where("hotel_id = ? AND available = ?", hotelID, true).
		Order("sort_order ASC").
		Order("name ASC").
		Find(&types).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load room types: %w", err)
	}
	return types, nil
}

// ActiveFoodItems optionally narrows to one category; empty means all.
func (s *CatalogService) ActiveFoodItems(hotelID uint, category string) ([]models.FoodItem, error) {
	q := s.DB.Where("hotel_id = ? AND available = ?", hotelID, true)
	if category != "" {
		q = q.Where("category = ?", category)
	}
	var items []models.FoodItem
	err := q.
		Order("sort_order ASC").
		Order("category ASC").
		Order("name ASC").
		Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load food items: %w", err)
	}
	return items, nil
}

func (s *CatalogService) ActiveServices(hotelID uint) ([]models.ServiceItem, error) {
	var items []models.ServiceItem
	err := s.DB.
		Where("hotel_id = ? AND available = ?", hotelID, true).
		Order("name ASC").
		Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load services: %w", err)
	}
	return items, nil
}

// Load fetches all three catalogs. Any failure blanks the whole view;
// there is no partial result.
func (s *CatalogService) Load(hotelID uint) (*Catalog, error) {
	roomTypes, err := s.ActiveRoomTypes(hotelID)
	if err != nil {
		return nil, err
	}
	foodItems, err := s.ActiveFoodItems(hotelID, "")
	if err != nil {
		return nil, err
	}
	services, err := s.ActiveServices(hotelID)
	if err != nil {
		return nil, err
	}
	return &Catalog{RoomTypes: roomTypes, FoodItems: foodItems, Services: services}, nil
}

// services/food_item_service.go
package services

import (
	"errors"
	"fmt"
	"strings"

	"hotelops-backend/models"

	"gorm.io/gorm"
)

var (
	ErrFoodItemNotFound = errors.New("food_item_not_found")
	ErrInvalidFoodItem  = errors.New("invalid_food_item")
)

type FoodItemService struct {
	DB *gorm.DB
}

func NewFoodItemService(db *gorm.DB) *FoodItemService {
	return &FoodItemService{DB: db}
}

func validateFoodItem(item *models.FoodItem) error {
	item.Name = strings.TrimSpace(item.Name)
	if item.Name == "" {
		return fmt.Errorf("%w: name required", ErrInvalidFoodItem)
	}
	if item.Price <= 0 {
		return fmt.Errorf("%w: price must be greater than 0", ErrInvalidFoodItem)
	}
	if !models.IsValidFoodCategory(item.Category) {
		return fmt.Errorf("%w: unknown category %q", ErrInvalidFoodItem, item.Category)
	}
	if item.SpiceLevel == "" {
		item.SpiceLevel = models.SpiceLevelMild
	}
	if !models.IsValidSpiceLevel(item.SpiceLevel) {
		return fmt.Errorf("%w: unknown spice level %q", ErrInvalidFoodItem, item.SpiceLevel)
	}
	if item.PreparationTime <= 0 {
		item.PreparationTime = 15
	}
	// omitted means available; an explicit false is kept as sent
	if item.Available == nil {
		item.Available = models.BoolPtr(true)
	}
	return nil
}

func (s *FoodItemService) Create(item *models.FoodItem) error {
	if err := validateFoodItem(item); err != nil {
		return err
	}
	if err := s.DB.Create(item).Error; err != nil {
		return fmt.Errorf("failed to create food item: %w", err)
	}
	return nil
}

func (s *FoodItemService) GetAll(hotelID uint) ([]models.FoodItem, error) {
	var items []models.FoodItem
	err := s.DB.
		Where("hotel_id = ?", hotelID).
		Order("sort_order ASC").
		Order("category ASC").
		Order("name ASC").
		Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve food items: %w", err)
	}
	return items, nil
}

func (s *FoodItemService) GetByID(hotelID, id uint) (*models.FoodItem, error) {
	var item models.FoodItem
	err := s.DB.Where("hotel_id = ?", hotelID).First(&item, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFoodItemNotFound
		}
		return nil, fmt.Errorf("failed to retrieve food item: %w", err)
	}
	return &item, nil
}

func (s *FoodItemService) Update(hotelID uint, item *models.FoodItem) error {
	if err := validateFoodItem(item); err != nil {
		return err
	}
	existing, err := s.GetByID(hotelID, item.ID)
	if err != nil {
		return err
	}
	item.HotelID = existing.HotelID
	if err := s.DB.Model(existing).Select(
		"name", "description", "price", "category", "available",
		"is_vegetarian", "is_vegan", "spice_level", "preparation_time", "sort_order",
	).Updates(item).Error; err != nil {
		return fmt.Errorf("failed to update food item: %w", err)
	}
	return nil
}

func (s *FoodItemService) ToggleAvailability(hotelID, id uint) (*models.FoodItem, error) {
	item, err := s.GetByID(hotelID, id)
	if err != nil {
		return nil, err
	}
	avail := item.Available == nil || *item.Available
	item.Available = models.BoolPtr(!avail)
	if err := s.DB.Model(item).Update("available", *item.Available).Error; err != nil {
		return nil, fmt.Errorf("failed to update availability: %w", err)
	}
	return item, nil
}

func (s *FoodItemService) Delete(hotelID, id uint) error {
	res := s.DB.Where("hotel_id = ?", hotelID).Delete(&models.FoodItem{}, id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete food item: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrFoodItemNotFound
	}
	return nil
}

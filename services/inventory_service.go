// services/inventory_service.go
package services

import (
	"errors"
	"fmt"
	"strings"

	"hotelops-backend/models"

	"gorm.io/gorm"
)

var (
	ErrInventoryItemNotFound = errors.New("inventory_item_not_found")
	ErrInvalidInventoryItem  = errors.New("invalid_inventory_item")
)

type InventoryService struct {
	DB *gorm.DB
}

func NewInventoryService(db *gorm.DB) *InventoryService {
	return &InventoryService{DB: db}
}

func validateInventoryItem(item *models.InventoryItem) error {
	item.Name = strings.TrimSpace(item.Name)
	if item.Name == "" {
		return fmt.Errorf("%w: name required", ErrInvalidInventoryItem)
	}
	if strings.TrimSpace(item.Category) == "" {
		return fmt.Errorf("%w: category required", ErrInvalidInventoryItem)
	}
	if item.Quantity < 0 || item.MinimumStock < 0 || item.PricePerUnit < 0 {
		return fmt.Errorf("%w: quantities and prices must not be negative", ErrInvalidInventoryItem)
	}
	return nil
}

func (s *InventoryService) Create(item *models.InventoryItem) error {
	if err := validateInventoryItem(item); err != nil {
		return err
	}
	if err := s.DB.Create(item).Error; err != nil {
		return fmt.Errorf("failed to create inventory item: %w", err)
	}
	return nil
}

// GetAll lists the hotel's inventory, optionally narrowed to a category.
func (s *InventoryService) GetAll(hotelID uint, category string) ([]models.InventoryItem, error) {
	q := s.DB.Where("hotel_id = ?", hotelID)
	if category != "" {
		q = q.Where("category = ?", category)
	}
	var items []models.InventoryItem
	if err := q.Order("name ASC").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve inventory: %w", err)
	}
	return items, nil
}

// LowStock returns items at or below their minimum stock threshold.
func (s *InventoryService) LowStock(hotelID uint) ([]models.InventoryItem, error) {
	var items []models.InventoryItem
	err := s.DB.
		Where("hotel_id = ? AND quantity <= minimum_stock", hotelID).
		Order("name ASC").
		Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve low stock items: %w", err)
	}
	return items, nil
}

func (s *InventoryService) Update(hotelID uint, item *models.InventoryItem) error {
	if err := validateInventoryItem(item); err != nil {
		return err
	}
	var existing models.InventoryItem
	err := s.DB.Where("hotel_id = ?", hotelID).First(&existing, item.ID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrInventoryItemNotFound
		}
		return fmt.Errorf("failed to retrieve inventory item: %w", err)
	}
	if err := s.DB.Model(&existing).Select(
		"name", "description", "category", "quantity", "unit",
		"minimum_stock", "price_per_unit", "supplier",
	).Updates(item).Error; err != nil {
		return fmt.Errorf("failed to update inventory item: %w", err)
	}
	return nil
}

func (s *InventoryService) Delete(hotelID, id uint) error {
	res := s.DB.Where("hotel_id = ?", hotelID).Delete(&models.InventoryItem{}, id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete inventory item: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrInventoryItemNotFound
	}
	return nil
}

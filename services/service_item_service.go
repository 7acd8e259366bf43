// services/service_item_service.go
package services

import (
	"errors"
	"fmt"
	"strings"

	"hotelops-backend/models"

	"gorm.io/gorm"
)

var (
	ErrServiceItemNotFound = errors.New("service_not_found")
	ErrInvalidServiceItem  = errors.New("invalid_service")
)

type ServiceItemService struct {
	DB *gorm.DB
}

func NewServiceItemService(db *gorm.DB) *ServiceItemService {
	return &ServiceItemService{DB: db}
}

func validateServiceItem(item *models.ServiceItem) error {
	item.Name = strings.TrimSpace(item.Name)
	if item.Name == "" {
		return fmt.Errorf("%w: name required", ErrInvalidServiceItem)
	}
	if item.Price <= 0 {
		return fmt.Errorf("%w: price must be greater than 0", ErrInvalidServiceItem)
	}
	// omitted means available; an explicit false is kept as sent
	if item.Available == nil {
		item.Available = models.BoolPtr(true)
	}
	return nil
}

func (s *ServiceItemService) Create(item *models.ServiceItem) error {
	if err := validateServiceItem(item); err != nil {
		return err
	}
	if err := s.DB.Create(item).Error; err != nil {
		return fmt.Errorf("failed to create service: %w", err)
	}
	return nil
}

func (s *ServiceItemService) GetAll(hotelID uint) ([]models.ServiceItem, error) {
	var items []models.ServiceItem
	err := s.DB.
		Where("hotel_id = ?", hotelID).
		Order("name ASC").
		Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve services: %w", err)
	}
	return items, nil
}

func (s *ServiceItemService) Update(hotelID uint, item *models.ServiceItem) error {
	if err := validateServiceItem(item); err != nil {
		return err
	}
	var existing models.ServiceItem
	err := s.DB.Where("hotel_id = ?", hotelID).First(&existing, item.ID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrServiceItemNotFound
		}
		return fmt.Errorf("failed to retrieve service: %w", err)
	}
	if err := s.DB.Model(&existing).Select(
		"name", "price", "description", "available",
	).Updates(item).Error; err != nil {
		return fmt.Errorf("failed to update service: %w", err)
	}
	return nil
}

func (s *ServiceItemService) Delete(hotelID, id uint) error {
	res := s.DB.Where("hotel_id = ?", hotelID).Delete(&models.ServiceItem{}, id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete service: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrServiceItemNotFound
	}
	return nil
}

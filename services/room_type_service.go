// services/room_type_service.go
package services

import (
	"errors"
	"fmt"
	"strings"

	"hotelops-backend/models"

	"gorm.io/gorm"
)

var (
	ErrRoomTypeNotFound = errors.New("room_type_not_found")
	ErrInvalidRoomType  = errors.New("invalid_room_type")
)

type RoomTypeService struct {
	DB *gorm.DB
}

func NewRoomTypeService(db *gorm.DB) *RoomTypeService {
	return &RoomTypeService{DB: db}
}

func validateRoomType(rt *models.RoomType) error {
	rt.Name = strings.TrimSpace(rt.Name)
	if rt.Name == "" {
		return fmt.Errorf("%w: name required", ErrInvalidRoomType)
	}
	if rt.BasePrice <= 0 {
		return fmt.Errorf("%w: price must be greater than 0", ErrInvalidRoomType)
	}
	if rt.MaxOccupancy <= 0 {
		rt.MaxOccupancy = 2
	}
	if rt.Amenities == nil {
		rt.Amenities = []string{}
	}
	// omitted means available; an explicit false is kept as sent
	if rt.Available == nil {
		rt.Available = models.BoolPtr(true)
	}
	return nil
}

func (s *RoomTypeService) Create(rt *models.RoomType) error {
	if err := validateRoomType(rt); err != nil {
		return err
	}
	if err := s.DB.Create(rt).Error; err != nil {
		return fmt.Errorf("failed to create room type: %w", err)
	}
	return nil
}

// GetAll returns every room type for the hotel, unavailable ones
// included; the settings screen shows both.
func (s *RoomTypeService) GetAll(hotelID uint) ([]models.RoomType, error) {
	var types []models.RoomType
	err := s.DB.
		Where("hotel_id = ?", hotelID).
		Order("sort_order ASC").
		Order("name ASC").
		Find(&types).Error
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve room types: %w", err)
	}
	for i := range types {
		if types[i].Amenities == nil {
			types[i].Amenities = []string{}
		}
	}
	return types, nil
}

func (s *RoomTypeService) GetByID(hotelID, id uint) (*models.RoomType, error) {
	var rt models.RoomType
	err := s.DB.Where("hotel_id = ?", hotelID).First(&rt, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomTypeNotFound
		}
		return nil, fmt.Errorf("failed to retrieve room type: %w", err)
	}
	return &rt, nil
}

func (s *RoomTypeService) Update(hotelID uint, rt *models.RoomType) error {
	if err := validateRoomType(rt); err != nil {
		return err
	}
	existing, err := s.GetByID(hotelID, rt.ID)
	if err != nil {
		return err
	}
	rt.HotelID = existing.HotelID
	if err := s.DB.Model(existing).Select(
		"name", "description", "base_price", "max_occupancy",
		"amenities", "available", "sort_order",
	).Updates(rt).Error; err != nil {
		return fmt.Errorf("failed to update room type: %w", err)
	}
	return nil
}

func (s *RoomTypeService) ToggleAvailability(hotelID, id uint) (*models.RoomType, error) {
	rt, err := s.GetByID(hotelID, id)
	if err != nil {
		return nil, err
	}
	avail := rt.Available == nil || *rt.Available
	rt.Available = models.BoolPtr(!avail)
	if err := s.DB.Model(rt).Update("available", *rt.Available).Error; err != nil {
		return nil, fmt.Errorf("failed to update availability: %w", err)
	}
	return rt, nil
}

func (s *RoomTypeService) Delete(hotelID, id uint) error {
	res := s.DB.Where("hotel_id = ?", hotelID).Delete(&models.RoomType{}, id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete room type: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrRoomTypeNotFound
	}
	return nil
}

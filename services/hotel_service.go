// services/hotel_service.go
package services

import (
	"errors"
	"fmt"
	"strings"

	"hotelops-backend/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrHotelNotFound = errors.New("hotel_not_found")
	ErrInvalidHotel  = errors.New("invalid_hotel")
)

type HotelService struct {
	DB *gorm.DB
}

func NewHotelService(db *gorm.DB) *HotelService {
	return &HotelService{DB: db}
}

// GetByOwner resolves the caller's hotel. A missing row means the
// account has not completed setup; controllers turn that into a 404 so
// the client routes to the setup flow.
func (s *HotelService) GetByOwner(ownerID uint) (*models.Hotel, error) {
	var hotel models.Hotel
	err := s.DB.Where("owner_id = ?", ownerID).First(&hotel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHotelNotFound
		}
		return nil, fmt.Errorf("failed to retrieve hotel: %w", err)
	}
	if hotel.Services == nil {
		hotel.Services = []string{}
	}
	return &hotel, nil
}

// Setup upserts the owner's single hotel row: the owner_id unique index
// is the conflict key, so repeating setup edits in place.
func (s *HotelService) Setup(ownerID uint, name, address, logoURL string, serviceNames []string) (*models.Hotel, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: name required", ErrInvalidHotel)
	}
	if serviceNames == nil {
		serviceNames = []string{}
	}

	hotel := models.Hotel{
		Name:     name,
		Address:  strings.TrimSpace(address),
		LogoURL:  logoURL,
		Services: serviceNames,
		OwnerID:  ownerID,
	}
	err := s.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "owner_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "address", "logo_url", "services"}),
	}).Create(&hotel).Error
	if err != nil {
		return nil, fmt.Errorf("failed to save hotel: %w", err)
	}

	return s.GetByOwner(ownerID)
}

// UpdateProfile edits the settings-page fields only; logo and services
// have their own flows.
func (s *HotelService) UpdateProfile(ownerID uint, name, address, phone, email string) (*models.Hotel, error) {
	hotel, err := s.GetByOwner(ownerID)
	if err != nil {
		return nil, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: name required", ErrInvalidHotel)
	}

	hotel.Name = name
	hotel.Address = strings.TrimSpace(address)
	hotel.Phone = strings.TrimSpace(phone)
	hotel.Email = strings.TrimSpace(email)

	if err := s.DB.Model(hotel).Select("name", "address", "phone", "email").
		Updates(hotel).Error; err != nil {
		return nil, fmt.Errorf("failed to update hotel profile: %w", err)
	}
	return hotel, nil
}

func (s *HotelService) SetLogo(ownerID uint, logoURL string) (*models.Hotel, error) {
	hotel, err := s.GetByOwner(ownerID)
	if err != nil {
		return nil, err
	}
	hotel.LogoURL = logoURL
	if err := s.DB.Model(hotel).Update("logo_url", logoURL).Error; err != nil {
		return nil, fmt.Errorf("failed to update hotel logo: %w", err)
	}
	return hotel, nil
}

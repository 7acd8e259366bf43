package models

import (
	"time"

	"gorm.io/gorm"
)

// ServiceItem is a chargeable extra (spa, laundry, airport pickup).
type ServiceItem struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	HotelID uint `gorm:"index;column:hotel_id" json:"hotel_id"`

	Name        string  `gorm:"size:255" json:"name"`
	Price       float64 `gorm:"type:decimal(10,2)" json:"price"`
	Description string  `gorm:"type:text" json:"description,omitempty"`
	// Pointer for the same reason as RoomType.Available.
	Available *bool `json:"available"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// keep the legacy table name used by the frontend
func (ServiceItem) TableName() string { return "services" }

package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type RoomType struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	HotelID uint `gorm:"index;column:hotel_id" json:"hotel_id"`

	Name         string  `gorm:"size:255" json:"name"`
	Description  string  `gorm:"type:text" json:"description,omitempty"`
	BasePrice    float64 `gorm:"type:decimal(10,2);column:base_price" json:"base_price"`
	MaxOccupancy int     `gorm:"column:max_occupancy;default:2" json:"max_occupancy"`

	Amenities datatypes.JSONSlice[string] `json:"amenities"`

	// Pointer so an explicit false survives the insert; nil means "not
	// sent" and the service defaults it to true.
	Available *bool `json:"available"`
	SortOrder int   `gorm:"column:sort_order;default:0" json:"sort_order"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

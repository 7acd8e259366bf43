package models

import (
	"time"

	"gorm.io/gorm"
)

// Food categories accepted by the billing and menu screens.
const (
	FoodCategoryBreakfast = "breakfast"
	FoodCategoryLunch     = "lunch"
	FoodCategoryDinner    = "dinner"
	FoodCategorySnacks    = "snacks"
	FoodCategoryBeverages = "beverages"
	FoodCategoryDesserts  = "desserts"
)

const (
	SpiceLevelMild      = "mild"
	SpiceLevelMedium    = "medium"
	SpiceLevelSpicy     = "spicy"
	SpiceLevelVerySpicy = "very_spicy"
)

func IsValidFoodCategory(c string) bool {
	switch c {
	case FoodCategoryBreakfast, FoodCategoryLunch, FoodCategoryDinner,
		FoodCategorySnacks, FoodCategoryBeverages, FoodCategoryDesserts:
		return true
	}
	return false
}

func IsValidSpiceLevel(s string) bool {
	switch s {
	case SpiceLevelMild, SpiceLevelMedium, SpiceLevelSpicy, SpiceLevelVerySpicy:
		return true
	}
	return false
}

type FoodItem struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	HotelID uint `gorm:"index;column:hotel_id" json:"hotel_id"`

	Name        string  `gorm:"size:255" json:"name"`
	Description string  `gorm:"type:text" json:"description,omitempty"`
	Price       float64 `gorm:"type:decimal(10,2)" json:"price"`
	Category    string  `gorm:"size:32;index" json:"category"`

	// Pointer for the same reason as RoomType.Available.
	Available       *bool  `json:"available"`
	IsVegetarian    bool   `gorm:"column:is_vegetarian;default:false" json:"is_vegetarian"`
	IsVegan         bool   `gorm:"column:is_vegan;default:false" json:"is_vegan"`
	SpiceLevel      string `gorm:"column:spice_level;size:16;default:mild" json:"spice_level"`
	PreparationTime int    `gorm:"column:preparation_time;default:15" json:"preparation_time"`
	SortOrder       int    `gorm:"column:sort_order;default:0" json:"sort_order"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

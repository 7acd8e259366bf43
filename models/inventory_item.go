package models

import "time"

type InventoryItem struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	HotelID uint `gorm:"index;column:hotel_id" json:"hotel_id"`

	Name        string `gorm:"size:255" json:"name"`
	Description string `gorm:"type:text" json:"description,omitempty"`
	Category    string `gorm:"size:100;index" json:"category"`

	Quantity     float64 `gorm:"type:decimal(10,2)" json:"quantity"`
	Unit         string  `gorm:"size:32" json:"unit"`
	MinimumStock float64 `gorm:"type:decimal(10,2);column:minimum_stock" json:"minimum_stock"`
	PricePerUnit float64 `gorm:"type:decimal(10,2);column:price_per_unit" json:"price_per_unit"`
	Supplier     string  `gorm:"size:255" json:"supplier,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LowStock is derived, never stored.
func (i InventoryItem) LowStock() bool { return i.Quantity <= i.MinimumStock }

package models

import (
	"time"

	"gorm.io/datatypes"
)

const (
	LineCategoryRoom    = "room"
	LineCategoryFood    = "food"
	LineCategoryService = "service"
)

// BillLine is one cart line. The id is only unique within a cart
// session; OriginalPrice stays separate from Price so quantity edits
// recompute from the unit price instead of compounding.
type BillLine struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Price         float64 `json:"price"`
	Quantity      int     `json:"quantity"`
	Category      string  `json:"category"`
	OriginalPrice float64 `json:"originalPrice"`
}

// Bill is the persisted invoice. The embedded Items array is the system
// of record; the bill_items rows exist only for reporting.
type Bill struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	HotelID uint `gorm:"index;column:hotel_id" json:"hotel_id"`

	BillNumber    string  `gorm:"column:bill_number;size:64;index" json:"bill_number"`
	CustomerName  string  `gorm:"column:customer_name;size:255;default:Walk-in Customer" json:"customer_name"`
	CustomerPhone *string `gorm:"column:customer_phone;size:50" json:"customer_phone,omitempty"`

	Subtotal  float64 `gorm:"type:decimal(10,2)" json:"subtotal"`
	TaxAmount float64 `gorm:"type:decimal(10,2);column:tax_amount" json:"tax_amount"`
	Total     float64 `gorm:"type:decimal(10,2)" json:"total"`

	PaymentMethod string `gorm:"column:payment_method;size:32;default:cash" json:"payment_method"`
	PaymentStatus string `gorm:"column:payment_status;size:32;default:paid" json:"payment_status"`

	Items datatypes.JSONSlice[BillLine] `json:"items"`

	CreatedAt time.Time `json:"created_at"`
}

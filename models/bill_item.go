package models

import "time"

// BillItem is the normalized copy of one bill line, written best-effort
// after the bill row commits. A missing batch never invalidates the bill.
type BillItem struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	BillID  uint `gorm:"index;column:bill_id" json:"bill_id"`
	HotelID uint `gorm:"index;column:hotel_id" json:"hotel_id"`

	Name     string  `gorm:"size:255" json:"name"`
	Category string  `gorm:"size:16" json:"category"`
	Price    float64 `gorm:"type:decimal(10,2)" json:"price"`
	Quantity int     `json:"quantity"`
	Subtotal float64 `gorm:"type:decimal(10,2)" json:"subtotal"`

	CreatedAt time.Time `json:"created_at"`
}

package models

import (
	"time"

	"gorm.io/datatypes"
)

// Hotel is the tenant root: every other row hangs off a hotel, and a
// hotel belongs to exactly one owner account.
type Hotel struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Name    string `gorm:"size:255" json:"name"`
	Address string `gorm:"type:text" json:"address"`
	Phone   string `gorm:"size:50" json:"phone"`
	Email   string `gorm:"size:150" json:"email"`
	LogoURL string `gorm:"size:255" json:"logo_url"`

	// Services offered at setup time ("Rooms", "Restaurant", ...)
	Services datatypes.JSONSlice[string] `json:"services"`

	OwnerID uint `gorm:"uniqueIndex" json:"owner_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

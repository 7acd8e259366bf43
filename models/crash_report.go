package models

import "time"

const (
	SeverityLow      = "low"
	SeverityMedium   = "medium"
	SeverityHigh     = "high"
	SeverityCritical = "critical"
)

func IsValidSeverity(s string) bool {
	switch s {
	case SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical:
		return true
	}
	return false
}

type CrashReport struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	UserID  uint `gorm:"index;column:user_id" json:"user_id"`
	HotelID uint `gorm:"index;column:hotel_id" json:"hotel_id"`

	Title       string `gorm:"size:255" json:"title"`
	Description string `gorm:"type:text" json:"description"`
	Severity    string `gorm:"size:16;default:medium" json:"severity"`
	UserAgent   string `gorm:"column:user_agent;size:512" json:"user_agent,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	AttendancePresent = "present"
	AttendanceAbsent  = "absent"
	AttendanceLate    = "late"
	AttendanceHalfDay = "half_day"
)

const (
	StaffStatusActive   = "active"
	StaffStatusInactive = "inactive"
)

func IsValidAttendanceStatus(s string) bool {
	switch s {
	case AttendancePresent, AttendanceAbsent, AttendanceLate, AttendanceHalfDay:
		return true
	}
	return false
}

// AttendanceRecord lives inside the staff row's embedded attendance
// array. Date is a calendar day ("2006-01-02"); at most one record per
// day per staff member.
type AttendanceRecord struct {
	Date   string `json:"date"`
	Status string `json:"status"`
}

type Staff struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	HotelID uint `gorm:"index;column:hotel_id" json:"hotel_id"`

	Name string `gorm:"size:255" json:"name"`
	Role string `gorm:"size:100" json:"role"`

	Age              *int   `json:"age,omitempty"`
	Place            string `gorm:"size:255" json:"place,omitempty"`
	Contact          string `gorm:"size:50" json:"contact,omitempty"`
	Email            string `gorm:"size:150" json:"email,omitempty"`
	EmergencyContact string `gorm:"column:emergency_contact;size:50" json:"emergency_contact,omitempty"`

	IDType              string `gorm:"column:id_type;size:50" json:"id_type"`
	IDNumber            string `gorm:"column:id_number;size:100" json:"id_number"`
	IDVerificationNotes string `gorm:"column:id_verification_notes;type:text" json:"id_verification_notes,omitempty"`

	Salary      *float64   `gorm:"type:decimal(10,2)" json:"salary,omitempty"`
	JoiningDate *time.Time `gorm:"column:joining_date;type:date" json:"joining_date,omitempty"`

	Status string `gorm:"size:16;default:active" json:"status"`

	Attendance datatypes.JSONSlice[AttendanceRecord] `json:"attendance"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Staff) TableName() string { return "staff" }

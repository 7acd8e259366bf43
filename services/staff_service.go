// services/staff_service.go
package services

import (
	"errors"
	"fmt"
	"strings"

	"hotelops-backend/models"

	"gorm.io/gorm"
)

var ErrInvalidStaff = errors.New("invalid_staff")

type StaffService struct {
	DB *gorm.DB
}

func NewStaffService(db *gorm.DB) *StaffService {
	return &StaffService{DB: db}
}

// validateStaff mirrors the add-staff form rules: name, role, and ID
// verification are required; the optional fields are sanity-checked
// only when present.
func validateStaff(member *models.Staff) error {
	member.Name = strings.TrimSpace(member.Name)
	if member.Name == "" {
		return fmt.Errorf("%w: name required", ErrInvalidStaff)
	}
	if strings.TrimSpace(member.Role) == "" {
		return fmt.Errorf("%w: role required", ErrInvalidStaff)
	}
	if strings.TrimSpace(member.IDType) == "" || strings.TrimSpace(member.IDNumber) == "" {
		return fmt.Errorf("%w: id type and number required", ErrInvalidStaff)
	}
	if member.Age != nil && (*member.Age < 16 || *member.Age > 100) {
		return fmt.Errorf("%w: age must be between 16 and 100", ErrInvalidStaff)
	}
	if c := strings.TrimSpace(member.Contact); c != "" && len(c) < 10 {
		return fmt.Errorf("%w: contact number too short", ErrInvalidStaff)
	}
	if e := strings.TrimSpace(member.Email); e != "" && !strings.Contains(e, "@") {
		return fmt.Errorf("%w: invalid email", ErrInvalidStaff)
	}
	return nil
}

func (s *StaffService) Create(member *models.Staff) error {
	if err := validateStaff(member); err != nil {
		return err
	}
	if member.Status == "" {
		member.Status = models.StaffStatusActive
	}
	if member.Attendance == nil {
		member.Attendance = []models.AttendanceRecord{}
	}
	if err := s.DB.Create(member).Error; err != nil {
		return fmt.Errorf("failed to create staff member: %w", err)
	}
	return nil
}

func (s *StaffService) GetAll(hotelID uint) ([]models.Staff, error) {
	var staff []models.Staff
	if err := s.DB.
		Where("hotel_id = ?", hotelID).
		Order("created_at DESC").
		Find(&staff).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve staff: %w", err)
	}
	for i := range staff {
		if staff[i].Attendance == nil {
			staff[i].Attendance = []models.AttendanceRecord{}
		}
	}
	return staff, nil
}

func (s *StaffService) GetByID(hotelID, staffID uint) (*models.Staff, error) {
	var member models.Staff
	err := s.DB.Where("hotel_id = ?", hotelID).First(&member, staffID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStaffNotFound
		}
		return nil, fmt.Errorf("failed to retrieve staff member: %w", err)
	}
	return &member, nil
}

func (s *StaffService) SetStatus(hotelID, staffID uint, status string) error {
	if status != models.StaffStatusActive && status != models.StaffStatusInactive {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidStaff, status)
	}
	res := s.DB.Model(&models.Staff{}).
		Where("id = ? AND hotel_id = ?", staffID, hotelID).
		Update("status", status)
	if res.Error != nil {
		return fmt.Errorf("failed to update staff status: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrStaffNotFound
	}
	return nil
}

// Delete removes the staff row. Attendance lives inside the row, so no
// referential cleanup is needed.
func (s *StaffService) Delete(hotelID, staffID uint) error {
	res := s.DB.Where("hotel_id = ?", hotelID).Delete(&models.Staff{}, staffID)
	if res.Error != nil {
		return fmt.Errorf("failed to delete staff member: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrStaffNotFound
	}
	return nil
}

func (s *StaffService) ActiveCount(hotelID uint) (int64, error) {
	var count int64
	if err := s.DB.Model(&models.Staff{}).
		Where("hotel_id = ? AND status = ?", hotelID, models.StaffStatusActive).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count active staff: %w", err)
	}
	return count, nil
}

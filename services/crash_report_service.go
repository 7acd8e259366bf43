package services

import (
	"errors"
	"fmt"
	"strings"

	"hotelops-backend/models"

	"gorm.io/gorm"
)

var ErrInvalidCrashReport = errors.New("invalid_crash_report")

type CrashReportService struct {
	DB *gorm.DB
}

func NewCrashReportService(db *gorm.DB) *CrashReportService {
	return &CrashReportService{DB: db}
}

func (s *CrashReportService) Create(report *models.CrashReport) error {
	report.Title = strings.TrimSpace(report.Title)
	if report.Title == "" {
		return fmt.Errorf("%w: title required", ErrInvalidCrashReport)
	}
	if report.Severity == "" {
		report.Severity = models.SeverityMedium
	}
	if !models.IsValidSeverity(report.Severity) {
		return fmt.Errorf("%w: unknown severity %q", ErrInvalidCrashReport, report.Severity)
	}
	if err := s.DB.Create(report).Error; err != nil {
		return fmt.Errorf("failed to create crash report: %w", err)
	}
	return nil
}

// GetAll lists the caller's own reports, newest first.
func (s *CrashReportService) GetAll(userID uint) ([]models.CrashReport, error) {
	var reports []models.CrashReport
	err := s.DB.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&reports).Error
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve crash reports: %w", err)
	}
	return reports, nil
}

package services

import (
	"fmt"
	"time"

	"hotelops-backend/models"

	"gorm.io/gorm"
)

// DashboardStats is the landing-page summary card payload.
type DashboardStats struct {
	TotalRevenue float64       `json:"totalRevenue"`
	BillsToday   int64         `json:"billsToday"`
	ActiveStaff  int64         `json:"activeStaff"`
	RecentBills  []models.Bill `json:"recentBills"`
}

type ReportService struct {
	DB    *gorm.DB
	Staff *StaffService
}

func NewReportService(db *gorm.DB, staff *StaffService) *ReportService {
	return &ReportService{DB: db, Staff: staff}
}

func (s *ReportService) Dashboard(hotelID uint, now time.Time) (*DashboardStats, error) {
	stats := &DashboardStats{RecentBills: []models.Bill{}}

	var revenue *float64
	err := s.DB.Model(&models.Bill{}).
		Where("hotel_id = ?", hotelID).
		Select("SUM(total)").
		Scan(&revenue).Error
	if err != nil {
		return nil, fmt.Errorf("failed to compute revenue: %w", err)
	}
	if revenue != nil {
		stats.TotalRevenue = *revenue
	}

	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	err = s.DB.Model(&models.Bill{}).
		Where("hotel_id = ? AND created_at >= ?", hotelID, dayStart).
		Count(&stats.BillsToday).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count today's bills: %w", err)
	}

	stats.ActiveStaff, err = s.Staff.ActiveCount(hotelID)
	if err != nil {
		return nil, err
	}

	err = s.DB.Where("hotel_id = ?", hotelID).
		Order("created_at DESC").
		Limit(10).
		Find(&stats.RecentBills).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load recent bills: %w", err)
	}

	return stats, nil
}

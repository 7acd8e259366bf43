// services/attendance_service.go
package services

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"hotelops-backend/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Period string

const (
	PeriodToday Period = "today"
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
)

var (
	ErrStaffNotFound           = errors.New("staff_not_found")
	ErrInvalidAttendanceStatus = errors.New("invalid_attendance_status")
	ErrInvalidAttendancePeriod = errors.New("invalid_period")
)

const dateLayout = "2006-01-02"

// AttendanceStats summarizes a roster for one period. NotMarked is only
// meaningful for "today"; AverageAttendance only for week/month.
type AttendanceStats struct {
	Present           int  `json:"present"`
	Absent            int  `json:"absent"`
	Late              int  `json:"late"`
	HalfDay           int  `json:"halfDay"`
	Total             int  `json:"total"`
	NotMarked         *int `json:"notMarked,omitempty"`
	AverageAttendance *int `json:"averageAttendance,omitempty"`
}

// RateWeights scores late and half-day entries as fractions of a present
// day when ranking staff. The values are a product choice, not a law.
type RateWeights struct {
	Late    float64
	HalfDay float64
}

var DefaultRateWeights = RateWeights{Late: 0.8, HalfDay: 0.5}

type StaffRate struct {
	Staff          models.Staff `json:"staff"`
	AttendanceRate int          `json:"attendanceRate"`
}

type TrendDay struct {
	Date    string `json:"date"`
	Present int    `json:"present"`
	Absent  int    `json:"absent"`
	Late    int    `json:"late"`
	HalfDay int    `json:"halfDay"`
	Total   int    `json:"total"`
}

// roundPct rounds half away from zero via decimal so ratios that land
// exactly on .5 never lose to float drift.
func roundPct(numerator decimal.Decimal, denominator int) int {
	if denominator == 0 {
		return 0
	}
	pct := numerator.
		Div(decimal.NewFromInt(int64(denominator))).
		Mul(decimal.NewFromInt(100))
	return int(pct.Round(0).IntPart())
}

// ComputeStats is a pure function of the roster passed in; it never
// re-fetches. Week and month windows count every record in range, so a
// staff member contributes one count per recorded day.
func ComputeStats(staff []models.Staff, period Period, now time.Time) (AttendanceStats, error) {
	switch period {
	case PeriodToday:
		return todayStats(staff, now), nil
	case PeriodWeek:
		// calendar days, so DST transitions don't shift the window
		start := now.AddDate(0, 0, -7)
		return windowStats(staff, start, now), nil
	case PeriodMonth:
		start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		return windowStats(staff, start, now), nil
	default:
		return AttendanceStats{}, ErrInvalidAttendancePeriod
	}
}

func todayStats(staff []models.Staff, now time.Time) AttendanceStats {
	today := now.Format(dateLayout)
	stats := AttendanceStats{Total: len(staff)}
	for _, member := range staff {
		for _, rec := range member.Attendance {
			if rec.Date != today {
				continue
			}
			classify(&stats, rec.Status)
			break
		}
	}
	notMarked := len(staff) - stats.Present - stats.Absent - stats.Late - stats.HalfDay
	stats.NotMarked = &notMarked
	return stats
}

func windowStats(staff []models.Staff, start, end time.Time) AttendanceStats {
	var stats AttendanceStats
	records := 0
	for _, member := range staff {
		for _, rec := range member.Attendance {
			day, err := time.ParseInLocation(dateLayout, rec.Date, end.Location())
			if err != nil {
				continue
			}
			if day.Before(start) || day.After(end) {
				continue
			}
			classify(&stats, rec.Status)
			records++
		}
	}
	stats.Total = records
	avg := roundPct(decimal.NewFromInt(int64(stats.Present)), records)
	stats.AverageAttendance = &avg
	return stats
}

func classify(stats *AttendanceStats, status string) {
	switch status {
	case models.AttendancePresent:
		stats.Present++
	case models.AttendanceAbsent:
		stats.Absent++
	case models.AttendanceLate:
		stats.Late++
	case models.AttendanceHalfDay:
		stats.HalfDay++
	}
}

// AttendanceRate = present days over all recorded days, as a rounded
// percentage. Zero history means zero, not a division error.
func AttendanceRate(records []models.AttendanceRecord) int {
	present := 0
	for _, rec := range records {
		if rec.Status == models.AttendancePresent {
			present++
		}
	}
	return roundPct(decimal.NewFromInt(int64(present)), len(records))
}

// PunctualityRate weighs late and half-day entries per w. The score is
// accumulated in decimal: summing the weights as float64 turns
// (1 + 0.8 + 0.5) / 4 into 57.49999..., which rounds the wrong way.
func PunctualityRate(records []models.AttendanceRecord, w RateWeights) int {
	score := decimal.Zero
	for _, rec := range records {
		switch rec.Status {
		case models.AttendancePresent:
			score = score.Add(decimal.NewFromInt(1))
		case models.AttendanceLate:
			score = score.Add(decimal.NewFromFloat(w.Late))
		case models.AttendanceHalfDay:
			score = score.Add(decimal.NewFromFloat(w.HalfDay))
		}
	}
	return roundPct(score, len(records))
}

// TopPerformers ranks the roster by attendance rate, best first.
func TopPerformers(staff []models.Staff, limit int) []StaffRate {
	ranked := make([]StaffRate, 0, len(staff))
	for _, member := range staff {
		ranked = append(ranked, StaffRate{
			Staff:          member,
			AttendanceRate: AttendanceRate(member.Attendance),
		})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].AttendanceRate > ranked[j].AttendanceRate
	})
	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

// WeeklyTrend returns per-day classified counts for the last seven
// calendar days, oldest first.
func WeeklyTrend(staff []models.Staff, now time.Time) []TrendDay {
	days := make([]TrendDay, 0, 7)
	for i := 6; i >= 0; i-- {
		date := now.AddDate(0, 0, -i).Format(dateLayout)
		day := TrendDay{Date: date, Total: len(staff)}
		for _, member := range staff {
			for _, rec := range member.Attendance {
				if rec.Date != date {
					continue
				}
				switch rec.Status {
				case models.AttendancePresent:
					day.Present++
				case models.AttendanceAbsent:
					day.Absent++
				case models.AttendanceLate:
					day.Late++
				case models.AttendanceHalfDay:
					day.HalfDay++
				}
				break
			}
		}
		days = append(days, day)
	}
	return days
}

// AttendanceService owns the read-modify-write against the embedded
// attendance array. Two sessions marking the same member concurrently is
// last-write-wins; accepted for the single-admin-per-hotel usage.
type AttendanceService struct {
	DB *gorm.DB
}

func NewAttendanceService(db *gorm.DB) *AttendanceService {
	return &AttendanceService{DB: db}
}

// MarkAttendance replaces any existing record for today and appends the
// new status, keeping at most one record per calendar day.
func (s *AttendanceService) MarkAttendance(hotelID, staffID uint, status string, now time.Time) (*models.Staff, error) {
	if !models.IsValidAttendanceStatus(status) {
		return nil, ErrInvalidAttendanceStatus
	}

	var member models.Staff
	err := s.DB.Where("hotel_id = ?", hotelID).First(&member, staffID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStaffNotFound
		}
		return nil, fmt.Errorf("failed to find staff member: %w", err)
	}

	today := now.Format(dateLayout)
	updated := make([]models.AttendanceRecord, 0, len(member.Attendance)+1)
	for _, rec := range member.Attendance {
		if rec.Date != today {
			updated = append(updated, rec)
		}
	}
	updated = append(updated, models.AttendanceRecord{Date: today, Status: status})

	member.Attendance = updated
	if err := s.DB.Model(&member).Update("attendance", member.Attendance).Error; err != nil {
		return nil, fmt.Errorf("failed to update attendance: %w", err)
	}
	return &member, nil
}

package services

import (
	"testing"
	"time"

	"hotelops-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func staffWith(name string, records ...models.AttendanceRecord) models.Staff {
	return models.Staff{Name: name, Attendance: records}
}

func rec(date, status string) models.AttendanceRecord {
	return models.AttendanceRecord{Date: date, Status: status}
}

func TestTodayStatsClassifiesRoster(t *testing.T) {
	now := time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC)
	roster := []models.Staff{
		staffWith("a", rec("2026-03-10", models.AttendancePresent)),
		staffWith("b", rec("2026-03-10", models.AttendanceLate)),
		staffWith("c", rec("2026-03-09", models.AttendancePresent)), // yesterday only
	}

	stats, err := ComputeStats(roster, PeriodToday, now)
	require.NoError(t, err)

	assert.Equal(t, 1, stats.Present)
	assert.Equal(t, 1, stats.Late)
	assert.Equal(t, 0, stats.Absent)
	assert.Equal(t, 0, stats.HalfDay)
	assert.Equal(t, 3, stats.Total)
	require.NotNil(t, stats.NotMarked)
	assert.Equal(t, 1, *stats.NotMarked)
	assert.Nil(t, stats.AverageAttendance)

	// headcount identity holds regardless of roster shape
	assert.Equal(t, stats.Total, stats.Present+stats.Absent+stats.Late+stats.HalfDay+*stats.NotMarked)
}

func TestWindowStatsCountEveryRecord(t *testing.T) {
	now := time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC)
	roster := []models.Staff{
		staffWith("a",
			rec("2026-03-09", models.AttendancePresent),
			rec("2026-03-08", models.AttendancePresent),
			rec("2026-03-01", models.AttendanceAbsent), // outside the 7-day window
		),
		staffWith("b",
			rec("2026-03-07", models.AttendanceHalfDay),
		),
	}

	stats, err := ComputeStats(roster, PeriodWeek, now)
	require.NoError(t, err)

	assert.Equal(t, 2, stats.Present)
	assert.Equal(t, 1, stats.HalfDay)
	assert.Equal(t, 0, stats.Absent)
	assert.Equal(t, 3, stats.Total)
	require.NotNil(t, stats.AverageAttendance)
	assert.Equal(t, 67, *stats.AverageAttendance) // round(2/3 * 100)
	assert.Nil(t, stats.NotMarked)
}

func TestMonthStatsStartAtFirstOfMonth(t *testing.T) {
	now := time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC)
	roster := []models.Staff{
		staffWith("a",
			rec("2026-02-28", models.AttendancePresent), // last month
			rec("2026-03-01", models.AttendancePresent),
			rec("2026-03-05", models.AttendanceAbsent),
		),
	}

	stats, err := ComputeStats(roster, PeriodMonth, now)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Present)
	assert.Equal(t, 1, stats.Absent)
	assert.Equal(t, 2, stats.Total)
}

func TestWindowStatsEmptyRosterHasZeroAverage(t *testing.T) {
	stats, err := ComputeStats(nil, PeriodWeek, time.Now())
	require.NoError(t, err)
	require.NotNil(t, stats.AverageAttendance)
	assert.Equal(t, 0, *stats.AverageAttendance)
}

func TestComputeStatsRejectsUnknownPeriod(t *testing.T) {
	_, err := ComputeStats(nil, Period("year"), time.Now())
	assert.ErrorIs(t, err, ErrInvalidAttendancePeriod)
}

func TestAttendanceRate(t *testing.T) {
	records := []models.AttendanceRecord{
		rec("2026-03-01", models.AttendancePresent),
		rec("2026-03-02", models.AttendancePresent),
		rec("2026-03-03", models.AttendanceAbsent),
	}
	assert.Equal(t, 67, AttendanceRate(records))
	assert.Equal(t, 0, AttendanceRate(nil))
}

func TestPunctualityRateWeighsLateAndHalfDays(t *testing.T) {
	records := []models.AttendanceRecord{
		rec("2026-03-01", models.AttendancePresent),
		rec("2026-03-02", models.AttendanceLate),
		rec("2026-03-03", models.AttendanceHalfDay),
		rec("2026-03-04", models.AttendanceAbsent),
	}
	// (1 + 0.8 + 0.5 + 0) / 4 = 57.5 -> 58
	assert.Equal(t, 58, PunctualityRate(records, DefaultRateWeights))

	// strict weights count only full present days
	assert.Equal(t, 25, PunctualityRate(records, RateWeights{}))
	assert.Equal(t, 0, PunctualityRate(nil, DefaultRateWeights))
}

func TestTopPerformersRanksByRate(t *testing.T) {
	roster := []models.Staff{
		staffWith("half", rec("2026-03-01", models.AttendancePresent), rec("2026-03-02", models.AttendanceAbsent)),
		staffWith("full", rec("2026-03-01", models.AttendancePresent)),
		staffWith("none", rec("2026-03-01", models.AttendanceAbsent)),
	}

	ranked := TopPerformers(roster, 2)
	require.Len(t, ranked, 2)
	assert.Equal(t, "full", ranked[0].Staff.Name)
	assert.Equal(t, 100, ranked[0].AttendanceRate)
	assert.Equal(t, "half", ranked[1].Staff.Name)
	assert.Equal(t, 50, ranked[1].AttendanceRate)

	// limit <= 0 returns the whole roster
	assert.Len(t, TopPerformers(roster, 0), 3)
}

func TestWeeklyTrendOldestFirst(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	roster := []models.Staff{
		staffWith("a",
			rec("2026-03-04", models.AttendancePresent),
			rec("2026-03-10", models.AttendanceLate),
		),
	}

	trend := WeeklyTrend(roster, now)
	require.Len(t, trend, 7)
	assert.Equal(t, "2026-03-04", trend[0].Date)
	assert.Equal(t, 1, trend[0].Present)
	assert.Equal(t, "2026-03-10", trend[6].Date)
	assert.Equal(t, 1, trend[6].Late)
	assert.Equal(t, 0, trend[3].Present+trend[3].Absent+trend[3].Late+trend[3].HalfDay)
}

func TestWeeklyTrendSpansCalendarDaysAcrossDST(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skip("tzdata unavailable")
	}

	// shortly after midnight, a few days past the 2026 spring-forward
	// (Mar 8); fixed-duration day arithmetic would skip a date here
	now := time.Date(2026, 3, 12, 0, 30, 0, 0, loc)
	trend := WeeklyTrend(nil, now)
	require.Len(t, trend, 7)

	want := []string{
		"2026-03-06", "2026-03-07", "2026-03-08", "2026-03-09",
		"2026-03-10", "2026-03-11", "2026-03-12",
	}
	for i, day := range trend {
		assert.Equal(t, want[i], day.Date)
	}
}

func TestWeekWindowIncludesSevenCalendarDaysAcrossDST(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skip("tzdata unavailable")
	}

	now := time.Date(2026, 3, 12, 0, 30, 0, 0, loc)
	roster := []models.Staff{
		staffWith("a",
			rec("2026-03-06", models.AttendancePresent),
			// a 168-hour window would start an hour early after the
			// spring-forward and drag this day back in
			rec("2026-03-05", models.AttendanceAbsent),
		),
	}

	stats, err := ComputeStats(roster, PeriodWeek, now)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Present)
	assert.Equal(t, 0, stats.Absent)
	assert.Equal(t, 1, stats.Total)
}

func TestMarkAttendanceReplacesSameDay(t *testing.T) {
	db := newTestDB(t)
	staffSvc := NewStaffService(db)
	svc := NewAttendanceService(db)

	member := models.Staff{
		HotelID:  1,
		Name:     "Ravi Kumar",
		Role:     "Front Desk",
		IDType:   "aadhar",
		IDNumber: "1234-5678",
	}
	require.NoError(t, staffSvc.Create(&member))

	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	updated, err := svc.MarkAttendance(1, member.ID, models.AttendanceLate, now)
	require.NoError(t, err)
	require.Len(t, updated.Attendance, 1)
	assert.Equal(t, models.AttendanceLate, updated.Attendance[0].Status)

	// marking again the same day replaces, never duplicates
	updated, err = svc.MarkAttendance(1, member.ID, models.AttendancePresent, now)
	require.NoError(t, err)
	require.Len(t, updated.Attendance, 1)
	assert.Equal(t, models.AttendancePresent, updated.Attendance[0].Status)
	assert.Equal(t, "2026-03-10", updated.Attendance[0].Date)

	// a new day appends
	updated, err = svc.MarkAttendance(1, member.ID, models.AttendancePresent, now.Add(24*time.Hour))
	require.NoError(t, err)
	assert.Len(t, updated.Attendance, 2)
}

func TestMarkAttendanceValidation(t *testing.T) {
	db := newTestDB(t)
	svc := NewAttendanceService(db)

	_, err := svc.MarkAttendance(1, 1, "vacation", time.Now())
	assert.ErrorIs(t, err, ErrInvalidAttendanceStatus)

	_, err = svc.MarkAttendance(1, 99, models.AttendancePresent, time.Now())
	assert.ErrorIs(t, err, ErrStaffNotFound)
}

// controllers/staff_controller.go
package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"hotelops-backend/models"
	"hotelops-backend/services"
	"hotelops-backend/utils"

	"github.com/gin-gonic/gin"
)

type markAttendancePayload struct {
	Status string `json:"status" binding:"required"`
}

type setStaffStatusPayload struct {
	Status string `json:"status" binding:"required"`
}

type StaffController struct {
	Staff      *services.StaffService
	Attendance *services.AttendanceService
	Hotels     *services.HotelService
}

func NewStaffController(staff *services.StaffService, attendance *services.AttendanceService, hotels *services.HotelService) *StaffController {
	return &StaffController{Staff: staff, Attendance: attendance, Hotels: hotels}
}

func (s *StaffController) respondStaffError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, services.ErrStaffNotFound):
		utils.JSONError(c, http.StatusNotFound, "staff_not_found")
	case errors.Is(err, services.ErrInvalidStaff),
		errors.Is(err, services.ErrInvalidAttendanceStatus),
		errors.Is(err, services.ErrInvalidAttendancePeriod):
		utils.JSONValidationError(c, err)
	default:
		utils.JSONError(c, http.StatusInternalServerError, fallback)
	}
}

func (s *StaffController) GetAll(c *gin.Context) {
	hotelID, ok := requireHotel(c, s.Hotels)
	if !ok {
		return
	}
	members, err := s.Staff.GetAll(hotelID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to retrieve staff")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, members)
}

func (s *StaffController) Create(c *gin.Context) {
	hotelID, ok := requireHotel(c, s.Hotels)
	if !ok {
		return
	}
	var member models.Staff
	if err := c.ShouldBindJSON(&member); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}
	member.ID = 0
	member.HotelID = hotelID
	if err := s.Staff.Create(&member); err != nil {
		s.respondStaffError(c, err, "failed to create staff member")
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, member)
}

func (s *StaffController) GetByID(c *gin.Context) {
	hotelID, ok := requireHotel(c, s.Hotels)
	if !ok {
		return
	}
	id, ok := paramID(c)
	if !ok {
		return
	}
	member, err := s.Staff.GetByID(hotelID, id)
	if err != nil {
		s.respondStaffError(c, err, "failed to retrieve staff member")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, member)
}

func (s *StaffController) SetStatus(c *gin.Context) {
	hotelID, ok := requireHotel(c, s.Hotels)
	if !ok {
		return
	}
	id, ok := paramID(c)
	if !ok {
		return
	}
	var payload setStaffStatusPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}
	if err := s.Staff.SetStatus(hotelID, id, payload.Status); err != nil {
		s.respondStaffError(c, err, "failed to update staff status")
		return
	}
	member, err := s.Staff.GetByID(hotelID, id)
	if err != nil {
		s.respondStaffError(c, err, "failed to retrieve staff member")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, member)
}

func (s *StaffController) Delete(c *gin.Context) {
	hotelID, ok := requireHotel(c, s.Hotels)
	if !ok {
		return
	}
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := s.Staff.Delete(hotelID, id); err != nil {
		s.respondStaffError(c, err, "failed to delete staff member")
		return
	}
	utils.JSONMessage(c, http.StatusOK, "staff member deleted")
}

// MarkAttendance records today's status for one staff member, replacing
// any earlier mark for the same day.
func (s *StaffController) MarkAttendance(c *gin.Context) {
	hotelID, ok := requireHotel(c, s.Hotels)
	if !ok {
		return
	}
	id, ok := paramID(c)
	if !ok {
		return
	}
	var payload markAttendancePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}
	member, err := s.Attendance.MarkAttendance(hotelID, id, payload.Status, time.Now())
	if err != nil {
		s.respondStaffError(c, err, "failed to mark attendance")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, member)
}

// AttendanceStats serves the dashboard cards; ?period=today|week|month,
// default today.
func (s *StaffController) AttendanceStats(c *gin.Context) {
	hotelID, ok := requireHotel(c, s.Hotels)
	if !ok {
		return
	}
	period := services.Period(c.DefaultQuery("period", string(services.PeriodToday)))

	members, err := s.Staff.GetAll(hotelID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to retrieve staff")
		return
	}
	stats, err := services.ComputeStats(members, period, time.Now())
	if err != nil {
		s.respondStaffError(c, err, "failed to compute stats")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, stats)
}

// TopPerformers ranks staff by attendance rate; ?limit=, default 5.
func (s *StaffController) TopPerformers(c *gin.Context) {
	hotelID, ok := requireHotel(c, s.Hotels)
	if !ok {
		return
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "5"))
	if err != nil || limit < 1 {
		limit = 5
	}
	members, err := s.Staff.GetAll(hotelID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to retrieve staff")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, services.TopPerformers(members, limit))
}

// WeeklyTrend returns per-day counters for the last seven days.
func (s *StaffController) WeeklyTrend(c *gin.Context) {
	hotelID, ok := requireHotel(c, s.Hotels)
	if !ok {
		return
	}
	members, err := s.Staff.GetAll(hotelID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to retrieve staff")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, services.WeeklyTrend(members, time.Now()))
}

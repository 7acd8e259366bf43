// controllers/crash_report_controller.go
package controllers

import (
	"errors"
	"net/http"

	"hotelops-backend/models"
	"hotelops-backend/services"
	"hotelops-backend/utils"

	"github.com/gin-gonic/gin"
)

type crashReportPayload struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Severity    string `json:"severity"`
}

type CrashReportController struct {
	Reports *services.CrashReportService
	Hotels  *services.HotelService
}

func NewCrashReportController(reports *services.CrashReportService, hotels *services.HotelService) *CrashReportController {
	return &CrashReportController{Reports: reports, Hotels: hotels}
}

// Create files a bug report from the in-app dialog. The hotel id is
// attached when setup is done but a report from a pre-setup account is
// still accepted.
func (r *CrashReportController) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var payload crashReportPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	var hotelID uint
	if hotel, err := r.Hotels.GetByOwner(userID); err == nil {
		hotelID = hotel.ID
	}

	report := models.CrashReport{
		UserID:      userID,
		HotelID:     hotelID,
		Title:       payload.Title,
		Description: payload.Description,
		Severity:    payload.Severity,
		UserAgent:   c.GetHeader("User-Agent"),
	}
	if err := r.Reports.Create(&report); err != nil {
		if errors.Is(err, services.ErrInvalidCrashReport) {
			utils.JSONValidationError(c, err)
		} else {
			utils.JSONError(c, http.StatusInternalServerError, "failed to create crash report")
		}
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, report)
}

func (r *CrashReportController) GetAll(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	reports, err := r.Reports.GetAll(userID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to retrieve crash reports")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, reports)
}

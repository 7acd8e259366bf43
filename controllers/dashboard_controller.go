// controllers/dashboard_controller.go
package controllers

import (
	"net/http"
	"time"

	"hotelops-backend/services"
	"hotelops-backend/utils"

	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	Reports *services.ReportService
	Hotels  *services.HotelService
}

func NewDashboardController(reports *services.ReportService, hotels *services.HotelService) *DashboardController {
	return &DashboardController{Reports: reports, Hotels: hotels}
}

func (d *DashboardController) Get(c *gin.Context) {
	hotelID, ok := requireHotel(c, d.Hotels)
	if !ok {
		return
	}
	stats, err := d.Reports.Dashboard(hotelID, time.Now())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load dashboard")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, stats)
}

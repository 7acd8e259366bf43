// controllers/hotel_controller.go
package controllers

import (
	"errors"
	"net/http"

	"hotelops-backend/services"
	"hotelops-backend/utils"

	"github.com/gin-gonic/gin"
)

type setupHotelPayload struct {
	Name     string   `json:"name" binding:"required"`
	Address  string   `json:"address"`
	Services []string `json:"services"`
	// base64 data-URL; optional
	Logo string `json:"logo"`
}

type updateProfilePayload struct {
	Name    string `json:"name" binding:"required"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
}

type uploadLogoPayload struct {
	Logo string `json:"logo" binding:"required"`
}

type HotelController struct {
	Hotels *services.HotelService
}

func NewHotelController(hotels *services.HotelService) *HotelController {
	return &HotelController{Hotels: hotels}
}

func (h *HotelController) GetMyHotel(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	hotel, err := h.Hotels.GetByOwner(userID)
	if err != nil {
		if errors.Is(err, services.ErrHotelNotFound) {
			utils.JSONError(c, http.StatusNotFound, "hotel_not_found")
		} else {
			utils.JSONError(c, http.StatusInternalServerError, "failed to retrieve hotel")
		}
		return
	}
	utils.JSONSuccess(c, http.StatusOK, hotel)
}

// Setup creates or replaces the caller's hotel. Re-running setup is how
// the onboarding screen saves edits.
func (h *HotelController) Setup(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var payload setupHotelPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	logoURL := ""
	if payload.Logo != "" {
		saved, err := services.SaveBase64Logo(payload.Logo)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid logo image")
			return
		}
		logoURL = saved
	}

	hotel, err := h.Hotels.Setup(userID, payload.Name, payload.Address, logoURL, payload.Services)
	if err != nil {
		if errors.Is(err, services.ErrInvalidHotel) {
			utils.JSONValidationError(c, err)
		} else {
			utils.JSONError(c, http.StatusInternalServerError, "failed to save hotel")
		}
		return
	}
	utils.JSONSuccess(c, http.StatusOK, hotel)
}

func (h *HotelController) UpdateProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var payload updateProfilePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	hotel, err := h.Hotels.UpdateProfile(userID, payload.Name, payload.Address, payload.Phone, payload.Email)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrHotelNotFound):
			utils.JSONError(c, http.StatusNotFound, "hotel_not_found")
		case errors.Is(err, services.ErrInvalidHotel):
			utils.JSONValidationError(c, err)
		default:
			utils.JSONError(c, http.StatusInternalServerError, "failed to update hotel")
		}
		return
	}
	utils.JSONSuccess(c, http.StatusOK, hotel)
}

// UploadLogo swaps the logo and best-effort removes the old file.
func (h *HotelController) UploadLogo(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var payload uploadLogoPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	current, err := h.Hotels.GetByOwner(userID)
	if err != nil {
		if errors.Is(err, services.ErrHotelNotFound) {
			utils.JSONError(c, http.StatusNotFound, "hotel_not_found")
		} else {
			utils.JSONError(c, http.StatusInternalServerError, "failed to retrieve hotel")
		}
		return
	}

	saved, err := services.SaveBase64Logo(payload.Logo)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid logo image")
		return
	}

	oldLogo := current.LogoURL
	hotel, err := h.Hotels.SetLogo(userID, saved)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to update hotel logo")
		return
	}
	if oldLogo != "" && oldLogo != saved {
		services.RemoveUpload(oldLogo)
	}
	utils.JSONSuccess(c, http.StatusOK, hotel)
}

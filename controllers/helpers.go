package controllers

import (
	"net/http"
	"strconv"

	"hotelops-backend/services"
	"hotelops-backend/utils"

	"github.com/gin-gonic/gin"
)

// currentUserID reads the id AuthMiddleware stashed in the context.
func currentUserID(c *gin.Context) (uint, bool) {
	v, ok := c.Get("user_id")
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "authentication required")
		return 0, false
	}
	id, ok := v.(uint)
	if !ok || id == 0 {
		utils.JSONError(c, http.StatusUnauthorized, "authentication required")
		return 0, false
	}
	return id, true
}

// requireHotel resolves the caller's hotel and answers 404 when setup
// has not been completed, so the client can route to the setup flow.
func requireHotel(c *gin.Context, hotels *services.HotelService) (uint, bool) {
	userID, ok := currentUserID(c)
	if !ok {
		return 0, false
	}
	hotel, err := hotels.GetByOwner(userID)
	if err != nil {
		if err == services.ErrHotelNotFound {
			utils.JSONError(c, http.StatusNotFound, "hotel_not_found")
		} else {
			utils.JSONError(c, http.StatusInternalServerError, "failed to resolve hotel")
		}
		return 0, false
	}
	return hotel.ID, true
}

func paramID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		utils.JSONError(c, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return uint(id), true
}

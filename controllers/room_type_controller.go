// controllers/room_type_controller.go
package controllers

import (
	"errors"
	"net/http"

	"hotelops-backend/models"
	"hotelops-backend/services"
	"hotelops-backend/utils"

	"github.com/gin-gonic/gin"
)

type RoomTypeController struct {
	RoomTypes *services.RoomTypeService
	Hotels    *services.HotelService
}

func NewRoomTypeController(roomTypes *services.RoomTypeService, hotels *services.HotelService) *RoomTypeController {
	return &RoomTypeController{RoomTypes: roomTypes, Hotels: hotels}
}

func (r *RoomTypeController) respondRoomTypeError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, services.ErrRoomTypeNotFound):
		utils.JSONError(c, http.StatusNotFound, "room_type_not_found")
	case errors.Is(err, services.ErrInvalidRoomType):
		utils.JSONValidationError(c, err)
	default:
		utils.JSONError(c, http.StatusInternalServerError, fallback)
	}
}

func (r *RoomTypeController) GetAll(c *gin.Context) {
	hotelID, ok := requireHotel(c, r.Hotels)
	if !ok {
		return
	}
	types, err := r.RoomTypes.GetAll(hotelID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to retrieve room types")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, types)
}

func (r *RoomTypeController) Create(c *gin.Context) {
	hotelID, ok := requireHotel(c, r.Hotels)
	if !ok {
		return
	}
	var rt models.RoomType
	if err := c.ShouldBindJSON(&rt); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}
	rt.ID = 0
	rt.HotelID = hotelID
	if err := r.RoomTypes.Create(&rt); err != nil {
		r.respondRoomTypeError(c, err, "failed to create room type")
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, rt)
}

func (r *RoomTypeController) Update(c *gin.Context) {
	hotelID, ok := requireHotel(c, r.Hotels)
	if !ok {
		return
	}
	id, ok := paramID(c)
	if !ok {
		return
	}
	var rt models.RoomType
	if err := c.ShouldBindJSON(&rt); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}
	rt.ID = id
	if err := r.RoomTypes.Update(hotelID, &rt); err != nil {
		r.respondRoomTypeError(c, err, "failed to update room type")
		return
	}
	updated, err := r.RoomTypes.GetByID(hotelID, id)
	if err != nil {
		r.respondRoomTypeError(c, err, "failed to retrieve room type")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, updated)
}

func (r *RoomTypeController) ToggleAvailability(c *gin.Context) {
	hotelID, ok := requireHotel(c, r.Hotels)
	if !ok {
		return
	}
	id, ok := paramID(c)
	if !ok {
		return
	}
	rt, err := r.RoomTypes.ToggleAvailability(hotelID, id)
	if err != nil {
		r.respondRoomTypeError(c, err, "failed to update availability")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, rt)
}

func (r *RoomTypeController) Delete(c *gin.Context) {
	hotelID, ok := requireHotel(c, r.Hotels)
	if !ok {
		return
	}
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := r.RoomTypes.Delete(hotelID, id); err != nil {
		r.respondRoomTypeError(c, err, "failed to delete room type")
		return
	}
	utils.JSONMessage(c, http.StatusOK, "room type deleted")
}

// controllers/service_controller.go
package controllers

import (
	"errors"
	"net/http"

	"hotelops-backend/models"
	"hotelops-backend/services"
	"hotelops-backend/utils"

	"github.com/gin-gonic/gin"
)

type ServiceController struct {
	Services *services.ServiceItemService
	Hotels   *services.HotelService
}

func NewServiceController(svc *services.ServiceItemService, hotels *services.HotelService) *ServiceController {
	return &ServiceController{Services: svc, Hotels: hotels}
}

func (s *ServiceController) respondServiceError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, services.ErrServiceItemNotFound):
		utils.JSONError(c, http.StatusNotFound, "service_not_found")
	case errors.Is(err, services.ErrInvalidServiceItem):
		utils.JSONValidationError(c, err)
	default:
		utils.JSONError(c, http.StatusInternalServerError, fallback)
	}
}

func (s *ServiceController) GetAll(c *gin.Context) {
	hotelID, ok := requireHotel(c, s.Hotels)
	if !ok {
		return
	}
	items, err := s.Services.GetAll(hotelID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to retrieve services")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, items)
}

func (s *ServiceController) Create(c *gin.Context) {
	hotelID, ok := requireHotel(c, s.Hotels)
	if !ok {
		return
	}
	var item models.ServiceItem
	if err := c.ShouldBindJSON(&item); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}
	item.ID = 0
	item.HotelID = hotelID
	if err := s.Services.Create(&item); err != nil {
		s.respondServiceError(c, err, "failed to create service")
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, item)
}

func (s *ServiceController) Update(c *gin.Context) {
	hotelID, ok := requireHotel(c, s.Hotels)
	if !ok {
		return
	}
	id, ok := paramID(c)
	if !ok {
		return
	}
	var item models.ServiceItem
	if err := c.ShouldBindJSON(&item); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}
	item.ID = id
	if err := s.Services.Update(hotelID, &item); err != nil {
		s.respondServiceError(c, err, "failed to update service")
		return
	}
	item.HotelID = hotelID
	utils.JSONSuccess(c, http.StatusOK, item)
}

func (s *ServiceController) Delete(c *gin.Context) {
	hotelID, ok := requireHotel(c, s.Hotels)
	if !ok {
		return
	}
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := s.Services.Delete(hotelID, id); err != nil {
		s.respondServiceError(c, err, "failed to delete service")
		return
	}
	utils.JSONMessage(c, http.StatusOK, "service deleted")
}

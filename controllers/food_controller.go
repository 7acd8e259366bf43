// controllers/food_controller.go
package controllers

import (
	"errors"
	"net/http"

	"hotelops-backend/models"
	"hotelops-backend/services"
	"hotelops-backend/utils"

	"github.com/gin-gonic/gin"
)

type FoodController struct {
	Food   *services.FoodItemService
	Hotels *services.HotelService
}

func NewFoodController(food *services.FoodItemService, hotels *services.HotelService) *FoodController {
	return &FoodController{Food: food, Hotels: hotels}
}

func (f *FoodController) respondFoodError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, services.ErrFoodItemNotFound):
		utils.JSONError(c, http.StatusNotFound, "food_item_not_found")
	case errors.Is(err, services.ErrInvalidFoodItem):
		utils.JSONValidationError(c, err)
	default:
		utils.JSONError(c, http.StatusInternalServerError, fallback)
	}
}

func (f *FoodController) GetAll(c *gin.Context) {
	hotelID, ok := requireHotel(c, f.Hotels)
	if !ok {
		return
	}
	items, err := f.Food.GetAll(hotelID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to retrieve food items")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, items)
}

func (f *FoodController) Create(c *gin.Context) {
	hotelID, ok := requireHotel(c, f.Hotels)
	if !ok {
		return
	}
	var item models.FoodItem
	if err := c.ShouldBindJSON(&item); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}
	item.ID = 0
	item.HotelID = hotelID
	if err := f.Food.Create(&item); err != nil {
		f.respondFoodError(c, err, "failed to create food item")
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, item)
}

func (f *FoodController) Update(c *gin.Context) {
	hotelID, ok := requireHotel(c, f.Hotels)
	if !ok {
		return
	}
	id, ok := paramID(c)
	if !ok {
		return
	}
	var item models.FoodItem
	if err := c.ShouldBindJSON(&item); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}
	item.ID = id
	if err := f.Food.Update(hotelID, &item); err != nil {
		f.respondFoodError(c, err, "failed to update food item")
		return
	}
	updated, err := f.Food.GetByID(hotelID, id)
	if err != nil {
		f.respondFoodError(c, err, "failed to retrieve food item")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, updated)
}

func (f *FoodController) ToggleAvailability(c *gin.Context) {
	hotelID, ok := requireHotel(c, f.Hotels)
	if !ok {
		return
	}
	id, ok := paramID(c)
	if !ok {
		return
	}
	item, err := f.Food.ToggleAvailability(hotelID, id)
	if err != nil {
		f.respondFoodError(c, err, "failed to update availability")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, item)
}

func (f *FoodController) Delete(c *gin.Context) {
	hotelID, ok := requireHotel(c, f.Hotels)
	if !ok {
		return
	}
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := f.Food.Delete(hotelID, id); err != nil {
		f.respondFoodError(c, err, "failed to delete food item")
		return
	}
	utils.JSONMessage(c, http.StatusOK, "food item deleted")
}

// controllers/inventory_controller.go
package controllers

import (
	"errors"
	"net/http"

	"hotelops-backend/models"
	"hotelops-backend/services"
	"hotelops-backend/utils"

	"github.com/gin-gonic/gin"
)

type InventoryController struct {
	Inventory *services.InventoryService
	Hotels    *services.HotelService
}

func NewInventoryController(inventory *services.InventoryService, hotels *services.HotelService) *InventoryController {
	return &InventoryController{Inventory: inventory, Hotels: hotels}
}

func (i *InventoryController) respondInventoryError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, services.ErrInventoryItemNotFound):
		utils.JSONError(c, http.StatusNotFound, "inventory_item_not_found")
	case errors.Is(err, services.ErrInvalidInventoryItem):
		utils.JSONValidationError(c, err)
	default:
		utils.JSONError(c, http.StatusInternalServerError, fallback)
	}
}

// GetAll lists inventory; ?category= filters, ?low_stock=true narrows
// to items at or below their minimum.
func (i *InventoryController) GetAll(c *gin.Context) {
	hotelID, ok := requireHotel(c, i.Hotels)
	if !ok {
		return
	}
	if c.Query("low_stock") == "true" {
		items, err := i.Inventory.LowStock(hotelID)
		if err != nil {
			utils.JSONError(c, http.StatusInternalServerError, "failed to retrieve inventory")
			return
		}
		utils.JSONSuccess(c, http.StatusOK, items)
		return
	}
	items, err := i.Inventory.GetAll(hotelID, c.Query("category"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to retrieve inventory")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, items)
}

func (i *InventoryController) Create(c *gin.Context) {
	hotelID, ok := requireHotel(c, i.Hotels)
	if !ok {
		return
	}
	var item models.InventoryItem
	if err := c.ShouldBindJSON(&item); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}
	item.ID = 0
	item.HotelID = hotelID
	if err := i.Inventory.Create(&item); err != nil {
		i.respondInventoryError(c, err, "failed to create inventory item")
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, item)
}

func (i *InventoryController) Update(c *gin.Context) {
	hotelID, ok := requireHotel(c, i.Hotels)
	if !ok {
		return
	}
	id, ok := paramID(c)
	if !ok {
		return
	}
	var item models.InventoryItem
	if err := c.ShouldBindJSON(&item); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}
	item.ID = id
	if err := i.Inventory.Update(hotelID, &item); err != nil {
		i.respondInventoryError(c, err, "failed to update inventory item")
		return
	}
	item.HotelID = hotelID
	utils.JSONSuccess(c, http.StatusOK, item)
}

func (i *InventoryController) Delete(c *gin.Context) {
	hotelID, ok := requireHotel(c, i.Hotels)
	if !ok {
		return
	}
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := i.Inventory.Delete(hotelID, id); err != nil {
		i.respondInventoryError(c, err, "failed to delete inventory item")
		return
	}
	utils.JSONMessage(c, http.StatusOK, "inventory item deleted")
}

// controllers/catalog_controller.go
package controllers

import (
	"net/http"

	"hotelops-backend/services"
	"hotelops-backend/utils"

	"github.com/gin-gonic/gin"
)

type CatalogController struct {
	Catalog *services.CatalogService
	Hotels  *services.HotelService
}

func NewCatalogController(catalog *services.CatalogService, hotels *services.HotelService) *CatalogController {
	return &CatalogController{Catalog: catalog, Hotels: hotels}
}

// Get returns the full billing-screen catalog in a single call. Any
// section failing blanks the whole view so the cashier never composes
// a bill from a half-loaded menu.
func (cc *CatalogController) Get(c *gin.Context) {
	hotelID, ok := requireHotel(c, cc.Hotels)
	if !ok {
		return
	}
	catalog, err := cc.Catalog.Load(hotelID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load catalog")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, catalog)
}

// GetFood supports the category tabs; ?category= filters.
func (cc *CatalogController) GetFood(c *gin.Context) {
	hotelID, ok := requireHotel(c, cc.Hotels)
	if !ok {
		return
	}
	items, err := cc.Catalog.ActiveFoodItems(hotelID, c.Query("category"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load food items")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, items)
}

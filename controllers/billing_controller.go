// controllers/billing_controller.go
package controllers

import (
	"errors"
	"net/http"

	"hotelops-backend/models"
	"hotelops-backend/services"
	"hotelops-backend/utils"

	"github.com/gin-gonic/gin"
)

type createBillPayload struct {
	CustomerName  string            `json:"customerName"`
	CustomerPhone string            `json:"customerPhone"`
	Items         []models.BillLine `json:"items"`
}

type BillingController struct {
	Billing *services.BillingService
	Hotels  *services.HotelService
}

func NewBillingController(billing *services.BillingService, hotels *services.HotelService) *BillingController {
	return &BillingController{Billing: billing, Hotels: hotels}
}

// Preview returns server-computed totals for the cart as it stands,
// without touching the database. The client renders these instead of
// trusting its own math.
func (b *BillingController) Preview(c *gin.Context) {
	var payload createBillPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}
	subtotal := services.Subtotal(payload.Items)
	tax := services.Tax(subtotal)
	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"subtotal": subtotal,
		"tax":      tax,
		"total":    services.Total(subtotal, tax),
	})
}

func (b *BillingController) Create(c *gin.Context) {
	hotelID, ok := requireHotel(c, b.Hotels)
	if !ok {
		return
	}
	var payload createBillPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	bill, err := b.Billing.CreateBill(hotelID, payload.CustomerName, payload.CustomerPhone, payload.Items)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmptyCart), errors.Is(err, services.ErrMissingCustomerName):
			utils.JSONValidationError(c, err)
		default:
			utils.JSONError(c, http.StatusInternalServerError, "failed to create bill")
		}
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, bill)
}

func (b *BillingController) GetAll(c *gin.Context) {
	hotelID, ok := requireHotel(c, b.Hotels)
	if !ok {
		return
	}
	bills, err := b.Billing.GetAll(hotelID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to retrieve bills")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, bills)
}

func (b *BillingController) GetByID(c *gin.Context) {
	hotelID, ok := requireHotel(c, b.Hotels)
	if !ok {
		return
	}
	id, ok := paramID(c)
	if !ok {
		return
	}
	bill, err := b.Billing.GetByID(hotelID, id)
	if err != nil {
		if errors.Is(err, services.ErrBillNotFound) {
			utils.JSONError(c, http.StatusNotFound, "bill_not_found")
		} else {
			utils.JSONError(c, http.StatusInternalServerError, "failed to retrieve bill")
		}
		return
	}
	utils.JSONSuccess(c, http.StatusOK, bill)
}

func (b *BillingController) Delete(c *gin.Context) {
	hotelID, ok := requireHotel(c, b.Hotels)
	if !ok {
		return
	}
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := b.Billing.Delete(hotelID, id); err != nil {
		if errors.Is(err, services.ErrBillNotFound) {
			utils.JSONError(c, http.StatusNotFound, "bill_not_found")
		} else {
			utils.JSONError(c, http.StatusInternalServerError, "failed to delete bill")
		}
		return
	}
	utils.JSONMessage(c, http.StatusOK, "bill deleted")
}

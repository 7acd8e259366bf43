// services/billing_service.go
package services

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"hotelops-backend/models"
	"hotelops-backend/utils"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Validation failures surfaced to the controller before any write.
var (
	ErrEmptyCart           = errors.New("empty_cart")
	ErrMissingCustomerName = errors.New("missing_customer_name")
	ErrBillNotFound        = errors.New("bill_not_found")
)

var taxRate = decimal.NewFromFloat(0.18) // flat 18% GST

func round2(v decimal.Decimal) float64 {
	f, _ := v.Round(2).Float64()
	return f
}

// LineTotal = originalPrice * quantity. Price on the line is never used
// for totals so quantity edits cannot compound rounding.
func LineTotal(line models.BillLine) float64 {
	return round2(decimal.NewFromFloat(line.OriginalPrice).Mul(decimal.NewFromInt(int64(line.Quantity))))
}

func Subtotal(lines []models.BillLine) float64 {
	sum := decimal.Zero
	for _, l := range lines {
		sum = sum.Add(decimal.NewFromFloat(l.OriginalPrice).Mul(decimal.NewFromInt(int64(l.Quantity))))
	}
	return round2(sum)
}

func Tax(subtotal float64) float64 {
	return round2(decimal.NewFromFloat(subtotal).Mul(taxRate))
}

func Total(subtotal, tax float64) float64 {
	return round2(decimal.NewFromFloat(subtotal).Add(decimal.NewFromFloat(tax)))
}

// Cart is the in-memory bill under composition. One per session; no
// cross-session sharing. Totals are derived on every read, never cached.
type Cart struct {
	lines []models.BillLine
	seq   int
}

func NewCart() *Cart {
	return &Cart{lines: []models.BillLine{}}
}

func (c *Cart) add(name string, unitPrice float64, quantity int, category string, sourceID uint) models.BillLine {
	c.seq++
	line := models.BillLine{
		ID:            fmt.Sprintf("%s-%d-%d", category, sourceID, c.seq),
		Name:          name,
		Price:         unitPrice,
		OriginalPrice: unitPrice,
		Quantity:      quantity,
		Category:      category,
	}
	c.lines = append(c.lines, line)
	return line
}

// AddRoom folds the nights count into the unit price at add time, the
// same way the billing screen does: a room line's quantity stays 1.
func (c *Cart) AddRoom(rt models.RoomType, nights int) models.BillLine {
	if nights < 1 {
		nights = 1
	}
	price := round2(decimal.NewFromFloat(rt.BasePrice).Mul(decimal.NewFromInt(int64(nights))))
	suffix := "nights"
	if nights == 1 {
		suffix = "night"
	}
	name := fmt.Sprintf("%s (%d %s)", rt.Name, nights, suffix)
	return c.add(name, price, 1, models.LineCategoryRoom, rt.ID)
}

func (c *Cart) AddFood(item models.FoodItem, quantity int) models.BillLine {
	if quantity < 1 {
		quantity = 1
	}
	return c.add(item.Name, item.Price, quantity, models.LineCategoryFood, item.ID)
}

func (c *Cart) AddService(item models.ServiceItem) models.BillLine {
	return c.add(item.Name, item.Price, 1, models.LineCategoryService, item.ID)
}

// Remove deletes by line id. Absent ids are a silent no-op; the bool
// tells the caller whether to acknowledge.
func (c *Cart) Remove(id string) bool {
	for i, l := range c.lines {
		if l.ID == id {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return true
		}
	}
	return false
}

// UpdateQuantity ignores quantity < 1 and recomputes the line price
// from the original unit price.
func (c *Cart) UpdateQuantity(id string, quantity int) bool {
	if quantity < 1 {
		return false
	}
	for i := range c.lines {
		if c.lines[i].ID == id {
			c.lines[i].Quantity = quantity
			c.lines[i].Price = round2(decimal.NewFromFloat(c.lines[i].OriginalPrice).Mul(decimal.NewFromInt(int64(quantity))))
			return true
		}
	}
	return false
}

func (c *Cart) Lines() []models.BillLine {
	out := make([]models.BillLine, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *Cart) Subtotal() float64 { return Subtotal(c.lines) }
func (c *Cart) Tax() float64      { return Tax(c.Subtotal()) }
func (c *Cart) Total() float64 {
	sub := c.Subtotal()
	return Total(sub, Tax(sub))
}

func (c *Cart) Reset() {
	c.lines = c.lines[:0]
	c.seq = 0
}

// BillingService wraps *gorm.DB for bill persistence and history.
type BillingService struct {
	DB *gorm.DB
}

func NewBillingService(db *gorm.DB) *BillingService {
	return &BillingService{DB: db}
}

// CreateBill validates the submitted lines, recomputes totals
// server-side, and writes the bill row with the embedded items array.
// The normalized bill_items batch that follows is best-effort: the bill
// already committed is the authoritative record, so a failed batch is
// logged and never rolled back.
func (s *BillingService) CreateBill(hotelID uint, customerName, customerPhone string, lines []models.BillLine) (*models.Bill, error) {
	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}
	name := strings.TrimSpace(customerName)
	if name == "" {
		return nil, ErrMissingCustomerName
	}

	billNumber, err := utils.GenerateBillNumber(time.Now())
	if err != nil {
		return nil, fmt.Errorf("failed to generate bill number: %w", err)
	}

	subtotal := Subtotal(lines)
	tax := Tax(subtotal)
	total := Total(subtotal, tax)

	var phone *string
	if p := strings.TrimSpace(customerPhone); p != "" {
		phone = &p
	}

	bill := models.Bill{
		HotelID:       hotelID,
		BillNumber:    billNumber,
		CustomerName:  name,
		CustomerPhone: phone,
		Subtotal:      subtotal,
		TaxAmount:     tax,
		Total:         total,
		PaymentMethod: "cash",
		PaymentStatus: "paid",
		Items:         lines,
	}
	if err := s.DB.Create(&bill).Error; err != nil {
		return nil, fmt.Errorf("failed to create bill: %w", err)
	}

	items := make([]models.BillItem, 0, len(lines))
	for _, l := range lines {
		items = append(items, models.BillItem{
			BillID:   bill.ID,
			HotelID:  hotelID,
			Name:     l.Name,
			Category: l.Category,
			Price:    l.OriginalPrice,
			Quantity: l.Quantity,
			Subtotal: LineTotal(l),
		})
	}
	if err := s.DB.Create(&items).Error; err != nil {
		log.Printf("warning: failed to save bill items for %s: %v", bill.BillNumber, err)
	}

	return &bill, nil
}

func (s *BillingService) GetAll(hotelID uint) ([]models.Bill, error) {
	var bills []models.Bill
	if err := s.DB.
		Where("hotel_id = ?", hotelID).
		Order("created_at DESC").
		Find(&bills).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve bills: %w", err)
	}
	return bills, nil
}

func (s *BillingService) GetByID(hotelID, billID uint) (*models.Bill, error) {
	var bill models.Bill
	err := s.DB.Where("hotel_id = ?", hotelID).First(&bill, billID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBillNotFound
		}
		return nil, fmt.Errorf("failed to retrieve bill: %w", err)
	}
	return &bill, nil
}

// Delete removes the bill row and its reporting rows. The reporting
// cleanup failing is tolerated for the same reason the write is.
func (s *BillingService) Delete(hotelID, billID uint) error {
	res := s.DB.Where("hotel_id = ?", hotelID).Delete(&models.Bill{}, billID)
	if res.Error != nil {
		return fmt.Errorf("failed to delete bill: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrBillNotFound
	}
	if err := s.DB.Where("bill_id = ?", billID).Delete(&models.BillItem{}).Error; err != nil {
		log.Printf("warning: failed to delete bill items for bill %d: %v", billID, err)
	}
	return nil
}

// Package checkout turns a session cart into a persisted order.
package checkout

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"unicode"

	"resto-menu-api/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrEmptyCart      = errors.New("cart is empty")
	ErrInvalidPhone   = errors.New("phone must contain only digits, spaces or hyphens, with at least 8 digits")
	ErrMissingAddress = errors.New("address is required for delivery orders")
)

// Details carries the customer-supplied checkout form fields.
type Details struct {
	CustomerName  string
	Phone         string
	Address       string
	DeliveryType  models.DeliveryType
	PaymentMethod models.PaymentMethod
	Notes         string
}

// ValidateDetails checks the customer fields before the order is built.
// Phone is normalised by stripping spaces and hyphens; what remains must be
// all digits, at least 8 of them. Address is only mandatory for delivery.
func ValidateDetails(d Details) error {
	phone := strings.NewReplacer(" ", "", "-", "").Replace(d.Phone)
	if len(phone) < 8 {
		return ErrInvalidPhone
	}
	for _, r := range phone {
		if !unicode.IsDigit(r) {
			return ErrInvalidPhone
		}
	}

	if d.DeliveryType == models.DeliveryDelivery && strings.TrimSpace(d.Address) == "" {
		return ErrMissingAddress
	}
	return nil
}

// PlaceOrder resolves the cart against the catalog, prices each line at the
// product's current price and persists the order with its items in one
// transaction. Cart entries whose product no longer exists are dropped
// silently; a stale cart reference is not an error. If every entry is
// dropped the order still persists with a zero total.
//
// The caller clears the session cart after a successful return.
func PlaceOrder(db *gorm.DB, details Details, cart map[uint]int) (*models.Order, error) {
	if len(cart) == 0 {
		return nil, ErrEmptyCart
	}

	ids := make([]uint, 0, len(cart))
	for id := range cart {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	total := decimal.Zero
	var pending []models.OrderItem
	for _, id := range ids {
		quantity := cart[id]
		if quantity < 1 {
			continue
		}

		var product models.Product
		if err := db.First(&product, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue // stale reference, e.g. product deleted after being added
			}
			return nil, fmt.Errorf("resolving product %d: %w", id, err)
		}

		total = total.Add(product.Price.Mul(decimal.NewFromInt(int64(quantity))))
		pending = append(pending, models.OrderItem{
			ProductID: product.ID,
			Quantity:  quantity,
			UnitPrice: product.Price,
		})
	}

	order := models.Order{
		CustomerName:  details.CustomerName,
		Phone:         details.Phone,
		Address:       details.Address,
		DeliveryType:  details.DeliveryType,
		PaymentMethod: details.PaymentMethod,
		Notes:         details.Notes,
		Total:         total,
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&order).Error; err != nil {
			return fmt.Errorf("creating order: %w", err)
		}
		for i := range pending {
			pending[i].OrderID = order.ID
		}
		if len(pending) > 0 {
			if err := tx.Create(&pending).Error; err != nil {
				return fmt.Errorf("creating order items: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	order.Items = pending
	return &order, nil
}

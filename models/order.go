package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// DeliveryType says how the customer receives the order.
type DeliveryType string

const (
	DeliveryPickup   DeliveryType = "retiro"
	DeliveryDelivery DeliveryType = "delivery"
)

// Label returns the human-readable form shown to customers.
func (t DeliveryType) Label() string {
	switch t {
	case DeliveryPickup:
		return "Retiro en local"
	case DeliveryDelivery:
		return "Delivery"
	}
	return string(t)
}

// PaymentMethod is coordinated out-of-band; no payment is processed here.
type PaymentMethod string

const (
	PaymentCash         PaymentMethod = "efectivo"
	PaymentBankTransfer PaymentMethod = "transferencia"
	PaymentMercadoPago  PaymentMethod = "mercadopago"
)

func (m PaymentMethod) Label() string {
	switch m {
	case PaymentCash:
		return "Efectivo"
	case PaymentBankTransfer:
		return "Transferencia Bancaria"
	case PaymentMercadoPago:
		return "Mercado Pago"
	}
	return string(m)
}

type Order struct {
	ID            uint            `json:"id" gorm:"primaryKey"`
	CustomerName  string          `json:"customer_name" gorm:"not null"`
	Phone         string          `json:"phone" gorm:"not null"`
	Address       string          `json:"address"` // only required for delivery
	DeliveryType  DeliveryType    `json:"delivery_type" gorm:"not null;default:'retiro'"`
	PaymentMethod PaymentMethod   `json:"payment_method" gorm:"not null;default:'efectivo'"`
	Total         decimal.Decimal `json:"total" gorm:"type:decimal(10,2)"`
	Notes         string          `json:"notes"`
	Items         []OrderItem     `json:"items,omitempty" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt     time.Time       `json:"created_at"`
}

// ItemCount returns the total number of units across all line items.
func (o *Order) ItemCount() int {
	n := 0
	for _, item := range o.Items {
		n += item.Quantity
	}
	return n
}

type OrderItem struct {
	ID        uint            `json:"id" gorm:"primaryKey"`
	OrderID   uint            `json:"order_id" gorm:"not null"`
	ProductID uint            `json:"product_id" gorm:"not null"`
	Product   Product         `json:"product,omitempty" gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	Quantity  int             `json:"quantity" gorm:"not null;default:1"`
	UnitPrice decimal.Decimal `json:"unit_price" gorm:"type:decimal(10,2);not null"` // snapshot at time of purchase
}

// Subtotal is derived, never stored.
func (i *OrderItem) Subtotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

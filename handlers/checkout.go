package handlers

import (
	"errors"
	"net/http"

	"resto-menu-api/checkout"
	"resto-menu-api/config"
	"resto-menu-api/middleware"
	"resto-menu-api/models"
	"resto-menu-api/notify"

	"github.com/gin-gonic/gin"
)

type CheckoutRequest struct {
	CustomerName  string `json:"customer_name" binding:"required"`
	Phone         string `json:"phone" binding:"required"`
	Address       string `json:"address"`
	DeliveryType  string `json:"delivery_type" binding:"required,oneof=retiro delivery"`
	PaymentMethod string `json:"payment_method" binding:"required,oneof=efectivo transferencia mercadopago"`
	Notes         string `json:"notes"`
}

// Checkout converts the session cart into a persisted order. Field-level
// validation failures come back keyed by field so the form can re-render
// inline; an empty cart sends the visitor back to the menu.
func Checkout(c *gin.Context) {
	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	details := checkout.Details{
		CustomerName:  req.CustomerName,
		Phone:         req.Phone,
		Address:       req.Address,
		DeliveryType:  models.DeliveryType(req.DeliveryType),
		PaymentMethod: models.PaymentMethod(req.PaymentMethod),
		Notes:         req.Notes,
	}

	if err := checkout.ValidateDetails(details); err != nil {
		field := "phone"
		if errors.Is(err, checkout.ErrMissingAddress) {
			field = "address"
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "field": field})
		return
	}

	token := middleware.SessionToken(c)
	order, err := checkout.PlaceOrder(config.DB, details, Sessions.Cart(token))
	if err != nil {
		if errors.Is(err, checkout.ErrEmptyCart) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty", "redirect": "/api/menu"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order"})
		return
	}

	Sessions.ClearCart(token)
	Sessions.SetLastOrder(token, order.ID)

	c.JSON(http.StatusCreated, gin.H{
		"message": "Order placed successfully",
		"order":   order,
	})
}

// Confirmation returns the order placed in this session with the prefilled
// WhatsApp message the customer sends to confirm it.
func Confirmation(c *gin.Context) {
	orderID, ok := Sessions.LastOrder(middleware.SessionToken(c))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "No order in this session"})
		return
	}

	var order models.Order
	if err := config.DB.Preload("Items.Product").First(&order, orderID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"order":         order,
		"message":       notify.ComposeConfirmation(&order),
		"whatsapp_link": notify.WhatsAppLink(config.StoreWhatsApp, &order),
	})
}

package handlers

import (
	"net/http"

	"resto-menu-api/middleware"

	"github.com/gin-gonic/gin"
)

// UpdateCartRequest replaces the session cart wholesale. Keys are product
// ids, values quantities. Existence and quantity bounds are checked at
// checkout, not here, so stale entries are tolerated until then.
type UpdateCartRequest struct {
	Carrito map[uint]int `json:"carrito"`
}

// UpdateCart handles POST /api/cart. Malformed payloads get a bare 400 with
// no session mutation; no further detail is surfaced.
func UpdateCart(c *gin.Context) {
	var req UpdateCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false})
		return
	}

	entries := req.Carrito
	if entries == nil {
		entries = map[uint]int{}
	}
	Sessions.SetCart(middleware.SessionToken(c), entries)

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// GetCart returns the session's current cart contents
func GetCart(c *gin.Context) {
	cart := Sessions.Cart(middleware.SessionToken(c))
	c.JSON(http.StatusOK, gin.H{"carrito": cart})
}

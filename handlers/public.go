package handlers

import (
	"net/http"

	"resto-menu-api/config"
	"resto-menu-api/models"

	"github.com/gin-gonic/gin"
)

// Home returns the products highlighted on the landing page (public)
func Home(c *gin.Context) {
	var featured []models.Product
	config.DB.Preload("Category").
		Where("featured = ? AND available = ?", true, true).
		Limit(4).
		Find(&featured)

	c.JSON(http.StatusOK, gin.H{"featured": featured})
}

// Menu returns the full menu: every available product plus the category
// list in display order (public)
func Menu(c *gin.Context) {
	var products []models.Product
	config.DB.Preload("Category").
		Where("available = ?", true).
		Order("category_id, name").
		Find(&products)

	var categories []models.Category
	config.DB.Order("display_order, name").Find(&categories)

	c.JSON(http.StatusOK, gin.H{
		"count":      len(products),
		"products":   products,
		"categories": categories,
	})
}

// GetProduct returns a single product (public)
func GetProduct(c *gin.Context) {
	var product models.Product
	if err := config.DB.Preload("Category").First(&product, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"product": product})
}

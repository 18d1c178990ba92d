package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"resto-menu-api/config"
	"resto-menu-api/models"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	productsPerPage = 12
	ordersPerPage   = 20
)

// Dashboard returns the panel landing numbers plus the latest orders
func Dashboard(c *gin.Context) {
	var totalProducts, totalCategories, totalOrders, availableProducts int64
	config.DB.Model(&models.Product{}).Count(&totalProducts)
	config.DB.Model(&models.Category{}).Count(&totalCategories)
	config.DB.Model(&models.Order{}).Count(&totalOrders)
	config.DB.Model(&models.Product{}).Where("available = ?", true).Count(&availableProducts)

	var latest []models.Order
	config.DB.Preload("Items").Order("created_at desc").Limit(5).Find(&latest)

	c.JSON(http.StatusOK, gin.H{
		"total_products":     totalProducts,
		"total_categories":   totalCategories,
		"total_orders":       totalOrders,
		"available_products": availableProducts,
		"latest_orders":      latest,
	})
}

// ── Categories ─────────────────────────────────────────────────

type CategoryRequest struct {
	Name         string `json:"name" binding:"required"`
	DisplayOrder int    `json:"display_order"`
}

// ListCategories returns all categories in display order
func ListCategories(c *gin.Context) {
	var categories []models.Category
	config.DB.Order("display_order, name").Find(&categories)
	c.JSON(http.StatusOK, gin.H{"count": len(categories), "categories": categories})
}

// CreateCategory creates a category
func CreateCategory(c *gin.Context) {
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	category := models.Category{Name: req.Name, DisplayOrder: req.DisplayOrder}
	if err := config.DB.Create(&category).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create category"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Category created successfully", "category": category})
}

// UpdateCategory edits a category's name and display order
func UpdateCategory(c *gin.Context) {
	var category models.Category
	if err := config.DB.First(&category, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return
	}

	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	category.Name = req.Name
	category.DisplayOrder = req.DisplayOrder
	if err := config.DB.Save(&category).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update category"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Category updated successfully", "category": category})
}

// DeleteCategory removes a category and cascades to its products, which in
// turn drop their historical order items
func DeleteCategory(c *gin.Context) {
	var category models.Category
	if err := config.DB.First(&category, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		productIDs := tx.Model(&models.Product{}).Select("id").Where("category_id = ?", category.ID)
		if err := tx.Where("product_id IN (?)", productIDs).Delete(&models.OrderItem{}).Error; err != nil {
			return err
		}
		if err := tx.Where("category_id = ?", category.ID).Delete(&models.Product{}).Error; err != nil {
			return err
		}
		return tx.Delete(&category).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete category"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Category deleted successfully"})
}

// ── Products ───────────────────────────────────────────────────

type ProductRequest struct {
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Image       string          `json:"image"`
	CategoryID  uint            `json:"category_id" binding:"required"`
	Available   bool            `json:"available"`
	Featured    bool            `json:"featured"`
}

func (r *ProductRequest) validate(db *gorm.DB) (string, bool) {
	if r.Price.IsNegative() {
		return "Price must not be negative", false
	}
	var category models.Category
	if err := db.First(&category, r.CategoryID).Error; err != nil {
		return "Category not found", false
	}
	return "", true
}

// ListProducts returns products grouped by category, paginated
func ListProducts(c *gin.Context) {
	page := pageParam(c)

	var total int64
	config.DB.Model(&models.Product{}).Count(&total)

	var products []models.Product
	config.DB.Preload("Category").
		Order("category_id, name").
		Limit(productsPerPage).
		Offset((page - 1) * productsPerPage).
		Find(&products)

	c.JSON(http.StatusOK, gin.H{
		"count":    total,
		"page":     page,
		"per_page": productsPerPage,
		"products": products,
	})
}

// CreateProduct creates a product
func CreateProduct(c *gin.Context) {
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if msg, ok := req.validate(config.DB); !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	product := models.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Image:       req.Image,
		CategoryID:  req.CategoryID,
		Available:   req.Available,
		Featured:    req.Featured,
	}
	if err := config.DB.Create(&product).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Product created successfully", "product": product})
}

// UpdateProduct edits a product; UpdatedAt moves, CreatedAt never does
func UpdateProduct(c *gin.Context) {
	var product models.Product
	if err := config.DB.First(&product, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if msg, ok := req.validate(config.DB); !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	product.Name = req.Name
	product.Description = req.Description
	product.Price = req.Price
	product.Image = req.Image
	product.CategoryID = req.CategoryID
	product.Available = req.Available
	product.Featured = req.Featured
	if err := config.DB.Save(&product).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product updated successfully", "product": product})
}

// DeleteProduct removes a product and its historical order items. Orders
// keep their stored totals; they are never recomputed.
func DeleteProduct(c *gin.Context) {
	var product models.Product
	if err := config.DB.First(&product, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("product_id = ?", product.ID).Delete(&models.OrderItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&product).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
}

// ── Orders ─────────────────────────────────────────────────────

// ListOrders returns orders newest first with free-text search on order id
// or customer name and an exact filter on delivery type. Both filters
// combine with AND when present.
func ListOrders(c *gin.Context) {
	page := pageParam(c)

	query := config.DB.Model(&models.Order{})
	if search := c.Query("search"); search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		query = query.Where("CAST(id AS TEXT) LIKE ? OR LOWER(customer_name) LIKE ?", pattern, pattern)
	}
	if deliveryType := c.Query("tipo_entrega"); deliveryType != "" {
		query = query.Where("delivery_type = ?", deliveryType)
	}

	var total int64
	query.Count(&total)

	var orders []models.Order
	query.Preload("Items.Product").
		Order("created_at desc").
		Limit(ordersPerPage).
		Offset((page - 1) * ordersPerPage).
		Find(&orders)

	c.JSON(http.StatusOK, gin.H{
		"count":    total,
		"page":     page,
		"per_page": ordersPerPage,
		"orders":   orders,
	})
}

// GetOrder returns a single order with its items
func GetOrder(c *gin.Context) {
	var order models.Order
	if err := config.DB.Preload("Items.Product").First(&order, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": order})
}

// DeleteOrder cancels an order, removing it with its items
func DeleteOrder(c *gin.Context) {
	var order models.Order
	if err := config.DB.First(&order, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", order.ID).Delete(&models.OrderItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&order).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete order"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order cancelled successfully", "order_id": order.ID})
}

func pageParam(c *gin.Context) int {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	return page
}

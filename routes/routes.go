package routes

import (
	"resto-menu-api/handlers"
	"resto-menu-api/middleware"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine) {
	// ── Public storefront ──────────────────────────────────────────
	public := r.Group("/api")
	public.Use(middleware.SessionCart())
	{
		public.GET("/home", handlers.Home)
		public.GET("/menu", handlers.Menu)
		public.GET("/products/:id", handlers.GetProduct)

		// Cart & checkout
		public.GET("/cart", handlers.GetCart)
		public.POST("/cart", handlers.UpdateCart)
		public.POST("/checkout", handlers.Checkout)
		public.GET("/checkout/confirmation", handlers.Confirmation)
	}

	// ── Panel auth ─────────────────────────────────────────────────
	r.POST("/api/auth/login", handlers.Login)

	// ── Panel (staff only) ─────────────────────────────────────────
	panel := r.Group("/api/panel")
	panel.Use(middleware.AuthRequired())
	{
		panel.GET("/dashboard", handlers.Dashboard)

		// Category management
		panel.GET("/categories", handlers.ListCategories)
		panel.POST("/categories", handlers.CreateCategory)
		panel.PUT("/categories/:id", handlers.UpdateCategory)
		panel.DELETE("/categories/:id", handlers.DeleteCategory)

		// Product management
		panel.GET("/products", handlers.ListProducts)
		panel.POST("/products", handlers.CreateProduct)
		panel.PUT("/products/:id", handlers.UpdateProduct)
		panel.DELETE("/products/:id", handlers.DeleteProduct)

		// Order management
		panel.GET("/orders", handlers.ListOrders)
		panel.GET("/orders/:id", handlers.GetOrder)
		panel.DELETE("/orders/:id", handlers.DeleteOrder)
	}
}

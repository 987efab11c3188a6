package storefront_routes

import (
	"time"

	"github.com/Violet-Essentials/violet-storefront-backend/controllers/storefront/product_controller"
	"github.com/Violet-Essentials/violet-storefront-backend/controllers/storefront/quickview_controller"
	"github.com/Violet-Essentials/violet-storefront-backend/controllers/storefront/stylist_controller"
	"github.com/Violet-Essentials/violet-storefront-backend/middleware"
	"github.com/gin-gonic/gin"
)

// SetupStorefrontRoutes wires the public storefront surface.
func SetupStorefrontRoutes(router *gin.RouterGroup) {
	store := router.Group("/store")

	// Product routes
	products := store.Group("/products")
	{
		products.GET("", product_controller.GetProducts)
		products.POST("", product_controller.ListItem)
		products.GET("/filters", product_controller.GetProductFilters)
		products.GET("/:id", product_controller.GetProductByID)
	}

	// Quick-view routes
	quickview := store.Group("/quickview")
	{
		quickview.POST("", quickview_controller.OpenQuickView)
		quickview.GET("/:id", quickview_controller.GetQuickView)
		quickview.PUT("/:id/size", quickview_controller.SelectSize)
		quickview.POST("/:id/cart", quickview_controller.AddToCart)
		quickview.DELETE("/:id", quickview_controller.DismissQuickView)
	}

	// Stylist routes (rate limited, the only expensive upstream)
	stylist := store.Group("/stylist")
	stylist.Use(middleware.RateLimiter(30, time.Minute))
	{
		stylist.POST("/chat", stylist_controller.Chat)
		stylist.GET("/messages", stylist_controller.GetMessages)
	}
}

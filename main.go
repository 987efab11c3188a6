// @title Violet Essentials Storefront API
// @version 1.0
// @description Violet Essentials storefront backend: catalog, listings, quick view and the AI stylist.
// @host localhost:8081
// @BasePath /api/v1
// @schemes http
package main

import (
	"fmt"
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/Violet-Essentials/violet-storefront-backend/catalog"
	"github.com/Violet-Essentials/violet-storefront-backend/config"
	"github.com/Violet-Essentials/violet-storefront-backend/controllers/storefront/product_controller"
	"github.com/Violet-Essentials/violet-storefront-backend/controllers/storefront/quickview_controller"
	"github.com/Violet-Essentials/violet-storefront-backend/controllers/storefront/stylist_controller"
	_ "github.com/Violet-Essentials/violet-storefront-backend/docs"
	"github.com/Violet-Essentials/violet-storefront-backend/routes/storefront_routes"
	"github.com/Violet-Essentials/violet-storefront-backend/services"
)

func init() {
	_ = godotenv.Load()
}

func main() {
	// Seed the in-memory catalog
	store := catalog.NewStore(catalog.SeedProducts())
	log.Printf("✅ Catalog seeded with %d products", store.Len())

	// Initialize Cloudinary service for listing images
	cloudCfg := config.LoadCloudinaryConfig()
	uploader, err := services.NewCloudinaryService(cloudCfg.CloudName, cloudCfg.APIKey, cloudCfg.APISecret)
	if err != nil {
		log.Fatalf("Failed to initialize Cloudinary: %v", err)
	}
	log.Println("✅ Cloudinary service initialized")

	// Initialize the AI stylist
	stylist := services.NewStylistService(store, config.LoadStylistConfig())
	log.Println("✅ Stylist service initialized")

	// Wire controllers
	product_controller.Init(store, uploader)
	quickview_controller.Init(store, services.NewQuickViewService())
	stylist_controller.Init(stylist)

	corsCfg := cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:3001"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	router := gin.Default()
	router.Use(cors.New(corsCfg))

	// Register API routes
	api := router.Group("/api/v1")
	storefront_routes.SetupStorefrontRoutes(api)
	log.Println("✅ Storefront routes registered")

	// Swagger docs
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	addr := config.ServerAddr()
	fmt.Printf("🚀 Server is running on http://localhost%s\n", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

// @title           DTF Orders Backend API
// @version         1.0.0
// @description     Order-intake API for DTF print jobs: customers upload a print file straight to storage via capability URLs and submit their order; admins review orders, mint download links and update statuses.

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the admin session token.

package main

import (
	"log"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"dtf-orders-backend/docs"
	"dtf-orders-backend/internal/config"
	"dtf-orders-backend/internal/database"
	"dtf-orders-backend/internal/handlers"
	"dtf-orders-backend/internal/middleware"
	"dtf-orders-backend/internal/services"
	"dtf-orders-backend/internal/supabase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Point Swagger at the deployed host
	if cfg.BaseURL != "" {
		if baseURL, err := url.Parse(cfg.BaseURL); err == nil {
			docs.SwaggerInfo.Host = baseURL.Host
			if baseURL.Scheme == "https" {
				docs.SwaggerInfo.Schemes = []string{"https", "http"}
			} else {
				docs.SwaggerInfo.Schemes = []string{"http", "https"}
			}
		}
	}

	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL is required")
	}

	migrator, err := database.NewMigrator(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to initialize migrator: %v", err)
	}
	if err := migrator.Run(); err != nil {
		migrator.Close()
		log.Fatalf("Migration failed: %v", err)
	}
	migrator.Close()
	log.Println("Migrations completed successfully")

	dbClient, err := supabase.NewDatabaseClient(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to initialize database client: %v", err)
	}
	defer dbClient.Close()

	storageClient, err := supabase.NewStorageClient(cfg.SupabaseURL, cfg.SupabaseServiceKey, cfg.SupabaseStorageBucket, cfg.StoragePublicURL)
	if err != nil {
		log.Fatalf("Failed to initialize storage client: %v", err)
	}

	supabaseClient, err := supabase.NewClient(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize Supabase client: %v", err)
	}
	realtimeClient := supabase.NewRealtimeClient(supabaseClient.Supabase)

	orderService := services.NewOrderService(dbClient, storageClient, realtimeClient)

	authHandler := handlers.NewAuthHandler(cfg)
	uploadHandler := handlers.NewUploadHandler(storageClient)
	ordersHandler := handlers.NewOrdersHandler(orderService)
	filesHandler := handlers.NewFilesHandler(orderService)

	router := gin.Default()

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check (no auth)
	router.GET("/health", handlers.HealthHandler)

	api := router.Group("/api/v1")

	// Customer-facing routes
	api.POST("/auth/login", authHandler.Login)
	api.POST("/upload", uploadHandler.CreateUploadURL)
	api.POST("/orders", ordersHandler.CreateOrder)

	// Admin routes
	admin := api.Group("")
	admin.Use(middleware.AdminAuth(cfg))
	admin.GET("/orders", ordersHandler.ListOrders)
	admin.GET("/orders/:order_id", ordersHandler.GetOrder)
	admin.PATCH("/orders/:order_id", ordersHandler.UpdateStatus)
	admin.GET("/orders/:order_id/file", filesHandler.GetFileURLs)
	admin.GET("/orders/:order_id/whatsapp", ordersHandler.GetWhatsAppLink)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, router); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

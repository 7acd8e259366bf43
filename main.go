package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"hotelops-backend/config"
	"hotelops-backend/controllers"
	"hotelops-backend/routes"
	"hotelops-backend/services"
	"hotelops-backend/utils"
)

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  .env not found or couldn't load it; continuing with environment variables")
	}

	if os.Getenv("JWT_SECRET") == "" {
		log.Fatal("❌ ERROR: JWT_SECRET environment variable is not set. Cannot sign tokens.")
	}

	if err := config.ConnectDatabase(); err != nil {
		log.Fatalf("❌ Database connect failed: %v", err)
	}
	db := config.DB
	if db == nil {
		log.Fatal("❌ config.DB is nil after ConnectDatabase()")
	}
	log.Println("✅ Database connection established and migrations applied.")

	// Initialize services
	hotelService := services.NewHotelService(db)
	billingService := services.NewBillingService(db)
	catalogService := services.NewCatalogService(db)
	roomTypeService := services.NewRoomTypeService(db)
	foodService := services.NewFoodItemService(db)
	serviceItemService := services.NewServiceItemService(db)
	staffService := services.NewStaffService(db)
	attendanceService := services.NewAttendanceService(db)
	inventoryService := services.NewInventoryService(db)
	crashReportService := services.NewCrashReportService(db)
	reportService := services.NewReportService(db, staffService)

	// Initialize controllers
	authController := controllers.NewAuthController(db)
	hotelController := controllers.NewHotelController(hotelService)
	billingController := controllers.NewBillingController(billingService, hotelService)
	catalogController := controllers.NewCatalogController(catalogService, hotelService)
	roomTypeController := controllers.NewRoomTypeController(roomTypeService, hotelService)
	foodController := controllers.NewFoodController(foodService, hotelService)
	serviceController := controllers.NewServiceController(serviceItemService, hotelService)
	staffController := controllers.NewStaffController(staffService, attendanceService, hotelService)
	inventoryController := controllers.NewInventoryController(inventoryService, hotelService)
	crashReportController := controllers.NewCrashReportController(crashReportService, hotelService)
	dashboardController := controllers.NewDashboardController(reportService, hotelService)

	router := routes.SetupRouter(
		authController,
		hotelController,
		billingController,
		catalogController,
		roomTypeController,
		foodController,
		serviceController,
		staffController,
		inventoryController,
		crashReportController,
		dashboardController,
	)

	// Port from env (prefer), fallback to 8080
	addr := ":" + utils.EnvOrDefault("PORT", "8080")

	srv := &http.Server{
		Addr:    addr,
		Handler: router,
		// useful timeouts
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("🚀 Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ ListenAndServe(): %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with timeout
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("⚠️  Shutdown signal received, shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}

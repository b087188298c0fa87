package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/dongans/billiard-app/config"
	"github.com/dongans/billiard-app/database"
	"github.com/dongans/billiard-app/events"
	"github.com/dongans/billiard-app/mailer"
	"github.com/dongans/billiard-app/middlewares"
	"github.com/dongans/billiard-app/router"
	"github.com/dongans/billiard-app/storage"
	"github.com/dongans/billiard-app/utils"
)

func init() {
	// Load .env file di awal sebelum apapun
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or error loading: %v", err)
	}

	utils.InitLogger()
}

func main() {
	// Initialize DB
	db, err := config.InitDB()
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to connect to database: %v", err)
	}

	// Simpan koneksi database ke utils untuk digunakan di controller
	utils.InitDB(db)

	// Set gin mode
	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := database.Migrate(db); err != nil {
		utils.ErrorLogger.Fatalf("Failed to AutoMigrate: %v", err)
	}
	utils.InfoLogger.Println("AutoMigrate completed.")

	store, err := storage.New()
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to initialize object storage: %v", err)
	}

	sender := mailer.New()
	hub := events.NewHub()

	// Setup rate limiter (50 requests per second per IP)
	rateLimiter := middlewares.NewRateLimiter(50, 1)

	r := router.SetupRouter(db, store, sender, hub)
	r.Use(rateLimiter.RateLimit())

	// Run server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	utils.InfoLogger.Printf("Listening on port %s", port)
	if err := r.Run(":" + port); err != nil {
		utils.ErrorLogger.Fatal(err)
	}
}

package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/zascript/qrlink-core/internal/accounts"
	"github.com/zascript/qrlink-core/internal/config"
	"github.com/zascript/qrlink-core/internal/database"
	"github.com/zascript/qrlink-core/internal/qr"
	"github.com/zascript/qrlink-core/internal/router"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println(".env not loaded, continuing with environment variables")
	}

	if m := os.Getenv("GIN_MODE"); m != "" {
		gin.SetMode(m)
	}

	cfg := config.Load()

	if err := database.Connect(); err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	// run migrations to create tables
	if err := database.Migrate(&accounts.Account{}, &qr.Profile{}); err != nil {
		log.Fatalf("migrations failed: %v", err)
	}

	r := router.New(cfg)

	log.Printf("base URL: %s", cfg.BaseURL)
	if cfg.MobileBaseURL != "" {
		log.Printf("mobile base URL: %s", cfg.MobileBaseURL)
	} else {
		log.Println("mobile base URL: not configured")
	}

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

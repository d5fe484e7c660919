package main

import (
	"log"

	"github.com/anonto42/social-crud/backend/internal/repositories"
	"github.com/anonto42/social-crud/backend/internal/router"
	"github.com/anonto42/social-crud/backend/pkg/config"
	"github.com/labstack/echo/v4"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize the store selected by DATABASE_URL / DB_PATH
	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.CloseDB()

	if err := repositories.AutoMigrate(db.SQL); err != nil {
		log.Fatalf("Failed to auto migrate models: %v", err)
	}

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true

	// Setup global middleware
	config.SetupMiddleware(e)

	// Setup routes and dependencies
	router.SetupRoutes(e, db.SQL)

	// Start server
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}

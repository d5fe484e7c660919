package router

import (
	"log"

	"github.com/anonto42/social-crud/backend/internal/handlers"
	"github.com/anonto42/social-crud/backend/internal/repositories"
	"github.com/anonto42/social-crud/backend/validators"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// SetupRoutes configures all application routes and injects the store handle
func SetupRoutes(e *echo.Echo, db *gorm.DB) {
	e.Validator = validators.NewValidator()

	healthHandler := handlers.NewHealthHandler(db)
	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/", handlers.Sitemap)

	// --- Initialize Repositories ---
	userRepo := repositories.NewGormUserRepository(db)
	postRepo := repositories.NewGormPostRepository(db)
	commentRepo := repositories.NewGormCommentRepository(db)
	mediaRepo := repositories.NewGormMediaRepository(db)
	followerRepo := repositories.NewGormFollowerRepository(db)

	handlers.NewUserHandler(userRepo).RegisterUserRoutes(e)
	log.Println("User routes configured.")

	handlers.NewPostHandler(postRepo).RegisterPostRoutes(e)
	log.Println("Post routes configured.")

	handlers.NewCommentHandler(commentRepo).RegisterCommentRoutes(e)
	log.Println("Comment routes configured.")

	handlers.NewMediaHandler(mediaRepo).RegisterMediaRoutes(e)
	log.Println("Media routes configured.")

	handlers.NewFollowerHandler(followerRepo).RegisterFollowerRoutes(e)
	log.Println("Follower routes configured.")

	log.Println("All routes configured.")
}

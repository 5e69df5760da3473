package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/clinicdash/backpain-api/controllers"
	"github.com/clinicdash/backpain-api/middleware"
)

// SetupAuthRoutes configures all authentication related routes
func SetupAuthRoutes(app *fiber.App) {
	auth := app.Group("/api/auth")

	// Public routes
	auth.Post("/register", controllers.Register)
	auth.Post("/login", controllers.Login)

	// Protected routes
	auth.Get("/me", middleware.Protected(), controllers.GetMe)
	auth.Put("/profile", middleware.Protected(), controllers.UpdateProfile)
	auth.Post("/profile/picture", middleware.Protected(), controllers.UploadProfilePicture)
}

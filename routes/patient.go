package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/clinicdash/backpain-api/controllers"
	"github.com/clinicdash/backpain-api/middleware"
)

// SetupPatientRoutes configures all patient related routes
func SetupPatientRoutes(app *fiber.App) {
	patients := app.Group("/api/patients", middleware.Protected())
	patients.Get("/", controllers.GetAllPatients)
	patients.Get("/search", controllers.SearchPatients)
	patients.Get("/:id", controllers.GetPatient)
}

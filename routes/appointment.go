package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/clinicdash/backpain-api/controllers"
	"github.com/clinicdash/backpain-api/middleware"
)

// SetupAppointmentRoutes configures all appointment related routes
func SetupAppointmentRoutes(app *fiber.App) {
	appointments := app.Group("/api/appointments", middleware.Protected())
	appointments.Get("/", controllers.GetAllAppointments)
	appointments.Post("/", controllers.CreateAppointment)
	appointments.Put("/:id", controllers.UpdateAppointmentStatus)
	appointments.Delete("/:id", controllers.DeleteAppointment)
}

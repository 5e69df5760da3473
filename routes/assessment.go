package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/clinicdash/backpain-api/controllers"
	"github.com/clinicdash/backpain-api/middleware"
)

// SetupAssessmentRoutes configures all assessment related routes.
// Fixed paths are registered before the :id parameter so they are
// matched first.
func SetupAssessmentRoutes(app *fiber.App) {
	assessments := app.Group("/api/assessments", middleware.Protected())
	assessments.Get("/", controllers.GetAllAssessments)
	assessments.Post("/", controllers.CreateAssessment)
	assessments.Get("/recent", controllers.GetRecentAssessments)
	assessments.Get("/stats/overview", controllers.GetStatsOverview)
	assessments.Get("/user/:email", controllers.GetAssessmentsByEmail)
	assessments.Get("/:id", controllers.GetAssessment)
}

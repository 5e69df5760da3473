package main

import (
	"fmt"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"github.com/clinicdash/backpain-api/cron"
	"github.com/clinicdash/backpain-api/db"
	"github.com/clinicdash/backpain-api/redis"
	"github.com/clinicdash/backpain-api/routes"
)

func main() {
	// "migrate" and "seed" run as one-off commands against the same binary
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "migrate":
			db.Migrate()
			return
		case "seed":
			db.Seed()
			return
		default:
			fmt.Println("Unknown command:", os.Args[1])
			os.Exit(1)
		}
	}

	app := fiber.New()
	db.Init()
	redis.InitRedis()

	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))

	// Root route doubles as the health probe the dashboard client hits
	app.Get("/", func(c *fiber.Ctx) error {
		env := os.Getenv("APP_ENV")
		if env == "" {
			env = "development"
		}
		return c.JSON(fiber.Map{
			"status":      "ok",
			"message":     "Back Pain Clinic Dashboard API is running",
			"serverTime":  time.Now().UTC().Format(time.RFC3339),
			"environment": env,
			"version":     "1.0.0",
		})
	})

	routes.SetupAuthRoutes(app)
	routes.SetupPatientRoutes(app)
	routes.SetupAssessmentRoutes(app)
	routes.SetupAppointmentRoutes(app)

	if os.Getenv("ENABLE_REMINDERS") == "true" {
		cron.StartCronJobs()
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "5003"
	}

	app.Listen(":" + port)
}

package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"github.com/rubulgithub/College-Payment-Management/app/config"
	"github.com/rubulgithub/College-Payment-Management/app/database"
	"github.com/rubulgithub/College-Payment-Management/app/routes/auth"
	"github.com/rubulgithub/College-Payment-Management/app/routes/classes"
	"github.com/rubulgithub/College-Payment-Management/app/routes/payments"
	"github.com/rubulgithub/College-Payment-Management/app/routes/reports"
	"github.com/rubulgithub/College-Payment-Management/app/routes/schedules"
	"github.com/rubulgithub/College-Payment-Management/app/routes/students"
)

// customErrorHandler renders every error as a JSON envelope
func customErrorHandler(c *fiber.Ctx, err error) error {
	// Status code defaults to 500
	code := fiber.StatusInternalServerError

	// Retrieve the custom status code if it's a *fiber.Error
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"status":  code,
		"message": err.Error(),
	})
}

func main() {
	// Load configuration and connect to the database
	cfg := config.Load()
	defer cfg.DB.Close()

	// Run database migrations
	if err := database.RunMigrations(cfg.DB); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(logger.New())
	app.Use(cors.New())

	// Routes
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  fiber.StatusOK,
			"message": "College Payment Management API",
		})
	})

	// Setup auth routes
	auth.SetupAuthRoutes(app, cfg)

	// Setup class routes
	classes.SetupClassRoutes(app, cfg)

	// Setup student routes
	students.SetupStudentRoutes(app, cfg)

	// Setup payment routes
	payments.SetupPaymentRoutes(app, cfg)

	// Setup fee schedule routes
	schedules.SetupScheduleRoutes(app, cfg)

	// Setup report routes
	reports.SetupReportRoutes(app, cfg)

	// Catch-all route for 404 errors (must be last)
	app.Use("*", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "Route not found")
	})

	// Start server
	log.Println("Server starting on :" + cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}

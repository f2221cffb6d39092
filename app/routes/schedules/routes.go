package schedules

import (
	"github.com/gofiber/fiber/v2"

	"github.com/rubulgithub/College-Payment-Management/app/config"
	"github.com/rubulgithub/College-Payment-Management/app/routes/auth"
)

// SetupScheduleRoutes registers the monthly fee schedule endpoints.
func SetupScheduleRoutes(app *fiber.App, cfg *config.Config) {
	api := app.Group("/api/v1/fees")
	api.Use(auth.Protected(cfg))

	api.Post("/generate", func(c *fiber.Ctx) error {
		return GenerateSchedulesAPI(c, cfg.DB)
	})

	api.Get("/student/:studentId", func(c *fiber.Ctx) error {
		return GetScheduleByStudentAPI(c, cfg.DB)
	})

	api.Patch("/:scheduleId/status", func(c *fiber.Ctx) error {
		return UpdateScheduleStatusAPI(c, cfg.DB)
	})
}

package reports

import (
	"github.com/gofiber/fiber/v2"

	"github.com/rubulgithub/College-Payment-Management/app/config"
	"github.com/rubulgithub/College-Payment-Management/app/routes/auth"
)

// SetupReportRoutes registers the report endpoints.
func SetupReportRoutes(app *fiber.App, cfg *config.Config) {
	api := app.Group("/api/v1/report")
	api.Use(auth.Protected(cfg))

	api.Get("/fees", func(c *fiber.Ctx) error {
		return GetFeeReportAPI(c, cfg.DB)
	})

	api.Get("/remaining", func(c *fiber.Ctx) error {
		return GetRemainingFeeReportAPI(c, cfg.DB)
	})

	api.Get("/pending-payments", func(c *fiber.Ctx) error {
		return GetPendingPaymentsReportAPI(c, cfg.DB)
	})

	api.Get("/pending-students", func(c *fiber.Ctx) error {
		return GetStudentsWithDuesAPI(c, cfg.DB)
	})

	api.Get("/summary", func(c *fiber.Ctx) error {
		return GetFeeSummaryAPI(c, cfg)
	})
}

package payments

import (
	"github.com/gofiber/fiber/v2"

	"github.com/rubulgithub/College-Payment-Management/app/config"
	"github.com/rubulgithub/College-Payment-Management/app/routes/auth"
)

// SetupPaymentRoutes registers the fee payment endpoints.
func SetupPaymentRoutes(app *fiber.App, cfg *config.Config) {
	api := app.Group("/api/v1/payment")
	api.Use(auth.Protected(cfg))

	api.Post("/", func(c *fiber.Ctx) error {
		return RecordPaymentAPI(c, cfg.DB)
	})

	api.Get("/", func(c *fiber.Ctx) error {
		return GetPaymentsAPI(c, cfg.DB)
	})

	api.Get("/student/:studentId", func(c *fiber.Ctx) error {
		return GetPaymentsByStudentAPI(c, cfg.DB)
	})

	api.Delete("/:id", func(c *fiber.Ctx) error {
		return DeletePaymentAPI(c, cfg.DB)
	})
}

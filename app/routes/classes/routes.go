package classes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/rubulgithub/College-Payment-Management/app/config"
	"github.com/rubulgithub/College-Payment-Management/app/routes/auth"
)

// SetupClassRoutes registers the class CRUD endpoints.
func SetupClassRoutes(app *fiber.App, cfg *config.Config) {
	api := app.Group("/api/v1/class")
	api.Use(auth.Protected(cfg))

	api.Post("/", func(c *fiber.Ctx) error {
		return CreateClassAPI(c, cfg.DB)
	})

	api.Get("/", func(c *fiber.Ctx) error {
		return GetClassesAPI(c, cfg.DB)
	})

	api.Get("/:id", func(c *fiber.Ctx) error {
		return GetClassByIDAPI(c, cfg.DB)
	})

	api.Put("/:id", func(c *fiber.Ctx) error {
		return UpdateClassAPI(c, cfg.DB)
	})

	api.Delete("/:id", func(c *fiber.Ctx) error {
		return DeleteClassAPI(c, cfg.DB)
	})
}

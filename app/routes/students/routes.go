package students

import (
	"github.com/gofiber/fiber/v2"

	"github.com/rubulgithub/College-Payment-Management/app/config"
	"github.com/rubulgithub/College-Payment-Management/app/routes/auth"
)

// SetupStudentRoutes registers the student endpoints. The search route must
// precede the id route so "search" is not captured as an id.
func SetupStudentRoutes(app *fiber.App, cfg *config.Config) {
	api := app.Group("/api/v1/student")
	api.Use(auth.Protected(cfg))

	api.Post("/", func(c *fiber.Ctx) error {
		return CreateStudentAPI(c, cfg.DB)
	})

	api.Get("/", func(c *fiber.Ctx) error {
		return GetStudentsAPI(c, cfg.DB)
	})

	api.Get("/search", func(c *fiber.Ctx) error {
		return SearchStudentAPI(c, cfg.DB)
	})

	api.Get("/:id", func(c *fiber.Ctx) error {
		return GetStudentByIDAPI(c, cfg.DB)
	})

	api.Put("/:id", func(c *fiber.Ctx) error {
		return UpdateStudentAPI(c, cfg.DB)
	})

	api.Delete("/:id", func(c *fiber.Ctx) error {
		return DeleteStudentAPI(c, cfg.DB)
	})
}

package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/rubulgithub/College-Payment-Management/app/config"
)

// SetupAuthRoutes registers the login and logout endpoints.
func SetupAuthRoutes(app *fiber.App, cfg *config.Config) {
	api := app.Group("/api/v1/auth")

	api.Post("/login", func(c *fiber.Ctx) error {
		return LoginAPI(c, cfg)
	})
	api.Post("/logout", LogoutAPI)
}

// Protected returns middleware that requires a valid admin token, supplied
// either as the "token" cookie or a bearer Authorization header.
func Protected(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := c.Cookies("token")
		if tokenString == "" {
			header := c.Get("Authorization")
			if strings.HasPrefix(header, "Bearer ") {
				tokenString = strings.TrimPrefix(header, "Bearer ")
			}
		}

		if tokenString == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "No token provided")
		}

		claims, err := ValidateJWT(cfg.JWT, tokenString)
		if err != nil {
			return fiber.NewError(fiber.StatusForbidden, "Invalid token")
		}

		c.Locals("admin_email", claims.Email)
		return c.Next()
	}
}

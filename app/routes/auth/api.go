package auth

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/rubulgithub/College-Payment-Management/app/config"
)

// LoginAPI verifies the admin credentials against the startup configuration
// and issues a JWT, both as an HTTP-only cookie and in the response body.
func LoginAPI(c *fiber.Ctx, cfg *config.Config) error {
	type LoginRequest struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	if req.Email == "" || req.Password == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Email and password are required")
	}

	if req.Email != cfg.Admin.Email || !CheckPasswordHash(req.Password, cfg.Admin.PasswordHash) {
		return fiber.NewError(fiber.StatusUnauthorized, "Invalid credentials")
	}

	token, err := GenerateJWT(cfg.JWT, req.Email)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to generate token")
	}

	c.Cookie(&fiber.Cookie{
		Name:     "token",
		Value:    token,
		Expires:  time.Now().Add(cfg.JWT.Expiry),
		HTTPOnly: true,
		SameSite: "Lax",
	})

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":  fiber.StatusOK,
		"data":    fiber.Map{"token": token},
		"message": "You are logged in successfully",
	})
}

// LogoutAPI clears the admin token cookie.
func LogoutAPI(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     "token",
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
	})

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":  fiber.StatusOK,
		"message": "Logged out successfully",
	})
}

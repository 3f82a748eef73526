package handler

import (
	"inventory-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	authService service.AuthService
}

func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Register creates a user account
// POST /api/auth/register
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req service.CredentialsRequest
	if err := c.BodyParser(&req); err != nil {
		return bodyError(c, err)
	}

	user, err := h.authService.Register(c.UserContext(), &req)
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"msg":    "User registered successfully",
		"userId": user.ID,
	})
}

// Login exchanges credentials for a session token
// POST /api/auth/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req service.CredentialsRequest
	if err := c.BodyParser(&req); err != nil {
		return bodyError(c, err)
	}

	response, err := h.authService.Login(c.UserContext(), &req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(response)
}

// Health reports liveness
// GET /api/health
func Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

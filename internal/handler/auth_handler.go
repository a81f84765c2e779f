package handler

import (
	"smartshelfx/internal/model"
	"smartshelfx/internal/service"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	authService service.AuthService
}

func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// LoginRequest represents the login request body
type LoginRequest struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Login handles role-asserted sign-in
// POST /api/v1/auth/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if req.Email == "" || req.Role == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Email and role are required"})
	}

	response, err := h.authService.Login(req.Email, model.Role(req.Role))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(response)
}

// Logout clears the persisted session slot
// POST /api/v1/auth/logout
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	h.authService.Logout()
	return c.JSON(fiber.Map{"message": "Logged out"})
}

package handler

import (
	"strconv"

	"smartshelfx/internal/model"

	"github.com/gofiber/fiber/v2"
)

// User info helpers reading the JWT context set by RequireAuth.

func getUserID(c *fiber.Ctx) int64 {
	if id, ok := c.Locals("user_id").(int64); ok {
		return id
	}
	return 0
}

func getUserName(c *fiber.Ctx) string {
	if name, ok := c.Locals("user_name").(string); ok {
		return name
	}
	return "Unknown"
}

func getUserRole(c *fiber.Ctx) model.Role {
	if role, ok := c.Locals("user_role").(string); ok {
		return model.Role(role)
	}
	return ""
}

func parseID(raw string) (int64, error) {
	return strconv.ParseInt(raw, 10, 64)
}

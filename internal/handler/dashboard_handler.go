package handler

import (
	"smartshelfx/internal/service"
	"smartshelfx/internal/store"

	"github.com/gofiber/fiber/v2"
)

type DashboardHandler struct {
	service service.DashboardService
	state   *store.State
}

func NewDashboardHandler(s service.DashboardService, state *store.State) *DashboardHandler {
	return &DashboardHandler{service: s, state: state}
}

// GetDashboardStats returns overview statistics
func (h *DashboardHandler) GetDashboardStats(c *fiber.Ctx) error {
	return c.JSON(h.service.GetDashboardStats())
}

// GetNavigation reports the raw stored path and the screen it resolves to.
func (h *DashboardHandler) GetNavigation(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"path":   h.state.CurrentPath(),
		"screen": h.state.CurrentScreen(),
	})
}

// SetNavigationRequest represents the navigation update body
type SetNavigationRequest struct {
	Path string `json:"path"`
}

// SetNavigation stores a new current path. Unrecognized values are accepted
// as-is and resolve to the dashboard.
func (h *DashboardHandler) SetNavigation(c *fiber.Ctx) error {
	var req SetNavigationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	h.state.SetPath(req.Path)
	return c.JSON(fiber.Map{
		"path":   h.state.CurrentPath(),
		"screen": h.state.CurrentScreen(),
	})
}

package handler

import (
	"smartshelfx/internal/forecast"
	"smartshelfx/internal/store"

	"github.com/gofiber/fiber/v2"
)

type ForecastHandler struct {
	gateway *forecast.Gateway
	state   *store.State
}

func NewForecastHandler(g *forecast.Gateway, state *store.State) *ForecastHandler {
	return &ForecastHandler{gateway: g, state: state}
}

// GetSalesForecast runs one model call over the whole product list. The
// response is identical in shape whether it came from the live model or the
// local fallback; callers cannot tell the difference.
func (h *ForecastHandler) GetSalesForecast(c *fiber.Ctx) error {
	items := h.gateway.GenerateSalesForecast(h.state.Products())
	return c.JSON(items)
}

// GetRestockSuggestions analyzes products near their reorder levels.
func (h *ForecastHandler) GetRestockSuggestions(c *fiber.Ctx) error {
	suggestions := h.gateway.AnalyzeRestockNeeds(h.state.Products())
	return c.JSON(suggestions)
}

// AskRequest represents the assistant question body
type AskRequest struct {
	Question string `json:"question"`
}

// AskAssistant forwards a free-text question with a condensed inventory
// summary and returns the model's reply verbatim.
// POST /api/v1/forecast/assistant
func (h *ForecastHandler) AskAssistant(c *fiber.Ctx) error {
	var req AskRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	if req.Question == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Question is required"})
	}

	answer := h.gateway.AskInventoryAssistant(req.Question, h.state.Products(), h.state.Orders())
	return c.JSON(fiber.Map{"answer": answer})
}

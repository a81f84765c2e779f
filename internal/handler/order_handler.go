package handler

import (
	"smartshelfx/internal/model"
	"smartshelfx/internal/service"

	"github.com/gofiber/fiber/v2"
)

type OrderHandler struct {
	service service.OrderService
}

func NewOrderHandler(s service.OrderService) *OrderHandler {
	return &OrderHandler{service: s}
}

// GetOrders lists purchase orders, filtered by the caller's role:
// VENDOR sees only fuzzy-matched orders.
func (h *OrderHandler) GetOrders(c *fiber.Ctx) error {
	caller := model.User{
		ID:   getUserID(c),
		Name: getUserName(c),
		Role: getUserRole(c),
	}
	return c.JSON(h.service.ListFor(caller))
}

func (h *OrderHandler) CreateOrder(c *fiber.Ctx) error {
	var order model.PurchaseOrder
	if err := c.BodyParser(&order); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	created, err := h.service.Create(&order, getUserName(c))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(201).JSON(fiber.Map{"message": "Order created", "data": created})
}

// UpdateStatusRequest represents the status update body
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// UpdateOrderStatus sets an order's status. Moving into DELIVERED records the
// automatic IN transaction for the SKU-matched product.
// PATCH /api/v1/orders/:id/status
func (h *OrderHandler) UpdateOrderStatus(c *fiber.Ctx) error {
	orderID := c.Params("id")

	var req UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if err := h.service.UpdateStatus(orderID, model.OrderStatus(req.Status), getUserName(c)); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Order status updated"})
}

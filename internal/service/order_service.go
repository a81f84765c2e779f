package service

import (
	"errors"
	"fmt"

	"smartshelfx/internal/model"
	"smartshelfx/internal/store"
	"smartshelfx/internal/ws"
	"smartshelfx/pkg/validator"
)

var ErrInvalidStatus = errors.New("unrecognized order status")

type OrderService interface {
	ListFor(u model.User) []model.PurchaseOrder
	Create(req *model.PurchaseOrder, actorName string) (model.PurchaseOrder, error)
	UpdateStatus(orderID string, status model.OrderStatus, actorName string) error
}

type orderService struct {
	state *store.State
	wsHub *ws.Hub
}

func NewOrderService(state *store.State, hub *ws.Hub) OrderService {
	return &orderService{state: state, wsHub: hub}
}

// ListFor applies the vendor-visibility heuristic for VENDOR callers and
// returns everything for the other roles.
func (s *orderService) ListFor(u model.User) []model.PurchaseOrder {
	return s.state.OrdersVisibleTo(u)
}

func (s *orderService) Create(req *model.PurchaseOrder, actorName string) (model.PurchaseOrder, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		first := errs[0]
		return model.PurchaseOrder{}, fmt.Errorf("validation failed: field '%s' failed on tag '%s'", first.FailedField, first.Tag)
	}

	created := s.state.AddOrder(*req)

	s.wsHub.BroadcastEvent(ws.Event{
		Type:    "order_created",
		Payload: created,
		Message: fmt.Sprintf("%s raised %s for %d x %s", actorName, created.ID, created.Quantity, created.SKU),
	})
	return created, nil
}

// UpdateStatus rejects unrecognized statuses but performs no transition-table
// checks: any recognized status can be set at any time. An unknown order id
// is a silent no-op in the container. Transitioning into DELIVERED triggers
// the container's auto-restock side effect.
func (s *orderService) UpdateStatus(orderID string, status model.OrderStatus, actorName string) error {
	if !status.Valid() {
		return ErrInvalidStatus
	}

	s.state.UpdateOrderStatus(orderID, status)

	s.wsHub.BroadcastEvent(ws.Event{
		Type:    "order_status_changed",
		Payload: map[string]string{"id": orderID, "status": string(status)},
		Message: fmt.Sprintf("%s moved %s to %s", actorName, orderID, status),
	})
	return nil
}

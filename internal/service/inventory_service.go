package service

import (
	"errors"
	"fmt"

	"smartshelfx/internal/model"
	"smartshelfx/internal/store"
	"smartshelfx/internal/ws"
	"smartshelfx/pkg/validator"
)

var ErrInsufficientStock = errors.New("insufficient stock for dispatch")

type InventoryService interface {
	GetAllProducts() []model.Product
	CreateProduct(req *model.Product, actorName string) (model.Product, error)
	UpdateProduct(req model.Product, actorName string) error
	DeleteProduct(id int64, actorName string)
	GetAllTransactions() []model.Transaction
	RecordTransaction(req *model.Transaction, actorName string) (model.Transaction, error)
}

type inventoryService struct {
	state *store.State
	wsHub *ws.Hub
}

func NewInventoryService(state *store.State, hub *ws.Hub) InventoryService {
	return &inventoryService{state: state, wsHub: hub}
}

func (s *inventoryService) GetAllProducts() []model.Product {
	return s.state.Products()
}

func (s *inventoryService) CreateProduct(req *model.Product, actorName string) (model.Product, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		first := errs[0]
		return model.Product{}, fmt.Errorf("validation failed: field '%s' failed on tag '%s'", first.FailedField, first.Tag)
	}

	created := s.state.AddProduct(*req)

	s.wsHub.BroadcastEvent(ws.Event{
		Type:    "product_created",
		Payload: created,
		Message: fmt.Sprintf("%s added product '%s'", actorName, created.Name),
	})
	return created, nil
}

// UpdateProduct validates the payload and hands it to the container. An
// unknown id is a silent no-op there, so this never reports "not found".
func (s *inventoryService) UpdateProduct(req model.Product, actorName string) error {
	if errs := validator.ValidateStruct(&req); len(errs) > 0 {
		first := errs[0]
		return fmt.Errorf("validation failed: field '%s' failed on tag '%s'", first.FailedField, first.Tag)
	}

	s.state.UpdateProduct(req)

	s.wsHub.BroadcastEvent(ws.Event{
		Type:    "product_updated",
		Payload: req,
		Message: fmt.Sprintf("%s updated product '%s'", actorName, req.Name),
	})
	return nil
}

func (s *inventoryService) DeleteProduct(id int64, actorName string) {
	s.state.DeleteProduct(id)

	s.wsHub.BroadcastEvent(ws.Event{
		Type:    "product_deleted",
		Payload: map[string]int64{"id": id},
		Message: fmt.Sprintf("%s deleted a product", actorName),
	})
}

func (s *inventoryService) GetAllTransactions() []model.Transaction {
	return s.state.Transactions()
}

// RecordTransaction applies the one cross-collection mutation. The dispatch
// stock check is advisory and lives here, at the presentation boundary: any
// caller going straight to the container can still drive stock negative.
func (s *inventoryService) RecordTransaction(req *model.Transaction, actorName string) (model.Transaction, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		first := errs[0]
		return model.Transaction{}, fmt.Errorf("validation failed: field '%s' failed on tag '%s'", first.FailedField, first.Tag)
	}

	if req.Type == model.TxOut {
		for _, p := range s.state.Products() {
			if p.ID == req.ProductID && p.CurrentStock < req.Quantity {
				return model.Transaction{}, ErrInsufficientStock
			}
		}
	}

	tx := s.state.RecordTransaction(req.ProductID, req.Type, req.Quantity, actorName)

	verb := "received"
	if tx.Type == model.TxOut {
		verb = "dispatched"
	}
	s.wsHub.BroadcastEvent(ws.Event{
		Type:    "transaction_recorded",
		Payload: tx,
		Message: fmt.Sprintf("%s %s %d units of '%s'", actorName, verb, tx.Quantity, tx.ProductName),
	})
	return tx, nil
}

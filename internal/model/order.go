package model

type OrderStatus string

const (
	StatusPending   OrderStatus = "PENDING"
	StatusApproved  OrderStatus = "APPROVED"
	StatusShipped   OrderStatus = "SHIPPED"
	StatusDelivered OrderStatus = "DELIVERED"
	StatusCancelled OrderStatus = "CANCELLED"
)

// StatusProgression is the nominal linear path of an order. The store does
// not enforce it as a transition table; it documents the expected sequence.
var StatusProgression = []OrderStatus{
	StatusPending, StatusApproved, StatusShipped, StatusDelivered,
}

// Valid reports whether s is a recognized order status.
func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// PurchaseOrder is a requested restock of one SKU from a vendor. The id is
// "PO-" plus a random integer in [0,10000): collisions are possible and the
// source scheme is kept as-is. SKU is a soft string reference to a product.
// TotalCost is computed once at creation and never recomputed.
type PurchaseOrder struct {
	ID          string      `json:"id"`
	SKU         string      `json:"sku" validate:"required"`
	ProductName string      `json:"product_name"`
	Quantity    int         `json:"quantity" validate:"required,gt=0"`
	Vendor      string      `json:"vendor"`
	Status      OrderStatus `json:"status"`
	CreatedAt   string      `json:"created_at"` // display string
	TotalCost   float64     `json:"total_cost"`
}

package model

type TransactionType string

const (
	TxIn  TransactionType = "IN"
	TxOut TransactionType = "OUT"
)

// Transaction is one stock movement. Records are append-only and kept
// newest-first by prepending on creation; they are never edited or deleted.
// ProductID is a soft reference: deleting the product leaves the record behind.
type Transaction struct {
	ID          int64           `json:"id"`
	ProductID   int64           `json:"product_id" validate:"required"`
	ProductName string          `json:"product_name"`
	Type        TransactionType `json:"type" validate:"required,oneof=IN OUT"`
	Quantity    int             `json:"quantity" validate:"required,gt=0"`
	Timestamp   string          `json:"timestamp"` // display string, not a sortable epoch
	Handler     string          `json:"handler"`
}

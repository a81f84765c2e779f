package model

// Product is a stocked item. SKU is intended-unique but not enforced,
// and CurrentStock may go negative: dispatch checks are advisory only.
type Product struct {
	ID           int64   `json:"id"`
	SKU          string  `json:"sku" validate:"required"`
	Name         string  `json:"name" validate:"required"`
	Category     string  `json:"category"`
	Vendor       string  `json:"vendor"`
	CurrentStock int     `json:"current_stock"`
	ReorderLevel int     `json:"reorder_level"`
	UnitPrice    float64 `json:"unit_price"`
}

// NeedsRestock reports whether the product sits at or below its reorder level.
func (p Product) NeedsRestock() bool {
	return p.CurrentStock <= p.ReorderLevel
}

package service

import (
	"smartshelfx/internal/model"
	"smartshelfx/internal/store"
)

type DashboardStats struct {
	TotalProducts      int                 `json:"total_products"`
	TotalStockValue    float64             `json:"total_stock_value"`
	LowStockProducts   []model.Product     `json:"low_stock_products"`
	PendingOrders      int                 `json:"pending_orders"`
	UnitsIn            int                 `json:"units_in"`
	UnitsOut           int                 `json:"units_out"`
	RecentTransactions []model.Transaction `json:"recent_transactions"`
}

type DashboardService interface {
	GetDashboardStats() DashboardStats
}

type dashboardService struct {
	state *store.State
}

func NewDashboardService(state *store.State) DashboardService {
	return &dashboardService{state: state}
}

// GetDashboardStats reduces the in-memory collections into the overview
// numbers. Movement totals sum quantities by direction across the whole
// history; timestamps are display strings and are never parsed for this.
func (s *dashboardService) GetDashboardStats() DashboardStats {
	products := s.state.Products()
	transactions := s.state.Transactions()
	orders := s.state.Orders()

	stats := DashboardStats{
		TotalProducts:    len(products),
		LowStockProducts: []model.Product{},
	}

	for _, p := range products {
		stats.TotalStockValue += float64(p.CurrentStock) * p.UnitPrice
		if p.NeedsRestock() {
			stats.LowStockProducts = append(stats.LowStockProducts, p)
		}
	}

	for _, tx := range transactions {
		if tx.Type == model.TxIn {
			stats.UnitsIn += tx.Quantity
		} else {
			stats.UnitsOut += tx.Quantity
		}
	}

	for _, o := range orders {
		if o.Status == model.StatusPending {
			stats.PendingOrders++
		}
	}

	// already newest-first by construction
	recent := transactions
	if len(recent) > 5 {
		recent = recent[:5]
	}
	stats.RecentTransactions = recent

	return stats
}

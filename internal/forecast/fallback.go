package forecast

import (
	"math/rand"

	"smartshelfx/internal/model"
)

const (
	fallbackConfidence = 85
	fallbackReason     = "Stock fell below reorder level threshold."

	assistantUnavailable = "Sorry, the inventory assistant is unavailable right now. Please configure an API key or try again later."
)

// fallbackForecast is the local substitute used when no credential is
// configured or the remote call fails. Demand is drawn uniformly from [1,20];
// confidence is fixed; risk is HIGH only when demand exceeds current stock.
func fallbackForecast(products []model.Product) []ForecastItem {
	items := make([]ForecastItem, 0, len(products))
	for _, p := range products {
		demand := rand.Intn(20) + 1
		risk := RiskLow
		if demand > p.CurrentStock {
			risk = RiskHigh
		}
		items = append(items, ForecastItem{
			SKU:             p.SKU,
			ProductName:     p.Name,
			CurrentStock:    p.CurrentStock,
			PredictedDemand: demand,
			Confidence:      fallbackConfidence,
			RiskLevel:       risk,
		})
	}
	return items
}

// fallbackRestock suggests 3x the reorder level for every product at or below
// its reorder level — a stricter threshold than the 1.5x filter that triggers
// the remote call.
func fallbackRestock(products []model.Product) []RestockSuggestion {
	suggestions := []RestockSuggestion{}
	for _, p := range products {
		if !p.NeedsRestock() {
			continue
		}
		suggestions = append(suggestions, RestockSuggestion{
			SKU:               p.SKU,
			ProductName:       p.Name,
			CurrentStock:      p.CurrentStock,
			SuggestedQuantity: p.ReorderLevel * 3,
			Vendor:            p.Vendor,
			Reason:            fallbackReason,
		})
	}
	return suggestions
}

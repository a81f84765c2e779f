package forecast

import (
	"encoding/json"
	"fmt"
	"strings"

	"smartshelfx/internal/model"
)

const forecastPromptHeader = `You are an inventory demand forecaster. Given the product list below,
predict the demand for each product over the next 30 days.

Respond with ONLY a JSON array, no prose and no markdown, where each element
has exactly these fields:
{"sku": string, "productName": string, "currentStock": number,
 "predictedDemand": number, "confidence": number between 0 and 100,
 "riskLevel": "LOW" | "MEDIUM" | "HIGH"}

Include one element per product, in the same order as the input.

Products:
`

const restockPromptHeader = `You are an inventory restock planner. The products below are at or
approaching their reorder levels. Suggest a restock quantity for each.

Respond with ONLY a JSON array, no prose and no markdown, where each element
has exactly these fields:
{"sku": string, "productName": string, "currentStock": number,
 "suggestedQuantity": number, "vendor": string, "reason": string}

Products:
`

func buildForecastPrompt(products []model.Product) string {
	ctx, _ := json.Marshal(products)
	return forecastPromptHeader + string(ctx)
}

func buildRestockPrompt(products []model.Product) string {
	ctx, _ := json.Marshal(products)
	return restockPromptHeader + string(ctx)
}

// buildAssistantPrompt condenses the inventory into a short textual summary
// and appends the user's free-text question.
func buildAssistantPrompt(question string, products []model.Product, orders []model.PurchaseOrder) string {
	var b strings.Builder

	totalValue := 0.0
	var lowStock []string
	for _, p := range products {
		totalValue += float64(p.CurrentStock) * p.UnitPrice
		if p.NeedsRestock() {
			lowStock = append(lowStock, p.Name)
		}
	}
	pending := 0
	for _, o := range orders {
		if o.Status == model.StatusPending {
			pending++
		}
	}

	fmt.Fprintf(&b, "You are an inventory assistant for a warehouse dashboard.\n\n")
	fmt.Fprintf(&b, "Inventory summary:\n")
	fmt.Fprintf(&b, "- %d products, total stock value %.2f\n", len(products), totalValue)
	if len(lowStock) > 0 {
		fmt.Fprintf(&b, "- below reorder level: %s\n", strings.Join(lowStock, ", "))
	}
	fmt.Fprintf(&b, "- %d purchase orders pending\n", pending)

	sample := products
	if len(sample) > assistantSampleLimit {
		sample = sample[:assistantSampleLimit]
	}
	ctx, _ := json.Marshal(sample)
	fmt.Fprintf(&b, "\nProduct sample: %s\n", ctx)
	fmt.Fprintf(&b, "\nQuestion: %s\n", question)
	return b.String()
}

const assistantSampleLimit = 10

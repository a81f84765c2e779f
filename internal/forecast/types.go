package forecast

type RiskLevel string

const (
	RiskLow    RiskLevel = "LOW"
	RiskMedium RiskLevel = "MEDIUM"
	RiskHigh   RiskLevel = "HIGH"
)

// ForecastItem is the per-product prediction shape. Inbound model output must
// decode to exactly this shape; any mismatch is treated as a failed call.
type ForecastItem struct {
	SKU             string    `json:"sku"`
	ProductName     string    `json:"productName"`
	CurrentStock    int       `json:"currentStock"`
	PredictedDemand int       `json:"predictedDemand"`
	Confidence      int       `json:"confidence"` // 0-100
	RiskLevel       RiskLevel `json:"riskLevel"`
}

// RestockSuggestion is the per-product restock recommendation shape.
type RestockSuggestion struct {
	SKU               string `json:"sku"`
	ProductName       string `json:"productName"`
	CurrentStock      int    `json:"currentStock"`
	SuggestedQuantity int    `json:"suggestedQuantity"`
	Vendor            string `json:"vendor"`
	Reason            string `json:"reason"`
}

func (f ForecastItem) valid() bool {
	if f.Confidence < 0 || f.Confidence > 100 {
		return false
	}
	switch f.RiskLevel {
	case RiskLow, RiskMedium, RiskHigh:
		return true
	}
	return false
}

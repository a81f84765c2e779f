package forecast

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"smartshelfx/internal/model"
)

const (
	DefaultEndpoint = "https://generativelanguage.googleapis.com/v1beta/models"
	DefaultModel    = "gemini-2.0-flash"
)

// Gateway is a stateless boundary adapter to an external generative-language
// model. Each call is attempted exactly once: no retry, no timeout, no
// de-duplication. Every failure — missing credential, network error, non-JSON
// reply, schema mismatch — is mapped to a deterministic local fallback, and
// callers cannot distinguish the live path from the fallback path.
type Gateway struct {
	APIKey   string
	Endpoint string
	Model    string
	Client   *http.Client
}

func New(apiKey string) *Gateway {
	return &Gateway{
		APIKey:   apiKey,
		Endpoint: DefaultEndpoint,
		Model:    DefaultModel,
		Client:   http.DefaultClient,
	}
}

// GenerateSalesForecast requests one structured prediction per supplied
// product in a single call.
func (g *Gateway) GenerateSalesForecast(products []model.Product) []ForecastItem {
	if len(products) == 0 {
		return []ForecastItem{}
	}
	if g.APIKey == "" {
		return fallbackForecast(products)
	}

	text, err := g.generate(buildForecastPrompt(products))
	if err != nil {
		return fallbackForecast(products)
	}
	var items []ForecastItem
	if err := decodeStrict(text, &items); err != nil {
		return fallbackForecast(products)
	}
	for _, it := range items {
		if !it.valid() {
			return fallbackForecast(products)
		}
	}
	return items
}

// AnalyzeRestockNeeds filters to products whose stock sits at or below 1.5x
// their reorder level; when none qualify it returns an empty result without
// touching the remote service at all.
func (g *Gateway) AnalyzeRestockNeeds(products []model.Product) []RestockSuggestion {
	var candidates []model.Product
	for _, p := range products {
		if float64(p.CurrentStock) <= 1.5*float64(p.ReorderLevel) {
			candidates = append(candidates, p)
		}
	}
	if len(candidates) == 0 {
		return []RestockSuggestion{}
	}
	if g.APIKey == "" {
		return fallbackRestock(products)
	}

	text, err := g.generate(buildRestockPrompt(candidates))
	if err != nil {
		return fallbackRestock(products)
	}
	var suggestions []RestockSuggestion
	if err := decodeStrict(text, &suggestions); err != nil {
		return fallbackRestock(products)
	}
	return suggestions
}

// AskInventoryAssistant forwards a condensed inventory summary plus the
// free-text question as one prompt and returns the reply verbatim.
func (g *Gateway) AskInventoryAssistant(question string, products []model.Product, orders []model.PurchaseOrder) string {
	if g.APIKey == "" {
		return assistantUnavailable
	}
	text, err := g.generate(buildAssistantPrompt(question, products, orders))
	if err != nil {
		return assistantUnavailable
	}
	return text
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// generate performs the single outbound call and returns the model's text.
func (g *Gateway) generate(prompt string) (string, error) {
	body, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	})
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/%s:generateContent?key=%s", g.Endpoint, g.Model, g.APIKey)
	resp, err := g.client().Post(url, "application/json", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("forecast: model returned status %d", resp.StatusCode)
	}

	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("forecast: empty model response")
	}
	return out.Candidates[0].Content.Parts[0].Text, nil
}

func (g *Gateway) client() *http.Client {
	if g.Client != nil {
		return g.Client
	}
	return http.DefaultClient
}

// decodeStrict unmarshals the model's reply into v, rejecting unknown fields.
// Models often wrap JSON in markdown fences despite instructions; those are
// stripped first.
func decodeStrict(text string, v any) error {
	dec := json.NewDecoder(strings.NewReader(stripFences(text)))
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	}
	return strings.TrimSpace(s)
}

package forecast_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"smartshelfx/internal/forecast"
	"smartshelfx/internal/model"
)

func modelReply(t *testing.T, text string) string {
	t.Helper()
	body, err := json.Marshal(map[string]any{
		"candidates": []map[string]any{
			{"content": map[string]any{"parts": []map[string]string{{"text": text}}}},
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	return string(body)
}

func fakeModel(t *testing.T, calls *atomic.Int32, text string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(modelReply(t, text)))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func liveGateway(srv *httptest.Server) *forecast.Gateway {
	g := forecast.New("test-key")
	g.Endpoint = srv.URL
	g.Client = srv.Client()
	return g
}

func TestAnalyzeRestockFallbackDeterministic(t *testing.T) {
	g := forecast.New("") // no credential: never calls out

	products := []model.Product{
		{SKU: "A", Name: "Widget", CurrentStock: 5, ReorderLevel: 10, Vendor: "Acme"},
	}

	for i := 0; i < 3; i++ {
		got := g.AnalyzeRestockNeeds(products)
		want := []forecast.RestockSuggestion{{
			SKU:               "A",
			ProductName:       "Widget",
			CurrentStock:      5,
			SuggestedQuantity: 30,
			Vendor:            "Acme",
			Reason:            "Stock fell below reorder level threshold.",
		}}
		if len(got) != 1 || got[0] != want[0] {
			t.Fatalf("run %d: suggestions = %+v, want %+v", i, got, want)
		}
	}
}

func TestAnalyzeRestockFallbackUsesStricterThreshold(t *testing.T) {
	g := forecast.New("")

	// stock 12 passes the 1.5x trigger (<= 15) but not the <= reorder fallback
	products := []model.Product{
		{SKU: "B", Name: "Gadget", CurrentStock: 12, ReorderLevel: 10},
	}

	if got := g.AnalyzeRestockNeeds(products); len(got) != 0 {
		t.Errorf("suggestions = %+v, want none above the reorder level", got)
	}
}

func TestAnalyzeRestockNoCandidatesSkipsRemoteCall(t *testing.T) {
	var calls atomic.Int32
	srv := fakeModel(t, &calls, "[]")
	g := liveGateway(srv)

	products := []model.Product{
		{SKU: "C", Name: "Bracket", CurrentStock: 100, ReorderLevel: 10},
	}

	got := g.AnalyzeRestockNeeds(products)
	if len(got) != 0 {
		t.Errorf("suggestions = %+v, want empty", got)
	}
	if n := calls.Load(); n != 0 {
		t.Errorf("remote calls = %d, want 0 when nothing qualifies", n)
	}
}

func TestSalesForecastFallbackBounds(t *testing.T) {
	g := forecast.New("")

	products := []model.Product{
		{SKU: "A", Name: "Widget", CurrentStock: 50},
		{SKU: "B", Name: "Gadget", CurrentStock: 0},
	}

	items := g.GenerateSalesForecast(products)
	if len(items) != len(products) {
		t.Fatalf("items = %d, want %d", len(items), len(products))
	}
	for _, it := range items {
		if it.PredictedDemand < 1 || it.PredictedDemand > 20 {
			t.Errorf("%s: demand %d out of [1,20]", it.SKU, it.PredictedDemand)
		}
		if it.Confidence != 85 {
			t.Errorf("%s: confidence = %d, want 85", it.SKU, it.Confidence)
		}
		wantRisk := forecast.RiskLow
		if it.PredictedDemand > it.CurrentStock {
			wantRisk = forecast.RiskHigh
		}
		if it.RiskLevel != wantRisk {
			t.Errorf("%s: risk = %s, want %s (demand %d, stock %d)",
				it.SKU, it.RiskLevel, wantRisk, it.PredictedDemand, it.CurrentStock)
		}
	}
}

func TestSalesForecastParsesFencedReply(t *testing.T) {
	var calls atomic.Int32
	reply := "```json\n[{\"sku\":\"A\",\"productName\":\"Widget\",\"currentStock\":50," +
		"\"predictedDemand\":9,\"confidence\":72,\"riskLevel\":\"MEDIUM\"}]\n```"
	srv := fakeModel(t, &calls, reply)
	g := liveGateway(srv)

	items := g.GenerateSalesForecast([]model.Product{{SKU: "A", Name: "Widget", CurrentStock: 50}})

	if calls.Load() != 1 {
		t.Fatalf("remote calls = %d, want exactly 1", calls.Load())
	}
	want := forecast.ForecastItem{
		SKU: "A", ProductName: "Widget", CurrentStock: 50,
		PredictedDemand: 9, Confidence: 72, RiskLevel: forecast.RiskMedium,
	}
	if len(items) != 1 || items[0] != want {
		t.Errorf("items = %+v, want [%+v]", items, want)
	}
}

func TestSalesForecastSchemaMismatchFallsBack(t *testing.T) {
	cases := []struct {
		name  string
		reply string
	}{
		{"not json", "demand looks stable next month"},
		{"unknown field", `[{"sku":"A","productName":"Widget","currentStock":50,"predictedDemand":9,"confidence":72,"riskLevel":"MEDIUM","extra":true}]`},
		{"bad risk level", `[{"sku":"A","productName":"Widget","currentStock":50,"predictedDemand":9,"confidence":72,"riskLevel":"SEVERE"}]`},
		{"confidence out of range", `[{"sku":"A","productName":"Widget","currentStock":50,"predictedDemand":9,"confidence":140,"riskLevel":"LOW"}]`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var calls atomic.Int32
			srv := fakeModel(t, &calls, tc.reply)
			g := liveGateway(srv)

			items := g.GenerateSalesForecast([]model.Product{{SKU: "A", Name: "Widget", CurrentStock: 50}})
			if len(items) != 1 {
				t.Fatalf("items = %d, want 1 fallback item", len(items))
			}
			if items[0].Confidence != 85 {
				t.Errorf("confidence = %d, want fallback 85", items[0].Confidence)
			}
			if calls.Load() != 1 {
				t.Errorf("remote calls = %d, want exactly 1 (no retry)", calls.Load())
			}
		})
	}
}

func TestAssistantVerbatimAndFallback(t *testing.T) {
	var calls atomic.Int32
	srv := fakeModel(t, &calls, "You have 2 products below their reorder levels.")
	live := liveGateway(srv)

	products := []model.Product{{SKU: "A", Name: "Widget", CurrentStock: 1, ReorderLevel: 5}}
	orders := []model.PurchaseOrder{{ID: "PO-1", SKU: "A", Status: model.StatusPending}}

	if got := live.AskInventoryAssistant("what is low?", products, orders); got != "You have 2 products below their reorder levels." {
		t.Errorf("live answer = %q, want the model text verbatim", got)
	}

	offline := forecast.New("")
	got := offline.AskInventoryAssistant("what is low?", products, orders)
	if !strings.Contains(got, "unavailable") {
		t.Errorf("fallback answer = %q, want the fixed apology", got)
	}
}

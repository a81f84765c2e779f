package store_test

import (
	"reflect"
	"regexp"
	"testing"

	"smartshelfx/internal/model"
	"smartshelfx/internal/store"
	"smartshelfx/pkg/database"

	"github.com/dgraph-io/badger/v4"
)

func newTestStore(t *testing.T) (*store.State, *store.KV, *badger.DB) {
	t.Helper()
	db := database.ConnectInMemory()
	t.Cleanup(func() { db.Close() })
	kv := store.NewKV(db)
	return store.New(kv), kv, db
}

func productBySKU(t *testing.T, s *store.State, sku string) model.Product {
	t.Helper()
	for _, p := range s.Products() {
		if p.SKU == sku {
			return p
		}
	}
	t.Fatalf("no product with sku %q", sku)
	return model.Product{}
}

func TestRecordTransactionAdjustsStock(t *testing.T) {
	cases := []struct {
		name     string
		txType   model.TransactionType
		quantity int
		want     func(before int) int
	}{
		{"in adds quantity", model.TxIn, 7, func(before int) int { return before + 7 }},
		{"out subtracts quantity", model.TxOut, 5, func(before int) int { return before - 5 }},
		{"out may go negative", model.TxOut, 10_000, func(before int) int { return before - 10_000 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s, _, _ := newTestStore(t)
			before := productBySKU(t, s, "ELC-1001")

			tx := s.RecordTransaction(before.ID, tc.txType, tc.quantity, "tester")

			after := productBySKU(t, s, "ELC-1001")
			if got, want := after.CurrentStock, tc.want(before.CurrentStock); got != want {
				t.Errorf("stock = %d, want %d", got, want)
			}
			if tx.ProductName != before.Name {
				t.Errorf("snapshot name = %q, want %q", tx.ProductName, before.Name)
			}
			if got := s.Transactions(); got[0].ID != tx.ID {
				t.Errorf("transaction not prepended: newest id = %d, want %d", got[0].ID, tx.ID)
			}
		})
	}
}

func TestRecordTransactionUnknownProductStillAppends(t *testing.T) {
	s, _, _ := newTestStore(t)
	before := len(s.Transactions())

	s.RecordTransaction(424242, model.TxIn, 3, "tester")

	if got := len(s.Transactions()); got != before+1 {
		t.Fatalf("transactions = %d, want %d", got, before+1)
	}
	// no product was touched
	for _, p := range s.Products() {
		if p.ID == 424242 {
			t.Fatalf("phantom product appeared")
		}
	}
}

func TestDeliveredOrderAutoRestocks(t *testing.T) {
	s, _, _ := newTestStore(t)
	p := productBySKU(t, s, "ELC-1002")

	order := s.AddOrder(model.PurchaseOrder{SKU: "ELC-1002", Quantity: 30, Vendor: "Victor Supplies"})
	txBefore := len(s.Transactions())

	s.UpdateOrderStatus(order.ID, model.StatusDelivered)

	after := productBySKU(t, s, "ELC-1002")
	if got, want := after.CurrentStock, p.CurrentStock+30; got != want {
		t.Errorf("stock after delivery = %d, want %d", got, want)
	}
	txs := s.Transactions()
	if len(txs) != txBefore+1 {
		t.Fatalf("transactions = %d, want %d", len(txs), txBefore+1)
	}
	if txs[0].Type != model.TxIn || txs[0].Quantity != 30 || txs[0].ProductID != p.ID {
		t.Errorf("auto transaction = %+v, want IN 30 for product %d", txs[0], p.ID)
	}

	// second DELIVERED on an already-DELIVERED order produces nothing new
	s.UpdateOrderStatus(order.ID, model.StatusDelivered)
	if got := len(s.Transactions()); got != txBefore+1 {
		t.Errorf("repeat delivery added transactions: %d, want %d", got, txBefore+1)
	}
}

func TestDeliveredOrderUnknownSKUIsSilent(t *testing.T) {
	s, _, _ := newTestStore(t)
	order := s.AddOrder(model.PurchaseOrder{SKU: "NO-SUCH-SKU", Quantity: 5})
	txBefore := len(s.Transactions())

	s.UpdateOrderStatus(order.ID, model.StatusDelivered)

	if got := len(s.Transactions()); got != txBefore {
		t.Errorf("transactions = %d, want %d (no auto-restock for unknown sku)", got, txBefore)
	}
}

func TestDeleteProductDoesNotCascade(t *testing.T) {
	s, _, _ := newTestStore(t)
	p := productBySKU(t, s, "OFF-2001")
	s.RecordTransaction(p.ID, model.TxOut, 2, "tester")
	s.AddOrder(model.PurchaseOrder{SKU: p.SKU, Quantity: 10})

	productsBefore := len(s.Products())
	txBefore := len(s.Transactions())
	ordersBefore := len(s.Orders())

	s.DeleteProduct(p.ID)

	if got := len(s.Products()); got != productsBefore-1 {
		t.Errorf("products = %d, want %d", got, productsBefore-1)
	}
	if got := len(s.Transactions()); got != txBefore {
		t.Errorf("transactions changed on product delete: %d, want %d", got, txBefore)
	}
	if got := len(s.Orders()); got != ordersBefore {
		t.Errorf("orders changed on product delete: %d, want %d", got, ordersBefore)
	}
	// orphaned references survive untouched
	if s.Transactions()[0].ProductID != p.ID {
		t.Errorf("orphan transaction lost its product reference")
	}
}

func TestDeleteUnknownIDsAreSilentNoops(t *testing.T) {
	s, _, _ := newTestStore(t)
	products, users := len(s.Products()), len(s.Users())

	s.DeleteProduct(999999)
	s.DeleteUser(999999)
	s.UpdateProduct(model.Product{ID: 999999, SKU: "X", Name: "X"})
	s.UpdateOrderStatus("PO-999999", model.StatusApproved)

	if got := len(s.Products()); got != products {
		t.Errorf("products = %d, want %d", got, products)
	}
	if got := len(s.Users()); got != users {
		t.Errorf("users = %d, want %d", got, users)
	}
}

func TestRoundTripReload(t *testing.T) {
	s, kv, _ := newTestStore(t)

	p := s.AddProduct(model.Product{SKU: "NEW-1", Name: "Label Printer", Category: "Electronics", Vendor: "Victor Supplies", CurrentStock: 3, ReorderLevel: 5, UnitPrice: 129.99})
	s.RecordTransaction(p.ID, model.TxIn, 12, "tester")
	s.AddOrder(model.PurchaseOrder{SKU: "NEW-1", Quantity: 4})
	s.Login("manager@smartshelfx.io", model.RoleManager)

	reloaded := store.New(kv)

	if !reflect.DeepEqual(s.Products(), reloaded.Products()) {
		t.Errorf("products did not round-trip")
	}
	if !reflect.DeepEqual(s.Transactions(), reloaded.Transactions()) {
		t.Errorf("transactions did not round-trip")
	}
	if !reflect.DeepEqual(s.Orders(), reloaded.Orders()) {
		t.Errorf("orders did not round-trip")
	}
	if !reflect.DeepEqual(s.Users(), reloaded.Users()) {
		t.Errorf("users did not round-trip")
	}
	if got := reloaded.CurrentUser(); got == nil || got.Email != "manager@smartshelfx.io" {
		t.Errorf("session slot did not round-trip: %+v", got)
	}
}

func TestLoginSynthesizesThenMatchesRoster(t *testing.T) {
	s, _, _ := newTestStore(t)
	rosterBefore := len(s.Users())

	synth := s.Login("x@y.com", model.RoleManager)
	if synth.Email != "x@y.com" || synth.Role != model.RoleManager {
		t.Fatalf("synthesized user = %+v", synth)
	}
	if got := len(s.Users()); got != rosterBefore {
		t.Errorf("ephemeral login grew the roster: %d, want %d", got, rosterBefore)
	}

	added := s.AddUser(model.User{Name: "Xavier Young", Email: "x@y.com", Role: model.RoleManager})

	again := s.Login("x@y.com", model.RoleManager)
	if again.ID != added.ID {
		t.Errorf("login id = %d, want roster id %d", again.ID, added.ID)
	}

	// same email under a different role still synthesizes
	other := s.Login("x@y.com", model.RoleVendor)
	if other.ID == added.ID {
		t.Errorf("role mismatch matched the roster entry")
	}
}

func TestLogoutClearsSession(t *testing.T) {
	s, kv, _ := newTestStore(t)
	s.Login("admin@smartshelfx.io", model.RoleAdmin)
	s.Logout()

	if s.CurrentUser() != nil {
		t.Fatalf("session survived logout")
	}
	if _, ok, _ := kv.Get(store.KeyCurrentUser); ok {
		t.Errorf("persisted session key survived logout")
	}
}

func TestAddOrderAssignsPendingAndPOID(t *testing.T) {
	s, _, _ := newTestStore(t)
	p := productBySKU(t, s, "WRH-3001")

	order := s.AddOrder(model.PurchaseOrder{SKU: p.SKU, Quantity: 20, Vendor: "BoxWorks", Status: model.StatusShipped})

	if !regexp.MustCompile(`^PO-\d{1,4}$`).MatchString(order.ID) {
		t.Errorf("order id = %q, want PO-<0..9999>", order.ID)
	}
	if order.Status != model.StatusPending {
		t.Errorf("status = %s, want PENDING regardless of input", order.Status)
	}
	if want := float64(20) * p.UnitPrice; order.TotalCost != want {
		t.Errorf("total cost = %v, want %v", order.TotalCost, want)
	}
	if order.ProductName != p.Name {
		t.Errorf("product name snapshot = %q, want %q", order.ProductName, p.Name)
	}
	if got := s.Orders(); got[0].ID != order.ID {
		t.Errorf("order not prepended")
	}
}

func TestOrdersVisibleToVendor(t *testing.T) {
	s, _, _ := newTestStore(t)
	s.AddOrder(model.PurchaseOrder{SKU: "ELC-1001", Quantity: 1, Vendor: "Victor Supplies"})
	s.AddOrder(model.PurchaseOrder{SKU: "OFF-2001", Quantity: 1, Vendor: "Paperline Co"})

	vendor := model.User{ID: 3, Name: "Victor Reyes", Role: model.RoleVendor}
	manager := model.User{ID: 2, Name: "Maya Chen", Role: model.RoleManager}

	visible := s.OrdersVisibleTo(vendor)
	for _, o := range visible {
		if o.Vendor != "Victor Supplies" {
			t.Errorf("vendor saw foreign order %+v", o)
		}
	}
	if len(visible) == 0 {
		t.Errorf("vendor heuristic matched nothing")
	}

	if got, want := len(s.OrdersVisibleTo(manager)), len(s.Orders()); got != want {
		t.Errorf("manager sees %d orders, want all %d", got, want)
	}
}

func TestUpdateUserRefreshesSession(t *testing.T) {
	s, _, _ := newTestStore(t)
	logged := s.Login("admin@smartshelfx.io", model.RoleAdmin)

	updated := logged
	updated.Name = "Alexandra Morgan"
	updated.Bio = "Night-shift lead."
	s.UpdateUser(updated)

	if got := s.CurrentUser(); got == nil || got.Name != "Alexandra Morgan" {
		t.Errorf("session slot = %+v, want refreshed name", got)
	}

	// editing someone else leaves the session alone
	other := s.AddUser(model.User{Name: "Temp Worker", Email: "temp@smartshelfx.io", Role: model.RoleVendor})
	other.Name = "Renamed Worker"
	s.UpdateUser(other)
	if got := s.CurrentUser(); got.ID != logged.ID {
		t.Errorf("session switched users unexpectedly")
	}
}

func TestMalformedSnapshotFallsBackToDefaults(t *testing.T) {
	_, kv, _ := newTestStore(t)
	if err := kv.Put(store.KeyProducts, []byte("{not json")); err != nil {
		t.Fatal(err)
	}

	s := store.New(kv)
	if !reflect.DeepEqual(s.Products(), store.DefaultProducts) {
		t.Errorf("malformed snapshot did not fall back to defaults")
	}
}

func TestCurrentScreenResolution(t *testing.T) {
	s, _, _ := newTestStore(t)

	if got := s.CurrentScreen(); got != store.ScreenLogin {
		t.Fatalf("screen while logged out = %q, want login", got)
	}

	s.Login("admin@smartshelfx.io", model.RoleAdmin)

	cases := []struct {
		path string
		want string
	}{
		{"inventory", store.ScreenInventory},
		{"restock", store.ScreenRestock},
		{"guide", store.ScreenGuide},
		{"no-such-screen", store.ScreenDashboard},
		{"", store.ScreenDashboard},
		{"login", store.ScreenDashboard}, // login is not a protected screen
	}
	for _, tc := range cases {
		t.Run("path "+tc.path, func(t *testing.T) {
			s.SetPath(tc.path)
			if got := s.CurrentScreen(); got != tc.want {
				t.Errorf("screen for %q = %q, want %q", tc.path, got, tc.want)
			}
		})
	}
}

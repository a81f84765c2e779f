package store

import (
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"strings"
	"sync"
	"time"

	"smartshelfx/internal/model"
)

// Persisted keys. Each holds one complete JSON snapshot of its collection.
const (
	KeyCurrentUser  = "smartshelfx:current_user"
	KeyUsers        = "smartshelfx:users"
	KeyProducts     = "smartshelfx:products"
	KeyTransactions = "smartshelfx:transactions"
	KeyOrders       = "smartshelfx:orders"
)

const timestampLayout = "Jan 2, 2006, 3:04 PM"

// State is the single authoritative holder of all entity collections and the
// current session's authenticated user. It is constructed once in main and
// injected into every consumer; there is no package-level instance.
//
// Every mutation synchronizes the touched collection to the persistent store
// before returning. Lookups that miss (unknown id or SKU) are silent no-ops,
// never errors: correctness of ids is the caller's responsibility.
type State struct {
	mu sync.Mutex
	kv *KV

	currentUser  *model.User
	users        []model.User
	products     []model.Product
	transactions []model.Transaction
	orders       []model.PurchaseOrder

	currentPath string
	lastID      int64
}

// New loads each persisted collection, seeding built-in defaults where a key
// is absent or its snapshot fails to parse. Loaded data is otherwise trusted
// as-is: there is no schema validation and no migration path.
func New(kv *KV) *State {
	s := &State{
		kv:          kv,
		currentPath: "dashboard",
	}
	s.users = loadCollection(kv, KeyUsers, defaultUsers())
	s.products = loadCollection(kv, KeyProducts, defaultProducts())
	s.transactions = loadCollection(kv, KeyTransactions, defaultTransactions())
	s.orders = loadCollection(kv, KeyOrders, defaultOrders())

	if raw, ok, err := kv.Get(KeyCurrentUser); err == nil && ok {
		var u model.User
		if json.Unmarshal(raw, &u) == nil {
			s.currentUser = &u
		}
	}
	return s
}

func loadCollection[T any](kv *KV, key string, def []T) []T {
	raw, ok, err := kv.Get(key)
	if err != nil || !ok {
		return def
	}
	var out []T
	if err := json.Unmarshal(raw, &out); err != nil {
		return def
	}
	return out
}

// persist writes one collection snapshot wholesale. Failures are logged and
// swallowed: no state operation reports failure to its caller.
func (s *State) persist(key string, v any) {
	raw, err := json.Marshal(v)
	if err != nil {
		log.Printf("store: marshal %s: %v", key, err)
		return
	}
	if err := s.kv.Put(key, raw); err != nil {
		log.Printf("store: persist %s: %v", key, err)
	}
}

// nextID derives an id from the current time, bumped past the previous one so
// that two mutations inside the same millisecond still get distinct ids.
func (s *State) nextID() int64 {
	id := time.Now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return id
}

func now() string {
	return time.Now().Format(timestampLayout)
}

// ----- session -----

// Login finds a user whose email and role both match. If none exists it
// synthesizes an ephemeral user (timestamp-derived id, supplied email/role)
// that is NOT added to the roster. The result becomes the session user.
// There is no credential check of any kind: the role is self-asserted.
func (s *State) Login(email string, role model.Role) model.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == email && u.Role == role {
			s.currentUser = &u
			s.persist(KeyCurrentUser, u)
			return u
		}
	}

	u := model.User{
		ID:    s.nextID(),
		Name:  email,
		Email: email,
		Role:  role,
	}
	s.currentUser = &u
	s.persist(KeyCurrentUser, u)
	return u
}

// Logout clears the session slot and its persisted snapshot.
func (s *State) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.currentUser = nil
	if err := s.kv.Delete(KeyCurrentUser); err != nil {
		log.Printf("store: clear %s: %v", KeyCurrentUser, err)
	}
}

// CurrentUser returns a copy of the session user, or nil when logged out.
func (s *State) CurrentUser() *model.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.currentUser == nil {
		return nil
	}
	u := *s.currentUser
	return &u
}

// ----- products -----

func (s *State) Products() []model.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.Product(nil), s.products...)
}

// AddProduct assigns a time-derived id and appends to the collection.
func (s *State) AddProduct(data model.Product) model.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	data.ID = s.nextID()
	s.products = append(s.products, data)
	s.persist(KeyProducts, s.products)
	return data
}

// UpdateProduct replaces the product with matching id; no-op if absent.
// Editing CurrentStock here bypasses transaction history, so the two can
// diverge; RecordTransaction is the only path that keeps them in sync.
func (s *State) UpdateProduct(p model.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.products {
		if s.products[i].ID == p.ID {
			s.products[i] = p
			s.persist(KeyProducts, s.products)
			return
		}
	}
}

// DeleteProduct removes by id. It does not cascade: transactions and orders
// referencing the product keep their soft references.
func (s *State) DeleteProduct(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.products[:0]
	for _, p := range s.products {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	if len(kept) == len(s.products) {
		return
	}
	s.products = kept
	s.persist(KeyProducts, s.products)
}

func (s *State) findProductBySKU(sku string) (model.Product, bool) {
	for _, p := range s.products {
		if p.SKU == sku {
			return p, true
		}
	}
	return model.Product{}, false
}

// ----- transactions -----

func (s *State) Transactions() []model.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.Transaction(nil), s.transactions...)
}

// RecordTransaction adjusts the referenced product's stock by +quantity (IN)
// or -quantity (OUT) — even when the result goes negative — then prepends a
// transaction record. Stock level is a derived-but-stored quantity and this
// is the single code path that keeps it in sync with history.
func (s *State) RecordTransaction(productID int64, txType model.TransactionType, quantity int, handler string) model.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.recordTransactionLocked(productID, txType, quantity, handler)
}

func (s *State) recordTransactionLocked(productID int64, txType model.TransactionType, quantity int, handler string) model.Transaction {
	productName := ""
	for i := range s.products {
		if s.products[i].ID == productID {
			if txType == model.TxIn {
				s.products[i].CurrentStock += quantity
			} else {
				s.products[i].CurrentStock -= quantity
			}
			productName = s.products[i].Name
			s.persist(KeyProducts, s.products)
			break
		}
	}

	tx := model.Transaction{
		ID:          s.nextID(),
		ProductID:   productID,
		ProductName: productName,
		Type:        txType,
		Quantity:    quantity,
		Timestamp:   now(),
		Handler:     handler,
	}
	s.transactions = append([]model.Transaction{tx}, s.transactions...)
	s.persist(KeyTransactions, s.transactions)
	return tx
}

// ----- users -----

func (s *State) Users() []model.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.User(nil), s.users...)
}

func (s *State) AddUser(data model.User) model.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	data.ID = s.nextID()
	s.users = append(s.users, data)
	s.persist(KeyUsers, s.users)
	return data
}

// UpdateUser replaces the roster entry with matching id. If the session user
// has that id the session slot is refreshed too, keeping the session view
// consistent with the roster.
func (s *State) UpdateUser(u model.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if s.users[i].ID == u.ID {
			s.users[i] = u
			s.persist(KeyUsers, s.users)
			if s.currentUser != nil && s.currentUser.ID == u.ID {
				cp := u
				s.currentUser = &cp
				s.persist(KeyCurrentUser, u)
			}
			return
		}
	}
}

func (s *State) DeleteUser(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.users[:0]
	for _, u := range s.users {
		if u.ID != id {
			kept = append(kept, u)
		}
	}
	if len(kept) == len(s.users) {
		return
	}
	s.users = kept
	s.persist(KeyUsers, s.users)
}

// ----- orders -----

func (s *State) Orders() []model.PurchaseOrder {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.PurchaseOrder(nil), s.orders...)
}

// OrdersVisibleTo filters the order list for a user. A VENDOR sees orders
// whose vendor field contains the first token of their name (case-
// insensitive) — a placeholder heuristic carried over from the source, not a
// real vendor-identity mapping. Other roles see everything.
func (s *State) OrdersVisibleTo(u model.User) []model.PurchaseOrder {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u.Role != model.RoleVendor {
		return append([]model.PurchaseOrder(nil), s.orders...)
	}
	token := u.FirstNameToken()
	var out []model.PurchaseOrder
	for _, o := range s.orders {
		if token != "" && strings.Contains(strings.ToLower(o.Vendor), token) {
			out = append(out, o)
		}
	}
	return out
}

// AddOrder assigns a "PO-" id (random integer in [0,10000) — collisions are
// possible and deliberately not guarded against), forces status to PENDING,
// stamps the creation time, snapshots the product name, and computes the
// total cost once from quantity x the product's current unit price.
func (s *State) AddOrder(data model.PurchaseOrder) model.PurchaseOrder {
	s.mu.Lock()
	defer s.mu.Unlock()

	data.ID = fmt.Sprintf("PO-%d", rand.Intn(10000))
	data.Status = model.StatusPending
	data.CreatedAt = now()
	if p, ok := s.findProductBySKU(data.SKU); ok {
		if data.ProductName == "" {
			data.ProductName = p.Name
		}
		data.TotalCost = float64(data.Quantity) * p.UnitPrice
	}
	s.orders = append([]model.PurchaseOrder{data}, s.orders...)
	s.persist(KeyOrders, s.orders)
	return data
}

// UpdateOrderStatus replaces the matching order's status; no-op if the id is
// unknown. Transitioning into DELIVERED from any non-DELIVERED status records
// exactly one IN transaction for the product whose SKU matches the order —
// silently nothing when no such product exists. This is the system's only
// automated cross-entity rule.
func (s *State) UpdateOrderStatus(orderID string, newStatus model.OrderStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.orders {
		if s.orders[i].ID != orderID {
			continue
		}
		wasDelivered := s.orders[i].Status == model.StatusDelivered
		s.orders[i].Status = newStatus
		s.persist(KeyOrders, s.orders)

		if newStatus == model.StatusDelivered && !wasDelivered {
			if p, ok := s.findProductBySKU(s.orders[i].SKU); ok {
				s.recordTransactionLocked(p.ID, model.TxIn, s.orders[i].Quantity, "Auto-Restock")
			}
		}
		return
	}
}

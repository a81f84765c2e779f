package store

// The ten protected screens plus login. An unrecognized protected path
// resolves to the dashboard; every path resolves to login while logged out.
const (
	ScreenDashboard    = "dashboard"
	ScreenInventory    = "inventory"
	ScreenTransactions = "transactions"
	ScreenOrders       = "orders"
	ScreenForecast     = "forecast"
	ScreenRestock      = "restock"
	ScreenProfile      = "profile"
	ScreenUsers        = "users"
	ScreenGuide        = "guide"
	ScreenLogin        = "login"
)

var protectedScreens = map[string]bool{
	ScreenDashboard:    true,
	ScreenInventory:    true,
	ScreenTransactions: true,
	ScreenOrders:       true,
	ScreenForecast:     true,
	ScreenRestock:      true,
	ScreenProfile:      true,
	ScreenUsers:        true,
	ScreenGuide:        true,
}

// SetPath records the current logical screen identifier. Any consumer may
// change it; no validation happens here, only at resolution time.
func (s *State) SetPath(p string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.currentPath = p
}

// CurrentPath returns the raw stored path.
func (s *State) CurrentPath() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentPath
}

// CurrentScreen resolves the stored path to the screen that should be shown:
// login whenever no user is authenticated, the dashboard for unrecognized
// protected paths, otherwise the path itself.
func (s *State) CurrentScreen() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.currentUser == nil {
		return ScreenLogin
	}
	if protectedScreens[s.currentPath] {
		return s.currentPath
	}
	return ScreenDashboard
}

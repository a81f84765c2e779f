package store

import "smartshelfx/internal/model"

// Built-in default collections, used whenever a persisted key is absent or
// its stored snapshot fails to parse.

var DefaultUsers = []model.User{
	{ID: 1, Name: "Alex Morgan", Email: "admin@smartshelfx.io", Role: model.RoleAdmin, Phone: "+1-555-0101"},
	{ID: 2, Name: "Maya Chen", Email: "manager@smartshelfx.io", Role: model.RoleManager, Phone: "+1-555-0102"},
	{ID: 3, Name: "Victor Reyes", Email: "vendor@smartshelfx.io", Role: model.RoleVendor, Phone: "+1-555-0103", Bio: "Primary supplier for electronics."},
}

var DefaultProducts = []model.Product{
	{ID: 101, SKU: "ELC-1001", Name: "Wireless Mouse", Category: "Electronics", Vendor: "Victor Supplies", CurrentStock: 42, ReorderLevel: 15, UnitPrice: 24.99},
	{ID: 102, SKU: "ELC-1002", Name: "USB-C Hub", Category: "Electronics", Vendor: "Victor Supplies", CurrentStock: 8, ReorderLevel: 10, UnitPrice: 39.5},
	{ID: 103, SKU: "OFF-2001", Name: "A4 Copy Paper (500)", Category: "Office", Vendor: "Paperline Co", CurrentStock: 120, ReorderLevel: 40, UnitPrice: 6.75},
	{ID: 104, SKU: "OFF-2002", Name: "Whiteboard Marker Set", Category: "Office", Vendor: "Paperline Co", CurrentStock: 14, ReorderLevel: 20, UnitPrice: 8.2},
	{ID: 105, SKU: "WRH-3001", Name: "Packing Tape Roll", Category: "Warehouse", Vendor: "BoxWorks", CurrentStock: 65, ReorderLevel: 25, UnitPrice: 2.35},
}

var DefaultTransactions = []model.Transaction{
	{ID: 11, ProductID: 103, ProductName: "A4 Copy Paper (500)", Type: model.TxIn, Quantity: 50, Timestamp: "Jan 12, 2026, 9:15 AM", Handler: "Maya Chen"},
	{ID: 10, ProductID: 101, ProductName: "Wireless Mouse", Type: model.TxOut, Quantity: 6, Timestamp: "Jan 10, 2026, 4:40 PM", Handler: "Maya Chen"},
}

var DefaultOrders = []model.PurchaseOrder{
	{ID: "PO-4821", SKU: "ELC-1002", ProductName: "USB-C Hub", Quantity: 30, Vendor: "Victor Supplies", Status: model.StatusPending, CreatedAt: "Jan 11, 2026, 2:05 PM", TotalCost: 1185},
}

func defaultUsers() []model.User {
	return append([]model.User(nil), DefaultUsers...)
}

func defaultProducts() []model.Product {
	return append([]model.Product(nil), DefaultProducts...)
}

func defaultTransactions() []model.Transaction {
	return append([]model.Transaction(nil), DefaultTransactions...)
}

func defaultOrders() []model.PurchaseOrder {
	return append([]model.PurchaseOrder(nil), DefaultOrders...)
}

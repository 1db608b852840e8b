package datastore

import (
	"time"

	"github.com/Clancy-dev/clancygraintracker/models"
)

func june2023(day int) time.Time {
	return time.Date(2023, time.June, day, 0, 0, 0, 0, time.UTC)
}

func july2023(day int) time.Time {
	return time.Date(2023, time.July, day, 0, 0, 0, 0, time.UTC)
}

// SeedData is the hardcoded starter document used on first run and as the
// fallback when the persisted document cannot be decoded.
func SeedData() models.AppData {
	return models.AppData{
		Expenses: []models.Expense{
			{ID: "1", Description: "Fuel for transportation", Amount: 45000, Category: "fuel", Date: june2023(15)},
			{ID: "2", Description: "Labor for loading", Amount: 30000, Category: "labor", Date: june2023(16)},
			{ID: "3", Description: "Packaging materials", Amount: 25000, Category: "packaging", Date: june2023(17)},
		},
		Sales: []models.Sale{
			{ID: "1", Customer: "Kampala Traders", Amount: 350000, Quantity: 250, IsPaid: true, Date: june2023(18)},
			{ID: "2", Customer: "Mbale Market", Amount: 150000, Quantity: 100, IsPaid: false, Date: june2023(19)},
			{ID: "3", Customer: "Jinja Wholesalers", Amount: 120000, Quantity: 80, IsPaid: false, Date: june2023(20)},
		},
		Inventory: []models.InventoryItem{
			{ID: "1", Source: "Mbale Farmers", Quantity: 500, PricePerKg: 1200, TotalCost: 600000, Date: june2023(10)},
			{ID: "2", Source: "Iganga Cooperative", Quantity: 300, PricePerKg: 1150, TotalCost: 345000, Date: june2023(12)},
		},
		Debtors: []models.Debt{
			{ID: "1", Name: "Mbale Market", Amount: 75000, Description: "Sale of 100kg maize", Date: june2023(19), DueDate: july2023(3), Kind: models.DebtKindDebtor},
			{ID: "2", Name: "Jinja Wholesalers", Amount: 120000, Description: "Sale of 80kg maize", Date: june2023(20), DueDate: july2023(4), Kind: models.DebtKindDebtor},
		},
		Creditors: []models.Debt{
			{ID: "1", Name: "Fuel Supplier", Amount: 50000, Description: "Fuel credit for transportation", Date: june2023(14), DueDate: june2023(28), Kind: models.DebtKindCreditor},
		},
		MarketPrices: []models.MarketPrice{
			{ID: "1", Market: "Kampala Central Market", Price: 1500, Date: june2023(15), Notes: "Regular quality maize"},
			{ID: "2", Market: "Mbale Market", Price: 1400, Date: june2023(16), Notes: "Prices dropping due to harvest season"},
			{ID: "3", Market: "Jinja Market", Price: 1450, Date: june2023(17)},
		},
		History: []models.HistoryEntry{
			{ID: "1", Type: models.ItemTypeExpense, Description: "Fuel for transportation", Amount: 45000, Date: june2023(15), Details: map[string]any{"category": "fuel"}},
			{ID: "2", Type: models.ItemTypeExpense, Description: "Labor for loading", Amount: 30000, Date: june2023(16), Details: map[string]any{"category": "labor"}},
			{ID: "3", Type: models.ItemTypeSale, Description: "Sale to Kampala Traders", Amount: 350000, Date: june2023(18), Details: map[string]any{"customer": "Kampala Traders", "quantity": 250, "isPaid": true}},
			{ID: "4", Type: models.ItemTypeInventory, Description: "Purchase from Mbale Farmers", Amount: 600000, Date: june2023(10), Details: map[string]any{"source": "Mbale Farmers", "quantity": 500, "pricePerKg": 1200}},
		},
		Users:        []models.User{},
		DeletedItems: []models.DeletedItem{},
	}
}

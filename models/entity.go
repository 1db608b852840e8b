package models

import "time"

// DebtKind distinguishes money owed to the business (debtor) from money the
// business owes (creditor). Older documents were written without this field;
// see DecodePayload for how those are handled.
type DebtKind string

const (
	DebtKindDebtor   DebtKind = "debtor"
	DebtKindCreditor DebtKind = "creditor"
)

// Expense is a cost incurred by the trading operation. Amounts are in UGX.
type Expense struct {
	ID          string    `json:"id"`
	Description string    `json:"description"`
	Amount      int64     `json:"amount"`
	Category    string    `json:"category"`
	Date        time.Time `json:"date"`
}

// Sale records a maize sale to a customer. Quantity is in kilograms.
type Sale struct {
	ID       string    `json:"id"`
	Customer string    `json:"customer"`
	Amount   int64     `json:"amount"`
	Quantity int       `json:"quantity"`
	IsPaid   bool      `json:"isPaid"`
	Date     time.Time `json:"date"`
}

// InventoryItem records a maize purchase into stock.
type InventoryItem struct {
	ID         string    `json:"id"`
	Source     string    `json:"source"`
	Quantity   int       `json:"quantity"`
	PricePerKg int64     `json:"pricePerKg"`
	TotalCost  int64     `json:"totalCost"`
	Date       time.Time `json:"date"`
}

// Debt is a ledger entry for either a debtor or a creditor. Kind is omitted in
// documents written before it existed.
type Debt struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Amount      int64     `json:"amount"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	DueDate     time.Time `json:"dueDate"`
	Kind        DebtKind  `json:"kind,omitempty"`
}

// MarketPrice is an observed maize price at a named market, per kilogram.
type MarketPrice struct {
	ID     string    `json:"id"`
	Market string    `json:"market"`
	Price  int64     `json:"price"`
	Date   time.Time `json:"date"`
	Notes  string    `json:"notes"`
}

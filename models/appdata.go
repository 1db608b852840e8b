package models

// AppData is the single root document holding every live collection. It is
// owned by the data store; callers never mutate it in place, they submit a
// full replacement document. Users and DeletedItems are placeholders kept for
// document-shape compatibility — accounts and the recycle bin are persisted
// under their own storage keys.
type AppData struct {
	Expenses     []Expense       `json:"expenses"`
	Sales        []Sale          `json:"sales"`
	Inventory    []InventoryItem `json:"inventory"`
	Debtors      []Debt          `json:"debtors"`
	Creditors    []Debt          `json:"creditors"`
	MarketPrices []MarketPrice   `json:"marketPrices"`
	History      []HistoryEntry  `json:"history"`
	Users        []User          `json:"users"`
	DeletedItems []DeletedItem   `json:"deletedItems"`
}

// Clone returns a copy whose collections can be patched without aliasing the
// original document. History detail maps are copied as well.
func (d AppData) Clone() AppData {
	out := d
	out.Expenses = append([]Expense{}, d.Expenses...)
	out.Sales = append([]Sale{}, d.Sales...)
	out.Inventory = append([]InventoryItem{}, d.Inventory...)
	out.Debtors = append([]Debt{}, d.Debtors...)
	out.Creditors = append([]Debt{}, d.Creditors...)
	out.MarketPrices = append([]MarketPrice{}, d.MarketPrices...)
	out.History = append([]HistoryEntry{}, d.History...)
	for i, h := range out.History {
		if h.Details != nil {
			details := make(map[string]any, len(h.Details))
			for k, v := range h.Details {
				details[k] = v
			}
			out.History[i].Details = details
		}
	}
	out.Users = append([]User{}, d.Users...)
	out.DeletedItems = append([]DeletedItem{}, d.DeletedItems...)
	return out
}

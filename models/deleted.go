package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// ItemType tags which live collection a recycle-bin payload came from.
// The tag set is closed; routing switches over it exhaustively.
type ItemType string

const (
	ItemTypeExpense     ItemType = "expense"
	ItemTypeSale        ItemType = "sale"
	ItemTypeInventory   ItemType = "inventory"
	ItemTypeDebt        ItemType = "debt"
	ItemTypeMarketPrice ItemType = "marketPrice"
)

// ValidItemType reports whether t is one of the known tags.
func ValidItemType(t ItemType) bool {
	switch t {
	case ItemTypeExpense, ItemTypeSale, ItemTypeInventory, ItemTypeDebt, ItemTypeMarketPrice:
		return true
	}
	return false
}

// DeletedItem wraps a business entity that was removed from a live collection.
// The Data payload is opaque to the recycle bin itself; only DecodePayload
// interprets it, at restore time. RestoredAt/RestoredBy are set exactly once
// if the item is restored; the entry stays in the bin afterwards.
type DeletedItem struct {
	ID         string          `json:"id"`
	ItemType   ItemType        `json:"itemType"`
	Data       json.RawMessage `json:"data"`
	DeletedBy  string          `json:"deletedBy"`
	DeletedAt  time.Time       `json:"deletedAt"`
	RestoredAt *time.Time      `json:"restoredAt,omitempty"`
	RestoredBy string          `json:"restoredBy,omitempty"`
}

// DecodePayload unmarshals a recycle-bin payload into its concrete entity type.
// A debt payload without a kind field falls back to the pre-kind convention:
// a populated dueDate means debtor, otherwise creditor.
func DecodePayload(t ItemType, raw json.RawMessage) (any, error) {
	switch t {
	case ItemTypeExpense:
		var e Expense
		if err := json.Unmarshal(raw, &e); err != nil {
			return nil, fmt.Errorf("decode expense payload: %w", err)
		}
		return e, nil
	case ItemTypeSale:
		var s Sale
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil, fmt.Errorf("decode sale payload: %w", err)
		}
		return s, nil
	case ItemTypeInventory:
		var inv InventoryItem
		if err := json.Unmarshal(raw, &inv); err != nil {
			return nil, fmt.Errorf("decode inventory payload: %w", err)
		}
		return inv, nil
	case ItemTypeDebt:
		var d Debt
		if err := json.Unmarshal(raw, &d); err != nil {
			return nil, fmt.Errorf("decode debt payload: %w", err)
		}
		if d.Kind == "" {
			if !d.DueDate.IsZero() {
				d.Kind = DebtKindDebtor
			} else {
				d.Kind = DebtKindCreditor
			}
		}
		return d, nil
	case ItemTypeMarketPrice:
		var m MarketPrice
		if err := json.Unmarshal(raw, &m); err != nil {
			return nil, fmt.Errorf("decode market price payload: %w", err)
		}
		return m, nil
	default:
		return nil, fmt.Errorf("unknown item type %q", t)
	}
}

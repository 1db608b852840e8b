package models

import "time"

// HistoryEntry is an immutable audit record describing a state change.
// Entries are append-only; nothing edits or deletes them.
type HistoryEntry struct {
	ID          string         `json:"id"`
	Type        ItemType       `json:"type"`
	Description string         `json:"description"`
	Amount      int64          `json:"amount"`
	Date        time.Time      `json:"date"`
	Details     map[string]any `json:"details"`
}

// Package datastore is the single source of truth for the live business
// collections. It holds the whole AppData document in memory, persists it
// wholesale on every write, and routes deletions through the recycle bin.
// One process owns the document at a time; across processes the last write
// wins, same as the storage layer underneath.
package datastore

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Clancy-dev/clancygraintracker/models"
	"github.com/Clancy-dev/clancygraintracker/pkg/kv"
	"github.com/Clancy-dev/clancygraintracker/pkg/recyclebin"
)

// StorageKey is the document key the AppData document lives under.
const StorageKey = "grainTrackerData"

// Store owns the AppData document.
type Store struct {
	mu     sync.Mutex
	store  kv.Store
	bin    *recyclebin.Bin
	logger *zap.Logger
	data   models.AppData
}

// New loads the document from the store, seeding it on first run. A document
// that fails to decode is logged and replaced with the seed; no partial
// recovery is attempted.
func New(store kv.Store, bin *recyclebin.Bin, logger *zap.Logger) (*Store, error) {
	if logger == nil {
		logger, _ = zap.NewProduction()
	}
	s := &Store{store: store, bin: bin, logger: logger}
	if err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

// Reload re-hydrates the in-memory document from the persistent store. Also
// used by the file watcher when the document is rewritten externally.
func (s *Store) Reload() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	raw, ok, err := s.store.Get(StorageKey)
	if err != nil {
		return fmt.Errorf("read app data: %w", err)
	}
	if !ok {
		s.data = SeedData()
		return s.persistLocked()
	}
	var data models.AppData
	if err := json.Unmarshal(raw, &data); err != nil {
		s.logger.Error("corrupt app data document, falling back to seed", zap.Error(err))
		s.data = SeedData()
		return s.persistLocked()
	}
	s.data = data
	return nil
}

func (s *Store) persistLocked() error {
	raw, err := json.Marshal(s.data)
	if err != nil {
		return fmt.Errorf("encode app data: %w", err)
	}
	if err := s.store.Set(StorageKey, raw); err != nil {
		return fmt.Errorf("write app data: %w", err)
	}
	return nil
}

// Data returns a copy of the current document for rendering. Mutations must
// go back through UpdateData.
func (s *Store) Data() models.AppData {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.Clone()
}

// UpdateData replaces the whole document and persists it verbatim. The caller
// is expected to have computed the full next state; there is no merging.
func (s *Store) UpdateData(doc models.AppData) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = doc
	return s.persistLocked()
}

// AddHistoryEntry assigns a fresh id, appends the entry to the history log and
// persists. History is append-only; nothing edits or removes entries.
func (s *Store) AddHistoryEntry(entry models.HistoryEntry) (models.HistoryEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry.ID = uuid.NewString()
	s.data.History = append(s.data.History, entry)
	if err := s.persistLocked(); err != nil {
		return models.HistoryEntry{}, err
	}
	return entry, nil
}

// HistoryForDate returns entries whose date falls on the same calendar day as
// date (year, month, day; time of day ignored), in document order.
func (s *Store) HistoryForDate(date time.Time) []models.HistoryEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	y, m, d := date.Date()
	out := []models.HistoryEntry{}
	for _, entry := range s.data.History {
		ey, em, ed := entry.Date.Date()
		if ey == y && em == m && ed == d {
			out = append(out, entry)
		}
	}
	return out
}

// DeleteItem removes the item with the given id from its live collection and
// forwards a copy to the recycle bin before committing the change. The debt
// tag is looked up in debtors first, then creditors. A missing id is a silent
// no-op reported through the bool return.
func (s *Store) DeleteItem(itemType models.ItemType, id, deletedBy string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.data.Clone()
	var deleted any

	switch itemType {
	case models.ItemTypeExpense:
		next.Expenses, deleted = removeByID(next.Expenses, id, func(e models.Expense) string { return e.ID })
	case models.ItemTypeSale:
		next.Sales, deleted = removeByID(next.Sales, id, func(x models.Sale) string { return x.ID })
	case models.ItemTypeInventory:
		next.Inventory, deleted = removeByID(next.Inventory, id, func(x models.InventoryItem) string { return x.ID })
	case models.ItemTypeDebt:
		next.Debtors, deleted = removeByID(next.Debtors, id, func(x models.Debt) string { return x.ID })
		if deleted == nil {
			next.Creditors, deleted = removeByID(next.Creditors, id, func(x models.Debt) string { return x.ID })
		}
	case models.ItemTypeMarketPrice:
		next.MarketPrices, deleted = removeByID(next.MarketPrices, id, func(x models.MarketPrice) string { return x.ID })
	default:
		return false, fmt.Errorf("unknown item type %q", itemType)
	}

	if deleted == nil {
		return false, nil
	}
	if _, err := s.bin.Add(itemType, deleted, deletedBy); err != nil {
		return false, err
	}
	s.data = next
	if err := s.persistLocked(); err != nil {
		return false, err
	}
	return true, nil
}

// RestoreItem re-inserts a payload returned by the recycle bin into the
// appropriate live collection. Debts route on their kind field; payloads
// written before the field existed route on due-date presence (see
// models.DecodePayload).
func (s *Store) RestoreItem(itemType models.ItemType, payload json.RawMessage) error {
	entity, err := models.DecodePayload(itemType, payload)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	switch v := entity.(type) {
	case models.Expense:
		s.data.Expenses = append(s.data.Expenses, v)
	case models.Sale:
		s.data.Sales = append(s.data.Sales, v)
	case models.InventoryItem:
		s.data.Inventory = append(s.data.Inventory, v)
	case models.Debt:
		if v.Kind == models.DebtKindCreditor {
			s.data.Creditors = append(s.data.Creditors, v)
		} else {
			s.data.Debtors = append(s.data.Debtors, v)
		}
	case models.MarketPrice:
		s.data.MarketPrices = append(s.data.MarketPrices, v)
	default:
		return fmt.Errorf("unknown payload type %T", entity)
	}
	return s.persistLocked()
}

func removeByID[T any](items []T, id string, key func(T) string) ([]T, any) {
	for i, item := range items {
		if key(item) == id {
			found := item
			return append(items[:i], items[i+1:]...), found
		}
	}
	return items, nil
}

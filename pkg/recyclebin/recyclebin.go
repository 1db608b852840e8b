// Package recyclebin buffers deleted business entities so they can be
// restored or purged later, independent of the main data document. The ledger
// is a single JSON array persisted under its own storage key. Entries are
// only ever appended; restoring stamps an entry in place and leaves it in the
// ledger, permanent deletion is the only removal path.
package recyclebin

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Clancy-dev/clancygraintracker/models"
	"github.com/Clancy-dev/clancygraintracker/pkg/kv"
)

// StorageKey is the document key the ledger lives under.
const StorageKey = "grainTrackerRecycleBin"

// Bin is the recycle-bin ledger over an injected store.
type Bin struct {
	mu     sync.Mutex
	store  kv.Store
	logger *zap.Logger
}

// New creates a Bin. A nil logger falls back to zap's production logger.
func New(store kv.Store, logger *zap.Logger) *Bin {
	if logger == nil {
		logger, _ = zap.NewProduction()
	}
	return &Bin{store: store, logger: logger}
}

// load reads the full ledger. A missing document is an empty ledger; a corrupt
// one is logged and replaced by an empty ledger, matching the load-time
// fallback used for the main data document.
func (b *Bin) load() ([]models.DeletedItem, error) {
	raw, ok, err := b.store.Get(StorageKey)
	if err != nil {
		return nil, fmt.Errorf("read recycle bin: %w", err)
	}
	if !ok {
		return []models.DeletedItem{}, nil
	}
	var items []models.DeletedItem
	if err := json.Unmarshal(raw, &items); err != nil {
		b.logger.Error("corrupt recycle bin document, starting empty", zap.Error(err))
		return []models.DeletedItem{}, nil
	}
	return items, nil
}

func (b *Bin) save(items []models.DeletedItem) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode recycle bin: %w", err)
	}
	if err := b.store.Set(StorageKey, raw); err != nil {
		return fmt.Errorf("write recycle bin: %w", err)
	}
	return nil
}

// Add wraps data in a DeletedItem with a fresh id and current timestamp and
// appends it to the ledger. Repeated deletes of identical data create
// distinct entries; there is no deduplication.
func (b *Bin) Add(itemType models.ItemType, data any, deletedBy string) (models.DeletedItem, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return models.DeletedItem{}, fmt.Errorf("encode deleted payload: %w", err)
	}
	item := models.DeletedItem{
		ID:        uuid.NewString(),
		ItemType:  itemType,
		Data:      raw,
		DeletedBy: deletedBy,
		DeletedAt: time.Now(),
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	items, err := b.load()
	if err != nil {
		return models.DeletedItem{}, err
	}
	items = append(items, item)
	if err := b.save(items); err != nil {
		return models.DeletedItem{}, err
	}
	b.logger.Info("item moved to recycle bin",
		zap.String("id", item.ID),
		zap.String("item_type", string(itemType)),
		zap.String("deleted_by", deletedBy))
	return item, nil
}

// List returns the full ledger in insertion order (oldest first).
func (b *Bin) List() ([]models.DeletedItem, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.load()
}

// ListByType filters the ledger to entries with the given tag.
func (b *Bin) ListByType(itemType models.ItemType) ([]models.DeletedItem, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	items, err := b.load()
	if err != nil {
		return nil, err
	}
	out := make([]models.DeletedItem, 0, len(items))
	for _, item := range items {
		if item.ItemType == itemType {
			out = append(out, item)
		}
	}
	return out, nil
}

// Restore stamps the entry with restoredAt/restoredBy in place and returns its
// payload so the caller can re-insert it into the right live collection. The
// entry is not removed from the ledger. A missing id yields (nil, false, nil);
// callers treat that as a no-op, not a failure of the ledger itself.
func (b *Bin) Restore(id, restoredBy string) (json.RawMessage, bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	items, err := b.load()
	if err != nil {
		return nil, false, err
	}
	for i := range items {
		if items[i].ID != id {
			continue
		}
		now := time.Now()
		items[i].RestoredAt = &now
		items[i].RestoredBy = restoredBy
		if err := b.save(items); err != nil {
			return nil, false, err
		}
		b.logger.Info("item restored from recycle bin",
			zap.String("id", id),
			zap.String("restored_by", restoredBy))
		return items[i].Data, true, nil
	}
	return nil, false, nil
}

// PermanentlyDelete removes the entry matching id. Returns false if no entry
// matched; the ledger is left unchanged in that case.
func (b *Bin) PermanentlyDelete(id string) (bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	items, err := b.load()
	if err != nil {
		return false, err
	}
	kept := make([]models.DeletedItem, 0, len(items))
	for _, item := range items {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	if len(kept) == len(items) {
		return false, nil
	}
	if err := b.save(kept); err != nil {
		return false, err
	}
	b.logger.Info("item permanently deleted from recycle bin", zap.String("id", id))
	return true, nil
}

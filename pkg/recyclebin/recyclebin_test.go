package recyclebin

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/Clancy-dev/clancygraintracker/models"
	"github.com/Clancy-dev/clancygraintracker/pkg/kv"
)

func newTestBin(t *testing.T) (*Bin, kv.Store) {
	store := kv.NewMemoryStore()
	return New(store, zaptest.NewLogger(t)), store
}

func sampleExpense() models.Expense {
	return models.Expense{
		ID:          "exp-1",
		Description: "Fuel",
		Amount:      45000,
		Category:    "fuel",
		Date:        time.Date(2023, time.June, 15, 0, 0, 0, 0, time.UTC),
	}
}

func TestListEmptyBin(t *testing.T) {
	b, _ := newTestBin(t)
	items, err := b.List()
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestAddAssignsFreshIDs(t *testing.T) {
	b, _ := newTestBin(t)
	first, err := b.Add(models.ItemTypeExpense, sampleExpense(), "user-1")
	require.NoError(t, err)
	second, err := b.Add(models.ItemTypeExpense, sampleExpense(), "user-1")
	require.NoError(t, err)

	// no dedup: identical payloads become distinct entries
	assert.NotEqual(t, first.ID, second.ID)
	assert.NotEqual(t, first.ID, sampleExpense().ID)

	items, err := b.List()
	require.NoError(t, err)
	require.Len(t, items, 2)
	// insertion order, oldest first
	assert.Equal(t, first.ID, items[0].ID)
	assert.Equal(t, second.ID, items[1].ID)
	assert.Equal(t, "user-1", items[0].DeletedBy)
	assert.False(t, items[0].DeletedAt.IsZero())
	assert.Nil(t, items[0].RestoredAt)
}

func TestRestoreStampsEntryInPlace(t *testing.T) {
	b, _ := newTestBin(t)
	entry, err := b.Add(models.ItemTypeExpense, sampleExpense(), "user-1")
	require.NoError(t, err)

	payload, ok, err := b.Restore(entry.ID, "admin-1")
	require.NoError(t, err)
	require.True(t, ok)

	var got models.Expense
	require.NoError(t, json.Unmarshal(payload, &got))
	assert.Equal(t, sampleExpense(), got)

	// the entry stays in the ledger with restoration stamps
	items, err := b.List()
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.NotNil(t, items[0].RestoredAt)
	assert.Equal(t, "admin-1", items[0].RestoredBy)
}

func TestRestoreUnknownIDIsNoOp(t *testing.T) {
	b, _ := newTestBin(t)
	_, err := b.Add(models.ItemTypeSale, models.Sale{ID: "s1", Customer: "Kampala Traders", Amount: 350000}, "user-1")
	require.NoError(t, err)

	payload, ok, err := b.Restore("no-such-id", "admin-1")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, payload)

	items, err := b.List()
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Nil(t, items[0].RestoredAt)
}

func TestPermanentlyDelete(t *testing.T) {
	b, _ := newTestBin(t)
	entry, err := b.Add(models.ItemTypeExpense, sampleExpense(), "user-1")
	require.NoError(t, err)

	ok, err := b.PermanentlyDelete(entry.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	items, err := b.List()
	require.NoError(t, err)
	assert.Empty(t, items)

	// second purge of the same id fails and changes nothing
	ok, err = b.PermanentlyDelete(entry.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestListByType(t *testing.T) {
	b, _ := newTestBin(t)
	_, err := b.Add(models.ItemTypeExpense, sampleExpense(), "user-1")
	require.NoError(t, err)
	_, err = b.Add(models.ItemTypeSale, models.Sale{ID: "s1"}, "user-1")
	require.NoError(t, err)
	_, err = b.Add(models.ItemTypeExpense, sampleExpense(), "user-2")
	require.NoError(t, err)

	expenses, err := b.ListByType(models.ItemTypeExpense)
	require.NoError(t, err)
	assert.Len(t, expenses, 2)

	prices, err := b.ListByType(models.ItemTypeMarketPrice)
	require.NoError(t, err)
	assert.Empty(t, prices)
}

func TestCorruptLedgerStartsEmpty(t *testing.T) {
	store := kv.NewMemoryStore()
	require.NoError(t, store.Set(StorageKey, []byte("{not json")))
	b := New(store, zaptest.NewLogger(t))

	items, err := b.List()
	require.NoError(t, err)
	assert.Empty(t, items)
}

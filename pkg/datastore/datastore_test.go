package datastore

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/Clancy-dev/clancygraintracker/models"
	"github.com/Clancy-dev/clancygraintracker/pkg/kv"
	"github.com/Clancy-dev/clancygraintracker/pkg/recyclebin"
)

func newTestStore(t *testing.T) (*Store, *recyclebin.Bin, kv.Store) {
	backing := kv.NewMemoryStore()
	logger := zaptest.NewLogger(t)
	b := recyclebin.New(backing, logger)
	s, err := New(backing, b, logger)
	require.NoError(t, err)
	return s, b, backing
}

func TestNewSeedsOnFirstRun(t *testing.T) {
	s, _, backing := newTestStore(t)

	d := s.Data()
	assert.Equal(t, SeedData(), d)

	// the seed is persisted, not just held in memory
	_, ok, err := backing.Get(StorageKey)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestCorruptDocumentFallsBackToSeed(t *testing.T) {
	backing := kv.NewMemoryStore()
	require.NoError(t, backing.Set(StorageKey, []byte("][ not json")))
	logger := zaptest.NewLogger(t)
	s, err := New(backing, recyclebin.New(backing, logger), logger)
	require.NoError(t, err)
	assert.Equal(t, SeedData(), s.Data())
}

func TestUpdateDataRoundTrip(t *testing.T) {
	s, bin, backing := newTestStore(t)

	doc := s.Data()
	doc.Expenses = append(doc.Expenses, models.Expense{
		ID:          "exp-9",
		Description: "Storage rental",
		Amount:      80000,
		Category:    "storage",
		Date:        time.Date(2023, time.July, 1, 9, 30, 0, 0, time.UTC),
	})
	require.NoError(t, s.UpdateData(doc))

	// a fresh store over the same backing must see an identical document,
	// including reconstructed date fields
	logger := zaptest.NewLogger(t)
	reloaded, err := New(backing, bin, logger)
	require.NoError(t, err)
	assert.Equal(t, doc.Expenses, reloaded.Data().Expenses)

	want, err := json.Marshal(doc)
	require.NoError(t, err)
	got, err := json.Marshal(reloaded.Data())
	require.NoError(t, err)
	assert.JSONEq(t, string(want), string(got))
}

func TestDataReturnsCopy(t *testing.T) {
	s, _, _ := newTestStore(t)
	d := s.Data()
	d.Expenses[0].Description = "tampered"
	assert.NotEqual(t, "tampered", s.Data().Expenses[0].Description)
}

func TestAddHistoryEntryAndFilterByDate(t *testing.T) {
	s, _, _ := newTestStore(t)
	day := time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)

	first, err := s.AddHistoryEntry(models.HistoryEntry{
		Type: models.ItemTypeExpense, Description: "Morning fuel", Amount: 10000,
		Date: day.Add(8 * time.Hour),
	})
	require.NoError(t, err)
	second, err := s.AddHistoryEntry(models.HistoryEntry{
		Type: models.ItemTypeSale, Description: "Evening sale", Amount: 90000,
		Date: day.Add(19 * time.Hour),
	})
	require.NoError(t, err)
	_, err = s.AddHistoryEntry(models.HistoryEntry{
		Type: models.ItemTypeSale, Description: "Next day", Amount: 5000,
		Date: day.AddDate(0, 0, 1),
	})
	require.NoError(t, err)

	assert.NotEmpty(t, first.ID)
	assert.NotEqual(t, first.ID, second.ID)

	// time-of-day on the query date is ignored
	entries := s.HistoryForDate(day.Add(23 * time.Hour))
	require.Len(t, entries, 2)
	// append order is preserved
	assert.Equal(t, first.ID, entries[0].ID)
	assert.Equal(t, second.ID, entries[1].ID)

	assert.Empty(t, s.HistoryForDate(day.AddDate(0, 0, 2)))
}

func TestDeleteItemMovesEntityToBin(t *testing.T) {
	s, bin, _ := newTestStore(t)
	target := s.Data().Expenses[0]

	found, err := s.DeleteItem(models.ItemTypeExpense, target.ID, "admin-1")
	require.NoError(t, err)
	require.True(t, found)

	for _, e := range s.Data().Expenses {
		assert.NotEqual(t, target.ID, e.ID)
	}

	items, err := bin.List()
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, models.ItemTypeExpense, items[0].ItemType)
	assert.Equal(t, "admin-1", items[0].DeletedBy)

	got, err := models.DecodePayload(items[0].ItemType, items[0].Data)
	require.NoError(t, err)
	assert.Equal(t, target, got)
}

func TestDeleteItemUnknownIDIsNoOp(t *testing.T) {
	s, bin, _ := newTestStore(t)
	before := s.Data()

	found, err := s.DeleteItem(models.ItemTypeSale, "no-such-id", "admin-1")
	require.NoError(t, err)
	assert.False(t, found)

	assert.Equal(t, before, s.Data())
	items, err := bin.List()
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestDeleteItemUnknownTypeErrors(t *testing.T) {
	s, _, _ := newTestStore(t)
	_, err := s.DeleteItem(models.ItemType("bogus"), "1", "admin-1")
	assert.Error(t, err)
}

func TestDeleteDebtChecksDebtorsThenCreditors(t *testing.T) {
	s, bin, _ := newTestStore(t)
	creditor := s.Data().Creditors[0]

	found, err := s.DeleteItem(models.ItemTypeDebt, creditor.ID, "admin-1")
	require.NoError(t, err)
	require.True(t, found)

	// seed has a debtor with the same id; debtors are checked first
	d := s.Data()
	hasDebtor := false
	for _, dt := range d.Debtors {
		if dt.ID == creditor.ID {
			hasDebtor = true
		}
	}
	assert.False(t, hasDebtor)
	assert.Len(t, d.Creditors, 1)

	items, err := bin.List()
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, models.ItemTypeDebt, items[0].ItemType)
}

func TestExpenseDeleteRestoreScenario(t *testing.T) {
	s, bin, _ := newTestStore(t)

	expense := models.Expense{
		ID:          "exp-fuel",
		Description: "Fuel",
		Amount:      45000,
		Category:    "fuel",
		Date:        time.Date(2023, time.June, 15, 0, 0, 0, 0, time.UTC),
	}
	doc := s.Data()
	doc.Expenses = append(doc.Expenses, expense)
	require.NoError(t, s.UpdateData(doc))

	found, err := s.DeleteItem(models.ItemTypeExpense, expense.ID, "user-1")
	require.NoError(t, err)
	require.True(t, found)

	items, err := bin.ListByType(models.ItemTypeExpense)
	require.NoError(t, err)
	require.Len(t, items, 1)

	payload, ok, err := bin.Restore(items[0].ID, "admin-1")
	require.NoError(t, err)
	require.True(t, ok)
	require.NoError(t, s.RestoreItem(models.ItemTypeExpense, payload))

	// the expense is live again with identical fields
	var restored *models.Expense
	for _, e := range s.Data().Expenses {
		if e.ID == expense.ID {
			cp := e
			restored = &cp
		}
	}
	require.NotNil(t, restored)
	assert.Equal(t, expense, *restored)

	// and the ledger entry persists with restoration stamps
	items, err = bin.ListByType(models.ItemTypeExpense)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.NotNil(t, items[0].RestoredAt)
	assert.Equal(t, "admin-1", items[0].RestoredBy)
}

func TestRestoreDebtRoutesOnKind(t *testing.T) {
	s, _, _ := newTestStore(t)

	creditor := models.Debt{
		ID: "cr-9", Name: "Seed Supplier", Amount: 20000,
		Date:    time.Date(2023, time.June, 1, 0, 0, 0, 0, time.UTC),
		DueDate: time.Date(2023, time.June, 30, 0, 0, 0, 0, time.UTC),
		Kind:    models.DebtKindCreditor,
	}
	raw, err := json.Marshal(creditor)
	require.NoError(t, err)
	require.NoError(t, s.RestoreItem(models.ItemTypeDebt, raw))

	d := s.Data()
	assert.Len(t, d.Creditors, 2)
	assert.Equal(t, "cr-9", d.Creditors[1].ID)
}

func TestRestoreLegacyDebtFallsBackToDueDate(t *testing.T) {
	s, _, _ := newTestStore(t)

	// a payload written before the kind field existed: populated dueDate
	// means debtor under the old convention
	raw := []byte(`{"id":"legacy-1","name":"Mbale Market","amount":75000,"description":"","date":"2023-06-19T00:00:00Z","dueDate":"2023-07-03T00:00:00Z"}`)
	require.NoError(t, s.RestoreItem(models.ItemTypeDebt, raw))

	d := s.Data()
	require.Len(t, d.Debtors, 3)
	assert.Equal(t, "legacy-1", d.Debtors[2].ID)
	assert.Equal(t, models.DebtKindDebtor, d.Debtors[2].Kind)
}

package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mem "travelwise/pkg/memcache"
	"travelwise/pkg/utils"
)

func newExpenseService() ExpenseServiceInterface {
	return NewExpenseService(mem.NewUserSessions())
}

func TestAddRejectsNonPositiveAmounts(t *testing.T) {
	svc := newExpenseService()
	day := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, svc.Add("maria@example.com", day, "Food", 350))

	for _, amount := range []float64{0, -1, -350} {
		err := svc.Add("maria@example.com", day, "Food", amount)
		assert.ErrorIs(t, err, utils.ErrNonPositiveAmount)
	}

	summary := svc.Summary("maria@example.com")
	assert.Len(t, summary.Entries, 1, "rejected entries must not be appended")
}

func TestAddRejectsUnknownCategory(t *testing.T) {
	svc := newExpenseService()
	day := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)

	err := svc.Add("maria@example.com", day, "Bribes", 100)
	assert.ErrorIs(t, err, utils.ErrUnknownCategory)
	assert.Empty(t, svc.Summary("maria@example.com").Entries)
}

func TestSummaryTotalsAcceptedEntries(t *testing.T) {
	svc := newExpenseService()
	day := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, svc.Add("maria@example.com", day, "Flights", 12000))
	require.NoError(t, svc.Add("maria@example.com", day.AddDate(0, 0, 1), "Food", 800))
	require.NoError(t, svc.Add("maria@example.com", day.AddDate(0, 0, 2), "Shopping", 1500))

	summary := svc.Summary("maria@example.com")
	assert.Equal(t, 14300.0, summary.TotalSpent)

	// Insertion order is preserved for display.
	require.Len(t, summary.Entries, 3)
	assert.Equal(t, "Flights", summary.Entries[0].Category)
	assert.Equal(t, "Shopping", summary.Entries[2].Category)
}

func TestRemainingOnlyDefinedWithLimit(t *testing.T) {
	svc := newExpenseService()
	day := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, svc.Add("maria@example.com", day, "Food", 800))

	summary := svc.Summary("maria@example.com")
	assert.Nil(t, summary.Remaining, "no limit set, remaining undefined")

	svc.SetLimit("maria@example.com", 5000)
	summary = svc.Summary("maria@example.com")
	require.NotNil(t, summary.Remaining)
	assert.Equal(t, 4200.0, *summary.Remaining)
}

func TestLedgersAreScopedPerUser(t *testing.T) {
	svc := newExpenseService()
	day := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, svc.Add("maria@example.com", day, "Food", 800))
	require.NoError(t, svc.Add("other@example.com", day, "Flights", 9000))

	assert.Equal(t, 800.0, svc.Summary("maria@example.com").TotalSpent)
	assert.Equal(t, 9000.0, svc.Summary("other@example.com").TotalSpent)
}

func TestClearEmptiesLedgerUnconditionally(t *testing.T) {
	svc := newExpenseService()
	day := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, svc.Add("maria@example.com", day, "Food", 800))
	svc.SetLimit("maria@example.com", 5000)

	svc.Clear("maria@example.com")

	summary := svc.Summary("maria@example.com")
	assert.Empty(t, summary.Entries)
	assert.Zero(t, summary.TotalSpent)
	assert.Nil(t, summary.Remaining)
}

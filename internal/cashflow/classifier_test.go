package cashflow

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agrolivro/agrolivro/internal/models"
)

func march(day int) time.Time {
	return time.Date(2024, 3, day, 0, 0, 0, 0, time.UTC)
}

func loadedLookup(t *testing.T) *Lookup {
	t.Helper()
	lookup := newTestLookup()
	require.NoError(t, lookup.Load())
	return lookup
}

func newBucket() *models.MonthlyBucket {
	buckets := models.NewMonthlyBuckets()
	return &buckets[2]
}

func amount(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestClassifyFinancingInstallmentEntrySkipped(t *testing.T) {
	bucket := newBucket()
	entry := &models.LedgerEntry{
		Date:        march(5),
		Amount:      amount("800.00"),
		Direction:   models.DirectionDebit,
		Modality:    models.ModalityFinancing,
		Installment: true,
		Allocations: []models.AllocationSplit{{AccountID: 200, Amount: amount("800.00"), Direction: models.DirectionDebit}},
	}
	classifyEntry(bucket, entry, loadedLookup(t))

	assert.Empty(t, bucket.Expense)
	assert.Empty(t, bucket.Pending)
}

func TestClassifyUnallocatedEntryGoesToPendingByHolder(t *testing.T) {
	bucket := newBucket()
	entry := &models.LedgerEntry{
		AccountHolderID: 55,
		Date:            march(5),
		Amount:          amount("-320.00"),
		Direction:       models.DirectionDebit,
		Modality:        models.ModalityStandard,
	}
	classifyEntry(bucket, entry, loadedLookup(t))

	require.Len(t, bucket.Pending, 1)
	assert.True(t, bucket.Pending[55].Equal(amount("320.00")))
}

func TestClassifyUnknownAccountGoesToPendingOnly(t *testing.T) {
	bucket := newBucket()
	entry := &models.LedgerEntry{
		Date:        march(5),
		Amount:      amount("90.00"),
		Direction:   models.DirectionCredit,
		Modality:    models.ModalityStandard,
		Allocations: []models.AllocationSplit{{AccountID: 999, Amount: amount("90.00"), Direction: models.DirectionCredit}},
	}
	classifyEntry(bucket, entry, loadedLookup(t))

	assert.True(t, bucket.Pending[999].Equal(amount("90.00")))
	assert.Empty(t, bucket.Revenue)
	assert.Empty(t, bucket.Expense)
	assert.Empty(t, bucket.Investments)
}

func TestClassifyRevenueRollsUpUnderParent(t *testing.T) {
	bucket := newBucket()
	entry := &models.LedgerEntry{
		Date:        march(5),
		Amount:      amount("1500.00"),
		Direction:   models.DirectionCredit,
		Modality:    models.ModalityStandard,
		Allocations: []models.AllocationSplit{{AccountID: 100, Amount: amount("1500.00"), Direction: models.DirectionCredit}},
	}
	classifyEntry(bucket, entry, loadedLookup(t))

	require.Contains(t, bucket.Revenue, int64(10), "keyed by the level-2 parent")
	assert.True(t, bucket.Revenue[10][100].Equal(amount("1500.00")))
	assert.Empty(t, bucket.Pending)
}

func TestClassifyExpenseRollsUpUnderParent(t *testing.T) {
	bucket := newBucket()
	entry := &models.LedgerEntry{
		Date:        march(5),
		Amount:      amount("-400.00"),
		Direction:   models.DirectionDebit,
		Modality:    models.ModalityStandard,
		Allocations: []models.AllocationSplit{{AccountID: 200, Amount: amount("-400.00"), Direction: models.DirectionDebit}},
	}
	classifyEntry(bucket, entry, loadedLookup(t))

	require.Contains(t, bucket.Expense, int64(20))
	assert.True(t, bucket.Expense[20][200].Equal(amount("400.00")), "expense magnitudes are positive")
}

func TestClassifyInvestment(t *testing.T) {
	bucket := newBucket()
	entry := &models.LedgerEntry{
		Date:        march(5),
		Amount:      amount("-9000.00"),
		Direction:   models.DirectionDebit,
		Modality:    models.ModalityStandard,
		Allocations: []models.AllocationSplit{{AccountID: 300, Amount: amount("9000.00"), Direction: models.DirectionDebit}},
	}
	classifyEntry(bucket, entry, loadedLookup(t))

	assert.True(t, bucket.Investments[300].Equal(amount("-9000.00")), "debit investments are negative")
	assert.Empty(t, bucket.Pending)
}

func TestClassifyFamilyFallbacksToPending(t *testing.T) {
	tests := []struct {
		name      string
		accountID int64
	}{
		{"path outside both families", 400},
		{"account without parent", 500},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bucket := newBucket()
			entry := &models.LedgerEntry{
				Date:        march(5),
				Amount:      amount("10.00"),
				Direction:   models.DirectionCredit,
				Modality:    models.ModalityStandard,
				Allocations: []models.AllocationSplit{{AccountID: tt.accountID, Amount: amount("10.00"), Direction: models.DirectionCredit}},
			}
			classifyEntry(bucket, entry, loadedLookup(t))

			assert.True(t, bucket.Pending[tt.accountID].Equal(amount("10.00")))
			assert.Empty(t, bucket.Revenue)
			assert.Empty(t, bucket.Expense)
		})
	}
}

func TestClassifyTransferModalityGoesToPending(t *testing.T) {
	bucket := newBucket()
	entry := &models.LedgerEntry{
		Date:        march(5),
		Amount:      amount("250.00"),
		Direction:   models.DirectionCredit,
		Modality:    models.ModalityTransfer,
		Allocations: []models.AllocationSplit{{AccountID: 100, Amount: amount("250.00"), Direction: models.DirectionCredit}},
	}
	classifyEntry(bucket, entry, loadedLookup(t))

	assert.True(t, bucket.Pending[100].Equal(amount("250.00")))
	assert.Empty(t, bucket.Revenue)
}

// Every split of a classified entry lands in exactly one bucket family:
// summing the absolute amounts across families recovers the allocated
// total.
func TestClassifyDisjointness(t *testing.T) {
	bucket := newBucket()
	entry := &models.LedgerEntry{
		Date:      march(5),
		Amount:    amount("1000.00"),
		Direction: models.DirectionCredit,
		Modality:  models.ModalityStandard,
		Allocations: []models.AllocationSplit{
			{AccountID: 100, Amount: amount("400.00"), Direction: models.DirectionCredit},
			{AccountID: 200, Amount: amount("300.00"), Direction: models.DirectionDebit},
			{AccountID: 300, Amount: amount("200.00"), Direction: models.DirectionCredit},
			{AccountID: 999, Amount: amount("100.00"), Direction: models.DirectionCredit},
		},
	}
	classifyEntry(bucket, entry, loadedLookup(t))

	placed := bucket.Revenue.Total().
		Add(bucket.Expense.Total()).
		Add(bucket.SumInvestments().Abs()).
		Add(bucket.SumPending())
	assert.True(t, placed.Equal(amount("1000.00")), "placed %s", placed)
}

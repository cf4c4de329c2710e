package cashflow

import (
	"github.com/shopspring/decimal"

	"github.com/agrolivro/agrolivro/internal/models"
)

// classifyEntry places one ledger entry into the bucket families of its
// month. Every branch is mutually exclusive and every split lands exactly
// once; nothing is dropped silently. The pending bucket is the designed
// "needs attention" surface, not an error path.
func classifyEntry(bucket *models.MonthlyBucket, entry *models.LedgerEntry, lookup *Lookup) {
	// Financing installment entries are booked from the installment
	// stream instead; counting them here would double the same movement.
	if entry.Modality == models.ModalityFinancing && entry.Installment {
		return
	}

	// Unallocated entries fall back to pending, keyed by the bank
	// account that holds them.
	if len(entry.Allocations) == 0 {
		addPending(bucket, entry.AccountHolderID, entry.Amount.Abs())
		return
	}

	for _, split := range entry.Allocations {
		classifySplit(bucket, entry, split, lookup)
	}
}

func classifySplit(bucket *models.MonthlyBucket, entry *models.LedgerEntry, split models.AllocationSplit, lookup *Lookup) {
	account, ok := lookup.Account(split.AccountID)
	if !ok {
		// Unknown accounts need manual follow-up, not an error.
		addPending(bucket, split.AccountID, split.Amount.Abs())
		return
	}

	standard := entry.Modality == models.ModalityStandard && !entry.Installment

	switch {
	case account.Nature == models.NatureInvestment && standard:
		bucket.Investments[account.ID] = bucket.Investments[account.ID].Add(signedSplit(split))

	case (account.Nature == models.NatureCost || account.Nature == models.NatureRevenue) && standard:
		classifyByFamily(bucket, account, split)

	default:
		// Transfers, financing without the installment flag, and any
		// other combination are left for manual selection.
		addPending(bucket, split.AccountID, split.Amount.Abs())
	}
}

// classifyByFamily rolls a revenue or expense split up under its level-2
// parent, deciding the family from the root segment of the hierarchy path.
func classifyByFamily(bucket *models.MonthlyBucket, account models.ChartAccount, split models.AllocationSplit) {
	if !account.ParentID.Set {
		addPending(bucket, account.ID, split.Amount.Abs())
		return
	}
	switch {
	case account.IsRevenueFamily():
		bucket.Revenue.Add(account.ParentID.Value, account.ID, split.Amount.Abs())
	case account.IsExpenseFamily():
		bucket.Expense.Add(account.ParentID.Value, account.ID, split.Amount.Abs())
	default:
		addPending(bucket, account.ID, split.Amount.Abs())
	}
}

func addPending(bucket *models.MonthlyBucket, key int64, amount decimal.Decimal) {
	bucket.Pending[key] = bucket.Pending[key].Add(amount)
}

// signedSplit returns the split amount signed by its direction, debits
// negative.
func signedSplit(split models.AllocationSplit) decimal.Decimal {
	if split.Direction == models.DirectionDebit {
		return split.Amount.Abs().Neg()
	}
	return split.Amount.Abs()
}

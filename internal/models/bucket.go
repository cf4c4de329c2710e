package models

import "github.com/shopspring/decimal"

// FamilyTotals nests leaf amounts under their level-2 parent account:
// parent id -> leaf id -> amount.
type FamilyTotals map[int64]map[int64]decimal.Decimal

// Add accumulates amount under parent/leaf, creating slots as needed.
func (f FamilyTotals) Add(parentID, leafID int64, amount decimal.Decimal) {
	leaves, ok := f[parentID]
	if !ok {
		leaves = make(map[int64]decimal.Decimal)
		f[parentID] = leaves
	}
	leaves[leafID] = leaves[leafID].Add(amount)
}

// Total sums every leaf amount in the family.
func (f FamilyTotals) Total() decimal.Decimal {
	total := decimal.Zero
	for _, leaves := range f {
		for _, amount := range leaves {
			total = total.Add(amount)
		}
	}
	return total
}

// FinancingSlot accumulates installment amounts for one creditor.
type FinancingSlot struct {
	CreditorName string          `json:"credor"`
	Amount       decimal.Decimal `json:"valor"`
}

// MonthlyBucket is one of the twelve slots of a cash-flow report.
// Buckets are a computed view, rebuilt per report run and never persisted.
// JSON tags follow the renderer contract.
type MonthlyBucket struct {
	Month          int                         `json:"mes"` // 0-11
	Revenue        FamilyTotals                `json:"receitas"`
	Expense        FamilyTotals                `json:"despesas"`
	Investments    map[int64]decimal.Decimal   `json:"investimentos"`
	Financing      map[string]FinancingSlot    `json:"financiamentos"`
	Pending        map[int64]decimal.Decimal   `json:"pendentesSelecao"`
	OpeningBalance decimal.Decimal             `json:"saldoInicial"`
	ClosingBalance decimal.Decimal             `json:"saldoFinal"`
	Growth         decimal.Decimal             `json:"crescimento"`
}

// NewMonthlyBuckets preallocates the twelve report slots, indexed by
// calendar month.
func NewMonthlyBuckets() []MonthlyBucket {
	buckets := make([]MonthlyBucket, 12)
	for m := range buckets {
		buckets[m] = MonthlyBucket{
			Month:       m,
			Revenue:     make(FamilyTotals),
			Expense:     make(FamilyTotals),
			Investments: make(map[int64]decimal.Decimal),
			Financing:   make(map[string]FinancingSlot),
			Pending:     make(map[int64]decimal.Decimal),
		}
	}
	return buckets
}

// SumInvestments totals the investment bucket.
func (b *MonthlyBucket) SumInvestments() decimal.Decimal {
	total := decimal.Zero
	for _, amount := range b.Investments {
		total = total.Add(amount)
	}
	return total
}

// SumFinancing totals the financing bucket.
func (b *MonthlyBucket) SumFinancing() decimal.Decimal {
	total := decimal.Zero
	for _, slot := range b.Financing {
		total = total.Add(slot.Amount)
	}
	return total
}

// SumPending totals the pending bucket.
func (b *MonthlyBucket) SumPending() decimal.Decimal {
	total := decimal.Zero
	for _, amount := range b.Pending {
		total = total.Add(amount)
	}
	return total
}

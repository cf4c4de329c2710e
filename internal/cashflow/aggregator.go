package cashflow

import (
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/agrolivro/agrolivro/internal/dateutils"
	"github.com/agrolivro/agrolivro/internal/models"
)

var hundred = decimal.NewFromInt(100)

// Aggregator builds the twelve-month cash-flow report. The fold is a
// pure, synchronous pass over already-fetched data: the Lookup is loaded
// in full before any entry is classified.
type Aggregator struct {
	lookup *Lookup
	logger *logrus.Logger
}

// NewAggregator creates an Aggregator over the given reference lookup.
func NewAggregator(lookup *Lookup, logger *logrus.Logger) *Aggregator {
	if logger == nil {
		logger = logrus.New()
	}
	return &Aggregator{lookup: lookup, logger: logger}
}

// BuildReport folds a full year of ledger entries and loan installments
// into twelve ordered monthly buckets with running balance and growth.
// Entries outside the report year are ignored.
func (a *Aggregator) BuildReport(year int, entries []models.LedgerEntry, installments []models.LoanInstallment) ([]models.MonthlyBucket, error) {
	if err := a.lookup.Load(); err != nil {
		return nil, err
	}

	buckets := models.NewMonthlyBuckets()

	for i := range entries {
		entry := &entries[i]
		if !dateutils.SameYear(entry.Date, year) {
			continue
		}
		classifyEntry(&buckets[dateutils.MonthIndex(entry.Date)], entry, a.lookup)
	}

	foldInstallments(buckets, installments, a.lookup, year, a.logger)
	chainBalances(buckets)

	a.logger.WithFields(logrus.Fields{
		"year":    year,
		"entries": len(entries),
	}).Info("Built cash-flow report")
	return buckets, nil
}

// chainBalances computes opening/closing balances and month-over-month
// growth. The report is scoped to its own year: month 0 always opens at
// zero, never at a lifetime balance.
func chainBalances(buckets []models.MonthlyBucket) {
	for i := range buckets {
		bucket := &buckets[i]
		if i == 0 {
			bucket.OpeningBalance = decimal.Zero
		} else {
			bucket.OpeningBalance = buckets[i-1].ClosingBalance
		}

		bucket.ClosingBalance = bucket.OpeningBalance.
			Add(bucket.Revenue.Total().Sub(bucket.Expense.Total())).
			Add(bucket.SumInvestments()).
			Add(bucket.SumFinancing()).
			Add(bucket.SumPending())

		bucket.Growth = growth(bucket.OpeningBalance, bucket.ClosingBalance)
	}
}

// growth returns the month's percentage growth rounded to one decimal.
// A zero opening balance has no ratio, so the sign of the change stands
// in as a directional signal: +100, -100 or 0.
func growth(opening, closing decimal.Decimal) decimal.Decimal {
	if opening.IsZero() {
		switch {
		case closing.IsPositive():
			return hundred
		case closing.IsNegative():
			return hundred.Neg()
		default:
			return decimal.Zero
		}
	}
	return closing.Sub(opening).Div(opening.Abs()).Mul(hundred).Round(1)
}

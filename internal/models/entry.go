package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// AllocationSplit distributes part of a ledger entry's value onto a
// chart-of-accounts leaf.
type AllocationSplit struct {
	AccountID int64           `yaml:"account_id"`
	Amount    decimal.Decimal `yaml:"amount"`
	Direction string          `yaml:"direction"`
}

// CostCenterSplit mirrors AllocationSplit for cost centers. It is carried
// on the entry but plays no part in cash-flow classification.
type CostCenterSplit struct {
	CostCenterID int64           `yaml:"cost_center_id"`
	Amount       decimal.Decimal `yaml:"amount"`
	Direction    string          `yaml:"direction"`
}

// LedgerEntry is the external store's permanent record shape. The
// classifier consumes it read-only.
type LedgerEntry struct {
	ID              int64             `yaml:"id"`
	AccountHolderID int64             `yaml:"account_holder_id"`
	Date            time.Time         `yaml:"date"`
	Description     string            `yaml:"description"`
	Amount          decimal.Decimal   `yaml:"amount"`
	Direction       string            `yaml:"direction"`
	Modality        string            `yaml:"modality"`
	Installment     bool              `yaml:"installment"`
	ImportIdentity  string            `yaml:"import_identity"`
	Allocations     []AllocationSplit `yaml:"allocations"`
	CostCenters     []CostCenterSplit `yaml:"cost_centers"`
}

// IsCredit reports whether the entry is incoming money.
func (e *LedgerEntry) IsCredit() bool {
	return e.Direction == DirectionCredit
}

// IsDebit reports whether the entry is outgoing money.
func (e *LedgerEntry) IsDebit() bool {
	return e.Direction == DirectionDebit
}

// SignedAmount returns the amount with a sign following direction, for
// balance arithmetic on entries whose Amount is stored as magnitude.
func (e *LedgerEntry) SignedAmount() decimal.Decimal {
	if e.IsDebit() {
		return e.Amount.Abs().Neg()
	}
	return e.Amount.Abs()
}

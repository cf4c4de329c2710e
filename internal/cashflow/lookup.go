// Package cashflow folds a year of ledger entries, loan installments and
// the chart of accounts into twelve monthly cash-flow buckets with running
// balances.
package cashflow

import (
	"fmt"

	"github.com/agrolivro/agrolivro/internal/models"
)

// ReferenceSource supplies the reference data the report needs. The yaml
// store and the production database both satisfy it.
type ReferenceSource interface {
	LoadChartAccounts() ([]models.ChartAccount, error)
	LoadBanks() ([]models.Bank, error)
	LoadPeople() ([]models.Person, error)
	LoadContracts() ([]models.LoanContract, error)
}

// Lookup is a read-through cache over the reference data. It is loaded
// once, in full, before aggregation starts, so the fold itself has no
// suspension points. Reload is the explicit invalidation contract.
type Lookup struct {
	src ReferenceSource

	loaded    bool
	accounts  map[int64]models.ChartAccount
	banks     map[int64]models.Bank
	people    map[int64]models.Person
	contracts map[int64]models.LoanContract
}

// NewLookup creates an unloaded Lookup over src.
func NewLookup(src ReferenceSource) *Lookup {
	return &Lookup{src: src}
}

// Load fetches all reference data. Calling it again is a no-op; use
// Reload to refresh.
func (l *Lookup) Load() error {
	if l.loaded {
		return nil
	}
	return l.Reload()
}

// Reload refetches all reference data, replacing the cached maps.
func (l *Lookup) Reload() error {
	accounts, err := l.src.LoadChartAccounts()
	if err != nil {
		return fmt.Errorf("loading chart of accounts: %w", err)
	}
	banks, err := l.src.LoadBanks()
	if err != nil {
		return fmt.Errorf("loading banks: %w", err)
	}
	people, err := l.src.LoadPeople()
	if err != nil {
		return fmt.Errorf("loading people: %w", err)
	}
	contracts, err := l.src.LoadContracts()
	if err != nil {
		return fmt.Errorf("loading loan contracts: %w", err)
	}

	l.accounts = make(map[int64]models.ChartAccount, len(accounts))
	for _, a := range accounts {
		l.accounts[a.ID] = a
	}
	l.banks = make(map[int64]models.Bank, len(banks))
	for _, b := range banks {
		l.banks[b.ID] = b
	}
	l.people = make(map[int64]models.Person, len(people))
	for _, p := range people {
		l.people[p.ID] = p
	}
	l.contracts = make(map[int64]models.LoanContract, len(contracts))
	for _, c := range contracts {
		l.contracts[c.ID] = c
	}
	l.loaded = true
	return nil
}

// Account resolves a chart account by id.
func (l *Lookup) Account(id int64) (models.ChartAccount, bool) {
	a, ok := l.accounts[id]
	return a, ok
}

// Bank resolves a bank by id.
func (l *Lookup) Bank(id int64) (models.Bank, bool) {
	b, ok := l.banks[id]
	return b, ok
}

// Person resolves a person by id.
func (l *Lookup) Person(id int64) (models.Person, bool) {
	p, ok := l.people[id]
	return p, ok
}

// Contract resolves a financing contract by id.
func (l *Lookup) Contract(id int64) (models.LoanContract, bool) {
	c, ok := l.contracts[id]
	return c, ok
}

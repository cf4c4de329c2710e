// Package store loads the application's reference data (chart of accounts,
// counterparties, loan contracts and installments, ledger fixtures) from
// yaml files. It backs CLI runs and tests; the production system reads the
// same shapes from its own database, which is out of scope here.
package store

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/agrolivro/agrolivro/internal/models"
)

// Default file names inside the data directory.
const (
	FileChartAccounts = "chart_accounts.yaml"
	FileBanks         = "banks.yaml"
	FilePeople        = "people.yaml"
	FileContracts     = "loan_contracts.yaml"
	FileInstallments  = "loan_installments.yaml"
	FileLedger        = "ledger_entries.yaml"
)

// Store reads reference data from yaml files in a directory. A missing
// file yields an empty slice, not an error, so partial data directories
// remain usable.
type Store struct {
	Dir string
}

// NewStore creates a Store over the given data directory.
func NewStore(dir string) *Store {
	return &Store{Dir: dir}
}

func loadYAML[T any](s *Store, filename string) ([]T, error) {
	path := filepath.Join(s.Dir, filename)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	var rows []T
	if err := yaml.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return rows, nil
}

// LoadChartAccounts loads the full chart of accounts.
func (s *Store) LoadChartAccounts() ([]models.ChartAccount, error) {
	return loadYAML[models.ChartAccount](s, FileChartAccounts)
}

// LoadBanks loads the bank counterparties.
func (s *Store) LoadBanks() ([]models.Bank, error) {
	return loadYAML[models.Bank](s, FileBanks)
}

// LoadPeople loads the person counterparties.
func (s *Store) LoadPeople() ([]models.Person, error) {
	return loadYAML[models.Person](s, FilePeople)
}

// LoadContracts loads the financing contracts.
func (s *Store) LoadContracts() ([]models.LoanContract, error) {
	return loadYAML[models.LoanContract](s, FileContracts)
}

type installmentRow struct {
	ID             int64      `yaml:"id"`
	ContractID     int64      `yaml:"contract_id"`
	DueDate        time.Time  `yaml:"due_date"`
	SettlementDate *time.Time `yaml:"settlement_date"`
	Amount         string     `yaml:"amount"`
	Status         string     `yaml:"status"`
}

// LoadInstallments loads the loan installments. Amounts are yaml strings
// converted through the shared money parser.
func (s *Store) LoadInstallments() ([]models.LoanInstallment, error) {
	rows, err := loadYAML[installmentRow](s, FileInstallments)
	if err != nil {
		return nil, err
	}
	installments := make([]models.LoanInstallment, 0, len(rows))
	for _, row := range rows {
		amount, ok := models.ParseAmount(row.Amount)
		if !ok {
			return nil, fmt.Errorf("installment %d: bad amount %q", row.ID, row.Amount)
		}
		installments = append(installments, models.LoanInstallment{
			ID:             row.ID,
			ContractID:     row.ContractID,
			DueDate:        row.DueDate,
			SettlementDate: row.SettlementDate,
			Amount:         amount,
			Status:         row.Status,
		})
	}
	return installments, nil
}

type allocationRow struct {
	AccountID int64  `yaml:"account_id"`
	Amount    string `yaml:"amount"`
	Direction string `yaml:"direction"`
}

type ledgerEntryRow struct {
	ID              int64           `yaml:"id"`
	AccountHolderID int64           `yaml:"account_holder_id"`
	Date            time.Time       `yaml:"date"`
	Description     string          `yaml:"description"`
	Amount          string          `yaml:"amount"`
	Direction       string          `yaml:"direction"`
	Modality        string          `yaml:"modality"`
	Installment     bool            `yaml:"installment"`
	ImportIdentity  string          `yaml:"import_identity"`
	Allocations     []allocationRow `yaml:"allocations"`
}

// LoadLedgerEntries loads ledger entry fixtures for report runs.
func (s *Store) LoadLedgerEntries() ([]models.LedgerEntry, error) {
	rows, err := loadYAML[ledgerEntryRow](s, FileLedger)
	if err != nil {
		return nil, err
	}
	entries := make([]models.LedgerEntry, 0, len(rows))
	for _, row := range rows {
		amount, ok := models.ParseAmount(row.Amount)
		if !ok {
			return nil, fmt.Errorf("ledger entry %d: bad amount %q", row.ID, row.Amount)
		}
		entry := models.LedgerEntry{
			ID:              row.ID,
			AccountHolderID: row.AccountHolderID,
			Date:            row.Date,
			Description:     row.Description,
			Amount:          amount,
			Direction:       row.Direction,
			Modality:        row.Modality,
			Installment:     row.Installment,
			ImportIdentity:  row.ImportIdentity,
		}
		for _, alloc := range row.Allocations {
			allocAmount, ok := models.ParseAmount(alloc.Amount)
			if !ok {
				return nil, fmt.Errorf("ledger entry %d: bad allocation amount %q", row.ID, alloc.Amount)
			}
			entry.Allocations = append(entry.Allocations, models.AllocationSplit{
				AccountID: alloc.AccountID,
				Amount:    allocAmount,
				Direction: alloc.Direction,
			})
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

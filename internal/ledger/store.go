// Package ledger defines the boundary to the external ledger store and the
// sequential import of parsed statement candidates.
package ledger

import "github.com/agrolivro/agrolivro/internal/models"

// Store is the external ledger store boundary. The core never issues raw
// queries; concurrency safety of the underlying store is the store's
// responsibility, not the core's.
type Store interface {
	// FindByImportIdentity returns the entry previously imported under the
	// given identity, or nil when none exists.
	FindByImportIdentity(identity string) (*models.LedgerEntry, error)

	// Create persists a candidate and returns the permanent record id.
	Create(candidate models.CandidateLedgerEntry) (int64, error)

	// ListByYearAndAccounts returns the entries of a calendar year for the
	// given account-holder ids, with their allocation splits attached.
	ListByYearAndAccounts(year int, accountIDs []int64) ([]models.LedgerEntry, error)
}

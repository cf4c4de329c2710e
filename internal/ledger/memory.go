package ledger

import (
	"sort"

	"github.com/agrolivro/agrolivro/internal/models"
)

// MemoryStore is an in-memory Store implementation backing tests and
// dry-run CLI flows.
type MemoryStore struct {
	nextID     int64
	entries    map[int64]models.LedgerEntry
	byIdentity map[string]int64

	// Error hooks for exercising failure paths in tests.
	FindError   error
	CreateError error
	ListError   error
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		nextID:     1,
		entries:    make(map[int64]models.LedgerEntry),
		byIdentity: make(map[string]int64),
	}
}

// Seed inserts a pre-existing entry, assigning it an id when unset.
func (s *MemoryStore) Seed(entry models.LedgerEntry) int64 {
	if entry.ID == 0 {
		entry.ID = s.nextID
		s.nextID++
	} else if entry.ID >= s.nextID {
		s.nextID = entry.ID + 1
	}
	s.entries[entry.ID] = entry
	if entry.ImportIdentity != "" {
		s.byIdentity[entry.ImportIdentity] = entry.ID
	}
	return entry.ID
}

// FindByImportIdentity returns the entry imported under identity, or nil.
func (s *MemoryStore) FindByImportIdentity(identity string) (*models.LedgerEntry, error) {
	if s.FindError != nil {
		return nil, s.FindError
	}
	id, ok := s.byIdentity[identity]
	if !ok {
		return nil, nil
	}
	entry := s.entries[id]
	return &entry, nil
}

// Create persists a candidate as a standard, unallocated ledger entry and
// returns its record id.
func (s *MemoryStore) Create(candidate models.CandidateLedgerEntry) (int64, error) {
	if s.CreateError != nil {
		return 0, s.CreateError
	}
	entry := models.LedgerEntry{
		ID:             s.nextID,
		Date:           candidate.Date,
		Description:    candidate.Description,
		Amount:         candidate.Amount,
		Direction:      candidate.Direction,
		Modality:       models.ModalityStandard,
		ImportIdentity: candidate.ImportIdentity,
	}
	s.nextID++
	s.entries[entry.ID] = entry
	s.byIdentity[entry.ImportIdentity] = entry.ID
	return entry.ID, nil
}

// ListByYearAndAccounts returns the stored entries of a year for the given
// account-holder ids, ordered by date. An empty id list matches every
// account.
func (s *MemoryStore) ListByYearAndAccounts(year int, accountIDs []int64) ([]models.LedgerEntry, error) {
	if s.ListError != nil {
		return nil, s.ListError
	}
	wanted := make(map[int64]bool, len(accountIDs))
	for _, id := range accountIDs {
		wanted[id] = true
	}

	var out []models.LedgerEntry
	for _, entry := range s.entries {
		if entry.Date.Year() != year {
			continue
		}
		if len(wanted) > 0 && !wanted[entry.AccountHolderID] {
			continue
		}
		out = append(out, entry)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

package ledger

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/agrolivro/agrolivro/internal/logging"
	"github.com/agrolivro/agrolivro/internal/models"
)

// ImportOutcome summarizes one import batch.
type ImportOutcome struct {
	BatchID    string
	Created    int
	Skipped    int
	CreatedIDs []int64
}

// Importer persists parsed candidates into the ledger store.
type Importer struct {
	store  Store
	logger logging.Logger
}

// NewImporter creates an Importer over the given store.
func NewImporter(store Store, logger logging.Logger) *Importer {
	return &Importer{store: store, logger: logger}
}

// Import persists candidates sequentially, one at a time, checking the
// import identity before each create. The serialization is deliberate: it
// gives at-most-once semantics through the identity lookup without a
// transactional multi-row check. Concurrent imports of the same file are
// not defended against.
func (imp *Importer) Import(candidates []models.CandidateLedgerEntry) (*ImportOutcome, error) {
	outcome := &ImportOutcome{BatchID: uuid.New().String()}
	logger := imp.logger.WithField(logging.FieldBatch, outcome.BatchID)
	logger.Info("Starting statement import", logging.Field{Key: logging.FieldCount, Value: len(candidates)})

	for _, candidate := range candidates {
		existing, err := imp.store.FindByImportIdentity(candidate.ImportIdentity)
		if err != nil {
			return outcome, fmt.Errorf("identity lookup for %q: %w", candidate.ImportIdentity, err)
		}
		if existing != nil {
			outcome.Skipped++
			logger.Debug("Skipping already-imported movement",
				logging.Field{Key: logging.FieldIdentity, Value: candidate.ImportIdentity},
				logging.Field{Key: logging.FieldEntry, Value: existing.ID})
			continue
		}

		id, err := imp.store.Create(candidate)
		if err != nil {
			return outcome, fmt.Errorf("creating entry %q: %w", candidate.ImportIdentity, err)
		}
		outcome.Created++
		outcome.CreatedIDs = append(outcome.CreatedIDs, id)
	}

	logger.Info("Statement import finished",
		logging.Field{Key: "created", Value: outcome.Created},
		logging.Field{Key: "skipped", Value: outcome.Skipped})
	return outcome, nil
}

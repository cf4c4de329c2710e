package ofxparser

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/agrolivro/agrolivro/internal/dateutils"
	"github.com/agrolivro/agrolivro/internal/models"
)

// BuildImportIdentity derives the long-lived import identity used for
// at-most-once import semantics: FITID, ISO date and two-decimal amount,
// pipe-separated, with the secondary reference (REFNUM, else CHECKNUM)
// appended when present. The raw FITID alone is not unique per real-world
// event, hence the composite.
func BuildImportIdentity(fitID string, date time.Time, amount decimal.Decimal, refNum, checkNum string) string {
	identity := fitID + "|" + dateutils.ToISODate(date) + "|" + amount.StringFixed(2)
	if refNum != "" {
		return identity + "|" + refNum
	}
	if checkNum != "" {
		return identity + "|" + checkNum
	}
	return identity
}

// identityFor builds the import identity of a deduplicated transaction.
func identityFor(tx models.TempTransaction) string {
	return BuildImportIdentity(tx.FitID, tx.Date, tx.Amount, tx.RefNum, tx.CheckNum)
}

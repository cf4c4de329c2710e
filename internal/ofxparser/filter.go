package ofxparser

import (
	"github.com/sirupsen/logrus"

	"github.com/agrolivro/agrolivro/internal/dateutils"
	"github.com/agrolivro/agrolivro/internal/models"
	"github.com/agrolivro/agrolivro/internal/textutils"
)

// Narrative lines some banks emit inside STMTTRN blocks that are not real
// movements. Matched case- and accent-insensitively.
const (
	phraseBlockedDeposit = "deposito bloqueado"
	phraseDayMovement    = "movimento do dia"
)

// consolidatedPrefix marks Banco do Brasil postings that are fragments of
// one consolidated real-world transaction.
const consolidatedPrefix = "bb cons"

// Drop reasons, logged per discarded block.
const (
	dropNoFitID         = "missing bank identifier"
	dropBlockedDeposit  = "blocked deposit narrative"
	dropDayMovement     = "day movement summary"
	dropBadDate         = "missing or unparseable date"
	dropBadAmount       = "missing or unparseable amount"
)

// FilterBlocks discards blocks that are not real movements and types the
// survivors. Every drop is logged with its reason; nothing here errors.
func FilterBlocks(blocks []models.RawTransactionBlock, log *logrus.Logger) []models.TempTransaction {
	var kept []models.TempTransaction

	for _, block := range blocks {
		if reason := dropReason(block); reason != "" {
			log.WithFields(logrus.Fields{
				"fitid":  block.FitID,
				"memo":   block.Memo,
				"reason": reason,
			}).Debug("Discarding statement block")
			continue
		}

		date, err := dateutils.ParseOFXDate(block.PostedDate)
		if err != nil {
			log.WithError(err).WithField("fitid", block.FitID).
				Debug("Discarding statement block: " + dropBadDate)
			continue
		}
		amount, ok := models.ParseAmount(block.Amount)
		if !ok {
			log.WithFields(logrus.Fields{
				"fitid":  block.FitID,
				"amount": block.Amount,
			}).Debug("Discarding statement block: " + dropBadAmount)
			continue
		}

		description := block.Memo
		if description == "" {
			description = block.Name
		}
		if description == "" {
			description = models.DescriptionFallback
		}

		kept = append(kept, models.TempTransaction{
			Date:         date,
			Description:  description,
			Amount:       amount,
			Direction:    models.DirectionFromAmount(amount),
			FitID:        block.FitID,
			RefNum:       block.RefNum,
			CheckNum:     block.CheckNum,
			TrnType:      block.TrnType,
			Consolidated: textutils.HasPrefixNormalized(description, consolidatedPrefix),
		})
	}
	return kept
}

// dropReason returns the reason a block must be discarded, or "" to keep
// it. Date and amount parsing are checked by the caller so the parse error
// can be logged alongside the reason.
func dropReason(block models.RawTransactionBlock) string {
	if block.FitID == "" {
		return dropNoFitID
	}
	if textutils.ContainsNormalized(block.Memo, phraseBlockedDeposit) ||
		textutils.ContainsNormalized(block.Name, phraseBlockedDeposit) {
		return dropBlockedDeposit
	}
	if textutils.ContainsNormalized(block.Memo, phraseDayMovement) ||
		textutils.ContainsNormalized(block.Name, phraseDayMovement) {
		return dropDayMovement
	}
	if block.PostedDate == "" {
		return dropBadDate
	}
	if block.Amount == "" {
		return dropBadAmount
	}
	return ""
}

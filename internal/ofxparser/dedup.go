package ofxparser

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/agrolivro/agrolivro/internal/dateutils"
	"github.com/agrolivro/agrolivro/internal/models"
)

// bankCodeBB is the normalized BANKID of Banco do Brasil, the bank that
// splits single real-world transactions into several postings sharing a
// REFNUM.
const bankCodeBB = "1"

// ConsolidateBankSplits is the bank-specific consolidation pass. It only
// acts on Banco do Brasil statements: postings flagged with the
// consolidated prefix and sharing a REFNUM are replaced by one synthetic
// transaction summing the group. Order of first appearance is preserved;
// groups of one and unflagged postings pass through unchanged.
func ConsolidateBankSplits(bankCode string, txs []models.TempTransaction, log *logrus.Logger) []models.TempTransaction {
	if bankCode != bankCodeBB {
		return txs
	}

	groups := make(map[string][]models.TempTransaction)
	for _, tx := range txs {
		if tx.Consolidated && tx.RefNum != "" {
			groups[tx.RefNum] = append(groups[tx.RefNum], tx)
		}
	}

	emitted := make(map[string]bool)
	out := make([]models.TempTransaction, 0, len(txs))
	for _, tx := range txs {
		if !tx.Consolidated || tx.RefNum == "" || len(groups[tx.RefNum]) < 2 {
			out = append(out, tx)
			continue
		}
		if emitted[tx.RefNum] {
			continue
		}
		emitted[tx.RefNum] = true
		group := groups[tx.RefNum]

		merged := group[0]
		merged.Amount = sumAmounts(group)
		merged.Direction = models.DirectionFromAmount(merged.Amount)
		merged.Description = fmt.Sprintf("Agrupado %d lancamentos ref %s", len(group), tx.RefNum)

		log.WithFields(logrus.Fields{
			"refnum": tx.RefNum,
			"count":  len(group),
			"amount": merged.Amount.StringFixed(2),
		}).Info("Consolidated split postings")
		out = append(out, merged)
	}
	return out
}

// CollapseSameDay is the generic dedup pass. Statements are observed to
// emit the same logical transfer several times under one FITID on one day;
// the composite key includes direction, so a credit and a debit can never
// merge. Members that disagree on REFNUM or CHECKNUM produce a synthetic
// transaction with that field cleared: ambiguous provenance is not
// silently picked.
func CollapseSameDay(txs []models.TempTransaction, log *logrus.Logger) []models.TempTransaction {
	key := func(tx models.TempTransaction) string {
		return tx.FitID + "|" + dateutils.DayKey(tx.Date) + "|" + tx.Direction
	}

	groups := make(map[string][]models.TempTransaction)
	for _, tx := range txs {
		groups[key(tx)] = append(groups[key(tx)], tx)
	}

	emitted := make(map[string]bool)
	out := make([]models.TempTransaction, 0, len(txs))
	for _, tx := range txs {
		k := key(tx)
		group := groups[k]
		if len(group) < 2 {
			out = append(out, tx)
			continue
		}
		if emitted[k] {
			continue
		}
		emitted[k] = true

		merged := group[0]
		merged.Amount = sumAmounts(group)
		merged.Direction = models.DirectionFromAmount(merged.Amount)
		merged.Description = fmt.Sprintf("Agrupado %d lancamentos FITID %s", len(group), tx.FitID)
		for _, member := range group[1:] {
			if member.RefNum != merged.RefNum {
				merged.RefNum = ""
			}
			if member.CheckNum != merged.CheckNum {
				merged.CheckNum = ""
			}
		}

		log.WithFields(logrus.Fields{
			"fitid":  tx.FitID,
			"count":  len(group),
			"amount": merged.Amount.StringFixed(2),
		}).Info("Collapsed same-day duplicate postings")
		out = append(out, merged)
	}
	return out
}

// WarnCrossDateDuplicates logs FITIDs still repeated across different
// days or directions after both passes. These are never merged: doing so
// could silently combine unrelated transactions.
func WarnCrossDateDuplicates(txs []models.TempTransaction, log *logrus.Logger) {
	seen := make(map[string]string)
	warned := make(map[string]bool)
	for _, tx := range txs {
		k := dateutils.DayKey(tx.Date) + "|" + tx.Direction
		prev, ok := seen[tx.FitID]
		if ok && prev != k && !warned[tx.FitID] {
			warned[tx.FitID] = true
			log.WithField("fitid", tx.FitID).
				Warn("FITID repeated across dates or directions in the same file")
		}
		seen[tx.FitID] = k
	}
}

func sumAmounts(group []models.TempTransaction) decimal.Decimal {
	total := decimal.Zero
	for _, tx := range group {
		total = total.Add(tx.Amount)
	}
	return total
}

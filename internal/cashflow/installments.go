package cashflow

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/agrolivro/agrolivro/internal/dateutils"
	"github.com/agrolivro/agrolivro/internal/models"
)

// foldInstallments books each loan installment into the financing bucket
// of the month of its effective date (settlement date when present, else
// due date). Amounts for the same creditor within a month accumulate, as
// outflows. Installments outside the report year, on unknown contracts, or
// on contracts with no counterparty are skipped.
func foldInstallments(buckets []models.MonthlyBucket, installments []models.LoanInstallment, lookup *Lookup, year int, log *logrus.Logger) {
	for _, installment := range installments {
		effective := installment.EffectiveDate()
		if !dateutils.SameYear(effective, year) {
			continue
		}

		contract, ok := lookup.Contract(installment.ContractID)
		if !ok {
			log.WithFields(logrus.Fields{
				"installment": installment.ID,
				"contract":    installment.ContractID,
			}).Warn("Installment references unknown contract, skipping")
			continue
		}

		key, name, ok := creditorFor(contract, lookup)
		if !ok {
			log.WithField("contract", contract.ID).
				Debug("Contract has no counterparty, skipping installment")
			continue
		}

		bucket := &buckets[dateutils.MonthIndex(effective)]
		slot := bucket.Financing[key]
		slot.CreditorName = name
		slot.Amount = slot.Amount.Sub(installment.Amount.Abs())
		bucket.Financing[key] = slot
	}
}

// creditorFor derives the creditor key and display name of a contract's
// counterparty: "p_<id>" for people, "b_<id>" for banks, with a generic
// label when the lookup cannot resolve the name.
func creditorFor(contract models.LoanContract, lookup *Lookup) (key, name string, ok bool) {
	switch {
	case contract.PersonID.Set:
		id := contract.PersonID.Value
		name = fmt.Sprintf("Pessoa #%d", id)
		if person, found := lookup.Person(id); found {
			name = person.Name
		}
		return fmt.Sprintf("p_%d", id), name, true

	case contract.BankID.Set:
		id := contract.BankID.Value
		name = fmt.Sprintf("Banco #%d", id)
		if bank, found := lookup.Bank(id); found {
			name = bank.Name
		}
		return fmt.Sprintf("b_%d", id), name, true
	}
	return "", "", false
}

package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// LoanContract is a financing contract. The counterparty is either a
// person or a bank; contracts with neither are skipped by the report.
type LoanContract struct {
	ID       int64      `yaml:"id"`
	PersonID OptionalID `yaml:"person_id"`
	BankID   OptionalID `yaml:"bank_id"`
}

// LoanInstallment is one installment of a financing contract.
type LoanInstallment struct {
	ID             int64           `yaml:"id"`
	ContractID     int64           `yaml:"contract_id"`
	DueDate        time.Time       `yaml:"due_date"`
	SettlementDate *time.Time      `yaml:"settlement_date"`
	Amount         decimal.Decimal `yaml:"amount"`
	Status         string          `yaml:"status"`
}

// EffectiveDate is the date the installment is booked under: the
// settlement date when present, otherwise the due date.
func (i *LoanInstallment) EffectiveDate() time.Time {
	if i.SettlementDate != nil {
		return *i.SettlementDate
	}
	return i.DueDate
}

// Person is a counterparty person, as resolved for creditor labels.
type Person struct {
	ID   int64  `yaml:"id"`
	Name string `yaml:"name"`
}

// Bank is a financial institution, as resolved for creditor labels.
type Bank struct {
	ID   int64  `yaml:"id"`
	Code string `yaml:"code"`
	Name string `yaml:"name"`
}

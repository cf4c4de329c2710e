// Package models provides the data structures used throughout the application.
package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// RawTransactionBlock is one <STMTTRN> fragment as extracted from the
// statement text. All fields are raw strings; absence is the empty string.
// Blocks live only between extraction and filtering and are never persisted.
type RawTransactionBlock struct {
	PostedDate string // DTPOSTED, 8-digit YYYYMMDD prefix
	Memo       string // MEMO
	Name       string // NAME
	Amount     string // TRNAMT, signed decimal text
	FitID      string // FITID
	RefNum     string // REFNUM
	CheckNum   string // CHECKNUM
	TrnType    string // TRNTYPE
}

// TempTransaction is a typed transaction that survived the noise filter.
// It is the working unit of the grouping and dedup passes.
type TempTransaction struct {
	Date         time.Time // normalized to midnight UTC
	Description  string
	Amount       decimal.Decimal
	Direction    string // DirectionCredit or DirectionDebit
	FitID        string
	RefNum       string
	CheckNum     string
	TrnType      string
	Consolidated bool // description carries the bank's consolidated-posting prefix
}

// CandidateLedgerEntry is the parser's output unit, handed to the ledger
// store which assigns the permanent record id on import.
type CandidateLedgerEntry struct {
	Date           time.Time       `csv:"-"`
	DateISO        string          `csv:"data"`
	Description    string          `csv:"descricao"`
	Amount         decimal.Decimal `csv:"valor"`
	Direction      string          `csv:"tipo"`
	ImportIdentity string          `csv:"identidade"`
	FitID          string          `csv:"fitid"`
}

// StatementTotals are derived values over a parsed statement. They are
// recomputed from the movement list on demand, never cached.
type StatementTotals struct {
	Credits         decimal.Decimal `json:"creditos"`
	Debits          decimal.Decimal `json:"debitos"`
	Net             decimal.Decimal `json:"liquido"`
	ClosingEstimate decimal.Decimal `json:"saldoEstimado"`
	PeriodStart     time.Time       `json:"periodoInicio"`
	PeriodEnd       time.Time       `json:"periodoFim"`
}

// StatementResult is the parser output contract: deduplicated candidate
// movements sorted ascending by date, plus derived totals.
type StatementResult struct {
	BankCode  string                 `json:"banco"`
	Movements []CandidateLedgerEntry `json:"movimentos"`
	Totals    StatementTotals        `json:"totais"`
}

package ofxparser

import (
	"os"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/agrolivro/agrolivro/internal/dateutils"
	"github.com/agrolivro/agrolivro/internal/models"
	"github.com/agrolivro/agrolivro/internal/parsererror"
)

var log = logrus.New()

// SetLogger sets the package logger used by the parsing pipeline.
func SetLogger(logger *logrus.Logger) {
	if logger == nil {
		return
	}
	log = logger
}

// Parser turns raw OFX statement text into a StatementResult. Parsing is
// single-threaded and failure-tolerant: malformed tags are repaired and
// bad blocks dropped with a logged reason. The only hard failure is an
// unreadable input file.
type Parser struct {
	logger *logrus.Logger
}

// New creates a Parser. A nil logger falls back to the package logger.
func New(logger *logrus.Logger) *Parser {
	if logger == nil {
		logger = log
	}
	return &Parser{logger: logger}
}

// ParseFile reads and parses an OFX statement file.
func (p *Parser) ParseFile(filePath string) (*models.StatementResult, error) {
	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return nil, parsererror.FileNotFoundError(filePath)
	}
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, parsererror.FileNotFoundError(filePath)
	}
	p.logger.WithField("file_path", filePath).Info("Parsing OFX statement")
	return p.Parse(string(data)), nil
}

// ValidateFormat checks whether a file looks like an OFX statement.
func (p *Parser) ValidateFormat(filePath string) (bool, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return false, parsererror.FileNotFoundError(filePath)
	}
	head := strings.ToUpper(string(data))
	return strings.Contains(head, "<OFX") || strings.Contains(head, "OFXHEADER") ||
		strings.Contains(head, "<STMTTRN"), nil
}

// Parse runs the full pipeline over one in-memory statement buffer:
// normalize, extract, filter, consolidate, collapse, build identities,
// sort and total. It never returns an error; degenerate input yields an
// empty result.
func (p *Parser) Parse(raw string) *models.StatementResult {
	normalized := NormalizeTags(raw)
	bankCode := ExtractBankCode(normalized)
	blocks := ExtractBlocks(normalized)

	txs := FilterBlocks(blocks, p.logger)
	txs = ConsolidateBankSplits(bankCode, txs, p.logger)
	txs = CollapseSameDay(txs, p.logger)
	WarnCrossDateDuplicates(txs, p.logger)

	movements := make([]models.CandidateLedgerEntry, 0, len(txs))
	for _, tx := range txs {
		movements = append(movements, models.CandidateLedgerEntry{
			Date:           tx.Date,
			DateISO:        dateutils.ToISODate(tx.Date),
			Description:    tx.Description,
			Amount:         tx.Amount,
			Direction:      tx.Direction,
			ImportIdentity: identityFor(tx),
			FitID:          tx.FitID,
		})
	}

	sort.SliceStable(movements, func(i, j int) bool {
		return movements[i].Date.Before(movements[j].Date)
	})

	result := &models.StatementResult{
		BankCode:  bankCode,
		Movements: movements,
		Totals:    ComputeTotals(movements),
	}
	p.logger.WithFields(logrus.Fields{
		"bank_code": bankCode,
		"blocks":    len(blocks),
		"count":     len(movements),
	}).Info("Parsed OFX statement")
	return result
}

// ComputeTotals derives credits, debits, net and the statement period from
// a movement list. Totals are derived values: recompute after any
// filtering, never cache.
func ComputeTotals(movements []models.CandidateLedgerEntry) models.StatementTotals {
	totals := models.StatementTotals{
		Credits: decimal.Zero,
		Debits:  decimal.Zero,
		Net:     decimal.Zero,
	}
	for _, m := range movements {
		if m.Direction == models.DirectionCredit {
			totals.Credits = totals.Credits.Add(m.Amount)
		} else {
			totals.Debits = totals.Debits.Add(m.Amount.Abs())
		}
	}
	totals.Net = totals.Credits.Sub(totals.Debits)
	totals.ClosingEstimate = totals.Net

	if len(movements) > 0 {
		totals.PeriodStart = movements[0].Date
		totals.PeriodEnd = movements[len(movements)-1].Date
	}
	return totals
}

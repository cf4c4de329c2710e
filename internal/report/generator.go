// Package report renders the monthly cash-flow buckets for external
// consumers: full JSON for the front-end renderer and a flat CSV summary.
package report

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/gocarina/gocsv"
	"github.com/sirupsen/logrus"

	"github.com/agrolivro/agrolivro/internal/models"
)

// Generator renders cash-flow reports in the supported formats.
type Generator struct {
	logger *logrus.Logger
}

// NewGenerator creates a Generator.
func NewGenerator(logger *logrus.Logger) *Generator {
	if logger == nil {
		logger = logrus.New()
	}
	return &Generator{logger: logger}
}

// Generate renders the bucket array in the given format ("json" or "csv").
func (g *Generator) Generate(buckets []models.MonthlyBucket, format string) ([]byte, error) {
	switch format {
	case "json":
		return g.generateJSON(buckets)
	case "csv":
		return g.generateCSV(buckets)
	default:
		return nil, fmt.Errorf("unsupported report format: %s", format)
	}
}

func (g *Generator) generateJSON(buckets []models.MonthlyBucket) ([]byte, error) {
	out, err := json.MarshalIndent(buckets, "", "  ")
	if err != nil {
		g.logger.Errorf("Failed to marshal JSON report: %v", err)
		return nil, fmt.Errorf("failed to marshal JSON report: %w", err)
	}
	return out, nil
}

// MonthSummaryRow is one flat CSV line of the report: family totals plus
// the balance chain.
type MonthSummaryRow struct {
	Month       int    `csv:"mes"`
	Revenue     string `csv:"receitas"`
	Expense     string `csv:"despesas"`
	Investments string `csv:"investimentos"`
	Financing   string `csv:"financiamentos"`
	Pending     string `csv:"pendentes"`
	Opening     string `csv:"saldoInicial"`
	Closing     string `csv:"saldoFinal"`
	Growth      string `csv:"crescimento"`
}

func (g *Generator) generateCSV(buckets []models.MonthlyBucket) ([]byte, error) {
	rows := make([]MonthSummaryRow, 0, len(buckets))
	for _, b := range buckets {
		rows = append(rows, MonthSummaryRow{
			Month:       b.Month + 1,
			Revenue:     b.Revenue.Total().StringFixed(2),
			Expense:     b.Expense.Total().StringFixed(2),
			Investments: b.SumInvestments().StringFixed(2),
			Financing:   b.SumFinancing().StringFixed(2),
			Pending:     b.SumPending().StringFixed(2),
			Opening:     b.OpeningBalance.StringFixed(2),
			Closing:     b.ClosingBalance.StringFixed(2),
			Growth:      b.Growth.String(),
		})
	}

	var buf bytes.Buffer
	if err := gocsv.Marshal(&rows, &buf); err != nil {
		g.logger.Errorf("Failed to marshal CSV report: %v", err)
		return nil, fmt.Errorf("failed to marshal CSV report: %w", err)
	}
	return buf.Bytes(), nil
}

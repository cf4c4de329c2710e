// Package common provides shared CSV output functionality.
package common

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
	"github.com/sirupsen/logrus"

	"github.com/agrolivro/agrolivro/internal/models"
)

var log = logrus.New()

// Delimiter is the CSV output delimiter, configurable at startup.
var Delimiter rune = ','

// SetDelimiter sets the delimiter for CSV output.
func SetDelimiter(delim rune) {
	Delimiter = delim
	gocsv.TagSeparator = fmt.Sprintf("%c", delim)
}

// SetLogger sets the package logger.
func SetLogger(logger *logrus.Logger) {
	if logger == nil {
		return
	}
	log = logger
}

// WriteCandidatesToCSV writes parsed statement candidates to a CSV file so
// the operator can inspect an import before committing it to the ledger.
func WriteCandidatesToCSV(candidates []models.CandidateLedgerEntry, csvFile string) error {
	if candidates == nil {
		return fmt.Errorf("cannot write nil candidates to CSV")
	}

	log.WithFields(logrus.Fields{
		"file":  csvFile,
		"count": len(candidates),
	}).Info("Writing candidates to CSV file")

	if dir := filepath.Dir(csvFile); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}

	file, err := os.Create(csvFile)
	if err != nil {
		log.WithError(err).Error("Failed to create CSV file")
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	if err := gocsv.MarshalFile(&candidates, file); err != nil {
		log.WithError(err).Error("Failed to write CSV file")
		return fmt.Errorf("error writing CSV file: %w", err)
	}
	return nil
}

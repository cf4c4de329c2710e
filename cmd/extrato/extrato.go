// Package extrato implements the OFX statement parsing command.
package extrato

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/agrolivro/agrolivro/cmd/root"
	"github.com/agrolivro/agrolivro/internal/common"
	"github.com/agrolivro/agrolivro/internal/ledger"
	"github.com/agrolivro/agrolivro/internal/logging"
	"github.com/agrolivro/agrolivro/internal/ofxparser"
)

var (
	inputFile  string
	outputFile string
	validate   bool
	simulate   bool
)

// Cmd is the extrato command. It parses an OFX bank export and writes the
// deduplicated candidate movements to CSV for inspection before import.
var Cmd = &cobra.Command{
	Use:   "extrato",
	Short: "Parse an OFX bank statement into candidate ledger movements",
	RunE:  run,
}

func init() {
	Cmd.Flags().StringVarP(&inputFile, "input", "i", "", "input OFX file (required)")
	Cmd.Flags().StringVarP(&outputFile, "output", "o", "", "output CSV file")
	Cmd.Flags().BoolVar(&validate, "validate", false, "only check whether the file looks like an OFX export")
	Cmd.Flags().BoolVar(&simulate, "simulate-import", false, "run the import against an in-memory store and report what would be created")
	_ = Cmd.MarkFlagRequired("input")
}

func run(cmd *cobra.Command, args []string) error {
	parser := ofxparser.New(root.Log)

	if validate {
		ok, err := parser.ValidateFormat(inputFile)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%s does not look like an OFX export", inputFile)
		}
		root.Log.WithField("file_path", inputFile).Info("File looks like an OFX export")
		return nil
	}

	result, err := parser.ParseFile(inputFile)
	if err != nil {
		return err
	}

	root.Log.WithFields(logrus.Fields{
		"bank_code": result.BankCode,
		"count":     len(result.Movements),
		"credits":   result.Totals.Credits.StringFixed(2),
		"debits":    result.Totals.Debits.StringFixed(2),
		"net":       result.Totals.Net.StringFixed(2),
	}).Info("Statement parsed")

	if outputFile != "" {
		if err := common.WriteCandidatesToCSV(result.Movements, outputFile); err != nil {
			return err
		}
		root.Log.WithField("output_file", outputFile).Info("Candidates written")
	}

	if simulate {
		importer := ledger.NewImporter(ledger.NewMemoryStore(), logging.NewLogrusAdapterFromLogger(root.Log))
		outcome, err := importer.Import(result.Movements)
		if err != nil {
			return err
		}
		root.Log.WithFields(logrus.Fields{
			"batch_id": outcome.BatchID,
			"created":  outcome.Created,
			"skipped":  outcome.Skipped,
		}).Info("Simulated import")
	}
	return nil
}

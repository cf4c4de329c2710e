// Package fluxo implements the cash-flow report command.
package fluxo

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/agrolivro/agrolivro/cmd/root"
	"github.com/agrolivro/agrolivro/internal/cashflow"
	"github.com/agrolivro/agrolivro/internal/report"
	"github.com/agrolivro/agrolivro/internal/store"
)

var (
	year       int
	dataDir    string
	format     string
	outputFile string
)

// Cmd is the fluxo command. It builds the twelve-month cash-flow report
// from the reference data directory.
var Cmd = &cobra.Command{
	Use:   "fluxo",
	Short: "Build the twelve-month cash-flow report",
	RunE:  run,
}

func init() {
	Cmd.Flags().IntVar(&year, "year", time.Now().Year(), "report year")
	Cmd.Flags().StringVar(&dataDir, "data", "", "reference data directory (defaults to configuration)")
	Cmd.Flags().StringVar(&format, "format", "", "output format: json or csv (defaults to configuration)")
	Cmd.Flags().StringVarP(&outputFile, "output", "o", "", "output file (defaults to stdout)")
}

func run(cmd *cobra.Command, args []string) error {
	dir := dataDir
	if dir == "" {
		dir = root.Cfg.Data.Directory
	}
	outFormat := format
	if outFormat == "" {
		outFormat = root.Cfg.Report.Format
	}

	dataStore := store.NewStore(dir)

	entries, err := dataStore.LoadLedgerEntries()
	if err != nil {
		return fmt.Errorf("loading ledger entries: %w", err)
	}
	installments, err := dataStore.LoadInstallments()
	if err != nil {
		return fmt.Errorf("loading installments: %w", err)
	}

	lookup := cashflow.NewLookup(dataStore)
	aggregator := cashflow.NewAggregator(lookup, root.Log)
	buckets, err := aggregator.BuildReport(year, entries, installments)
	if err != nil {
		return err
	}

	out, err := report.NewGenerator(root.Log).Generate(buckets, outFormat)
	if err != nil {
		return err
	}

	if outputFile == "" {
		fmt.Println(string(out))
		return nil
	}
	if err := os.WriteFile(outputFile, out, 0o644); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	root.Log.WithField("output_file", outputFile).Info("Report written")
	return nil
}

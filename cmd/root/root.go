// Package root contains the root command for the application.
package root

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/agrolivro/agrolivro/internal/common"
	"github.com/agrolivro/agrolivro/internal/config"
	"github.com/agrolivro/agrolivro/internal/ofxparser"
)

var (
	// Log is the shared logger instance for commands.
	Log = logrus.New()

	// Cfg is the loaded application configuration.
	Cfg *config.Config

	// Cmd is the root command.
	Cmd = &cobra.Command{
		Use:   "agrolivro",
		Short: "Farm bookkeeping: OFX statement import and cash-flow reports.",
		Long: `agrolivro ingests OFX bank exports into deduplicated ledger movements
and folds a year of movements, loan installments and the chart of accounts
into a twelve-month cash-flow report.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to agrolivro!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv()

			cfg, err := config.InitializeConfig()
			if err != nil {
				Log.WithError(err).Fatal("Failed to load configuration")
			}
			Cfg = cfg
			Log = cfg.NewLogger()

			if level, _ := cmd.Flags().GetString("log-level"); level != "" {
				if parsed, err := logrus.ParseLevel(level); err == nil {
					Log.SetLevel(parsed)
				}
			}

			ofxparser.SetLogger(Log)
			common.SetLogger(Log)
			if cfg.CSV.Delimiter != "" {
				common.SetDelimiter([]rune(cfg.CSV.Delimiter)[0])
			}
		},
	}
)

// Init initializes the root command flags.
func Init() {
	Cmd.PersistentFlags().String("log-level", "", "override the configured log level")
}

// Package cmd provides CLI commands for bankctl.
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/shunichi-ikebuchi/banking-system/pkg/config"
	"github.com/shunichi-ikebuchi/banking-system/pkg/ledger"
	"github.com/shunichi-ikebuchi/banking-system/pkg/pathutil"
	"github.com/shunichi-ikebuchi/banking-system/pkg/store"
)

var (
	cfgFile string
	debug   bool
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "bankctl",
	Short: "Manage a file-backed banking ledger",
	Long: `bankctl is a CLI tool for managing a small banking ledger kept in
a flat tabular file (CSV by default, SQLite optionally).

It supports:
- Creating accounts with an opening balance
- Deposits, withdrawals and atomic transfers
- Balance queries and account listing
- Full-snapshot save/load on every command

Example:
  bankctl create "Alice" --opening 100
  bankctl transfer <from-id> <to-id> 50
  bankctl list`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Setup logging
		logLevel := slog.LevelInfo
		if debug {
			logLevel = slog.LevelDebug
		}

		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: logLevel,
		}))
		slog.SetDefault(logger)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .env)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(createCmd)
	rootCmd.AddCommand(depositCmd)
	rootCmd.AddCommand(withdrawCmd)
	rootCmd.AddCommand(transferCmd)
	rootCmd.AddCommand(balanceCmd)
	rootCmd.AddCommand(listCmd)
}

// Helper function to get config file path.
func getConfigFile() string {
	if cfgFile != "" {
		return cfgFile
	}
	return "" // Will use default .env loading
}

func exitOnError(err error, msg string) {
	if err != nil {
		slog.Error(msg, "error", err)
		fmt.Fprintf(os.Stderr, "Error: %s: %v\n", msg, err)
		os.Exit(1)
	}
}

// loadConfig loads and validates the configuration.
func loadConfig() *config.Config {
	cfg, err := config.Load(getConfigFile())
	exitOnError(err, "failed to load configuration")
	exitOnError(cfg.Validate(), "invalid configuration")
	return cfg
}

// openStore opens the persistence backend selected by the configuration.
func openStore(cfg *config.Config) store.Store {
	resolver := pathutil.New(pathutil.Config{
		DataDir:    cfg.DataDir,
		LedgerFile: cfg.LedgerFile,
	})

	switch cfg.Backend {
	case config.BackendSQLite:
		dbPath := resolver.GetDatabasePath()
		slog.Debug("Opening database", "path", dbPath)
		st, err := store.OpenSQLite(dbPath)
		exitOnError(err, "failed to open database")
		return st
	default:
		ledgerPath := resolver.GetLedgerPath()
		slog.Debug("Using ledger file", "path", ledgerPath)
		return store.NewCSVStore(ledgerPath)
	}
}

// loadLedger restores a ledger from the store's current snapshot.
func loadLedger(st store.Store) *ledger.Ledger {
	records, err := st.Load()
	exitOnError(err, "failed to load ledger")

	l := ledger.New()
	exitOnError(l.Restore(records), "failed to restore ledger")
	return l
}

// saveLedger writes the ledger's snapshot back to the store.
func saveLedger(st store.Store, l *ledger.Ledger) {
	exitOnError(st.Save(l.Snapshot()), "failed to save ledger")
}

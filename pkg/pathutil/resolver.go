// Package pathutil provides centralized path management for ledger data files.
package pathutil

import (
	"fmt"
	"os"
	"path/filepath"
)

// PathResolver manages paths for the ledger snapshot file and the SQLite
// database file.
type PathResolver struct {
	dataDir    string
	ledgerFile string
}

// Config represents the configuration for PathResolver.
type Config struct {
	// DataDir is the directory for all ledger data files (e.g., ~/bankdata)
	DataDir string
	// LedgerFile is the path to the CSV ledger file
	LedgerFile string
}

// New creates a new PathResolver with the given configuration.
// If LedgerFile is empty, it defaults to {DataDir}/accounts.csv.
func New(config Config) *PathResolver {
	ledgerFile := config.LedgerFile
	if ledgerFile == "" {
		ledgerFile = filepath.Join(config.DataDir, "accounts.csv")
	}

	return &PathResolver{
		dataDir:    config.DataDir,
		ledgerFile: ledgerFile,
	}
}

// FromEnv creates a PathResolver from environment variables.
// Expected environment variables:
//   - BANK_DATA_DIR: Directory for ledger data files (required)
//   - BANK_LEDGER_FILE: Ledger file path (optional)
func FromEnv() (*PathResolver, error) {
	dataDir := os.Getenv("BANK_DATA_DIR")
	if dataDir == "" {
		return nil, fmt.Errorf("BANK_DATA_DIR environment variable is required")
	}

	return New(Config{
		DataDir:    dataDir,
		LedgerFile: os.Getenv("BANK_LEDGER_FILE"),
	}), nil
}

// GetDataDir returns the ledger data directory.
func (p *PathResolver) GetDataDir() string {
	return p.dataDir
}

// GetLedgerPath returns the CSV ledger file path.
func (p *PathResolver) GetLedgerPath() string {
	return p.ledgerFile
}

// GetDatabasePath returns the SQLite database file path.
func (p *PathResolver) GetDatabasePath() string {
	return filepath.Join(p.dataDir, "accounts.db")
}

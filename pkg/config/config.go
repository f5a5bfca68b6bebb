// Package config provides configuration management for the banking system.
// It loads configuration from an optional YAML settings file, environment
// variables and .env files, in increasing order of precedence.
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Backend names for the persistence layer.
const (
	BackendCSV    = "csv"
	BackendSQLite = "sqlite"
)

// Config represents the application configuration.
type Config struct {
	// DataDir is the directory holding ledger data files.
	DataDir string
	// LedgerFile is the path of the ledger snapshot file. Empty means the
	// backend default under DataDir.
	LedgerFile string
	// Backend selects the persistence backend: "csv" or "sqlite".
	Backend string
	// Currency is the display currency code used by the CLI.
	Currency string
	Debug    bool
}

// fileConfig is the YAML settings file layout.
type fileConfig struct {
	DataDir    string `yaml:"data_dir"`
	LedgerFile string `yaml:"ledger_file"`
	Backend    string `yaml:"backend"`
	Currency   string `yaml:"currency"`
}

// Load loads configuration. It automatically loads .env from the current
// directory if available; a custom .env path may be passed. A YAML settings
// file named by BANK_CONFIG_FILE (or bankctl.yaml, if present) is applied
// before environment variables.
func Load(envPath ...string) (*Config, error) {
	// Load .env file
	if len(envPath) > 0 && envPath[0] != "" {
		if err := godotenv.Load(envPath[0]); err != nil {
			return nil, fmt.Errorf("failed to load .env file: %w", err)
		}
	} else {
		// Try to load .env from current directory (ignore error if not found)
		_ = godotenv.Load()
	}

	config := &Config{
		DataDir:  "./bankdata",
		Backend:  BackendCSV,
		Currency: "USD",
	}

	if err := applyFile(config); err != nil {
		return nil, err
	}
	applyEnv(config)

	return config, nil
}

// applyFile overlays settings from the YAML file, if one is configured or
// present at the default location.
func applyFile(config *Config) error {
	path := os.Getenv("BANK_CONFIG_FILE")
	explicit := path != ""
	if path == "" {
		path = "bankctl.yaml"
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if explicit {
			return fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		return nil
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if fc.DataDir != "" {
		config.DataDir = fc.DataDir
	}
	if fc.LedgerFile != "" {
		config.LedgerFile = fc.LedgerFile
	}
	if fc.Backend != "" {
		config.Backend = fc.Backend
	}
	if fc.Currency != "" {
		config.Currency = fc.Currency
	}
	return nil
}

// applyEnv overlays settings from environment variables.
func applyEnv(config *Config) {
	if v := os.Getenv("BANK_DATA_DIR"); v != "" {
		config.DataDir = v
	}
	if v := os.Getenv("BANK_LEDGER_FILE"); v != "" {
		config.LedgerFile = v
	}
	if v := os.Getenv("BANK_BACKEND"); v != "" {
		config.Backend = v
	}
	if v := os.Getenv("BANK_CURRENCY"); v != "" {
		config.Currency = v
	}
	config.Debug = config.Debug || os.Getenv("DEBUG") == "true"
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	switch c.Backend {
	case BackendCSV, BackendSQLite:
	default:
		return fmt.Errorf("unknown backend %q (expected %q or %q)",
			c.Backend, BackendCSV, BackendSQLite)
	}
	if c.DataDir == "" && c.LedgerFile == "" {
		return fmt.Errorf("data_dir or ledger_file must be set")
	}
	return nil
}

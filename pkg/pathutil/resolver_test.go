package pathutil

import (
	"path/filepath"
	"testing"
)

func TestResolverDefaults(t *testing.T) {
	r := New(Config{DataDir: "/data"})

	if got := r.GetLedgerPath(); got != filepath.Join("/data", "accounts.csv") {
		t.Errorf("GetLedgerPath() = %q", got)
	}
	if got := r.GetDatabasePath(); got != filepath.Join("/data", "accounts.db") {
		t.Errorf("GetDatabasePath() = %q", got)
	}
	if got := r.GetDataDir(); got != "/data" {
		t.Errorf("GetDataDir() = %q", got)
	}
}

func TestResolverExplicitLedgerFile(t *testing.T) {
	r := New(Config{DataDir: "/data", LedgerFile: "/elsewhere/ledger.csv"})

	if got := r.GetLedgerPath(); got != "/elsewhere/ledger.csv" {
		t.Errorf("GetLedgerPath() = %q, expected the explicit path", got)
	}
}

func TestFromEnv(t *testing.T) {
	t.Setenv("BANK_DATA_DIR", "/env/data")
	t.Setenv("BANK_LEDGER_FILE", "")

	r, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv() error = %v", err)
	}
	if got := r.GetLedgerPath(); got != filepath.Join("/env/data", "accounts.csv") {
		t.Errorf("GetLedgerPath() = %q", got)
	}
}

func TestFromEnvMissingDataDir(t *testing.T) {
	t.Setenv("BANK_DATA_DIR", "")

	if _, err := FromEnv(); err == nil {
		t.Error("FromEnv() succeeded without BANK_DATA_DIR, expected error")
	}
}

package store

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"
)

// csvHeader is the column layout of the CSV snapshot format.
var csvHeader = []string{"id", "owner_name", "balance"}

// CSVStore persists snapshots as a CSV file with an id,owner_name,balance
// header and one row per account.
type CSVStore struct {
	path string
}

// NewCSVStore creates a CSVStore backed by the file at path. The file is
// not touched until Save or Load is called.
func NewCSVStore(path string) *CSVStore {
	return &CSVStore{path: path}
}

// Save overwrites the backing file with the header plus one row per record.
func (s *CSVStore) Save(records []Record) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	f, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("failed to create ledger file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, r := range records {
		if err := w.Write([]string{r.ID, r.OwnerName, r.Balance.String()}); err != nil {
			return fmt.Errorf("failed to write record %s: %w", r.ID, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush ledger file: %w", err)
	}
	return f.Close()
}

// Load reads all records from the backing file. A missing file yields an
// empty snapshot. Rows with the wrong field count or an unparseable balance
// fail with ErrMalformedRecord; repeated IDs fail with ErrDuplicateID.
func (s *CSVStore) Load() ([]Record, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to open ledger file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // arity is validated per row below

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read ledger file: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	if len(rows[0]) != len(csvHeader) {
		return nil, fmt.Errorf("header has %d fields, expected %d: %w",
			len(rows[0]), len(csvHeader), ErrMalformedRecord)
	}

	records := make([]Record, 0, len(rows)-1)
	seen := make(map[string]bool, len(rows)-1)
	for i, row := range rows[1:] {
		line := i + 2 // 1-based, after the header
		if len(row) != len(csvHeader) {
			return nil, fmt.Errorf("line %d: has %d fields, expected %d: %w",
				line, len(row), len(csvHeader), ErrMalformedRecord)
		}

		balance, err := decimal.NewFromString(row[2])
		if err != nil {
			return nil, fmt.Errorf("line %d: balance %q is not numeric: %w",
				line, row[2], ErrMalformedRecord)
		}
		if seen[row[0]] {
			return nil, fmt.Errorf("line %d: account %s: %w", line, row[0], ErrDuplicateID)
		}
		seen[row[0]] = true

		records = append(records, Record{ID: row[0], OwnerName: row[1], Balance: balance})
	}
	return records, nil
}

// Path returns the backing file path.
func (s *CSVStore) Path() string {
	return s.path
}

// Close is a no-op; the file is opened and closed per operation.
func (s *CSVStore) Close() error {
	return nil
}

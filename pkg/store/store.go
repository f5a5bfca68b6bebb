// Package store persists complete ledger snapshots as flat tabular records.
// It provides a CSV file backend (the canonical format) and a SQLite backend
// behind the same interface.
package store

import (
	"errors"

	"github.com/shopspring/decimal"
)

// Record is one account row in a persisted snapshot.
type Record struct {
	ID        string
	OwnerName string
	Balance   decimal.Decimal
}

// Store reads and writes complete ledger snapshots. Save is a full rewrite;
// Load returns all records in their stored order.
type Store interface {
	// Save overwrites the stored snapshot with records, preserving order.
	Save(records []Record) error

	// Load reads the stored snapshot. A missing backing file yields an
	// empty snapshot, not an error.
	Load() ([]Record, error)

	// Path returns the backing file path.
	Path() string

	// Close releases any resources held by the store.
	Close() error
}

var (
	// ErrMalformedRecord is returned when a stored row has the wrong number
	// of fields or a balance that does not parse as a decimal.
	ErrMalformedRecord = errors.New("malformed record")

	// ErrDuplicateID is returned when two stored rows share an account ID.
	ErrDuplicateID = errors.New("duplicate account id")
)

package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
	"github.com/shopspring/decimal"
)

// schema defines the accounts table. Position preserves creation order so
// loads replay the snapshot deterministically.
const schema = `
CREATE TABLE IF NOT EXISTS accounts (
    id TEXT PRIMARY KEY,
    owner_name TEXT NOT NULL,
    balance TEXT NOT NULL,             -- decimal numeral as text
    position INTEGER NOT NULL UNIQUE   -- creation order within the snapshot
);
`

// SQLiteStore persists snapshots in a SQLite database. It implements the
// same full-rewrite semantics as the CSV backend.
type SQLiteStore struct {
	db   *sql.DB
	path string
}

// OpenSQLite opens (creating if necessary) a SQLite-backed store at dbPath.
func OpenSQLite(dbPath string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	connStr := fmt.Sprintf("file:%s?_foreign_keys=on&_journal_mode=WAL", dbPath)
	db, err := sql.Open("sqlite3", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return &SQLiteStore{db: db, path: dbPath}, nil
}

// Save replaces the stored snapshot with records inside one transaction.
func (s *SQLiteStore) Save(records []Record) error {
	return s.transaction(func(tx *sql.Tx) error {
		if _, err := tx.Exec(`DELETE FROM accounts`); err != nil {
			return fmt.Errorf("failed to clear accounts: %w", err)
		}
		for i, r := range records {
			_, err := tx.Exec(
				`INSERT INTO accounts (id, owner_name, balance, position) VALUES (?, ?, ?, ?)`,
				r.ID, r.OwnerName, r.Balance.String(), i,
			)
			if err != nil {
				return fmt.Errorf("failed to insert account %s: %w", r.ID, err)
			}
		}
		return nil
	})
}

// Load reads all records ordered by position. Balances that do not parse as
// decimals fail with ErrMalformedRecord; the primary key makes duplicate IDs
// unrepresentable.
func (s *SQLiteStore) Load() ([]Record, error) {
	rows, err := s.db.Query(`SELECT id, owner_name, balance FROM accounts ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var id, owner, balanceStr string
		if err := rows.Scan(&id, &owner, &balanceStr); err != nil {
			return nil, fmt.Errorf("failed to scan account row: %w", err)
		}
		balance, err := decimal.NewFromString(balanceStr)
		if err != nil {
			return nil, fmt.Errorf("account %s: balance %q is not numeric: %w",
				id, balanceStr, ErrMalformedRecord)
		}
		records = append(records, Record{ID: id, OwnerName: owner, Balance: balance})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read accounts: %w", err)
	}
	return records, nil
}

// Path returns the database file path.
func (s *SQLiteStore) Path() string {
	return s.path
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// transaction executes fn within a transaction, rolling back on error.
func (s *SQLiteStore) transaction(fn func(*sql.Tx) error) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("transaction error: %v, rollback error: %w", err, rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

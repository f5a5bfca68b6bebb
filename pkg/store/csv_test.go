package store

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func sampleRecords() []Record {
	return []Record{
		{ID: "acc-1", OwnerName: "Alice", Balance: dec("125.00")},
		{ID: "acc-2", OwnerName: "Bob", Balance: dec("75")},
		{ID: "acc-3", OwnerName: "O'Neill, Jack", Balance: dec("0")},
	}
}

func TestCSVSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "accounts.csv")
	s := NewCSVStore(path)

	want := sampleRecords()
	if err := s.Save(want); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, err := s.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("Load() returned %d records, expected %d", len(got), len(want))
	}
	for i := range want {
		if got[i].ID != want[i].ID || got[i].OwnerName != want[i].OwnerName ||
			!got[i].Balance.Equal(want[i].Balance) {
			t.Errorf("records[%d] = %+v, expected %+v", i, got[i], want[i])
		}
	}
}

func TestCSVSaveOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "accounts.csv")
	s := NewCSVStore(path)

	if err := s.Save(sampleRecords()); err != nil {
		t.Fatalf("first Save() error = %v", err)
	}
	if err := s.Save([]Record{{ID: "acc-9", OwnerName: "Zoe", Balance: dec("1")}}); err != nil {
		t.Fatalf("second Save() error = %v", err)
	}

	got, err := s.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(got) != 1 || got[0].ID != "acc-9" {
		t.Errorf("Load() = %+v, expected just acc-9", got)
	}
}

func TestCSVLoadMissingFile(t *testing.T) {
	s := NewCSVStore(filepath.Join(t.TempDir(), "does-not-exist.csv"))
	got, err := s.Load()
	if err != nil {
		t.Fatalf("Load() error = %v, expected empty snapshot", err)
	}
	if len(got) != 0 {
		t.Errorf("Load() returned %d records, expected 0", len(got))
	}
}

func TestCSVLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{
			"row with too few fields",
			"id,owner_name,balance\nacc-1,Alice\n",
			ErrMalformedRecord,
		},
		{
			"non-numeric balance",
			"id,owner_name,balance\nacc-1,Alice,lots\n",
			ErrMalformedRecord,
		},
		{
			"duplicate id",
			"id,owner_name,balance\nacc-1,Alice,10\nacc-1,Bob,20\n",
			ErrDuplicateID,
		},
		{
			"truncated header",
			"id,owner_name\n",
			ErrMalformedRecord,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "accounts.csv")
			if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatalf("WriteFile() error = %v", err)
			}

			_, err := NewCSVStore(path).Load()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Load() error = %v, expected %v", err, tt.wantErr)
			}
		})
	}
}

func TestCSVSaveFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "accounts.csv")
	s := NewCSVStore(path)

	if err := s.Save([]Record{{ID: "acc-1", OwnerName: "Alice", Balance: dec("12.50")}}); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	want := "id,owner_name,balance\nacc-1,Alice,12.5\n"
	if string(data) != want {
		t.Errorf("file content = %q, expected %q", data, want)
	}
}

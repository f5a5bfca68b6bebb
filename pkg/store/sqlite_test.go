package store

import (
	"path/filepath"
	"testing"
)

func TestSQLiteSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "accounts.db")
	s, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("OpenSQLite() error = %v", err)
	}
	defer s.Close()

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

func TestSQLiteSaveReplacesSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "accounts.db")
	s, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("OpenSQLite() error = %v", err)
	}
	defer s.Close()

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

func TestSQLiteLoadEmptyDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "accounts.db")
	s, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("OpenSQLite() error = %v", err)
	}
	defer s.Close()

	got, err := s.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Load() returned %d records, expected 0", len(got))
	}
}

func TestSQLiteSaveRejectsDuplicateIDs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "accounts.db")
	s, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("OpenSQLite() error = %v", err)
	}
	defer s.Close()

	// Seed a valid snapshot, then attempt one with a repeated id.
	if err := s.Save(sampleRecords()); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	dup := []Record{
		{ID: "acc-1", OwnerName: "Alice", Balance: dec("1")},
		{ID: "acc-1", OwnerName: "Bob", Balance: dec("2")},
	}
	if err := s.Save(dup); err == nil {
		t.Fatal("Save() with duplicate ids succeeded, expected error")
	}

	// The failed save must roll back to the previous snapshot.
	got, err := s.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(got) != len(sampleRecords()) {
		t.Errorf("Load() returned %d records, expected %d after rollback", len(got), len(sampleRecords()))
	}
}

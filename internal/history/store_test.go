package history

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func sample() []Entry {
	ts := time.Date(2020, 4, 3, 19, 0, 0, 0, time.UTC)
	return []Entry{
		{Expr: "42+", Result: 6, Ts: ts},
		{Expr: "42", Err: "3: syntax error (2 values left on stack)", Ts: ts.Add(time.Second)},
		{Expr: "02&", Err: "3: unknown operator at '&'", Ts: ts.Add(2 * time.Second)},
	}
}

func testStore(t *testing.T, s Store) {
	t.Helper()

	got, err := s.Last(5)
	if err != nil {
		t.Fatalf("Last on empty store failed: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no entries, got %v", got)
	}

	want := sample()
	for i := range want {
		if err := s.Add(&want[i]); err != nil {
			t.Fatalf("Add failed: %v", err)
		}
		if want[i].ID == 0 {
			t.Errorf("Add did not set an ID for %q", want[i].Expr)
		}
	}

	got, err = s.Last(10)
	if err != nil {
		t.Fatalf("Last failed: %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Last(10) mismatch (-want +got):\n%s", diff)
	}

	got, err = s.Last(2)
	if err != nil {
		t.Fatalf("Last failed: %v", err)
	}
	if diff := cmp.Diff(want[1:], got); diff != "" {
		t.Errorf("Last(2) mismatch (-want +got):\n%s", diff)
	}
	if !got[0].Failed() || got[0].Result != 0 {
		t.Errorf("expected a failed entry, got %+v", got[0])
	}

	got, err = s.Last(0)
	if err != nil || got != nil {
		t.Errorf("Last(0) = %v, %v; want nil, nil", got, err)
	}
}

func TestMemoryStore(t *testing.T) {
	s := NewMemory()
	defer s.Close()
	testStore(t, s)
}

func TestMemoryStoreSetsTime(t *testing.T) {
	s := NewMemory()
	e := Entry{Expr: "4"}
	if err := s.Add(&e); err != nil {
		t.Fatal(err)
	}
	if e.Ts.IsZero() {
		t.Error("expected Add to set Ts")
	}
}

func TestSQLiteStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")

	s, err := NewSQLite(path)
	if err != nil {
		t.Fatalf("Failed to create SQLite store: %v", err)
	}
	testStore(t, s)
	s.Close()

	// Reopen to verify persistence.
	s2, err := NewSQLite(path)
	if err != nil {
		t.Fatalf("Failed to reopen SQLite store: %v", err)
	}
	defer s2.Close()

	got, err := s2.Last(1)
	if err != nil {
		t.Fatalf("Last after reopen failed: %v", err)
	}
	if len(got) != 1 || got[0].Expr != "02&" {
		t.Errorf("expected the last entry after reopen, got %v", got)
	}
}

func TestSQLiteSchemaVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")
	s, err := NewSQLite(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.setMetadata("schema_version", "99"); err != nil {
		t.Fatal(err)
	}
	s.Close()

	if _, err := NewSQLite(path); err == nil {
		t.Error("expected an error for an unknown schema version")
	}
}

func TestSQLiteBadPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "missing", "history.db")
	if _, err := os.Stat(filepath.Dir(path)); !os.IsNotExist(err) {
		t.Fatalf("expected %s not to exist", filepath.Dir(path))
	}
	if s, err := NewSQLite(path); err == nil {
		s.Close()
		t.Error("expected an error opening a database in a missing directory")
	}
}

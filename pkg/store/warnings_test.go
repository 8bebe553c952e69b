package store

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/PancyStudios/FlaceManagerGo/pkg/models"
)

// newTestStore opens a fresh database in a temporary directory.
func newTestStore(t *testing.T) *Store {
	t.Helper()

	s, err := Open(filepath.Join(t.TempDir(), "flace.db"))
	if err != nil {
		t.Fatalf("Open() returned error: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestAddWarningDefaultReason(t *testing.T) {
	s := newTestStore(t)

	w, err := s.AddWarning("user1", "")
	if err != nil {
		t.Fatalf("AddWarning() returned error: %v", err)
	}
	if w.Reason != models.DefaultWarnReason {
		t.Errorf("Reason = %q, want %q", w.Reason, models.DefaultWarnReason)
	}
	if w.ID == 0 {
		t.Error("ID should be assigned by the store")
	}
}

func TestListWarningsOrder(t *testing.T) {
	s := newTestStore(t)

	for _, reason := range []string{"A", "B", "C"} {
		if _, err := s.AddWarning("user1", reason); err != nil {
			t.Fatalf("AddWarning(%q) returned error: %v", reason, err)
		}
	}
	// Advertencias de otro usuario no deben aparecer en la lista
	if _, err := s.AddWarning("user2", "X"); err != nil {
		t.Fatalf("AddWarning() returned error: %v", err)
	}

	warnings, err := s.ListWarnings("user1")
	if err != nil {
		t.Fatalf("ListWarnings() returned error: %v", err)
	}
	if len(warnings) != 3 {
		t.Fatalf("len(warnings) = %d, want 3", len(warnings))
	}
	for i, want := range []string{"A", "B", "C"} {
		if warnings[i].Reason != want {
			t.Errorf("warnings[%d].Reason = %q, want %q", i, warnings[i].Reason, want)
		}
	}
}

func TestRemoveWarningOrdinal(t *testing.T) {
	s := newTestStore(t)

	for _, reason := range []string{"A", "B", "C"} {
		if _, err := s.AddWarning("user1", reason); err != nil {
			t.Fatalf("AddWarning(%q) returned error: %v", reason, err)
		}
	}

	removed, err := s.RemoveWarning("user1", 2)
	if err != nil {
		t.Fatalf("RemoveWarning(2) returned error: %v", err)
	}
	if removed.Reason != "B" {
		t.Errorf("removed.Reason = %q, want \"B\"", removed.Reason)
	}

	warnings, err := s.ListWarnings("user1")
	if err != nil {
		t.Fatalf("ListWarnings() returned error: %v", err)
	}
	if len(warnings) != 2 || warnings[0].Reason != "A" || warnings[1].Reason != "C" {
		t.Fatalf("warnings after removal = %v, want [A C]", warnings)
	}

	// El ordinal 2 se re-resuelve sobre la lista encogida: ahora es C
	removed, err = s.RemoveWarning("user1", 2)
	if err != nil {
		t.Fatalf("second RemoveWarning(2) returned error: %v", err)
	}
	if removed.Reason != "C" {
		t.Errorf("removed.Reason = %q, want \"C\"", removed.Reason)
	}
}

func TestRemoveWarningBounds(t *testing.T) {
	s := newTestStore(t)

	for _, reason := range []string{"A", "B"} {
		if _, err := s.AddWarning("user1", reason); err != nil {
			t.Fatalf("AddWarning(%q) returned error: %v", reason, err)
		}
	}

	for _, ordinal := range []int{0, -1, 3} {
		if _, err := s.RemoveWarning("user1", ordinal); !errors.Is(err, ErrWarningNotFound) {
			t.Errorf("RemoveWarning(%d) error = %v, want ErrWarningNotFound", ordinal, err)
		}
	}

	// La lista queda intacta tras los fallos
	warnings, err := s.ListWarnings("user1")
	if err != nil {
		t.Fatalf("ListWarnings() returned error: %v", err)
	}
	if len(warnings) != 2 {
		t.Errorf("len(warnings) = %d, want 2", len(warnings))
	}
}

func TestCountWarnings(t *testing.T) {
	s := newTestStore(t)

	if count, err := s.CountWarnings("user1"); err != nil || count != 0 {
		t.Errorf("CountWarnings() = %d, %v, want 0, nil", count, err)
	}
	if _, err := s.AddWarning("user1", "spam"); err != nil {
		t.Fatalf("AddWarning() returned error: %v", err)
	}
	if count, err := s.CountWarnings("user1"); err != nil || count != 1 {
		t.Errorf("CountWarnings() = %d, %v, want 1, nil", count, err)
	}
}

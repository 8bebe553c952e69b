package store

import (
	"errors"
	"testing"

	"github.com/PancyStudios/FlaceManagerGo/pkg/models"
)

// countVoteRows cuenta las filas crudas para un par (message, user).
func countVoteRows(t *testing.T, s *Store, messageID, userID string) int {
	t.Helper()

	var count int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM votes WHERE message_id = ? AND user_id = ?`,
		messageID, userID).Scan(&count)
	if err != nil {
		t.Fatalf("count query returned error: %v", err)
	}
	return count
}

func TestCastVoteAdd(t *testing.T) {
	s := newTestStore(t)

	res, err := s.CastVote("m1", "u1", models.VoteUp)
	if err != nil {
		t.Fatalf("CastVote() returned error: %v", err)
	}
	if res.Outcome != VoteAdded {
		t.Errorf("Outcome = %v, want VoteAdded", res.Outcome)
	}
	if got := countVoteRows(t, s, "m1", "u1"); got != 1 {
		t.Errorf("vote rows = %d, want 1", got)
	}
}

func TestCastVoteToggle(t *testing.T) {
	s := newTestStore(t)

	if _, err := s.CastVote("m1", "u1", models.VoteUp); err != nil {
		t.Fatalf("first CastVote() returned error: %v", err)
	}

	res, err := s.CastVote("m1", "u1", models.VoteUp)
	if err != nil {
		t.Fatalf("second CastVote() returned error: %v", err)
	}
	if res.Outcome != VoteRetracted {
		t.Errorf("Outcome = %v, want VoteRetracted", res.Outcome)
	}
	if got := countVoteRows(t, s, "m1", "u1"); got != 0 {
		t.Errorf("vote rows after toggle = %d, want 0", got)
	}
}

func TestCastVoteConflict(t *testing.T) {
	s := newTestStore(t)

	if _, err := s.CastVote("m1", "u1", models.VoteUp); err != nil {
		t.Fatalf("first CastVote() returned error: %v", err)
	}

	res, err := s.CastVote("m1", "u1", models.VoteDown)
	if err != nil {
		t.Fatalf("conflicting CastVote() returned error: %v", err)
	}
	if res.Outcome != VoteConflict {
		t.Errorf("Outcome = %v, want VoteConflict", res.Outcome)
	}
	if res.Existing != models.VoteUp {
		t.Errorf("Existing = %q, want %q", res.Existing, models.VoteUp)
	}

	// El voto almacenado sigue siendo el original
	tally, err := s.Tally("m1")
	if err != nil {
		t.Fatalf("Tally() returned error: %v", err)
	}
	if tally.Up != 1 || tally.Down != 0 {
		t.Errorf("tally = %+v, want up:1 down:0", tally)
	}
}

func TestCastVoteInvariant(t *testing.T) {
	s := newTestStore(t)

	// Cualquier secuencia de casts deja 0 o 1 filas para el par
	sequence := []models.VoteType{
		models.VoteUp, models.VoteDown, models.VoteUp, models.VoteUp,
		models.VoteNota, models.VoteNota, models.VoteDown,
	}
	for i, voteType := range sequence {
		if _, err := s.CastVote("m1", "u1", voteType); err != nil {
			t.Fatalf("CastVote(#%d) returned error: %v", i, err)
		}
		if got := countVoteRows(t, s, "m1", "u1"); got > 1 {
			t.Fatalf("after cast #%d: vote rows = %d, want <= 1", i, got)
		}
	}
}

func TestCastVoteInvalidType(t *testing.T) {
	s := newTestStore(t)

	if _, err := s.CastVote("m1", "u1", models.VoteType("sideways")); !errors.Is(err, ErrInvalidVoteType) {
		t.Errorf("CastVote() error = %v, want ErrInvalidVoteType", err)
	}
}

func TestTally(t *testing.T) {
	s := newTestStore(t)

	for _, cast := range []struct {
		user string
		vote models.VoteType
	}{
		{"u1", models.VoteUp},
		{"u2", models.VoteUp},
		{"u3", models.VoteDown},
	} {
		if _, err := s.CastVote("m1", cast.user, cast.vote); err != nil {
			t.Fatalf("CastVote(%s) returned error: %v", cast.user, err)
		}
	}
	// Votos de otro mensaje no cuentan
	if _, err := s.CastVote("m2", "u1", models.VoteNota); err != nil {
		t.Fatalf("CastVote(m2) returned error: %v", err)
	}

	tally, err := s.Tally("m1")
	if err != nil {
		t.Fatalf("Tally() returned error: %v", err)
	}
	want := models.Tally{Up: 2, Down: 1, Nota: 0}
	if tally != want {
		t.Errorf("Tally() = %+v, want %+v", tally, want)
	}
	if tally.Status() != models.TallyPositive {
		t.Errorf("Status() = %v, want TallyPositive", tally.Status())
	}
}

func TestTallyEmpty(t *testing.T) {
	s := newTestStore(t)

	tally, err := s.Tally("missing")
	if err != nil {
		t.Fatalf("Tally() returned error: %v", err)
	}
	if tally != (models.Tally{}) {
		t.Errorf("Tally() = %+v, want zero", tally)
	}
	if tally.Status() != models.TallyNeutral {
		t.Errorf("Status() = %v, want TallyNeutral", tally.Status())
	}
}

// TestSuggestionVoteFlow covers the full suggest -> vote -> tally scenario.
func TestSuggestionVoteFlow(t *testing.T) {
	s := newTestStore(t)

	sg, err := s.RecordSuggestion("Add dark mode", "https://discord.com/channels/1/2/3")
	if err != nil {
		t.Fatalf("RecordSuggestion() returned error: %v", err)
	}
	if sg.ID == 0 {
		t.Error("suggestion ID should be assigned by the store")
	}

	if _, err := s.CastVote("3", "u1", models.VoteUp); err != nil {
		t.Fatalf("CastVote(u1) returned error: %v", err)
	}
	if _, err := s.CastVote("3", "u2", models.VoteDown); err != nil {
		t.Fatalf("CastVote(u2) returned error: %v", err)
	}

	tally, err := s.Tally("3")
	if err != nil {
		t.Fatalf("Tally() returned error: %v", err)
	}
	want := models.Tally{Up: 1, Down: 1, Nota: 0}
	if tally != want {
		t.Errorf("Tally() = %+v, want %+v", tally, want)
	}
	if tally.Status() != models.TallyNeutral {
		t.Errorf("Status() = %v, want TallyNeutral", tally.Status())
	}

	history, err := s.Suggestions()
	if err != nil {
		t.Fatalf("Suggestions() returned error: %v", err)
	}
	if len(history) != 1 || history[0].Text != "Add dark mode" {
		t.Errorf("Suggestions() = %v, want the recorded suggestion", history)
	}
}

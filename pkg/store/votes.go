package store

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/PancyStudios/FlaceManagerGo/pkg/models"
)

// ErrInvalidVoteType is returned for a vote type outside the three categories.
var ErrInvalidVoteType = errors.New("invalid vote type")

// VoteOutcome describes what CastVote did with the incoming vote.
type VoteOutcome int

const (
	// VoteAdded: no hay voto previo, el voto fue registrado.
	VoteAdded VoteOutcome = iota
	// VoteRetracted: el mismo tipo fue votado de nuevo, el voto fue retirado.
	VoteRetracted
	// VoteConflict: ya existe un voto de otro tipo, no se cambió nada.
	VoteConflict
)

// VoteResult is the outcome of a cast together with the pre-existing vote
// type when the cast conflicted.
type VoteResult struct {
	Outcome  VoteOutcome
	Existing models.VoteType
}

// CastVote applies one vote event for (messageID, userID):
//
//   - no existing vote          -> insert, VoteAdded
//   - existing vote, same type  -> delete, VoteRetracted (toggle)
//   - existing vote, other type -> untouched, VoteConflict with the old type
//
// The read-decide-write runs inside a single transaction and the votes table
// carries UNIQUE(message_id, user_id), so after any call at most one vote
// row exists for the pair.
func (s *Store) CastVote(messageID, userID string, voteType models.VoteType) (VoteResult, error) {
	if !voteType.Valid() {
		return VoteResult{}, ErrInvalidVoteType
	}

	tx, err := s.db.Begin()
	if err != nil {
		return VoteResult{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var existing models.VoteType
	err = tx.QueryRow(`SELECT vote_type FROM votes WHERE message_id = ? AND user_id = ?`,
		messageID, userID).Scan(&existing)

	switch {
	case err == sql.ErrNoRows:
		if _, err := tx.Exec(`INSERT INTO votes (message_id, user_id, vote_type) VALUES (?, ?, ?)`,
			messageID, userID, voteType); err != nil {
			return VoteResult{}, fmt.Errorf("failed to insert vote: %w", err)
		}
		if err := tx.Commit(); err != nil {
			return VoteResult{}, fmt.Errorf("failed to commit vote: %w", err)
		}
		return VoteResult{Outcome: VoteAdded}, nil

	case err != nil:
		return VoteResult{}, fmt.Errorf("failed to query vote: %w", err)

	case existing == voteType:
		if _, err := tx.Exec(`DELETE FROM votes WHERE message_id = ? AND user_id = ?`,
			messageID, userID); err != nil {
			return VoteResult{}, fmt.Errorf("failed to delete vote: %w", err)
		}
		if err := tx.Commit(); err != nil {
			return VoteResult{}, fmt.Errorf("failed to commit retraction: %w", err)
		}
		return VoteResult{Outcome: VoteRetracted}, nil

	default:
		// Un voto de otro tipo se rechaza, nunca se actualiza en sitio.
		return VoteResult{Outcome: VoteConflict, Existing: existing}, nil
	}
}

// Tally recounts the current vote rows for the message, one category at a
// time. There is no cached counter: the result always reflects the store
// state at call time.
func (s *Store) Tally(messageID string) (models.Tally, error) {
	rows, err := s.db.Query(`SELECT vote_type, COUNT(*) FROM votes WHERE message_id = ? GROUP BY vote_type`, messageID)
	if err != nil {
		return models.Tally{}, fmt.Errorf("failed to tally votes: %w", err)
	}
	defer rows.Close()

	var tally models.Tally
	for rows.Next() {
		var voteType models.VoteType
		var count int
		if err := rows.Scan(&voteType, &count); err != nil {
			return models.Tally{}, fmt.Errorf("failed to scan tally row: %w", err)
		}
		switch voteType {
		case models.VoteUp:
			tally.Up = count
		case models.VoteDown:
			tally.Down = count
		case models.VoteNota:
			tally.Nota = count
		}
	}
	return tally, rows.Err()
}

// RecordSuggestion stores a submitted suggestion and its rendered message
// link. The caller must create the Discord message first: the link only
// exists after rendering, so a render failure leaves no orphan row. The
// reverse window (message sent, insert fails) is accepted and logged by the
// caller rather than compensated.
func (s *Store) RecordSuggestion(text, messageLink string) (models.Suggestion, error) {
	res, err := s.db.Exec(`INSERT INTO suggestions (suggestion, message_link) VALUES (?, ?)`, text, messageLink)
	if err != nil {
		return models.Suggestion{}, fmt.Errorf("failed to insert suggestion: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return models.Suggestion{}, fmt.Errorf("failed to read suggestion id: %w", err)
	}
	return models.Suggestion{ID: id, Text: text, MessageLink: messageLink}, nil
}

// Suggestions returns the full suggestion history in submission order.
func (s *Store) Suggestions() ([]models.Suggestion, error) {
	rows, err := s.db.Query(`SELECT id, suggestion, message_link FROM suggestions ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query suggestions: %w", err)
	}
	defer rows.Close()

	var suggestions []models.Suggestion
	for rows.Next() {
		var sg models.Suggestion
		if err := rows.Scan(&sg.ID, &sg.Text, &sg.MessageLink); err != nil {
			return nil, fmt.Errorf("failed to scan suggestion: %w", err)
		}
		suggestions = append(suggestions, sg)
	}
	return suggestions, rows.Err()
}

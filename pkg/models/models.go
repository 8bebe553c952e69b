// Package models contains the data records persisted by the bot.
package models

// DefaultWarnReason es el texto usado cuando no se especifica una razón.
const DefaultWarnReason = "No reason provided"

// Warning representa una advertencia individual de un usuario
type Warning struct {
	ID     int64  `json:"id"`
	UserID string `json:"userId"`
	Reason string `json:"reason"`
}

// Suggestion representa una sugerencia enviada por la comunidad.
// MessageLink apunta al mensaje renderizado y solo se usa para el historial.
type Suggestion struct {
	ID          int64  `json:"id"`
	Text        string `json:"suggestion"`
	MessageLink string `json:"messageLink"`
}

// VoteType is the category a user can vote for on a suggestion message.
type VoteType string

const (
	VoteUp   VoteType = "upvote"
	VoteDown VoteType = "downvote"
	VoteNota VoteType = "nota"
)

// Valid reports whether the vote type is one of the three known categories.
func (v VoteType) Valid() bool {
	return v == VoteUp || v == VoteDown || v == VoteNota
}

// Vote representa el voto activo de un usuario sobre un mensaje de sugerencia.
// Solo puede existir una fila por (MessageID, UserID).
type Vote struct {
	MessageID string   `json:"messageId"`
	UserID    string   `json:"userId"`
	Type      VoteType `json:"voteType"`
}

// Tally holds the derived per-category vote counts for one suggestion
// message. It is recomputed from the store on every vote event and never
// persisted.
type Tally struct {
	Up   int `json:"up"`
	Down int `json:"down"`
	Nota int `json:"nota"`
}

// TallyStatus is the three-way comparison of up versus down votes.
type TallyStatus int

const (
	TallyNeutral TallyStatus = iota
	TallyPositive
	TallyNegative
)

// String returns the status name used in API responses.
func (s TallyStatus) String() string {
	switch s {
	case TallyPositive:
		return "positive"
	case TallyNegative:
		return "negative"
	default:
		return "neutral"
	}
}

// Status compares up and down votes exactly, with no tolerance.
func (t Tally) Status() TallyStatus {
	switch {
	case t.Up > t.Down:
		return TallyPositive
	case t.Down > t.Up:
		return TallyNegative
	default:
		return TallyNeutral
	}
}

// Color returns the embed color for the tally status (green, red, blue).
func (t Tally) Color() int {
	switch t.Status() {
	case TallyPositive:
		return 0x00FF00
	case TallyNegative:
		return 0xFF0000
	default:
		return 0x3498DB
	}
}

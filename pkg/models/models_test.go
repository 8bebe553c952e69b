package models

import "testing"

func TestVoteTypeValid(t *testing.T) {
	valid := []VoteType{VoteUp, VoteDown, VoteNota}
	for _, v := range valid {
		if !v.Valid() {
			t.Errorf("Valid() = false for %q, want true", v)
		}
	}

	invalid := []VoteType{"", "up", "UPVOTE", "abstain"}
	for _, v := range invalid {
		if v.Valid() {
			t.Errorf("Valid() = true for %q, want false", v)
		}
	}
}

func TestTallyStatus(t *testing.T) {
	tests := []struct {
		name  string
		tally Tally
		want  TallyStatus
	}{
		{"empty is neutral", Tally{}, TallyNeutral},
		{"more up is positive", Tally{Up: 3, Down: 1}, TallyPositive},
		{"more down is negative", Tally{Up: 1, Down: 4}, TallyNegative},
		{"tie is neutral", Tally{Up: 2, Down: 2}, TallyNeutral},
		{"nota does not tip the balance", Tally{Up: 1, Down: 1, Nota: 10}, TallyNeutral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.tally.Status(); got != tt.want {
				t.Errorf("Status() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTallyColor(t *testing.T) {
	if got := (Tally{Up: 2}).Color(); got != 0x00FF00 {
		t.Errorf("Color() = %#x, want green", got)
	}
	if got := (Tally{Down: 2}).Color(); got != 0xFF0000 {
		t.Errorf("Color() = %#x, want red", got)
	}
	if got := (Tally{}).Color(); got != 0x3498DB {
		t.Errorf("Color() = %#x, want blue", got)
	}
}

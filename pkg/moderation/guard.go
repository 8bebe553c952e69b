// Package moderation decides whether an actor may perform a destructive
// moderation action on a target. It is pure: no state, no I/O.
package moderation

// Action is a destructive moderation action gated by Authorize.
type Action string

const (
	ActionKick Action = "kick"
	ActionBan  Action = "ban"
)

// Request carries the identities and role ranks involved in one action.
// Ranks are role hierarchy positions resolved by the caller; higher means
// more privileged.
type Request struct {
	ActorID    string
	ActorRank  int
	TargetID   string
	TargetRank int
	BotID      string
	BotRank    int
}

// Decision is the result of an authorization check. A denial carries the
// reason surfaced to the invoking user; it is a normal value, not an error.
type Decision struct {
	Allowed bool
	Reason  string
}

// Denial reasons, in the order they are checked.
const (
	ReasonSelfTarget     = "cannot target self"
	ReasonBotTarget      = "cannot target self (bot)"
	ReasonRankUnderActor = "target has equal or higher rank than actor"
	ReasonRankUnderBot   = "target has equal or higher rank than bot"
)

var allowed = Decision{Allowed: true}

func denied(reason string) Decision {
	return Decision{Reason: reason}
}

// Authorize applies the denial checks in order; the first match wins.
// Rank comparisons use >=, so a target with the actor's (or bot's) exact
// rank is denied: equal hierarchical position is untrusted for destructive
// actions.
func Authorize(action Action, req Request) Decision {
	_ = action // kick y ban comparten exactamente las mismas reglas

	switch {
	case req.TargetID == req.ActorID:
		return denied(ReasonSelfTarget)
	case req.TargetID == req.BotID:
		return denied(ReasonBotTarget)
	case req.TargetRank >= req.ActorRank:
		return denied(ReasonRankUnderActor)
	case req.TargetRank >= req.BotRank:
		return denied(ReasonRankUnderBot)
	default:
		return allowed
	}
}

// CanWarn is the separate, simpler check for warnings: any moderator may
// warn anyone except themselves. Warnings deliberately skip the rank checks
// of Authorize.
func CanWarn(actorID, targetID string) Decision {
	if actorID == targetID {
		return denied(ReasonSelfTarget)
	}
	return allowed
}

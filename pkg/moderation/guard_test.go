package moderation

import "testing"

func TestAuthorizeSelfTarget(t *testing.T) {
	// El rango es irrelevante cuando el objetivo es el propio actor
	ranks := [][2]int{{1, 1}, {10, 1}, {1, 10}}
	for _, r := range ranks {
		dec := Authorize(ActionKick, Request{
			ActorID:    "actor",
			ActorRank:  r[0],
			TargetID:   "actor",
			TargetRank: r[1],
			BotID:      "bot",
			BotRank:    100,
		})
		if dec.Allowed {
			t.Errorf("self target with ranks %v should be denied", r)
		}
		if dec.Reason != ReasonSelfTarget {
			t.Errorf("Reason = %q, want %q", dec.Reason, ReasonSelfTarget)
		}
	}
}

func TestAuthorizeBotTarget(t *testing.T) {
	dec := Authorize(ActionBan, Request{
		ActorID:    "actor",
		ActorRank:  50,
		TargetID:   "bot",
		TargetRank: 1,
		BotID:      "bot",
		BotRank:    10,
	})
	if dec.Allowed {
		t.Error("targeting the bot should be denied")
	}
	if dec.Reason != ReasonBotTarget {
		t.Errorf("Reason = %q, want %q", dec.Reason, ReasonBotTarget)
	}
}

func TestAuthorizeEqualRankDenied(t *testing.T) {
	dec := Authorize(ActionBan, Request{
		ActorID:    "actor",
		ActorRank:  5,
		TargetID:   "target",
		TargetRank: 5,
		BotID:      "bot",
		BotRank:    10,
	})
	if dec.Allowed {
		t.Error("equal rank should be denied, not allowed")
	}
	if dec.Reason != ReasonRankUnderActor {
		t.Errorf("Reason = %q, want %q", dec.Reason, ReasonRankUnderActor)
	}
}

func TestAuthorizeTargetAboveActor(t *testing.T) {
	dec := Authorize(ActionKick, Request{
		ActorID:    "actor",
		ActorRank:  3,
		TargetID:   "target",
		TargetRank: 7,
		BotID:      "bot",
		BotRank:    10,
	})
	if dec.Allowed {
		t.Error("target above actor should be denied")
	}
	if dec.Reason != ReasonRankUnderActor {
		t.Errorf("Reason = %q, want %q", dec.Reason, ReasonRankUnderActor)
	}
}

func TestAuthorizeTargetAboveBot(t *testing.T) {
	// El actor supera al objetivo pero el bot no
	dec := Authorize(ActionKick, Request{
		ActorID:    "actor",
		ActorRank:  10,
		TargetID:   "target",
		TargetRank: 8,
		BotID:      "bot",
		BotRank:    8,
	})
	if dec.Allowed {
		t.Error("target at or above bot rank should be denied")
	}
	if dec.Reason != ReasonRankUnderBot {
		t.Errorf("Reason = %q, want %q", dec.Reason, ReasonRankUnderBot)
	}
}

func TestAuthorizeHappyPath(t *testing.T) {
	dec := Authorize(ActionKick, Request{
		ActorID:    "actor",
		ActorRank:  10,
		TargetID:   "target",
		TargetRank: 3,
		BotID:      "bot",
		BotRank:    8,
	})
	if !dec.Allowed {
		t.Errorf("expected Allowed, got denial %q", dec.Reason)
	}
	if dec.Reason != "" {
		t.Errorf("Reason = %q, want empty", dec.Reason)
	}
}

func TestCanWarn(t *testing.T) {
	if dec := CanWarn("mod", "mod"); dec.Allowed {
		t.Error("self warn should be denied")
	}
	// Las advertencias no consultan rangos: cualquier otro objetivo es válido
	if dec := CanWarn("mod", "user"); !dec.Allowed {
		t.Errorf("warn on another user should be allowed, got %q", dec.Reason)
	}
}

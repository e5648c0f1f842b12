package workflow

import (
	"testing"
	"time"

	"github.com/teamswap/teamswap/internal/models"
)

func pendingSwap() *models.SkillSwap {
	return &models.SkillSwap{
		ID:             "swap-1",
		RequesterID:    "alice",
		OfferedSkill:   "Go",
		RequestedSkill: "Figma",
		Status:         models.SwapPending,
	}
}

func TestProposeSwap(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		swap, err := ProposeSwap(NewSwapInput{OfferedSkill: "Go", RequestedSkill: "Rust"}, "alice")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if swap.Status != models.SwapPending {
			t.Errorf("status = %q", swap.Status)
		}
		if swap.SessionDuration != 60 {
			t.Errorf("session_duration = %d, want 60", swap.SessionDuration)
		}
		if swap.SwapType != models.SwapOneTime {
			t.Errorf("swap_type = %q, want one_time", swap.SwapType)
		}
		if swap.ResponderID != nil {
			t.Error("responder must start unset")
		}
	})

	t.Run("missing skills", func(t *testing.T) {
		if _, err := ProposeSwap(NewSwapInput{OfferedSkill: "  "}, "alice"); err != ErrMissingField {
			t.Errorf("error = %v, want %v", err, ErrMissingField)
		}
	})

	t.Run("unknown type", func(t *testing.T) {
		in := NewSwapInput{OfferedSkill: "Go", RequestedSkill: "Rust", SwapType: "forever"}
		if _, err := ProposeSwap(in, "alice"); err != ErrInvalidTransition {
			t.Errorf("error = %v, want %v", err, ErrInvalidTransition)
		}
	})
}

func TestRespondToSwap_Accept(t *testing.T) {
	swap := pendingSwap()

	notification, err := RespondToSwap(swap, "bob", models.SwapAccepted, time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if swap.Status != models.SwapAccepted {
		t.Errorf("status = %q", swap.Status)
	}
	if swap.ResponderID == nil || *swap.ResponderID != "bob" {
		t.Errorf("responder_id = %v", swap.ResponderID)
	}
	if notification.UserID != "alice" || notification.Type != models.NotifySkillSwapAccepted {
		t.Errorf("notification = %+v", notification)
	}
}

func TestRespondToSwap_Reject(t *testing.T) {
	swap := pendingSwap()

	notification, err := RespondToSwap(swap, "bob", models.SwapRejected, time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if swap.Status != models.SwapRejected {
		t.Errorf("status = %q", swap.Status)
	}
	if swap.ResponderID != nil {
		t.Error("reject must leave responder_id unset")
	}
	if notification.Type != models.NotifySkillSwapRejected {
		t.Errorf("notification type = %q", notification.Type)
	}
}

func TestRespondToSwap_Refusals(t *testing.T) {
	now := time.Now()

	t.Run("own swap", func(t *testing.T) {
		if _, err := RespondToSwap(pendingSwap(), "alice", models.SwapAccepted, now); err != ErrOwnSwap {
			t.Errorf("error = %v, want %v", err, ErrOwnSwap)
		}
	})

	t.Run("not pending", func(t *testing.T) {
		swap := pendingSwap()
		swap.Status = models.SwapCancelled
		if _, err := RespondToSwap(swap, "bob", models.SwapAccepted, now); err != ErrSwapNotPending {
			t.Errorf("error = %v, want %v", err, ErrSwapNotPending)
		}
	})

	t.Run("already taken", func(t *testing.T) {
		swap := pendingSwap()
		carol := "carol"
		swap.ResponderID = &carol
		if _, err := RespondToSwap(swap, "bob", models.SwapAccepted, now); err != ErrSwapTaken {
			t.Errorf("error = %v, want %v", err, ErrSwapTaken)
		}
	})

	t.Run("bad decision", func(t *testing.T) {
		if _, err := RespondToSwap(pendingSwap(), "bob", "later", now); err != ErrInvalidDecision {
			t.Errorf("error = %v, want %v", err, ErrInvalidDecision)
		}
	})

	t.Run("rejected is terminal", func(t *testing.T) {
		swap := pendingSwap()
		if _, err := RespondToSwap(swap, "bob", models.SwapRejected, now); err != nil {
			t.Fatalf("reject: %v", err)
		}
		if _, err := RespondToSwap(swap, "carol", models.SwapAccepted, now); err != ErrSwapNotPending {
			t.Errorf("accept after reject error = %v, want %v", err, ErrSwapNotPending)
		}
	})
}

func TestCompleteSwap(t *testing.T) {
	now := time.Now()
	bob := "bob"

	t.Run("by either party", func(t *testing.T) {
		for _, actor := range []string{"alice", "bob"} {
			swap := pendingSwap()
			swap.Status = models.SwapAccepted
			swap.ResponderID = &bob

			effects, err := CompleteSwap(swap, actor, now)
			if err != nil {
				t.Fatalf("actor %s: %v", actor, err)
			}
			if swap.Status != models.SwapCompleted || swap.CompletedAt == nil {
				t.Errorf("actor %s: swap = %+v", actor, swap)
			}
			if len(effects.ParticipantIDs) != 2 {
				t.Errorf("participants = %v", effects.ParticipantIDs)
			}
		}
	})

	t.Run("outsider", func(t *testing.T) {
		swap := pendingSwap()
		swap.Status = models.SwapAccepted
		swap.ResponderID = &bob
		if _, err := CompleteSwap(swap, "mallory", now); err != ErrNotSwapParty {
			t.Errorf("error = %v, want %v", err, ErrNotSwapParty)
		}
	})

	t.Run("not accepted", func(t *testing.T) {
		if _, err := CompleteSwap(pendingSwap(), "alice", now); err != ErrSwapNotAccepted {
			t.Errorf("error = %v, want %v", err, ErrSwapNotAccepted)
		}
	})
}

func TestCancelSwap(t *testing.T) {
	bob := "bob"

	t.Run("pending", func(t *testing.T) {
		swap := pendingSwap()
		if err := CancelSwap(swap, "alice"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if swap.Status != models.SwapCancelled {
			t.Errorf("status = %q", swap.Status)
		}
	})

	t.Run("accepted", func(t *testing.T) {
		swap := pendingSwap()
		swap.Status = models.SwapAccepted
		swap.ResponderID = &bob
		if err := CancelSwap(swap, "alice"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("responder cannot cancel", func(t *testing.T) {
		swap := pendingSwap()
		swap.Status = models.SwapAccepted
		swap.ResponderID = &bob
		if err := CancelSwap(swap, "bob"); err != ErrNotSwapRequester {
			t.Errorf("error = %v, want %v", err, ErrNotSwapRequester)
		}
	})

	t.Run("completed is terminal", func(t *testing.T) {
		swap := pendingSwap()
		swap.Status = models.SwapCompleted
		if err := CancelSwap(swap, "alice"); err != ErrSwapTerminal {
			t.Errorf("error = %v, want %v", err, ErrSwapTerminal)
		}
	})
}

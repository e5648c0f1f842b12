package workflow

import (
	"fmt"
	"strings"
	"time"

	"github.com/teamswap/teamswap/internal/models"
)

// NewSwapInput carries the requester-supplied swap attributes.
type NewSwapInput struct {
	OfferedSkill    string
	RequestedSkill  string
	Message         string
	SessionDuration int
	SessionTime     *time.Time
	MeetingLink     string
	SwapType        string
}

// ProposeSwap validates the input and returns the pending swap to insert.
func ProposeSwap(in NewSwapInput, requesterID string) (*models.SkillSwap, error) {
	if strings.TrimSpace(in.OfferedSkill) == "" || strings.TrimSpace(in.RequestedSkill) == "" {
		return nil, ErrMissingField
	}
	if in.SessionDuration <= 0 {
		in.SessionDuration = 60
	}
	switch in.SwapType {
	case models.SwapOneTime, models.SwapRecurring, models.SwapMentorship:
	case "":
		in.SwapType = models.SwapOneTime
	default:
		return nil, ErrInvalidTransition
	}

	return &models.SkillSwap{
		RequesterID:     requesterID,
		OfferedSkill:    strings.TrimSpace(in.OfferedSkill),
		RequestedSkill:  strings.TrimSpace(in.RequestedSkill),
		Message:         in.Message,
		SessionDuration: in.SessionDuration,
		SessionTime:     in.SessionTime,
		MeetingLink:     in.MeetingLink,
		Status:          models.SwapPending,
		SwapType:        in.SwapType,
	}, nil
}

// RespondToSwap applies a responder's accept or reject decision. Accepting
// sets the responder exactly once; rejecting leaves responder_id null and
// the swap terminal. Returns the notification to create for the requester.
func RespondToSwap(s *models.SkillSwap, responderID, decision string, now time.Time) (*models.Notification, error) {
	if s.RequesterID == responderID {
		return nil, ErrOwnSwap
	}
	if s.Status != models.SwapPending {
		return nil, ErrSwapNotPending
	}
	if s.ResponderID != nil {
		return nil, ErrSwapTaken
	}

	switch decision {
	case models.SwapAccepted:
		s.Status = models.SwapAccepted
		s.ResponderID = &responderID
		return &models.Notification{
			UserID:    s.RequesterID,
			Title:     "Skill swap accepted",
			Message:   fmt.Sprintf("Your %s for %s swap was accepted", s.OfferedSkill, s.RequestedSkill),
			Type:      models.NotifySkillSwapAccepted,
			RelatedID: s.ID,
		}, nil
	case models.SwapRejected:
		s.Status = models.SwapRejected
		return &models.Notification{
			UserID:    s.RequesterID,
			Title:     "Skill swap rejected",
			Message:   fmt.Sprintf("Your %s for %s swap was rejected", s.OfferedSkill, s.RequestedSkill),
			Type:      models.NotifySkillSwapRejected,
			RelatedID: s.ID,
		}, nil
	default:
		return nil, ErrInvalidDecision
	}
}

// SwapCompletionEffects lists the profile counter bumps a completed swap
// produces: each party taught one skill and learned one skill.
type SwapCompletionEffects struct {
	ParticipantIDs []string
}

// CompleteSwap marks an accepted swap as completed. Either participant may
// complete it.
func CompleteSwap(s *models.SkillSwap, actorID string, now time.Time) (*SwapCompletionEffects, error) {
	if s.Status != models.SwapAccepted {
		return nil, ErrSwapNotAccepted
	}
	if s.ResponderID == nil {
		return nil, ErrSwapNotAccepted
	}
	if actorID != s.RequesterID && actorID != *s.ResponderID {
		return nil, ErrNotSwapParty
	}

	s.Status = models.SwapCompleted
	s.CompletedAt = &now

	return &SwapCompletionEffects{
		ParticipantIDs: []string{s.RequesterID, *s.ResponderID},
	}, nil
}

// CancelSwap lets the requester cancel a swap that has not finished.
func CancelSwap(s *models.SkillSwap, actorID string) error {
	if s.RequesterID != actorID {
		return ErrNotSwapRequester
	}
	if s.Status != models.SwapPending && s.Status != models.SwapAccepted {
		return ErrSwapTerminal
	}
	s.Status = models.SwapCancelled
	return nil
}

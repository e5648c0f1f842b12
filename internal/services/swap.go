package services

import (
	"time"

	"github.com/teamswap/teamswap/internal/discover"
	"github.com/teamswap/teamswap/internal/models"
	"github.com/teamswap/teamswap/internal/workflow"
	"gorm.io/gorm"
)

type SwapService struct {
	db       *gorm.DB
	notifier *NotificationService
}

func NewSwapService(db *gorm.DB, notifier *NotificationService) *SwapService {
	return &SwapService{db: db, notifier: notifier}
}

type CreateSwapRequest struct {
	OfferedSkill    string     `json:"offered_skill" binding:"required"`
	RequestedSkill  string     `json:"requested_skill" binding:"required"`
	Message         string     `json:"message"`
	SessionDuration int        `json:"session_duration"`
	SessionTime     *time.Time `json:"session_time"`
	MeetingLink     string     `json:"meeting_link"`
	SwapType        string     `json:"swap_type" binding:"omitempty,oneof=one_time recurring mentorship"`
}

type SwapListRequest struct {
	Search string `form:"search"`
}

type SwapListResponse struct {
	Swaps []models.SkillSwap `json:"swaps"`
	Stats discover.Stats     `json:"stats"`
}

// List returns the open board: pending and accepted swaps, newest first,
// optionally narrowed by a text query.
func (s *SwapService) List(req *SwapListRequest) (*SwapListResponse, error) {
	var swaps []models.SkillSwap
	err := s.db.Preload("Requester").Preload("Responder").
		Where("status IN ?", []string{models.SwapPending, models.SwapAccepted}).
		Order("created_at DESC").
		Find(&swaps).Error
	if err != nil {
		return nil, err
	}

	filtered := discover.FilterSwaps(swaps, req.Search)
	return &SwapListResponse{
		Swaps: filtered,
		Stats: discover.SwapStats(filtered),
	}, nil
}

// ListMine returns every swap the user is a party to, newest first.
func (s *SwapService) ListMine(userID string) ([]models.SkillSwap, error) {
	var swaps []models.SkillSwap
	err := s.db.Preload("Requester").Preload("Responder").
		Where("requester_id = ? OR responder_id = ?", userID, userID).
		Order("created_at DESC").
		Find(&swaps).Error
	return swaps, err
}

func (s *SwapService) Create(req *CreateSwapRequest, requesterID string) (*models.SkillSwap, error) {
	swap, err := workflow.ProposeSwap(workflow.NewSwapInput{
		OfferedSkill:    req.OfferedSkill,
		RequestedSkill:  req.RequestedSkill,
		Message:         req.Message,
		SessionDuration: req.SessionDuration,
		SessionTime:     req.SessionTime,
		MeetingLink:     req.MeetingLink,
		SwapType:        req.SwapType,
	}, requesterID)
	if err != nil {
		return nil, err
	}
	if err := s.db.Create(swap).Error; err != nil {
		return nil, err
	}
	return swap, nil
}

type RespondSwapRequest struct {
	Decision string `json:"decision" binding:"required,oneof=accepted rejected"`
}

// Respond applies an accept or reject decision. The accept path writes
// through a guarded update so that when two users accept the same swap
// concurrently, exactly one write lands and the other observes the taken
// swap.
func (s *SwapService) Respond(swapID, responderID, decision string) (*models.SkillSwap, error) {
	var swap models.SkillSwap
	var note *models.Notification

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&swap, "id = ?", swapID).Error; err != nil {
			return err
		}

		notification, err := workflow.RespondToSwap(&swap, responderID, decision, time.Now())
		if err != nil {
			return err
		}

		updates := map[string]interface{}{"status": swap.Status}
		if swap.Status == models.SwapAccepted {
			updates["responder_id"] = responderID
		}
		result := tx.Model(&models.SkillSwap{}).
			Where("id = ? AND status = ? AND responder_id IS NULL", swapID, models.SwapPending).
			Updates(touchUpdatedAt(updates))
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			// Lost the race to another responder
			return workflow.ErrSwapTaken
		}

		note = notification
		return s.notifier.CreateTx(tx, note)
	})
	if err != nil {
		return nil, err
	}
	s.notifier.Dispatch(note)

	return &swap, nil
}

// Complete marks an accepted swap as done and credits both parties with
// one skill taught and one skill learned.
func (s *SwapService) Complete(swapID, actorID string) (*models.SkillSwap, error) {
	var swap models.SkillSwap
	var note *models.Notification

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&swap, "id = ?", swapID).Error; err != nil {
			return err
		}

		effects, err := workflow.CompleteSwap(&swap, actorID, time.Now())
		if err != nil {
			return err
		}

		if err := tx.Save(&swap).Error; err != nil {
			return err
		}

		for _, participantID := range effects.ParticipantIDs {
			if err := tx.Model(&models.Profile{}).
				Where("id = ?", participantID).
				Updates(map[string]interface{}{
					"skills_taught":  gorm.Expr("skills_taught + 1"),
					"skills_learned": gorm.Expr("skills_learned + 1"),
				}).Error; err != nil {
				return err
			}
		}

		other := swap.RequesterID
		if actorID == swap.RequesterID && swap.ResponderID != nil {
			other = *swap.ResponderID
		}
		note = &models.Notification{
			UserID:    other,
			Title:     "Skill swap completed",
			Message:   "Your " + swap.OfferedSkill + " for " + swap.RequestedSkill + " swap was marked completed",
			Type:      models.NotifySystem,
			RelatedID: swap.ID,
		}
		return s.notifier.CreateTx(tx, note)
	})
	if err != nil {
		return nil, err
	}
	s.notifier.Dispatch(note)

	return &swap, nil
}

// Cancel lets the requester withdraw a swap that has not finished.
func (s *SwapService) Cancel(swapID, actorID string) (*models.SkillSwap, error) {
	var swap models.SkillSwap

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&swap, "id = ?", swapID).Error; err != nil {
			return err
		}
		if err := workflow.CancelSwap(&swap, actorID); err != nil {
			return err
		}
		return tx.Save(&swap).Error
	})
	if err != nil {
		return nil, err
	}

	return &swap, nil
}

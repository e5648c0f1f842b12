package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Skill swap statuses and types (wire-format literals).
const (
	SwapPending   = "pending"
	SwapAccepted  = "accepted"
	SwapRejected  = "rejected"
	SwapCompleted = "completed"
	SwapCancelled = "cancelled"

	SwapOneTime    = "one_time"
	SwapRecurring  = "recurring"
	SwapMentorship = "mentorship"
)

// SkillSwap is a peer-to-peer proposal to exchange teaching of two skills.
// ResponderID is null while pending and is set exactly once, on the
// transition to accepted. RequesterID never equals ResponderID.
type SkillSwap struct {
	ID                string     `gorm:"type:char(36);primaryKey" json:"id"`
	RequesterID       string     `gorm:"type:char(36);index;not null" json:"requester_id"`
	Requester         *Profile   `gorm:"foreignKey:RequesterID" json:"requester,omitempty"`
	ResponderID       *string    `gorm:"type:char(36);index" json:"responder_id"`
	Responder         *Profile   `gorm:"foreignKey:ResponderID" json:"responder,omitempty"`
	OfferedSkill      string     `gorm:"size:100;not null" json:"offered_skill"`
	RequestedSkill    string     `gorm:"size:100;not null" json:"requested_skill"`
	Message           string     `gorm:"type:text" json:"message"`
	SessionDuration   int        `gorm:"default:60" json:"session_duration"` // minutes
	SessionTime       *time.Time `json:"session_time"`
	MeetingLink       string     `gorm:"size:500" json:"meeting_link"`
	Status            string     `gorm:"size:20;default:pending;index" json:"status"`
	RequesterRating   *float64   `json:"requester_rating"`
	ResponderRating   *float64   `json:"responder_rating"`
	RequesterFeedback string     `gorm:"type:text" json:"requester_feedback"`
	ResponderFeedback string     `gorm:"type:text" json:"responder_feedback"`
	SwapType          string     `gorm:"size:20;default:one_time" json:"swap_type"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
	CompletedAt       *time.Time `json:"completed_at"`
}

func (SkillSwap) TableName() string { return "skill_swaps" }

func (s *SkillSwap) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}

package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Notification types (wire-format literals).
const (
	NotifyProjectApplication  = "project_application"
	NotifyApplicationAccepted = "application_accepted"
	NotifyApplicationRejected = "application_rejected"
	NotifySkillSwapRequest    = "skill_swap_request"
	NotifySkillSwapAccepted   = "skill_swap_accepted"
	NotifySkillSwapRejected   = "skill_swap_rejected"
	NotifyProjectUpdate       = "project_update"
	NotifySystem              = "system"
)

// Notification is created as a side effect of workflow transitions and
// delivered to the recipient's event stream.
type Notification struct {
	ID        string    `gorm:"type:char(36);primaryKey" json:"id"`
	UserID    string    `gorm:"type:char(36);index;not null" json:"user_id"`
	Title     string    `gorm:"size:200;not null" json:"title"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	Type      string    `gorm:"size:50;not null" json:"type"`
	RelatedID string    `gorm:"type:char(36)" json:"related_id"`
	IsRead    bool      `gorm:"default:false;index" json:"is_read"`
	ActionURL string    `gorm:"size:500" json:"action_url"`
	CreatedAt time.Time `json:"created_at"`
}

func (Notification) TableName() string { return "notifications" }

func (n *Notification) BeforeCreate(tx *gorm.DB) error {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	return nil
}

package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Application statuses (wire-format literals). A transition out of pending
// is irreversible.
const (
	ApplicationPending   = "pending"
	ApplicationAccepted  = "accepted"
	ApplicationRejected  = "rejected"
	ApplicationWithdrawn = "withdrawn"
)

// ProjectApplication is a user's request to join a project, reviewed by the
// project owner. At most one pending application exists per
// (project, applicant) pair, enforced by the unique index over Open: the
// marker is non-null exactly while the application is pending and null
// otherwise, so closed applications never collide.
type ProjectApplication struct {
	ID              string     `gorm:"type:char(36);primaryKey" json:"id"`
	ProjectID       string     `gorm:"type:char(36);uniqueIndex:idx_applicant_open;not null" json:"project_id"`
	Project         *Project   `gorm:"foreignKey:ProjectID" json:"project,omitempty"`
	ApplicantID     string     `gorm:"type:char(36);uniqueIndex:idx_applicant_open;not null" json:"applicant_id"`
	Applicant       *Profile   `gorm:"foreignKey:ApplicantID" json:"applicant,omitempty"`
	Message         string     `gorm:"type:text" json:"message"`
	SkillsOffered   []string   `gorm:"serializer:json" json:"skills_offered"`
	ExperienceLevel string     `gorm:"size:20;default:intermediate" json:"experience_level"` // beginner, intermediate, advanced
	Availability    string     `gorm:"size:200" json:"availability"`
	PortfolioURL    string     `gorm:"size:500" json:"portfolio_url"`
	Status          string     `gorm:"size:20;default:pending;index" json:"status"`
	Open            *bool      `gorm:"uniqueIndex:idx_applicant_open" json:"-"`
	ReviewedBy      string     `gorm:"type:char(36)" json:"reviewed_by"`
	ReviewMessage   string     `gorm:"type:text" json:"review_message"`
	CreatedAt       time.Time  `json:"created_at"`
	ReviewedAt      *time.Time `json:"reviewed_at"`
}

func (ProjectApplication) TableName() string { return "project_applications" }

func (a *ProjectApplication) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}

// BeforeSave keeps the uniqueness marker in sync with the status.
func (a *ProjectApplication) BeforeSave(tx *gorm.DB) error {
	if a.Status == ApplicationPending || a.Status == "" {
		open := true
		a.Open = &open
	} else {
		a.Open = nil
	}
	return nil
}

package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Project statuses. These literal strings are the wire format shared with
// existing stored data and must not change.
const (
	ProjectActive    = "active"
	ProjectCompleted = "completed"
	ProjectPaused    = "paused"
	ProjectCancelled = "cancelled"
)

// Project is a collaborative effort with a bounded team size and a public
// application process. CreatorID is immutable after creation. MemberCount is
// a maintained counter updated in the same transaction as membership writes.
type Project struct {
	ID                string    `gorm:"type:char(36);primaryKey" json:"id"`
	Title             string    `gorm:"size:200;not null" json:"title"`
	Description       string    `gorm:"type:text;not null" json:"description"`
	Category          string    `gorm:"size:100;not null;index" json:"category"`
	RequiredSkills    []string  `gorm:"serializer:json" json:"required_skills"`
	Tags              []string  `gorm:"serializer:json" json:"tags"`
	Status            string    `gorm:"size:20;default:active;index" json:"status"`
	CreatorID         string    `gorm:"type:char(36);index;not null" json:"creator_id"`
	Creator           *Profile  `gorm:"foreignKey:CreatorID" json:"creator,omitempty"`
	MaxMembers        int       `gorm:"default:5" json:"max_members"` // always >= 2
	MemberCount       int       `gorm:"default:0" json:"member_count"`
	DifficultyLevel   string    `gorm:"size:20;default:intermediate" json:"difficulty_level"` // beginner, intermediate, advanced
	EstimatedDuration string    `gorm:"size:100" json:"estimated_duration"`
	ProjectType       string    `gorm:"size:20;default:open_source" json:"project_type"` // open_source, startup, learning, freelance, other
	RepositoryURL     string    `gorm:"size:500" json:"repository_url"`
	DemoURL           string    `gorm:"size:500" json:"demo_url"`
	IsFeatured        bool      `gorm:"default:false" json:"is_featured"`
	ViewsCount        int       `gorm:"default:0" json:"views_count"`
	ApplicationsCount int       `gorm:"default:0" json:"applications_count"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func (Project) TableName() string { return "projects" }

func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

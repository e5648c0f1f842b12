package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Membership roles and statuses (wire-format literals).
const (
	RoleCreator = "creator"
	RoleAdmin   = "admin"
	RoleMember  = "member"

	MemberActive  = "active"
	MemberLeft    = "left"
	MemberRemoved = "removed"
)

// ProjectMember is an association between a user and a project with a role.
// Exactly one membership with role creator exists per project, created in the
// same transaction as the project itself. The unique index over Active holds
// only among live rows: the marker is non-null while status is active and
// null once the member left or was removed, so a past membership never
// blocks a rejoin.
type ProjectMember struct {
	ID                 string     `gorm:"type:char(36);primaryKey" json:"id"`
	ProjectID          string     `gorm:"type:char(36);uniqueIndex:idx_member_active;not null" json:"project_id"`
	Project            *Project   `gorm:"foreignKey:ProjectID" json:"project,omitempty"`
	UserID             string     `gorm:"type:char(36);uniqueIndex:idx_member_active;not null" json:"user_id"`
	User               *Profile   `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Role               string     `gorm:"size:20;default:member" json:"role"`
	Status             string     `gorm:"size:20;default:active;index" json:"status"`
	Active             *bool      `gorm:"uniqueIndex:idx_member_active" json:"-"`
	SkillsContributing []string   `gorm:"serializer:json" json:"skills_contributing"`
	ContributionLevel  string     `gorm:"size:20;default:regular" json:"contribution_level"` // minimal, regular, high, lead
	JoinedAt           time.Time  `gorm:"autoCreateTime" json:"joined_at"`
	LeftAt             *time.Time `json:"left_at"`
}

func (ProjectMember) TableName() string { return "project_members" }

func (m *ProjectMember) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

// BeforeSave keeps the live-row uniqueness marker in sync with the status.
func (m *ProjectMember) BeforeSave(tx *gorm.DB) error {
	if m.Status == MemberActive || m.Status == "" {
		active := true
		m.Active = &active
	} else {
		m.Active = nil
	}
	return nil
}

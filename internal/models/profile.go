package models

import (
	"time"
)

// Profile is a user's public identity. Its ID always equals the ID of the
// authenticated User it belongs to. Rating and the activity counters are
// derived aggregates and never written directly by the owner.
type Profile struct {
	ID                string    `gorm:"type:char(36);primaryKey" json:"id"`
	Username          string    `gorm:"uniqueIndex;size:100;not null" json:"username"`
	FullName          string    `gorm:"size:200" json:"full_name"`
	Bio               string    `gorm:"type:text" json:"bio"`
	AvatarURL         string    `gorm:"size:500" json:"avatar_url"`
	SkillsOffered     []string  `gorm:"serializer:json" json:"skills_offered"`
	SkillsLearning    []string  `gorm:"serializer:json" json:"skills_learning"`
	Location          string    `gorm:"size:200" json:"location"`
	Website           string    `gorm:"size:500" json:"website"`
	GithubURL         string    `gorm:"size:500" json:"github_url"`
	LinkedinURL       string    `gorm:"size:500" json:"linkedin_url"`
	Rating            float64   `gorm:"default:0" json:"rating"` // 0..5
	TotalRatings      int       `gorm:"default:0" json:"total_ratings"`
	ProjectsCompleted int       `gorm:"default:0" json:"projects_completed"`
	SkillsTaught      int       `gorm:"default:0" json:"skills_taught"`
	SkillsLearned     int       `gorm:"default:0" json:"skills_learned"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func (Profile) TableName() string { return "profiles" }

package services

import (
	"strings"

	"github.com/teamswap/teamswap/internal/models"
	"gorm.io/gorm"
)

type ProfileService struct {
	db *gorm.DB
}

func NewProfileService(db *gorm.DB) *ProfileService {
	return &ProfileService{db: db}
}

// UpdateProfileRequest carries the owner-editable profile fields. Rating and
// the activity counters are derived aggregates and deliberately absent.
type UpdateProfileRequest struct {
	Username       string    `json:"username"`
	FullName       *string   `json:"full_name"`
	Bio            *string   `json:"bio"`
	AvatarURL      *string   `json:"avatar_url"`
	Location       *string   `json:"location"`
	Website        *string   `json:"website"`
	GithubURL      *string   `json:"github_url"`
	LinkedinURL    *string   `json:"linkedin_url"`
	SkillsOffered  *[]string `json:"skills_offered"`
	SkillsLearning *[]string `json:"skills_learning"`
}

// GetByID returns a profile by id.
func (s *ProfileService) GetByID(id string) (*models.Profile, error) {
	var profile models.Profile
	if err := s.db.First(&profile, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// Update applies owner edits to their own profile.
func (s *ProfileService) Update(userID string, req *UpdateProfileRequest) (*models.Profile, error) {
	var profile models.Profile
	if err := s.db.First(&profile, "id = ?", userID).Error; err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})

	if username := strings.TrimSpace(req.Username); username != "" && username != profile.Username {
		var count int64
		s.db.Model(&models.Profile{}).Where("username = ? AND id <> ?", username, userID).Count(&count)
		if count > 0 {
			return nil, ErrUsernameTaken
		}
		updates["username"] = username
	}
	if req.FullName != nil {
		updates["full_name"] = *req.FullName
	}
	if req.Bio != nil {
		updates["bio"] = *req.Bio
	}
	if req.AvatarURL != nil {
		updates["avatar_url"] = *req.AvatarURL
	}
	if req.Location != nil {
		updates["location"] = *req.Location
	}
	if req.Website != nil {
		updates["website"] = *req.Website
	}
	if req.GithubURL != nil {
		updates["github_url"] = *req.GithubURL
	}
	if req.LinkedinURL != nil {
		updates["linkedin_url"] = *req.LinkedinURL
	}
	if req.SkillsOffered != nil {
		updates["skills_offered"] = *req.SkillsOffered
	}
	if req.SkillsLearning != nil {
		updates["skills_learning"] = *req.SkillsLearning
	}

	if len(updates) == 0 {
		return &profile, nil
	}

	if err := s.db.Model(&profile).Updates(updates).Error; err != nil {
		return nil, err
	}

	return s.GetByID(userID)
}

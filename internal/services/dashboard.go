package services

import (
	"github.com/teamswap/teamswap/internal/models"
	"gorm.io/gorm"
)

type DashboardService struct {
	db *gorm.DB
}

func NewDashboardService(db *gorm.DB) *DashboardService {
	return &DashboardService{db: db}
}

type DashboardStats struct {
	ProjectsOwned       int64 `json:"projects_owned"`
	ProjectsJoined      int64 `json:"projects_joined"`
	PendingApplications int64 `json:"pending_applications"`
	ActiveSwaps         int64 `json:"active_swaps"`
	CompletedSwaps      int64 `json:"completed_swaps"`
	UnreadNotifications int64 `json:"unread_notifications"`
}

type DashboardResponse struct {
	Stats   DashboardStats      `json:"stats"`
	Profile *models.Profile     `json:"profile"`
	Recent  []models.SkillSwap  `json:"recent_swaps"`
	Owned   []models.Project    `json:"owned_projects"`
}

// GetStats summarizes the caller's activity across projects and swaps.
func (s *DashboardService) GetStats(userID string) (*DashboardResponse, error) {
	var stats DashboardStats

	if err := s.db.Model(&models.Project{}).
		Where("creator_id = ? AND status = ?", userID, models.ProjectActive).
		Count(&stats.ProjectsOwned).Error; err != nil {
		return nil, err
	}

	if err := s.db.Model(&models.ProjectMember{}).
		Where("user_id = ? AND status = ? AND role <> ?", userID, models.MemberActive, models.RoleCreator).
		Count(&stats.ProjectsJoined).Error; err != nil {
		return nil, err
	}

	if err := s.db.Model(&models.ProjectApplication{}).
		Where("applicant_id = ? AND status = ?", userID, models.ApplicationPending).
		Count(&stats.PendingApplications).Error; err != nil {
		return nil, err
	}

	if err := s.db.Model(&models.SkillSwap{}).
		Where("(requester_id = ? OR responder_id = ?) AND status = ?", userID, userID, models.SwapAccepted).
		Count(&stats.ActiveSwaps).Error; err != nil {
		return nil, err
	}

	if err := s.db.Model(&models.SkillSwap{}).
		Where("(requester_id = ? OR responder_id = ?) AND status = ?", userID, userID, models.SwapCompleted).
		Count(&stats.CompletedSwaps).Error; err != nil {
		return nil, err
	}

	if err := s.db.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Count(&stats.UnreadNotifications).Error; err != nil {
		return nil, err
	}

	var profile models.Profile
	if err := s.db.First(&profile, "id = ?", userID).Error; err != nil {
		return nil, err
	}

	var recent []models.SkillSwap
	if err := s.db.Preload("Requester").Preload("Responder").
		Where("requester_id = ? OR responder_id = ?", userID, userID).
		Order("created_at DESC").
		Limit(5).
		Find(&recent).Error; err != nil {
		return nil, err
	}

	var owned []models.Project
	if err := s.db.Where("creator_id = ?", userID).
		Order("created_at DESC").
		Limit(5).
		Find(&owned).Error; err != nil {
		return nil, err
	}

	return &DashboardResponse{
		Stats:   stats,
		Profile: &profile,
		Recent:  recent,
		Owned:   owned,
	}, nil
}

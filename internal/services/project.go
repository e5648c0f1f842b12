package services

import (
	"errors"
	"time"

	"github.com/teamswap/teamswap/internal/discover"
	"github.com/teamswap/teamswap/internal/models"
	"github.com/teamswap/teamswap/internal/workflow"
	"github.com/teamswap/teamswap/pkg/logger"
	"gorm.io/gorm"
)

type ProjectService struct {
	db       *gorm.DB
	notifier *NotificationService
}

func NewProjectService(db *gorm.DB, notifier *NotificationService) *ProjectService {
	return &ProjectService{db: db, notifier: notifier}
}

type ProjectListRequest struct {
	Search   string `form:"search"`
	Category string `form:"category"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// ProjectView is a project with the caller's badges attached.
type ProjectView struct {
	models.Project
	discover.Badges
	CanApply bool `json:"can_apply"`
}

type ProjectListResponse struct {
	Total int            `json:"total"`
	Stats discover.Stats `json:"stats"`
	Items []ProjectView  `json:"items"`
}

type CreateProjectRequest struct {
	Title             string   `json:"title" binding:"required"`
	Description       string   `json:"description" binding:"required"`
	Category          string   `json:"category" binding:"required"`
	RequiredSkills    []string `json:"required_skills"`
	Tags              []string `json:"tags"`
	MaxMembers        int      `json:"max_members"`
	DifficultyLevel   string   `json:"difficulty_level" binding:"omitempty,oneof=beginner intermediate advanced"`
	EstimatedDuration string   `json:"estimated_duration"`
	ProjectType       string   `json:"project_type" binding:"omitempty,oneof=open_source startup learning freelance other"`
	RepositoryURL     string   `json:"repository_url"`
	DemoURL           string   `json:"demo_url"`
}

// List returns active projects matching the search and category filters,
// newest first, with the caller's badges computed from fresh membership and
// pending-application sets.
func (s *ProjectService) List(req *ProjectListRequest, callerID string) (*ProjectListResponse, error) {
	if req.Category != "" && !discover.ValidCategory(req.Category) {
		return nil, errors.New("unknown category")
	}

	var projects []models.Project
	if err := s.db.Preload("Creator").
		Where("status = ?", models.ProjectActive).
		Order("created_at DESC").
		Find(&projects).Error; err != nil {
		return nil, err
	}

	filtered := discover.FilterProjects(projects, req.Search, req.Category)

	memberSet, appliedSet, err := s.relationSets(callerID)
	if err != nil {
		return nil, err
	}

	total := len(filtered)
	page := paginate(filtered, req.Page, req.PageSize)

	items := make([]ProjectView, 0, len(page))
	for i := range page {
		p := &page[i]
		badges := discover.ProjectBadges(p, callerID, memberSet, appliedSet)
		items = append(items, ProjectView{
			Project:  *p,
			Badges:   badges,
			CanApply: discover.CanApply(p, badges),
		})
	}

	return &ProjectListResponse{
		Total: total,
		Stats: discover.ProjectStats(filtered),
		Items: items,
	}, nil
}

// paginate slices the filtered list. A zero page size returns everything;
// filtering happens in memory, so the slice must too.
func paginate(projects []models.Project, page, pageSize int) []models.Project {
	if pageSize <= 0 {
		return projects
	}
	if page < 1 {
		page = 1
	}
	start := (page - 1) * pageSize
	if start >= len(projects) {
		return nil
	}
	end := start + pageSize
	if end > len(projects) {
		end = len(projects)
	}
	return projects[start:end]
}

// relationSets loads the caller's active-membership and pending-application
// project-id sets. Computed per request so badges never go stale.
func (s *ProjectService) relationSets(callerID string) (memberSet, appliedSet map[string]bool, err error) {
	var memberIDs []string
	if err = s.db.Model(&models.ProjectMember{}).
		Where("user_id = ? AND status = ?", callerID, models.MemberActive).
		Pluck("project_id", &memberIDs).Error; err != nil {
		return nil, nil, err
	}

	var appliedIDs []string
	if err = s.db.Model(&models.ProjectApplication{}).
		Where("applicant_id = ? AND status = ?", callerID, models.ApplicationPending).
		Pluck("project_id", &appliedIDs).Error; err != nil {
		return nil, nil, err
	}

	memberSet = make(map[string]bool, len(memberIDs))
	for _, id := range memberIDs {
		memberSet[id] = true
	}
	appliedSet = make(map[string]bool, len(appliedIDs))
	for _, id := range appliedIDs {
		appliedSet[id] = true
	}
	return memberSet, appliedSet, nil
}

// Create inserts a project together with its creator membership in one
// transaction, so a project never exists without its creator member.
func (s *ProjectService) Create(req *CreateProjectRequest, creatorID string) (*models.Project, error) {
	if !discover.ValidCategory(req.Category) {
		return nil, errors.New("unknown category")
	}

	project, creator, err := workflow.CreateProject(workflow.NewProjectInput{
		Title:             req.Title,
		Description:       req.Description,
		Category:          req.Category,
		RequiredSkills:    req.RequiredSkills,
		Tags:              req.Tags,
		MaxMembers:        req.MaxMembers,
		DifficultyLevel:   req.DifficultyLevel,
		EstimatedDuration: req.EstimatedDuration,
		ProjectType:       req.ProjectType,
		RepositoryURL:     req.RepositoryURL,
		DemoURL:           req.DemoURL,
	}, creatorID)
	if err != nil {
		return nil, err
	}

	if err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(project).Error; err != nil {
			return err
		}
		creator.ProjectID = project.ID
		return tx.Create(creator).Error
	}); err != nil {
		return nil, err
	}

	return project, nil
}

// ProjectDetail is the full project view: members always, pending
// applications only when the caller owns the project.
type ProjectDetail struct {
	Project             models.Project              `json:"project"`
	Members             []models.ProjectMember      `json:"members"`
	PendingApplications []models.ProjectApplication `json:"pending_applications,omitempty"`
}

// GetDetail returns a project with its active members and, for the owner,
// its pending applications. Also counts the view.
func (s *ProjectService) GetDetail(id, callerID string) (*ProjectDetail, error) {
	var project models.Project
	if err := s.db.Preload("Creator").First(&project, "id = ?", id).Error; err != nil {
		return nil, err
	}

	if err := s.db.Model(&project).
		UpdateColumn("views_count", gorm.Expr("views_count + 1")).Error; err != nil {
		logger.Warn().Err(err).Str("project_id", id).Msg("view count bump failed")
	}

	detail := &ProjectDetail{Project: project}

	if err := s.db.Preload("User").
		Where("project_id = ? AND status = ?", id, models.MemberActive).
		Order("joined_at ASC").
		Find(&detail.Members).Error; err != nil {
		return nil, err
	}

	if project.CreatorID == callerID {
		if err := s.db.Preload("Applicant").
			Where("project_id = ? AND status = ?", id, models.ApplicationPending).
			Order("created_at ASC").
			Find(&detail.PendingApplications).Error; err != nil {
			return nil, err
		}
	}

	return detail, nil
}

type UpdateProjectStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=active completed paused cancelled"`
}

// UpdateStatus applies an owner-initiated project status transition and
// tells the other active members about it. Completing a project bumps every
// active member's projects_completed counter in the same transaction.
func (s *ProjectService) UpdateStatus(id, actorID, next string) (*models.Project, error) {
	var project models.Project
	var notes []*models.Notification

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&project, "id = ?", id).Error; err != nil {
			return err
		}

		if err := workflow.TransitionProject(&project, actorID, next); err != nil {
			return err
		}

		if err := tx.Model(&project).Update("status", project.Status).Error; err != nil {
			return err
		}

		var memberIDs []string
		if err := tx.Model(&models.ProjectMember{}).
			Where("project_id = ? AND status = ?", id, models.MemberActive).
			Pluck("user_id", &memberIDs).Error; err != nil {
			return err
		}

		if next == models.ProjectCompleted && len(memberIDs) > 0 {
			if err := tx.Model(&models.Profile{}).
				Where("id IN ?", memberIDs).
				UpdateColumn("projects_completed", gorm.Expr("projects_completed + 1")).Error; err != nil {
				return err
			}
		}

		notes = workflow.ProjectStatusNotifications(&project, actorID, memberIDs)
		for _, note := range notes {
			if err := s.notifier.CreateTx(tx, note); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}
	for _, note := range notes {
		s.notifier.Dispatch(note)
	}

	return &project, nil
}

// MemberCount returns the live active-member count for a project. Normal
// reads use the maintained counter; this recount backs the reconciler.
func (s *ProjectService) MemberCount(projectID string) (int64, error) {
	var count int64
	err := s.db.Model(&models.ProjectMember{}).
		Where("project_id = ? AND status = ?", projectID, models.MemberActive).
		Count(&count).Error
	return count, err
}

// touchUpdatedAt is a helper for guarded updates that bypass gorm hooks.
func touchUpdatedAt(updates map[string]interface{}) map[string]interface{} {
	updates["updated_at"] = time.Now()
	return updates
}

package services

import (
	"errors"
	"time"

	"github.com/teamswap/teamswap/internal/models"
	"github.com/teamswap/teamswap/internal/workflow"
	"gorm.io/gorm"
)

type ApplicationService struct {
	db       *gorm.DB
	notifier *NotificationService
}

func NewApplicationService(db *gorm.DB, notifier *NotificationService) *ApplicationService {
	return &ApplicationService{db: db, notifier: notifier}
}

type ApplyRequest struct {
	Message         string   `json:"message"`
	SkillsOffered   []string `json:"skills_offered"`
	ExperienceLevel string   `json:"experience_level" binding:"omitempty,oneof=beginner intermediate advanced"`
	Availability    string   `json:"availability"`
	PortfolioURL    string   `json:"portfolio_url"`
}

type ReviewRequest struct {
	Decision      string `json:"decision" binding:"required,oneof=accepted rejected"`
	ReviewMessage string `json:"review_message"`
}

// Apply creates a pending application for actorID on the project. The
// preconditions are re-checked against fresh state inside the transaction,
// and the unique pending marker on project_applications backstops the
// pre-read: when two applies race, one insert hits the index and is
// reported as the duplicate it is.
func (s *ApplicationService) Apply(projectID, actorID string, req *ApplyRequest) (*models.ProjectApplication, error) {
	var application *models.ProjectApplication
	var note *models.Notification

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var project models.Project
		if err := tx.First(&project, "id = ?", projectID).Error; err != nil {
			return err
		}

		state, err := applicantState(tx, projectID, actorID)
		if err != nil {
			return err
		}

		application, err = workflow.Apply(&project, actorID, state, workflow.ApplyInput{
			Message:         req.Message,
			SkillsOffered:   req.SkillsOffered,
			ExperienceLevel: req.ExperienceLevel,
			Availability:    req.Availability,
			PortfolioURL:    req.PortfolioURL,
		})
		if err != nil {
			return err
		}

		if err := tx.Create(application).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return workflow.ErrAlreadyApplied
			}
			return err
		}

		if err := tx.Model(&project).
			UpdateColumn("applications_count", gorm.Expr("applications_count + 1")).Error; err != nil {
			return err
		}

		var applicant models.Profile
		if err := tx.First(&applicant, "id = ?", actorID).Error; err != nil {
			return err
		}

		note = workflow.ApplicationNotification(&project, applicant.Username)
		return s.notifier.CreateTx(tx, note)
	})
	if err != nil {
		return nil, err
	}
	s.notifier.Dispatch(note)

	return application, nil
}

func applicantState(tx *gorm.DB, projectID, actorID string) (workflow.ApplicantState, error) {
	var state workflow.ApplicantState

	var memberCount int64
	if err := tx.Model(&models.ProjectMember{}).
		Where("project_id = ? AND user_id = ? AND status = ?", projectID, actorID, models.MemberActive).
		Count(&memberCount).Error; err != nil {
		return state, err
	}
	state.IsMember = memberCount > 0

	var pendingCount int64
	if err := tx.Model(&models.ProjectApplication{}).
		Where("project_id = ? AND applicant_id = ? AND status = ?", projectID, actorID, models.ApplicationPending).
		Count(&pendingCount).Error; err != nil {
		return state, err
	}
	state.HasPending = pendingCount > 0

	return state, nil
}

// Review applies the owner's accept or reject decision. The application
// stamp, the membership insert and the member counter bump happen in one
// transaction: there is no window where an application is accepted without
// its membership.
func (s *ApplicationService) Review(applicationID, reviewerID string, req *ReviewRequest) (*models.ProjectApplication, error) {
	var application models.ProjectApplication
	var note *models.Notification

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&application, "id = ?", applicationID).Error; err != nil {
			return err
		}

		var project models.Project
		if err := tx.First(&project, "id = ?", application.ProjectID).Error; err != nil {
			return err
		}

		var activeCount int64
		if err := tx.Model(&models.ProjectMember{}).
			Where("project_id = ? AND user_id = ? AND status = ?", project.ID, application.ApplicantID, models.MemberActive).
			Count(&activeCount).Error; err != nil {
			return err
		}

		effects, err := workflow.ReviewApplication(&project, &application, reviewerID, req.Decision, req.ReviewMessage, activeCount > 0, time.Now())
		if err != nil {
			return err
		}

		if err := tx.Save(&application).Error; err != nil {
			return err
		}

		if effects.NewMember != nil {
			if err := tx.Create(effects.NewMember).Error; err != nil {
				return err
			}
		}
		if effects.MemberCountDelta > 0 {
			// Guarded increment: the capacity check in the decision above
			// ran on a snapshot, so a concurrent accept of another
			// application may have taken the last slot since. Zero rows
			// affected means the project filled up and this accept must
			// roll back.
			result := tx.Model(&models.Project{}).
				Where("id = ? AND member_count < max_members", project.ID).
				UpdateColumn("member_count", gorm.Expr("member_count + ?", effects.MemberCountDelta))
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return workflow.ErrProjectFull
			}
		}
		if effects.Notification != nil {
			if err := s.notifier.CreateTx(tx, effects.Notification); err != nil {
				return err
			}
			note = effects.Notification
		}

		return nil
	})
	if err != nil {
		return nil, err
	}
	s.notifier.Dispatch(note)

	return &application, nil
}

// Withdraw retracts the caller's own pending application.
func (s *ApplicationService) Withdraw(applicationID, actorID string) (*models.ProjectApplication, error) {
	var application models.ProjectApplication

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&application, "id = ?", applicationID).Error; err != nil {
			return err
		}
		if err := workflow.WithdrawApplication(&application, actorID, time.Now()); err != nil {
			return err
		}
		return tx.Save(&application).Error
	})
	if err != nil {
		return nil, err
	}

	return &application, nil
}

// ListMine returns the caller's applications, newest first.
func (s *ApplicationService) ListMine(actorID string) ([]models.ProjectApplication, error) {
	var applications []models.ProjectApplication
	err := s.db.Preload("Project").
		Where("applicant_id = ?", actorID).
		Order("created_at DESC").
		Find(&applications).Error
	return applications, err
}

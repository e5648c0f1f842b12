package services

import (
	"github.com/robfig/cron/v3"
	"github.com/teamswap/teamswap/internal/models"
	"github.com/teamswap/teamswap/pkg/logger"
	"gorm.io/gorm"
)

// ReconcileService periodically repairs the two derived facts the write
// path maintains: the accepted-application/membership pairing and the
// member_count counter. A crash between general writes cannot happen
// inside a single transaction, but operator edits and old data can still
// drift, so the reconciler converges them back.
type ReconcileService struct {
	db            *gorm.DB
	cronScheduler *cron.Cron
}

func NewReconcileService(db *gorm.DB) *ReconcileService {
	return &ReconcileService{db: db}
}

// StartScheduler runs the reconcile pass on the given cron expression.
func (s *ReconcileService) StartScheduler(cronExpr string) error {
	s.cronScheduler = cron.New()
	_, err := s.cronScheduler.AddFunc(cronExpr, func() {
		s.Run()
	})
	if err != nil {
		return err
	}
	s.cronScheduler.Start()
	logger.Infof("[Reconcile] Scheduler started (cron: %s)", cronExpr)
	return nil
}

func (s *ReconcileService) StopScheduler() {
	if s.cronScheduler != nil {
		s.cronScheduler.Stop()
		logger.Infof("[Reconcile] Scheduler stopped")
	}
}

// Run executes one reconcile pass.
func (s *ReconcileService) Run() {
	if n, err := s.RepairMissingMemberships(); err != nil {
		logger.Errorf("[Reconcile] Membership repair failed: %v", err)
	} else if n > 0 {
		logger.Infof("[Reconcile] Inserted %d missing memberships", n)
	}

	if n, err := s.RepairMemberCounts(); err != nil {
		logger.Errorf("[Reconcile] Member count repair failed: %v", err)
	} else if n > 0 {
		logger.Infof("[Reconcile] Corrected member_count on %d projects", n)
	}
}

// RepairMissingMemberships inserts an active membership for every accepted
// application whose applicant has no membership row at all on the project.
// Applicants who joined and later left or were removed keep that state.
func (s *ReconcileService) RepairMissingMemberships() (int, error) {
	var orphaned []models.ProjectApplication
	err := s.db.
		Where("status = ?", models.ApplicationAccepted).
		Where("NOT EXISTS (SELECT 1 FROM project_members pm WHERE pm.project_id = project_applications.project_id AND pm.user_id = project_applications.applicant_id)").
		Find(&orphaned).Error
	if err != nil {
		return 0, err
	}

	repaired := 0
	for _, app := range orphaned {
		err := s.db.Transaction(func(tx *gorm.DB) error {
			member := &models.ProjectMember{
				ProjectID:          app.ProjectID,
				UserID:             app.ApplicantID,
				Role:               models.RoleMember,
				Status:             models.MemberActive,
				SkillsContributing: app.SkillsOffered,
			}
			if err := tx.Create(member).Error; err != nil {
				return err
			}
			return tx.Model(&models.Project{}).
				Where("id = ?", app.ProjectID).
				UpdateColumn("member_count", gorm.Expr("member_count + 1")).Error
		})
		if err != nil {
			logger.Errorf("[Reconcile] Failed to repair application %s: %v", app.ID, err)
			continue
		}
		repaired++
	}
	return repaired, nil
}

// RepairMemberCounts recomputes member_count from active memberships and
// fixes any project where the stored counter disagrees.
func (s *ReconcileService) RepairMemberCounts() (int, error) {
	var projects []models.Project
	if err := s.db.Find(&projects).Error; err != nil {
		return 0, err
	}

	fixed := 0
	for _, p := range projects {
		var actual int64
		err := s.db.Model(&models.ProjectMember{}).
			Where("project_id = ? AND status = ?", p.ID, models.MemberActive).
			Count(&actual).Error
		if err != nil {
			return fixed, err
		}
		if int(actual) == p.MemberCount {
			continue
		}
		if err := s.db.Model(&models.Project{}).
			Where("id = ?", p.ID).
			UpdateColumn("member_count", actual).Error; err != nil {
			return fixed, err
		}
		fixed++
	}
	return fixed, nil
}

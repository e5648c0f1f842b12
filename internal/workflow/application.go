package workflow

import (
	"fmt"
	"time"

	"github.com/teamswap/teamswap/internal/models"
)

// ApplicantState is the caller-observed state of the applicant relative to
// the project, loaded fresh inside the same transaction as the write.
type ApplicantState struct {
	IsMember   bool // holds an active membership
	HasPending bool // holds a pending application
}

// ApplyInput carries the optional attributes of a new application.
type ApplyInput struct {
	Message         string
	SkillsOffered   []string
	ExperienceLevel string
	Availability    string
	PortfolioURL    string
}

// Apply decides whether actorID may apply to the project and, if so,
// returns the pending application to insert. The caller must also increment
// the project's applications_count in the same transaction.
func Apply(p *models.Project, actorID string, st ApplicantState, in ApplyInput) (*models.ProjectApplication, error) {
	if p.Status != models.ProjectActive {
		return nil, ErrProjectNotActive
	}
	if p.CreatorID == actorID {
		return nil, ErrOwnerCannotApply
	}
	if st.IsMember {
		return nil, ErrAlreadyMember
	}
	if st.HasPending {
		return nil, ErrAlreadyApplied
	}
	if p.MemberCount >= p.MaxMembers {
		return nil, ErrProjectFull
	}

	if in.ExperienceLevel == "" {
		in.ExperienceLevel = "intermediate"
	}

	return &models.ProjectApplication{
		ProjectID:       p.ID,
		ApplicantID:     actorID,
		Message:         in.Message,
		SkillsOffered:   in.SkillsOffered,
		ExperienceLevel: in.ExperienceLevel,
		Availability:    in.Availability,
		PortfolioURL:    in.PortfolioURL,
		Status:          models.ApplicationPending,
	}, nil
}

// ApplicationNotification builds the owner-facing notification for a new
// application.
func ApplicationNotification(p *models.Project, applicantName string) *models.Notification {
	return &models.Notification{
		UserID:    p.CreatorID,
		Title:     "New project application",
		Message:   fmt.Sprintf("%s applied to join %q", applicantName, p.Title),
		Type:      models.NotifyProjectApplication,
		RelatedID: p.ID,
	}
}

// ReviewEffects lists the writes a review decision requires beyond the
// application row itself. All of them belong in one transaction.
type ReviewEffects struct {
	// NewMember is the membership to insert when the decision is accepted
	// and the applicant does not already hold an active membership.
	NewMember *models.ProjectMember
	// MemberCountDelta is applied to the project's maintained counter.
	MemberCountDelta int
	// Notification for the applicant.
	Notification *models.Notification
}

// ReviewApplication applies an owner decision to a pending application.
// Accepting stamps the application and produces the membership insert and
// counter bump; rejecting stamps the application only. Re-accepting an
// already-accepted application is a no-op rather than an error so the
// operation stays idempotent in effect.
func ReviewApplication(p *models.Project, app *models.ProjectApplication, reviewerID, decision, reviewMessage string, applicantAlreadyMember bool, now time.Time) (*ReviewEffects, error) {
	if p.CreatorID != reviewerID {
		return nil, ErrNotProjectOwner
	}
	if decision != models.ApplicationAccepted && decision != models.ApplicationRejected {
		return nil, ErrInvalidDecision
	}

	if app.Status != models.ApplicationPending {
		if app.Status == models.ApplicationAccepted && decision == models.ApplicationAccepted {
			return &ReviewEffects{}, nil
		}
		return nil, ErrAlreadyReviewed
	}

	if decision == models.ApplicationAccepted && p.MemberCount >= p.MaxMembers {
		return nil, ErrProjectFull
	}

	app.Status = decision
	app.ReviewedBy = reviewerID
	app.ReviewMessage = reviewMessage
	app.ReviewedAt = &now

	effects := &ReviewEffects{}
	if decision == models.ApplicationAccepted {
		if !applicantAlreadyMember {
			effects.NewMember = &models.ProjectMember{
				ProjectID:          app.ProjectID,
				UserID:             app.ApplicantID,
				Role:               models.RoleMember,
				Status:             models.MemberActive,
				SkillsContributing: app.SkillsOffered,
			}
			effects.MemberCountDelta = 1
		}
		effects.Notification = &models.Notification{
			UserID:    app.ApplicantID,
			Title:     "Application accepted",
			Message:   fmt.Sprintf("Your application to %q was accepted", p.Title),
			Type:      models.NotifyApplicationAccepted,
			RelatedID: p.ID,
		}
	} else {
		effects.Notification = &models.Notification{
			UserID:    app.ApplicantID,
			Title:     "Application rejected",
			Message:   fmt.Sprintf("Your application to %q was rejected", p.Title),
			Type:      models.NotifyApplicationRejected,
			RelatedID: p.ID,
		}
	}

	return effects, nil
}

// WithdrawApplication lets the applicant retract a still-pending application.
func WithdrawApplication(app *models.ProjectApplication, actorID string, now time.Time) error {
	if app.ApplicantID != actorID {
		return ErrNotApplicant
	}
	if app.Status != models.ApplicationPending {
		return ErrAlreadyReviewed
	}
	app.Status = models.ApplicationWithdrawn
	app.ReviewedAt = &now
	return nil
}

package workflow

import (
	"strings"

	"github.com/teamswap/teamswap/internal/models"
)

// NewProjectInput carries the creator-supplied project attributes.
type NewProjectInput struct {
	Title             string
	Description       string
	Category          string
	RequiredSkills    []string
	Tags              []string
	MaxMembers        int
	DifficultyLevel   string
	EstimatedDuration string
	ProjectType       string
	RepositoryURL     string
	DemoURL           string
}

// CreateProject validates the input and returns the project row together
// with its creator membership. The two rows must be written in a single
// transaction so a project never exists without its creator member.
func CreateProject(in NewProjectInput, creatorID string) (*models.Project, *models.ProjectMember, error) {
	if strings.TrimSpace(in.Title) == "" || strings.TrimSpace(in.Description) == "" || strings.TrimSpace(in.Category) == "" {
		return nil, nil, ErrMissingField
	}
	if in.MaxMembers == 0 {
		in.MaxMembers = 5
	}
	if in.MaxMembers < 2 {
		return nil, nil, ErrTooFewMembers
	}
	if in.DifficultyLevel == "" {
		in.DifficultyLevel = "intermediate"
	}
	if in.ProjectType == "" {
		in.ProjectType = "open_source"
	}

	project := &models.Project{
		Title:             strings.TrimSpace(in.Title),
		Description:       in.Description,
		Category:          in.Category,
		RequiredSkills:    in.RequiredSkills,
		Tags:              in.Tags,
		Status:            models.ProjectActive,
		CreatorID:         creatorID,
		MaxMembers:        in.MaxMembers,
		MemberCount:       1,
		DifficultyLevel:   in.DifficultyLevel,
		EstimatedDuration: in.EstimatedDuration,
		ProjectType:       in.ProjectType,
		RepositoryURL:     in.RepositoryURL,
		DemoURL:           in.DemoURL,
	}

	creator := &models.ProjectMember{
		UserID: creatorID,
		Role:   models.RoleCreator,
		Status: models.MemberActive,
	}

	return project, creator, nil
}

// projectTransitions lists the legal owner-initiated status moves.
// Completed and cancelled are terminal.
var projectTransitions = map[string][]string{
	models.ProjectActive: {models.ProjectPaused, models.ProjectCompleted, models.ProjectCancelled},
	models.ProjectPaused: {models.ProjectActive, models.ProjectCompleted, models.ProjectCancelled},
}

// TransitionProject applies an owner-initiated project status change.
func TransitionProject(p *models.Project, actorID, next string) error {
	if p.CreatorID != actorID {
		return ErrNotProjectOwner
	}
	for _, allowed := range projectTransitions[p.Status] {
		if allowed == next {
			p.Status = next
			return nil
		}
	}
	return ErrInvalidTransition
}

// ProjectStatusNotifications builds the member-facing notifications for a
// completed status change. The acting owner is skipped.
func ProjectStatusNotifications(p *models.Project, actorID string, memberIDs []string) []*models.Notification {
	var notes []*models.Notification
	for _, id := range memberIDs {
		if id == actorID {
			continue
		}
		notes = append(notes, &models.Notification{
			UserID:    id,
			Title:     "Project update",
			Message:   p.Title + " is now " + p.Status,
			Type:      models.NotifyProjectUpdate,
			RelatedID: p.ID,
		})
	}
	return notes
}

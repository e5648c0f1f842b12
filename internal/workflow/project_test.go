package workflow

import (
	"testing"

	"github.com/teamswap/teamswap/internal/models"
)

func TestCreateProject_Defaults(t *testing.T) {
	project, creator, err := CreateProject(NewProjectInput{
		Title:       "Recipe Sharing App",
		Description: "A community app for sharing recipes",
		Category:    "Web Development",
	}, "user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if project.Status != models.ProjectActive {
		t.Errorf("status = %q, want %q", project.Status, models.ProjectActive)
	}
	if project.MaxMembers != 5 {
		t.Errorf("max_members = %d, want 5", project.MaxMembers)
	}
	if project.MemberCount != 1 {
		t.Errorf("member_count = %d, want 1", project.MemberCount)
	}
	if project.DifficultyLevel != "intermediate" {
		t.Errorf("difficulty_level = %q, want intermediate", project.DifficultyLevel)
	}
	if creator.UserID != "user-1" || creator.Role != models.RoleCreator || creator.Status != models.MemberActive {
		t.Errorf("creator membership = %+v", creator)
	}
}

func TestCreateProject_Validation(t *testing.T) {
	tests := []struct {
		name    string
		input   NewProjectInput
		wantErr error
	}{
		{
			name:    "missing title",
			input:   NewProjectInput{Description: "d", Category: "Design"},
			wantErr: ErrMissingField,
		},
		{
			name:    "blank description",
			input:   NewProjectInput{Title: "t", Description: "   ", Category: "Design"},
			wantErr: ErrMissingField,
		},
		{
			name:    "max members below two",
			input:   NewProjectInput{Title: "t", Description: "d", Category: "Design", MaxMembers: 1},
			wantErr: ErrTooFewMembers,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := CreateProject(tt.input, "user-1")
			if err != tt.wantErr {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestTransitionProject(t *testing.T) {
	tests := []struct {
		name    string
		from    string
		to      string
		actor   string
		wantErr error
	}{
		{"active to paused", models.ProjectActive, models.ProjectPaused, "owner", nil},
		{"active to completed", models.ProjectActive, models.ProjectCompleted, "owner", nil},
		{"active to cancelled", models.ProjectActive, models.ProjectCancelled, "owner", nil},
		{"paused to active", models.ProjectPaused, models.ProjectActive, "owner", nil},
		{"completed is terminal", models.ProjectCompleted, models.ProjectActive, "owner", ErrInvalidTransition},
		{"cancelled is terminal", models.ProjectCancelled, models.ProjectActive, "owner", ErrInvalidTransition},
		{"active to active", models.ProjectActive, models.ProjectActive, "owner", ErrInvalidTransition},
		{"non-owner refused", models.ProjectActive, models.ProjectPaused, "stranger", ErrNotProjectOwner},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &models.Project{CreatorID: "owner", Status: tt.from}
			err := TransitionProject(p, tt.actor, tt.to)
			if err != tt.wantErr {
				t.Fatalf("error = %v, want %v", err, tt.wantErr)
			}
			if err == nil && p.Status != tt.to {
				t.Errorf("status = %q, want %q", p.Status, tt.to)
			}
			if err != nil && p.Status != tt.from {
				t.Errorf("status changed on refused transition: %q", p.Status)
			}
		})
	}
}

func TestProjectStatusNotifications(t *testing.T) {
	p := &models.Project{
		ID:        "proj-1",
		Title:     "Habit Tracker",
		CreatorID: "owner",
		Status:    models.ProjectPaused,
	}

	notes := ProjectStatusNotifications(p, "owner", []string{"owner", "alice", "bob"})

	if len(notes) != 2 {
		t.Fatalf("got %d notifications, want 2", len(notes))
	}
	for _, n := range notes {
		if n.UserID == "owner" {
			t.Error("the acting owner should not be notified")
		}
		if n.Type != models.NotifyProjectUpdate {
			t.Errorf("type = %q, want %q", n.Type, models.NotifyProjectUpdate)
		}
		if n.RelatedID != "proj-1" {
			t.Errorf("related id = %q", n.RelatedID)
		}
	}
}

func TestProjectStatusNotifications_OwnerOnlyProject(t *testing.T) {
	p := &models.Project{ID: "proj-1", Title: "Solo", CreatorID: "owner", Status: models.ProjectCompleted}

	if notes := ProjectStatusNotifications(p, "owner", []string{"owner"}); notes != nil {
		t.Errorf("expected no notifications, got %d", len(notes))
	}
}

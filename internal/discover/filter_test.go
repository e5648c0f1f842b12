package discover

import (
	"testing"

	"github.com/teamswap/teamswap/internal/models"
)

func sampleProjects() []models.Project {
	return []models.Project{
		{
			ID:             "p1",
			Title:          "Recipe Sharing App",
			Description:    "A web app for home cooks",
			Category:       "Web Development",
			CreatorID:      "owner-1",
			Status:         models.ProjectActive,
			RequiredSkills: []string{"React", "Go"},
			MaxMembers:     5,
			MemberCount:    2,
			IsFeatured:     true,
		},
		{
			ID:          "p2",
			Title:       "Churn Prediction",
			Description: "Customer churn model",
			Category:    "Data Science",
			CreatorID:   "owner-2",
			Status:      models.ProjectActive,
			MaxMembers:  4,
			MemberCount: 4,
		},
		{
			ID:          "p3",
			Title:       "Design System",
			Description: "Component library with Figma kits",
			Category:    "Design",
			CreatorID:   "owner-3",
			Status:      models.ProjectActive,
			MaxMembers:  3,
			MemberCount: 1,
		},
	}
}

func TestValidCategory(t *testing.T) {
	for _, c := range Categories {
		if !ValidCategory(c) {
			t.Errorf("ValidCategory(%q) = false", c)
		}
	}
	if ValidCategory("Gardening") {
		t.Error("unknown category accepted")
	}
	if ValidCategory("web development") {
		t.Error("category match must be exact, not case-folded")
	}
}

func TestFilterProjects(t *testing.T) {
	projects := sampleProjects()

	tests := []struct {
		name     string
		query    string
		category string
		wantIDs  []string
	}{
		{"empty passes all", "", "", []string{"p1", "p2", "p3"}},
		{"title substring", "recipe", "", []string{"p1"}},
		{"description substring", "churn", "", []string{"p2"}},
		{"required skill", "react", "", []string{"p1"}},
		{"case insensitive", "FIGMA", "", []string{"p3"}},
		{"category only", "", "Data Science", []string{"p2"}},
		{"category and query", "app", "Web Development", []string{"p1"}},
		{"no match", "blockchain", "", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterProjects(projects, tt.query, tt.category)
			if len(got) != len(tt.wantIDs) {
				t.Fatalf("got %d projects, want %d", len(got), len(tt.wantIDs))
			}
			for i, p := range got {
				if p.ID != tt.wantIDs[i] {
					t.Errorf("result[%d] = %s, want %s", i, p.ID, tt.wantIDs[i])
				}
			}
		})
	}
}

func TestFilterSwaps(t *testing.T) {
	swaps := []models.SkillSwap{
		{ID: "s1", OfferedSkill: "Go", RequestedSkill: "Figma", Message: "evening sessions"},
		{ID: "s2", OfferedSkill: "Spanish", RequestedSkill: "Guitar"},
	}

	got := FilterSwaps(swaps, "figma")
	if len(got) != 1 || got[0].ID != "s1" {
		t.Errorf("offered/requested match failed: %+v", got)
	}

	got = FilterSwaps(swaps, "evening")
	if len(got) != 1 || got[0].ID != "s1" {
		t.Errorf("message match failed: %+v", got)
	}

	if got = FilterSwaps(swaps, ""); len(got) != 2 {
		t.Errorf("empty query filtered: %d", len(got))
	}
}

func TestProjectBadges(t *testing.T) {
	p := &sampleProjects()[0]
	memberSet := map[string]bool{"p1": true}
	appliedSet := map[string]bool{}

	b := ProjectBadges(p, "owner-1", nil, nil)
	if !b.IsOwner || b.IsMember || b.IsApplied {
		t.Errorf("owner badges = %+v", b)
	}

	b = ProjectBadges(p, "alice", memberSet, appliedSet)
	if b.IsOwner || !b.IsMember {
		t.Errorf("member badges = %+v", b)
	}
}

func TestCanApply(t *testing.T) {
	base := sampleProjects()[0]

	tests := []struct {
		name   string
		mutate func(*models.Project)
		badges Badges
		want   bool
	}{
		{"eligible", func(p *models.Project) {}, Badges{}, true},
		{"owner", func(p *models.Project) {}, Badges{IsOwner: true}, false},
		{"member", func(p *models.Project) {}, Badges{IsMember: true}, false},
		{"applied", func(p *models.Project) {}, Badges{IsApplied: true}, false},
		{"full", func(p *models.Project) { p.MemberCount = p.MaxMembers }, Badges{}, false},
		{"paused", func(p *models.Project) { p.Status = models.ProjectPaused }, Badges{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := base
			tt.mutate(&p)
			if got := CanApply(&p, tt.badges); got != tt.want {
				t.Errorf("CanApply = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStats(t *testing.T) {
	st := ProjectStats(sampleProjects())
	if st.Total != 3 || st.TotalMembers != 7 || st.Featured != 1 {
		t.Errorf("project stats = %+v", st)
	}

	swaps := []models.SkillSwap{
		{Status: models.SwapPending, SwapType: models.SwapOneTime},
		{Status: models.SwapAccepted, SwapType: models.SwapMentorship},
		{Status: models.SwapAccepted, SwapType: models.SwapOneTime},
	}
	st = SwapStats(swaps)
	if st.Total != 3 || st.AcceptedSwaps != 2 || st.MentorshipSwap != 1 {
		t.Errorf("swap stats = %+v", st)
	}
}

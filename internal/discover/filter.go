// Package discover derives the browse views: free-text and category
// filtering, per-item badges for the calling user, and eligibility to apply.
// It is a pure projection over entity snapshots.
package discover

import (
	"strings"

	"github.com/teamswap/teamswap/internal/models"
)

// Categories is the fixed list a project category must come from.
var Categories = []string{
	"Web Development",
	"Mobile Development",
	"Data Science",
	"Design",
	"Marketing",
	"DevOps",
	"AI/ML",
	"Blockchain",
	"Other",
}

// ValidCategory reports whether c is one of the fixed categories.
func ValidCategory(c string) bool {
	for _, cat := range Categories {
		if cat == c {
			return true
		}
	}
	return false
}

// MatchesProject reports whether a project matches a free-text query:
// case-insensitive substring of title, description or any required skill.
// An empty query matches everything.
func MatchesProject(p *models.Project, query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	if strings.Contains(strings.ToLower(p.Title), q) || strings.Contains(strings.ToLower(p.Description), q) {
		return true
	}
	for _, skill := range p.RequiredSkills {
		if strings.Contains(strings.ToLower(skill), q) {
			return true
		}
	}
	return false
}

// MatchesSwap reports whether a swap matches a free-text query:
// case-insensitive substring of offered skill, requested skill or message.
func MatchesSwap(s *models.SkillSwap, query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(s.OfferedSkill), q) ||
		strings.Contains(strings.ToLower(s.RequestedSkill), q) ||
		strings.Contains(strings.ToLower(s.Message), q)
}

// FilterProjects applies the text query and optional category filter.
// An empty category passes everything through.
func FilterProjects(projects []models.Project, query, category string) []models.Project {
	out := make([]models.Project, 0, len(projects))
	for i := range projects {
		p := &projects[i]
		if category != "" && p.Category != category {
			continue
		}
		if !MatchesProject(p, query) {
			continue
		}
		out = append(out, *p)
	}
	return out
}

// FilterSwaps applies the text query to a swap list.
func FilterSwaps(swaps []models.SkillSwap, query string) []models.SkillSwap {
	out := make([]models.SkillSwap, 0, len(swaps))
	for i := range swaps {
		if MatchesSwap(&swaps[i], query) {
			out = append(out, swaps[i])
		}
	}
	return out
}

// Badges is the calling user's relationship to a project.
type Badges struct {
	IsOwner   bool `json:"is_owner"`
	IsMember  bool `json:"is_member"`
	IsApplied bool `json:"is_applied"`
}

// ProjectBadges computes badges from the caller's membership and pending-
// application project-id sets.
func ProjectBadges(p *models.Project, callerID string, memberSet, appliedSet map[string]bool) Badges {
	return Badges{
		IsOwner:   p.CreatorID == callerID,
		IsMember:  memberSet[p.ID],
		IsApplied: appliedSet[p.ID],
	}
}

// CanApply reports whether the caller may apply to the project: it must be
// active with open slots and the caller must hold no existing relationship.
func CanApply(p *models.Project, b Badges) bool {
	return p.Status == models.ProjectActive &&
		p.MemberCount < p.MaxMembers &&
		!b.IsOwner && !b.IsMember && !b.IsApplied
}

// Stats aggregates the filtered browse view.
type Stats struct {
	Total          int `json:"total"`
	TotalMembers   int `json:"total_members"`
	Featured       int `json:"featured"`
	AcceptedSwaps  int `json:"accepted_swaps"`
	MentorshipSwap int `json:"mentorship_swaps"`
}

// ProjectStats summarizes a filtered project list.
func ProjectStats(projects []models.Project) Stats {
	st := Stats{Total: len(projects)}
	for i := range projects {
		st.TotalMembers += projects[i].MemberCount
		if projects[i].IsFeatured {
			st.Featured++
		}
	}
	return st
}

// SwapStats summarizes a filtered swap list.
func SwapStats(swaps []models.SkillSwap) Stats {
	st := Stats{Total: len(swaps)}
	for i := range swaps {
		if swaps[i].Status == models.SwapAccepted {
			st.AcceptedSwaps++
		}
		if swaps[i].SwapType == models.SwapMentorship {
			st.MentorshipSwap++
		}
	}
	return st
}

package store

import (
	"roadmap-dashboard-api/internal/domain"
	"roadmap-dashboard-api/internal/scheduler"
)

// GoalFilter combines its set fields with AND; zero values match everything
type GoalFilter struct {
	Type    domain.GoalType
	Team    string
	Product string
	Quarter scheduler.Bucket
}

func (f GoalFilter) match(g domain.Goal) bool {
	return (f.Type == "" || g.Type == f.Type) &&
		(f.Team == "" || g.Team == f.Team) &&
		(f.Product == "" || g.Product == f.Product) &&
		(f.Quarter == "" || scheduler.BucketOf(g.StartDate) == f.Quarter)
}

// MemberFilter combines its set fields with AND
type MemberFilter struct {
	Type domain.MemberType
	Role string
	Team string
}

func (f MemberFilter) match(m domain.Member) bool {
	return (f.Type == "" || m.Type == f.Type) &&
		(f.Role == "" || m.Role == f.Role) &&
		(f.Team == "" || m.Team == f.Team)
}

// IdeaFilter combines its set fields with AND; Priority nil matches every priority
type IdeaFilter struct {
	Status   domain.IdeaStatus
	Type     domain.GoalType
	Priority *domain.Priority
	Product  string
}

func (f IdeaFilter) match(i domain.Idea) bool {
	return (f.Status == "" || i.Status == f.Status) &&
		(f.Type == "" || i.Type == f.Type) &&
		(f.Priority == nil || i.Priority == *f.Priority) &&
		(f.Product == "" || i.Product == f.Product)
}

func filter[T any](items []T, keep func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if keep(item) {
			out = append(out, item)
		}
	}
	return out
}

// ListGoals returns the goals matching f
func (s *Snapshot) ListGoals(f GoalFilter) []domain.Goal {
	return filter(s.goals, f.match)
}

// ListMembers returns the members matching f
func (s *Snapshot) ListMembers(f MemberFilter) []domain.Member {
	return filter(s.members, f.match)
}

// ListIdeas returns the ideas matching f
func (s *Snapshot) ListIdeas(f IdeaFilter) []domain.Idea {
	return filter(s.ideas, f.match)
}

// Package aggregate computes read-only dashboard summaries from a store snapshot.
package aggregate

import (
	"math"

	"roadmap-dashboard-api/internal/domain"
)

const (
	// CommonProduct is the shared product group, always reported even when empty
	CommonProduct = "공통"
	// UnassignedTeam labels goals without a team
	UnassignedTeam = "Unassigned"
	// OtherRole labels members without a role
	OtherRole = "Other"
)

// Stat is a mean progress and the number of goals behind it
type Stat struct {
	Value float64 `json:"value"`
	Count int     `json:"count"`
}

// Summary is the goal-side dashboard summary
type Summary struct {
	TotalGoals      int             `json:"totalGoals"`
	TotalMilestones int             `json:"totalMilestones"`
	TotalTasks      int             `json:"totalTasks"`
	OverallProgress int             `json:"overallProgress"`
	ByType          map[string]Stat `json:"byType"`
	ByTeam          map[string]Stat `json:"byTeam"`
	ByProduct       map[string]Stat `json:"byProduct"`
	Unassigned      Stat            `json:"unassigned"`
}

type accumulator struct {
	sum   int
	count int
}

func (a *accumulator) add(progress int) {
	a.sum += progress
	a.count++
}

func (a accumulator) stat() Stat {
	if a.count == 0 {
		return Stat{}
	}
	return Stat{Value: float64(a.sum) / float64(a.count), Count: a.count}
}

func (a accumulator) rounded() int {
	if a.count == 0 {
		return 0
	}
	return int(math.Round(float64(a.sum) / float64(a.count)))
}

func collect(m map[string]*accumulator) map[string]Stat {
	out := make(map[string]Stat, len(m))
	for k, a := range m {
		out[k] = a.stat()
	}
	return out
}

func bump(m map[string]*accumulator, key string, progress int) {
	a, ok := m[key]
	if !ok {
		a = &accumulator{}
		m[key] = a
	}
	a.add(progress)
}

// Summarize computes totals and grouped goal progress; each level's progress is taken as stored
func Summarize(goals []domain.Goal) Summary {
	byType := make(map[string]*accumulator)
	byTeam := make(map[string]*accumulator)
	byProduct := map[string]*accumulator{CommonProduct: {}}
	var overall, unassigned accumulator

	s := Summary{TotalGoals: len(goals)}
	for _, g := range goals {
		s.TotalMilestones += len(g.Milestones)
		for _, ms := range g.Milestones {
			s.TotalTasks += len(ms.Tasks)
		}

		overall.add(g.Progress)
		bump(byType, string(g.Type), g.Progress)

		team := g.Team
		if team == "" {
			team = UnassignedTeam
		}
		bump(byTeam, team, g.Progress)

		if g.Product == "" {
			unassigned.add(g.Progress)
		} else {
			bump(byProduct, g.Product, g.Progress)
		}
	}

	s.OverallProgress = overall.rounded()
	s.ByType = collect(byType)
	s.ByTeam = collect(byTeam)
	s.ByProduct = collect(byProduct)
	s.Unassigned = unassigned.stat()
	return s
}

// OverallProgress is the rounded mean goal progress, 0 when there are no goals
func OverallProgress(goals []domain.Goal) int {
	var a accumulator
	for _, g := range goals {
		a.add(g.Progress)
	}
	return a.rounded()
}

// RoleStat splits a role's headcount by member type
type RoleStat struct {
	Existing int `json:"existing"`
	New      int `json:"new"`
	Total    int `json:"total"`
}

// ProductGroup is the members staffed on one product
type ProductGroup struct {
	Count   int             `json:"count"`
	Members []domain.Member `json:"members"`
}

// MemberSummary is the staffing dashboard summary
type MemberSummary struct {
	Total      int                     `json:"total"`
	Existing   int                     `json:"existing"`
	New        int                     `json:"new"`
	ByRole     map[string]RoleStat     `json:"byRole"`
	ByProduct  map[string]ProductGroup `json:"byProduct"`
	Unassigned ProductGroup            `json:"unassigned"`
}

// SummarizeMembers computes headcount by type, role and product
func SummarizeMembers(members []domain.Member) MemberSummary {
	s := MemberSummary{
		Total:      len(members),
		ByRole:     make(map[string]RoleStat),
		ByProduct:  map[string]ProductGroup{CommonProduct: {Members: []domain.Member{}}},
		Unassigned: ProductGroup{Members: []domain.Member{}},
	}

	for _, m := range members {
		role := m.Role
		if role == "" {
			role = OtherRole
		}
		rs := s.ByRole[role]
		rs.Total++
		if m.Type == domain.MemberTypeNew {
			s.New++
			rs.New++
		} else {
			s.Existing++
			rs.Existing++
		}
		s.ByRole[role] = rs

		if m.Product == "" {
			s.Unassigned.Members = append(s.Unassigned.Members, m)
			s.Unassigned.Count++
			continue
		}
		g := s.ByProduct[m.Product]
		g.Members = append(g.Members, m)
		g.Count++
		s.ByProduct[m.Product] = g
	}
	return s
}

// IdeasByStatus counts ideas per status
func IdeasByStatus(ideas []domain.Idea) map[string]int {
	counts := make(map[string]int)
	for _, i := range ideas {
		counts[string(i.Status)]++
	}
	return counts
}

package aggregate

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roadmap-dashboard-api/internal/domain"
)

func TestSummarize_NoGoals(t *testing.T) {
	s := Summarize(nil)

	assert.Equal(t, 0, s.OverallProgress)
	assert.Empty(t, s.ByType)
	require.Contains(t, s.ByProduct, CommonProduct)
	assert.Equal(t, 0, s.ByProduct[CommonProduct].Count)
	assert.Equal(t, 0, s.Unassigned.Count)
}

func TestSummarize(t *testing.T) {
	goals := []domain.Goal{
		{Type: domain.GoalTypeIssue, Team: "Core", Product: "Web", Progress: 10,
			Milestones: []domain.Milestone{{Tasks: []domain.Task{{}, {}}}, {}}},
		{Type: domain.GoalTypeIssue, Team: "Core", Product: CommonProduct, Progress: 25},
		{Type: domain.GoalTypeFeature, Product: "", Progress: 100,
			Milestones: []domain.Milestone{{Tasks: []domain.Task{{}}}}},
	}

	s := Summarize(goals)

	assert.Equal(t, 3, s.TotalGoals)
	assert.Equal(t, 3, s.TotalMilestones)
	assert.Equal(t, 3, s.TotalTasks)
	assert.Equal(t, 45, s.OverallProgress)

	assert.Len(t, s.ByType, 2, "feedback is absent, not zero-filled")
	assert.Equal(t, Stat{Value: 17.5, Count: 2}, s.ByType["issue"])
	assert.Equal(t, Stat{Value: 100, Count: 1}, s.ByType["feature"])
	assert.NotContains(t, s.ByType, "feedback")

	assert.Equal(t, 2, s.ByTeam["Core"].Count)
	assert.Equal(t, 1, s.ByTeam[UnassignedTeam].Count)

	assert.Equal(t, Stat{Value: 10, Count: 1}, s.ByProduct["Web"])
	assert.Equal(t, Stat{Value: 25, Count: 1}, s.ByProduct[CommonProduct])
	assert.Equal(t, Stat{Value: 100, Count: 1}, s.Unassigned)
}

func TestSummarize_NoRollUp(t *testing.T) {
	goals := []domain.Goal{{
		Type:     domain.GoalTypeFeature,
		Progress: 0,
		Milestones: []domain.Milestone{{
			Progress: 100,
			Tasks:    []domain.Task{{Progress: 100}},
		}},
	}}
	assert.Equal(t, 0, Summarize(goals).OverallProgress)
}

func TestProperty_OverallProgressWithinRange(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("overall progress lies between min and max goal progress", prop.ForAll(
		func(progress []int) bool {
			goals := make([]domain.Goal, len(progress))
			lo, hi := 100, 0
			for i, p := range progress {
				goals[i] = domain.Goal{Progress: p}
				if p < lo {
					lo = p
				}
				if p > hi {
					hi = p
				}
			}
			got := OverallProgress(goals)
			if len(goals) == 0 {
				return got == 0
			}
			return got >= lo && got <= hi
		},
		gen.SliceOf(gen.IntRange(0, 100)),
	))

	properties.Property("summary overall progress matches the goal mean", prop.ForAll(
		func(progress []int) bool {
			goals := make([]domain.Goal, len(progress))
			for i, p := range progress {
				goals[i] = domain.Goal{Type: domain.GoalTypeFeature, Progress: p}
			}
			return Summarize(goals).OverallProgress == OverallProgress(goals)
		},
		gen.SliceOf(gen.IntRange(0, 100)),
	))

	properties.TestingRun(t)
}

func TestSummarizeMembers(t *testing.T) {
	members := []domain.Member{
		{Name: "A", Role: "Developer", Type: domain.MemberTypeExisting, Product: "Web"},
		{Name: "B", Role: "Developer", Type: domain.MemberTypeNew, Product: "Web"},
		{Name: "C", Role: "", Type: domain.MemberTypeExisting, Product: ""},
		{Name: "D", Role: "PM", Type: domain.MemberTypeNew, Product: CommonProduct},
	}

	s := SummarizeMembers(members)

	assert.Equal(t, 4, s.Total)
	assert.Equal(t, 2, s.Existing)
	assert.Equal(t, 2, s.New)
	assert.Equal(t, RoleStat{Existing: 1, New: 1, Total: 2}, s.ByRole["Developer"])
	assert.Equal(t, RoleStat{Existing: 1, Total: 1}, s.ByRole[OtherRole])
	assert.Equal(t, RoleStat{New: 1, Total: 1}, s.ByRole["PM"])

	assert.Equal(t, 2, s.ByProduct["Web"].Count)
	assert.Len(t, s.ByProduct["Web"].Members, 2)
	assert.Equal(t, 1, s.ByProduct[CommonProduct].Count)
	assert.Equal(t, 1, s.Unassigned.Count)
	assert.Equal(t, "C", s.Unassigned.Members[0].Name)
}

func TestSummarizeMembers_Empty(t *testing.T) {
	s := SummarizeMembers(nil)
	require.Contains(t, s.ByProduct, CommonProduct)
	assert.Equal(t, 0, s.ByProduct[CommonProduct].Count)
	assert.NotNil(t, s.ByProduct[CommonProduct].Members)
	assert.Empty(t, s.ByRole)
}

func TestIdeasByStatus(t *testing.T) {
	counts := IdeasByStatus([]domain.Idea{
		{Status: domain.IdeaStatusOpen},
		{Status: domain.IdeaStatusOpen},
		{Status: domain.IdeaStatusConverted},
	})
	assert.Equal(t, map[string]int{"open": 2, "converted": 1}, counts)
}

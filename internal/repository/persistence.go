package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"roadmap-dashboard-api/internal/domain"
)

// Persistence adapts the repositories to the store's read-and-apply boundary
type Persistence struct {
	Goals      GoalRepository
	Milestones MilestoneRepository
	Tasks      TaskRepository
	Members    MemberRepository
	Ideas      IdeaRepository
}

// NewPersistence wires every repository onto db
func NewPersistence(db *gorm.DB) *Persistence {
	return &Persistence{
		Goals:      NewGoalRepository(db),
		Milestones: NewMilestoneRepository(db),
		Tasks:      NewTaskRepository(db),
		Members:    NewMemberRepository(db),
		Ideas:      NewIdeaRepository(db),
	}
}

func (p *Persistence) ListGoals(ctx context.Context, year int) ([]domain.Goal, error) {
	return p.Goals.FindByYear(ctx, year)
}

func (p *Persistence) ListMembers(ctx context.Context, year int) ([]domain.Member, error) {
	return p.Members.FindByYear(ctx, year)
}

func (p *Persistence) ListIdeas(ctx context.Context, year int) ([]domain.Idea, error) {
	return p.Ideas.FindByYear(ctx, year)
}

// Apply routes a mutation to the repository owning its kind
func (p *Persistence) Apply(ctx context.Context, m domain.Mutation) error {
	switch m.Kind {
	case domain.KindGoal:
		return p.Goals.Update(ctx, m.ID, m.Fields)
	case domain.KindMilestone:
		return p.Milestones.Update(ctx, m.ID, m.Fields)
	case domain.KindTask:
		return p.Tasks.Update(ctx, m.ID, m.Fields)
	case domain.KindMember:
		return p.Members.Update(ctx, m.ID, m.Fields)
	case domain.KindIdea:
		return p.Ideas.Update(ctx, m.ID, m.Fields)
	}
	return fmt.Errorf("unsupported mutation kind %q", m.Kind)
}

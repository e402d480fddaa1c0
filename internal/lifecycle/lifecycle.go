// Package lifecycle governs idea status transitions and idea-to-goal promotion.
package lifecycle

import (
	"fmt"

	"gorm.io/datatypes"

	"roadmap-dashboard-api/internal/domain"
)

// transitions lists the legal next states; rejected and converted are terminal
var transitions = map[domain.IdeaStatus][]domain.IdeaStatus{
	domain.IdeaStatusOpen:     {domain.IdeaStatusApproved, domain.IdeaStatusRejected},
	domain.IdeaStatusApproved: {domain.IdeaStatusConverted},
}

// CanTransition reports whether from -> to is legal
func CanTransition(from, to domain.IdeaStatus) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no transition leaves s
func IsTerminal(s domain.IdeaStatus) bool {
	return len(transitions[s]) == 0
}

// Transition decides the status update moving idea to the target status
func Transition(idea domain.Idea, to domain.IdeaStatus) (domain.Mutation, error) {
	if !CanTransition(idea.Status, to) {
		return domain.Mutation{}, fmt.Errorf("%w: idea %d cannot go from %s to %s",
			domain.ErrInvalidTransition, idea.ID, idea.Status, to)
	}
	return domain.Mutation{
		Kind:   domain.KindIdea,
		ID:     idea.ID,
		Fields: map[string]interface{}{"status": string(to)},
	}, nil
}

// Approve moves an open idea to approved
func Approve(idea domain.Idea) (domain.Mutation, error) {
	return Transition(idea, domain.IdeaStatusApproved)
}

// Reject moves an open idea to rejected
func Reject(idea domain.Idea) (domain.Mutation, error) {
	return Transition(idea, domain.IdeaStatusRejected)
}

// Convert checks that idea may be converted and builds the goal to create.
// The goal must be durably created before the idea is marked converted.
func Convert(idea domain.Idea) (*domain.Goal, error) {
	if !CanTransition(idea.Status, domain.IdeaStatusConverted) {
		return nil, fmt.Errorf("%w: idea %d is %s, only approved ideas can be converted",
			domain.ErrInvalidTransition, idea.ID, idea.Status)
	}
	return GoalFromIdea(idea), nil
}

// GoalFromIdea copies the fields an idea carries into a fresh goal
func GoalFromIdea(idea domain.Idea) *domain.Goal {
	return &domain.Goal{
		Type:        idea.Type,
		Title:       idea.Title,
		Description: idea.Description,
		Product:     idea.Product,
		Year:        idea.Year,
		Progress:    0,
		Tags:        datatypes.JSONSlice[string]{},
	}
}

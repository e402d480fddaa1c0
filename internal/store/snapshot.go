package store

import (
	"roadmap-dashboard-api/internal/domain"
)

type milestonePos struct {
	goal      int
	milestone int
}

type taskPos struct {
	milestonePos
	task int
}

// Snapshot is an immutable view of one year's entities with lookup indexes
type Snapshot struct {
	year    int
	loaded  bool
	goals   []domain.Goal
	members []domain.Member
	ideas   []domain.Idea

	goalIndex      map[uint]int
	milestoneIndex map[uint]milestonePos
	taskIndex      map[uint]taskPos
}

func newSnapshot(year int, goals []domain.Goal, members []domain.Member, ideas []domain.Idea) *Snapshot {
	s := &Snapshot{
		year:           year,
		goals:          goals,
		members:        members,
		ideas:          ideas,
		goalIndex:      make(map[uint]int, len(goals)),
		milestoneIndex: make(map[uint]milestonePos),
		taskIndex:      make(map[uint]taskPos),
	}
	for gi, g := range goals {
		s.goalIndex[g.ID] = gi
		for mi, ms := range g.Milestones {
			pos := milestonePos{goal: gi, milestone: mi}
			s.milestoneIndex[ms.ID] = pos
			for ti, t := range ms.Tasks {
				s.taskIndex[t.ID] = taskPos{milestonePos: pos, task: ti}
			}
		}
	}
	return s
}

// Loaded reports whether the snapshot came from persistence
func (s *Snapshot) Loaded() bool { return s.loaded }

// Year is the year the snapshot was loaded for
func (s *Snapshot) Year() int { return s.year }

// Goals returns the goals with nested milestones and tasks; callers must not modify them
func (s *Snapshot) Goals() []domain.Goal { return s.goals }

// Members returns the members; callers must not modify them
func (s *Snapshot) Members() []domain.Member { return s.members }

// Ideas returns the ideas; callers must not modify them
func (s *Snapshot) Ideas() []domain.Idea { return s.ideas }

// FindGoal returns the goal with id
func (s *Snapshot) FindGoal(id uint) (domain.Goal, bool) {
	gi, ok := s.goalIndex[id]
	if !ok {
		return domain.Goal{}, false
	}
	return s.goals[gi], true
}

// FindMilestone returns the milestone only when it belongs to goalID
func (s *Snapshot) FindMilestone(goalID, milestoneID uint) (domain.Milestone, bool) {
	pos, ok := s.milestoneIndex[milestoneID]
	if !ok || s.goals[pos.goal].ID != goalID {
		return domain.Milestone{}, false
	}
	return s.goals[pos.goal].Milestones[pos.milestone], true
}

// FindTaskByMilestone returns the task only when it belongs to milestoneID
func (s *Snapshot) FindTaskByMilestone(milestoneID, taskID uint) (domain.Task, bool) {
	pos, ok := s.taskIndex[taskID]
	if !ok {
		return domain.Task{}, false
	}
	ms := s.goals[pos.goal].Milestones[pos.milestone]
	if ms.ID != milestoneID {
		return domain.Task{}, false
	}
	return ms.Tasks[pos.task], true
}

// GoalOfMilestone resolves a milestone's parent goal
func (s *Snapshot) GoalOfMilestone(milestoneID uint) (uint, bool) {
	pos, ok := s.milestoneIndex[milestoneID]
	if !ok {
		return 0, false
	}
	return s.goals[pos.goal].ID, true
}

// MilestoneOfTask resolves a task's parent milestone
func (s *Snapshot) MilestoneOfTask(taskID uint) (uint, bool) {
	pos, ok := s.taskIndex[taskID]
	if !ok {
		return 0, false
	}
	return s.goals[pos.goal].Milestones[pos.milestone].ID, true
}

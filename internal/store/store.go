// Package store holds the in-memory planning snapshot for the active year.
// Every successful write is followed by a full reload; the snapshot is never patched.
package store

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"go.uber.org/zap"

	"roadmap-dashboard-api/internal/domain"
)

// Persistence is the boundary the store reads from and writes through
type Persistence interface {
	ListGoals(ctx context.Context, year int) ([]domain.Goal, error)
	ListMembers(ctx context.Context, year int) ([]domain.Member, error)
	ListIdeas(ctx context.Context, year int) ([]domain.Idea, error)
	Apply(ctx context.Context, m domain.Mutation) error
}

// RefreshObserver is notified after each reload attempt
type RefreshObserver interface {
	IncrementStoreRefreshFailure()
}

// EntityStore is the session object that owns the active year and its snapshot.
// Reloads replace the snapshot atomically; the last completed reload wins.
type EntityStore struct {
	persistence Persistence
	logger      *zap.Logger
	observer    RefreshObserver

	year     atomic.Int64
	snapshot atomic.Pointer[Snapshot]
}

// New creates a store scoped to year with an empty snapshot; call LoadYear to populate it
func New(p Persistence, year int, logger *zap.Logger, observer RefreshObserver) *EntityStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &EntityStore{persistence: p, logger: logger, observer: observer}
	s.year.Store(int64(year))
	s.snapshot.Store(&Snapshot{year: year})
	return s
}

// Year is the active year
func (s *EntityStore) Year() int {
	return int(s.year.Load())
}

// Snapshot returns the current snapshot
func (s *EntityStore) Snapshot() *Snapshot {
	return s.snapshot.Load()
}

// LoadYear replaces the snapshot wholesale with year's entities and makes year active.
// On failure the previous snapshot and year are kept.
func (s *EntityStore) LoadYear(ctx context.Context, year int) error {
	goals, err := s.persistence.ListGoals(ctx, year)
	if err != nil {
		return s.refreshFailed(year, fmt.Errorf("load goals: %w", err))
	}
	members, err := s.persistence.ListMembers(ctx, year)
	if err != nil {
		return s.refreshFailed(year, fmt.Errorf("load members: %w", err))
	}
	ideas, err := s.persistence.ListIdeas(ctx, year)
	if err != nil {
		return s.refreshFailed(year, fmt.Errorf("load ideas: %w", err))
	}

	snap := newSnapshot(year, goals, members, ideas)
	snap.loaded = true
	s.snapshot.Store(snap)
	s.year.Store(int64(year))

	s.logger.Debug("Entity store loaded",
		zap.Int("year", year),
		zap.Int("goals", len(goals)),
		zap.Int("members", len(members)),
		zap.Int("ideas", len(ideas)),
	)
	return nil
}

func (s *EntityStore) refreshFailed(year int, err error) error {
	if s.observer != nil {
		s.observer.IncrementStoreRefreshFailure()
	}
	s.logger.Warn("Entity store reload failed, keeping last snapshot",
		zap.Int("year", year),
		zap.Error(err),
	)
	return err
}

// Scope switches the active year, reloading only when it changes
func (s *EntityStore) Scope(ctx context.Context, year int) error {
	if snap := s.Snapshot(); snap.Loaded() && snap.Year() == year {
		return nil
	}
	return s.LoadYear(ctx, year)
}

// Refresh reloads the active year
func (s *EntityStore) Refresh(ctx context.Context) error {
	return s.LoadYear(ctx, s.Year())
}

// Apply executes a decided mutation and reloads
func (s *EntityStore) Apply(ctx context.Context, m domain.Mutation) error {
	return s.Commit(ctx, func(ctx context.Context) error {
		return s.persistence.Apply(ctx, m)
	})
}

// Commit runs write against persistence and reloads on success.
// A failed write leaves the snapshot untouched; a NotFound write also triggers a reload
// so the snapshot stops showing the missing entity.
func (s *EntityStore) Commit(ctx context.Context, write func(ctx context.Context) error) error {
	if err := write(ctx); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			if rerr := s.Refresh(ctx); rerr != nil {
				s.logger.Warn("Refresh after not-found write failed", zap.Error(rerr))
			}
		}
		return err
	}
	return s.Refresh(ctx)
}

// FindGoal looks up a goal in the current snapshot
func (s *EntityStore) FindGoal(id uint) (domain.Goal, bool) {
	return s.Snapshot().FindGoal(id)
}

// FindMilestone looks up a milestone under goalID in the current snapshot
func (s *EntityStore) FindMilestone(goalID, milestoneID uint) (domain.Milestone, bool) {
	return s.Snapshot().FindMilestone(goalID, milestoneID)
}

// FindTaskByMilestone looks up a task under milestoneID in the current snapshot
func (s *EntityStore) FindTaskByMilestone(milestoneID, taskID uint) (domain.Task, bool) {
	return s.Snapshot().FindTaskByMilestone(milestoneID, taskID)
}

// ListGoals filters the current snapshot's goals
func (s *EntityStore) ListGoals(f GoalFilter) []domain.Goal {
	return s.Snapshot().ListGoals(f)
}

// ListMembers filters the current snapshot's members
func (s *EntityStore) ListMembers(f MemberFilter) []domain.Member {
	return s.Snapshot().ListMembers(f)
}

// ListIdeas filters the current snapshot's ideas
func (s *EntityStore) ListIdeas(f IdeaFilter) []domain.Idea {
	return s.Snapshot().ListIdeas(f)
}

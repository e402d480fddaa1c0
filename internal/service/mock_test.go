package service

import (
	"context"
	"sync"

	"roadmap-dashboard-api/internal/domain"
)

// MockGoalRepository is a mock implementation of GoalRepository
type MockGoalRepository struct {
	CreateFunc     func(ctx context.Context, goal *domain.Goal) error
	FindByIDFunc   func(ctx context.Context, id uint) (*domain.Goal, error)
	FindByYearFunc func(ctx context.Context, year int) ([]domain.Goal, error)
	UpdateFunc     func(ctx context.Context, id uint, fields map[string]interface{}) error
	DeleteFunc     func(ctx context.Context, id uint) error
}

func (m *MockGoalRepository) Create(ctx context.Context, goal *domain.Goal) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, goal)
	}
	return nil
}

func (m *MockGoalRepository) FindByID(ctx context.Context, id uint) (*domain.Goal, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockGoalRepository) FindByYear(ctx context.Context, year int) ([]domain.Goal, error) {
	if m.FindByYearFunc != nil {
		return m.FindByYearFunc(ctx, year)
	}
	return []domain.Goal{}, nil
}

func (m *MockGoalRepository) Update(ctx context.Context, id uint, fields map[string]interface{}) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, fields)
	}
	return nil
}

func (m *MockGoalRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// publishedEvent is one call recorded by RecordingPublisher
type publishedEvent struct {
	RoutingKey string
	Payload    any
}

// RecordingPublisher records published events
type RecordingPublisher struct {
	mu     sync.Mutex
	events []publishedEvent
	Err    error
}

func (p *RecordingPublisher) Publish(_ context.Context, routingKey string, payload any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, publishedEvent{RoutingKey: routingKey, Payload: payload})
	return p.Err
}

func (p *RecordingPublisher) Close() error { return nil }

func (p *RecordingPublisher) Keys() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	keys := make([]string, 0, len(p.events))
	for _, e := range p.events {
		keys = append(keys, e.RoutingKey)
	}
	return keys
}

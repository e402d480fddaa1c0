// Package service implements the planning use cases on top of the entity store and repositories.
package service

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"roadmap-dashboard-api/internal/domain"
	"roadmap-dashboard-api/internal/event"
	"roadmap-dashboard-api/internal/metrics"
	"roadmap-dashboard-api/internal/response"
	"roadmap-dashboard-api/internal/store"
)

// Planning is the effect context shared by the services: the session store,
// the metrics sink and the event publisher
type Planning struct {
	store     *store.EntityStore
	metrics   *metrics.Metrics
	publisher event.Publisher
	logger    *zap.Logger
}

// NewPlanning creates the shared effect context; nil metrics, publisher or logger disable them
func NewPlanning(st *store.EntityStore, m *metrics.Metrics, publisher event.Publisher, logger *zap.Logger) *Planning {
	if publisher == nil {
		publisher = event.NoopPublisher{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Planning{store: st, metrics: m, publisher: publisher, logger: logger}
}

// Store returns the session store
func (p *Planning) Store() *store.EntityStore {
	return p.store
}

// scope makes year active and returns its snapshot; year 0 keeps the active year
func (p *Planning) scope(ctx context.Context, year int) (*store.Snapshot, error) {
	if year == 0 {
		year = p.store.Year()
	}
	if err := p.store.Scope(ctx, year); err != nil {
		return nil, mapError(err, "Failed to load planning data")
	}
	return p.store.Snapshot(), nil
}

// commit runs write and refreshes the store, mapping failures to AppError
func (p *Planning) commit(ctx context.Context, write func(ctx context.Context) error, failure string) error {
	if err := p.store.Commit(ctx, write); err != nil {
		return mapError(err, failure)
	}
	return nil
}

// apply executes a decided mutation through the store
func (p *Planning) apply(ctx context.Context, m domain.Mutation, failure string) error {
	if err := p.store.Apply(ctx, m); err != nil {
		return mapError(err, failure)
	}
	return nil
}

// lookupFailed maps a failed read; a miss also reloads the store so stale entries disappear
func (p *Planning) lookupFailed(ctx context.Context, err error, failure string) error {
	if errors.Is(err, domain.ErrNotFound) {
		if rerr := p.store.Refresh(ctx); rerr != nil {
			p.logger.Warn("Refresh after lookup miss failed", zap.Error(rerr))
		}
	}
	return mapError(err, failure)
}

// publish emits an event after a committed write; failures are logged and counted only
func (p *Planning) publish(ctx context.Context, routingKey string, payload any) {
	if err := p.publisher.Publish(ctx, routingKey, payload); err != nil {
		p.metrics.IncrementEventPublishError(routingKey)
		p.logger.Warn("Failed to publish planning event",
			zap.String("routing_key", routingKey),
			zap.Error(err),
		)
	}
}

// mapError converts domain and persistence errors to AppError
func mapError(err error, failure string) error {
	var appErr *response.AppError
	switch {
	case errors.As(err, &appErr):
		return appErr
	case errors.Is(err, domain.ErrNotFound):
		return response.NewAppError(response.ErrCodeNotFound, notFoundMessage(err), err.Error())
	case errors.Is(err, domain.ErrInvalidTransition):
		return response.NewAppError(response.ErrCodeInvalidTransition, "Invalid idea status transition", err.Error())
	case errors.Is(err, domain.ErrValidation):
		return response.NewAppError(response.ErrCodeValidation, "Validation failed", err.Error())
	default:
		return response.NewAppError(response.ErrCodePersistenceUnavailable, failure, err.Error())
	}
}

func notFoundMessage(err error) string {
	for _, kind := range []domain.EntityKind{
		domain.KindComment, domain.KindIdea, domain.KindMember,
		domain.KindTask, domain.KindMilestone, domain.KindGoal,
	} {
		if strings.HasPrefix(err.Error(), string(kind)+" ") {
			return entityLabel(kind) + " not found"
		}
	}
	return "Resource not found"
}

func entityLabel(kind domain.EntityKind) string {
	switch kind {
	case domain.KindGoal:
		return "Goal"
	case domain.KindMilestone:
		return "Milestone"
	case domain.KindTask:
		return "Task"
	case domain.KindMember:
		return "Member"
	case domain.KindIdea:
		return "Idea"
	case domain.KindComment:
		return "Comment"
	}
	return "Resource"
}

func validationError(err error) error {
	return response.NewAppError(response.ErrCodeValidation, "Validation failed", err.Error())
}

// Package event publishes planning domain events to a topic exchange.
package event

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Routing keys for planning events
const (
	GoalCreated      = "planning.goal.created"
	GoalRelocated    = "planning.goal.relocated"
	IdeaTransitioned = "planning.idea.transitioned"
	IdeaConverted    = "planning.idea.converted"
	ProgressUpdated  = "planning.progress.updated"
)

// Envelope is the message body written to the exchange
type Envelope struct {
	ID         string          `json:"id"`
	Type       string          `json:"type"`
	OccurredAt time.Time       `json:"occurredAt"`
	Data       json.RawMessage `json:"data"`
}

// NewEnvelope wraps payload with a fresh id
func NewEnvelope(eventType string, payload any) (Envelope, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return Envelope{}, err
	}
	return Envelope{
		ID:         uuid.NewString(),
		Type:       eventType,
		OccurredAt: time.Now().UTC(),
		Data:       data,
	}, nil
}

// Publisher sends an event under a routing key
type Publisher interface {
	Publish(ctx context.Context, routingKey string, payload any) error
	Close() error
}

// NoopPublisher drops every event; used when no broker is configured
type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, string, any) error { return nil }
func (NoopPublisher) Close() error                               { return nil }

// GoalRelocatedPayload is published after a board drop
type GoalRelocatedPayload struct {
	GoalID    uint    `json:"goalId"`
	Year      int     `json:"year"`
	Bucket    string  `json:"bucket"`
	StartDate *string `json:"startDate"`
	EndDate   *string `json:"endDate"`
}

// GoalCreatedPayload is published after a goal is created directly or from an idea
type GoalCreatedPayload struct {
	GoalID uint   `json:"goalId"`
	Year   int    `json:"year"`
	Type   string `json:"type"`
	Title  string `json:"title"`
}

// IdeaTransitionedPayload is published after approve or reject
type IdeaTransitionedPayload struct {
	IdeaID uint   `json:"ideaId"`
	From   string `json:"from"`
	To     string `json:"to"`
}

// IdeaConvertedPayload is published after an idea becomes a goal
type IdeaConvertedPayload struct {
	IdeaID uint `json:"ideaId"`
	GoalID uint `json:"goalId"`
	Year   int  `json:"year"`
}

// ProgressUpdatedPayload is published after a progress edit
type ProgressUpdatedPayload struct {
	Kind     string `json:"kind"`
	ID       uint   `json:"id"`
	Progress int    `json:"progress"`
}

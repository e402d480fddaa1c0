// Package surface interprets raw events reported by the rendering surface
// and answers with the re-derived view.
package surface

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"roadmap-dashboard-api/internal/dto"
	"roadmap-dashboard-api/internal/response"
)

// EventType names a raw surface event
type EventType string

const (
	EventClick        EventType = "click"
	EventDragStart    EventType = "drag-start"
	EventDragEnd      EventType = "drag-end"
	EventDropOnBucket EventType = "drop-on-bucket"
	EventProgressDrag EventType = "progress-drag"
)

// Event is one message from the surface
type Event struct {
	Type     EventType `json:"type"`
	BarID    string    `json:"barId,omitempty"`
	GoalID   uint      `json:"goalId,omitempty"`
	Bucket   string    `json:"bucket,omitempty"`
	Progress float64   `json:"progress,omitempty"`
	Year     int       `json:"year,omitempty"`
}

// ReplyType names the view carried by a reply
type ReplyType string

const (
	ReplyAck     ReplyType = "ack"
	ReplyOpen    ReplyType = "open"
	ReplyBoard   ReplyType = "board"
	ReplySummary ReplyType = "summary"
	ReplyError   ReplyType = "error"
)

// Reply is the core's answer to one event
type Reply struct {
	Type  ReplyType             `json:"type"`
	Event EventType             `json:"event"`
	Data  any                   `json:"data,omitempty"`
	Error *response.ErrorDetail `json:"error,omitempty"`
}

// Scheduler relocates goals on the quarter board
type Scheduler interface {
	Relocate(ctx context.Context, req *dto.RelocateRequest) (*dto.RelocateResponse, error)
}

// Timeline resolves bar clicks and progress drags
type Timeline interface {
	UpdateProgress(ctx context.Context, req *dto.ProgressRequest) (*dto.ProgressResponse, error)
	OpenBar(ctx context.Context, barID string) (*dto.OpenBarResponse, error)
}

// Session holds the drag state of one surface connection.
// It is not safe for concurrent use; one reader goroutine owns it.
type Session struct {
	scheduler Scheduler
	timeline  Timeline
	year      int
	logger    *zap.Logger

	dragging uint
}

// NewSession creates a session for a surface showing year; 0 defers to each goal's year
func NewSession(scheduler Scheduler, timeline Timeline, year int, logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Session{scheduler: scheduler, timeline: timeline, year: year, logger: logger}
}

// Dragging returns the goal currently being dragged, 0 when idle
func (s *Session) Dragging() uint {
	return s.dragging
}

// Handle interprets one event
func (s *Session) Handle(ctx context.Context, ev Event) Reply {
	switch ev.Type {
	case EventClick:
		opened, err := s.timeline.OpenBar(ctx, ev.BarID)
		if err != nil {
			return s.fail(ev, err)
		}
		return Reply{Type: ReplyOpen, Event: ev.Type, Data: opened}

	case EventDragStart:
		if ev.GoalID == 0 {
			return s.invalid(ev, "goalId is required")
		}
		s.dragging = ev.GoalID
		return Reply{Type: ReplyAck, Event: ev.Type}

	case EventDragEnd:
		s.dragging = 0
		return Reply{Type: ReplyAck, Event: ev.Type}

	case EventDropOnBucket:
		goalID := ev.GoalID
		if goalID == 0 {
			goalID = s.dragging
		}
		if goalID == 0 {
			return s.invalid(ev, "no goal is being dragged")
		}
		s.dragging = 0

		year := ev.Year
		if year == 0 {
			year = s.year
		}
		moved, err := s.scheduler.Relocate(ctx, &dto.RelocateRequest{GoalID: goalID, Bucket: ev.Bucket, Year: year})
		if err != nil {
			return s.fail(ev, err)
		}
		return Reply{Type: ReplyBoard, Event: ev.Type, Data: moved}

	case EventProgressDrag:
		updated, err := s.timeline.UpdateProgress(ctx, &dto.ProgressRequest{BarID: ev.BarID, Progress: ev.Progress})
		if err != nil {
			return s.fail(ev, err)
		}
		return Reply{Type: ReplySummary, Event: ev.Type, Data: updated}
	}
	return s.invalid(ev, "unknown event type "+string(ev.Type))
}

func (s *Session) invalid(ev Event, message string) Reply {
	return Reply{
		Type:  ReplyError,
		Event: ev.Type,
		Error: &response.ErrorDetail{Code: response.ErrCodeValidation, Message: message},
	}
}

func (s *Session) fail(ev Event, err error) Reply {
	detail := &response.ErrorDetail{Code: response.ErrCodeInternal, Message: "Internal server error"}
	var appErr *response.AppError
	if errors.As(err, &appErr) {
		detail = &response.ErrorDetail{Code: appErr.Code, Message: appErr.Message}
	}
	s.logger.Warn("Surface event failed",
		zap.String("event", string(ev.Type)),
		zap.String("code", detail.Code),
		zap.Error(err),
	)
	return Reply{Type: ReplyError, Event: ev.Type, Error: detail}
}

package surface

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roadmap-dashboard-api/internal/dto"
	"roadmap-dashboard-api/internal/response"
)

// MockScheduler is a mock implementation of Scheduler
type MockScheduler struct {
	RelocateFunc func(ctx context.Context, req *dto.RelocateRequest) (*dto.RelocateResponse, error)
}

func (m *MockScheduler) Relocate(ctx context.Context, req *dto.RelocateRequest) (*dto.RelocateResponse, error) {
	if m.RelocateFunc != nil {
		return m.RelocateFunc(ctx, req)
	}
	return &dto.RelocateResponse{}, nil
}

// MockTimeline is a mock implementation of Timeline
type MockTimeline struct {
	UpdateProgressFunc func(ctx context.Context, req *dto.ProgressRequest) (*dto.ProgressResponse, error)
	OpenBarFunc        func(ctx context.Context, barID string) (*dto.OpenBarResponse, error)
}

func (m *MockTimeline) UpdateProgress(ctx context.Context, req *dto.ProgressRequest) (*dto.ProgressResponse, error) {
	if m.UpdateProgressFunc != nil {
		return m.UpdateProgressFunc(ctx, req)
	}
	return &dto.ProgressResponse{}, nil
}

func (m *MockTimeline) OpenBar(ctx context.Context, barID string) (*dto.OpenBarResponse, error) {
	if m.OpenBarFunc != nil {
		return m.OpenBarFunc(ctx, barID)
	}
	return &dto.OpenBarResponse{}, nil
}

func TestSession_DragAndDrop(t *testing.T) {
	var got *dto.RelocateRequest
	scheduler := &MockScheduler{
		RelocateFunc: func(ctx context.Context, req *dto.RelocateRequest) (*dto.RelocateResponse, error) {
			got = req
			return &dto.RelocateResponse{Goal: dto.GoalResponse{ID: req.GoalID}}, nil
		},
	}
	s := NewSession(scheduler, &MockTimeline{}, 2026, nil)
	ctx := context.Background()

	reply := s.Handle(ctx, Event{Type: EventDragStart, GoalID: 7})
	assert.Equal(t, ReplyAck, reply.Type)
	assert.Equal(t, uint(7), s.Dragging())

	reply = s.Handle(ctx, Event{Type: EventDropOnBucket, Bucket: "Q3"})
	require.Equal(t, ReplyBoard, reply.Type)
	require.NotNil(t, got)
	assert.Equal(t, uint(7), got.GoalID)
	assert.Equal(t, "Q3", got.Bucket)
	assert.Equal(t, 2026, got.Year)
	assert.Equal(t, uint(0), s.Dragging())

	reply = s.Handle(ctx, Event{Type: EventDragEnd})
	assert.Equal(t, ReplyAck, reply.Type)
}

func TestSession_Errors(t *testing.T) {
	notFound := response.NewAppError(response.ErrCodeNotFound, "Goal not found", "")
	s := NewSession(
		&MockScheduler{RelocateFunc: func(context.Context, *dto.RelocateRequest) (*dto.RelocateResponse, error) {
			return nil, notFound
		}},
		&MockTimeline{UpdateProgressFunc: func(context.Context, *dto.ProgressRequest) (*dto.ProgressResponse, error) {
			return nil, errors.New("boom")
		}},
		2026, nil,
	)
	ctx := context.Background()

	tests := []struct {
		name     string
		event    Event
		wantCode string
	}{
		{name: "실패: 드래그 없이 드롭", event: Event{Type: EventDropOnBucket, Bucket: "Q1"}, wantCode: response.ErrCodeValidation},
		{name: "실패: goalId 없는 드래그 시작", event: Event{Type: EventDragStart}, wantCode: response.ErrCodeValidation},
		{name: "실패: 없는 목표 드롭", event: Event{Type: EventDropOnBucket, GoalID: 9, Bucket: "Q1"}, wantCode: response.ErrCodeNotFound},
		{name: "실패: 예상치 못한 오류", event: Event{Type: EventProgressDrag, BarID: "task-1", Progress: 10}, wantCode: response.ErrCodeInternal},
		{name: "실패: 알 수 없는 이벤트", event: Event{Type: "hover"}, wantCode: response.ErrCodeValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reply := s.Handle(ctx, tt.event)
			require.Equal(t, ReplyError, reply.Type)
			assert.Equal(t, tt.event.Type, reply.Event)
			assert.Equal(t, tt.wantCode, reply.Error.Code)
		})
	}
}

func TestSession_ClickAndProgress(t *testing.T) {
	timeline := &MockTimeline{
		OpenBarFunc: func(_ context.Context, barID string) (*dto.OpenBarResponse, error) {
			return &dto.OpenBarResponse{Open: barID == "goal-1"}, nil
		},
		UpdateProgressFunc: func(_ context.Context, req *dto.ProgressRequest) (*dto.ProgressResponse, error) {
			return &dto.ProgressResponse{BarID: req.BarID, Progress: int(req.Progress)}, nil
		},
	}
	s := NewSession(&MockScheduler{}, timeline, 2026, nil)
	ctx := context.Background()

	reply := s.Handle(ctx, Event{Type: EventClick, BarID: "goal-1"})
	require.Equal(t, ReplyOpen, reply.Type)
	assert.True(t, reply.Data.(*dto.OpenBarResponse).Open)

	reply = s.Handle(ctx, Event{Type: EventClick, BarID: "task-4"})
	require.Equal(t, ReplyOpen, reply.Type)
	assert.False(t, reply.Data.(*dto.OpenBarResponse).Open)

	reply = s.Handle(ctx, Event{Type: EventProgressDrag, BarID: "task-4", Progress: 55})
	require.Equal(t, ReplySummary, reply.Type)
	assert.Equal(t, 55, reply.Data.(*dto.ProgressResponse).Progress)
}

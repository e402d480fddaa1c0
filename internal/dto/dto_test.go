package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roadmap-dashboard-api/internal/domain"
	"roadmap-dashboard-api/internal/scheduler"
)

func TestNullable(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantSet   bool
		wantValue *string
	}{
		{name: "성공: 키 없음", body: `{}`, wantSet: false},
		{name: "성공: 명시적 null", body: `{"startDate":null}`, wantSet: true},
		{name: "성공: 값 지정", body: `{"startDate":"2026-04-01"}`, wantSet: true, wantValue: strPtr("2026-04-01")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req UpdateGoalRequest
			require.NoError(t, json.Unmarshal([]byte(tt.body), &req))
			assert.Equal(t, tt.wantSet, req.StartDate.Set)
			assert.Equal(t, tt.wantValue, req.StartDate.Value)
			assert.False(t, req.EndDate.Set)
		})
	}

	var req UpdateTaskRequest
	assert.Error(t, json.Unmarshal([]byte(`{"assigneeId":"abc"}`), &req))
}

func TestNullableHelpers(t *testing.T) {
	n := NullOf(3)
	assert.True(t, n.Set)
	require.NotNil(t, n.Value)
	assert.Equal(t, 3, *n.Value)

	null := Null[uint]()
	assert.True(t, null.Set)
	assert.Nil(t, null.Value)
}

func TestToGoalResponse(t *testing.T) {
	start := domain.Date(2026, time.August, 3)
	q := "Q3"
	resp := ToGoalResponse(domain.Goal{
		Title:     "X",
		Type:      domain.GoalTypeFeature,
		Year:      2026,
		Quarter:   &q,
		StartDate: &start,
	})

	assert.Equal(t, "Q3", resp.Bucket)
	assert.Equal(t, "2026-08-03", *resp.StartDate)
	assert.Nil(t, resp.EndDate)
	assert.Equal(t, []string{}, resp.Tags)
	assert.Equal(t, []MilestoneResponse{}, resp.Milestones)
}

func TestToBoardResponse(t *testing.T) {
	start := domain.Date(2026, time.February, 1)
	board := scheduler.BuildBoard(2026, []domain.Goal{
		{Title: "dated", StartDate: &start},
		{Title: "undated"},
	})

	resp := ToBoardResponse(board)

	require.Len(t, resp.Columns, len(scheduler.Buckets))
	assert.Equal(t, "backlog", resp.Columns[0].Bucket)
	assert.Equal(t, 1, resp.Counts["Q1"])
	assert.Equal(t, 1, resp.Counts["backlog"])
	assert.Equal(t, 0, resp.Counts["Q4"])
	assert.Equal(t, []GoalResponse{}, resp.Columns[4].Goals)
}

func strPtr(s string) *string { return &s }

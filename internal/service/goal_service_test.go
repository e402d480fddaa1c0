package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roadmap-dashboard-api/internal/domain"
	"roadmap-dashboard-api/internal/dto"
	"roadmap-dashboard-api/internal/event"
	"roadmap-dashboard-api/internal/response"
)

func TestGoalService_CreateGoal(t *testing.T) {
	tests := []struct {
		name        string
		req         dto.CreateGoalRequest
		wantCode    string
		wantQuarter *string
	}{
		{
			name:        "성공: 시작일로 분기 산출",
			req:         dto.CreateGoalRequest{Type: "feature", Title: "X", Year: testYear, StartDate: strPtr("2026-02-10"), EndDate: strPtr("2026-03-31")},
			wantQuarter: strPtr("Q1"),
		},
		{
			name: "성공: 날짜 없으면 백로그",
			req:  dto.CreateGoalRequest{Type: "issue", Title: "Y", Year: testYear},
		},
		{
			name:     "실패: 알 수 없는 유형",
			req:      dto.CreateGoalRequest{Type: "epic", Title: "Z", Year: testYear},
			wantCode: response.ErrCodeValidation,
		},
		{
			name:     "실패: 종료일이 시작일보다 빠름",
			req:      dto.CreateGoalRequest{Type: "feature", Title: "Z", Year: testYear, StartDate: strPtr("2026-05-01"), EndDate: strPtr("2026-04-01")},
			wantCode: response.ErrCodeValidation,
		},
		{
			name:     "실패: 잘못된 날짜 형식",
			req:      dto.CreateGoalRequest{Type: "feature", Title: "Z", Year: testYear, StartDate: strPtr("2026/05/01")},
			wantCode: response.ErrCodeValidation,
		},
		{
			name:     "실패: 진행률 범위 초과",
			req:      dto.CreateGoalRequest{Type: "feature", Title: "Z", Year: testYear, Progress: 101},
			wantCode: response.ErrCodeValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			ctx := context.Background()

			got, err := f.goals.CreateGoal(ctx, &tt.req)
			if tt.wantCode != "" {
				assertAppError(t, err, tt.wantCode)
				assert.Empty(t, f.store.Snapshot().Goals())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantQuarter, got.Quarter)
			assert.Equal(t, []string{}, got.Tags)

			_, ok := f.store.FindGoal(got.ID)
			assert.True(t, ok, "store is refreshed after create")
			assert.Equal(t, []string{event.GoalCreated}, f.publisher.Keys())
		})
	}
}

func TestGoalService_UpdateGoal(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.goals.CreateGoal(ctx, &dto.CreateGoalRequest{
		Type: "feature", Title: "X", Year: testYear,
		StartDate: strPtr("2026-02-10"), EndDate: strPtr("2026-03-31"),
	})
	require.NoError(t, err)

	t.Run("성공: 시작일 변경 시 분기 재계산", func(t *testing.T) {
		got, err := f.goals.UpdateGoal(ctx, created.ID, &dto.UpdateGoalRequest{
			StartDate: dto.NullOf("2026-05-01"),
			EndDate:   dto.NullOf("2026-06-15"),
			Tags:      &[]string{"search", "ux"},
		})
		require.NoError(t, err)
		assert.Equal(t, "Q2", *got.Quarter)
		assert.Equal(t, []string{"search", "ux"}, got.Tags)
	})

	t.Run("성공: null로 날짜 해제", func(t *testing.T) {
		got, err := f.goals.UpdateGoal(ctx, created.ID, &dto.UpdateGoalRequest{
			StartDate: dto.Null[string](),
			EndDate:   dto.Null[string](),
		})
		require.NoError(t, err)
		assert.Nil(t, got.StartDate)
		assert.Nil(t, got.Quarter)
		assert.Equal(t, "backlog", got.Bucket)
	})

	t.Run("성공: 필드 생략 시 날짜 유지", func(t *testing.T) {
		_, err := f.goals.UpdateGoal(ctx, created.ID, &dto.UpdateGoalRequest{StartDate: dto.NullOf("2026-10-01")})
		require.NoError(t, err)
		got, err := f.goals.UpdateGoal(ctx, created.ID, &dto.UpdateGoalRequest{Title: strPtr("X2")})
		require.NoError(t, err)
		assert.Equal(t, "2026-10-01", *got.StartDate)
		assert.Equal(t, "Q4", *got.Quarter)
	})

	t.Run("실패: 기존 시작일보다 이른 종료일", func(t *testing.T) {
		_, err := f.goals.UpdateGoal(ctx, created.ID, &dto.UpdateGoalRequest{EndDate: dto.NullOf("2026-09-01")})
		assertAppError(t, err, response.ErrCodeValidation)
	})

	t.Run("실패: 존재하지 않는 목표", func(t *testing.T) {
		_, err := f.goals.UpdateGoal(ctx, 999, &dto.UpdateGoalRequest{Title: strPtr("nope")})
		assertAppError(t, err, response.ErrCodeNotFound)
	})
}

func TestGoalService_ListGoals(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	for _, req := range []dto.CreateGoalRequest{
		{Type: "feature", Title: "a", Year: testYear, Team: "Platform", StartDate: strPtr("2026-01-05")},
		{Type: "issue", Title: "b", Year: testYear, Team: "Platform", StartDate: strPtr("2026-08-05")},
		{Type: "feature", Title: "c", Year: testYear, Team: "Growth"},
		{Type: "feature", Title: "d", Year: 2025, Team: "Platform"},
	} {
		req := req
		_, err := f.goals.CreateGoal(ctx, &req)
		require.NoError(t, err)
	}

	tests := []struct {
		name      string
		query     dto.GoalListQuery
		wantTitle []string
		wantCode  string
	}{
		{name: "성공: 연도 전체", query: dto.GoalListQuery{Year: testYear}, wantTitle: []string{"a", "b", "c"}},
		{name: "성공: 팀과 유형 조합", query: dto.GoalListQuery{Year: testYear, Team: "Platform", Type: "feature"}, wantTitle: []string{"a"}},
		{name: "성공: 분기 필터", query: dto.GoalListQuery{Year: testYear, Quarter: "Q3"}, wantTitle: []string{"b"}},
		{name: "성공: 백로그 필터", query: dto.GoalListQuery{Year: testYear, Quarter: "backlog"}, wantTitle: []string{"c"}},
		{name: "성공: 다른 연도로 범위 변경", query: dto.GoalListQuery{Year: 2025}, wantTitle: []string{"d"}},
		{name: "실패: 알 수 없는 분기", query: dto.GoalListQuery{Quarter: "Q5"}, wantCode: response.ErrCodeValidation},
		{name: "실패: 알 수 없는 유형", query: dto.GoalListQuery{Type: "epic"}, wantCode: response.ErrCodeValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := f.goals.ListGoals(ctx, tt.query)
			if tt.wantCode != "" {
				assertAppError(t, err, tt.wantCode)
				return
			}
			require.NoError(t, err)
			titles := make([]string, 0, len(got))
			for _, g := range got {
				titles = append(titles, g.Title)
			}
			assert.Equal(t, tt.wantTitle, titles)
		})
	}
}

func TestGoalService_ListGoalsQuarterOrder(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	for _, req := range []dto.CreateGoalRequest{
		{Type: "feature", Title: "backlog", Year: testYear},
		{Type: "feature", Title: "q3", Year: testYear, StartDate: strPtr("2026-07-01"), EndDate: strPtr("2026-09-30")},
		{Type: "issue", Title: "q1", Year: testYear, StartDate: strPtr("2026-01-15"), EndDate: strPtr("2026-03-31")},
	} {
		req := req
		_, err := f.goals.CreateGoal(ctx, &req)
		require.NoError(t, err)
	}

	got, err := f.goals.ListGoals(ctx, dto.GoalListQuery{Year: testYear})
	require.NoError(t, err)

	titles := make([]string, 0, len(got))
	for _, g := range got {
		titles = append(titles, g.Title)
	}
	assert.Equal(t, []string{"q1", "q3", "backlog"}, titles)
}

func TestService_GetMissRefreshesStore(t *testing.T) {
	tests := []struct {
		name string
		get  func(f *fixture, ctx context.Context) error
	}{
		{name: "실패: 목표 조회", get: func(f *fixture, ctx context.Context) error {
			_, err := f.goals.GetGoal(ctx, 999)
			return err
		}},
		{name: "실패: 마일스톤 조회", get: func(f *fixture, ctx context.Context) error {
			_, err := f.milestones.GetMilestone(ctx, 999)
			return err
		}},
		{name: "실패: 작업 조회", get: func(f *fixture, ctx context.Context) error {
			_, err := f.tasks.GetTask(ctx, 999)
			return err
		}},
		{name: "실패: 아이디어 조회", get: func(f *fixture, ctx context.Context) error {
			_, err := f.ideas.GetIdea(ctx, 999)
			return err
		}},
		{name: "실패: 댓글 목록", get: func(f *fixture, ctx context.Context) error {
			_, err := f.ideas.ListComments(ctx, 999)
			return err
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			ctx := context.Background()
			require.NoError(t, f.store.LoadYear(ctx, testYear))

			// written behind the store's back
			external := &domain.Goal{Type: domain.GoalTypeFeature, Title: "external", Year: testYear}
			require.NoError(t, f.persistence.Goals.Create(ctx, external))
			_, ok := f.store.FindGoal(external.ID)
			require.False(t, ok)

			assertAppError(t, tt.get(f, ctx), response.ErrCodeNotFound)

			_, ok = f.store.FindGoal(external.ID)
			assert.True(t, ok)
		})
	}
}

func TestGoalService_DeleteGoal(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	goal, err := f.goals.CreateGoal(ctx, &dto.CreateGoalRequest{Type: "feature", Title: "X", Year: testYear})
	require.NoError(t, err)
	ms, err := f.milestones.CreateMilestone(ctx, &dto.CreateMilestoneRequest{GoalID: goal.ID, Title: "m"})
	require.NoError(t, err)
	task, err := f.tasks.CreateTask(ctx, &dto.CreateTaskRequest{MilestoneID: ms.ID, Title: "t"})
	require.NoError(t, err)
	_, ok := f.store.FindTaskByMilestone(ms.ID, task.ID)
	require.True(t, ok)

	require.NoError(t, f.goals.DeleteGoal(ctx, goal.ID))

	_, ok = f.store.FindGoal(goal.ID)
	assert.False(t, ok)
	_, ok = f.store.FindMilestone(goal.ID, ms.ID)
	assert.False(t, ok, "milestone must leave the store with its goal")
	_, ok = f.store.FindTaskByMilestone(ms.ID, task.ID)
	assert.False(t, ok, "task must leave the store with its milestone")
	_, err = f.milestones.GetMilestone(ctx, ms.ID)
	assertAppError(t, err, response.ErrCodeNotFound)

	err = f.goals.DeleteGoal(ctx, goal.ID)
	assertAppError(t, err, response.ErrCodeNotFound)
}

func TestGoalService_PersistenceUnavailable(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.goals.CreateGoal(ctx, &dto.CreateGoalRequest{Type: "feature", Title: "kept", Year: testYear})
	require.NoError(t, err)
	before := f.store.Snapshot()

	mock := &MockGoalRepository{
		CreateFunc: func(ctx context.Context, goal *domain.Goal) error {
			return errors.New("dial tcp: connection refused")
		},
	}
	svc := NewGoalService(f.planning, mock)

	_, err = svc.CreateGoal(ctx, &dto.CreateGoalRequest{Type: "feature", Title: "lost", Year: testYear})
	assertAppError(t, err, response.ErrCodePersistenceUnavailable)
	assert.Same(t, before, f.store.Snapshot(), "failed write leaves the snapshot untouched")
}

package router

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"roadmap-dashboard-api/internal/dto"
	"roadmap-dashboard-api/internal/metrics"
	"roadmap-dashboard-api/internal/response"
	"roadmap-dashboard-api/internal/testutil"
)

// setupTestRouter creates a router on an in-memory database with a private registry
func setupTestRouter(t *testing.T, basePath string) (*gin.Engine, *prometheus.Registry) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	registry := prometheus.NewRegistry()
	m := metrics.NewWithRegistry(registry, zap.NewNop())

	r := Setup(Config{
		DB:          testutil.NewDB(t),
		Logger:      zap.NewNop(),
		Metrics:     m,
		Gatherer:    registry,
		BasePath:    basePath,
		DefaultYear: 2026,
	})
	return r, registry
}

func call(r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func data(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	envelope := struct {
		Data json.RawMessage `json:"data"`
	}{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope), w.Body.String())
	require.NoError(t, json.Unmarshal(envelope.Data, out))
}

func TestMetricsEndpoint(t *testing.T) {
	r, _ := setupTestRouter(t, "/api")

	for _, path := range []string{"/metrics", "/api/metrics"} {
		t.Run(path, func(t *testing.T) {
			w := call(r, http.MethodGet, path, nil)
			assert.Equal(t, http.StatusOK, w.Code)
			assert.Contains(t, w.Header().Get("Content-Type"), "text/plain")
			assert.Contains(t, w.Body.String(), "# TYPE")
		})
	}
}

func TestHealthEndpoints(t *testing.T) {
	r, _ := setupTestRouter(t, "/api")

	for _, path := range []string{"/health", "/api/health", "/ready"} {
		w := call(r, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusOK, w.Code, path)
	}
}

func TestSwaggerEndpoint(t *testing.T) {
	r, _ := setupTestRouter(t, "/api")

	w := call(r, http.MethodGet, "/swagger/doc.json", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "/schedule/relocate")
}

func TestNoRoute(t *testing.T) {
	r, _ := setupTestRouter(t, "/api")

	w := call(r, http.MethodGet, "/api/nothing-here", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), response.ErrCodeNotFound)
}

// A goal created in the backlog and dragged to Q3 ends up with Q3 dates on the board,
// the timeline and the dashboard.
func TestPlanningFlow(t *testing.T) {
	r, _ := setupTestRouter(t, "/api")

	w := call(r, http.MethodPost, "/api/goals", dto.CreateGoalRequest{Type: "feature", Title: "X", Year: 2026})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var goal dto.GoalResponse
	data(t, w, &goal)
	assert.Equal(t, "backlog", goal.Bucket)

	w = call(r, http.MethodPost, "/api/schedule/relocate", dto.RelocateRequest{GoalID: goal.ID, Bucket: "Q3", Year: 2026})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var moved dto.RelocateResponse
	data(t, w, &moved)
	assert.Equal(t, "Q3", moved.Goal.Bucket)
	require.NotNil(t, moved.Goal.Quarter)
	assert.Equal(t, "Q3", *moved.Goal.Quarter)
	assert.Equal(t, 1, moved.Board.Counts["Q3"])
	assert.Equal(t, 0, moved.Board.Counts["backlog"])

	w = call(r, http.MethodGet, "/api/timeline?year=2026&mode=Week", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var projection struct {
		ColumnWidth int `json:"columnWidth"`
		Bars        []struct {
			ID    string `json:"id"`
			Class string `json:"class"`
		} `json:"bars"`
	}
	data(t, w, &projection)
	assert.Equal(t, 140, projection.ColumnWidth)
	require.Len(t, projection.Bars, 1)
	assert.Equal(t, "bar-feature", projection.Bars[0].Class)

	w = call(r, http.MethodPost, "/api/timeline/progress", dto.ProgressRequest{BarID: projection.Bars[0].ID, Progress: 49.6})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = call(r, http.MethodGet, "/api/dashboard/summary?year=2026", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var summary struct {
		TotalGoals int `json:"totalGoals"`
	}
	data(t, w, &summary)
	assert.Equal(t, 1, summary.TotalGoals)

	w = call(r, http.MethodGet, "/api/years", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var years dto.YearsResponse
	data(t, w, &years)
	assert.Equal(t, []int{2026}, years.Years)
}

func TestIdeaFlow(t *testing.T) {
	r, _ := setupTestRouter(t, "/api")

	w := call(r, http.MethodPost, "/api/ideas", dto.CreateIdeaRequest{Type: "feedback", Title: "Dark mode", Year: 2026, Priority: 1})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var idea dto.IdeaResponse
	data(t, w, &idea)

	w = call(r, http.MethodPost, "/api/ideas/"+itoa(idea.ID)+"/convert", nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = call(r, http.MethodPost, "/api/ideas/"+itoa(idea.ID)+"/approve", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = call(r, http.MethodPost, "/api/ideas/"+itoa(idea.ID)+"/convert", nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var converted dto.ConvertIdeaResponse
	data(t, w, &converted)
	assert.Equal(t, "converted", converted.Idea.Status)
	assert.Equal(t, "Dark mode", converted.Goal.Title)

	w = call(r, http.MethodGet, "/api/goals?year=2026", nil)
	var goals []dto.GoalResponse
	data(t, w, &goals)
	assert.Len(t, goals, 1)
}

func TestMetricsRecordRoutes(t *testing.T) {
	r, registry := setupTestRouter(t, "/api")

	call(r, http.MethodGet, "/api/goals", nil)

	families, err := registry.Gather()
	require.NoError(t, err)
	found := false
	for _, mf := range families {
		if mf.GetName() != "roadmap_dashboard_http_requests_total" {
			continue
		}
		for _, metric := range mf.GetMetric() {
			for _, label := range metric.GetLabel() {
				if label.GetName() == "endpoint" && label.GetValue() == "/api/goals" {
					found = true
				}
			}
		}
	}
	assert.True(t, found, "request to /api/goals should be recorded by route")
}

func TestNewServices_LoadsStore(t *testing.T) {
	svc := NewServices(testutil.NewDB(t), nil, nil, 2026, zap.NewNop())
	require.NoError(t, svc.Store.LoadYear(context.Background(), 2026))
	assert.True(t, svc.Store.Snapshot().Loaded())
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

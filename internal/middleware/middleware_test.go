package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/prometheus/client_golang/prometheus"
	io_prometheus_client "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"roadmap-dashboard-api/internal/metrics"
	"roadmap-dashboard-api/internal/response"
)

func setupTestRouter(handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(handlers...)
	return router
}

// memoryDeduper is an in-process Deduper
type memoryDeduper struct {
	mu   sync.Mutex
	seen map[string]bool
}

func (d *memoryDeduper) AcquireOnce(_ context.Context, key string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.seen == nil {
		d.seen = map[string]bool{}
	}
	if d.seen[key] {
		return false
	}
	d.seen[key] = true
	return true
}

func TestIdempotency(t *testing.T) {
	router := setupTestRouter(Idempotency(&memoryDeduper{}))
	calls := 0
	handler := func(c *gin.Context) {
		calls++
		c.Status(http.StatusCreated)
	}
	router.POST("/api/goals", handler)
	router.GET("/api/goals", handler)

	send := func(method, key string) int {
		req := httptest.NewRequest(method, "/api/goals", nil)
		if key != "" {
			req.Header.Set(IdempotencyKeyHeader, key)
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w.Code
	}

	tests := []struct {
		name   string
		method string
		key    string
		want   int
	}{
		{name: "성공: 첫 요청", method: http.MethodPost, key: "k1", want: http.StatusCreated},
		{name: "실패: 같은 키로 재요청", method: http.MethodPost, key: "k1", want: http.StatusConflict},
		{name: "성공: 다른 키", method: http.MethodPost, key: "k2", want: http.StatusCreated},
		{name: "성공: 키 없는 요청", method: http.MethodPost, want: http.StatusCreated},
		{name: "성공: 조회는 검사하지 않음", method: http.MethodGet, key: "k1", want: http.StatusCreated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, send(tt.method, tt.key))
		})
	}
	assert.Equal(t, 4, calls)
}

func TestIdempotency_DuplicateEnvelope(t *testing.T) {
	router := setupTestRouter(Idempotency(&memoryDeduper{seen: map[string]bool{"idempotency:POST:/x:dup": true}}))
	router.POST("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodPost, "/x", nil)
	req.Header.Set(IdempotencyKeyHeader, "dup")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusConflict, w.Code)
	var body response.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, response.ErrCodeDuplicateRequest, body.Error.Code)
}

func TestRedisDeduper_FailsOpen(t *testing.T) {
	rdb := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", DialTimeout: 50 * time.Millisecond, MaxRetries: -1})
	defer rdb.Close()
	d := NewRedisDeduper(rdb, time.Minute, zap.NewNop())

	assert.True(t, d.AcquireOnce(context.Background(), "k"))
	assert.True(t, d.AcquireOnce(context.Background(), "k"))
}

func TestIdempotency_NilDeduper(t *testing.T) {
	router := setupTestRouter(Idempotency(nil))
	router.POST("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodPost, "/x", nil)
		req.Header.Set(IdempotencyKeyHeader, "same")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	}
}

func TestLogger_RequestID(t *testing.T) {
	router := setupTestRouter(Logger(zap.NewNop()))
	router.GET("/ping", func(c *gin.Context) {
		response.SendSuccess(c, http.StatusOK, "pong")
	})

	t.Run("성공: 없으면 생성", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
		id := w.Header().Get(RequestIDHeader)
		assert.NotEmpty(t, id)

		var body response.SuccessResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, id, body.RequestID)
	})

	t.Run("성공: 전달된 id 유지", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(RequestIDHeader, "req-123")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, "req-123", w.Header().Get(RequestIDHeader))
	})
}

func TestRecovery(t *testing.T) {
	router := setupTestRouter(Recovery(zap.NewNop()))
	router.GET("/panic", func(c *gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

	require.Equal(t, http.StatusInternalServerError, w.Code)
	var body response.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, response.ErrCodeInternal, body.Error.Code)
}

func TestCORS(t *testing.T) {
	tests := []struct {
		name    string
		allowed []string
		origin  string
		want    string
	}{
		{name: "성공: 허용 목록 비어 있으면 모두 허용", origin: "http://localhost:5173", want: "http://localhost:5173"},
		{name: "성공: 허용된 origin", allowed: []string{"https://plan.example.com"}, origin: "https://plan.example.com", want: "https://plan.example.com"},
		{name: "실패: 허용되지 않은 origin", allowed: []string{"https://plan.example.com"}, origin: "https://evil.example.com", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := setupTestRouter(CORS(tt.allowed))
			router.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

			req := httptest.NewRequest(http.MethodGet, "/x", nil)
			req.Header.Set("Origin", tt.origin)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			assert.Equal(t, tt.want, w.Header().Get("Access-Control-Allow-Origin"))
		})
	}

	router := setupTestRouter(CORS(nil))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodOptions, "/x", nil))
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestMetrics(t *testing.T) {
	m := metrics.NewWithRegistry(prometheus.NewRegistry(), zap.NewNop())
	router := setupTestRouter(Metrics(m))
	router.GET("/api/goals/:id", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.GET("/api/health", func(c *gin.Context) { c.Status(http.StatusOK) })

	for _, path := range []string{"/api/goals/1", "/api/goals/2", "/api/health"} {
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	var metric io_prometheus_client.Metric
	require.NoError(t, m.HTTPRequestsTotal.WithLabelValues("GET", "/api/goals/:id", "2xx").Write(&metric))
	assert.Equal(t, 2.0, metric.GetCounter().GetValue())
}

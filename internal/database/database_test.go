package database

import (
	"database/sql"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"roadmap-dashboard-api/internal/config"
	"roadmap-dashboard-api/internal/domain"
)

type recordedQuery struct {
	operation string
	table     string
	err       error
}

type fakeRecorder struct {
	mu      sync.Mutex
	queries []recordedQuery
	stats   []sql.DBStats
}

func (f *fakeRecorder) RecordDBQuery(operation, table string, duration time.Duration, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.queries = append(f.queries, recordedQuery{operation: operation, table: table, err: err})
}

func (f *fakeRecorder) UpdateDBStats(stats sql.DBStats) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stats = append(f.stats, stats)
}

func (f *fakeRecorder) operations() map[string]bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	ops := make(map[string]bool)
	for _, q := range f.queries {
		ops[q.operation+":"+q.table] = true
	}
	return ops
}

func newTestDB(t *testing.T) Config {
	t.Helper()
	return Config{Driver: "sqlite", DSN: "file::memory:"}
}

func TestNew_SQLiteAndMigrate(t *testing.T) {
	db, err := New(newTestDB(t))
	require.NoError(t, err)
	defer Close(db)

	require.NoError(t, SafeAutoMigrate(db, zap.NewNop()))
	for _, table := range []string{"goals", "milestones", "tasks", "members", "ideas", "comments"} {
		assert.True(t, db.Migrator().HasTable(table), "table %s should exist", table)
	}

	// migrating twice only updates schema
	require.NoError(t, AutoMigrate(db))
}

func TestNew_UnsupportedDriver(t *testing.T) {
	_, err := New(Config{Driver: "oracle", DSN: "x"})
	assert.Error(t, err)
}

func TestRegisterMetricsCallbacks(t *testing.T) {
	db, err := New(newTestDB(t))
	require.NoError(t, err)
	defer Close(db)
	require.NoError(t, AutoMigrate(db))

	recorder := &fakeRecorder{}
	require.NoError(t, RegisterMetricsCallbacks(db, recorder))

	goal := &domain.Goal{Type: domain.GoalTypeFeature, Title: "X", Year: 2026}
	require.NoError(t, db.Create(goal).Error)
	require.NoError(t, db.Model(goal).Update("progress", 10).Error)
	var loaded domain.Goal
	require.NoError(t, db.First(&loaded, goal.ID).Error)
	require.NoError(t, db.Delete(&domain.Goal{}, goal.ID).Error)

	ops := recorder.operations()
	assert.True(t, ops["insert:goals"])
	assert.True(t, ops["update:goals"])
	assert.True(t, ops["select:goals"])
	assert.True(t, ops["delete:goals"])
}

func TestStartDBStatsCollector(t *testing.T) {
	db, err := New(newTestDB(t))
	require.NoError(t, err)
	defer Close(db)

	recorder := &fakeRecorder{}
	done := StartDBStatsCollector(db, recorder, 10*time.Millisecond)
	defer close(done)

	assert.Eventually(t, func() bool {
		recorder.mu.Lock()
		defer recorder.mu.Unlock()
		return len(recorder.stats) > 0
	}, time.Second, 10*time.Millisecond)
}

func TestNewRedis_Disabled(t *testing.T) {
	client, err := NewRedis(config.RedisConfig{}, zap.NewNop())
	assert.NoError(t, err)
	assert.Nil(t, client)
}

func TestNewRedis_InvalidURL(t *testing.T) {
	_, err := NewRedis(config.RedisConfig{URL: "not a url"}, zap.NewNop())
	assert.Error(t, err)
}

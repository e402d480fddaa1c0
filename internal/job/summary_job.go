package job

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// MetricsRefresher reloads planning data and publishes summary gauges
type MetricsRefresher interface {
	RefreshMetrics(ctx context.Context) error
}

// SummaryJob keeps the planning gauges current between requests
type SummaryJob struct {
	refresher MetricsRefresher
	timeout   time.Duration
	logger    *zap.Logger
}

// NewSummaryJob creates a new SummaryJob instance
func NewSummaryJob(refresher MetricsRefresher, timeout time.Duration, logger *zap.Logger) *SummaryJob {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &SummaryJob{refresher: refresher, timeout: timeout, logger: logger}
}

// Run executes one refresh; failures are logged and retried on the next tick
func (j *SummaryJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()

	start := time.Now()
	if err := j.refresher.RefreshMetrics(ctx); err != nil {
		j.logger.Error("Summary job failed", zap.Error(err))
		return
	}
	j.logger.Debug("Summary job completed", zap.Duration("duration", time.Since(start)))
}

// Scheduler runs jobs on cron specs
type Scheduler struct {
	cron   *cron.Cron
	logger *zap.Logger
}

// NewScheduler creates a scheduler that skips a run while the previous one is still going
func NewScheduler(logger *zap.Logger) *Scheduler {
	return &Scheduler{
		cron:   cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger: logger,
	}
}

// Register adds job under spec, e.g. "@every 1m" or "*/5 * * * *"
func (s *Scheduler) Register(name, spec string, job cron.Job) error {
	id, err := s.cron.AddJob(spec, job)
	if err != nil {
		return err
	}
	s.logger.Info("Registered job", zap.String("job", name), zap.String("spec", spec), zap.Int("entry_id", int(id)))
	return nil
}

// Start runs the scheduler in its own goroutine
func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop waits for running jobs until ctx is done
func (s *Scheduler) Stop(ctx context.Context) {
	done := s.cron.Stop()
	select {
	case <-done.Done():
	case <-ctx.Done():
		s.logger.Warn("Scheduler stop timed out")
	}
}

// Entries reports the number of registered jobs
func (s *Scheduler) Entries() int {
	return len(s.cron.Entries())
}

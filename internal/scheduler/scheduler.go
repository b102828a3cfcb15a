// Package scheduler runs the periodic maintenance jobs: draining buffered
// view counters into the database and closing postings past their deadline.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/oguzk/jobport/internal/app/repositories"
	"github.com/oguzk/jobport/internal/app/services"
	"github.com/oguzk/jobport/internal/metrics"
	"github.com/oguzk/jobport/internal/pkg/logger"
)

const (
	viewFlushSpec     = "@every 1m"
	deadlineSweepSpec = "@every 10m"
)

// Scheduler wraps robfig/cron and manages the background maintenance loop.
type Scheduler struct {
	cron      *cron.Cron
	views     *services.RedisViewCounter
	jobRepo   *repositories.JobRepository
	collector *metrics.Collector
}

// New creates a Scheduler with the view flush and deadline sweep jobs.
func New(views *services.RedisViewCounter, jobRepo *repositories.JobRepository, collector *metrics.Collector) *Scheduler {
	return &Scheduler{
		cron:      cron.New(),
		views:     views,
		jobRepo:   jobRepo,
		collector: collector,
	}
}

// Start registers the jobs and starts the cron loop.
func (s *Scheduler) Start(ctx context.Context) error {
	if _, err := s.cron.AddFunc(viewFlushSpec, func() {
		s.flushViews(ctx)
	}); err != nil {
		return fmt.Errorf("failed to register view flush job: %w", err)
	}

	if _, err := s.cron.AddFunc(deadlineSweepSpec, func() {
		s.sweepDeadlines(ctx)
	}); err != nil {
		return fmt.Errorf("failed to register deadline sweep job: %w", err)
	}

	s.cron.Start()
	logger.Info().
		Str("viewFlush", viewFlushSpec).
		Str("deadlineSweep", deadlineSweepSpec).
		Msg("Scheduler started")

	return nil
}

// Stop stops the cron loop and waits for running jobs to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	logger.Info().Msg("Scheduler stopped")
}

// flushViews drains the buffered view counters into job_postings.views_count.
func (s *Scheduler) flushViews(ctx context.Context) {
	var flushed int64
	err := s.views.Flush(ctx, func(ctx context.Context, jobID, delta int64) error {
		if err := s.jobRepo.AddViews(ctx, jobID, delta); err != nil {
			return err
		}
		flushed += delta
		return nil
	})
	if err != nil {
		logger.Error().Err(err).Msg("View counter flush failed")
	}
	if flushed > 0 {
		s.collector.RecordViewsFlushed(flushed)
		logger.Debug().Int64("views", flushed).Msg("Flushed view counters")
	}
}

// sweepDeadlines closes active postings whose application deadline has passed.
func (s *Scheduler) sweepDeadlines(ctx context.Context) {
	closed, err := s.jobRepo.CloseExpired(ctx, time.Now())
	if err != nil {
		logger.Error().Err(err).Msg("Deadline sweep failed")
		return
	}
	if closed > 0 {
		s.collector.RecordPostingsClosed(closed)
		logger.Info().Int64("closed", closed).Msg("Closed postings past their application deadline")
	}
}

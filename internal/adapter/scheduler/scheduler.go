// Package scheduler runs periodic maintenance jobs.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"merchant-settlement/internal/core/ports"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

// Scheduler manages the cron jobs.
type Scheduler struct {
	cron        *cron.Cron
	withdrawals ports.WithdrawalService
	schedule    string
	timeout     time.Duration
	log         zerolog.Logger
}

// New creates a scheduler that fails stale withdrawal sessions on schedule.
func New(withdrawals ports.WithdrawalService, schedule string, log zerolog.Logger) *Scheduler {
	cl := cronLogger{log: log}
	return &Scheduler{
		cron:        cron.New(cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl))),
		withdrawals: withdrawals,
		schedule:    schedule,
		timeout:     30 * time.Second,
		log:         log,
	}
}

// Start registers the jobs and starts the cron scheduler.
func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc(s.schedule, s.sweepStaleWithdrawals); err != nil {
		return fmt.Errorf("schedule stale withdrawal sweep %q: %w", s.schedule, err)
	}
	s.log.Info().Str("schedule", s.schedule).Msg("Scheduled stale withdrawal sweep")
	s.cron.Start()
	return nil
}

// Stop stops the scheduler. The returned context is done once running jobs finish.
func (s *Scheduler) Stop() context.Context {
	return s.cron.Stop()
}

func (s *Scheduler) sweepStaleWithdrawals() {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	n, err := s.withdrawals.FailStaleSessions(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("Stale withdrawal sweep failed")
		return
	}
	if n > 0 {
		s.log.Info().Int64("failed_sessions", n).Msg("Stale withdrawal sessions failed")
	}
}

// cronLogger adapts zerolog to cron.Logger.
type cronLogger struct {
	log zerolog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.log.Debug().Fields(keysAndValues).Msg("cron: " + msg)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.log.Error().Err(err).Fields(keysAndValues).Msg("cron: " + msg)
}

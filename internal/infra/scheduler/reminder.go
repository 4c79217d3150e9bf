package scheduler

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"facility-booking/internal/pkg/clock"
	"facility-booking/internal/pkg/config"
	"facility-booking/internal/pkg/metrics"
	"facility-booking/internal/usecase/commands"
)

// ReminderScheduler sweeps tomorrow's confirmed bookings once a day at the
// configured hour, in the booking timezone.
type ReminderScheduler struct {
	reminders  commands.ReminderCommands
	clock      clock.Clock
	metrics    *metrics.Metrics
	loc        *time.Location
	hour       int
	retryDelay time.Duration
	maxRetries int

	cancel context.CancelFunc
	done   chan struct{}
	once   sync.Once
}

func NewReminderScheduler(
	reminders commands.ReminderCommands,
	clk clock.Clock,
	m *metrics.Metrics,
	cfg config.ReminderConfig,
	loc *time.Location,
) *ReminderScheduler {
	if loc == nil {
		loc = time.UTC
	}
	return &ReminderScheduler{
		reminders:  reminders,
		clock:      clk,
		metrics:    m,
		loc:        loc,
		hour:       cfg.Hour,
		retryDelay: cfg.RetryDelay,
		maxRetries: cfg.MaxRetries,
	}
}

// NextRun returns the first hour:00 in loc strictly after now.
func NextRun(now time.Time, hour int, loc *time.Location) time.Time {
	local := now.In(loc)
	next := time.Date(local.Year(), local.Month(), local.Day(), hour, 0, 0, 0, loc)
	if !next.After(local) {
		next = time.Date(local.Year(), local.Month(), local.Day()+1, hour, 0, 0, 0, loc)
	}
	return next
}

// RunOnce dispatches reminders for the day after the current local date.
func (s *ReminderScheduler) RunOnce(ctx context.Context) (int, error) {
	tomorrow := clock.StartOfDay(s.clock.Now(), s.loc).AddDate(0, 0, 1)

	sent, err := s.reminders.SendReminders(ctx, tomorrow)
	if sent > 0 && s.metrics != nil {
		s.metrics.RemindersSent.Add(float64(sent))
	}
	if err != nil {
		return sent, err
	}
	slog.Info("reminder sweep finished", "day", tomorrow.Format(time.DateOnly), "sent", sent)
	return sent, nil
}

func (s *ReminderScheduler) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.done = make(chan struct{})

	go s.run(ctx)
	slog.Info("reminder scheduler started",
		"next_run", NextRun(s.clock.Now(), s.hour, s.loc).Format(time.RFC3339))
}

func (s *ReminderScheduler) Stop(ctx context.Context) error {
	var err error
	s.once.Do(func() {
		if s.cancel == nil {
			return
		}
		s.cancel()
		select {
		case <-s.done:
		case <-ctx.Done():
			err = ctx.Err()
		}
	})
	return err
}

// NextAttempt is the next daily run, or now+retryDelay while a failed sweep
// still has retries left. failures counts consecutive failed sweeps.
func (s *ReminderScheduler) NextAttempt(now time.Time, failures int) time.Time {
	if failures > 0 && failures <= s.maxRetries && s.retryDelay > 0 {
		return now.Add(s.retryDelay)
	}
	return NextRun(now, s.hour, s.loc)
}

func (s *ReminderScheduler) run(ctx context.Context) {
	defer close(s.done)

	failures := 0
	for {
		now := s.clock.Now()
		timer := time.NewTimer(s.NextAttempt(now, failures).Sub(now))

		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-timer.C:
			_, err := s.RunOnce(ctx)
			switch {
			case err == nil:
				failures = 0
			case ctx.Err() != nil:
				return
			default:
				failures++
				slog.Error("reminder sweep failed", "failures", failures, "error", err.Error())
				if failures > s.maxRetries {
					failures = 0
				}
			}
		}
	}
}

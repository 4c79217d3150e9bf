package notification

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"facility-booking/internal/pkg/clock"
	"facility-booking/internal/pkg/config"
	"facility-booking/internal/pkg/metrics"
	"facility-booking/internal/usecase/shared"
)

const (
	relaySent   = "sent"
	relayRetry  = "retry"
	relayFailed = "failed"

	retryBase = 5 * time.Second
	retryCap  = 10 * time.Minute
)

// Relay moves queued outbox jobs to the publisher. Delivery is at least once:
// a crash between publish and commit republishes the batch.
type Relay struct {
	uow         shared.UnitOfWork
	publisher   Publisher
	clock       clock.Clock
	metrics     *metrics.Metrics
	interval    time.Duration
	batch       int32
	maxAttempts int32

	cancel context.CancelFunc
	done   chan struct{}
	once   sync.Once
}

func NewRelay(uow shared.UnitOfWork, publisher Publisher, clk clock.Clock, m *metrics.Metrics, cfg config.NotificationConfig) *Relay {
	interval := cfg.RelayInterval
	if interval <= 0 {
		interval = 5 * time.Second
	}
	batch := cfg.RelayBatch
	if batch <= 0 {
		batch = 50
	}
	maxAttempts := cfg.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = 5
	}
	return &Relay{
		uow:         uow,
		publisher:   publisher,
		clock:       clk,
		metrics:     m,
		interval:    interval,
		batch:       batch,
		maxAttempts: maxAttempts,
	}
}

// RunOnce claims one batch of due jobs and publishes them, recording each
// outcome in the same transaction. It returns the number of jobs claimed.
func (r *Relay) RunOnce(ctx context.Context) (int, error) {
	claimed := 0
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := r.clock.Now()
		jobs, err := tx.Notifications().ClaimPendingJobs(ctx, tx.DB(), now, r.batch)
		if err != nil {
			return err
		}
		claimed = len(jobs)

		for _, job := range jobs {
			if pubErr := r.publisher.Publish(ctx, job); pubErr != nil {
				outcome := relayRetry
				if job.Attempts+1 >= r.maxAttempts {
					outcome = relayFailed
				}
				slog.Warn("notification publish failed",
					"job_id", job.ID.String(),
					"kind", job.Kind.String(),
					"attempt", job.Attempts+1,
					"outcome", outcome,
					"error", pubErr.Error())

				retryAt := now.Add(retryDelay(job.Attempts))
				if err := tx.Notifications().MarkAttemptFailed(ctx, tx.DB(), job.ID, pubErr.Error(), r.maxAttempts, retryAt); err != nil {
					return err
				}
				r.count(outcome)
				continue
			}

			if err := tx.Notifications().MarkSent(ctx, tx.DB(), job.ID, now); err != nil {
				return err
			}
			r.count(relaySent)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return claimed, nil
}

func (r *Relay) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	r.cancel = cancel
	r.done = make(chan struct{})

	go r.run(ctx)
	slog.Info("notification relay started", "interval", r.interval.String(), "batch", r.batch)
}

func (r *Relay) Stop(ctx context.Context) error {
	var err error
	r.once.Do(func() {
		if r.cancel == nil {
			return
		}
		r.cancel()
		select {
		case <-r.done:
		case <-ctx.Done():
			err = ctx.Err()
		}
	})
	return err
}

func (r *Relay) run(ctx context.Context) {
	defer close(r.done)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			// Drain backlogs without waiting for the next tick.
			for {
				n, err := r.RunOnce(ctx)
				if err != nil {
					if ctx.Err() == nil {
						slog.Error("notification relay failed", "error", err.Error())
					}
					break
				}
				if n < int(r.batch) {
					break
				}
			}
		}
	}
}

func (r *Relay) count(outcome string) {
	if r.metrics == nil {
		return
	}
	r.metrics.NotificationsRelay.WithLabelValues(outcome).Inc()
}

func retryDelay(attempts int32) time.Duration {
	d := retryBase
	for i := int32(0); i < attempts && d < retryCap; i++ {
		d *= 2
	}
	return min(d, retryCap)
}

package notification

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"facility-booking/internal/pkg/clock"
	"facility-booking/internal/pkg/config"
	"facility-booking/internal/pkg/errs"
	"facility-booking/internal/pkg/metrics"
	"facility-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	outcomeAccepted = "accepted"
	outcomeDropped  = "dropped"
	outcomeStored   = "stored"
	outcomeFailed   = "store_failed"
)

// Dispatcher is the in-process Notifier. Notify only enqueues; worker
// goroutines write each event to the outbox in its own transaction.
type Dispatcher struct {
	uow     shared.UnitOfWork
	clock   clock.Clock
	metrics *metrics.Metrics
	topic   string
	workers int

	mu     sync.RWMutex
	closed bool
	queue  chan Event

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

var (
	_ shared.Notifier = (*Dispatcher)(nil)
	_ shared.Outbox   = (*Dispatcher)(nil)
)

func NewDispatcher(uow shared.UnitOfWork, clk clock.Clock, m *metrics.Metrics, cfg config.NotificationConfig) *Dispatcher {
	size := cfg.QueueSize
	if size <= 0 {
		size = 1
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = 1
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &Dispatcher{
		uow:     uow,
		clock:   clk,
		metrics: m,
		topic:   cfg.Topic,
		workers: workers,
		queue:   make(chan Event, size),
		ctx:     ctx,
		cancel:  cancel,
	}
}

// Notify never blocks: when the queue is full or the dispatcher has stopped
// the event is dropped and counted.
func (d *Dispatcher) Notify(_ context.Context, kind shared.EventKind, bookingID uuid.UUID) {
	ev := Event{Kind: kind, BookingID: bookingID, OccurredAt: d.clock.Now()}

	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		d.count(kind, outcomeDropped)
		slog.Warn("notification dropped after shutdown", "kind", kind.String(), "booking_id", bookingID.String())
		return
	}

	select {
	case d.queue <- ev:
		d.count(kind, outcomeAccepted)
	default:
		d.count(kind, outcomeDropped)
		slog.Warn("notification queue full, event dropped", "kind", kind.String(), "booking_id", bookingID.String())
	}
}

func (d *Dispatcher) Start() {
	for range d.workers {
		d.wg.Add(1)
		go d.work()
	}
	slog.Info("notification dispatcher started", "workers", d.workers, "queue_size", cap(d.queue))
}

// Stop closes the queue and waits for workers to drain it. When ctx expires
// first, in-flight writes are cancelled and the remaining events are lost.
func (d *Dispatcher) Stop(ctx context.Context) error {
	d.mu.Lock()
	if !d.closed {
		d.closed = true
		close(d.queue)
	}
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		d.cancel()
		return nil
	case <-ctx.Done():
		d.cancel()
		return ctx.Err()
	}
}

func (d *Dispatcher) work() {
	defer d.wg.Done()
	for ev := range d.queue {
		d.store(ev)
	}
}

// Enqueue writes the event to the outbox before returning. It bypasses the
// queue, so a full queue or a stopped dispatcher never loses it.
func (d *Dispatcher) Enqueue(ctx context.Context, kind shared.EventKind, bookingID uuid.UUID) error {
	ev := Event{Kind: kind, BookingID: bookingID, OccurredAt: d.clock.Now()}
	if err := d.persist(ctx, ev); err != nil {
		d.count(kind, outcomeFailed)
		return errs.Wrapf(err, "failed to store %s notification for booking %s", kind, bookingID)
	}
	d.count(kind, outcomeStored)
	return nil
}

func (d *Dispatcher) store(ev Event) {
	if err := d.persist(d.ctx, ev); err != nil {
		d.count(ev.Kind, outcomeFailed)
		slog.Error("failed to store notification",
			"kind", ev.Kind.String(),
			"booking_id", ev.BookingID.String(),
			"error", err.Error())
		return
	}
	d.count(ev.Kind, outcomeStored)
}

func (d *Dispatcher) persist(ctx context.Context, ev Event) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return errs.Wrap(err, "failed to encode notification")
	}

	job := shared.NotificationJob{
		ID:        uuid.New(),
		Kind:      ev.Kind,
		BookingID: ev.BookingID,
		Topic:     d.topic,
		Payload:   payload,
		Status:    shared.JobQueued,
		RunAt:     ev.OccurredAt,
	}
	return d.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Notifications().CreateJob(ctx, tx.DB(), job)
	})
}

func (d *Dispatcher) count(kind shared.EventKind, outcome string) {
	if d.metrics == nil {
		return
	}
	d.metrics.NotificationsQueued.WithLabelValues(kind.String(), outcome).Inc()
}

//go:build unit

package notification_test

import (
	"context"
	"sync"
	"time"

	sqlc "facility-booking/internal/infra/sqlc/generated"
	"facility-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

// fakeUoW runs every callback against one in-memory outbox.
type fakeUoW struct {
	outbox *fakeOutbox
}

func newFakeUoW() *fakeUoW {
	return &fakeUoW{outbox: &fakeOutbox{}}
}

func (u *fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, fakeTx{outbox: u.outbox})
}

func (u *fakeUoW) CommandReads() shared.CommandReads { return nil }

type fakeTx struct {
	outbox *fakeOutbox
}

func (t fakeTx) Facilities() shared.FacilityRepository        { return nil }
func (t fakeTx) Bookings() shared.BookingRepository           { return nil }
func (t fakeTx) Notifications() shared.NotificationRepository { return t.outbox }
func (t fakeTx) Reads() shared.CommandReads                   { return nil }
func (t fakeTx) DB() sqlc.DBTX                                { return nil }

type failedAttempt struct {
	lastError   string
	maxAttempts int32
	retryAt     time.Time
}

type fakeOutbox struct {
	mu        sync.Mutex
	createErr error
	claimErr  error
	created   []shared.NotificationJob
	pending   []shared.NotificationJob
	sent      []uuid.UUID
	failed    map[uuid.UUID]failedAttempt
}

func (o *fakeOutbox) CreateJob(_ context.Context, _ sqlc.DBTX, job shared.NotificationJob) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.createErr != nil {
		return o.createErr
	}
	o.created = append(o.created, job)
	return nil
}

func (o *fakeOutbox) ClaimPendingJobs(_ context.Context, _ sqlc.DBTX, _ time.Time, limit int32) ([]shared.NotificationJob, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.claimErr != nil {
		return nil, o.claimErr
	}
	n := min(int(limit), len(o.pending))
	jobs := o.pending[:n]
	o.pending = o.pending[n:]
	return jobs, nil
}

func (o *fakeOutbox) MarkSent(_ context.Context, _ sqlc.DBTX, jobID uuid.UUID, _ time.Time) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.sent = append(o.sent, jobID)
	return nil
}

func (o *fakeOutbox) MarkAttemptFailed(_ context.Context, _ sqlc.DBTX, jobID uuid.UUID, lastError string, maxAttempts int32, retryAt time.Time) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.failed == nil {
		o.failed = map[uuid.UUID]failedAttempt{}
	}
	o.failed[jobID] = failedAttempt{lastError: lastError, maxAttempts: maxAttempts, retryAt: retryAt}
	return nil
}

func (o *fakeOutbox) createdJobs() []shared.NotificationJob {
	o.mu.Lock()
	defer o.mu.Unlock()
	return append([]shared.NotificationJob(nil), o.created...)
}

// stubPublisher fails for the booking ids in failFor.
type stubPublisher struct {
	failFor   map[uuid.UUID]error
	published []shared.NotificationJob
}

func (p *stubPublisher) Publish(_ context.Context, job shared.NotificationJob) error {
	if err, ok := p.failFor[job.BookingID]; ok {
		return err
	}
	p.published = append(p.published, job)
	return nil
}

func (p *stubPublisher) Close() error { return nil }

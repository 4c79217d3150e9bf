package shared

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Notifier accepts booking events for best-effort delivery. It never blocks
// on delivery and reports nothing back to the caller.
type Notifier interface {
	Notify(ctx context.Context, kind EventKind, bookingID uuid.UUID)
}

// Outbox stores an event durably and reports whether it was kept. Batch jobs
// use it where a dropped event would not be sent again.
type Outbox interface {
	Enqueue(ctx context.Context, kind EventKind, bookingID uuid.UUID) error
}

// Locker is a lease shared across replicas.
type Locker interface {
	TryLock(ctx context.Context, key string, ttl time.Duration) (bool, error)
	Unlock(ctx context.Context, key string) error
}

package lock

import (
	"context"
	"sync"
	"time"

	"facility-booking/internal/pkg/clock"
	"facility-booking/internal/usecase/shared"
)

// MemoryLocker leases keys within one process. It is used when no Redis
// address is configured, which is only safe for a single replica.
type MemoryLocker struct {
	clock  clock.Clock
	mu     sync.Mutex
	leases map[string]time.Time
}

var _ shared.Locker = (*MemoryLocker)(nil)

func NewMemoryLocker(clk clock.Clock) *MemoryLocker {
	return &MemoryLocker{
		clock:  clk,
		leases: make(map[string]time.Time),
	}
}

func (l *MemoryLocker) TryLock(_ context.Context, key string, ttl time.Duration) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.clock.Now()
	if expires, held := l.leases[key]; held && now.Before(expires) {
		return false, nil
	}
	l.leases[key] = now.Add(ttl)
	return true, nil
}

func (l *MemoryLocker) Unlock(_ context.Context, key string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.leases, key)
	return nil
}

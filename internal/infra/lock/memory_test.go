//go:build unit

package lock_test

import (
	"context"
	"testing"
	"time"

	"facility-booking/internal/infra/lock"
	"facility-booking/internal/pkg/clock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryLocker(t *testing.T) {
	ctx := context.Background()
	clk := clock.NewMockClock(time.Date(2030, 4, 1, 9, 0, 0, 0, time.UTC))
	locker := lock.NewMemoryLocker(clk)

	ok, err := locker.TryLock(ctx, "k", time.Hour)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = locker.TryLock(ctx, "k", time.Hour)
	require.NoError(t, err)
	assert.False(t, ok, "lease still held")

	clk.Add(time.Hour)
	ok, err = locker.TryLock(ctx, "k", time.Hour)
	require.NoError(t, err)
	assert.True(t, ok, "expired lease can be taken over")

	require.NoError(t, locker.Unlock(ctx, "k"))
	ok, err = locker.TryLock(ctx, "k", time.Hour)
	require.NoError(t, err)
	assert.True(t, ok)
}

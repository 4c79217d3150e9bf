//go:build unit

package lock

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const reminderKey = "facility-booking:reminders:2030-04-02"

func TestRedisLocker_TryLock(t *testing.T) {
	ctx := context.Background()

	t.Run("acquired when the key is free", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		locker := NewRedisLocker(db)

		mock.ExpectSetNX(reminderKey, locker.owner, time.Hour).SetVal(true)

		ok, err := locker.TryLock(ctx, reminderKey, time.Hour)
		require.NoError(t, err)
		assert.True(t, ok)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("refused while another owner holds it", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		locker := NewRedisLocker(db)

		mock.ExpectSetNX(reminderKey, locker.owner, time.Hour).SetVal(false)

		ok, err := locker.TryLock(ctx, reminderKey, time.Hour)
		require.NoError(t, err)
		assert.False(t, ok)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("redis error is returned", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		locker := NewRedisLocker(db)

		mock.ExpectSetNX(reminderKey, locker.owner, time.Hour).SetErr(errors.New("connection refused"))

		ok, err := locker.TryLock(ctx, reminderKey, time.Hour)
		require.Error(t, err)
		assert.False(t, ok)
	})
}

func TestRedisLocker_Unlock(t *testing.T) {
	ctx := context.Background()

	t.Run("releases only its own token", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		locker := NewRedisLocker(db)

		mock.ExpectEvalSha(unlockScript.Hash(), []string{reminderKey}, locker.owner).SetVal(int64(1))

		require.NoError(t, locker.Unlock(ctx, reminderKey))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("redis error is returned", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		locker := NewRedisLocker(db)

		mock.ExpectEvalSha(unlockScript.Hash(), []string{reminderKey}, locker.owner).SetErr(errors.New("connection refused"))

		require.Error(t, locker.Unlock(ctx, reminderKey))
	})
}

func TestRedisLocker_DistinctOwners(t *testing.T) {
	db, _ := redismock.NewClientMock()
	assert.NotEqual(t, NewRedisLocker(db).owner, NewRedisLocker(db).owner)
}

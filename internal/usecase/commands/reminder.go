package commands

import (
	"context"
	"log/slog"
	"time"

	"facility-booking/internal/usecase/queries"
	"facility-booking/internal/usecase/shared"
)

const reminderLockPrefix = "facility-booking:reminders:"

type ReminderCommands interface {
	// SendReminders stores a reminder for every confirmed booking starting on
	// day and returns how many were stored. At most one replica holds a given
	// day; a failed sweep releases it so a retry sends the rest. Delivery is at
	// least once.
	SendReminders(ctx context.Context, day time.Time) (int, error)
}

type reminderUseCaseImpl struct {
	bookings queries.BookingQueries
	locker   shared.Locker
	outbox   shared.Outbox
	lockTTL  time.Duration
}

func NewReminderUseCase(bookings queries.BookingQueries, locker shared.Locker, outbox shared.Outbox, lockTTL time.Duration) ReminderCommands {
	return &reminderUseCaseImpl{
		bookings: bookings,
		locker:   locker,
		outbox:   outbox,
		lockTTL:  lockTTL,
	}
}

func (uc *reminderUseCaseImpl) SendReminders(ctx context.Context, day time.Time) (int, error) {
	key := reminderLockPrefix + day.Format(time.DateOnly)

	acquired, err := uc.locker.TryLock(ctx, key, uc.lockTTL)
	if err != nil {
		return 0, err
	}
	if !acquired {
		slog.Info("reminder sweep already claimed", "day", day.Format(time.DateOnly))
		return 0, nil
	}

	sent := 0
	for view, err := range uc.bookings.ConfirmedStartingOn(ctx, day) {
		if err == nil {
			err = uc.outbox.Enqueue(ctx, shared.EventBookingReminder, view.ID)
		}
		if err != nil {
			uc.release(ctx, key)
			return sent, err
		}
		sent++
	}
	return sent, nil
}

func (uc *reminderUseCaseImpl) release(ctx context.Context, key string) {
	if err := uc.locker.Unlock(ctx, key); err != nil {
		slog.Warn("failed to release reminder lock", "key", key, "error", err.Error())
	}
}

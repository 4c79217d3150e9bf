//go:build unit

package scheduler_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"facility-booking/internal/infra/scheduler"
	"facility-booking/internal/pkg/clock"
	"facility-booking/internal/pkg/config"
	"facility-booking/internal/pkg/metrics"
	commandsmock "facility-booking/internal/testutil/mock/commands"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNextRun(t *testing.T) {
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)

	testCases := []struct {
		name string
		now  time.Time
		hour int
		loc  *time.Location
		want time.Time
	}{
		{
			name: "later today",
			now:  time.Date(2030, 4, 1, 6, 30, 0, 0, time.UTC),
			hour: 9,
			loc:  time.UTC,
			want: time.Date(2030, 4, 1, 9, 0, 0, 0, time.UTC),
		},
		{
			name: "exactly at the hour rolls to tomorrow",
			now:  time.Date(2030, 4, 1, 9, 0, 0, 0, time.UTC),
			hour: 9,
			loc:  time.UTC,
			want: time.Date(2030, 4, 2, 9, 0, 0, 0, time.UTC),
		},
		{
			name: "month boundary",
			now:  time.Date(2030, 4, 30, 22, 0, 0, 0, time.UTC),
			hour: 9,
			loc:  time.UTC,
			want: time.Date(2030, 5, 1, 9, 0, 0, 0, time.UTC),
		},
		{
			name: "hour is local to the booking timezone",
			now:  time.Date(2030, 4, 1, 1, 0, 0, 0, time.UTC), // 10:00 in Tokyo
			hour: 9,
			loc:  tokyo,
			want: time.Date(2030, 4, 2, 9, 0, 0, 0, tokyo),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := scheduler.NextRun(tc.now, tc.hour, tc.loc)
			assert.True(t, tc.want.Equal(got), "want %s got %s", tc.want, got)
		})
	}
}

func TestReminderScheduler_RunOnce(t *testing.T) {
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)

	t.Run("sweeps the next local day and counts reminders", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		reminders := commandsmock.NewMockReminderCommands(ctrl)
		m := metrics.New()
		// 2030-04-01 23:30 UTC is already 2030-04-02 in Tokyo.
		clk := clock.NewMockClock(time.Date(2030, 4, 1, 23, 30, 0, 0, time.UTC))
		s := scheduler.NewReminderScheduler(reminders, clk, m, config.ReminderConfig{Hour: 9}, tokyo)

		want := time.Date(2030, 4, 3, 0, 0, 0, 0, tokyo)
		reminders.EXPECT().SendReminders(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, day time.Time) (int, error) {
				assert.True(t, want.Equal(day), "want %s got %s", want, day)
				assert.Equal(t, 3, day.Day())
				return 4, nil
			})

		sent, err := s.RunOnce(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 4, sent)
		assert.Equal(t, 4.0, testutil.ToFloat64(m.RemindersSent))
	})

	t.Run("partial sweep still counts what was sent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		reminders := commandsmock.NewMockReminderCommands(ctrl)
		m := metrics.New()
		clk := clock.NewMockClock(time.Date(2030, 4, 1, 9, 0, 0, 0, time.UTC))
		s := scheduler.NewReminderScheduler(reminders, clk, m, config.ReminderConfig{Hour: 9}, time.UTC)

		reminders.EXPECT().SendReminders(gomock.Any(), time.Date(2030, 4, 2, 0, 0, 0, 0, time.UTC)).
			Return(2, errors.New("connection reset"))

		sent, err := s.RunOnce(context.Background())
		require.Error(t, err)
		assert.Equal(t, 2, sent)
		assert.Equal(t, 2.0, testutil.ToFloat64(m.RemindersSent))
	})
}

func TestReminderScheduler_NextAttempt(t *testing.T) {
	now := time.Date(2030, 4, 1, 9, 0, 30, 0, time.UTC)
	nextDay := time.Date(2030, 4, 2, 9, 0, 0, 0, time.UTC)
	cfg := config.ReminderConfig{Hour: 9, RetryDelay: 5 * time.Minute, MaxRetries: 2}
	s := scheduler.NewReminderScheduler(nil, clock.NewMockClock(now), nil, cfg, time.UTC)

	testCases := []struct {
		name     string
		failures int
		want     time.Time
	}{
		{name: "after a successful sweep", failures: 0, want: nextDay},
		{name: "first failure retries soon", failures: 1, want: now.Add(5 * time.Minute)},
		{name: "last allowed retry", failures: 2, want: now.Add(5 * time.Minute)},
		{name: "retries exhausted waits for the next day", failures: 3, want: nextDay},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := s.NextAttempt(now, tc.failures)
			assert.True(t, tc.want.Equal(got), "want %s got %s", tc.want, got)
		})
	}
}

func TestReminderScheduler_StartStop(t *testing.T) {
	ctrl := gomock.NewController(t)
	reminders := commandsmock.NewMockReminderCommands(ctrl)
	clk := clock.NewMockClock(time.Date(2030, 4, 1, 9, 30, 0, 0, time.UTC))
	s := scheduler.NewReminderScheduler(reminders, clk, nil, config.ReminderConfig{Hour: 9}, time.UTC)

	s.Start()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, s.Stop(ctx))
	require.NoError(t, s.Stop(ctx))
}

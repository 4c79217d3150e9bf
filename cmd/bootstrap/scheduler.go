package bootstrap

import (
	"context"

	"facility-booking/internal/infra/scheduler"
	"facility-booking/internal/pkg/clock"
	"facility-booking/internal/pkg/config"
	"facility-booking/internal/pkg/metrics"
	"facility-booking/internal/usecase/commands"

	"go.uber.org/fx"
)

var SchedulerModule = fx.Module("scheduler",
	fx.Invoke(StartReminderScheduler),
)

func StartReminderScheduler(lc fx.Lifecycle, reminders commands.ReminderCommands, clk clock.Clock, m *metrics.Metrics, cfg config.Config) {
	if !cfg.Reminder.Enabled {
		return
	}
	s := scheduler.NewReminderScheduler(reminders, clk, m, cfg.Reminder, cfg.Booking.Location())
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			s.Start()
			return nil
		},
		OnStop: s.Stop,
	})
}

package bootstrap

import (
	"context"

	"facility-booking/internal/infra/notification"
	"facility-booking/internal/pkg/clock"
	"facility-booking/internal/pkg/config"
	"facility-booking/internal/pkg/metrics"
	"facility-booking/internal/usecase/shared"

	"go.uber.org/fx"
)

var NotificationModule = fx.Module("notification",
	fx.Provide(
		NewDispatcher,
		func(d *notification.Dispatcher) shared.Notifier { return d },
		func(d *notification.Dispatcher) shared.Outbox { return d },
		NewPublisher,
		NewRelay,
	),
	fx.Invoke(func(*notification.Relay) {}),
)

func NewDispatcher(lc fx.Lifecycle, uow shared.UnitOfWork, clk clock.Clock, m *metrics.Metrics, cfg config.Config) *notification.Dispatcher {
	d := notification.NewDispatcher(uow, clk, m, cfg.Notification)
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			d.Start()
			return nil
		},
		OnStop: d.Stop,
	})
	return d
}

func NewPublisher(lc fx.Lifecycle, cfg config.Config) notification.Publisher {
	p := notification.NewPublisher(cfg.Notification.KafkaBrokers)
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return p.Close()
		},
	})
	return p
}

func NewRelay(lc fx.Lifecycle, uow shared.UnitOfWork, p notification.Publisher, clk clock.Clock, m *metrics.Metrics, cfg config.Config) *notification.Relay {
	r := notification.NewRelay(uow, p, clk, m, cfg.Notification)
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			r.Start()
			return nil
		},
		OnStop: r.Stop,
	})
	return r
}

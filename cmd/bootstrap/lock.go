package bootstrap

import (
	"context"
	"log/slog"

	"facility-booking/internal/infra/lock"
	"facility-booking/internal/pkg/clock"
	"facility-booking/internal/pkg/config"
	"facility-booking/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var LockModule = fx.Module("lock",
	fx.Provide(
		NewLocker,
	),
)

// NewLocker leases through Redis when REDIS_ADDR is set. Without it the lock
// only guards a single process.
func NewLocker(lc fx.Lifecycle, cfg config.Config, clk clock.Clock) shared.Locker {
	if cfg.Redis.Addr == "" {
		slog.Info("REDIS_ADDR未設定のためプロセス内ロックを使用します")
		return lock.NewMemoryLocker(clk)
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return client.Ping(ctx).Err()
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})
	return lock.NewRedisLocker(client)
}

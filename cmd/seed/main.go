package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"facility-booking/internal/handler/middleware"
	"facility-booking/internal/infra/db"
	"facility-booking/internal/infra/readstore"
	sqlc "facility-booking/internal/infra/sqlc/generated"
	"facility-booking/internal/infra/uow"
	"facility-booking/internal/pkg/clock"
	"facility-booking/internal/pkg/config"
	"facility-booking/internal/pkg/seed"
	"facility-booking/internal/usecase/commands"
	"facility-booking/internal/usecase/queries"
	"facility-booking/internal/usecase/shared"
)

func main() {
	path := flag.String("file", "cmd/seed/facilities.toml", "seed file")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("設定の読み込みに失敗しました", "error", err)
		os.Exit(1)
	}
	logger := middleware.NewLogger(cfg.Log).GetSlogLogger()
	slog.SetDefault(logger)

	file, err := seed.Load(*path)
	if err != nil {
		logger.Error("シードファイルの読み込みに失敗しました", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()
	pool, cleanup, err := db.Connect(ctx, cfg.DB)
	if err != nil {
		logger.Error("データベース接続に失敗しました", "error", err)
		os.Exit(1)
	}
	defer cleanup()

	q := sqlc.New()
	u := uow.NewPostgresUoW(pool, q)
	facilityCmds := commands.NewFacilityUseCase(u, clock.NewRealClock())
	facilityQueries := queries.NewFacilityQueries(
		readstore.NewFacilityReadStore(q, pool),
		shared.NewFacilityRegistry(u.CommandReads()),
	)

	res, err := seed.Apply(ctx, facilityCmds, facilityQueries, file)
	if err != nil {
		logger.Error("シードに失敗しました", "error", err, "created", res.Created)
		os.Exit(1)
	}
	logger.Info("シードが完了しました", "created", res.Created, "skipped", res.Skipped)
}

package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/joho/godotenv"

	"github.com/agrosuivi/farmdesk/internal/common"
	repo "github.com/agrosuivi/farmdesk/internal/repository"
)

func main() {
	_ = godotenv.Load()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	cfg := common.LoadConfig()
	if cfg.Database.Driver != "sqlite" && cfg.Database.DSN == "" {
		logger.Error("DB_URL env var is required")
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	entc, pool, err := repo.Open(ctx, cfg.Database, logger)
	if err != nil {
		logger.Error("opening database failed", "error", err)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	if err := repo.HealthCheck(ctx, pool, 1*time.Second, logger); err != nil {
		logger.Error("database health check failed", "error", err)
		os.Exit(1)
	}
	logger.Info("database health: OK")

	// typed query to confirm the schema is reachable, not just the socket
	farms, err := repo.NewFarmRepository(entc, logger).List(ctx)
	if err != nil {
		logger.Error("listing farms failed", "error", err)
		os.Exit(1)
	}
	logger.Info("farms reachable", "count", len(farms))
}

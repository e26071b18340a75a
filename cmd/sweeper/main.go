package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/robfig/cron/v3"

	"webhook-ops/config"
	"webhook-ops/config/postgre"
	configRedis "webhook-ops/config/redis"
	alertRepoPg "webhook-ops/internal/alert/repository/postgre"
	alertUsecase "webhook-ops/internal/alert/usecase"
	idemRedis "webhook-ops/internal/idempotency/redis"
	"webhook-ops/pkg/log"
)

// The sweeper runs the periodic maintenance that the API serves on
// demand: purging expired idempotency records and auto-dismissing
// expired alerts.
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting webhook-ops sweeper...")

	// 3. Infrastructure
	db, err := postgre.Connect(ctx, cfg.Postgres)
	if err != nil {
		logger.Fatalf(ctx, "Failed to connect to postgres: %v", err)
	}
	defer postgre.Disconnect(ctx, db)

	redisClient, err := configRedis.Connect(ctx, cfg.Redis)
	if err != nil {
		logger.Fatalf(ctx, "Failed to connect to redis: %v", err)
	}
	defer configRedis.Disconnect()

	// 4. Components
	idemStore := idemRedis.New(redisClient, cfg.Idempotency.TTL, logger)
	alertUC := alertUsecase.New(alertRepoPg.New(db, logger), logger)

	// 5. Schedules
	c := cron.New()

	_, err = c.AddFunc(cfg.Sweeper.IdempotencyCleanupSpec, func() {
		removed, err := idemStore.CleanupExpired(ctx)
		if err != nil {
			logger.Errorf(ctx, "Idempotency cleanup failed: %v", err)
			return
		}
		logger.Infof(ctx, "Idempotency cleanup removed %d records", removed)
	})
	if err != nil {
		logger.Fatalf(ctx, "Invalid idempotency cleanup spec %q: %v", cfg.Sweeper.IdempotencyCleanupSpec, err)
	}

	_, err = c.AddFunc(cfg.Sweeper.AlertSweepSpec, func() {
		dismissed, err := alertUC.SweepExpired(ctx)
		if err != nil {
			logger.Errorf(ctx, "Alert sweep failed: %v", err)
			return
		}
		logger.Infof(ctx, "Alert sweep dismissed %d alerts", dismissed)
	})
	if err != nil {
		logger.Fatalf(ctx, "Invalid alert sweep spec %q: %v", cfg.Sweeper.AlertSweepSpec, err)
	}

	c.Start()
	logger.Infof(ctx, "Sweeper running (idempotency: %q, alerts: %q)",
		cfg.Sweeper.IdempotencyCleanupSpec, cfg.Sweeper.AlertSweepSpec)

	<-ctx.Done()

	stopCtx := c.Stop()
	<-stopCtx.Done()
	logger.Info(context.Background(), "Sweeper stopped gracefully")
}

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"webhook-ops/config"
	"webhook-ops/config/postgre"
	configRedis "webhook-ops/config/redis"
	_ "webhook-ops/docs" // Swagger docs
	"webhook-ops/internal/httpserver"
	idemRedis "webhook-ops/internal/idempotency/redis"
	"webhook-ops/internal/webhook"
	"webhook-ops/pkg/log"
	"webhook-ops/pkg/slack"
)

// @title       Webhook Ops API
// @description Webhook signature verification, idempotent event ingestion and alert auto-remediation.
// @version     1
// @host        localhost:8080
// @schemes     http
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

	logger.Info(ctx, "Starting webhook-ops API...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	if cfg.Webhook.Secret == "" {
		logger.Fatal(ctx, "WEBHOOK_SECRET is required")
	}

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

	// 4. Shared components
	idemStore := idemRedis.New(redisClient, cfg.Idempotency.TTL, logger)
	notifier := slack.New(cfg.Remediation.SlackWebhookURL)

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		PostgresDB:  db,
		IdemStore:   idemStore,
		Notifier:    notifier,
		WebhookConfig: webhook.Config{
			Secret:          cfg.Webhook.Secret,
			FreshnessWindow: cfg.Webhook.FreshnessWindow,
			RateLimitPerMin: cfg.Webhook.RateLimitPerMin,
			SigningModes:    cfg.Webhook.SigningModes,
		},
		InternalKey:   cfg.Admin.InternalKey,
		ActionTimeout: cfg.Remediation.ActionTimeout,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize HTTP server: %v", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(); err != nil {
		logger.Errorf(ctx, "Failed to run server: %v", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

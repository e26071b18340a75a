package httpserver

import (
	"database/sql"
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"webhook-ops/internal/idempotency"
	"webhook-ops/internal/remediation"
	"webhook-ops/internal/webhook"
	"webhook-ops/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Infrastructure shared across domains
	postgresDB *sql.DB
	idemStore  idempotency.Store
	notifier   remediation.Notifier

	// Ingestion + admin settings
	webhookConfig webhook.Config
	internalKey   string
	actionTimeout time.Duration
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	PostgresDB *sql.DB
	IdemStore  idempotency.Store
	Notifier   remediation.Notifier

	WebhookConfig webhook.Config
	InternalKey   string
	ActionTimeout time.Duration
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:             logger,
		gin:           gin.New(),
		port:          cfg.Port,
		mode:          cfg.Mode,
		environment:   cfg.Environment,
		postgresDB:    cfg.PostgresDB,
		idemStore:     cfg.IdemStore,
		notifier:      cfg.Notifier,
		webhookConfig: cfg.WebhookConfig,
		internalKey:   cfg.InternalKey,
		actionTimeout: cfg.ActionTimeout,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.postgresDB == nil {
		return errors.New("postgres connection is required")
	}
	if srv.idemStore == nil {
		return errors.New("idempotency store is required")
	}
	if srv.webhookConfig.Secret == "" {
		return errors.New("webhook secret is required")
	}
	return nil
}

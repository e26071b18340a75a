package httpserver

import (
	"context"

	alertHTTP "webhook-ops/internal/alert/delivery/http"
	alertRepoPg "webhook-ops/internal/alert/repository/postgre"
	alertUsecase "webhook-ops/internal/alert/usecase"
	"webhook-ops/internal/event"
	eventHTTP "webhook-ops/internal/event/delivery/http"
	eventRepoPg "webhook-ops/internal/event/repository/postgre"
	eventUsecase "webhook-ops/internal/event/usecase"
	idemHTTP "webhook-ops/internal/idempotency/delivery/http"
	"webhook-ops/internal/middleware"
	remediationHTTP "webhook-ops/internal/remediation/delivery/http"
	remediationUsecase "webhook-ops/internal/remediation/usecase"
	runbookHTTP "webhook-ops/internal/runbook/delivery/http"
	runbookRepoPg "webhook-ops/internal/runbook/repository/postgre"
	runbookUsecase "webhook-ops/internal/runbook/usecase"
	"webhook-ops/internal/webhook"
)

// registerDomainRoutes wires every domain bottom-up: repository,
// usecase, handler, routes. The admin surface lives under /api/v1
// behind the internal key; the ingestion endpoint is public.
func (srv HTTPServer) registerDomainRoutes() error {
	ctx := context.Background()

	mw := middleware.New(srv.l, srv.internalKey)
	api := srv.gin.Group("/api/v1")

	// Alert domain
	alertRepo := alertRepoPg.New(srv.postgresDB, srv.l)
	alertUC := alertUsecase.New(alertRepo, srv.l)
	alertHTTP.RegisterRoutes(api, alertHTTP.New(srv.l, alertUC), mw)

	// Event domain. The dispatcher re-signs replayed payloads with the
	// current secret.
	dispatcher := event.NewHTTPDispatcher(srv.webhookConfig.Secret, srv.actionTimeout)
	eventRepo := eventRepoPg.New(srv.postgresDB, srv.l)
	eventUC := eventUsecase.New(eventRepo, dispatcher, srv.l)
	eventHTTP.RegisterRoutes(api, eventHTTP.New(srv.l, eventUC), mw)

	// Runbook domain
	runbookRepo := runbookRepoPg.New(srv.postgresDB, srv.l)
	runbookUC := runbookUsecase.New(runbookRepo, srv.l)
	runbookHTTP.RegisterRoutes(api, runbookHTTP.New(srv.l, runbookUC), mw)

	// Remediation engine
	remediationUC := remediationUsecase.New(alertRepo, runbookUC, srv.notifier, srv.l, srv.actionTimeout)
	remediationHTTP.RegisterRoutes(api, remediationHTTP.New(srv.l, remediationUC), mw)

	// Idempotency admin surface
	idemHTTP.RegisterRoutes(api, idemHTTP.New(srv.l, srv.idemStore), mw)

	// Public ingestion endpoint
	webhookHandler := webhook.NewHandler(srv.webhookConfig, srv.idemStore, eventUC, alertUC, srv.l)
	webhook.RegisterRoutes(srv.gin, webhookHandler)

	srv.l.Infof(ctx, "Domain routes registered")
	return nil
}

package webhook

import (
	"time"

	"webhook-ops/internal/alert"
	"webhook-ops/internal/event"
	"webhook-ops/internal/idempotency"
	"webhook-ops/pkg/log"
)

// Handler is the inbound webhook ingestion endpoint.
type Handler struct {
	l        log.Logger
	verifier *Verifier
	limiter  *rateLimiter
	idem     idempotency.Store
	eventUC  event.UseCase
	alertUC  alert.UseCase
	now      func() time.Time
}

func NewHandler(cfg Config, idem idempotency.Store, eventUC event.UseCase, alertUC alert.UseCase, l log.Logger) *Handler {
	rateLimit := cfg.RateLimitPerMin
	if rateLimit <= 0 {
		rateLimit = 60
	}
	return &Handler{
		l:        l,
		verifier: NewVerifier(cfg.Secret, cfg.FreshnessWindow, cfg.SigningModes),
		limiter:  newRateLimiter(rateLimit),
		idem:     idem,
		eventUC:  eventUC,
		alertUC:  alertUC,
		now:      time.Now,
	}
}

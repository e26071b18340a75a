package webhook

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"webhook-ops/internal/alert"
	"webhook-ops/internal/event"
	"webhook-ops/internal/model"
	pkgResponse "webhook-ops/pkg/response"
)

// maxBodyBytes caps inbound payloads at 1 MiB.
const maxBodyBytes = 1 << 20

// RegisterRoutes mounts the public ingestion endpoint.
func RegisterRoutes(r *gin.Engine, h *Handler) {
	r.POST("/webhook/:source", h.HandleInbound)
}

// HandleInbound godoc
// @Summary     Ingest a webhook delivery
// @Description Verifies the HMAC signature, deduplicates by event ID and records the delivery.
// @Tags        Webhooks
// @Accept      json
// @Produce     json
// @Param       source              path   string true  "Origin system tag"
// @Param       X-Webhook-Signature header string true  "hex HMAC-SHA256, optionally sha256= prefixed"
// @Param       X-Webhook-Timestamp header string false "Unix seconds; required for timestamped sources"
// @Success     200 {object} map[string]any "accepted or duplicate"
// @Failure     400 {object} map[string]any "malformed header or body"
// @Failure     401 {object} map[string]any "signature or timestamp rejected"
// @Failure     429 {object} map[string]any "rate limited"
// @Failure     503 {object} map[string]any "idempotency store unavailable, retry later"
// @Router      /webhook/{source} [POST]
func (h *Handler) HandleInbound(c *gin.Context) {
	ctx := c.Request.Context()
	source := c.Param("source")

	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxBodyBytes+1))
	if err != nil {
		h.l.Errorf(ctx, "webhook: read body from %s: %v", source, err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read body"})
		return
	}
	if len(body) > maxBodyBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "payload too large"})
		return
	}

	if !h.limiter.Allow(source) {
		h.l.Warnf(ctx, "webhook: rate limit exceeded for %s", source)
		h.raiseAlert(c, alert.RateLimit(source, "inbound delivery rate limit exceeded", nil))
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
		return
	}

	// Verification runs on the raw bytes, before any parsing.
	signature := c.GetHeader("X-Webhook-Signature")
	timestamp := c.GetHeader("X-Webhook-Timestamp")
	if err := h.verifier.Verify(source, body, signature, timestamp, h.now()); err != nil {
		h.rejectUnverified(c, source, body, err)
		return
	}

	if !json.Valid(body) {
		h.l.Warnf(ctx, "webhook: unparseable payload from %s", source)
		h.recordEvent(c, event.RecordEventInput{
			Source:         source,
			Verified:       true,
			SignatureValid: boolPtr(true),
			Payload:        body,
			Error:          "payload is not valid JSON",
		})
		h.raiseAlert(c, alert.WebhookFailure(source, "payload is not valid JSON", map[string]interface{}{
			"payload_size": len(body),
		}))
		c.JSON(http.StatusBadRequest, gin.H{"error": "payload is not valid JSON"})
		return
	}

	eventID := extractEventID(body, c.GetHeader("X-Webhook-Id"))

	isDuplicate, err := h.idem.CheckAndRecord(ctx, eventID)
	if err != nil {
		// Fail closed: a 5xx makes the provider redeliver.
		h.l.Errorf(ctx, "webhook: idempotency check for %s/%s: %v", source, eventID, err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "idempotency store unavailable, retry later"})
		return
	}
	if isDuplicate {
		pkgResponse.OK(c, gin.H{"status": "duplicate", "event_id": eventID})
		return
	}

	recorded, err := h.eventUC.Record(ctx, event.RecordEventInput{
		ID:             eventID,
		Source:         source,
		Verified:       true,
		SignatureValid: boolPtr(true),
		Payload:        body,
	})
	if err != nil {
		h.l.Errorf(ctx, "webhook: record event %s/%s: %v", source, eventID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to record event"})
		return
	}

	pkgResponse.OK(c, gin.H{"status": "accepted", "event_id": recorded.ID})
}

// rejectUnverified answers a failed verification, recording the
// attempt and raising a security alert for monitoring.
func (h *Handler) rejectUnverified(c *gin.Context, source string, body []byte, verifyErr error) {
	ctx := c.Request.Context()
	h.l.Warnf(ctx, "webhook: verification failed for %s: %v", source, verifyErr)

	h.recordEvent(c, event.RecordEventInput{
		Source:         source,
		Verified:       false,
		SignatureValid: boolPtr(false),
		Payload:        body,
		Error:          verifyErr.Error(),
	})
	h.raiseAlert(c, alert.SecurityIncident(source, verifyErr.Error(), map[string]interface{}{
		"remote_addr": c.ClientIP(),
	}))

	status := http.StatusUnauthorized
	if errors.Is(verifyErr, ErrMalformedHeader) {
		status = http.StatusBadRequest
	}
	c.JSON(status, gin.H{"error": verifyErr.Error()})
}

// recordEvent appends an event entry, best effort.
func (h *Handler) recordEvent(c *gin.Context, input event.RecordEventInput) {
	ctx := c.Request.Context()
	if _, err := h.eventUC.Record(ctx, input); err != nil {
		h.l.Errorf(ctx, "webhook: record event for %s: %v", input.Source, err)
	}
}

// raiseAlert creates an alert, best effort. Ingestion answers the
// provider even when alerting is degraded.
func (h *Handler) raiseAlert(c *gin.Context, input alert.CreateAlertInput) {
	ctx := c.Request.Context()
	if _, err := h.alertUC.Create(ctx, model.SystemScope, input); err != nil {
		h.l.Errorf(ctx, "webhook: raise alert for %s: %v", input.Source, err)
	}
}

// extractEventID derives the idempotency key for a delivery: the id or
// event_id field of the body, else the X-Webhook-Id header, else a
// digest of the body so byte-identical redeliveries still collide.
func extractEventID(body []byte, headerID string) string {
	var probe struct {
		ID      string `json:"id"`
		EventID string `json:"event_id"`
	}
	if err := json.Unmarshal(body, &probe); err == nil {
		if probe.ID != "" {
			return probe.ID
		}
		if probe.EventID != "" {
			return probe.EventID
		}
	}
	if headerID != "" {
		return headerID
	}
	sum := sha256.Sum256(body)
	return hex.EncodeToString(sum[:])
}

func boolPtr(b bool) *bool { return &b }

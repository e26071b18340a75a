package event

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"strconv"
	"time"
)

const (
	dispatchAttempts = 3
	dispatchBackoff  = 500 * time.Millisecond
)

// HTTPDispatcher re-POSTs payloads to a target URL. The payload goes
// out byte-for-byte as stored; the signature is freshly computed with
// the current secret over "{timestamp}.{body}" since secrets may have
// rotated since the original delivery.
type HTTPDispatcher struct {
	secret     []byte
	httpClient *http.Client
	now        func() time.Time
}

// NewHTTPDispatcher creates a dispatcher signing with secret; each
// attempt is bounded by timeout.
func NewHTTPDispatcher(secret string, timeout time.Duration) *HTTPDispatcher {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &HTTPDispatcher{
		secret:     []byte(secret),
		httpClient: &http.Client{Timeout: timeout},
		now:        time.Now,
	}
}

// Dispatch posts the payload, retrying transient failures. Returns the
// number of attempts made alongside the final error, if any.
func (d *HTTPDispatcher) Dispatch(ctx context.Context, targetURL string, payload []byte) (int, error) {
	var lastErr error

	for attempt := 1; attempt <= dispatchAttempts; attempt++ {
		if err := d.post(ctx, targetURL, payload); err != nil {
			lastErr = err
			select {
			case <-ctx.Done():
				return attempt, ctx.Err()
			case <-time.After(dispatchBackoff):
			}
			continue
		}
		return attempt, nil
	}

	return dispatchAttempts, lastErr
}

func (d *HTTPDispatcher) post(ctx context.Context, targetURL string, payload []byte) error {
	timestamp := strconv.FormatInt(d.now().Unix(), 10)

	mac := hmac.New(sha256.New, d.secret)
	mac.Write([]byte(timestamp))
	mac.Write([]byte("."))
	mac.Write(payload)
	signature := hex.EncodeToString(mac.Sum(nil))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, targetURL, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build replay request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Webhook-Signature", "sha256="+signature)
	req.Header.Set("X-Webhook-Timestamp", timestamp)

	resp, err := d.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("replay POST failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("replay target answered %d", resp.StatusCode)
	}
	return nil
}

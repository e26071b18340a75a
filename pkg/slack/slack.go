package slack

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client posts messages to a Slack incoming webhook.
type Client struct {
	webhookURL string
	httpClient *http.Client
}

// Message is the Slack incoming-webhook payload.
type Message struct {
	Text    string `json:"text"`
	Channel string `json:"channel,omitempty"`
}

// New creates a new Slack webhook client.
func New(webhookURL string) *Client {
	return &Client{
		webhookURL: webhookURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// SetWebhookURL overrides the webhook URL for testing purposes.
func (c *Client) SetWebhookURL(url string) {
	c.webhookURL = url
}

// Send posts a text message to the configured webhook.
func (c *Client) Send(ctx context.Context, text string) error {
	if c.webhookURL == "" {
		return fmt.Errorf("slack webhook URL not configured")
	}

	body, err := json.Marshal(Message{Text: text})
	if err != nil {
		return fmt.Errorf("failed to marshal slack message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.webhookURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build slack request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send slack message: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("slack webhook API error %d: %s", resp.StatusCode, string(raw))
	}

	return nil
}

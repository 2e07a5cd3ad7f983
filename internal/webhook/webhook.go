// Package webhook delivers completed forms to the downstream document
// automation scenario.
package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

// StatusError is returned when the webhook endpoint answers with a
// non-2xx status.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("webhook: unexpected status %d", e.Code)
}

// Client posts form submissions to a single webhook URL.
type Client struct {
	url    string
	client *http.Client
	logger *slog.Logger
	now    func() time.Time
}

// Option configures a [Client].
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.client = hc
	}
}

// WithTimeout sets the per-submission timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.client.Timeout = d
	}
}

// WithLogger replaces the default logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		c.logger = l
	}
}

// WithClock replaces the timestamp source. Used in tests.
func WithClock(now func() time.Time) Option {
	return func(c *Client) {
		c.now = now
	}
}

// NewClient builds a client for the given webhook URL.
func NewClient(url string, opts ...Option) *Client {
	c := &Client{
		url:    url,
		client: &http.Client{Timeout: 30 * time.Second},
		logger: slog.Default(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Submit posts the form values as a flat JSON object carrying the
// agent code and a submission timestamp alongside every field. A
// non-2xx answer yields a [*StatusError]. Submissions are not
// retried; the operator resubmits after fixing the cause.
func (c *Client) Submit(ctx context.Context, agentCode string, values map[string]string) error {
	payload := make(map[string]any, len(values)+2)
	for k, v := range values {
		payload[k] = v
	}
	payload["agentCode"] = agentCode
	payload["timestamp"] = c.now().UTC().Format(time.RFC3339)

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("webhook: encoding payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("webhook: building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	c.logger.InfoContext(ctx, "submitting form", "agent_code", agentCode, "fields", len(values))

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("webhook: sending request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		c.logger.WarnContext(ctx, "webhook rejected submission", "status", resp.StatusCode)
		return &StatusError{Code: resp.StatusCode, Body: string(respBody)}
	}

	c.logger.InfoContext(ctx, "form submitted", "agent_code", agentCode, "status", resp.StatusCode)
	return nil
}

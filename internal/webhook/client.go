// Package webhook delivers verification reports to an HTTP endpoint.
package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/zinc-sig/uvkit/internal/logging"
	"github.com/zinc-sig/uvkit/internal/output"
)

// Client posts reports to a single webhook endpoint
type Client struct {
	httpClient  *http.Client
	config      *Config
	retryConfig *RetryConfig
}

// NewClient creates a webhook client, filling in the default method,
// timeout and retry settings
func NewClient(config *Config, retryConfig *RetryConfig) *Client {
	if config.Method == "" {
		config.Method = http.MethodPost
	}
	if config.Timeout == 0 {
		config.Timeout = DefaultTimeout
	}
	if retryConfig == nil {
		retryConfig = DefaultRetryConfig()
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: 10 * time.Second, // per request
		},
		config:      config,
		retryConfig: retryConfig,
	}
}

// Send delivers the report. Local delivery fields are stripped before
// sending. A 2xx response is success; retryable statuses are retried up to
// MaxRetries times within the overall Timeout.
func (c *Client) Send(ctx context.Context, report *output.Report) error {
	body, err := json.Marshal(report.Payload())
	if err != nil {
		return fmt.Errorf("failed to marshal webhook payload: %w", err)
	}

	log := logging.Get(ctx).With("url", c.config.URL)

	ctx, cancel := context.WithTimeout(ctx, c.config.Timeout)
	defer cancel()

	var lastErr error
	for attempt := 0; attempt <= c.retryConfig.MaxRetries; attempt++ {
		if attempt > 0 {
			delay := c.retryConfig.delay(attempt)
			log.Debug("retrying webhook", "attempt", attempt, "max_retries", c.retryConfig.MaxRetries, "delay", delay)

			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return fmt.Errorf("webhook timeout after %d attempts: %w", attempt, ctx.Err())
			}
		}

		statusCode, err := c.post(ctx, body)
		if err == nil && statusCode >= 200 && statusCode < 300 {
			log.Debug("webhook delivered", "status", statusCode)
			return nil
		}

		if err != nil {
			lastErr = fmt.Errorf("attempt %d failed: %w", attempt+1, err)
		} else {
			lastErr = fmt.Errorf("attempt %d failed with status %d", attempt+1, statusCode)
		}

		if statusCode > 0 && !retryable(statusCode) {
			log.Debug("non-retryable webhook status", "status", statusCode)
			return lastErr
		}
	}

	if c.retryConfig.MaxRetries == 0 {
		return lastErr
	}
	return fmt.Errorf("webhook failed after %d attempts: %w", c.retryConfig.MaxRetries+1, lastErr)
}

func (c *Client) post(ctx context.Context, body []byte) (int, error) {
	req, err := http.NewRequestWithContext(ctx, c.config.Method, c.config.URL, bytes.NewReader(body))
	if err != nil {
		return 0, err
	}

	req.Header.Set("Content-Type", "application/json")
	for k, v := range c.config.Headers {
		req.Header.Set(k, v)
	}

	switch c.config.AuthType {
	case AuthBearer:
		req.Header.Set("Authorization", "Bearer "+c.config.AuthToken)
	case AuthAPIKey:
		req.Header.Set("X-API-Key", c.config.AuthToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	// Drain so the connection can be reused
	_, _ = io.Copy(io.Discard, resp.Body)

	return resp.StatusCode, nil
}

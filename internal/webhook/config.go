package webhook

import (
	"fmt"
	"strings"
	"time"
)

const (
	AuthNone   = "none"
	AuthBearer = "bearer"
	AuthAPIKey = "api-key"

	// DefaultTimeout bounds a whole delivery, retries included
	DefaultTimeout = 30 * time.Second
)

// Config holds webhook endpoint configuration
type Config struct {
	URL       string            // Webhook endpoint URL
	Method    string            // HTTP method (default: POST)
	Headers   map[string]string // Custom headers
	Timeout   time.Duration     // Overall timeout for all attempts
	AuthType  string            // none, bearer or api-key
	AuthToken string
}

// Validate checks the auth settings
func (c *Config) Validate() error {
	if !strings.HasPrefix(c.URL, "http://") && !strings.HasPrefix(c.URL, "https://") {
		return fmt.Errorf("invalid webhook URL %q: must start with http:// or https://", c.URL)
	}
	switch c.AuthType {
	case "", AuthNone:
	case AuthBearer, AuthAPIKey:
		if c.AuthToken == "" {
			return fmt.Errorf("webhook auth type %q requires a token", c.AuthType)
		}
	default:
		return fmt.Errorf("unsupported webhook auth type %q (expected none, bearer or api-key)", c.AuthType)
	}
	return nil
}

// RetryConfig holds retry configuration
type RetryConfig struct {
	MaxRetries   int           // Retries after the first attempt (default: 0)
	InitialDelay time.Duration // Delay before the first retry (default: 1s)
	MaxDelay     time.Duration // Maximum delay (default: 30s)
	Multiplier   float64       // Backoff multiplier (default: 2.0)
}

// DefaultRetryConfig returns the default retry configuration: a single
// attempt, with backoff settings ready for when retries are enabled
func DefaultRetryConfig() *RetryConfig {
	return &RetryConfig{
		MaxRetries:   0,
		InitialDelay: 1 * time.Second,
		MaxDelay:     30 * time.Second,
		Multiplier:   2.0,
	}
}

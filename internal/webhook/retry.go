package webhook

import (
	"math"
	"math/rand/v2"
	"net/http"
	"time"
)

// jitterFraction bounds the random spread applied to each retry delay
const jitterFraction = 0.1

// baseDelay is InitialDelay * Multiplier^(retry-1), capped at MaxDelay.
// The first attempt (retry 0) never waits.
func (c *RetryConfig) baseDelay(retry int) time.Duration {
	if retry <= 0 {
		return 0
	}
	delay := float64(c.InitialDelay) * math.Pow(c.Multiplier, float64(retry-1))
	return time.Duration(math.Min(delay, float64(c.MaxDelay)))
}

// delay is baseDelay spread by up to jitterFraction either way
func (c *RetryConfig) delay(retry int) time.Duration {
	base := float64(c.baseDelay(retry))
	return time.Duration(base + (rand.Float64()*2-1)*base*jitterFraction)
}

// retryable reports whether a webhook response status is worth another attempt
func retryable(status int) bool {
	switch status {
	case http.StatusRequestTimeout,
		http.StatusTooManyRequests,
		http.StatusInternalServerError,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return true
	}
	return false
}

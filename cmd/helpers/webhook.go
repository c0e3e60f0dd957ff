package helpers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/zinc-sig/uvkit/cmd/config"
	contextparser "github.com/zinc-sig/uvkit/internal/context"
	"github.com/zinc-sig/uvkit/internal/webhook"
)

// EnvWebhook is the environment prefix for webhook settings
const EnvWebhook = "UVKIT_WEBHOOK"

// BuildWebhookConfig merges webhook settings from all sources.
// Precedence: env < file < json < kv < direct flags
func BuildWebhookConfig(cfg *config.WebhookConfig) (map[string]any, error) {
	webhookConf, err := contextparser.Sources{
		EnvPrefix: EnvWebhook,
		File:      cfg.ConfigFile,
		JSON:      cfg.Config,
		Pairs:     cfg.ConfigKV,
	}.Object()
	if err != nil {
		return nil, fmt.Errorf("failed to build webhook config: %w", err)
	}

	// Flags only override when they differ from their defaults
	if cfg.URL != "" {
		webhookConf["url"] = cfg.URL
	}
	if cfg.Method != "" && cfg.Method != http.MethodPost {
		webhookConf["method"] = cfg.Method
	}
	if cfg.AuthType != "" && cfg.AuthType != webhook.AuthNone {
		webhookConf["auth_type"] = cfg.AuthType
	}
	if cfg.AuthToken != "" {
		webhookConf["auth_token"] = cfg.AuthToken
	}
	if cfg.Timeout != "" && cfg.Timeout != "30s" {
		webhookConf["timeout"] = cfg.Timeout
	}
	if cfg.Retries != 0 {
		webhookConf["retries"] = cfg.Retries
	}
	if cfg.RetryDelay != "" && cfg.RetryDelay != "1s" {
		webhookConf["retry_delay"] = cfg.RetryDelay
	}

	return webhookConf, nil
}

// ParseWebhookConfig converts the merged settings into client
// configuration. It returns nil configs when no URL is set.
func ParseWebhookConfig(cfg *config.WebhookConfig) (*webhook.Config, *webhook.RetryConfig, error) {
	configMap, err := BuildWebhookConfig(cfg)
	if err != nil {
		return nil, nil, err
	}

	url, _ := configMap["url"].(string)
	if url == "" {
		return nil, nil, nil
	}

	timeout, err := durationValue(configMap, "timeout", webhook.DefaultTimeout)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid webhook timeout duration: %w", err)
	}
	retryDelay, err := durationValue(configMap, "retry_delay", time.Second)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid webhook retry delay: %w", err)
	}

	method, _ := configMap["method"].(string)
	method = strings.ToUpper(method)
	switch method {
	case "":
		method = http.MethodPost
	case http.MethodPost, http.MethodPut, http.MethodPatch:
	default:
		return nil, nil, fmt.Errorf("unsupported webhook method %q (expected POST, PUT or PATCH)", method)
	}

	authType, _ := configMap["auth_type"].(string)
	if authType == "" {
		authType = webhook.AuthNone
	}
	authToken, _ := configMap["auth_token"].(string)

	// int from key=value inference, float64 from JSON
	maxRetries := 0
	switch r := configMap["retries"].(type) {
	case int:
		maxRetries = r
	case float64:
		maxRetries = int(r)
	}
	if maxRetries < 0 {
		return nil, nil, fmt.Errorf("webhook retries must not be negative, got %d", maxRetries)
	}

	webhookConfig := &webhook.Config{
		URL:       url,
		Method:    method,
		Timeout:   timeout,
		AuthType:  authType,
		AuthToken: authToken,
	}
	if err := webhookConfig.Validate(); err != nil {
		return nil, nil, err
	}

	retryConfig := webhook.DefaultRetryConfig()
	retryConfig.MaxRetries = maxRetries
	retryConfig.InitialDelay = retryDelay

	return webhookConfig, retryConfig, nil
}

func durationValue(m map[string]any, key string, def time.Duration) (time.Duration, error) {
	s, ok := m[key].(string)
	if !ok || s == "" {
		return def, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, err
	}
	if d <= 0 {
		return 0, fmt.Errorf("%s must be positive", key)
	}
	return d, nil
}

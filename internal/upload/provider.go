// Package upload stores verification reports with a remote storage provider.
package upload

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path"
	"time"
)

// Provider defines the interface for report storage backends
type Provider interface {
	// Configure sets up the provider from a flat settings map
	Configure(config map[string]any) error

	// Upload stores size bytes from reader at remotePath
	Upload(ctx context.Context, reader io.Reader, size int64, remotePath string) error

	// Name returns the provider name
	Name() string
}

// ReportName returns the object name for a report started at t,
// e.g. uv-verify-20261017T093000Z.json
func ReportName(t time.Time) string {
	return "uv-verify-" + t.UTC().Format("20060102T150405Z") + ".json"
}

// Report uploads an encoded report under dir, returning the remote path used
func Report(ctx context.Context, p Provider, dir string, data []byte, startedAt time.Time) (string, error) {
	remotePath := ReportName(startedAt)
	if dir != "" {
		remotePath = path.Join(dir, remotePath)
	}
	if err := p.Upload(ctx, bytes.NewReader(data), int64(len(data)), remotePath); err != nil {
		return "", fmt.Errorf("failed to upload report with %s: %w", p.Name(), err)
	}
	return remotePath, nil
}

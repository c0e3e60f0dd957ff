package helpers

import (
	"fmt"
	"io"

	"github.com/zinc-sig/uvkit/cmd/config"
	contextparser "github.com/zinc-sig/uvkit/internal/context"
	"github.com/zinc-sig/uvkit/internal/upload"
)

// BuildUploadConfig merges upload settings from all sources
func BuildUploadConfig(cfg *config.UploadConfig) (map[string]any, error) {
	uploadConf, err := contextparser.Sources{
		EnvPrefix: contextparser.EnvUploadConfig,
		File:      cfg.ConfigFile,
		JSON:      cfg.Config,
		Pairs:     cfg.ConfigKV,
	}.Object()
	if err != nil {
		return nil, fmt.Errorf("failed to build upload config: %w", err)
	}
	return uploadConf, nil
}

// SetupUploadProvider creates and configures the requested provider.
// It returns a nil provider when no provider was requested.
func SetupUploadProvider(cfg *config.UploadConfig) (upload.Provider, map[string]any, error) {
	if cfg.Provider == "" {
		return nil, nil, nil
	}

	uploadConf, err := BuildUploadConfig(cfg)
	if err != nil {
		return nil, nil, err
	}

	provider, err := upload.Setup(cfg.Provider, uploadConf)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to set up upload provider: %w", err)
	}
	return provider, uploadConf, nil
}

// PrintUploadInfo prints the upload destination in verbose mode
func PrintUploadInfo(w io.Writer, provider upload.Provider, config map[string]any, remoteDir string) {
	fmt.Fprintln(w, "========================================")
	fmt.Fprintln(w, "Upload Configuration")
	fmt.Fprintln(w, "========================================")
	fmt.Fprintf(w, "Provider:       %s\n", provider.Name())

	if provider.Name() == "minio" {
		if endpoint, ok := config["endpoint"]; ok {
			fmt.Fprintf(w, "Endpoint:       %v\n", endpoint)
		}
		if bucket, ok := config["bucket"]; ok {
			fmt.Fprintf(w, "Bucket:         %v\n", bucket)
		}
		if prefix, ok := config["prefix"]; ok && prefix != "" {
			fmt.Fprintf(w, "Prefix:         %v\n", prefix)
		}
	}
	if remoteDir != "" {
		fmt.Fprintf(w, "Directory:      %s\n", remoteDir)
	}
	fmt.Fprintln(w, "----------------------------------------")
}

package helpers

import (
	"github.com/spf13/cobra"

	"github.com/zinc-sig/uvkit/cmd/config"
	"github.com/zinc-sig/uvkit/internal/verify"
)

// SetupCommonFlags adds the flags shared by both commands
func SetupCommonFlags(cmd *cobra.Command, flags *config.CommonFlags) {
	cmd.Flags().StringVarP(&flags.Dir, "dir", "C", "", "Project directory (default: current directory)")
	cmd.Flags().StringVar(&flags.ConfigPath, "config", "", "Path to uvkit configuration file (default: <dir>/.uvkit.yaml)")
	cmd.Flags().BoolVar(&flags.NoColor, "no-color", false, "Disable colored output")
	cmd.Flags().BoolVarP(&flags.Verbose, "verbose", "v", false, "Show commands, exit codes and timings")
}

// SetupVerifyFlags adds the check selection flags
func SetupVerifyFlags(cmd *cobra.Command, flags *config.VerifyFlags) {
	cmd.Flags().BoolVar(&flags.Fix, "fix", false, "Auto-fix linting issues")
	cmd.Flags().BoolVar(&flags.Format, "format", false, "Apply formatting instead of checking it")
	cmd.Flags().BoolVar(&flags.NoCoverage, "no-coverage", false, "Run tests without coverage")
	cmd.Flags().IntVar(&flags.MinCoverage, "min-coverage", verify.DefaultMinCoverage, "Minimum coverage percentage")
	cmd.Flags().BoolVar(&flags.SkipLint, "skip-lint", false, "Skip ruff linting")
	cmd.Flags().BoolVar(&flags.SkipFormat, "skip-format", false, "Skip ruff formatting")
	cmd.Flags().BoolVar(&flags.SkipMypy, "skip-mypy", false, "Skip mypy type checking")
	cmd.Flags().BoolVar(&flags.SkipTests, "skip-tests", false, "Skip pytest")
}

// SetupReportFlags adds the JSON report destination flags
func SetupReportFlags(cmd *cobra.Command, flags *config.ReportFlags) {
	cmd.Flags().BoolVar(&flags.JSON, "json", false, "Print the JSON report to stdout after the summary")
	cmd.Flags().StringVar(&flags.Path, "report", "", "Write the JSON report to a file")
}

// SetupContextFlags adds context-related flags to a command
func SetupContextFlags(cmd *cobra.Command, cfg *config.ContextConfig) {
	cmd.Flags().StringVar(&cfg.JSON, "context", "", "Context data as JSON string")
	cmd.Flags().StringArrayVar(&cfg.KV, "context-kv", nil, "Context key=value pairs (can be used multiple times)")
	cmd.Flags().StringVar(&cfg.File, "context-file", "", "Path to JSON or YAML file containing context data")
}

// SetupUploadFlags adds upload-related flags to a command
func SetupUploadFlags(cmd *cobra.Command, cfg *config.UploadConfig) {
	cmd.Flags().StringVar(&cfg.Provider, "upload-provider", "", "Upload provider type (e.g., minio)")
	cmd.Flags().StringVar(&cfg.Config, "upload-config", "", "Upload configuration as JSON string")
	cmd.Flags().StringArrayVar(&cfg.ConfigKV, "upload-config-kv", nil, "Upload config key=value pairs (can be used multiple times)")
	cmd.Flags().StringVar(&cfg.ConfigFile, "upload-config-file", "", "Path to JSON or YAML file containing upload configuration")
	cmd.Flags().StringVar(&cfg.Dir, "upload-dir", "", "Remote directory for the uploaded report")
}

// SetupWebhookFlags adds webhook-related flags to a command
func SetupWebhookFlags(cmd *cobra.Command, cfg *config.WebhookConfig) {
	cmd.Flags().StringVar(&cfg.URL, "webhook-url", "", "Webhook URL to send the report to")
	cmd.Flags().StringVar(&cfg.Method, "webhook-method", "POST", "HTTP method to use: POST, PUT or PATCH")
	cmd.Flags().StringVar(&cfg.AuthType, "webhook-auth-type", "none", "Authentication type: none, bearer, api-key")
	cmd.Flags().StringVar(&cfg.AuthToken, "webhook-auth-token", "", "Authentication token (use with --webhook-auth-type)")
	cmd.Flags().IntVar(&cfg.Retries, "webhook-retries", 0, "Webhook retry attempts after the first (0 = single attempt)")
	cmd.Flags().StringVar(&cfg.RetryDelay, "webhook-retry-delay", "1s", "Initial delay between webhook retries")
	cmd.Flags().StringVar(&cfg.Timeout, "webhook-timeout", "30s", "Total timeout for webhook including retries")

	cmd.Flags().StringVar(&cfg.Config, "webhook-config", "", "Webhook configuration as JSON string")
	cmd.Flags().StringArrayVar(&cfg.ConfigKV, "webhook-config-kv", nil, "Webhook config key=value pairs (can be used multiple times)")
	cmd.Flags().StringVar(&cfg.ConfigFile, "webhook-config-file", "", "Path to JSON or YAML file containing webhook configuration")
}

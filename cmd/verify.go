package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zinc-sig/uvkit/cmd/config"
	"github.com/zinc-sig/uvkit/cmd/helpers"
	contextparser "github.com/zinc-sig/uvkit/internal/context"
	"github.com/zinc-sig/uvkit/internal/output"
	"github.com/zinc-sig/uvkit/internal/verify"
)

// NewVerifyCommand returns the uv-verify root command
func NewVerifyCommand(newRunner RunnerFactory) *cobra.Command {
	var (
		common     config.CommonFlags
		flags      config.VerifyFlags
		report     config.ReportFlags
		contextCfg config.ContextConfig
		uploadCfg  config.UploadConfig
		webhookCfg config.WebhookConfig
	)

	cmd := &cobra.Command{
		Use:   "uv-verify",
		Short: "Run ruff, mypy and pytest through uv",
		Long: `Run the Python quality checks of a uv project in order:

  lint    uv run ruff check .
  format  uv run ruff format --check .
  mypy    uv run mypy .
  tests   uv run pytest with coverage

Every enabled check runs even when an earlier one fails. A summary is
printed at the end and the exit status is 0 only if every check passed.

With --json the progress output and summary go to stderr and stdout carries
only the JSON report.

Defaults can be set in .uvkit.yaml in the project directory; flags given on
the command line take precedence.`,
		Example: `  uv-verify
  uv-verify --fix --format
  uv-verify --skip-mypy --min-coverage 90
  uv-verify --json --context-kv branch=main --webhook-url https://ci.example.com/hooks/verify`,
		Args:          cobra.NoArgs,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := helpers.Prepare(cmd, &common)

			dir, err := helpers.ResolveDir(common.Dir)
			if err != nil {
				return err
			}
			projectCfg, err := helpers.LoadProjectConfig(dir, common.ConfigPath)
			if err != nil {
				return err
			}

			opts := projectCfg.VerifyOptions()
			helpers.ApplyVerifyFlags(cmd, &opts, &flags, &common)
			if err := opts.Validate(); err != nil {
				return err
			}

			reportContext, err := contextparser.Sources{
				EnvPrefix: contextparser.EnvContext,
				File:      contextCfg.File,
				JSON:      contextCfg.JSON,
				Pairs:     contextCfg.KV,
			}.Build()
			if err != nil {
				return fmt.Errorf("failed to build context: %w", err)
			}
			webhookConf, retryConf, err := helpers.ParseWebhookConfig(&webhookCfg)
			if err != nil {
				return err
			}
			provider, uploadConf, err := helpers.SetupUploadProvider(&uploadCfg)
			if err != nil {
				return err
			}

			delivery := &helpers.Delivery{
				Report:    report,
				Webhook:   webhookConf,
				Retry:     retryConf,
				Upload:    provider,
				UploadDir: uploadCfg.Dir,
				Stdout:    cmd.OutOrStdout(),
				Stderr:    cmd.ErrOrStderr(),
			}

			if common.Verbose {
				helpers.PrintContextInfo(cmd.ErrOrStderr(), reportContext)
				if provider != nil {
					helpers.PrintUploadInfo(cmd.ErrOrStderr(), provider, uploadConf, uploadCfg.Dir)
				}
			}

			// Keep stdout a single JSON document under --json
			progress := cmd.OutOrStdout()
			if report.JSON {
				progress = cmd.ErrOrStderr()
			}

			result, runErr := verify.New(newRunner(dir), opts, progress).Run(ctx)
			if result != nil && delivery.Enabled() {
				delivery.Deliver(ctx, output.NewReport(Version, dir, result, reportContext), result.StartedAt)
			}

			// The orchestrator has already printed the reason
			return silent(runErr)
		},
	}

	helpers.SetupCommonFlags(cmd, &common)
	helpers.SetupVerifyFlags(cmd, &flags)
	helpers.SetupReportFlags(cmd, &report)
	helpers.SetupContextFlags(cmd, &contextCfg)
	helpers.SetupWebhookFlags(cmd, &webhookCfg)
	helpers.SetupUploadFlags(cmd, &uploadCfg)

	return cmd
}

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/zinc-sig/uvkit/cmd/config"
	"github.com/zinc-sig/uvkit/cmd/helpers"
	"github.com/zinc-sig/uvkit/internal/setup"
)

// NewSetupCommand returns the uv-precommit-setup root command
func NewSetupCommand(newRunner RunnerFactory) *cobra.Command {
	var (
		common config.CommonFlags
		flags  config.SetupFlags
	)

	cmd := &cobra.Command{
		Use:   "uv-precommit-setup",
		Short: "Install pre-commit hooks in a uv project",
		Long: `Install pre-commit as a development dependency with uv, register its git
hooks and run every hook once against the whole tree.

The project must already contain .pre-commit-config.yaml. Hook failures on
the first full run are reported as a warning, since they usually mean files
were auto-fixed.`,
		Example: `  uv-precommit-setup
  uv-precommit-setup --skip-run
  uv-precommit-setup --dir ./services/api`,
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

			opts := projectCfg.SetupOptions(dir)
			helpers.ApplySetupFlags(cmd, &opts, &flags, &common)

			err = setup.New(newRunner(dir), opts, cmd.OutOrStdout()).Run(ctx)
			return silent(err)
		},
	}

	helpers.SetupCommonFlags(cmd, &common)
	cmd.Flags().BoolVar(&flags.SkipRun, "skip-run", false, "Skip running the hooks against all files")

	return cmd
}

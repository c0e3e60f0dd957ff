package helpers

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/zinc-sig/uvkit/cmd/config"
	"github.com/zinc-sig/uvkit/internal/logging"
	"github.com/zinc-sig/uvkit/internal/setup"
	"github.com/zinc-sig/uvkit/internal/style"
	"github.com/zinc-sig/uvkit/internal/verify"
)

// Prepare configures color output and installs the stderr logger,
// returning the context the command should run with
func Prepare(cmd *cobra.Command, flags *config.CommonFlags) context.Context {
	style.Configure(flags.NoColor)

	log := logging.New(cmd.ErrOrStderr(), logging.Options{
		Verbose: flags.Verbose,
		NoColor: flags.NoColor || !style.Supported(os.Stderr.Fd()),
	})
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return logging.Put(ctx, log)
}

// ApplyVerifyFlags overrides opts with every check flag set on the command
// line, leaving configuration file values in place otherwise
func ApplyVerifyFlags(cmd *cobra.Command, opts *verify.Options, flags *config.VerifyFlags, common *config.CommonFlags) {
	changed := cmd.Flags().Changed

	if changed("fix") {
		opts.Fix = flags.Fix
	}
	if changed("format") {
		opts.Format = flags.Format
	}
	if changed("no-coverage") {
		opts.NoCoverage = flags.NoCoverage
	}
	if changed("min-coverage") {
		opts.MinCoverage = flags.MinCoverage
	}

	skips := []struct {
		flag  string
		check verify.Check
		set   bool
	}{
		{"skip-lint", verify.CheckLint, flags.SkipLint},
		{"skip-format", verify.CheckFormat, flags.SkipFormat},
		{"skip-mypy", verify.CheckMypy, flags.SkipMypy},
		{"skip-tests", verify.CheckTests, flags.SkipTests},
	}
	for _, s := range skips {
		if changed(s.flag) {
			opts.SetSkip(s.check, s.set)
		}
	}

	opts.Verbose = common.Verbose
}

// ApplySetupFlags overrides opts with the setup flags set on the command line
func ApplySetupFlags(cmd *cobra.Command, opts *setup.Options, flags *config.SetupFlags, common *config.CommonFlags) {
	if cmd.Flags().Changed("skip-run") {
		opts.SkipRun = flags.SkipRun
	}
	opts.Verbose = common.Verbose
}

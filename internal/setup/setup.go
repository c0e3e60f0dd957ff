// Package setup installs pre-commit into a uv project and registers its
// git hooks.
package setup

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/zinc-sig/uvkit/internal/logging"
	"github.com/zinc-sig/uvkit/internal/runner"
	"github.com/zinc-sig/uvkit/internal/style"
)

const (
	// DefaultConfigFile is the pre-commit configuration that must exist
	// before setup starts.
	DefaultConfigFile = ".pre-commit-config.yaml"

	// DefaultPackageManager is the executable pre-commit is installed and run with.
	DefaultPackageManager = "uv"
)

var (
	// ErrConfigMissing means the pre-commit configuration file was not found.
	ErrConfigMissing = errors.New("pre-commit configuration not found")

	// ErrStepFailed means the install or hook registration step failed.
	ErrStepFailed = errors.New("setup step failed")
)

// Options configures a setup run.
type Options struct {
	Dir            string // project directory, empty for the current one
	ConfigFile     string // relative to Dir
	PackageManager string
	SkipRun        bool // skip running the hooks against every file
	Verbose        bool
}

// DefaultOptions returns options for the current directory.
func DefaultOptions() Options {
	return Options{
		ConfigFile:     DefaultConfigFile,
		PackageManager: DefaultPackageManager,
	}
}

func (o Options) withDefaults() Options {
	if o.ConfigFile == "" {
		o.ConfigFile = DefaultConfigFile
	}
	if o.PackageManager == "" {
		o.PackageManager = DefaultPackageManager
	}
	return o
}

// Orchestrator runs the setup steps in order.
type Orchestrator struct {
	runner runner.Runner
	opts   Options
	out    io.Writer
}

// New returns an Orchestrator printing progress to out.
func New(r runner.Runner, opts Options, out io.Writer) *Orchestrator {
	return &Orchestrator{
		runner: r,
		opts:   opts.withDefaults(),
		out:    out,
	}
}

// Run checks for the configuration file, installs pre-commit, registers the
// hooks and, unless SkipRun is set, runs every hook once. The first three
// steps are fatal; hook failures on the full run are reported as a warning
// only, because on a first run they usually mean files were auto-fixed.
func (o *Orchestrator) Run(ctx context.Context) error {
	fmt.Fprintln(o.out, "🔧 Setting up pre-commit hooks")
	fmt.Fprintln(o.out)

	if err := o.checkConfig(); err != nil {
		return err
	}
	if err := o.installPreCommit(ctx); err != nil {
		return err
	}
	if err := o.installHooks(ctx); err != nil {
		return err
	}
	if o.opts.SkipRun {
		logging.Get(ctx).Debug("skipping hook run on all files")
	} else {
		o.runAllFiles(ctx)
	}

	fmt.Fprintln(o.out)
	fmt.Fprintln(o.out, style.Format("✅ Pre-commit setup complete!", style.Success))
	fmt.Fprintln(o.out)
	fmt.Fprintln(o.out, "Pre-commit will now run automatically on git commit.")
	fmt.Fprintf(o.out, "To run manually: %s run pre-commit run --all-files\n", o.opts.PackageManager)
	return nil
}

func (o *Orchestrator) checkConfig() error {
	path := filepath.Join(o.opts.Dir, o.opts.ConfigFile)
	_, err := os.Stat(path)
	if err == nil {
		return nil
	}

	fmt.Fprintln(o.out, style.Format(fmt.Sprintf("ERROR: %s not found", o.opts.ConfigFile), style.Failure))
	fmt.Fprintln(o.out, "Please create it first (use the template from assets/)")
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %s", ErrConfigMissing, path)
	}
	return fmt.Errorf("%w: %s: %v", ErrConfigMissing, path, err)
}

func (o *Orchestrator) installPreCommit(ctx context.Context) error {
	fmt.Fprintln(o.out, "Installing pre-commit...")
	result := o.run(ctx, "add", "--dev", "pre-commit")
	if !result.Success {
		fmt.Fprintln(o.out, style.Format("Failed to install pre-commit:", style.Failure))
		runner.PrintOutput(o.out, result)
		return fmt.Errorf("%w: install pre-commit: %s", ErrStepFailed, result.Command)
	}
	fmt.Fprintln(o.out, style.Format("✓ pre-commit installed", style.Success))
	return nil
}

func (o *Orchestrator) installHooks(ctx context.Context) error {
	fmt.Fprintln(o.out, "Installing pre-commit hooks...")
	result := o.run(ctx, "run", "pre-commit", "install")
	if !result.Success {
		fmt.Fprintln(o.out, style.Format("Failed to install hooks:", style.Failure))
		runner.PrintOutput(o.out, result)
		return fmt.Errorf("%w: install hooks: %s", ErrStepFailed, result.Command)
	}
	fmt.Fprintln(o.out, style.Format("✓ pre-commit hooks installed", style.Success))
	return nil
}

func (o *Orchestrator) runAllFiles(ctx context.Context) {
	fmt.Fprintln(o.out, "Running pre-commit on all files...")
	result := o.run(ctx, "run", "pre-commit", "run", "--all-files")
	runner.PrintOutput(o.out, result)

	if !result.Success {
		fmt.Fprintln(o.out, style.Format("⚠ Some hooks failed on existing files (this is normal for first run)", style.Warning))
		fmt.Fprintln(o.out, "Files have been auto-fixed where possible. Review and commit changes.")
		return
	}
	fmt.Fprintln(o.out, style.Format("✓ All hooks passed", style.Success))
}

func (o *Orchestrator) run(ctx context.Context, args ...string) *runner.Result {
	result := o.runner.Run(ctx, o.opts.PackageManager, args...)
	if o.opts.Verbose {
		runner.PrintCommand(o.out, result)
		runner.PrintExecutionSummary(o.out, result)
	}
	return result
}

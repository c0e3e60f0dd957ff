// Package verify runs the lint, format, type-check and test steps of a
// Python project managed by uv and aggregates their results.
//
// Checks run one at a time in a fixed order. A failing check is recorded and
// the run continues; the overall verdict is known only once every enabled
// check has finished.
package verify

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/zinc-sig/uvkit/internal/coverage"
	"github.com/zinc-sig/uvkit/internal/logging"
	"github.com/zinc-sig/uvkit/internal/runner"
	"github.com/zinc-sig/uvkit/internal/style"
)

// InstallHint tells the user how to install uv.
const InstallHint = "curl -LsSf https://astral.sh/uv/install.sh | sh"

var (
	// ErrPackageManagerMissing means the version check failed and no check ran.
	ErrPackageManagerMissing = errors.New("package manager is not installed")

	// ErrChecksFailed means at least one enabled check failed.
	ErrChecksFailed = errors.New("some checks failed")
)

// Orchestrator runs the enabled checks through a Runner.
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

// Run checks the package manager version, runs every enabled check and prints the
// summary. The returned report is nil only when the version check failed. The error
// is ErrPackageManagerMissing or ErrChecksFailed (wrapped), or nil when every
// recorded check passed.
func (o *Orchestrator) Run(ctx context.Context) (*Report, error) {
	log := logging.Get(ctx)

	fmt.Fprintln(o.out, style.Bold("Python + uv Project Verification", style.Title))
	fmt.Fprintln(o.out)

	report := &Report{StartedAt: time.Now()}
	if !o.opts.NoCoverage && o.opts.Enabled(CheckTests) {
		minCoverage := o.opts.MinCoverage
		report.MinCoverage = &minCoverage
	}

	version := o.run(ctx, fmt.Sprintf("%s installation check", o.opts.PackageManager), o.opts.PackageManager, "--version")
	if !version.Success {
		fmt.Fprintln(o.out)
		fmt.Fprintln(o.out, style.Format(fmt.Sprintf("ERROR: %s is not installed. Install it first:", o.opts.PackageManager), style.Failure))
		fmt.Fprintf(o.out, "  %s\n", InstallHint)
		return nil, fmt.Errorf("%w: %s", ErrPackageManagerMissing, o.opts.PackageManager)
	}
	report.PackageManagerVersion = strings.TrimSpace(version.Output)

	for _, s := range steps {
		if !o.opts.Enabled(s.check) {
			log.Debug("check skipped", slog.String("check", string(s.check)))
			continue
		}

		fmt.Fprint(o.out, style.Banner(s.title))
		fmt.Fprintln(o.out)

		result := o.run(ctx, s.label, o.opts.PackageManager, s.args(o.opts)...)
		outcome := Outcome{
			Check:  s.check,
			Passed: result.Success,
			Result: result,
		}
		if s.check == CheckTests && !o.opts.NoCoverage {
			outcome.Coverage = o.reportCoverage(result)
		}
		report.Record(outcome)
	}

	report.Duration = time.Since(report.StartedAt)
	PrintSummary(o.out, report)

	if !report.Passed() {
		return report, fmt.Errorf("%w: %s", ErrChecksFailed, joinChecks(report.Failed()))
	}
	return report, nil
}

// run executes one command and prints whether it passed. Output is shown
// only for failures.
func (o *Orchestrator) run(ctx context.Context, label, name string, args ...string) *runner.Result {
	result := o.runner.Run(ctx, name, args...)

	if o.opts.Verbose {
		runner.PrintCommand(o.out, result)
	}

	if result.Success {
		fmt.Fprintln(o.out, style.Format(fmt.Sprintf("✓ %s passed", label), style.Success))
	} else {
		if result.Status == runner.StatusNotFound {
			fmt.Fprintln(o.out, style.Format(fmt.Sprintf("✗ %s failed: Command not found", label), style.Failure))
			fmt.Fprintln(o.out, style.Format(fmt.Sprintf("Command: %s", result.Command), style.Warning))
		} else {
			fmt.Fprintln(o.out, style.Format(fmt.Sprintf("✗ %s failed", label), style.Failure))
			if strings.TrimSpace(result.Output) != "" {
				fmt.Fprintln(o.out, style.Format("Output:", style.Warning))
				runner.PrintOutput(o.out, result)
			}
		}
	}

	if o.opts.Verbose {
		runner.PrintExecutionSummary(o.out, result)
	}
	return result
}

func (o *Orchestrator) reportCoverage(result *runner.Result) *decimal.Decimal {
	total, ok := coverage.ParseTotal(result.Output)
	if !ok {
		return nil
	}

	line := fmt.Sprintf("Total coverage: %s (minimum: %d%%)", coverage.Format(total), o.opts.MinCoverage)
	if coverage.MeetsMinimum(total, o.opts.MinCoverage) {
		fmt.Fprintln(o.out, style.Format(line, style.Info))
	} else {
		fmt.Fprintln(o.out, style.Format(line, style.Warning))
	}
	return &total
}

func joinChecks(checks []Check) string {
	names := make([]string, len(checks))
	for i, c := range checks {
		names[i] = string(c)
	}
	return strings.Join(names, ", ")
}

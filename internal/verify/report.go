package verify

import (
	"fmt"
	"io"
	"time"

	"github.com/shopspring/decimal"

	"github.com/zinc-sig/uvkit/internal/runner"
	"github.com/zinc-sig/uvkit/internal/style"
)

// Outcome is the recorded result of one executed check.
type Outcome struct {
	Check  Check
	Passed bool
	Result *runner.Result

	// Coverage is the total reported by pytest-cov, when the tests check ran
	// with coverage and the report could be read.
	Coverage *decimal.Decimal
}

// Report holds the outcomes of a run in execution order.
type Report struct {
	StartedAt time.Time
	Duration  time.Duration

	// PackageManagerVersion is the output of `<package manager> --version`.
	PackageManagerVersion string

	// MinCoverage is the threshold the tests check ran with, nil when the
	// tests check was skipped or ran without coverage.
	MinCoverage *int

	Outcomes []Outcome
}

// Record appends o.
func (r *Report) Record(o Outcome) {
	r.Outcomes = append(r.Outcomes, o)
}

// Passed reports whether every recorded check passed. A report with no
// recorded checks passes.
func (r *Report) Passed() bool {
	for _, o := range r.Outcomes {
		if !o.Passed {
			return false
		}
	}
	return true
}

// Failed returns the checks that did not pass, in execution order.
func (r *Report) Failed() []Check {
	var failed []Check
	for _, o := range r.Outcomes {
		if !o.Passed {
			failed = append(failed, o.Check)
		}
	}
	return failed
}

// Lookup returns the outcome recorded for c.
func (r *Report) Lookup(c Check) (Outcome, bool) {
	for _, o := range r.Outcomes {
		if o.Check == c {
			return o, true
		}
	}
	return Outcome{}, false
}

// PrintSummary writes one line per recorded check followed by the overall verdict.
func PrintSummary(w io.Writer, r *Report) {
	fmt.Fprint(w, style.Banner("Verification Summary"))
	fmt.Fprintln(w)

	for _, o := range r.Outcomes {
		status := style.Format("✓ PASSED", style.Success)
		if !o.Passed {
			status = style.Format("✗ FAILED", style.Failure)
		}
		fmt.Fprintf(w, "%-15s: %s\n", o.Check, status)
	}

	fmt.Fprintln(w)
	if r.Passed() {
		fmt.Fprintln(w, style.Bold("🎉 All checks passed!", style.Success))
	} else {
		fmt.Fprintln(w, style.Bold("❌ Some checks failed", style.Failure))
	}
	fmt.Fprintln(w)
}

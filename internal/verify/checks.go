package verify

import "strconv"

// Check names one verification step. The value is the label used in the
// summary and the JSON report.
type Check string

const (
	CheckLint   Check = "lint"
	CheckFormat Check = "format"
	CheckMypy   Check = "mypy"
	CheckTests  Check = "tests"
)

// Checks lists every check in execution order.
var Checks = []Check{CheckLint, CheckFormat, CheckMypy, CheckTests}

// ParseCheck maps a check name to its Check.
func ParseCheck(name string) (Check, bool) {
	for _, c := range Checks {
		if string(c) == name {
			return c, true
		}
	}
	return "", false
}

type step struct {
	check Check
	title string // banner shown before the step runs
	label string // tool name shown in pass/fail lines
	args  func(Options) []string
}

var steps = []step{
	{
		check: CheckLint,
		title: "Running Ruff Linting",
		label: "ruff check",
		args: func(o Options) []string {
			args := []string{"run", "ruff", "check"}
			if o.Fix {
				args = append(args, "--fix")
			}
			return append(args, ".")
		},
	},
	{
		check: CheckFormat,
		title: "Running Ruff Formatting",
		label: "ruff format",
		args: func(o Options) []string {
			args := []string{"run", "ruff", "format"}
			if !o.Format {
				args = append(args, "--check")
			}
			return append(args, ".")
		},
	},
	{
		check: CheckMypy,
		title: "Running MyPy Type Checking",
		label: "mypy",
		args: func(o Options) []string {
			return []string{"run", "mypy", "."}
		},
	},
	{
		check: CheckTests,
		title: "Running Tests with Pytest",
		label: "pytest",
		args: func(o Options) []string {
			args := []string{"run", "pytest"}
			if !o.NoCoverage {
				args = append(args,
					"--cov=.",
					"--cov-report=term-missing",
					"--cov-fail-under="+strconv.Itoa(o.MinCoverage),
				)
			}
			return append(args, "-v", "--tb=short")
		},
	},
}

// Command returns the command line the orchestrator runs for c under opts.
func Command(c Check, opts Options) (name string, args []string) {
	opts = opts.withDefaults()
	for _, s := range steps {
		if s.check == c {
			return opts.PackageManager, s.args(opts)
		}
	}
	return "", nil
}

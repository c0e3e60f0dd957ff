package verify

import "fmt"

const (
	// DefaultPackageManager is the executable every check runs through.
	DefaultPackageManager = "uv"

	// DefaultMinCoverage is the minimum coverage percentage for the tests check.
	DefaultMinCoverage = 80
)

// Options selects and parameterizes the checks of one run.
type Options struct {
	PackageManager string

	Fix         bool // pass --fix to the linter
	Format      bool // rewrite files instead of only checking formatting
	NoCoverage  bool
	MinCoverage int

	SkipLint   bool
	SkipFormat bool
	SkipMypy   bool
	SkipTests  bool

	// Verbose prints each command line and its exit status.
	Verbose bool
}

// DefaultOptions enables every check with coverage at DefaultMinCoverage.
func DefaultOptions() Options {
	return Options{
		PackageManager: DefaultPackageManager,
		MinCoverage:    DefaultMinCoverage,
	}
}

// Enabled reports whether c runs under these options.
func (o Options) Enabled(c Check) bool {
	switch c {
	case CheckLint:
		return !o.SkipLint
	case CheckFormat:
		return !o.SkipFormat
	case CheckMypy:
		return !o.SkipMypy
	case CheckTests:
		return !o.SkipTests
	}
	return false
}

// Skip disables c.
func (o *Options) Skip(c Check) {
	o.SetSkip(c, true)
}

// SetSkip disables c when skip is true and re-enables it otherwise.
func (o *Options) SetSkip(c Check, skip bool) {
	switch c {
	case CheckLint:
		o.SkipLint = skip
	case CheckFormat:
		o.SkipFormat = skip
	case CheckMypy:
		o.SkipMypy = skip
	case CheckTests:
		o.SkipTests = skip
	}
}

// Validate rejects option values no run can use.
func (o Options) Validate() error {
	if o.MinCoverage < 0 || o.MinCoverage > 100 {
		return fmt.Errorf("min coverage must be between 0 and 100, got %d", o.MinCoverage)
	}
	return nil
}

func (o Options) withDefaults() Options {
	if o.PackageManager == "" {
		o.PackageManager = DefaultPackageManager
	}
	return o
}

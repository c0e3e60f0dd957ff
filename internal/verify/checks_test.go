package verify

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCommand(t *testing.T) {
	tests := []struct {
		name  string
		check Check
		opts  func(o *Options)
		want  string
	}{
		{
			name:  "lint checks only",
			check: CheckLint,
			want:  "uv run ruff check .",
		},
		{
			name:  "lint with fix",
			check: CheckLint,
			opts:  func(o *Options) { o.Fix = true },
			want:  "uv run ruff check --fix .",
		},
		{
			name:  "format checks by default",
			check: CheckFormat,
			want:  "uv run ruff format --check .",
		},
		{
			name:  "format writes changes",
			check: CheckFormat,
			opts:  func(o *Options) { o.Format = true },
			want:  "uv run ruff format .",
		},
		{
			name:  "mypy",
			check: CheckMypy,
			want:  "uv run mypy .",
		},
		{
			name:  "tests with default coverage",
			check: CheckTests,
			want:  "uv run pytest --cov=. --cov-report=term-missing --cov-fail-under=80 -v --tb=short",
		},
		{
			name:  "tests with custom threshold",
			check: CheckTests,
			opts:  func(o *Options) { o.MinCoverage = 95 },
			want:  "uv run pytest --cov=. --cov-report=term-missing --cov-fail-under=95 -v --tb=short",
		},
		{
			name:  "tests without coverage",
			check: CheckTests,
			opts:  func(o *Options) { o.NoCoverage = true },
			want:  "uv run pytest -v --tb=short",
		},
		{
			name:  "empty package manager falls back to uv",
			check: CheckMypy,
			opts:  func(o *Options) { o.PackageManager = "" },
			want:  "uv run mypy .",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := DefaultOptions()
			if tt.opts != nil {
				tt.opts(&opts)
			}
			name, args := Command(tt.check, opts)
			assert.Equal(t, tt.want, strings.Join(append([]string{name}, args...), " "))
		})
	}
}

func TestCommandUnknownCheck(t *testing.T) {
	name, args := Command(Check("docs"), DefaultOptions())
	assert.Empty(t, name)
	assert.Nil(t, args)
}

func TestParseCheck(t *testing.T) {
	for _, c := range Checks {
		got, ok := ParseCheck(string(c))
		assert.True(t, ok, "ParseCheck(%q)", c)
		assert.Equal(t, c, got)
	}
	_, ok := ParseCheck("typecheck")
	assert.False(t, ok)
}

func TestOptionsEnabledAndSkip(t *testing.T) {
	opts := DefaultOptions()
	for _, c := range Checks {
		assert.True(t, opts.Enabled(c), "%s is enabled by default", c)
	}

	opts.Skip(CheckMypy)
	assert.False(t, opts.Enabled(CheckMypy))
	assert.True(t, opts.SkipMypy)
	assert.False(t, opts.Enabled(Check("docs")), "unknown checks are never enabled")

	opts.SetSkip(CheckMypy, false)
	assert.True(t, opts.Enabled(CheckMypy), "SetSkip(false) re-enables a check")
	opts.SetSkip(CheckTests, true)
	assert.False(t, opts.Enabled(CheckTests))
}

func TestOptionsValidate(t *testing.T) {
	for _, threshold := range []int{0, 80, 100} {
		opts := DefaultOptions()
		opts.MinCoverage = threshold
		assert.NoError(t, opts.Validate(), "min %d", threshold)
	}
	for _, threshold := range []int{-1, 101} {
		opts := DefaultOptions()
		opts.MinCoverage = threshold
		assert.ErrorContains(t, opts.Validate(), "between 0 and 100", "min %d", threshold)
	}
}

func TestReportPassed(t *testing.T) {
	var r Report
	assert.True(t, r.Passed(), "an empty report passes")

	r.Record(Outcome{Check: CheckLint, Passed: true})
	assert.True(t, r.Passed())

	r.Record(Outcome{Check: CheckTests, Passed: false})
	assert.False(t, r.Passed())
	assert.Equal(t, []Check{CheckTests}, r.Failed())

	_, ok := r.Lookup(CheckMypy)
	assert.False(t, ok, "unrecorded checks are not found")
}

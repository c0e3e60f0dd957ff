package helpers

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zinc-sig/uvkit/cmd/config"
	"github.com/zinc-sig/uvkit/internal/setup"
	"github.com/zinc-sig/uvkit/internal/verify"
)

func parseVerifyFlags(t *testing.T, args ...string) (*cobra.Command, *config.VerifyFlags, *config.CommonFlags) {
	t.Helper()
	var (
		flags  config.VerifyFlags
		common config.CommonFlags
	)
	cmd := &cobra.Command{}
	SetupCommonFlags(cmd, &common)
	SetupVerifyFlags(cmd, &flags)
	require.NoError(t, cmd.ParseFlags(args))
	return cmd, &flags, &common
}

func TestApplyVerifyFlagsKeepsUnsetValues(t *testing.T) {
	cmd, flags, common := parseVerifyFlags(t)

	opts := verify.DefaultOptions()
	opts.MinCoverage = 60
	opts.Fix = true
	opts.SkipMypy = true

	ApplyVerifyFlags(cmd, &opts, flags, common)
	assert.Equal(t, 60, opts.MinCoverage, "flag default must not override the file")
	assert.True(t, opts.Fix)
	assert.True(t, opts.SkipMypy)
}

func TestApplyVerifyFlagsOverrides(t *testing.T) {
	cmd, flags, common := parseVerifyFlags(t,
		"--fix=false", "--format", "--no-coverage", "--min-coverage", "90", "--skip-lint", "--skip-tests", "-v")

	opts := verify.DefaultOptions()
	opts.Fix = true

	ApplyVerifyFlags(cmd, &opts, flags, common)
	assert.False(t, opts.Fix)
	assert.True(t, opts.Format)
	assert.True(t, opts.NoCoverage)
	assert.Equal(t, 90, opts.MinCoverage)
	assert.True(t, opts.SkipLint)
	assert.True(t, opts.SkipTests)
	assert.False(t, opts.SkipFormat)
	assert.True(t, opts.Verbose)
}

func TestApplyVerifyFlagsReenablesSkippedCheck(t *testing.T) {
	cmd, flags, common := parseVerifyFlags(t, "--skip-mypy=false", "--skip-tests=false")

	opts := verify.DefaultOptions()
	opts.SkipMypy = true
	opts.SkipTests = true
	opts.SkipLint = true

	ApplyVerifyFlags(cmd, &opts, flags, common)
	assert.False(t, opts.SkipMypy, "an explicit false flag overrides the file")
	assert.False(t, opts.SkipTests)
	assert.True(t, opts.SkipLint, "unset flag keeps the file value")
}

func TestApplySetupFlags(t *testing.T) {
	var (
		flags  config.SetupFlags
		common config.CommonFlags
	)
	cmd := &cobra.Command{}
	SetupCommonFlags(cmd, &common)
	cmd.Flags().BoolVar(&flags.SkipRun, "skip-run", false, "")

	opts := setup.DefaultOptions()
	opts.SkipRun = true
	ApplySetupFlags(cmd, &opts, &flags, &common)
	assert.True(t, opts.SkipRun, "unset flag keeps the file value")

	require.NoError(t, cmd.ParseFlags([]string{"--skip-run=false", "--verbose"}))
	ApplySetupFlags(cmd, &opts, &flags, &common)
	assert.False(t, opts.SkipRun)
	assert.True(t, opts.Verbose)
}

func TestResolveDir(t *testing.T) {
	dir := t.TempDir()

	got, err := ResolveDir(dir)
	require.NoError(t, err)
	assert.Equal(t, dir, got)

	wd, err := os.Getwd()
	require.NoError(t, err)
	got, err = ResolveDir("")
	require.NoError(t, err)
	assert.Equal(t, wd, got)

	_, err = ResolveDir(filepath.Join(dir, "missing"))
	assert.ErrorContains(t, err, "invalid project directory")

	file := filepath.Join(dir, "pyproject.toml")
	require.NoError(t, os.WriteFile(file, nil, 0644))
	_, err = ResolveDir(file)
	assert.ErrorContains(t, err, "is not a directory")
}

func TestLoadProjectConfig(t *testing.T) {
	dir := t.TempDir()

	cfg, err := LoadProjectConfig(dir, "")
	require.NoError(t, err)
	assert.Equal(t, "uv", cfg.PackageManager)

	_, err = LoadProjectConfig(dir, filepath.Join(dir, "absent.yaml"))
	assert.Error(t, err)
}

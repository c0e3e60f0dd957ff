package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zinc-sig/uvkit/internal/setup"
)

const (
	addCmd     = "uv add --dev pre-commit"
	installCmd = "uv run pre-commit install"
	runAllCmd  = "uv run pre-commit run --all-files"
)

func setupProject(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
	}
	return dir
}

func TestSetupCommand(t *testing.T) {
	dir := setupProject(t, map[string]string{".pre-commit-config.yaml": "repos: []\n"})
	f := newFakeRunner()

	stdout, _, err := execute(NewSetupCommand(f.factory), "--dir", dir)
	require.NoError(t, err)
	assert.Equal(t, []string{addCmd, installCmd, runAllCmd}, f.calls)
	assert.Equal(t, dir, f.dir)
	assert.Contains(t, stdout, "Pre-commit setup complete!")
}

func TestSetupCommandSkipRun(t *testing.T) {
	dir := setupProject(t, map[string]string{".pre-commit-config.yaml": "repos: []\n"})
	f := newFakeRunner()

	_, _, err := execute(NewSetupCommand(f.factory), "--dir", dir, "--skip-run")
	require.NoError(t, err)
	assert.Equal(t, []string{addCmd, installCmd}, f.calls)
}

func TestSetupCommandConfigMissing(t *testing.T) {
	f := newFakeRunner()

	stdout, stderr, err := execute(NewSetupCommand(f.factory), "--dir", t.TempDir())
	require.Error(t, err)
	assert.ErrorIs(t, err, setup.ErrConfigMissing)
	assert.True(t, IsSilent(err))
	assert.Contains(t, stdout, "ERROR: .pre-commit-config.yaml not found")
	assert.Empty(t, stderr)
	assert.Empty(t, f.calls)
}

func TestSetupCommandStepFailure(t *testing.T) {
	dir := setupProject(t, map[string]string{".pre-commit-config.yaml": "repos: []\n"})
	f := newFakeRunner()
	f.fail(installCmd, "fatal: not a git repository\n")

	stdout, _, err := execute(NewSetupCommand(f.factory), "--dir", dir)
	require.ErrorIs(t, err, setup.ErrStepFailed)
	assert.True(t, IsSilent(err))
	assert.Contains(t, stdout, "not a git repository")
}

func TestSetupCommandHookFailuresAreNotFatal(t *testing.T) {
	dir := setupProject(t, map[string]string{".pre-commit-config.yaml": "repos: []\n"})
	f := newFakeRunner()
	f.fail(runAllCmd, "end-of-file-fixer....Failed\n")

	stdout, _, err := execute(NewSetupCommand(f.factory), "--dir", dir)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Some hooks failed on existing files")
}

func TestSetupCommandProjectConfig(t *testing.T) {
	dir := setupProject(t, map[string]string{
		"hooks.yaml":  "repos: []\n",
		".uvkit.yaml": "package_manager: /opt/uv/bin/uv\nsetup:\n  config_file: hooks.yaml\n  skip_run: true\n",
	})

	t.Run("file values apply", func(t *testing.T) {
		f := newFakeRunner()
		_, _, err := execute(NewSetupCommand(f.factory), "--dir", dir)
		require.NoError(t, err)
		assert.Equal(t, []string{
			"/opt/uv/bin/uv add --dev pre-commit",
			"/opt/uv/bin/uv run pre-commit install",
		}, f.calls)
	})

	t.Run("skip-run=false overrides the file", func(t *testing.T) {
		f := newFakeRunner()
		_, _, err := execute(NewSetupCommand(f.factory), "--dir", dir, "--skip-run=false")
		require.NoError(t, err)
		assert.Len(t, f.calls, 3)
	})
}

func TestSetupCommandInvalidConfig(t *testing.T) {
	dir := setupProject(t, map[string]string{
		".pre-commit-config.yaml": "repos: []\n",
		".uvkit.yaml":             "setup:\n  unknown: true\n",
	})
	f := newFakeRunner()

	_, _, err := execute(NewSetupCommand(f.factory), "--dir", dir)
	require.Error(t, err)
	assert.False(t, IsSilent(err))
	assert.Contains(t, err.Error(), "failed to parse config file")
	assert.Empty(t, f.calls)
}

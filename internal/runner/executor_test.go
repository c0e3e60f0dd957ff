package runner

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecute(t *testing.T) {
	tests := []struct {
		name       string
		config     func(t *testing.T, dir string) *Config
		wantStatus Status
		wantCode   int
		wantOutput string
		contains   string
	}{
		{
			name:       "ruff style success",
			config:     func(t *testing.T, dir string) *Config { return &Config{Command: "echo", Args: []string{"All checks passed!"}} },
			wantStatus: StatusSuccess,
			wantOutput: "All checks passed!\n",
		},
		{
			name:       "pytest style failure keeps the exit code",
			config:     func(t *testing.T, dir string) *Config { return &Config{Command: "sh", Args: []string{"-c", "exit 2"}} },
			wantStatus: StatusFailed,
			wantCode:   2,
		},
		{
			name: "stdout precedes stderr",
			config: func(t *testing.T, dir string) *Config {
				return &Config{Command: "sh", Args: []string{"-c", "echo 'warning: unused import' >&2; echo '1 file reformatted'"}}
			},
			wantStatus: StatusSuccess,
			wantOutput: "1 file reformatted\nwarning: unused import\n",
		},
		{
			name: "failing lint keeps its diagnostics",
			config: func(t *testing.T, dir string) *Config {
				return &Config{Command: "sh", Args: []string{"-c", "echo 'app.py:3:1: F401 unused import' && exit 1"}}
			},
			wantStatus: StatusFailed,
			wantCode:   1,
			contains:   "F401 unused import",
		},
		{
			name: "missing tool is not found",
			config: func(t *testing.T, dir string) *Config {
				return &Config{Command: "uv-not-installed-here", Args: []string{"--version"}}
			},
			wantStatus: StatusNotFound,
			wantCode:   -1,
			contains:   "uv-not-installed-here --version",
		},
		{
			name: "runs in the project directory",
			config: func(t *testing.T, dir string) *Config {
				require.NoError(t, os.WriteFile(filepath.Join(dir, "pyproject.toml"), []byte("[project]\nname = \"app\"\n"), 0644))
				return &Config{Command: "cat", Args: []string{"pyproject.toml"}, Dir: dir}
			},
			wantStatus: StatusSuccess,
			wantOutput: "[project]\nname = \"app\"\n",
		},
		{
			name: "extra environment reaches the child",
			config: func(t *testing.T, dir string) *Config {
				return &Config{
					Command: "sh",
					Args:    []string{"-c", "printf %s \"$UV_PYTHON\""},
					Env:     []string{"UV_PYTHON=3.12"},
				}
			},
			wantStatus: StatusSuccess,
			wantOutput: "3.12",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Execute(context.Background(), tt.config(t, t.TempDir()))

			assert.Equal(t, tt.wantStatus, result.Status)
			assert.Equal(t, tt.wantStatus == StatusSuccess, result.Success)
			assert.Equal(t, tt.wantCode, result.ExitCode)
			assert.GreaterOrEqual(t, result.ExecutionTime, int64(0))
			if tt.wantOutput != "" {
				assert.Equal(t, tt.wantOutput, result.Output)
			}
			if tt.contains != "" {
				assert.Contains(t, result.Output, tt.contains)
			}
		})
	}
}

func TestExecuteRecordsCommandLine(t *testing.T) {
	result := Execute(context.Background(), &Config{Command: "echo", Args: []string{"run", "mypy", "."}})
	assert.Equal(t, "echo run mypy .", result.Command)
}

func TestExecuteMissingDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "missing")
	result := Execute(context.Background(), &Config{Command: "true", Dir: dir})

	assert.False(t, result.Success)
	assert.Equal(t, StatusError, result.Status, "an existing tool in a missing directory is not a missing tool")
	assert.Equal(t, -1, result.ExitCode)
	assert.Contains(t, result.Output, "working directory "+dir)
}

func TestExecuteNotExecutable(t *testing.T) {
	script := filepath.Join(t.TempDir(), "tool")
	require.NoError(t, os.WriteFile(script, []byte("#!/bin/sh\nexit 0\n"), 0644))

	result := Execute(context.Background(), &Config{Command: script})
	assert.False(t, result.Success)
	assert.Equal(t, StatusError, result.Status)
	assert.Contains(t, result.Output, script)
}

func TestExecuteLargeOutput(t *testing.T) {
	result := Execute(context.Background(), &Config{
		Command: "sh",
		Args:    []string{"-c", "for i in $(seq 1 10000); do echo 'tests/test_app.py::test_ok PASSED'; done"},
	})

	require.True(t, result.Success, "exit code %d", result.ExitCode)
	assert.Len(t, result.Output, len(strings.Repeat("tests/test_app.py::test_ok PASSED\n", 10000)))
}

func TestExecRunner(t *testing.T) {
	dir := t.TempDir()

	result := NewExec(dir).Run(context.Background(), "pwd")
	require.True(t, result.Success, result.Output)

	want, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)
	got, err := filepath.EvalSymlinks(strings.TrimSpace(result.Output))
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestPrintOutput(t *testing.T) {
	tests := []struct {
		name   string
		output string
		want   string
	}{
		{name: "empty output prints nothing", output: "", want: ""},
		{name: "whitespace only prints nothing", output: " \n\n", want: ""},
		{name: "trailing newlines collapse", output: "line 1\nline 2\n\n", want: "line 1\nline 2\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			PrintOutput(&buf, &Result{Output: tt.output})
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestFormatCommand(t *testing.T) {
	assert.Equal(t, "uv", FormatCommand("uv", nil))
	assert.Equal(t, "uv run mypy .", FormatCommand("uv", []string{"run", "mypy", "."}))
}

func BenchmarkExecute(b *testing.B) {
	ctx := context.Background()
	for i := 0; i < b.N; i++ {
		result := Execute(ctx, &Config{Command: "echo", Args: []string{"benchmark"}})
		if !result.Success {
			b.Fatalf("unexpected failure: %s", result.Output)
		}
	}
}

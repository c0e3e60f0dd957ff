package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os/exec"
	"strings"
	"time"
)

// Status describes how a command ended
type Status string

const (
	StatusSuccess  Status = "success"
	StatusFailed   Status = "failed"
	StatusNotFound Status = "not_found"
	StatusError    Status = "error"
)

type Config struct {
	Command string
	Args    []string
	Dir     string   // Working directory (empty = current directory)
	Env     []string // Extra KEY=VALUE entries appended to the inherited environment
}

type Result struct {
	Command       string
	Status        Status
	Success       bool
	Output        string // stdout followed by stderr
	ExitCode      int    // -1 when the command never started
	ExecutionTime int64  // milliseconds
}

// Execute runs the command to completion and reports its outcome.
// It never returns an error: a command that cannot be started is
// reported as a failed result naming the command.
func Execute(ctx context.Context, config *Config) *Result {
	fullCommand := FormatCommand(config.Command, config.Args)

	cmd := exec.CommandContext(ctx, config.Command, config.Args...)
	cmd.Dir = config.Dir
	if len(config.Env) > 0 {
		cmd.Env = append(cmd.Environ(), config.Env...)
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	startTime := time.Now()
	err := cmd.Run()
	executionTime := time.Since(startTime).Milliseconds()

	result := &Result{
		Command:       fullCommand,
		Status:        StatusSuccess,
		Success:       true,
		Output:        stdout.String() + stderr.String(),
		ExecutionTime: executionTime,
	}

	if err != nil {
		var exitError *exec.ExitError
		if errors.As(err, &exitError) {
			result.Status = StatusFailed
			result.Success = false
			result.ExitCode = exitError.ExitCode()
			return result
		}

		// The process never ran
		result.Success = false
		result.ExitCode = -1
		var pathErr *fs.PathError
		if errors.As(err, &pathErr) && pathErr.Op == "chdir" {
			result.Status = StatusError
			result.Output = fmt.Sprintf("Failed to start command %s: working directory %s: %v", fullCommand, pathErr.Path, pathErr.Err)
		} else if errors.Is(err, exec.ErrNotFound) || errors.Is(err, fs.ErrNotExist) {
			result.Status = StatusNotFound
			result.Output = fmt.Sprintf("Command not found: %s", fullCommand)
		} else {
			result.Status = StatusError
			result.Output = fmt.Sprintf("Failed to start command %s: %v", fullCommand, err)
		}
	}

	return result
}

// FormatCommand renders a command line for display
func FormatCommand(name string, args []string) string {
	return strings.TrimSpace(name + " " + strings.Join(args, " "))
}

package runner

import (
	"context"
	"log/slog"

	"github.com/zinc-sig/uvkit/internal/logging"
)

// Runner abstracts command execution so orchestrators can be tested without
// real tools installed.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) *Result
}

// Exec runs commands as child processes in Dir.
type Exec struct {
	Dir string
}

// NewExec returns a Runner that executes commands in dir.
func NewExec(dir string) *Exec {
	return &Exec{Dir: dir}
}

// Run executes name with args and waits for it to finish.
func (e *Exec) Run(ctx context.Context, name string, args ...string) *Result {
	log := logging.Get(ctx)
	log.Debug("running command", slog.String("command", FormatCommand(name, args)), slog.String("dir", e.Dir))

	result := Execute(ctx, &Config{
		Command: name,
		Args:    args,
		Dir:     e.Dir,
	})

	log.Debug("command finished",
		slog.String("command", result.Command),
		slog.String("status", string(result.Status)),
		slog.Int("exit_code", result.ExitCode),
		slog.Int64("execution_time_ms", result.ExecutionTime),
	)
	return result
}

// Package cmd builds the uv-verify and uv-precommit-setup commands.
package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/zinc-sig/uvkit/internal/runner"
	"github.com/zinc-sig/uvkit/internal/style"
)

// Version is set at build time with -ldflags "-X github.com/zinc-sig/uvkit/cmd.Version=..."
var Version = "dev"

// RunnerFactory returns the runner used for a project directory
type RunnerFactory func(dir string) runner.Runner

// ExecRunner runs real child processes in dir
func ExecRunner(dir string) runner.Runner {
	return runner.NewExec(dir)
}

// silentError marks an error whose details were already shown to the user
type silentError struct {
	err error
}

func (e *silentError) Error() string { return e.err.Error() }
func (e *silentError) Unwrap() error { return e.err }

func silent(err error) error {
	if err == nil {
		return nil
	}
	return &silentError{err: err}
}

// IsSilent reports whether err was already reported to the user
func IsSilent(err error) bool {
	var s *silentError
	return errors.As(err, &s)
}

// Execute runs root and exits with status 1 on any error, printing it
// unless the command already did
func Execute(root *cobra.Command) {
	if err := root.Execute(); err != nil {
		if !IsSilent(err) {
			fmt.Fprintln(root.ErrOrStderr(), style.Format("Error: "+err.Error(), style.Failure))
		}
		os.Exit(1)
	}
}

package runner

import (
	"fmt"
	"io"
	"strings"
)

// PrintCommand prints the command line that produced result
func PrintCommand(w io.Writer, result *Result) {
	fmt.Fprintf(w, "$ %s\n", result.Command)
}

// PrintOutput prints the captured output of result, if any.
// Trailing whitespace is trimmed and a single newline is written.
func PrintOutput(w io.Writer, result *Result) {
	out := strings.TrimRight(result.Output, " \t\r\n")
	if out == "" {
		return
	}
	fmt.Fprintln(w, out)
}

// PrintExecutionSummary prints the status, exit code and duration of result
func PrintExecutionSummary(w io.Writer, result *Result) {
	fmt.Fprintln(w, "----------------------------------------")
	fmt.Fprintf(w, "Status:         %s\n", result.Status)
	fmt.Fprintf(w, "Exit Code:      %d\n", result.ExitCode)
	fmt.Fprintf(w, "Execution Time: %d ms\n", result.ExecutionTime)
	fmt.Fprintln(w, "----------------------------------------")
}

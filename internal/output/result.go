package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/zinc-sig/uvkit/internal/coverage"
	"github.com/zinc-sig/uvkit/internal/verify"
)

const (
	StatusPassed = "passed"
	StatusFailed = "failed"
)

// Check is one executed check in a Report
type Check struct {
	Name          string  `json:"name"`
	Status        string  `json:"status"`
	Command       string  `json:"command"`
	ExitCode      int     `json:"exit_code"`
	ExecutionTime int64   `json:"execution_time"` // milliseconds
	Coverage      *string `json:"coverage,omitempty"`
}

// Report is the JSON document describing a verification run
type Report struct {
	Tool                  string  `json:"tool"`
	Version               string  `json:"version"`
	Project               string  `json:"project"`
	StartedAt             string  `json:"started_at"`
	ExecutionTime         int64   `json:"execution_time"` // milliseconds
	PackageManagerVersion string  `json:"package_manager_version,omitempty"`
	MinCoverage           *int    `json:"min_coverage,omitempty"`
	Status                string  `json:"status"`
	Checks                []Check `json:"checks"`
	Context               any     `json:"context,omitempty"`

	// Delivery status (only in local output, not sent to webhook)
	WebhookSent  bool   `json:"webhook_sent,omitempty"`
	WebhookError string `json:"webhook_error,omitempty"`
	UploadError  string `json:"upload_error,omitempty"`
}

// NewReport converts a verification report into its JSON form
func NewReport(version, project string, r *verify.Report, context any) *Report {
	report := &Report{
		Tool:                  "uv-verify",
		Version:               version,
		Project:               project,
		StartedAt:             r.StartedAt.UTC().Format(time.RFC3339),
		ExecutionTime:         r.Duration.Milliseconds(),
		PackageManagerVersion: r.PackageManagerVersion,
		Status:                StatusPassed,
		Checks:                make([]Check, 0, len(r.Outcomes)),
		Context:               context,
	}

	if r.MinCoverage != nil {
		minCoverage := *r.MinCoverage
		report.MinCoverage = &minCoverage
	}

	if !r.Passed() {
		report.Status = StatusFailed
	}

	for _, o := range r.Outcomes {
		check := Check{
			Name:   string(o.Check),
			Status: StatusPassed,
		}
		if !o.Passed {
			check.Status = StatusFailed
		}
		if o.Result != nil {
			check.Command = o.Result.Command
			check.ExitCode = o.Result.ExitCode
			check.ExecutionTime = o.Result.ExecutionTime
		}
		if o.Coverage != nil {
			pct := coverage.Format(*o.Coverage)
			check.Coverage = &pct
		}
		report.Checks = append(report.Checks, check)
	}

	return report
}

// Payload returns a copy of the report without local delivery fields
func (r *Report) Payload() *Report {
	payload := *r
	payload.WebhookSent = false
	payload.WebhookError = ""
	payload.UploadError = ""
	return &payload
}

// Marshal renders the report as indented JSON followed by a newline
func (r *Report) Marshal() ([]byte, error) {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal JSON report: %w", err)
	}
	return append(data, '\n'), nil
}

// Write writes the report as JSON to w
func (r *Report) Write(w io.Writer) error {
	data, err := r.Marshal()
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write JSON report: %w", err)
	}
	return nil
}

// WriteFile writes the report as JSON to path
func (r *Report) WriteFile(path string) error {
	data, err := r.Marshal()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write report file %s: %w", path, err)
	}
	return nil
}

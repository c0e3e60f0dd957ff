package helpers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/zinc-sig/uvkit/cmd/config"
	"github.com/zinc-sig/uvkit/internal/logging"
	"github.com/zinc-sig/uvkit/internal/output"
	"github.com/zinc-sig/uvkit/internal/style"
	"github.com/zinc-sig/uvkit/internal/upload"
	"github.com/zinc-sig/uvkit/internal/webhook"
)

// Delivery holds every configured destination for a JSON report
type Delivery struct {
	Report    config.ReportFlags
	Webhook   *webhook.Config
	Retry     *webhook.RetryConfig
	Upload    upload.Provider
	UploadDir string

	Stdout io.Writer // --json output
	Stderr io.Writer // warnings
}

// Enabled reports whether the report has anywhere to go
func (d *Delivery) Enabled() bool {
	return d.Report.Enabled() || d.Webhook != nil || d.Upload != nil
}

// Deliver sends the report to the webhook, uploads it, then writes it to
// the report file and stdout. Failures are printed as warnings and recorded
// on the report; they are never returned.
func (d *Delivery) Deliver(ctx context.Context, report *output.Report, startedAt time.Time) {
	log := logging.Get(ctx)

	if d.Webhook != nil {
		client := webhook.NewClient(d.Webhook, d.Retry)
		log.Debug("sending report to webhook", "url", d.Webhook.URL)
		if err := client.Send(ctx, report); err != nil {
			d.warn("webhook delivery failed: %v", err)
			report.WebhookError = err.Error()
		} else {
			report.WebhookSent = true
		}
	}

	if d.Upload != nil {
		if remotePath, err := d.upload(ctx, report, startedAt); err != nil {
			d.warn("report upload failed: %v", err)
			report.UploadError = err.Error()
		} else {
			log.Debug("report uploaded", "provider", d.Upload.Name(), "path", remotePath)
		}
	}

	if d.Report.Path != "" {
		if err := report.WriteFile(d.Report.Path); err != nil {
			d.warn("%v", err)
		}
	}
	if d.Report.JSON {
		if err := report.Write(d.Stdout); err != nil {
			d.warn("%v", err)
		}
	}
}

func (d *Delivery) upload(ctx context.Context, report *output.Report, startedAt time.Time) (string, error) {
	data, err := report.Payload().Marshal()
	if err != nil {
		return "", err
	}
	return upload.Report(ctx, d.Upload, d.UploadDir, data, startedAt)
}

func (d *Delivery) warn(format string, args ...any) {
	msg := fmt.Sprintf("⚠ Warning: "+format, args...)
	fmt.Fprintln(d.Stderr, style.Format(msg, style.Warning))
}

// PrintContextInfo prints the report context in verbose mode
func PrintContextInfo(w io.Writer, data any) {
	if data == nil {
		return
	}

	fmt.Fprintln(w, "========================================")
	fmt.Fprintln(w, "Context Configuration")
	fmt.Fprintln(w, "========================================")

	jsonBytes, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		fmt.Fprintf(w, "  %v\n", data)
	} else {
		fmt.Fprintf(w, "%s\n", jsonBytes)
	}

	fmt.Fprintln(w, "----------------------------------------")
}

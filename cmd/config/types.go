// Package config holds the flag values bound by the uvkit commands.
package config

// CommonFlags holds the flags shared by both commands
type CommonFlags struct {
	Dir        string
	ConfigPath string
	NoColor    bool
	Verbose    bool
}

// VerifyFlags holds the uv-verify check selection flags
type VerifyFlags struct {
	Fix         bool
	Format      bool
	NoCoverage  bool
	MinCoverage int
	SkipLint    bool
	SkipFormat  bool
	SkipMypy    bool
	SkipTests   bool
}

// SetupFlags holds the uv-precommit-setup flags
type SetupFlags struct {
	SkipRun bool
}

// ReportFlags selects where the JSON report is written
type ReportFlags struct {
	JSON bool   // print to stdout after the summary
	Path string // write to a file
}

// ContextConfig holds context-related flags
type ContextConfig struct {
	JSON string
	KV   []string
	File string
}

// UploadConfig holds upload-related flags
type UploadConfig struct {
	Provider   string
	Config     string
	ConfigKV   []string
	ConfigFile string
	Dir        string // remote directory for the report
}

// WebhookConfig holds webhook-related flags
type WebhookConfig struct {
	// Direct configuration flags
	URL        string
	Method     string
	AuthType   string
	AuthToken  string
	Timeout    string
	Retries    int
	RetryDelay string

	// Alternative configuration methods
	Config     string   // JSON string configuration
	ConfigKV   []string // Key-value pairs
	ConfigFile string   // Path to JSON or YAML config file
}

// Enabled reports whether any report destination was requested
func (r ReportFlags) Enabled() bool {
	return r.JSON || r.Path != ""
}

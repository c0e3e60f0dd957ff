// Package config loads the optional .uvkit.yaml project file.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/zinc-sig/uvkit/internal/setup"
	"github.com/zinc-sig/uvkit/internal/verify"
)

// FileName is the project configuration looked up in the project directory
const FileName = ".uvkit.yaml"

// Config is the project configuration shared by both tools
type Config struct {
	PackageManager string       `yaml:"package_manager"`
	Verify         VerifyConfig `yaml:"verify"`
	Setup          SetupConfig  `yaml:"setup"`
}

// VerifyConfig holds defaults for uv-verify
type VerifyConfig struct {
	Fix         bool     `yaml:"fix"`
	Format      bool     `yaml:"format"`
	Coverage    bool     `yaml:"coverage"`
	MinCoverage int      `yaml:"min_coverage"`
	Skip        []string `yaml:"skip"`
}

// SetupConfig holds defaults for uv-precommit-setup
type SetupConfig struct {
	ConfigFile string `yaml:"config_file"`
	SkipRun    bool   `yaml:"skip_run"`
}

// DefaultConfig returns the configuration used when no file is present
func DefaultConfig() *Config {
	return &Config{
		PackageManager: verify.DefaultPackageManager,
		Verify: VerifyConfig{
			Coverage:    true,
			MinCoverage: verify.DefaultMinCoverage,
		},
		Setup: SetupConfig{
			ConfigFile: setup.DefaultConfigFile,
		},
	}
}

// Load reads the configuration at path on top of the defaults. A missing
// file yields the defaults unless explicit is set, in which case it is an
// error. Unknown keys are rejected.
func Load(path string, explicit bool) (*Config, error) {
	cfg := DefaultConfig()

	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) && !explicit {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return cfg, nil
}

// LoadFromDir loads FileName from dir, falling back to the defaults
func LoadFromDir(dir string) (*Config, error) {
	return Load(filepath.Join(dir, FileName), false)
}

// Validate checks value ranges and check names
func (c *Config) Validate() error {
	if c.PackageManager == "" {
		return errors.New("package_manager must not be empty")
	}
	if c.Verify.MinCoverage < 0 || c.Verify.MinCoverage > 100 {
		return fmt.Errorf("verify.min_coverage must be between 0 and 100, got %d", c.Verify.MinCoverage)
	}
	for _, name := range c.Verify.Skip {
		if _, ok := verify.ParseCheck(name); !ok {
			return fmt.Errorf("verify.skip: unknown check %q (expected lint, format, mypy or tests)", name)
		}
	}
	if c.Setup.ConfigFile == "" {
		return errors.New("setup.config_file must not be empty")
	}
	return nil
}

// VerifyOptions converts the file values into orchestrator options
func (c *Config) VerifyOptions() verify.Options {
	opts := verify.DefaultOptions()
	opts.PackageManager = c.PackageManager
	opts.Fix = c.Verify.Fix
	opts.Format = c.Verify.Format
	opts.NoCoverage = !c.Verify.Coverage
	opts.MinCoverage = c.Verify.MinCoverage
	for _, name := range c.Verify.Skip {
		if check, ok := verify.ParseCheck(name); ok {
			opts.Skip(check)
		}
	}
	return opts
}

// SetupOptions converts the file values into orchestrator options for dir
func (c *Config) SetupOptions(dir string) setup.Options {
	opts := setup.DefaultOptions()
	opts.Dir = dir
	opts.PackageManager = c.PackageManager
	opts.ConfigFile = c.Setup.ConfigFile
	opts.SkipRun = c.Setup.SkipRun
	return opts
}

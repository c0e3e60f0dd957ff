package helpers

import (
	"fmt"
	"os"
	"path/filepath"

	uvconfig "github.com/zinc-sig/uvkit/internal/config"
)

// ResolveDir returns dir as an absolute path, defaulting to the working
// directory, and checks that it is a directory
func ResolveDir(dir string) (string, error) {
	if dir == "" {
		dir = "."
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("failed to resolve project directory %s: %w", dir, err)
	}

	info, err := os.Stat(abs)
	if err != nil {
		return "", fmt.Errorf("invalid project directory: %w", err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("invalid project directory: %s is not a directory", abs)
	}
	return abs, nil
}

// LoadProjectConfig loads --config when given, else the optional
// .uvkit.yaml in dir
func LoadProjectConfig(dir, configPath string) (*uvconfig.Config, error) {
	if configPath != "" {
		return uvconfig.Load(configPath, true)
	}
	return uvconfig.LoadFromDir(dir)
}

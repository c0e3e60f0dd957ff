package upload

import (
	"fmt"
	"maps"
	"slices"
)

// ProviderFactory creates a new, unconfigured provider instance
type ProviderFactory func() Provider

// Registry holds all available upload providers
var Registry = make(map[string]ProviderFactory)

// RegisterProvider registers a new upload provider
func RegisterProvider(name string, factory ProviderFactory) {
	Registry[name] = factory
}

// Names returns the registered provider names in sorted order
func Names() []string {
	return slices.Sorted(maps.Keys(Registry))
}

// NewProvider creates a provider by name
func NewProvider(name string) (Provider, error) {
	factory, ok := Registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown upload provider: %s (available: %v)", name, Names())
	}
	return factory(), nil
}

// Setup creates the named provider and configures it
func Setup(name string, config map[string]any) (Provider, error) {
	p, err := NewProvider(name)
	if err != nil {
		return nil, err
	}
	if err := p.Configure(config); err != nil {
		return nil, err
	}
	return p, nil
}

func init() {
	RegisterProvider("minio", func() Provider {
		return NewMinioProvider()
	})
}

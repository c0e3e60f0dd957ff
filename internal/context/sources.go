// Package context builds the free-form metadata attached to a verification
// report, and the settings maps for webhook and upload delivery, from
// environment variables, files, JSON and key=value flags.
package context

import (
	"encoding/json"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// EnvContext is the environment prefix for report metadata
	EnvContext = "UVKIT_CONTEXT"

	// EnvUploadConfig is the environment prefix for upload provider settings
	EnvUploadConfig = "UVKIT_UPLOAD_CONFIG"
)

// Sources names every place a value is read from. Later layers win:
// environment, then File, then JSON, then Pairs.
type Sources struct {
	// EnvPrefix selects PREFIX (a JSON object) and PREFIX_<KEY> variables.
	// Empty disables the environment layer.
	EnvPrefix string
	File      string
	JSON      string
	Pairs     []string

	// Environ replaces os.Environ, mostly for tests.
	Environ func() []string
}

// Build merges the layers. Objects merge key by key; any other JSON value
// (an array, a string) replaces what the earlier layers produced. The result
// is nil when no layer contributed anything.
func (s Sources) Build() (any, error) {
	var layers []any

	if s.EnvPrefix != "" {
		environ := s.Environ
		if environ == nil {
			environ = os.Environ
		}
		if env := FromEnv(s.EnvPrefix, environ()); len(env) > 0 {
			layers = append(layers, env)
		}
	}
	if s.File != "" {
		v, err := FromFile(s.File)
		if err != nil {
			return nil, err
		}
		layers = append(layers, v)
	}
	if s.JSON != "" {
		v, err := FromJSON(s.JSON)
		if err != nil {
			return nil, err
		}
		layers = append(layers, v)
	}
	if len(s.Pairs) > 0 {
		pairs := make(map[string]any, len(s.Pairs))
		for _, p := range s.Pairs {
			key, value, err := Pair(p)
			if err != nil {
				return nil, err
			}
			pairs[key] = value
		}
		layers = append(layers, pairs)
	}

	return merge(layers), nil
}

// Object is Build for settings that must be a JSON object. It never returns
// a nil map without an error.
func (s Sources) Object() (map[string]any, error) {
	v, err := s.Build()
	if err != nil {
		return nil, err
	}
	switch m := v.(type) {
	case nil:
		return map[string]any{}, nil
	case map[string]any:
		return m, nil
	}
	return nil, fmt.Errorf("settings must be an object, got %T", v)
}

// FromEnv reads PREFIX as a JSON object, then PREFIX_<KEY>=value entries
// with lower-cased keys and inferred values. An unparsable PREFIX is ignored.
func FromEnv(prefix string, environ []string) map[string]any {
	values := make(map[string]any)
	keyPrefix := prefix + "_"

	var whole string
	for _, entry := range environ {
		name, value, ok := strings.Cut(entry, "=")
		if !ok {
			continue
		}
		if name == prefix {
			whole = value
			continue
		}
		if key, found := strings.CutPrefix(name, keyPrefix); found && key != "" {
			values[strings.ToLower(key)] = Infer(value)
		}
	}

	if whole != "" {
		var obj map[string]any
		if err := json.Unmarshal([]byte(whole), &obj); err == nil && obj != nil {
			// Individual variables override the object
			maps.Copy(obj, values)
			values = obj
		}
	}
	return values
}

// FromJSON decodes an inline JSON document of any type.
func FromJSON(s string) (any, error) {
	var v any
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	return v, nil
}

// FromFile decodes a .yaml or .yml file as YAML and anything else as JSON.
func FromFile(path string) (any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read context file: %w", err)
	}

	var v any
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &v); err != nil {
			return nil, fmt.Errorf("invalid YAML in %s: %w", path, err)
		}
		return jsonCompatible(v), nil
	}
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("invalid JSON in %s: %w", path, err)
	}
	return v, nil
}

// jsonCompatible rewrites the map[any]any yaml.v3 yields for non-string
// keys so the value encodes with encoding/json.
func jsonCompatible(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for k, val := range t {
			t[k] = jsonCompatible(val)
		}
	case map[any]any:
		m := make(map[string]any, len(t))
		for k, val := range t {
			m[fmt.Sprint(k)] = jsonCompatible(val)
		}
		return m
	case []any:
		for i, val := range t {
			t[i] = jsonCompatible(val)
		}
	}
	return v
}

func merge(layers []any) any {
	var acc any
	for _, layer := range layers {
		obj, isObj := layer.(map[string]any)
		if !isObj {
			acc = layer
			continue
		}
		base, ok := acc.(map[string]any)
		if !ok {
			base = make(map[string]any, len(obj))
			acc = base
		}
		maps.Copy(base, obj)
	}
	if m, ok := acc.(map[string]any); ok && len(m) == 0 {
		return nil
	}
	return acc
}

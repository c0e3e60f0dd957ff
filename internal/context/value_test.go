package context

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInfer(t *testing.T) {
	tests := []struct {
		raw  string
		want any
	}{
		{raw: "1742", want: 1742},
		{raw: "1", want: 1},
		{raw: "-3", want: -3},
		{raw: "3.12", want: 3.12},
		{raw: "true", want: true},
		{raw: "false", want: false},
		{raw: "True", want: "True"},
		{raw: "yes", want: "yes"},
		{raw: " main ", want: "main"},
		{raw: "feature/coverage-gate", want: "feature/coverage-gate"},
		{raw: "", want: ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Infer(tt.raw), "Infer(%q)", tt.raw)
	}
}

func TestPair(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantKey   string
		wantValue any
		wantErr   string
	}{
		{name: "branch", input: "branch=main", wantKey: "branch", wantValue: "main"},
		{name: "build number", input: "build=1742", wantKey: "build", wantValue: 1742},
		{name: "python version", input: "python=3.12", wantKey: "python", wantValue: 3.12},
		{name: "flag", input: "nightly=true", wantKey: "nightly", wantValue: true},
		{name: "value keeps later equals", input: "pytest_args=-k=slow", wantKey: "pytest_args", wantValue: "-k=slow"},
		{name: "spaces trimmed", input: " runner = ubuntu-24.04 ", wantKey: "runner", wantValue: "ubuntu-24.04"},
		{name: "empty value", input: "tag=", wantKey: "tag", wantValue: ""},
		{name: "no separator", input: "branch", wantErr: "expected key=value"},
		{name: "empty key", input: "=main", wantErr: "empty key"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, value, err := Pair(tt.input)
			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantKey, key)
			assert.Equal(t, tt.wantValue, value)
		})
	}
}

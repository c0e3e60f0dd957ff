package context

import (
	"fmt"
	"strconv"
	"strings"
)

// Infer converts a flag or environment value to the JSON type it reads as.
// Integers are tried before booleans so "1" stays a number, and only the
// literal words true and false become booleans.
func Infer(raw string) any {
	s := strings.TrimSpace(raw)
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	switch s {
	case "true":
		return true
	case "false":
		return false
	}
	return s
}

// Pair splits key=value and infers the value's type. Only the first = separates.
func Pair(s string) (string, any, error) {
	key, value, ok := strings.Cut(s, "=")
	if !ok {
		return "", nil, fmt.Errorf("invalid format, expected key=value: %s", s)
	}
	key = strings.TrimSpace(key)
	if key == "" {
		return "", nil, fmt.Errorf("empty key in key=value pair: %s", s)
	}
	return key, Infer(value), nil
}

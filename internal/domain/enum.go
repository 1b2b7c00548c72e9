package domain

import (
	"fmt"
	"strings"
)

// symbolic is the shape shared by the service enums: the value is the
// service symbol (e.g. "GAS_GIANT") and the command-line spelling is the
// lower-case kebab form ("gas-giant").
type symbolic interface {
	~string
}

func flagName[T symbolic](value T) string {
	return strings.ReplaceAll(strings.ToLower(string(value)), "_", "-")
}

func parseSymbolic[T symbolic](kind string, all []T, raw string) (T, error) {
	normalized := strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(raw), "-", "_"))
	for _, candidate := range all {
		if string(candidate) == normalized {
			return candidate, nil
		}
	}

	var zero T
	return zero, fmt.Errorf("unknown %s %q", kind, raw)
}

func containsSymbolic[T symbolic](all []T, value T) bool {
	for _, candidate := range all {
		if candidate == value {
			return true
		}
	}
	return false
}

func flagNames[T symbolic](all []T) []string {
	names := make([]string, 0, len(all))
	for _, value := range all {
		names = append(names, flagName(value))
	}
	return names
}

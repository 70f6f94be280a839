// Package strings provides string slice helpers for request normalization.
package strings

import (
	"strings"
)

// Compact trims each element and drops the blank ones. Order and duplicates
// are kept. A nil input stays nil so "not supplied" survives normalization.
func Compact(values []string) []string {
	if values == nil {
		return nil
	}
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// Package utils contains general helper functions used across dirdump.
package utils

import (
	"strings"
)

// DeduplicateNames removes duplicate and blank entries from names while preserving order.
// Entries are trimmed of surrounding whitespace; the first occurrence of each value is kept.
func DeduplicateNames(names []string) []string {
	encounteredNames := make(map[string]struct{})
	result := make([]string, 0, len(names))
	for _, name := range names {
		trimmedName := strings.TrimSpace(name)
		if trimmedName == "" {
			continue
		}
		if _, exists := encounteredNames[trimmedName]; !exists {
			encounteredNames[trimmedName] = struct{}{}
			result = append(result, trimmedName)
		}
	}
	return result
}

// ToSet converts values into a membership set.
func ToSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, value := range values {
		set[value] = struct{}{}
	}
	return set
}

// Package strings provides string manipulation utilities.
package strings

import (
	"strings"
)

// DedupeAndTrim removes duplicates and empty strings from a slice,
// trimming whitespace from each element. Order is preserved and a nil
// slice stays nil.
//
// Example:
//
//	DedupeAndTrim([]string{"  address.city ", "email", "address.city", "", "  "})
//	// Returns: []string{"address.city", "email"}
func DedupeAndTrim(values []string) []string {
	if values == nil {
		return nil
	}

	seen := make(map[string]struct{}, len(values))
	result := make([]string, 0, len(values))

	for _, v := range values {
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			continue
		}
		if _, ok := seen[trimmed]; !ok {
			seen[trimmed] = struct{}{}
			result = append(result, trimmed)
		}
	}

	return result
}

// SplitList splits a comma separated list and applies DedupeAndTrim.
// An empty input yields an empty, non-nil slice.
//
// Example:
//
//	SplitList(" address.province, area ,area")
//	// Returns: []string{"address.province", "area"}
func SplitList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return []string{}
	}
	return DedupeAndTrim(strings.Split(raw, ","))
}

// Package strings holds small text helpers shared by services.
package strings

import (
	"strings"
)

// DedupeAndTrim drops blanks and duplicates after trimming. First occurrence
// wins; order is preserved.
func DedupeAndTrim(values []string) []string {
	if len(values) == 0 {
		return values
	}

	seen := make(map[string]struct{}, len(values))
	result := make([]string, 0, len(values))
	for _, v := range values {
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			continue
		}
		if _, ok := seen[trimmed]; ok {
			continue
		}
		seen[trimmed] = struct{}{}
		result = append(result, trimmed)
	}
	return result
}

// ReplaceLineBreaks replaces each line ending in s with marker. A CRLF pair
// counts as one line ending.
func ReplaceLineBreaks(s, marker string) string {
	if !strings.ContainsAny(s, "\r\n") {
		return s
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\n", marker)
}

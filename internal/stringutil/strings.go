// Package stringutil provides common string manipulation utilities.
package stringutil

import "strings"

// Normalize lowercases s, trims surrounding whitespace and collapses inner
// whitespace runs to single spaces. Keyword and name matching against user
// queries runs on normalized text so casing and stray spaces never matter.
func Normalize(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

// IsNumeric checks if a string contains only ASCII digits.
// Returns false for empty strings.
func IsNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

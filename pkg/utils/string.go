// Package utils provides common string utility functions.
package utils

import "strings"

// NormalizeWhitespace replaces runs of whitespace with a single space and
// trims the ends.
func NormalizeWhitespace(str string) string {
	return strings.Join(strings.Fields(str), " ")
}

// TruncateString truncates a string to maxLength bytes, appending an
// ellipsis when anything was cut.
func TruncateString(str string, maxLength int) string {
	if len(str) <= maxLength {
		return str
	}

	return str[:maxLength] + "..."
}

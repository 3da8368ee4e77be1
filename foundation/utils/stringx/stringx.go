// File: stringx.go
// Title: Core String Utility Functions
// Description: Implements the string helpers used by the lexer (Head), the
//              configuration layer (IsBlank) and the terminal inspector
//              (Truncate, PadRight).
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core utilities
// - 2026-10-19 v0.2.0: Added Head, removed interning and validation helpers

package stringx

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// IsBlank returns true if the string is empty or contains only whitespace.
func IsBlank(s string) bool {
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}


// Head returns the first n runes of s and whether anything was cut off.
// n <= 0 yields the empty string.
func Head(s string, n int) (string, bool) {
	if n <= 0 {
		return "", s != ""
	}
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos], true
		}
		i++
	}
	return s, false
}

// Truncate truncates a string to maxLen runes, adding an ellipsis if truncated.
// If the ellipsis does not fit, the string is cut without it.
func Truncate(s string, maxLen int, ellipsis string) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}

	ellipsisLen := utf8.RuneCountInString(ellipsis)
	if ellipsisLen >= maxLen {
		head, _ := Head(s, maxLen)
		return head
	}
	head, _ := Head(s, maxLen-ellipsisLen)
	return head + ellipsis
}

// PadRight pads s with pad up to width runes. Longer strings are returned
// unchanged.
func PadRight(s string, width int, pad rune) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	return s + strings.Repeat(string(pad), width-n)
}

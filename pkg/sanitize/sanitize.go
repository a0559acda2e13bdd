// Package sanitize provides defensive cleanup of untrusted form input
// before it is relayed to a second system (backend JSON, email body).
package sanitize

import (
	"regexp"
	"strings"
)

var (
	// Control and non-printable characters (C0, DEL, C1 ranges).
	controlChars = regexp.MustCompile("[\x00-\x1F\x7F-]")

	// HTML tag-like substrings.
	htmlTags = regexp.MustCompile(`<[^>]*>`)
)

// Clean trims leading/trailing whitespace, truncates to maxLen runes,
// strips control/non-printable characters, and strips HTML tag-like
// substrings. Empty input yields an empty result; Clean never fails.
func Clean(s string, maxLen int) string {
	if s == "" || maxLen <= 0 {
		return ""
	}

	s = strings.TrimSpace(s)

	if r := []rune(s); len(r) > maxLen {
		s = string(r[:maxLen])
	}

	s = controlChars.ReplaceAllString(s, "")
	s = htmlTags.ReplaceAllString(s, "")

	return s
}

// Trim trims whitespace and truncates to maxLen runes without stripping
// anything else. Used where the caller has already validated the value
// against a closed set or pattern.
func Trim(s string, maxLen int) string {
	s = strings.TrimSpace(s)
	if r := []rune(s); maxLen > 0 && len(r) > maxLen {
		s = string(r[:maxLen])
	}
	return s
}

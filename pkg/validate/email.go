// Package validate holds the shared input validators used by the form
// handlers.
package validate

import "regexp"

// Deliberately loose shape check (local@domain.tld), not RFC 5322.
// Tightening it could reject addresses the site currently accepts.
var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

const maxEmailLength = 254

// Email reports whether s looks like an email address: non-whitespace
// local part, @, non-whitespace domain with at least one dot, and a total
// length of at most 254.
func Email(s string) bool {
	return len(s) <= maxEmailLength && emailRegex.MatchString(s)
}

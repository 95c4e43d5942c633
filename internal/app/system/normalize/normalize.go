// internal/app/system/normalize/normalize.go
//
// Package normalize canonicalizes user-supplied identity fields before they
// are validated or stored, so lookups never miss on stray whitespace or
// letter case.
package normalize

import "strings"

// Email lowercases and trims an email address. Emails are compared
// case-insensitively everywhere, so they are stored folded.
func Email(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Name trims surrounding whitespace but preserves case.
func Name(s string) string {
	return strings.TrimSpace(s)
}

// Role lowercases and trims a role string so "Admin" and "admin" compare
// equal before enum validation.
func Role(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

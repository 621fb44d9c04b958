// Package strings provides string helpers for request normalisation.
package strings

import (
	"strings"
)

// IsBlank reports whether s is empty after trimming whitespace.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// TrimAll trims whitespace in place for every non-nil pointer.
//
// Example:
//
//	TrimAll(&req.FirstName, &req.LastName)
func TrimAll(fields ...*string) {
	for _, f := range fields {
		if f != nil {
			*f = strings.TrimSpace(*f)
		}
	}
}

// TrimPtr trims an optional field, leaving nil untouched.
func TrimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	return &trimmed
}

// Package email validates and canonicalises email addresses.
package email

import (
	"regexp"
	"strings"
)

// shapeRx accepts user@domain.tld with a dotted domain and an alphabetic TLD.
var shapeRx = regexp.MustCompile(`^[A-Za-z0-9._%+\-]+@[A-Za-z0-9](?:[A-Za-z0-9\-]*[A-Za-z0-9])?(?:\.[A-Za-z0-9](?:[A-Za-z0-9\-]*[A-Za-z0-9])?)*\.[A-Za-z]{2,}$`)

// maxLength is the RFC 5321 path limit.
const maxLength = 254

// Normalize trims whitespace and lowercases the address so uniqueness checks
// do not depend on casing.
func Normalize(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// IsValid reports whether email has the user@domain.tld shape.
func IsValid(email string) bool {
	if email == "" || len(email) > maxLength {
		return false
	}
	return shapeRx.MatchString(email)
}

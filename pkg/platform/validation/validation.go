// Package validation holds field limits and shape checks shared by request
// DTOs and domain models.
package validation

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Field limits.
const (
	MaxNameLength        = 100
	MaxStreetLength      = 255
	MaxPostalCodeLength  = 20
	MaxDescriptionLength = 5000
	MaxIncidentLength    = 1000
	MaxNoteLength        = 2000
	MaxDocumentName      = 255
	MaxDocumentType      = 50
	MaxContentType       = 100
	MaxStoragePath       = 512
	MaxListLimit         = 500
)

// MaxAmount is the largest monetary value a NUMERIC(14,2) column holds.
const MaxAmount = 999_999_999_999.99

// phoneRx is an international number: optional leading +, 9 to 15 digits.
var phoneRx = regexp.MustCompile(`^\+?[0-9]{9,15}$`)

// IsPhone reports whether s is an international-digits phone number.
func IsPhone(s string) bool {
	return phoneRx.MatchString(s)
}

// IsAmount reports whether v is a finite monetary value no larger than
// MaxAmount in magnitude with at most two decimal places.
func IsAmount(v float64) bool {
	if math.IsNaN(v) || math.IsInf(v, 0) || math.Abs(v) > MaxAmount {
		return false
	}
	digits := strconv.FormatFloat(v, 'f', -1, 64)
	if dot := strings.IndexByte(digits, '.'); dot >= 0 {
		return len(digits)-dot-1 <= 2
	}
	return true
}

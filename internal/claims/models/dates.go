package models

import (
	"strings"
	"time"

	dErrors "coverline/pkg/domain-errors"
)

// DateLayout is the wire format of calendar dates.
const DateLayout = "2006-01-02"

// naiveLayout is an incident timestamp without an offset, read as UTC.
const naiveLayout = "2006-01-02T15:04:05.999999999"

// StartOfDay returns midnight UTC of t's UTC calendar day.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// EndOfDay returns the last representable instant of t's UTC calendar day.
func EndOfDay(t time.Time) time.Time {
	return StartOfDay(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
}

// ParseDate parses a YYYY-MM-DD calendar date as midnight UTC.
func ParseDate(field, s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, strings.TrimSpace(s), time.UTC)
	if err != nil {
		return time.Time{}, dErrors.New(dErrors.CodeValidation, field+" must be a date in YYYY-MM-DD format")
	}
	return t, nil
}

// ParseTimestamp parses an RFC 3339 timestamp. Timestamps without an offset
// are taken to be UTC. The result is always normalised to UTC.
func ParseTimestamp(field, s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t.UTC(), nil
	}
	if t, err := time.ParseInLocation(naiveLayout, s, time.UTC); err == nil {
		return t, nil
	}
	if t, err := time.ParseInLocation(DateLayout, s, time.UTC); err == nil {
		return t, nil
	}
	return time.Time{}, dErrors.New(dErrors.CodeValidation, field+" must be an RFC 3339 timestamp")
}

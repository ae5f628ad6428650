package domain

import (
	"strings"
	"time"
)

// NormalizePlate trims and uppercases a license plate.
func NormalizePlate(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// NormalizeBirthDate returns t in UTC. Instants with a zero offset are kept
// as is; any other offset has its wall clock reinterpreted as UTC, so
// 1990-05-01T10:00:00-03:00 is stored as 1990-05-01T10:00:00Z.
func NormalizeBirthDate(t time.Time) time.Time {
	if _, offset := t.Zone(); offset == 0 {
		return t.UTC()
	}
	y, mo, d := t.Date()
	h, mi, s := t.Clock()
	return time.Date(y, mo, d, h, mi, s, t.Nanosecond(), time.UTC)
}

// OptionalString maps a blank value to nil and trims the rest.
func OptionalString(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

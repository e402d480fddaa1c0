package domain

import (
	"strings"
	"time"
)

// DateLayout is the calendar date format used on the wire and in storage
const DateLayout = "2006-01-02"

// Date builds a UTC calendar date
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// DatePtr returns a pointer to a UTC calendar date
func DatePtr(year int, month time.Month, day int) *time.Time {
	d := Date(year, month, day)
	return &d
}

// ParseDate parses a YYYY-MM-DD string; an empty string yields nil
func ParseDate(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return nil, ValidationError("date", "invalid date %q", s)
	}
	return &t, nil
}

// FormatDate renders a date as YYYY-MM-DD; nil yields nil
func FormatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.UTC().Format(DateLayout)
	return &s
}

// ValidateDateRange rejects an end date before the start date
func ValidateDateRange(start, end *time.Time) error {
	if start != nil && end != nil && end.Before(*start) {
		return ValidationError("end_date", "must not be before start date")
	}
	return nil
}

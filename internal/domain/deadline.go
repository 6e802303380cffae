package domain

import (
	"fmt"
	"strings"
	"time"
)

// NoDeadline is the literal sentinel stored when a task has no deadline.
// Other components (sorting, calendar grouping) rely on this exact string.
const NoDeadline = "no deadline"

const (
	DateLayout     = "2006-01-02"
	DateTimeLayout = "2006-01-02 15:04"
)

// ValidateDeadline accepts the NoDeadline sentinel, YYYY-MM-DD, or
// YYYY-MM-DD HH:mm. The string shape is part of the wire contract and is
// preserved verbatim; validation never rewrites it.
func ValidateDeadline(s string) error {
	if s == NoDeadline {
		return nil
	}
	if _, err := time.Parse(DateLayout, s); err == nil {
		return nil
	}
	if _, err := time.Parse(DateTimeLayout, s); err == nil {
		return nil
	}
	return fmt.Errorf("invalid deadline %q (want %q, YYYY-MM-DD or YYYY-MM-DD HH:mm)", s, NoDeadline)
}

// DeadlineTime parses a deadline string for sorting and calendar grouping.
// Returns nil for the NoDeadline sentinel or an unparseable value.
func DeadlineTime(s string) *time.Time {
	if s == NoDeadline {
		return nil
	}
	if t, err := time.Parse(DateTimeLayout, s); err == nil {
		return &t
	}
	if t, err := time.Parse(DateLayout, s); err == nil {
		return &t
	}
	return nil
}

// DeadlineHasTime reports whether a deadline carries a time-of-day component.
func DeadlineHasTime(s string) bool {
	return s != NoDeadline && strings.Contains(s, ":")
}

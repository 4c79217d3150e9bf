package booking

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"
)

var ErrInvalidTitle = errors.New("booking title must be 1-100 characters")

const MaxTitleLength = 100

// TimeSlot is the half-open interval [start, end).
type TimeSlot struct {
	start time.Time
	end   time.Time
}

// NewTimeSlot does not reject an inverted range; Validate reports it alongside
// every other violation.
func NewTimeSlot(start, end time.Time) TimeSlot {
	return TimeSlot{start: start, end: end}
}

func (ts TimeSlot) Start() time.Time { return ts.start }
func (ts TimeSlot) End() time.Time   { return ts.end }

func (ts TimeSlot) IsValid() bool {
	return ts.end.After(ts.start)
}

// Overlaps is the one overlap rule: s1 < e2 AND s2 < e1. Touching slots do not overlap.
// The HasConfirmedOverlap SQL query and the bookings exclusion constraint express the same rule.
func (ts TimeSlot) Overlaps(other TimeSlot) bool {
	return ts.start.Before(other.end) && other.start.Before(ts.end)
}

type Title struct {
	value string
}

func NewTitle(s string) (Title, error) {
	s = strings.TrimSpace(s)
	if s == "" || utf8.RuneCountInString(s) > MaxTitleLength {
		return Title{}, ErrInvalidTitle
	}
	return Title{value: s}, nil
}

func (t Title) String() string { return t.value }

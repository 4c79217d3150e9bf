package facility

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

var (
	ErrInvalidName         = errors.New("facility name must be 1-100 characters")
	ErrInvalidLocation     = errors.New("facility location must be 1-200 characters")
	ErrInvalidCapacity     = errors.New("facility capacity must be at least 1")
	ErrInvalidTimeOfDay    = errors.New("time of day must be HH:MM within 00:00-23:59")
	ErrInvalidOpeningHours = errors.New("closing time must be after opening time")
)

const (
	MaxNameLength     = 100
	MaxLocationLength = 200
)

type Name struct {
	value string
}

func NewName(s string) (Name, error) {
	s = strings.TrimSpace(s)
	if s == "" || utf8.RuneCountInString(s) > MaxNameLength {
		return Name{}, ErrInvalidName
	}
	return Name{value: s}, nil
}

func (n Name) String() string { return n.value }

type Location struct {
	value string
}

func NewLocation(s string) (Location, error) {
	s = strings.TrimSpace(s)
	if s == "" || utf8.RuneCountInString(s) > MaxLocationLength {
		return Location{}, ErrInvalidLocation
	}
	return Location{value: s}, nil
}

func (l Location) String() string { return l.value }

type Capacity struct {
	value int
}

func NewCapacity(v int) (Capacity, error) {
	if v < 1 {
		return Capacity{}, ErrInvalidCapacity
	}
	return Capacity{value: v}, nil
}

func (c Capacity) Int() int { return c.value }

// Admits reports whether a party of the given size fits.
func (c Capacity) Admits(headcount int) bool {
	return headcount <= c.value
}

// TimeOfDay is a wall-clock time stored as an offset from midnight.
type TimeOfDay struct {
	offset time.Duration
}

func ParseTimeOfDay(s string) (TimeOfDay, error) {
	t, err := time.Parse("15:04", strings.TrimSpace(s))
	if err != nil {
		return TimeOfDay{}, ErrInvalidTimeOfDay
	}
	return TimeOfDay{offset: time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute}, nil
}

func TimeOfDayFromOffset(d time.Duration) (TimeOfDay, error) {
	if d < 0 || d >= 24*time.Hour {
		return TimeOfDay{}, ErrInvalidTimeOfDay
	}
	return TimeOfDay{offset: d}, nil
}

func (t TimeOfDay) Offset() time.Duration { return t.offset }

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", int(t.offset.Hours()), int(t.offset.Minutes())%60)
}

// OpeningHours are informational; bookings are not restricted to them.
type OpeningHours struct {
	opens  TimeOfDay
	closes TimeOfDay
}

func NewOpeningHours(opens, closes TimeOfDay) (OpeningHours, error) {
	if closes.offset <= opens.offset {
		return OpeningHours{}, ErrInvalidOpeningHours
	}
	return OpeningHours{opens: opens, closes: closes}, nil
}

func (h OpeningHours) Opens() TimeOfDay  { return h.opens }
func (h OpeningHours) Closes() TimeOfDay { return h.closes }

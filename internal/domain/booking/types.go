package booking

import "errors"

var (
	ErrInvalidStatus     = errors.New("invalid booking status")
	ErrInvalidTransition = errors.New("invalid booking status transition")
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return true
	default:
		return false
	}
}

func ParseStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}

// TransitionTo checks a move to next. changed is false for the idempotent
// confirmed→confirmed and cancelled→cancelled cases.
func (s Status) TransitionTo(next Status) (changed bool, err error) {
	switch {
	case s == next && (s == StatusConfirmed || s == StatusCancelled):
		return false, nil
	case s == StatusPending && (next == StatusConfirmed || next == StatusCancelled):
		return true, nil
	case s == StatusConfirmed && next == StatusCancelled:
		return true, nil
	default:
		return false, ErrInvalidTransition
	}
}

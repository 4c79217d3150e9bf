package errs

import "errors"

// Sentinels shared by the domain and usecase layers. Handlers map them to HTTP statuses.
var (
	// Facility errors
	ErrFacilityNotFound = errors.New("facility not found")

	// Booking errors
	ErrBookingNotFound = errors.New("booking not found")
	ErrSlotConflict    = errors.New("time slot already confirmed for another booking")

	// Authorization errors
	ErrUnauthorized = errors.New("actor is not allowed to perform this operation")
)

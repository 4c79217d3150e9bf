package booking

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"facility-booking/internal/pkg/clock"

	"github.com/google/uuid"
)

var (
	ErrInvalidTimeRange    = errors.New("end time must be after start time")
	ErrStartInPast         = errors.New("start time must be in the future")
	ErrOverCapacity        = errors.New("headcount exceeds facility capacity")
	ErrFacilityUnavailable = errors.New("facility is already booked for the requested time")
	ErrFacilityInactive    = errors.New("facility is not accepting bookings")
	ErrInvalidHeadcount    = errors.New("headcount must be at least 1")
)

type Code string

const (
	CodeInvalidTimeRange    Code = "InvalidTimeRange"
	CodeStartInPast         Code = "StartInPast"
	CodeOverCapacity        Code = "OverCapacity"
	CodeFacilityUnavailable Code = "FacilityUnavailable"
	CodeFacilityInactive    Code = "FacilityInactive"
	CodeInvalidTitle        Code = "InvalidTitle"
	CodeInvalidHeadcount    Code = "InvalidHeadcount"
)

var sentinels = map[Code]error{
	CodeInvalidTimeRange:    ErrInvalidTimeRange,
	CodeStartInPast:         ErrStartInPast,
	CodeOverCapacity:        ErrOverCapacity,
	CodeFacilityUnavailable: ErrFacilityUnavailable,
	CodeFacilityInactive:    ErrFacilityInactive,
	CodeInvalidTitle:        ErrInvalidTitle,
	CodeInvalidHeadcount:    ErrInvalidHeadcount,
}

// ValidationError is one violation. Capacity is set only for CodeOverCapacity.
type ValidationError struct {
	Code     Code
	Capacity int
}

func (e ValidationError) Error() string {
	if e.Code == CodeOverCapacity {
		return fmt.Sprintf("headcount exceeds facility capacity of %d", e.Capacity)
	}
	if err, ok := sentinels[e.Code]; ok {
		return err.Error()
	}
	return string(e.Code)
}

func (e ValidationError) Unwrap() error {
	return sentinels[e.Code]
}

// ValidationErrors carries every violation found in one pass.
// errors.Is(err, ErrStartInPast) reports whether that code is among them.
type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	msgs := make([]string, len(v))
	for i, e := range v {
		msgs[i] = e.Error()
	}
	return "booking validation failed: " + strings.Join(msgs, "; ")
}

func (v ValidationErrors) Unwrap() []error {
	errs := make([]error, len(v))
	for i, e := range v {
		errs[i] = e
	}
	return errs
}

func (v ValidationErrors) Has(code Code) bool {
	for _, e := range v {
		if e.Code == code {
			return true
		}
	}
	return false
}

func (v ValidationErrors) Codes() []Code {
	codes := make([]Code, len(v))
	for i, e := range v {
		codes[i] = e.Code
	}
	return codes
}

func (v *ValidationErrors) add(code Code) {
	*v = append(*v, ValidationError{Code: code})
}

// FacilityRegistry answers questions about the facility a booking targets.
// Every method returns errs.ErrFacilityNotFound for an unknown facility.
type FacilityRegistry interface {
	IsActive(ctx context.Context, facilityID uuid.UUID) (bool, error)
	CapacityOf(ctx context.Context, facilityID uuid.UUID) (int, error)
	IsAvailable(ctx context.Context, facilityID uuid.UUID, slot TimeSlot) (bool, error)
}

// OverlapFinder runs the confirmed-overlap query with one booking left out.
type OverlapFinder interface {
	HasConfirmedOverlap(ctx context.Context, facilityID uuid.UUID, slot TimeSlot, excludeID uuid.UUID) (bool, error)
}

type Services struct {
	Clock    clock.Clock
	Registry FacilityRegistry
	Overlaps OverlapFinder
}

// Candidate holds the fields Validate looks at. ID is uuid.Nil for a booking
// that has not been stored yet.
type Candidate struct {
	ID         uuid.UUID
	FacilityID uuid.UUID
	Slot       TimeSlot
	Headcount  int
}

// Validate checks c against the current store state and returns ValidationErrors
// holding every violation, or nil. A missing facility is returned as-is.
func Validate(ctx context.Context, services Services, c Candidate, isNew bool) error {
	var verrs ValidationErrors

	capacity, err := services.Registry.CapacityOf(ctx, c.FacilityID)
	if err != nil {
		return err
	}

	rangeOK := c.Slot.IsValid()
	if !rangeOK {
		verrs.add(CodeInvalidTimeRange)
	}
	if isNew && !c.Slot.Start().After(services.Clock.Now()) {
		verrs.add(CodeStartInPast)
	}
	if c.Headcount > capacity {
		verrs = append(verrs, ValidationError{Code: CodeOverCapacity, Capacity: capacity})
	}

	if isNew {
		active, err := services.Registry.IsActive(ctx, c.FacilityID)
		if err != nil {
			return err
		}
		if !active {
			verrs.add(CodeFacilityInactive)
		}
	}

	// An inverted range has no meaningful overlap.
	if rangeOK {
		var available bool
		if isNew {
			available, err = services.Registry.IsAvailable(ctx, c.FacilityID, c.Slot)
		} else {
			var overlap bool
			overlap, err = services.Overlaps.HasConfirmedOverlap(ctx, c.FacilityID, c.Slot, c.ID)
			available = !overlap
		}
		if err != nil {
			return err
		}
		if !available {
			verrs.add(CodeFacilityUnavailable)
		}
	}

	if len(verrs) == 0 {
		return nil
	}
	return verrs
}

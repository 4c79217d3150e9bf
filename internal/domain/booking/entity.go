package booking

import (
	"context"
	"errors"
	"time"

	"facility-booking/internal/domain/user"

	"github.com/google/uuid"
)

type Booking struct {
	id          uuid.UUID
	userID      uuid.UUID
	facilityID  uuid.UUID
	title       Title
	description string
	slot        TimeSlot
	status      Status
	headcount   int
	createdAt   time.Time
	updatedAt   time.Time
}

// Draft is the caller-supplied part of a booking.
type Draft struct {
	FacilityID  uuid.UUID
	Title       string
	Description string
	Start       time.Time
	End         time.Time
	Headcount   int
}

func (d Draft) slot() TimeSlot {
	return NewTimeSlot(d.Start, d.End)
}

// NewBooking validates d as a new record and returns it in pending status.
func NewBooking(ctx context.Context, services Services, ownerID uuid.UUID, d Draft) (*Booking, error) {
	title, err := checkDraft(ctx, services, uuid.Nil, d, true)
	if err != nil {
		return nil, err
	}

	now := services.Clock.Now()
	return &Booking{
		id:          uuid.New(),
		userID:      ownerID,
		facilityID:  d.FacilityID,
		title:       title,
		description: d.Description,
		slot:        d.slot(),
		status:      StatusPending,
		headcount:   d.Headcount,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructBooking(
	id, userID, facilityID uuid.UUID,
	title, description string,
	start, end time.Time,
	status Status,
	headcount int,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:          id,
		userID:      userID,
		facilityID:  facilityID,
		title:       Title{value: title},
		description: description,
		slot:        NewTimeSlot(start, end),
		status:      status,
		headcount:   headcount,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// Revise re-validates the booking with d applied, leaving itself out of the
// overlap check. The booking is unchanged on failure.
func (b *Booking) Revise(ctx context.Context, services Services, d Draft) error {
	title, err := checkDraft(ctx, services, b.id, d, false)
	if err != nil {
		return err
	}

	b.facilityID = d.FacilityID
	b.title = title
	b.description = d.Description
	b.slot = d.slot()
	b.headcount = d.Headcount
	b.updatedAt = services.Clock.Now()
	return nil
}

func checkDraft(ctx context.Context, services Services, id uuid.UUID, d Draft, isNew bool) (Title, error) {
	var verrs ValidationErrors

	title, err := NewTitle(d.Title)
	if err != nil {
		verrs.add(CodeInvalidTitle)
	}
	if d.Headcount < 1 {
		verrs.add(CodeInvalidHeadcount)
	}

	candidate := Candidate{
		ID:         id,
		FacilityID: d.FacilityID,
		Slot:       d.slot(),
		Headcount:  d.Headcount,
	}
	if err := Validate(ctx, services, candidate, isNew); err != nil {
		var found ValidationErrors
		if !errors.As(err, &found) {
			return Title{}, err
		}
		verrs = append(verrs, found...)
	}

	if len(verrs) > 0 {
		return Title{}, verrs
	}
	return title, nil
}

// Confirm moves the booking to confirmed. changed is false when it already was.
// The overlap rule is not re-checked here; the store's exclusion constraint guards it.
func (b *Booking) Confirm(now time.Time) (changed bool, err error) {
	return b.transition(StatusConfirmed, now)
}

// Cancel moves the booking to cancelled. changed is false when it already was.
func (b *Booking) Cancel(now time.Time) (changed bool, err error) {
	return b.transition(StatusCancelled, now)
}

func (b *Booking) transition(next Status, now time.Time) (bool, error) {
	changed, err := b.status.TransitionTo(next)
	if err != nil || !changed {
		return false, err
	}
	b.status = next
	b.updatedAt = now
	return true, nil
}

// VisibleTo reports whether actor may read the booking.
func (b *Booking) VisibleTo(actor user.Actor) bool {
	return actor.IsPrivileged() || actor.Owns(b.userID)
}

// CancellableBy: the owner while not cancelled, or a privileged actor at any time.
func (b *Booking) CancellableBy(actor user.Actor) bool {
	if actor.IsPrivileged() {
		return true
	}
	return actor.Owns(b.userID) && b.status != StatusCancelled
}

// RevisableBy: only the owner, and only while not cancelled.
func (b *Booking) RevisableBy(actor user.Actor) bool {
	return actor.Owns(b.userID) && b.status != StatusCancelled
}

// Draft returns the current caller-editable fields, the base for partial updates.
func (b *Booking) Draft() Draft {
	return Draft{
		FacilityID:  b.facilityID,
		Title:       b.title.String(),
		Description: b.description,
		Start:       b.slot.Start(),
		End:         b.slot.End(),
		Headcount:   b.headcount,
	}
}

func (b *Booking) ID() uuid.UUID         { return b.id }
func (b *Booking) UserID() uuid.UUID     { return b.userID }
func (b *Booking) FacilityID() uuid.UUID { return b.facilityID }
func (b *Booking) Title() Title          { return b.title }
func (b *Booking) Description() string   { return b.description }
func (b *Booking) Slot() TimeSlot        { return b.slot }
func (b *Booking) Status() Status        { return b.status }
func (b *Booking) Headcount() int        { return b.headcount }
func (b *Booking) CreatedAt() time.Time  { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time  { return b.updatedAt }

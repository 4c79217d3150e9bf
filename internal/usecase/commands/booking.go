package commands

import (
	"context"
	"time"

	"facility-booking/internal/domain/booking"
	"facility-booking/internal/domain/user"
	"facility-booking/internal/pkg/clock"
	"facility-booking/internal/pkg/errs"
	"facility-booking/internal/pkg/patch"
	"facility-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	FacilityID  uuid.UUID
	Title       string
	Description string
	StartTime   time.Time
	EndTime     time.Time
	Headcount   int
}

// UpdateBookingRequest: nil fields keep the stored value.
type UpdateBookingRequest struct {
	FacilityID  *uuid.UUID
	Title       *string
	Description *string
	StartTime   *time.Time
	EndTime     *time.Time
	Headcount   *int
}

type CreateBookingResult struct {
	BookingID uuid.UUID
}

// BookingCommands changes bookings and returns no read model; callers load the
// resulting booking through queries.BookingQueries.GetByID.
type BookingCommands interface {
	Create(ctx context.Context, actor user.Actor, req CreateBookingRequest) (*CreateBookingResult, error)
	Update(ctx context.Context, actor user.Actor, bookingID uuid.UUID, req UpdateBookingRequest) error
	Confirm(ctx context.Context, actor user.Actor, bookingID uuid.UUID) error
	Cancel(ctx context.Context, actor user.Actor, bookingID uuid.UUID) error
	Delete(ctx context.Context, actor user.Actor, bookingID uuid.UUID) error
}

type bookingUseCaseImpl struct {
	uow      shared.UnitOfWork
	clock    clock.Clock
	notifier shared.Notifier
}

func NewBookingUseCase(uow shared.UnitOfWork, clk clock.Clock, notifier shared.Notifier) BookingCommands {
	return &bookingUseCaseImpl{uow: uow, clock: clk, notifier: notifier}
}

func (uc *bookingUseCaseImpl) Create(ctx context.Context, actor user.Actor, req CreateBookingRequest) (*CreateBookingResult, error) {
	draft := booking.Draft{
		FacilityID:  req.FacilityID,
		Title:       req.Title,
		Description: req.Description,
		Start:       req.StartTime,
		End:         req.EndTime,
		Headcount:   req.Headcount,
	}

	var createdID uuid.UUID
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		services := shared.NewFacilityRegistry(tx.Reads()).Services(uc.clock)
		b, derr := booking.NewBooking(ctx, services, actor.ID, draft)
		if derr != nil {
			return derr
		}
		if derr = tx.Bookings().Create(ctx, tx.DB(), b); derr != nil {
			return derr
		}
		createdID = b.ID()
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.notifier.Notify(ctx, shared.EventBookingCreated, createdID)
	return &CreateBookingResult{BookingID: createdID}, nil
}

func (uc *bookingUseCaseImpl) Update(ctx context.Context, actor user.Actor, bookingID uuid.UUID, req UpdateBookingRequest) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, derr := tx.Reads().BookingByID(ctx, bookingID)
		if derr != nil {
			return derr
		}
		if !b.VisibleTo(actor) {
			return errs.ErrBookingNotFound
		}
		if !b.RevisableBy(actor) {
			return errs.ErrUnauthorized
		}

		current := b.Draft()
		draft := booking.Draft{
			FacilityID:  patch.Coalesce(req.FacilityID, current.FacilityID),
			Title:       patch.Coalesce(req.Title, current.Title),
			Description: patch.Coalesce(req.Description, current.Description),
			Start:       patch.Coalesce(req.StartTime, current.Start),
			End:         patch.Coalesce(req.EndTime, current.End),
			Headcount:   patch.Coalesce(req.Headcount, current.Headcount),
		}

		services := shared.NewFacilityRegistry(tx.Reads()).Services(uc.clock)
		if derr = b.Revise(ctx, services, draft); derr != nil {
			return derr
		}
		return tx.Bookings().Update(ctx, tx.DB(), b)
	})
}

// Confirm does not re-run the overlap check; a conflicting confirmed booking
// is rejected by the store as errs.ErrSlotConflict.
func (uc *bookingUseCaseImpl) Confirm(ctx context.Context, actor user.Actor, bookingID uuid.UUID) error {
	if !actor.IsPrivileged() {
		return errs.ErrUnauthorized
	}
	return uc.transition(ctx, bookingID, shared.EventBookingConfirmed, func(b *booking.Booking) (bool, error) {
		return b.Confirm(uc.clock.Now())
	})
}

func (uc *bookingUseCaseImpl) Cancel(ctx context.Context, actor user.Actor, bookingID uuid.UUID) error {
	return uc.transition(ctx, bookingID, shared.EventBookingCancelled, func(b *booking.Booking) (bool, error) {
		if !b.VisibleTo(actor) {
			return false, errs.ErrBookingNotFound
		}
		if !b.CancellableBy(actor) {
			return false, errs.ErrUnauthorized
		}
		return b.Cancel(uc.clock.Now())
	})
}

// transition writes the booking only when the status changed, but every
// successful call notifies: repeating a confirm or cancel re-sends its message.
func (uc *bookingUseCaseImpl) transition(ctx context.Context, bookingID uuid.UUID, event shared.EventKind, apply func(*booking.Booking) (bool, error)) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, derr := tx.Reads().BookingByID(ctx, bookingID)
		if derr != nil {
			return derr
		}
		changed, derr := apply(b)
		if derr != nil || !changed {
			return derr
		}
		return tx.Bookings().Update(ctx, tx.DB(), b)
	})
	if err != nil {
		return err
	}

	uc.notifier.Notify(ctx, event, bookingID)
	return nil
}

func (uc *bookingUseCaseImpl) Delete(ctx context.Context, actor user.Actor, bookingID uuid.UUID) error {
	if !actor.IsPrivileged() {
		return errs.ErrUnauthorized
	}
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, derr := tx.Reads().BookingByID(ctx, bookingID); derr != nil {
			return derr
		}
		return tx.Bookings().Delete(ctx, tx.DB(), bookingID)
	})
}

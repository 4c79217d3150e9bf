package queries

import (
	"context"
	"iter"
	"time"

	"facility-booking/internal/domain/booking"
	"facility-booking/internal/domain/user"
	"facility-booking/internal/infra"
	"facility-booking/internal/pkg/clock"
	"facility-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

type BookingView struct {
	ID           uuid.UUID `json:"id"`
	UserID       uuid.UUID `json:"user_id"`
	FacilityID   uuid.UUID `json:"facility_id"`
	FacilityName string    `json:"facility_name"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	StartTime    time.Time `json:"start_time"`
	EndTime      time.Time `json:"end_time"`
	Status       string    `json:"status"`
	Headcount    int32     `json:"headcount"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// BookingFilters narrow ListForUser. DateFrom and DateTo are calendar days,
// both inclusive, matched against the start time in the booking timezone.
// OwnerID is honoured for privileged actors only.
type BookingFilters struct {
	FacilityID *uuid.UUID
	Status     *booking.Status
	DateFrom   *time.Time
	DateTo     *time.Time
	OwnerID    *uuid.UUID
	Cursor     *Cursor
	Limit      int
}

// BookingListFilter is the store-level form of BookingFilters with dates
// resolved to instants. StartFrom is inclusive, StartBefore exclusive.
type BookingListFilter struct {
	OwnerID     *uuid.UUID
	FacilityID  *uuid.UUID
	Status      *string
	StartFrom   *time.Time
	StartBefore *time.Time
	AfterStart  *time.Time
	AfterID     uuid.UUID
	Limit       int
}

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	Stream(ctx context.Context, filter BookingListFilter) iter.Seq2[*BookingView, error]
}

type BookingQueries interface {
	GetByID(ctx context.Context, actor user.Actor, id uuid.UUID) (*BookingView, error)
	ListForUser(ctx context.Context, actor user.Actor, filters BookingFilters) iter.Seq2[*BookingView, error]
	ConfirmedStartingOn(ctx context.Context, day time.Time) iter.Seq2[*BookingView, error]
}

type bookingQueriesImpl struct {
	repo BookingReadStore
	loc  *time.Location
}

func NewBookingQueries(repo BookingReadStore, loc *time.Location) BookingQueries {
	if loc == nil {
		loc = time.UTC
	}
	return &bookingQueriesImpl{repo: repo, loc: loc}
}

// GetByID hides bookings the actor may not see behind errs.ErrBookingNotFound.
func (q *bookingQueriesImpl) GetByID(ctx context.Context, actor user.Actor, id uuid.UUID) (*BookingView, error) {
	view, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrBookingNotFound
		}
		return nil, err
	}
	if !actor.IsPrivileged() && !actor.Owns(view.UserID) {
		return nil, errs.ErrBookingNotFound
	}
	return view, nil
}

// ListForUser yields matching bookings newest start first, in one pass over a
// store cursor. Calling it again restarts the query. Non-privileged actors only
// ever see their own bookings.
func (q *bookingQueriesImpl) ListForUser(ctx context.Context, actor user.Actor, filters BookingFilters) iter.Seq2[*BookingView, error] {
	filter := BookingListFilter{
		FacilityID: filters.FacilityID,
		Limit:      filters.Limit,
	}

	if actor.IsPrivileged() {
		filter.OwnerID = filters.OwnerID
	} else {
		owner := actor.ID
		filter.OwnerID = &owner
	}

	if filters.Status != nil {
		status := filters.Status.String()
		filter.Status = &status
	}
	if filters.DateFrom != nil {
		from := clock.DateIn(*filters.DateFrom, q.loc)
		filter.StartFrom = &from
	}
	if filters.DateTo != nil {
		before := clock.DateIn(*filters.DateTo, q.loc).AddDate(0, 0, 1)
		filter.StartBefore = &before
	}

	if filters.Cursor != nil && filters.Cursor.After != "" {
		start, id, err := DecodeAfterCursor(filters.Cursor.After)
		if err != nil {
			return failed[*BookingView](ErrInvalidCursor)
		}
		filter.AfterStart = &start
		filter.AfterID = id
	}

	return q.repo.Stream(ctx, filter)
}

// ConfirmedStartingOn yields confirmed bookings whose start falls on day's date in
// the booking timezone. It backs the daily reminder sweep.
func (q *bookingQueriesImpl) ConfirmedStartingOn(ctx context.Context, day time.Time) iter.Seq2[*BookingView, error] {
	from := clock.DateIn(day, q.loc)
	before := from.AddDate(0, 0, 1)
	status := booking.StatusConfirmed.String()

	return q.repo.Stream(ctx, BookingListFilter{
		Status:      &status,
		StartFrom:   &from,
		StartBefore: &before,
	})
}

func failed[T any](err error) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		var zero T
		yield(zero, err)
	}
}

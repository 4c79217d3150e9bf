package queries

import (
	"context"
	"time"

	"facility-booking/internal/domain/booking"
	"facility-booking/internal/domain/user"
	"facility-booking/internal/infra"
	"facility-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

type FacilityView struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Location    string    `json:"location"`
	Description string    `json:"description"`
	Capacity    int32     `json:"capacity"`
	Active      bool      `json:"active"`
	OpensAt     *string   `json:"opens_at,omitempty"`
	ClosesAt    *string   `json:"closes_at,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type FacilityFilters struct {
	NameContains     *string
	LocationContains *string
	MinCapacity      *int
	Limit            int
}

type AvailabilityView struct {
	FacilityID uuid.UUID `json:"facility_id"`
	StartTime  time.Time `json:"start_time"`
	EndTime    time.Time `json:"end_time"`
	Available  bool      `json:"available"`
}

type FacilityReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*FacilityView, error)
	List(ctx context.Context, filters FacilityFilters, activeOnly bool) ([]*FacilityView, error)
}

type FacilityQueries interface {
	GetByID(ctx context.Context, actor user.Actor, id uuid.UUID) (*FacilityView, error)
	List(ctx context.Context, actor user.Actor, filters FacilityFilters) ([]*FacilityView, error)
	Availability(ctx context.Context, facilityID uuid.UUID, start, end time.Time) (*AvailabilityView, error)
}

type facilityQueriesImpl struct {
	repo     FacilityReadStore
	registry booking.FacilityRegistry
}

func NewFacilityQueries(repo FacilityReadStore, registry booking.FacilityRegistry) FacilityQueries {
	return &facilityQueriesImpl{repo: repo, registry: registry}
}

// GetByID hides inactive facilities from non-privileged actors.
func (q *facilityQueriesImpl) GetByID(ctx context.Context, actor user.Actor, id uuid.UUID) (*FacilityView, error) {
	view, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrFacilityNotFound
		}
		return nil, err
	}
	if !view.Active && !actor.IsPrivileged() {
		return nil, errs.ErrFacilityNotFound
	}
	return view, nil
}

func (q *facilityQueriesImpl) List(ctx context.Context, actor user.Actor, filters FacilityFilters) ([]*FacilityView, error) {
	filters.Limit = ValidateLimit(filters.Limit)
	return q.repo.List(ctx, filters, !actor.IsPrivileged())
}

// Availability reports whether [start, end) is free of confirmed bookings.
func (q *facilityQueriesImpl) Availability(ctx context.Context, facilityID uuid.UUID, start, end time.Time) (*AvailabilityView, error) {
	slot := booking.NewTimeSlot(start, end)
	if !slot.IsValid() {
		return nil, booking.ValidationErrors{{Code: booking.CodeInvalidTimeRange}}
	}

	available, err := q.registry.IsAvailable(ctx, facilityID, slot)
	if err != nil {
		return nil, err
	}
	return &AvailabilityView{
		FacilityID: facilityID,
		StartTime:  start,
		EndTime:    end,
		Available:  available,
	}, nil
}

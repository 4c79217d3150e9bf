package shared

import (
	"context"

	"facility-booking/internal/domain/booking"
	"facility-booking/internal/pkg/clock"

	"github.com/google/uuid"
)

// FacilityRegistry answers capacity, active and availability questions from
// the store on every call. It serves both booking.FacilityRegistry and
// booking.OverlapFinder.
type FacilityRegistry struct {
	reads CommandReads
}

func NewFacilityRegistry(reads CommandReads) *FacilityRegistry {
	return &FacilityRegistry{reads: reads}
}

func (r *FacilityRegistry) IsActive(ctx context.Context, facilityID uuid.UUID) (bool, error) {
	f, err := r.reads.FacilityByID(ctx, facilityID)
	if err != nil {
		return false, err
	}
	return f.IsActive(), nil
}

func (r *FacilityRegistry) CapacityOf(ctx context.Context, facilityID uuid.UUID) (int, error) {
	f, err := r.reads.FacilityByID(ctx, facilityID)
	if err != nil {
		return 0, err
	}
	return f.Capacity().Int(), nil
}

// IsAvailable considers confirmed bookings only. Pending requests for the same
// slot do not make it unavailable.
func (r *FacilityRegistry) IsAvailable(ctx context.Context, facilityID uuid.UUID, slot booking.TimeSlot) (bool, error) {
	if _, err := r.reads.FacilityByID(ctx, facilityID); err != nil {
		return false, err
	}
	overlap, err := r.reads.HasConfirmedOverlap(ctx, facilityID, slot, uuid.Nil)
	if err != nil {
		return false, err
	}
	return !overlap, nil
}

func (r *FacilityRegistry) HasConfirmedOverlap(ctx context.Context, facilityID uuid.UUID, slot booking.TimeSlot, excludeID uuid.UUID) (bool, error) {
	return r.reads.HasConfirmedOverlap(ctx, facilityID, slot, excludeID)
}

// Services wires the registry and clock into the booking validator.
func (r *FacilityRegistry) Services(clk clock.Clock) booking.Services {
	return booking.Services{Clock: clk, Registry: r, Overlaps: r}
}

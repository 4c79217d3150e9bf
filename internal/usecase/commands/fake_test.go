//go:build unit

package commands_test

import (
	"context"
	"sync"
	"time"

	"facility-booking/internal/domain/booking"
	"facility-booking/internal/domain/facility"
	sqlc "facility-booking/internal/infra/sqlc/generated"
	"facility-booking/internal/pkg/errs"
	"facility-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

// memoryUoW is a transactional in-memory store. Within works on a copy and
// publishes it only when fn succeeds.
type memoryUoW struct {
	mu         sync.Mutex
	facilities map[uuid.UUID]*facility.Facility
	bookings   map[uuid.UUID]*booking.Booking
	commits    int
}

func newMemoryUoW() *memoryUoW {
	return &memoryUoW{
		facilities: map[uuid.UUID]*facility.Facility{},
		bookings:   map[uuid.UUID]*booking.Booking{},
	}
}

func (u *memoryUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	tx := &memoryTx{state: u.snapshot()}
	if err := fn(ctx, tx); err != nil {
		return err
	}
	u.facilities = tx.state.facilities
	u.bookings = tx.state.bookings
	u.commits++
	return nil
}

func (u *memoryUoW) CommandReads() shared.CommandReads {
	u.mu.Lock()
	defer u.mu.Unlock()
	return &memoryReads{state: u.snapshot()}
}

func (u *memoryUoW) snapshot() *memoryState {
	s := &memoryState{
		facilities: make(map[uuid.UUID]*facility.Facility, len(u.facilities)),
		bookings:   make(map[uuid.UUID]*booking.Booking, len(u.bookings)),
	}
	for id, f := range u.facilities {
		s.facilities[id] = copyFacility(f)
	}
	for id, b := range u.bookings {
		s.bookings[id] = copyBooking(b)
	}
	return s
}

func (u *memoryUoW) putFacility(f *facility.Facility) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.facilities[f.ID()] = copyFacility(f)
}

func (u *memoryUoW) putBooking(b *booking.Booking) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.bookings[b.ID()] = copyBooking(b)
}

func (u *memoryUoW) getBooking(id uuid.UUID) *booking.Booking {
	u.mu.Lock()
	defer u.mu.Unlock()
	b, ok := u.bookings[id]
	if !ok {
		return nil
	}
	return copyBooking(b)
}

func (u *memoryUoW) getFacility(id uuid.UUID) *facility.Facility {
	u.mu.Lock()
	defer u.mu.Unlock()
	f, ok := u.facilities[id]
	if !ok {
		return nil
	}
	return copyFacility(f)
}

type memoryState struct {
	facilities map[uuid.UUID]*facility.Facility
	bookings   map[uuid.UUID]*booking.Booking
}

type memoryTx struct {
	state *memoryState
}

func (t *memoryTx) Facilities() shared.FacilityRepository        { return &memoryFacilities{state: t.state} }
func (t *memoryTx) Bookings() shared.BookingRepository           { return &memoryBookings{state: t.state} }
func (t *memoryTx) Notifications() shared.NotificationRepository { return nil }
func (t *memoryTx) Reads() shared.CommandReads                   { return &memoryReads{state: t.state} }
func (t *memoryTx) DB() sqlc.DBTX                                { return nil }

type memoryReads struct {
	state *memoryState
}

func (r *memoryReads) FacilityByID(_ context.Context, id uuid.UUID) (*facility.Facility, error) {
	f, ok := r.state.facilities[id]
	if !ok {
		return nil, errs.ErrFacilityNotFound
	}
	return copyFacility(f), nil
}

func (r *memoryReads) BookingByID(_ context.Context, id uuid.UUID) (*booking.Booking, error) {
	b, ok := r.state.bookings[id]
	if !ok {
		return nil, errs.ErrBookingNotFound
	}
	return copyBooking(b), nil
}

func (r *memoryReads) HasConfirmedOverlap(_ context.Context, facilityID uuid.UUID, slot booking.TimeSlot, excludeID uuid.UUID) (bool, error) {
	return r.state.confirmedOverlap(facilityID, slot, excludeID), nil
}

func (s *memoryState) confirmedOverlap(facilityID uuid.UUID, slot booking.TimeSlot, excludeID uuid.UUID) bool {
	for _, b := range s.bookings {
		if b.FacilityID() == facilityID && b.ID() != excludeID &&
			b.Status() == booking.StatusConfirmed && b.Slot().Overlaps(slot) {
			return true
		}
	}
	return false
}

type memoryFacilities struct {
	state *memoryState
}

func (r *memoryFacilities) Create(_ context.Context, _ sqlc.DBTX, f *facility.Facility) error {
	r.state.facilities[f.ID()] = copyFacility(f)
	return nil
}

func (r *memoryFacilities) Update(_ context.Context, _ sqlc.DBTX, f *facility.Facility) error {
	r.state.facilities[f.ID()] = copyFacility(f)
	return nil
}

func (r *memoryFacilities) Delete(_ context.Context, _ sqlc.DBTX, id uuid.UUID) error {
	delete(r.state.facilities, id)
	for bid, b := range r.state.bookings {
		if b.FacilityID() == id {
			delete(r.state.bookings, bid)
		}
	}
	return nil
}

// memoryBookings enforces the same exclusion rule as the bookings table.
type memoryBookings struct {
	state *memoryState
}

func (r *memoryBookings) Create(_ context.Context, _ sqlc.DBTX, b *booking.Booking) error {
	return r.save(b)
}

func (r *memoryBookings) Update(_ context.Context, _ sqlc.DBTX, b *booking.Booking) error {
	return r.save(b)
}

func (r *memoryBookings) save(b *booking.Booking) error {
	if b.Status() == booking.StatusConfirmed && r.state.confirmedOverlap(b.FacilityID(), b.Slot(), b.ID()) {
		return errs.ErrSlotConflict
	}
	r.state.bookings[b.ID()] = copyBooking(b)
	return nil
}

func (r *memoryBookings) Delete(_ context.Context, _ sqlc.DBTX, id uuid.UUID) error {
	delete(r.state.bookings, id)
	return nil
}

func copyFacility(f *facility.Facility) *facility.Facility {
	return facility.ReconstructFacility(f.ID(), f.Name().String(), f.Location().String(), f.Description(),
		f.Capacity().Int(), f.IsActive(), f.Hours(), f.CreatedAt(), f.UpdatedAt())
}

func copyBooking(b *booking.Booking) *booking.Booking {
	return booking.ReconstructBooking(b.ID(), b.UserID(), b.FacilityID(), b.Title().String(), b.Description(),
		b.Slot().Start(), b.Slot().End(), b.Status(), b.Headcount(), b.CreatedAt(), b.UpdatedAt())
}

type sentEvent struct {
	Kind      shared.EventKind
	BookingID uuid.UUID
}

type recordingNotifier struct {
	mu     sync.Mutex
	events []sentEvent
}

func (n *recordingNotifier) Notify(_ context.Context, kind shared.EventKind, bookingID uuid.UUID) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, sentEvent{Kind: kind, BookingID: bookingID})
}

func (n *recordingNotifier) sent() []sentEvent {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]sentEvent(nil), n.events...)
}

var testNow = time.Date(2030, 4, 1, 9, 0, 0, 0, time.UTC)

func tomorrowAt(hour, minute int) time.Time {
	return time.Date(2030, 4, 2, hour, minute, 0, 0, time.UTC)
}

//go:build unit

package booking_test

import (
	"context"
	"testing"
	"time"

	"facility-booking/internal/domain/booking"
	"facility-booking/internal/pkg/clock"
	"facility-booking/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2030, 4, 1, 9, 0, 0, 0, time.UTC)

// at returns a time on the day after now.
func at(hour, minute int) time.Time {
	return time.Date(2030, 4, 2, hour, minute, 0, 0, time.UTC)
}

type stubFacility struct {
	capacity int
	active   bool
}

type stubBooking struct {
	id         uuid.UUID
	facilityID uuid.UUID
	slot       booking.TimeSlot
}

// memoryStore answers registry and overlap questions from memory using the
// same predicate as the SQL query.
type memoryStore struct {
	facilities map[uuid.UUID]stubFacility
	confirmed  []stubBooking
}

func newMemoryStore() *memoryStore {
	return &memoryStore{facilities: map[uuid.UUID]stubFacility{}}
}

func (s *memoryStore) addFacility(capacity int, active bool) uuid.UUID {
	id := uuid.New()
	s.facilities[id] = stubFacility{capacity: capacity, active: active}
	return id
}

func (s *memoryStore) addConfirmed(facilityID uuid.UUID, slot booking.TimeSlot) uuid.UUID {
	id := uuid.New()
	s.confirmed = append(s.confirmed, stubBooking{id: id, facilityID: facilityID, slot: slot})
	return id
}

func (s *memoryStore) IsActive(_ context.Context, id uuid.UUID) (bool, error) {
	f, ok := s.facilities[id]
	if !ok {
		return false, errs.ErrFacilityNotFound
	}
	return f.active, nil
}

func (s *memoryStore) CapacityOf(_ context.Context, id uuid.UUID) (int, error) {
	f, ok := s.facilities[id]
	if !ok {
		return 0, errs.ErrFacilityNotFound
	}
	return f.capacity, nil
}

func (s *memoryStore) IsAvailable(ctx context.Context, id uuid.UUID, slot booking.TimeSlot) (bool, error) {
	overlap, err := s.HasConfirmedOverlap(ctx, id, slot, uuid.Nil)
	return !overlap, err
}

func (s *memoryStore) HasConfirmedOverlap(_ context.Context, id uuid.UUID, slot booking.TimeSlot, excludeID uuid.UUID) (bool, error) {
	if _, ok := s.facilities[id]; !ok {
		return false, errs.ErrFacilityNotFound
	}
	for _, b := range s.confirmed {
		if b.facilityID == id && b.id != excludeID && b.slot.Overlaps(slot) {
			return true, nil
		}
	}
	return false, nil
}

func (s *memoryStore) services() booking.Services {
	return booking.Services{Clock: clock.NewMockClock(now), Registry: s, Overlaps: s}
}

func codesOf(t *testing.T, err error) []booking.Code {
	t.Helper()
	var verrs booking.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	return verrs.Codes()
}

func TestValidate(t *testing.T) {
	ctx := context.Background()

	t.Run("valid candidate passes", func(t *testing.T) {
		store := newMemoryStore()
		fid := store.addFacility(10, true)

		err := booking.Validate(ctx, store.services(), booking.Candidate{
			FacilityID: fid, Slot: booking.NewTimeSlot(at(10, 0), at(12, 0)), Headcount: 5,
		}, true)
		assert.NoError(t, err)
	})

	t.Run("end not after start is InvalidTimeRange", func(t *testing.T) {
		store := newMemoryStore()
		fid := store.addFacility(10, true)

		for _, slot := range []booking.TimeSlot{
			booking.NewTimeSlot(at(12, 0), at(10, 0)),
			booking.NewTimeSlot(at(10, 0), at(10, 0)),
		} {
			err := booking.Validate(ctx, store.services(), booking.Candidate{
				FacilityID: fid, Slot: slot, Headcount: 1,
			}, false)
			require.Error(t, err)
			assert.ErrorIs(t, err, booking.ErrInvalidTimeRange)
		}
	})

	t.Run("InvalidTimeRange is reported alongside every other violation", func(t *testing.T) {
		store := newMemoryStore()
		fid := store.addFacility(2, false)

		err := booking.Validate(ctx, store.services(), booking.Candidate{
			FacilityID: fid, Slot: booking.NewTimeSlot(now.Add(-time.Hour), now.Add(-2*time.Hour)), Headcount: 3,
		}, true)
		assert.ElementsMatch(t, []booking.Code{
			booking.CodeInvalidTimeRange,
			booking.CodeStartInPast,
			booking.CodeOverCapacity,
			booking.CodeFacilityInactive,
		}, codesOf(t, err))
	})

	t.Run("start at or before now is StartInPast for new records only", func(t *testing.T) {
		store := newMemoryStore()
		fid := store.addFacility(10, true)

		err := booking.Validate(ctx, store.services(), booking.Candidate{
			FacilityID: fid, Slot: booking.NewTimeSlot(now, now.Add(time.Hour)), Headcount: 1,
		}, true)
		assert.Equal(t, []booking.Code{booking.CodeStartInPast}, codesOf(t, err))

		err = booking.Validate(ctx, store.services(), booking.Candidate{
			ID: uuid.New(), FacilityID: fid, Slot: booking.NewTimeSlot(now, now.Add(time.Hour)), Headcount: 1,
		}, false)
		assert.NoError(t, err)
	})

	t.Run("StartInPast and InvalidTimeRange appear together", func(t *testing.T) {
		store := newMemoryStore()
		fid := store.addFacility(10, true)

		err := booking.Validate(ctx, store.services(), booking.Candidate{
			FacilityID: fid, Slot: booking.NewTimeSlot(now.Add(-time.Hour), now.Add(-2*time.Hour)), Headcount: 1,
		}, true)
		assert.ErrorIs(t, err, booking.ErrStartInPast)
		assert.ErrorIs(t, err, booking.ErrInvalidTimeRange)
	})

	t.Run("headcount above capacity is OverCapacity and carries the capacity", func(t *testing.T) {
		store := newMemoryStore()
		fid := store.addFacility(10, true)

		err := booking.Validate(ctx, store.services(), booking.Candidate{
			FacilityID: fid, Slot: booking.NewTimeSlot(at(10, 0), at(11, 0)), Headcount: 11,
		}, true)
		var verrs booking.ValidationErrors
		require.ErrorAs(t, err, &verrs)
		require.Len(t, verrs, 1)
		assert.Equal(t, booking.ValidationError{Code: booking.CodeOverCapacity, Capacity: 10}, verrs[0])
		assert.Contains(t, err.Error(), "capacity of 10")
	})

	t.Run("headcount equal to capacity is accepted", func(t *testing.T) {
		store := newMemoryStore()
		fid := store.addFacility(10, true)

		err := booking.Validate(ctx, store.services(), booking.Candidate{
			FacilityID: fid, Slot: booking.NewTimeSlot(at(10, 0), at(11, 0)), Headcount: 10,
		}, true)
		assert.NoError(t, err)
	})

	t.Run("overlap against a confirmed booking is exact", func(t *testing.T) {
		store := newMemoryStore()
		fid := store.addFacility(10, true)
		store.addConfirmed(fid, booking.NewTimeSlot(at(10, 0), at(12, 0)))

		cases := []struct {
			name      string
			slot      booking.TimeSlot
			available bool
		}{
			{"back-to-back before", booking.NewTimeSlot(at(9, 0), at(10, 0)), true},
			{"one minute overlap", booking.NewTimeSlot(at(11, 59), at(13, 0)), false},
			{"back-to-back after", booking.NewTimeSlot(at(12, 0), at(13, 0)), true},
			{"contained", booking.NewTimeSlot(at(10, 30), at(11, 0)), false},
			{"enclosing", booking.NewTimeSlot(at(8, 0), at(14, 0)), false},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				err := booking.Validate(ctx, store.services(), booking.Candidate{
					FacilityID: fid, Slot: tc.slot, Headcount: 1,
				}, true)
				if tc.available {
					assert.NoError(t, err)
					return
				}
				assert.Equal(t, []booking.Code{booking.CodeFacilityUnavailable}, codesOf(t, err))
			})
		}
	})

	t.Run("confirmed bookings of other facilities do not block", func(t *testing.T) {
		store := newMemoryStore()
		fid := store.addFacility(10, true)
		other := store.addFacility(10, true)
		store.addConfirmed(other, booking.NewTimeSlot(at(10, 0), at(12, 0)))

		err := booking.Validate(ctx, store.services(), booking.Candidate{
			FacilityID: fid, Slot: booking.NewTimeSlot(at(10, 0), at(12, 0)), Headcount: 1,
		}, true)
		assert.NoError(t, err)
	})

	t.Run("existing record is excluded from its own overlap check", func(t *testing.T) {
		store := newMemoryStore()
		fid := store.addFacility(10, true)
		slot := booking.NewTimeSlot(at(10, 0), at(12, 0))
		id := store.addConfirmed(fid, slot)

		err := booking.Validate(ctx, store.services(), booking.Candidate{
			ID: id, FacilityID: fid, Slot: slot, Headcount: 1,
		}, false)
		assert.NoError(t, err)

		err = booking.Validate(ctx, store.services(), booking.Candidate{
			ID: uuid.New(), FacilityID: fid, Slot: slot, Headcount: 1,
		}, false)
		assert.ErrorIs(t, err, booking.ErrFacilityUnavailable)
	})

	t.Run("inactive facility is reported for new records only", func(t *testing.T) {
		store := newMemoryStore()
		fid := store.addFacility(10, false)
		candidate := booking.Candidate{FacilityID: fid, Slot: booking.NewTimeSlot(at(10, 0), at(11, 0)), Headcount: 1}

		err := booking.Validate(ctx, store.services(), candidate, true)
		assert.ErrorIs(t, err, booking.ErrFacilityInactive)

		candidate.ID = uuid.New()
		assert.NoError(t, booking.Validate(ctx, store.services(), candidate, false))
	})

	t.Run("unknown facility is returned immediately", func(t *testing.T) {
		store := newMemoryStore()

		err := booking.Validate(ctx, store.services(), booking.Candidate{
			FacilityID: uuid.New(), Slot: booking.NewTimeSlot(at(12, 0), at(10, 0)), Headcount: 1,
		}, true)
		require.ErrorIs(t, err, errs.ErrFacilityNotFound)
		var verrs booking.ValidationErrors
		assert.NotErrorAs(t, err, &verrs)
	})
}

func TestTimeSlot_Overlaps(t *testing.T) {
	base := booking.NewTimeSlot(at(10, 0), at(12, 0))

	assert.False(t, base.Overlaps(booking.NewTimeSlot(at(9, 0), at(10, 0))))
	assert.False(t, base.Overlaps(booking.NewTimeSlot(at(12, 0), at(13, 0))))
	assert.True(t, base.Overlaps(booking.NewTimeSlot(at(11, 59), at(13, 0))))
	assert.True(t, base.Overlaps(base))
	assert.True(t, booking.NewTimeSlot(at(11, 0), at(11, 30)).Overlaps(base))
}

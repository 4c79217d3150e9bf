//go:build unit

package booking_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"facility-booking/internal/domain/booking"
	"facility-booking/internal/domain/user"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDraft(facilityID uuid.UUID) booking.Draft {
	return booking.Draft{
		FacilityID:  facilityID,
		Title:       "Team sync",
		Description: "weekly",
		Start:       at(10, 0),
		End:         at(12, 0),
		Headcount:   5,
	}
}

func TestNewBooking(t *testing.T) {
	ctx := context.Background()

	t.Run("new booking starts pending", func(t *testing.T) {
		store := newMemoryStore()
		fid := store.addFacility(10, true)
		owner := uuid.New()

		b, err := booking.NewBooking(ctx, store.services(), owner, validDraft(fid))
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, b.ID())
		assert.Equal(t, owner, b.UserID())
		assert.Equal(t, fid, b.FacilityID())
		assert.Equal(t, "Team sync", b.Title().String())
		assert.Equal(t, booking.StatusPending, b.Status())
		assert.Equal(t, at(10, 0), b.Slot().Start())
		assert.Equal(t, at(12, 0), b.Slot().End())
		assert.Equal(t, now, b.CreatedAt())
	})

	t.Run("pending bookings do not block each other", func(t *testing.T) {
		store := newMemoryStore()
		fid := store.addFacility(10, true)

		_, err := booking.NewBooking(ctx, store.services(), uuid.New(), validDraft(fid))
		require.NoError(t, err)
		_, err = booking.NewBooking(ctx, store.services(), uuid.New(), validDraft(fid))
		assert.NoError(t, err)
	})

	t.Run("field errors accumulate with validation errors", func(t *testing.T) {
		store := newMemoryStore()
		fid := store.addFacility(10, true)
		d := validDraft(fid)
		d.Title = "  "
		d.Headcount = 0
		d.End = d.Start

		b, err := booking.NewBooking(ctx, store.services(), uuid.New(), d)
		assert.Nil(t, b)
		assert.ElementsMatch(t, []booking.Code{
			booking.CodeInvalidTitle,
			booking.CodeInvalidHeadcount,
			booking.CodeInvalidTimeRange,
		}, codesOf(t, err))
	})

	t.Run("title longer than 100 characters is rejected", func(t *testing.T) {
		store := newMemoryStore()
		fid := store.addFacility(10, true)
		d := validDraft(fid)
		d.Title = strings.Repeat("a", booking.MaxTitleLength+1)

		_, err := booking.NewBooking(ctx, store.services(), uuid.New(), d)
		assert.ErrorIs(t, err, booking.ErrInvalidTitle)
	})
}

func TestBooking_Revise(t *testing.T) {
	ctx := context.Background()

	t.Run("unchanged confirmed booking does not conflict with itself", func(t *testing.T) {
		store := newMemoryStore()
		fid := store.addFacility(10, true)
		b, err := booking.NewBooking(ctx, store.services(), uuid.New(), validDraft(fid))
		require.NoError(t, err)
		_, err = b.Confirm(now)
		require.NoError(t, err)
		store.confirmed = append(store.confirmed, stubBooking{id: b.ID(), facilityID: fid, slot: b.Slot()})

		assert.NoError(t, b.Revise(ctx, store.services(), b.Draft()))
	})

	t.Run("past start is allowed when revising", func(t *testing.T) {
		store := newMemoryStore()
		fid := store.addFacility(10, true)
		b := booking.ReconstructBooking(uuid.New(), uuid.New(), fid, "Old", "", now.Add(-2*time.Hour), now.Add(-time.Hour),
			booking.StatusPending, 1, now.Add(-48*time.Hour), now.Add(-48*time.Hour))

		d := b.Draft()
		d.Title = "Renamed"
		require.NoError(t, b.Revise(ctx, store.services(), d))
		assert.Equal(t, "Renamed", b.Title().String())
		assert.Equal(t, now, b.UpdatedAt())
	})

	t.Run("failed revision leaves the booking unchanged", func(t *testing.T) {
		store := newMemoryStore()
		fid := store.addFacility(10, true)
		b, err := booking.NewBooking(ctx, store.services(), uuid.New(), validDraft(fid))
		require.NoError(t, err)
		store.addConfirmed(fid, booking.NewTimeSlot(at(14, 0), at(15, 0)))
		before := b.Draft()

		d := b.Draft()
		d.Start, d.End = at(14, 30), at(16, 0)
		d.Headcount = 50
		err = b.Revise(ctx, store.services(), d)

		assert.ElementsMatch(t, []booking.Code{booking.CodeOverCapacity, booking.CodeFacilityUnavailable}, codesOf(t, err))
		assert.Equal(t, before, b.Draft())
	})
}

func TestBooking_Transitions(t *testing.T) {
	newPending := func() *booking.Booking {
		return booking.ReconstructBooking(uuid.New(), uuid.New(), uuid.New(), "Team sync", "", at(10, 0), at(12, 0),
			booking.StatusPending, 1, now, now)
	}
	later := now.Add(time.Minute)

	t.Run("confirm then cancel is allowed", func(t *testing.T) {
		b := newPending()

		changed, err := b.Confirm(later)
		require.NoError(t, err)
		assert.True(t, changed)
		assert.Equal(t, booking.StatusConfirmed, b.Status())

		changed, err = b.Cancel(later)
		require.NoError(t, err)
		assert.True(t, changed)
		assert.Equal(t, booking.StatusCancelled, b.Status())
		assert.Equal(t, later, b.UpdatedAt())
	})

	t.Run("cancel after cancelled is a no-op", func(t *testing.T) {
		b := newPending()
		_, err := b.Cancel(now)
		require.NoError(t, err)

		changed, err := b.Cancel(later)
		require.NoError(t, err)
		assert.False(t, changed)
		assert.Equal(t, booking.StatusCancelled, b.Status())
		assert.Equal(t, now, b.UpdatedAt())
	})

	t.Run("re-confirm is a no-op", func(t *testing.T) {
		b := newPending()
		_, err := b.Confirm(now)
		require.NoError(t, err)

		changed, err := b.Confirm(later)
		require.NoError(t, err)
		assert.False(t, changed)
	})

	t.Run("cancelled cannot be confirmed", func(t *testing.T) {
		b := newPending()
		_, err := b.Cancel(now)
		require.NoError(t, err)

		changed, err := b.Confirm(later)
		require.ErrorIs(t, err, booking.ErrInvalidTransition)
		assert.False(t, changed)
		assert.Equal(t, booking.StatusCancelled, b.Status())
	})
}

func TestStatus_TransitionTo(t *testing.T) {
	cases := []struct {
		from, to booking.Status
		changed  bool
		err      error
	}{
		{booking.StatusPending, booking.StatusConfirmed, true, nil},
		{booking.StatusPending, booking.StatusCancelled, true, nil},
		{booking.StatusConfirmed, booking.StatusCancelled, true, nil},
		{booking.StatusConfirmed, booking.StatusConfirmed, false, nil},
		{booking.StatusCancelled, booking.StatusCancelled, false, nil},
		{booking.StatusCancelled, booking.StatusConfirmed, false, booking.ErrInvalidTransition},
		{booking.StatusCancelled, booking.StatusPending, false, booking.ErrInvalidTransition},
		{booking.StatusConfirmed, booking.StatusPending, false, booking.ErrInvalidTransition},
	}
	for _, tc := range cases {
		t.Run(tc.from.String()+"->"+tc.to.String(), func(t *testing.T) {
			changed, err := tc.from.TransitionTo(tc.to)
			if tc.err != nil {
				assert.ErrorIs(t, err, tc.err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tc.changed, changed)
		})
	}
}

func TestParseStatus(t *testing.T) {
	s, err := booking.ParseStatus("confirmed")
	require.NoError(t, err)
	assert.Equal(t, booking.StatusConfirmed, s)

	_, err = booking.ParseStatus("archived")
	assert.ErrorIs(t, err, booking.ErrInvalidStatus)
}

func TestBooking_Permissions(t *testing.T) {
	owner := user.NewActor(uuid.New(), user.RoleMember)
	stranger := user.NewActor(uuid.New(), user.RoleMember)
	staff := user.NewActor(uuid.New(), user.RoleStaff)

	b := booking.ReconstructBooking(uuid.New(), owner.ID, uuid.New(), "Team sync", "", at(10, 0), at(12, 0),
		booking.StatusConfirmed, 1, now, now)

	assert.True(t, b.VisibleTo(owner))
	assert.True(t, b.VisibleTo(staff))
	assert.False(t, b.VisibleTo(stranger))

	assert.True(t, b.CancellableBy(owner))
	assert.True(t, b.CancellableBy(staff))
	assert.False(t, b.CancellableBy(stranger))
	assert.True(t, b.RevisableBy(owner))
	assert.False(t, b.RevisableBy(staff))

	_, err := b.Cancel(now)
	require.NoError(t, err)
	assert.False(t, b.CancellableBy(owner))
	assert.True(t, b.CancellableBy(staff))
	assert.False(t, b.RevisableBy(owner))
}

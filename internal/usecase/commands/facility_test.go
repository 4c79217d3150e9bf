//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"facility-booking/internal/domain/booking"
	"facility-booking/internal/domain/facility"
	"facility-booking/internal/domain/user"
	"facility-booking/internal/pkg/clock"
	"facility-booking/internal/pkg/errs"
	"facility-booking/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFacilityCommands(t *testing.T) {
	ctx := context.Background()
	staff := user.NewActor(uuid.New(), user.RoleStaff)
	member := user.NewActor(uuid.New(), user.RoleMember)

	opens, _ := facility.ParseTimeOfDay("09:00")
	closes, _ := facility.ParseTimeOfDay("18:00")
	hours, err := facility.NewOpeningHours(opens, closes)
	require.NoError(t, err)

	newCommands := func() (*memoryUoW, *clock.MockClock, commands.FacilityCommands) {
		uow := newMemoryUoW()
		clk := clock.NewMockClock(testNow)
		return uow, clk, commands.NewFacilityUseCase(uow, clk)
	}
	request := commands.FacilityRequest{
		Name: "Main Hall", Location: "Building A", Capacity: 10, Active: true, Hours: &hours,
	}

	t.Run("staff creates a facility", func(t *testing.T) {
		uow, _, cmds := newCommands()

		res, err := cmds.Create(ctx, staff, request)
		require.NoError(t, err)

		f := uow.getFacility(res.FacilityID)
		require.NotNil(t, f)
		assert.Equal(t, "Main Hall", f.Name().String())
		assert.Equal(t, &hours, f.Hours())
	})

	t.Run("members cannot manage facilities", func(t *testing.T) {
		_, _, cmds := newCommands()

		_, err := cmds.Create(ctx, member, request)
		assert.ErrorIs(t, err, errs.ErrUnauthorized)
		assert.ErrorIs(t, cmds.Update(ctx, member, uuid.New(), commands.UpdateFacilityRequest{}), errs.ErrUnauthorized)
		assert.ErrorIs(t, cmds.Delete(ctx, member, uuid.New()), errs.ErrUnauthorized)
	})

	t.Run("invalid capacity is rejected", func(t *testing.T) {
		_, _, cmds := newCommands()
		req := request
		req.Capacity = 0

		_, err := cmds.Create(ctx, staff, req)
		assert.ErrorIs(t, err, facility.ErrInvalidCapacity)
	})

	t.Run("partial update keeps the other fields", func(t *testing.T) {
		uow, clk, cmds := newCommands()
		res, err := cmds.Create(ctx, staff, request)
		require.NoError(t, err)
		clk.Add(time.Hour)

		capacity := 25
		active := false
		err = cmds.Update(ctx, staff, res.FacilityID, commands.UpdateFacilityRequest{Capacity: &capacity, Active: &active})
		require.NoError(t, err)

		f := uow.getFacility(res.FacilityID)
		assert.Equal(t, 25, f.Capacity().Int())
		assert.False(t, f.IsActive())
		assert.Equal(t, "Building A", f.Location().String())
		assert.Equal(t, &hours, f.Hours())
		assert.Equal(t, testNow.Add(time.Hour), f.UpdatedAt())
	})

	t.Run("opening hours can be cleared", func(t *testing.T) {
		uow, _, cmds := newCommands()
		res, err := cmds.Create(ctx, staff, request)
		require.NoError(t, err)

		require.NoError(t, cmds.Update(ctx, staff, res.FacilityID, commands.UpdateFacilityRequest{ClearHours: true}))
		assert.Nil(t, uow.getFacility(res.FacilityID).Hours())
	})

	t.Run("unknown facility", func(t *testing.T) {
		_, _, cmds := newCommands()
		name := "Nowhere"

		assert.ErrorIs(t, cmds.Update(ctx, staff, uuid.New(), commands.UpdateFacilityRequest{Name: &name}), errs.ErrFacilityNotFound)
		assert.ErrorIs(t, cmds.Delete(ctx, staff, uuid.New()), errs.ErrFacilityNotFound)
	})

	t.Run("delete cascades to bookings", func(t *testing.T) {
		uow, clk, cmds := newCommands()
		res, err := cmds.Create(ctx, staff, request)
		require.NoError(t, err)

		bookingCmds := commands.NewBookingUseCase(uow, clk, &recordingNotifier{})
		created, err := bookingCmds.Create(ctx, member, commands.CreateBookingRequest{
			FacilityID: res.FacilityID, Title: "Sync", StartTime: tomorrowAt(10, 0), EndTime: tomorrowAt(11, 0), Headcount: 1,
		})
		require.NoError(t, err)

		require.NoError(t, cmds.Delete(ctx, staff, res.FacilityID))
		assert.Nil(t, uow.getFacility(res.FacilityID))
		assert.Nil(t, uow.getBooking(created.BookingID))
	})

	t.Run("inactive facility refuses new bookings", func(t *testing.T) {
		uow, clk, cmds := newCommands()
		req := request
		req.Active = false
		res, err := cmds.Create(ctx, staff, req)
		require.NoError(t, err)

		bookingCmds := commands.NewBookingUseCase(uow, clk, &recordingNotifier{})
		_, err = bookingCmds.Create(ctx, member, commands.CreateBookingRequest{
			FacilityID: res.FacilityID, Title: "Sync", StartTime: tomorrowAt(10, 0), EndTime: tomorrowAt(11, 0), Headcount: 1,
		})
		assert.ErrorIs(t, err, booking.ErrFacilityInactive)
	})
}

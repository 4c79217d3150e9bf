package converter

import (
	"facility-booking/internal/domain/booking"
	sqlc "facility-booking/internal/infra/sqlc/generated"
	"facility-booking/internal/pkg/errs"
	"facility-booking/internal/pkg/pgconv"
)

func BookingToCreateParams(b *booking.Booking) sqlc.CreateBookingParams {
	return sqlc.CreateBookingParams{
		ID:          b.ID(),
		UserID:      b.UserID(),
		FacilityID:  b.FacilityID(),
		Title:       b.Title().String(),
		Description: b.Description(),
		StartTime:   pgconv.TimeToPgtype(b.Slot().Start()),
		EndTime:     pgconv.TimeToPgtype(b.Slot().End()),
		Status:      b.Status().String(),
		Headcount:   pgconv.IntToInt32(b.Headcount()),
		CreatedAt:   pgconv.TimeToPgtype(b.CreatedAt()),
		UpdatedAt:   pgconv.TimeToPgtype(b.UpdatedAt()),
	}
}

func BookingToUpdateParams(b *booking.Booking) sqlc.UpdateBookingParams {
	return sqlc.UpdateBookingParams{
		ID:          b.ID(),
		FacilityID:  b.FacilityID(),
		Title:       b.Title().String(),
		Description: b.Description(),
		StartTime:   pgconv.TimeToPgtype(b.Slot().Start()),
		EndTime:     pgconv.TimeToPgtype(b.Slot().End()),
		Status:      b.Status().String(),
		Headcount:   pgconv.IntToInt32(b.Headcount()),
		UpdatedAt:   pgconv.TimeToPgtype(b.UpdatedAt()),
	}
}

func BookingFromRow(row sqlc.Booking) (*booking.Booking, error) {
	status, err := booking.ParseStatus(row.Status)
	if err != nil {
		return nil, errs.Wrapf(err, "booking %s", row.ID)
	}
	return booking.ReconstructBooking(
		row.ID, row.UserID, row.FacilityID,
		row.Title, row.Description,
		pgconv.TimeFromPgtype(row.StartTime), pgconv.TimeFromPgtype(row.EndTime),
		status,
		int(row.Headcount),
		pgconv.TimeFromPgtype(row.CreatedAt), pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}

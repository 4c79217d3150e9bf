package converter

import (
	"time"

	"facility-booking/internal/domain/facility"
	sqlc "facility-booking/internal/infra/sqlc/generated"
	"facility-booking/internal/pkg/errs"
	"facility-booking/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

func FacilityToCreateParams(f *facility.Facility) sqlc.CreateFacilityParams {
	opens, closes := HoursToPgtype(f.Hours())
	return sqlc.CreateFacilityParams{
		ID:          f.ID(),
		Name:        f.Name().String(),
		Location:    f.Location().String(),
		Description: f.Description(),
		Capacity:    pgconv.IntToInt32(f.Capacity().Int()),
		IsActive:    f.IsActive(),
		OpeningTime: opens,
		ClosingTime: closes,
		CreatedAt:   pgconv.TimeToPgtype(f.CreatedAt()),
		UpdatedAt:   pgconv.TimeToPgtype(f.UpdatedAt()),
	}
}

func FacilityToUpdateParams(f *facility.Facility) sqlc.UpdateFacilityParams {
	opens, closes := HoursToPgtype(f.Hours())
	return sqlc.UpdateFacilityParams{
		ID:          f.ID(),
		Name:        f.Name().String(),
		Location:    f.Location().String(),
		Description: f.Description(),
		Capacity:    pgconv.IntToInt32(f.Capacity().Int()),
		IsActive:    f.IsActive(),
		OpeningTime: opens,
		ClosingTime: closes,
		UpdatedAt:   pgconv.TimeToPgtype(f.UpdatedAt()),
	}
}

func FacilityFromRow(row sqlc.Facility) (*facility.Facility, error) {
	hours, err := HoursFromPgtype(row.OpeningTime, row.ClosingTime)
	if err != nil {
		return nil, errs.Wrapf(err, "facility %s", row.ID)
	}
	return facility.ReconstructFacility(
		row.ID,
		row.Name, row.Location, row.Description,
		int(row.Capacity),
		row.IsActive,
		hours,
		pgconv.TimeFromPgtype(row.CreatedAt), pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}

// HoursToPgtype stores absent hours as two NULL columns.
func HoursToPgtype(h *facility.OpeningHours) (opens, closes pgtype.Time) {
	if h == nil {
		return pgconv.ClockToPgtype(nil), pgconv.ClockToPgtype(nil)
	}
	o, c := h.Opens().Offset(), h.Closes().Offset()
	return pgconv.ClockToPgtype(&o), pgconv.ClockToPgtype(&c)
}

// HoursFromPgtype returns nil unless both columns are set.
func HoursFromPgtype(opens, closes pgtype.Time) (*facility.OpeningHours, error) {
	o, c := pgconv.ClockFromPgtype(opens), pgconv.ClockFromPgtype(closes)
	if o == nil || c == nil {
		return nil, nil
	}
	openAt, err := facility.TimeOfDayFromOffset(*o)
	if err != nil {
		return nil, err
	}
	closeAt, err := facility.TimeOfDayFromOffset(*c)
	if err != nil {
		return nil, err
	}
	hours, err := facility.NewOpeningHours(openAt, closeAt)
	if err != nil {
		return nil, err
	}
	return &hours, nil
}

// ClockString renders a TIME column as HH:MM, or nil when NULL.
func ClockString(pt pgtype.Time) *string {
	d := pgconv.ClockFromPgtype(pt)
	if d == nil {
		return nil
	}
	s := time.Time{}.Add(*d).Format("15:04")
	return &s
}

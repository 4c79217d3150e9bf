//go:build unit || e2e

package builder

import (
	"time"

	"facility-booking/internal/domain/booking"
	reqdto "facility-booking/internal/handler/dto/request"
	sqlc "facility-booking/internal/infra/sqlc/generated"
	"facility-booking/internal/pkg/pgconv"
	"facility-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	FacilityID   uuid.UUID
	FacilityName string
	Title        string
	Description  string
	Start        time.Time
	End          time.Time
	Status       booking.Status
	Headcount    int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func NewBookingBuilder() *BookingBuilder {
	now := time.Now().UTC().Truncate(time.Microsecond)
	start := now.Add(24 * time.Hour).Truncate(time.Hour)
	return &BookingBuilder{
		ID:           uuid.New(),
		UserID:       uuid.New(),
		FacilityID:   uuid.New(),
		FacilityName: "Main Hall",
		Title:        "Team sync",
		Description:  "Weekly planning",
		Start:        start,
		End:          start.Add(time.Hour),
		Status:       booking.StatusPending,
		Headcount:    4,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *BookingBuilder) BuildDomain() *booking.Booking {
	return booking.ReconstructBooking(
		b.ID, b.UserID, b.FacilityID,
		b.Title, b.Description,
		b.Start, b.End,
		b.Status,
		b.Headcount,
		b.CreatedAt, b.UpdatedAt,
	)
}

func (b *BookingBuilder) BuildDraft() booking.Draft {
	return booking.Draft{
		FacilityID:  b.FacilityID,
		Title:       b.Title,
		Description: b.Description,
		Start:       b.Start,
		End:         b.End,
		Headcount:   b.Headcount,
	}
}

func (b *BookingBuilder) BuildInfra() sqlc.Booking {
	return sqlc.Booking{
		ID:          b.ID,
		UserID:      b.UserID,
		FacilityID:  b.FacilityID,
		Title:       b.Title,
		Description: b.Description,
		StartTime:   pgconv.TimeToPgtype(b.Start),
		EndTime:     pgconv.TimeToPgtype(b.End),
		Status:      b.Status.String(),
		Headcount:   pgconv.IntToInt32(b.Headcount),
		CreatedAt:   pgconv.TimeToPgtype(b.CreatedAt),
		UpdatedAt:   pgconv.TimeToPgtype(b.UpdatedAt),
	}
}

func (b *BookingBuilder) BuildViewQuery() *queries.BookingView {
	return &queries.BookingView{
		ID:           b.ID,
		UserID:       b.UserID,
		FacilityID:   b.FacilityID,
		FacilityName: b.FacilityName,
		Title:        b.Title,
		Description:  b.Description,
		StartTime:    b.Start,
		EndTime:      b.End,
		Status:       b.Status.String(),
		Headcount:    pgconv.IntToInt32(b.Headcount),
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.UpdatedAt,
	}
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		FacilityID:  b.FacilityID,
		Title:       b.Title,
		Description: b.Description,
		StartTime:   b.Start,
		EndTime:     b.End,
		Headcount:   b.Headcount,
	}
}

// Fluent builder methods
func (b *BookingBuilder) WithUserID(userID uuid.UUID) *BookingBuilder {
	b.UserID = userID
	return b
}

func (b *BookingBuilder) WithFacilityID(facilityID uuid.UUID) *BookingBuilder {
	b.FacilityID = facilityID
	return b
}

func (b *BookingBuilder) WithSlot(start, end time.Time) *BookingBuilder {
	b.Start = start
	b.End = end
	return b
}

func (b *BookingBuilder) WithStatus(status booking.Status) *BookingBuilder {
	b.Status = status
	return b
}

func (b *BookingBuilder) WithHeadcount(headcount int) *BookingBuilder {
	b.Headcount = headcount
	return b
}

func (b *BookingBuilder) AsConfirmed() *BookingBuilder {
	b.Status = booking.StatusConfirmed
	return b
}

func (b *BookingBuilder) AsCancelled() *BookingBuilder {
	b.Status = booking.StatusCancelled
	return b
}

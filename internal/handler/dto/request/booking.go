package request

import (
	"time"

	"facility-booking/internal/usecase/commands"

	"github.com/google/uuid"
)

// Range and capacity rules are left to the domain so that every violation is
// reported together.
type CreateBookingRequest struct {
	FacilityID  uuid.UUID `json:"facilityId" binding:"required"`
	Title       string    `json:"title" binding:"required"`
	Description string    `json:"description"`
	StartTime   time.Time `json:"startTime" binding:"required"`
	EndTime     time.Time `json:"endTime" binding:"required"`
	Headcount   int       `json:"headcount" binding:"required"`
}

type UpdateBookingRequest struct {
	FacilityID  *uuid.UUID `json:"facilityId"`
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	StartTime   *time.Time `json:"startTime"`
	EndTime     *time.Time `json:"endTime"`
	Headcount   *int       `json:"headcount"`
}

func (r CreateBookingRequest) ToCommand() commands.CreateBookingRequest {
	return commands.CreateBookingRequest{
		FacilityID:  r.FacilityID,
		Title:       r.Title,
		Description: r.Description,
		StartTime:   r.StartTime,
		EndTime:     r.EndTime,
		Headcount:   r.Headcount,
	}
}

func (r UpdateBookingRequest) ToCommand() commands.UpdateBookingRequest {
	return commands.UpdateBookingRequest{
		FacilityID:  r.FacilityID,
		Title:       r.Title,
		Description: r.Description,
		StartTime:   r.StartTime,
		EndTime:     r.EndTime,
		Headcount:   r.Headcount,
	}
}

package request

import (
	"facility-booking/internal/domain/facility"
	"facility-booking/internal/usecase/commands"
)

type CreateFacilityRequest struct {
	Name        string  `json:"name" binding:"required"`
	Location    string  `json:"location" binding:"required"`
	Description string  `json:"description"`
	Capacity    int     `json:"capacity" binding:"required"`
	Active      *bool   `json:"active"`
	OpensAt     *string `json:"opensAt"`
	ClosesAt    *string `json:"closesAt"`
}

// UpdateFacilityRequest: omitted fields keep the stored value. Hours change only
// when both opensAt and closesAt are sent; clearHours removes them.
type UpdateFacilityRequest struct {
	Name        *string `json:"name"`
	Location    *string `json:"location"`
	Description *string `json:"description"`
	Capacity    *int    `json:"capacity"`
	Active      *bool   `json:"active"`
	OpensAt     *string `json:"opensAt"`
	ClosesAt    *string `json:"closesAt"`
	ClearHours  bool    `json:"clearHours"`
}

func (r CreateFacilityRequest) ToCommand() (commands.FacilityRequest, error) {
	hours, err := parseHours(r.OpensAt, r.ClosesAt)
	if err != nil {
		return commands.FacilityRequest{}, err
	}
	active := true
	if r.Active != nil {
		active = *r.Active
	}
	return commands.FacilityRequest{
		Name:        r.Name,
		Location:    r.Location,
		Description: r.Description,
		Capacity:    r.Capacity,
		Active:      active,
		Hours:       hours,
	}, nil
}

func (r UpdateFacilityRequest) ToCommand() (commands.UpdateFacilityRequest, error) {
	hours, err := parseHours(r.OpensAt, r.ClosesAt)
	if err != nil {
		return commands.UpdateFacilityRequest{}, err
	}
	return commands.UpdateFacilityRequest{
		Name:        r.Name,
		Location:    r.Location,
		Description: r.Description,
		Capacity:    r.Capacity,
		Active:      r.Active,
		Hours:       hours,
		ClearHours:  r.ClearHours,
	}, nil
}

func parseHours(opensAt, closesAt *string) (*facility.OpeningHours, error) {
	if opensAt == nil && closesAt == nil {
		return nil, nil
	}
	if opensAt == nil || closesAt == nil {
		return nil, facility.ErrInvalidOpeningHours
	}
	opens, err := facility.ParseTimeOfDay(*opensAt)
	if err != nil {
		return nil, err
	}
	closes, err := facility.ParseTimeOfDay(*closesAt)
	if err != nil {
		return nil, err
	}
	hours, err := facility.NewOpeningHours(opens, closes)
	if err != nil {
		return nil, err
	}
	return &hours, nil
}

package response

import (
	"time"

	"facility-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type FacilityResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Location    string    `json:"location"`
	Description string    `json:"description"`
	Capacity    int32     `json:"capacity"`
	Active      bool      `json:"active"`
	OpensAt     *string   `json:"opensAt,omitempty"`
	ClosesAt    *string   `json:"closesAt,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type FacilityListResponse struct {
	Facilities []*FacilityResponse `json:"facilities"`
}

type AvailabilityResponse struct {
	FacilityID uuid.UUID `json:"facilityId"`
	StartTime  time.Time `json:"startTime"`
	EndTime    time.Time `json:"endTime"`
	Available  bool      `json:"available"`
}

func FromFacilityView(v *queries.FacilityView) (*FacilityResponse, error) {
	res := &FacilityResponse{}
	if err := copier.Copy(res, v); err != nil {
		return nil, err
	}
	return res, nil
}

func FromFacilityViews(views []*queries.FacilityView) (*FacilityListResponse, error) {
	items := make([]*FacilityResponse, 0, len(views))
	if err := copier.Copy(&items, views); err != nil {
		return nil, err
	}
	return &FacilityListResponse{Facilities: items}, nil
}

func FromAvailabilityView(v *queries.AvailabilityView) *AvailabilityResponse {
	return &AvailabilityResponse{
		FacilityID: v.FacilityID,
		StartTime:  v.StartTime,
		EndTime:    v.EndTime,
		Available:  v.Available,
	}
}

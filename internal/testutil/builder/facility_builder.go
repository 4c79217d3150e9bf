//go:build unit || e2e

package builder

import (
	"time"

	"facility-booking/internal/domain/facility"
	reqdto "facility-booking/internal/handler/dto/request"
	sqlc "facility-booking/internal/infra/sqlc/generated"
	"facility-booking/internal/pkg/pgconv"
	"facility-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type FacilityBuilder struct {
	ID          uuid.UUID
	Name        string
	Location    string
	Description string
	Capacity    int
	Active      bool
	Opens       *time.Duration
	Closes      *time.Duration
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func NewFacilityBuilder() *FacilityBuilder {
	now := time.Now().UTC().Truncate(time.Microsecond)
	return &FacilityBuilder{
		ID:          uuid.New(),
		Name:        "Main Hall",
		Location:    "Building A, 1F",
		Description: "Large hall with projector",
		Capacity:    10,
		Active:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func (f *FacilityBuilder) With(mutate func(*FacilityBuilder)) *FacilityBuilder {
	mutate(f)
	return f
}

// Build methods
func (f *FacilityBuilder) BuildDomain() *facility.Facility {
	var hours *facility.OpeningHours
	if f.Opens != nil && f.Closes != nil {
		opens, _ := facility.TimeOfDayFromOffset(*f.Opens)
		closes, _ := facility.TimeOfDayFromOffset(*f.Closes)
		h, err := facility.NewOpeningHours(opens, closes)
		if err == nil {
			hours = &h
		}
	}
	return facility.ReconstructFacility(
		f.ID,
		f.Name, f.Location, f.Description,
		f.Capacity,
		f.Active,
		hours,
		f.CreatedAt, f.UpdatedAt,
	)
}

func (f *FacilityBuilder) BuildSpec() facility.Spec {
	return f.BuildDomain().Spec()
}

func (f *FacilityBuilder) BuildInfra() sqlc.Facility {
	return sqlc.Facility{
		ID:          f.ID,
		Name:        f.Name,
		Location:    f.Location,
		Description: f.Description,
		Capacity:    pgconv.IntToInt32(f.Capacity),
		IsActive:    f.Active,
		OpeningTime: pgconv.ClockToPgtype(f.Opens),
		ClosingTime: pgconv.ClockToPgtype(f.Closes),
		CreatedAt:   pgconv.TimeToPgtype(f.CreatedAt),
		UpdatedAt:   pgconv.TimeToPgtype(f.UpdatedAt),
	}
}

func (f *FacilityBuilder) BuildViewQuery() *queries.FacilityView {
	return &queries.FacilityView{
		ID:          f.ID,
		Name:        f.Name,
		Location:    f.Location,
		Description: f.Description,
		Capacity:    pgconv.IntToInt32(f.Capacity),
		Active:      f.Active,
		CreatedAt:   f.CreatedAt,
		UpdatedAt:   f.UpdatedAt,
	}
}

func (f *FacilityBuilder) BuildCreateRequestDTO() reqdto.CreateFacilityRequest {
	active := f.Active
	return reqdto.CreateFacilityRequest{
		Name:        f.Name,
		Location:    f.Location,
		Description: f.Description,
		Capacity:    f.Capacity,
		Active:      &active,
	}
}

// Fluent builder methods
func (f *FacilityBuilder) WithName(name string) *FacilityBuilder {
	f.Name = name
	return f
}

func (f *FacilityBuilder) WithCapacity(capacity int) *FacilityBuilder {
	f.Capacity = capacity
	return f
}

func (f *FacilityBuilder) WithHours(opens, closes time.Duration) *FacilityBuilder {
	f.Opens = &opens
	f.Closes = &closes
	return f
}

func (f *FacilityBuilder) AsInactive() *FacilityBuilder {
	f.Active = false
	return f
}

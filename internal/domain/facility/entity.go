package facility

import (
	"time"

	"github.com/google/uuid"
)

type Facility struct {
	id          uuid.UUID
	name        Name
	location    Location
	description string
	capacity    Capacity
	active      bool
	hours       *OpeningHours
	createdAt   time.Time
	updatedAt   time.Time
}

type Spec struct {
	Name        string
	Location    string
	Description string
	Capacity    int
	Active      bool
	Hours       *OpeningHours
}

func NewFacility(spec Spec, now time.Time) (*Facility, error) {
	f := &Facility{
		id:        uuid.New(),
		createdAt: now,
		updatedAt: now,
	}
	if err := f.apply(spec); err != nil {
		return nil, err
	}
	return f, nil
}

func ReconstructFacility(
	id uuid.UUID,
	name, location, description string,
	capacity int,
	active bool,
	hours *OpeningHours,
	createdAt, updatedAt time.Time,
) *Facility {
	return &Facility{
		id:          id,
		name:        Name{value: name},
		location:    Location{value: location},
		description: description,
		capacity:    Capacity{value: capacity},
		active:      active,
		hours:       hours,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// Update replaces every mutable attribute. Existing bookings are not re-checked
// against a reduced capacity.
func (f *Facility) Update(spec Spec, now time.Time) error {
	if err := f.apply(spec); err != nil {
		return err
	}
	f.updatedAt = now
	return nil
}

func (f *Facility) apply(spec Spec) error {
	name, err := NewName(spec.Name)
	if err != nil {
		return err
	}
	location, err := NewLocation(spec.Location)
	if err != nil {
		return err
	}
	capacity, err := NewCapacity(spec.Capacity)
	if err != nil {
		return err
	}

	f.name = name
	f.location = location
	f.description = spec.Description
	f.capacity = capacity
	f.active = spec.Active
	f.hours = spec.Hours
	return nil
}

// Spec returns the current attributes, the starting point for partial updates.
func (f *Facility) Spec() Spec {
	return Spec{
		Name:        f.name.String(),
		Location:    f.location.String(),
		Description: f.description,
		Capacity:    f.capacity.Int(),
		Active:      f.active,
		Hours:       f.hours,
	}
}

func (f *Facility) ID() uuid.UUID        { return f.id }
func (f *Facility) Name() Name           { return f.name }
func (f *Facility) Location() Location   { return f.location }
func (f *Facility) Description() string  { return f.description }
func (f *Facility) Capacity() Capacity   { return f.capacity }
func (f *Facility) IsActive() bool       { return f.active }
func (f *Facility) Hours() *OpeningHours { return f.hours }
func (f *Facility) CreatedAt() time.Time { return f.createdAt }
func (f *Facility) UpdatedAt() time.Time { return f.updatedAt }

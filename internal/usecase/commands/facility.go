package commands

import (
	"context"

	"facility-booking/internal/domain/facility"
	"facility-booking/internal/domain/user"
	"facility-booking/internal/pkg/clock"
	"facility-booking/internal/pkg/errs"
	"facility-booking/internal/pkg/patch"
	"facility-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type FacilityRequest struct {
	Name        string
	Location    string
	Description string
	Capacity    int
	Active      bool
	Hours       *facility.OpeningHours
}

// UpdateFacilityRequest: nil fields keep the stored value. ClearHours removes
// the opening hours.
type UpdateFacilityRequest struct {
	Name        *string
	Location    *string
	Description *string
	Capacity    *int
	Active      *bool
	Hours       *facility.OpeningHours
	ClearHours  bool
}

type CreateFacilityResult struct {
	FacilityID uuid.UUID
}

type FacilityCommands interface {
	Create(ctx context.Context, actor user.Actor, req FacilityRequest) (*CreateFacilityResult, error)
	Update(ctx context.Context, actor user.Actor, facilityID uuid.UUID, req UpdateFacilityRequest) error
	Delete(ctx context.Context, actor user.Actor, facilityID uuid.UUID) error
}

type facilityUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewFacilityUseCase(uow shared.UnitOfWork, clk clock.Clock) FacilityCommands {
	return &facilityUseCaseImpl{uow: uow, clock: clk}
}

func (uc *facilityUseCaseImpl) Create(ctx context.Context, actor user.Actor, req FacilityRequest) (*CreateFacilityResult, error) {
	if !actor.IsPrivileged() {
		return nil, errs.ErrUnauthorized
	}

	f, err := facility.NewFacility(facility.Spec{
		Name:        req.Name,
		Location:    req.Location,
		Description: req.Description,
		Capacity:    req.Capacity,
		Active:      req.Active,
		Hours:       req.Hours,
	}, uc.clock.Now())
	if err != nil {
		return nil, err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Facilities().Create(ctx, tx.DB(), f)
	})
	if err != nil {
		return nil, err
	}
	return &CreateFacilityResult{FacilityID: f.ID()}, nil
}

func (uc *facilityUseCaseImpl) Update(ctx context.Context, actor user.Actor, facilityID uuid.UUID, req UpdateFacilityRequest) error {
	if !actor.IsPrivileged() {
		return errs.ErrUnauthorized
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		f, derr := tx.Reads().FacilityByID(ctx, facilityID)
		if derr != nil {
			return derr
		}

		current := f.Spec()
		spec := facility.Spec{
			Name:        patch.Coalesce(req.Name, current.Name),
			Location:    patch.Coalesce(req.Location, current.Location),
			Description: patch.Coalesce(req.Description, current.Description),
			Capacity:    patch.Coalesce(req.Capacity, current.Capacity),
			Active:      patch.Coalesce(req.Active, current.Active),
			Hours:       patch.Nullable(req.Hours, req.ClearHours, current.Hours),
		}

		if derr = f.Update(spec, uc.clock.Now()); derr != nil {
			return derr
		}
		return tx.Facilities().Update(ctx, tx.DB(), f)
	})
}

// Delete removes the facility and, through the foreign key, its bookings.
func (uc *facilityUseCaseImpl) Delete(ctx context.Context, actor user.Actor, facilityID uuid.UUID) error {
	if !actor.IsPrivileged() {
		return errs.ErrUnauthorized
	}
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, derr := tx.Reads().FacilityByID(ctx, facilityID); derr != nil {
			return derr
		}
		return tx.Facilities().Delete(ctx, tx.DB(), facilityID)
	})
}

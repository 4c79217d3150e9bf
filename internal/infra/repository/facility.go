package repository

import (
	"context"

	"facility-booking/internal/domain/facility"
	"facility-booking/internal/infra"
	"facility-booking/internal/infra/repository/converter"
	sqlc "facility-booking/internal/infra/sqlc/generated"
	"facility-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

type FacilityWriteQueries interface {
	CreateFacility(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateFacilityParams) error
	UpdateFacility(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateFacilityParams) (int64, error)
	DeleteFacility(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
}

type FacilityRepository struct {
	queries FacilityWriteQueries
	db      sqlc.DBTX
}

func NewFacilityRepository(queries FacilityWriteQueries, db sqlc.DBTX) *FacilityRepository {
	return &FacilityRepository{
		queries: queries,
		db:      db,
	}
}

func (r *FacilityRepository) Create(ctx context.Context, tx sqlc.DBTX, f *facility.Facility) error {
	if err := r.queries.CreateFacility(ctx, tx, converter.FacilityToCreateParams(f)); err != nil {
		return infra.WrapRepoErr("failed to create facility", err)
	}
	return nil
}

func (r *FacilityRepository) Update(ctx context.Context, tx sqlc.DBTX, f *facility.Facility) error {
	n, err := r.queries.UpdateFacility(ctx, tx, converter.FacilityToUpdateParams(f))
	if err != nil {
		return infra.WrapRepoErr("failed to update facility", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("facility not found", errs.ErrFacilityNotFound, infra.KindNotFound)
	}
	return nil
}

// Delete cascades to the facility's bookings.
func (r *FacilityRepository) Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error {
	n, err := r.queries.DeleteFacility(ctx, tx, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete facility", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("facility not found", errs.ErrFacilityNotFound, infra.KindNotFound)
	}
	return nil
}

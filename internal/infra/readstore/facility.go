package readstore

import (
	"context"

	"facility-booking/internal/infra"
	"facility-booking/internal/infra/repository/converter"
	sqlc "facility-booking/internal/infra/sqlc/generated"
	"facility-booking/internal/pkg/pgconv"
	"facility-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type FacilityViewQueries interface {
	GetFacilityByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Facility, error)
	ListFacilities(ctx context.Context, db sqlc.DBTX, arg sqlc.ListFacilitiesParams) ([]sqlc.Facility, error)
}

type FacilityReadStore struct {
	queries FacilityViewQueries
	db      sqlc.DBTX
}

func NewFacilityReadStore(queries FacilityViewQueries, db sqlc.DBTX) *FacilityReadStore {
	return &FacilityReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *FacilityReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.FacilityView, error) {
	row, err := r.queries.GetFacilityByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("facility not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get facility by id", err)
	}
	return rowToFacilityView(row), nil
}

func (r *FacilityReadStore) List(ctx context.Context, filters queries.FacilityFilters, activeOnly bool) ([]*queries.FacilityView, error) {
	params := sqlc.ListFacilitiesParams{
		NameContains:     pgconv.StringPtrToPgtype(filters.NameContains),
		LocationContains: pgconv.StringPtrToPgtype(filters.LocationContains),
		MinCapacity:      pgconv.Int4PtrToPgtype(filters.MinCapacity),
		ActiveOnly:       activeOnly,
		LimitCount:       pgconv.IntToInt32(filters.Limit),
	}

	rows, err := r.queries.ListFacilities(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list facilities", err)
	}

	result := make([]*queries.FacilityView, len(rows))
	for i, row := range rows {
		result[i] = rowToFacilityView(row)
	}
	return result, nil
}

func rowToFacilityView(row sqlc.Facility) *queries.FacilityView {
	return &queries.FacilityView{
		ID:          row.ID,
		Name:        row.Name,
		Location:    row.Location,
		Description: row.Description,
		Capacity:    row.Capacity,
		Active:      row.IsActive,
		OpensAt:     converter.ClockString(row.OpeningTime),
		ClosesAt:    converter.ClockString(row.ClosingTime),
		CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:   pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}

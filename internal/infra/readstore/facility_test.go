//go:build unit

package readstore_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"facility-booking/internal/infra"
	"facility-booking/internal/infra/readstore"
	sqlc "facility-booking/internal/infra/sqlc/generated"
	"facility-booking/internal/testutil/builder"
	readstoremock "facility-booking/internal/testutil/mock/readstore"
	"facility-booking/internal/usecase/queries"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestFacilityReadStore_FindByID(t *testing.T) {
	ctx := context.Background()

	t.Run("success: hours rendered as HH:MM", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockFacilityViewQueries(ctrl)
		db := &fakeDB{}
		store := readstore.NewFacilityReadStore(mockQueries, db)

		fb := builder.NewFacilityBuilder().WithHours(9*time.Hour, 17*time.Hour+30*time.Minute)
		mockQueries.EXPECT().GetFacilityByID(ctx, db, fb.ID).Return(fb.BuildInfra(), nil)

		view, err := store.FindByID(ctx, fb.ID)
		require.NoError(t, err)
		assert.Equal(t, fb.Name, view.Name)
		assert.True(t, view.Active)
		require.NotNil(t, view.OpensAt)
		require.NotNil(t, view.ClosesAt)
		assert.Equal(t, "09:00", *view.OpensAt)
		assert.Equal(t, "17:30", *view.ClosesAt)
	})

	t.Run("error: not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockFacilityViewQueries(ctrl)
		db := &fakeDB{}
		store := readstore.NewFacilityReadStore(mockQueries, db)

		fb := builder.NewFacilityBuilder()
		mockQueries.EXPECT().GetFacilityByID(ctx, db, fb.ID).Return(sqlc.Facility{}, pgx.ErrNoRows)

		_, err := store.FindByID(ctx, fb.ID)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestFacilityReadStore_List(t *testing.T) {
	ctx := context.Background()

	t.Run("success: filters passed as nullable params", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockFacilityViewQueries(ctrl)
		db := &fakeDB{}
		store := readstore.NewFacilityReadStore(mockQueries, db)

		name := "hall"
		minCapacity := 8
		rows := []sqlc.Facility{
			builder.NewFacilityBuilder().WithName("Annex Hall").BuildInfra(),
			builder.NewFacilityBuilder().WithName("Main Hall").BuildInfra(),
		}
		mockQueries.EXPECT().ListFacilities(ctx, db, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ sqlc.DBTX, arg sqlc.ListFacilitiesParams) ([]sqlc.Facility, error) {
				assert.True(t, arg.NameContains.Valid)
				assert.Equal(t, "hall", arg.NameContains.String)
				assert.False(t, arg.LocationContains.Valid)
				assert.True(t, arg.MinCapacity.Valid)
				assert.Equal(t, int32(8), arg.MinCapacity.Int32)
				assert.True(t, arg.ActiveOnly)
				assert.Equal(t, int32(20), arg.LimitCount)
				return rows, nil
			})

		views, err := store.List(ctx, queries.FacilityFilters{NameContains: &name, MinCapacity: &minCapacity, Limit: 20}, true)
		require.NoError(t, err)
		require.Len(t, views, 2)
		assert.Equal(t, "Annex Hall", views[0].Name)
		assert.Nil(t, views[0].OpensAt)
	})

	t.Run("error: database error occurs", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockFacilityViewQueries(ctrl)
		db := &fakeDB{}
		store := readstore.NewFacilityReadStore(mockQueries, db)

		mockQueries.EXPECT().ListFacilities(ctx, db, gomock.Any()).Return(nil, errors.New("boom"))

		_, err := store.List(ctx, queries.FacilityFilters{Limit: 20}, false)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

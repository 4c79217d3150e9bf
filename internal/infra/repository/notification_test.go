//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"facility-booking/internal/infra"
	"facility-booking/internal/infra/repository"
	sqlc "facility-booking/internal/infra/sqlc/generated"
	"facility-booking/internal/pkg/pgconv"
	repositorymock "facility-booking/internal/testutil/mock/repository"
	"facility-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNotificationRepository_CreateJob(t *testing.T) {
	ctx := context.Background()
	runAt := time.Date(2030, 4, 1, 9, 0, 0, 0, time.UTC)

	t.Run("success: defaults id and status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockNotificationWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewNotificationRepository(mockQueries, mockDB)

		bookingID := uuid.New()
		mockQueries.EXPECT().CreateNotificationJob(ctx, mockDB, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ sqlc.DBTX, arg sqlc.CreateNotificationJobParams) error {
				assert.NotEqual(t, uuid.Nil, arg.ID)
				assert.Equal(t, "queued", arg.Status)
				assert.Equal(t, "booking.created", arg.Kind)
				assert.Equal(t, bookingID, arg.BookingID)
				assert.Equal(t, "booking-events", arg.Topic)
				assert.True(t, arg.RunAt.Time.Equal(runAt))
				return nil
			})

		err := repo.CreateJob(ctx, mockDB, shared.NotificationJob{
			Kind:      shared.EventBookingCreated,
			BookingID: bookingID,
			Topic:     "booking-events",
			Payload:   []byte(`{}`),
			RunAt:     runAt,
		})
		require.NoError(t, err)
	})

	t.Run("error: database error occurs", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockNotificationWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewNotificationRepository(mockQueries, mockDB)

		mockQueries.EXPECT().CreateNotificationJob(ctx, mockDB, gomock.Any()).Return(errors.New("boom"))

		err := repo.CreateJob(ctx, mockDB, shared.NotificationJob{Kind: shared.EventBookingCreated})
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestNotificationRepository_ClaimPendingJobs(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2030, 4, 1, 9, 0, 0, 0, time.UTC)

	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockNotificationWriteQueries(ctrl)
	mockDB := &mockDBTX{}
	repo := repository.NewNotificationRepository(mockQueries, mockDB)

	row := sqlc.NotificationJob{
		ID:        uuid.New(),
		Kind:      "booking.confirmed",
		BookingID: uuid.New(),
		Topic:     "booking-events",
		Payload:   []byte(`{"kind":"booking.confirmed"}`),
		Status:    "queued",
		Attempts:  2,
		RunAt:     pgconv.TimeToPgtype(now),
		LastError: pgtype.Text{String: "broker down", Valid: true},
	}
	mockQueries.EXPECT().ClaimPendingNotificationJobs(ctx, mockDB, sqlc.ClaimPendingNotificationJobsParams{
		Now:        pgconv.TimeToPgtype(now),
		LimitCount: 10,
	}).Return([]sqlc.NotificationJob{row}, nil)

	jobs, err := repo.ClaimPendingJobs(ctx, mockDB, now, 10)
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, row.ID, jobs[0].ID)
	assert.Equal(t, shared.EventBookingConfirmed, jobs[0].Kind)
	assert.Equal(t, shared.JobQueued, jobs[0].Status)
	assert.Equal(t, int32(2), jobs[0].Attempts)
	require.NotNil(t, jobs[0].LastError)
	assert.Equal(t, "broker down", *jobs[0].LastError)
}

func TestNotificationRepository_MarkAttempts(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2030, 4, 1, 9, 0, 0, 0, time.UTC)
	jobID := uuid.New()

	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockNotificationWriteQueries(ctrl)
	mockDB := &mockDBTX{}
	repo := repository.NewNotificationRepository(mockQueries, mockDB)

	mockQueries.EXPECT().MarkNotificationJobSent(ctx, mockDB, sqlc.MarkNotificationJobSentParams{
		Now: pgconv.TimeToPgtype(now),
		ID:  jobID,
	}).Return(nil)
	mockQueries.EXPECT().MarkNotificationJobAttemptFailed(ctx, mockDB, sqlc.MarkNotificationJobAttemptFailedParams{
		LastError:   pgtype.Text{String: "timeout", Valid: true},
		MaxAttempts: 5,
		RetryAt:     pgconv.TimeToPgtype(now.Add(time.Minute)),
		ID:          jobID,
	}).Return(errors.New("boom"))

	require.NoError(t, repo.MarkSent(ctx, mockDB, jobID, now))

	err := repo.MarkAttemptFailed(ctx, mockDB, jobID, "timeout", 5, now.Add(time.Minute))
	require.Error(t, err)
	assert.True(t, infra.IsKind(err, infra.KindDBFailure))
}

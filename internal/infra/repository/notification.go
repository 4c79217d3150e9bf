package repository

import (
	"context"
	"time"

	"facility-booking/internal/infra"
	"facility-booking/internal/infra/repository/converter"
	sqlc "facility-booking/internal/infra/sqlc/generated"
	"facility-booking/internal/pkg/pgconv"
	"facility-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type NotificationWriteQueries interface {
	CreateNotificationJob(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateNotificationJobParams) error
	ClaimPendingNotificationJobs(ctx context.Context, db sqlc.DBTX, arg sqlc.ClaimPendingNotificationJobsParams) ([]sqlc.NotificationJob, error)
	MarkNotificationJobSent(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkNotificationJobSentParams) error
	MarkNotificationJobAttemptFailed(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkNotificationJobAttemptFailedParams) error
}

type NotificationRepository struct {
	queries NotificationWriteQueries
	db      sqlc.DBTX
}

func NewNotificationRepository(queries NotificationWriteQueries, db sqlc.DBTX) *NotificationRepository {
	return &NotificationRepository{
		queries: queries,
		db:      db,
	}
}

func (r *NotificationRepository) CreateJob(ctx context.Context, tx sqlc.DBTX, job shared.NotificationJob) error {
	if job.ID == uuid.Nil {
		job.ID = uuid.New()
	}
	if job.Status == "" {
		job.Status = shared.JobQueued
	}

	if err := r.queries.CreateNotificationJob(ctx, tx, converter.NotificationJobToCreateParams(job)); err != nil {
		return infra.WrapRepoErr("failed to create notification job", err)
	}
	return nil
}

// ClaimPendingJobs locks due queued jobs with SKIP LOCKED, so concurrent
// relays never pick the same row. Call it inside a transaction.
func (r *NotificationRepository) ClaimPendingJobs(ctx context.Context, tx sqlc.DBTX, now time.Time, limit int32) ([]shared.NotificationJob, error) {
	rows, err := r.queries.ClaimPendingNotificationJobs(ctx, tx, sqlc.ClaimPendingNotificationJobsParams{
		Now:        pgconv.TimeToPgtype(now),
		LimitCount: limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to claim notification jobs", err)
	}

	jobs := make([]shared.NotificationJob, 0, len(rows))
	for _, row := range rows {
		jobs = append(jobs, converter.NotificationJobFromRow(row))
	}
	return jobs, nil
}

func (r *NotificationRepository) MarkSent(ctx context.Context, tx sqlc.DBTX, jobID uuid.UUID, now time.Time) error {
	err := r.queries.MarkNotificationJobSent(ctx, tx, sqlc.MarkNotificationJobSentParams{
		Now: pgconv.TimeToPgtype(now),
		ID:  jobID,
	})
	if err != nil {
		return infra.WrapRepoErr("failed to mark notification job sent", err)
	}
	return nil
}

// MarkAttemptFailed requeues the job at retryAt, or marks it failed once
// maxAttempts is reached.
func (r *NotificationRepository) MarkAttemptFailed(ctx context.Context, tx sqlc.DBTX, jobID uuid.UUID, lastError string, maxAttempts int32, retryAt time.Time) error {
	err := r.queries.MarkNotificationJobAttemptFailed(ctx, tx, sqlc.MarkNotificationJobAttemptFailedParams{
		LastError:   pgtype.Text{String: lastError, Valid: true},
		MaxAttempts: maxAttempts,
		RetryAt:     pgconv.TimeToPgtype(retryAt),
		ID:          jobID,
	})
	if err != nil {
		return infra.WrapRepoErr("failed to record notification attempt", err)
	}
	return nil
}

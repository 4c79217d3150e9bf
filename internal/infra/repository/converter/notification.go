package converter

import (
	sqlc "facility-booking/internal/infra/sqlc/generated"
	"facility-booking/internal/pkg/pgconv"
	"facility-booking/internal/usecase/shared"
)

func NotificationJobToCreateParams(job shared.NotificationJob) sqlc.CreateNotificationJobParams {
	return sqlc.CreateNotificationJobParams{
		ID:        job.ID,
		Kind:      job.Kind.String(),
		BookingID: job.BookingID,
		Topic:     job.Topic,
		Payload:   job.Payload,
		Status:    string(job.Status),
		RunAt:     pgconv.TimeToPgtype(job.RunAt),
	}
}

func NotificationJobFromRow(row sqlc.NotificationJob) shared.NotificationJob {
	return shared.NotificationJob{
		ID:        row.ID,
		Kind:      shared.EventKind(row.Kind),
		BookingID: row.BookingID,
		Topic:     row.Topic,
		Payload:   row.Payload,
		Status:    shared.JobStatus(row.Status),
		Attempts:  row.Attempts,
		RunAt:     pgconv.TimeFromPgtype(row.RunAt),
		LastError: pgconv.StringPtrFromPgtype(row.LastError),
	}
}

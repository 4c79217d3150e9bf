package shared

import (
	"context"
	"time"

	"facility-booking/internal/domain/booking"
	"facility-booking/internal/domain/facility"
	sqlc "facility-booking/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Facilities() FacilityRepository
	Bookings() BookingRepository
	Notifications() NotificationRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

// CommandReads loads current state for the write side. Inside a transaction
// BookingByID holds a row lock until commit.
type CommandReads interface {
	FacilityByID(ctx context.Context, id uuid.UUID) (*facility.Facility, error)
	BookingByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	HasConfirmedOverlap(ctx context.Context, facilityID uuid.UUID, slot booking.TimeSlot, excludeID uuid.UUID) (bool, error)
}

type FacilityRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, f *facility.Facility) error
	Update(ctx context.Context, tx sqlc.DBTX, f *facility.Facility) error
	Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error
}

type BookingRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) error
	Update(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) error
	Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, tx sqlc.DBTX, job NotificationJob) error
	ClaimPendingJobs(ctx context.Context, tx sqlc.DBTX, now time.Time, limit int32) ([]NotificationJob, error)
	MarkSent(ctx context.Context, tx sqlc.DBTX, jobID uuid.UUID, now time.Time) error
	MarkAttemptFailed(ctx context.Context, tx sqlc.DBTX, jobID uuid.UUID, lastError string, maxAttempts int32, retryAt time.Time) error
}

package notification

import (
	"time"

	"facility-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

// Event is the JSON document stored in the outbox and published to the broker.
type Event struct {
	Kind       shared.EventKind `json:"kind"`
	BookingID  uuid.UUID        `json:"booking_id"`
	OccurredAt time.Time        `json:"occurred_at"`
}

package shared

import (
	"time"

	"github.com/google/uuid"
)

type EventKind string

const (
	EventBookingCreated   EventKind = "booking.created"
	EventBookingConfirmed EventKind = "booking.confirmed"
	EventBookingCancelled EventKind = "booking.cancelled"
	EventBookingReminder  EventKind = "booking.reminder"
)

func (k EventKind) String() string { return string(k) }

type JobStatus string

const (
	JobQueued JobStatus = "queued"
	JobSent   JobStatus = "sent"
	JobFailed JobStatus = "failed"
)

// NotificationJob is one outbox row. Payload is the JSON message relayed to the broker.
type NotificationJob struct {
	ID        uuid.UUID
	Kind      EventKind
	BookingID uuid.UUID
	Topic     string
	Payload   []byte
	Status    JobStatus
	Attempts  int32
	RunAt     time.Time
	LastError *string
}

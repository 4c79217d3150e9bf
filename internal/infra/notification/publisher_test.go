//go:build unit

package notification

import (
	"context"
	"testing"
	"time"

	"facility-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingWriter struct {
	msgs   []kafka.Message
	closed bool
}

func (w *recordingWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *recordingWriter) Close() error {
	w.closed = true
	return nil
}

func TestKafkaPublisher_Publish(t *testing.T) {
	w := &recordingWriter{}
	p := &KafkaPublisher{writer: w}

	job := shared.NotificationJob{
		ID:        uuid.New(),
		Kind:      shared.EventBookingCancelled,
		BookingID: uuid.New(),
		Topic:     "booking-events",
		Payload:   []byte(`{"kind":"booking.cancelled"}`),
	}
	require.NoError(t, p.Publish(context.Background(), job))
	require.NoError(t, p.Close())

	require.Len(t, w.msgs, 1)
	msg := w.msgs[0]
	assert.Equal(t, "booking-events", msg.Topic)
	assert.Equal(t, []byte(job.BookingID.String()), msg.Key)
	assert.Equal(t, job.Payload, msg.Value)
	assert.Contains(t, msg.Headers, kafka.Header{Key: "kind", Value: []byte("booking.cancelled")})
	assert.True(t, w.closed)
}

func TestNewPublisher(t *testing.T) {
	assert.IsType(t, LogPublisher{}, NewPublisher(nil))
	assert.IsType(t, &KafkaPublisher{}, NewPublisher([]string{"localhost:9092"}))
}

func TestRetryDelay(t *testing.T) {
	assert.Equal(t, 5*time.Second, retryDelay(0))
	assert.Equal(t, 10*time.Second, retryDelay(1))
	assert.Equal(t, 40*time.Second, retryDelay(3))
	assert.Equal(t, 10*time.Minute, retryDelay(20))
}

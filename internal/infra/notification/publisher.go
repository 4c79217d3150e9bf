package notification

import (
	"context"
	"log/slog"
	"time"

	"facility-booking/internal/usecase/shared"

	"github.com/segmentio/kafka-go"
)

type Publisher interface {
	Publish(ctx context.Context, job shared.NotificationJob) error
	Close() error
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher keys messages by booking id so one booking's events stay
// ordered within a partition.
type KafkaPublisher struct {
	writer messageWriter
}

func NewKafkaPublisher(brokers []string) *KafkaPublisher {
	return &KafkaPublisher{
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(brokers...),
			Balancer:               &kafka.Hash{},
			RequiredAcks:           kafka.RequireAll,
			AllowAutoTopicCreation: true,
			BatchTimeout:           10 * time.Millisecond,
		},
	}
}

func (p *KafkaPublisher) Publish(ctx context.Context, job shared.NotificationJob) error {
	return p.writer.WriteMessages(ctx, kafka.Message{
		Topic: job.Topic,
		Key:   []byte(job.BookingID.String()),
		Value: job.Payload,
		Headers: []kafka.Header{
			{Key: "kind", Value: []byte(job.Kind.String())},
			{Key: "job_id", Value: []byte(job.ID.String())},
		},
	})
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// LogPublisher stands in for the broker when no Kafka brokers are configured.
type LogPublisher struct{}

func (LogPublisher) Publish(_ context.Context, job shared.NotificationJob) error {
	slog.Info("notification",
		"kind", job.Kind.String(),
		"booking_id", job.BookingID.String(),
		"topic", job.Topic,
		"payload", string(job.Payload))
	return nil
}

func (LogPublisher) Close() error { return nil }

func NewPublisher(brokers []string) Publisher {
	if len(brokers) == 0 {
		return LogPublisher{}
	}
	return NewKafkaPublisher(brokers)
}

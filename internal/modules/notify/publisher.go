// README: Publishers for booking events (Kafka or no-op).
package notify

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/segmentio/kafka-go"
)

type Publisher interface {
	PublishBookingSubmitted(ctx context.Context, e BookingSubmitted) error
}

// messageWriter is the subset of *kafka.Writer the publisher needs.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

type KafkaPublisher struct {
	writer messageWriter
}

func NewKafkaPublisher(w *kafka.Writer) *KafkaPublisher {
	return &KafkaPublisher{writer: w}
}

func (p *KafkaPublisher) PublishBookingSubmitted(ctx context.Context, e BookingSubmitted) error {
	e.Type = TypeBookingSubmitted
	payload, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("marshal booking event: %w", err)
	}
	msg := kafka.Message{
		Key:   []byte(e.SessionID),
		Value: payload,
		Headers: []kafka.Header{
			{Key: "type", Value: []byte(TypeBookingSubmitted)},
		},
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("publish booking event: %w", err)
	}
	return nil
}

// Noop discards events; used when no brokers are configured.
type Noop struct{}

func (Noop) PublishBookingSubmitted(context.Context, BookingSubmitted) error { return nil }

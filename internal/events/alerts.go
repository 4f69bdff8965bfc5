// Package events publishes alert notifications to Kafka so downstream
// notifiers (SMS, push, sirens) can fan them out.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/pramindu123/hazardx-gateway/internal/observability"
	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const alertCreated = "alert.created"

// AlertEvent is the message written for every alert an officer creates.
type AlertEvent struct {
	ID                    string    `json:"id"`
	AlertType             string    `json:"alert_type"`
	District              string    `json:"district"`
	DivisionalSecretariat string    `json:"divisional_secretariat"`
	Severity              string    `json:"severity"`
	Latitude              float64   `json:"latitude"`
	Longitude             float64   `json:"longitude"`
	ReportID              int       `json:"report_id,omitempty"`
	IssuedBy              string    `json:"issued_by"`
	IssuedAt              time.Time `json:"issued_at"`
}

// Publisher delivers alert events.
type Publisher interface {
	PublishAlert(ctx context.Context, e AlertEvent) error
	Close() error
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafkago.Message) error
	Close() error
}

// KafkaPublisher writes alert events to a Kafka topic.
type KafkaPublisher struct {
	writer  messageWriter
	metrics *observability.Metrics
	logger  *zap.SugaredLogger
}

// NewKafkaPublisher creates a producer for the alert topic.
func NewKafkaPublisher(brokers []string, topic string, metrics *observability.Metrics, logger *zap.SugaredLogger) *KafkaPublisher {
	w := &kafkago.Writer{
		Addr:         kafkago.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafkago.Hash{},
		RequiredAcks: kafkago.RequireAll,
		BatchTimeout: 10 * time.Millisecond,
	}
	return &KafkaPublisher{writer: w, metrics: metrics, logger: logger}
}

// PublishAlert writes one alert event. Events are keyed by district so a
// district's alerts stay ordered on one partition.
func (p *KafkaPublisher) PublishAlert(ctx context.Context, e AlertEvent) error {
	msg, err := serializeToMessage(e)
	if err != nil {
		p.metrics.AlertPublishErrors.Inc()
		return err
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		p.metrics.AlertPublishErrors.Inc()
		return fmt.Errorf("write alert event: %w", err)
	}
	p.metrics.AlertsPublished.Inc()
	p.logger.Infow("Alert event published", "id", e.ID, "district", e.District, "severity", e.Severity)
	return nil
}

// Close flushes pending writes and closes the producer.
func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// NopPublisher drops every event. Used when no brokers are configured.
type NopPublisher struct{}

func (NopPublisher) PublishAlert(context.Context, AlertEvent) error { return nil }
func (NopPublisher) Close() error                                   { return nil }

func serializeToMessage(e AlertEvent) (kafkago.Message, error) {
	data, err := json.Marshal(e)
	if err != nil {
		return kafkago.Message{}, fmt.Errorf("serialize alert event: %w", err)
	}
	return kafkago.Message{
		Key:   []byte(e.District),
		Value: data,
		Headers: []kafkago.Header{
			{Key: "event_type", Value: []byte(alertCreated)},
			{Key: "severity", Value: []byte(e.Severity)},
			{Key: "issued_at", Value: []byte(e.IssuedAt.Format(time.RFC3339))},
		},
	}, nil
}

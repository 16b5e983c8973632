package event

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/resumee-hq/resumee-api/internal/config"
)

const (
	TopicResumeEvents = "resume.events"
	TopicViewEvents   = "view.events"
)

const (
	ResumeEventTypeActivated  = "activated"
	ResumeEventTypeDuplicated = "duplicated"
)

type ResumeEventPayload struct {
	EventType string    `json:"event_type"`
	ResumeID  uuid.UUID `json:"resume_id"`
	// SourceID is set on duplicated events to the résumé that was copied.
	SourceID *uuid.UUID `json:"source_id,omitempty"`
	At       time.Time  `json:"at"`
}

// ViewEventPayload records one public page view. Page is "home", "cv"
// or "portfolio".
type ViewEventPayload struct {
	Page     string     `json:"page"`
	ResumeID *uuid.UUID `json:"resume_id,omitempty"`
	At       time.Time  `json:"at"`
}

type KafkaProducerClient struct {
	ResumeEventsWriter *kafka.Writer
	ViewEventsWriter   *kafka.Writer
}

func NewKafkaProducerClient(cfg config.Config) (*KafkaProducerClient, error) {
	brokers := cfg.Kafka.Brokers
	if len(brokers) == 0 {
		return nil, fmt.Errorf("config Kafka brokers not found")
	}

	resumeWriter := &kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Topic:    TopicResumeEvents,
		Balancer: &kafka.LeastBytes{},
	}

	viewWriter := &kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Topic:    TopicViewEvents,
		Balancer: &kafka.LeastBytes{},
	}

	fmt.Println("Initialize Kafka Producers successfully.")

	return &KafkaProducerClient{
		ResumeEventsWriter: resumeWriter,
		ViewEventsWriter:   viewWriter,
	}, nil
}

func (c *KafkaProducerClient) PublishResumeEvent(ctx context.Context, payload ResumeEventPayload) error {
	value, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal resume event failed: %w", err)
	}
	return c.ResumeEventsWriter.WriteMessages(ctx, kafka.Message{
		Key:   []byte(payload.ResumeID.String()),
		Value: value,
	})
}

func (c *KafkaProducerClient) PublishViewEvent(ctx context.Context, payload ViewEventPayload) error {
	value, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal view event failed: %w", err)
	}
	return c.ViewEventsWriter.WriteMessages(ctx, kafka.Message{
		Key:   []byte(payload.Page),
		Value: value,
	})
}

func (c *KafkaProducerClient) Close() {
	if c.ResumeEventsWriter != nil {
		c.ResumeEventsWriter.Close()
	}
	if c.ViewEventsWriter != nil {
		c.ViewEventsWriter.Close()
	}
	fmt.Println("Closed Kafka Producers")
}

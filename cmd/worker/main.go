package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/segmentio/kafka-go"

	"github.com/resumee-hq/resumee-api/adapters/event"
	"github.com/resumee-hq/resumee-api/adapters/persistence"
	"github.com/resumee-hq/resumee-api/internal/config"
)

func main() {
	fmt.Println("Starting Resumee Worker...")

	// Configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: cannot load config: %v", err)
	}

	// Redis holds the per-page view counters.
	redisClient, err := persistence.NewRedisClient(cfg)
	if err != nil {
		log.Fatalf("FATAL: cannot connect Redis: %v", err)
	}
	defer redisClient.Close()

	documentCache := persistence.NewRedisDocumentCache(redisClient)

	// Kafka Consumer
	viewConsumer := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  cfg.Kafka.Brokers,
		Topic:    event.TopicViewEvents,
		GroupID:  "view-counter-group",
		MinBytes: 10e3,
		MaxBytes: 10e6,
	})
	defer viewConsumer.Close()

	log.Printf("Worker listening on topic '%s'...", event.TopicViewEvents)

	ctx := context.Background()
	for {
		msg, err := viewConsumer.ReadMessage(ctx)
		if err != nil {
			log.Printf("ERROR: Failed to read message from Kafka: %v", err)
			continue
		}

		var payload event.ViewEventPayload
		if err := json.Unmarshal(msg.Value, &payload); err != nil {
			log.Printf("ERROR: Failed to unmarshal event: %v. Skipping.", err)
			commitMessage(viewConsumer, msg)
			continue
		}

		if err := documentCache.IncrementViews(ctx, payload.Page); err != nil {
			log.Printf("ERROR: Failed to count view for page %s: %v", payload.Page, err)
			continue
		}

		commitMessage(viewConsumer, msg)
	}
}

func commitMessage(consumer *kafka.Reader, msg kafka.Message) {
	if err := consumer.CommitMessages(context.Background(), msg); err != nil {
		log.Printf("ERROR: Failed to commit message: %v", err)
	}
}

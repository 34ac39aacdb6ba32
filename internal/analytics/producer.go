package analytics

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/IBM/sarama"
)

// Publisher is the contract for emitting query events. The assistant calls
// it fire-and-forget; a failing publisher must never fail a visitor query.
type Publisher interface {
	PublishQueryEvent(ctx context.Context, event *QueryEvent) error
	Close() error
}

// KafkaPublisherConfig contains configuration for the Kafka query publisher
type KafkaPublisherConfig struct {
	Brokers    []string
	QueryTopic string
	RetryMax   int
	TimeoutMs  int
}

// DefaultKafkaPublisherConfig returns a default publisher configuration
func DefaultKafkaPublisherConfig() *KafkaPublisherConfig {
	return &KafkaPublisherConfig{
		Brokers:    []string{"localhost:9092"},
		QueryTopic: "wayfinder-queries",
		RetryMax:   3,
		TimeoutMs:  10000, // 10 seconds
	}
}

// KafkaPublisher publishes query events to Kafka
type KafkaPublisher struct {
	producer sarama.SyncProducer
	config   *KafkaPublisherConfig
}

// NewKafkaPublisher creates a new Kafka query event publisher
func NewKafkaPublisher(config *KafkaPublisherConfig) (Publisher, error) {
	saramaConfig := sarama.NewConfig()

	saramaConfig.Producer.Return.Successes = true
	saramaConfig.Producer.Return.Errors = true
	saramaConfig.Producer.RequiredAcks = sarama.WaitForLocal
	saramaConfig.Producer.Compression = sarama.CompressionSnappy
	saramaConfig.Producer.Retry.Max = config.RetryMax
	saramaConfig.Producer.Timeout = time.Duration(config.TimeoutMs) * time.Millisecond

	// Per-session ordering via hash partitioning on the session id
	saramaConfig.Producer.Partitioner = sarama.NewHashPartitioner

	producer, err := sarama.NewSyncProducer(config.Brokers, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka producer: %w", err)
	}

	log.Printf("Kafka query event publisher created successfully")
	return &KafkaPublisher{producer: producer, config: config}, nil
}

// PublishQueryEvent publishes a single query event to Kafka
func (p *KafkaPublisher) PublishQueryEvent(ctx context.Context, event *QueryEvent) error {
	messageBytes, err := event.ToJSON()
	if err != nil {
		return fmt.Errorf("failed to marshal query event: %w", err)
	}

	message := &sarama.ProducerMessage{
		Topic:     p.config.QueryTopic,
		Key:       sarama.StringEncoder(event.GetPartitionKey()),
		Value:     sarama.ByteEncoder(messageBytes),
		Timestamp: event.CreatedAt,
	}

	if _, _, err := p.producer.SendMessage(message); err != nil {
		return fmt.Errorf("failed to publish query event: %w", err)
	}

	return nil
}

// Close shuts down the underlying producer
func (p *KafkaPublisher) Close() error {
	return p.producer.Close()
}

// NopPublisher drops every event. Used when no brokers are configured so the
// assistant never has to care whether analytics is wired up.
type NopPublisher struct{}

func NewNopPublisher() Publisher {
	return &NopPublisher{}
}

func (NopPublisher) PublishQueryEvent(ctx context.Context, event *QueryEvent) error {
	return nil
}

func (NopPublisher) Close() error {
	return nil
}

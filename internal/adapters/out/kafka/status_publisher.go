// Package kafka publishes order lifecycle events to a Kafka topic.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"orders/internal/core/domain/model/order"

	"github.com/IBM/sarama"
)

// statusChangedMessage is the wire format of an order status transition.
type statusChangedMessage struct {
	OrderID   string    `json:"order_id"`
	OldStatus string    `json:"old_status"`
	NewStatus string    `json:"new_status"`
	EventTime time.Time `json:"event_time"`
}

// StatusPublisher sends status transition events through a synchronous
// Kafka producer. Implements ports.StatusChangedPublisher.
type StatusPublisher struct {
	producer sarama.SyncProducer
	topic    string
	logger   *slog.Logger
}

// NewStatusPublisher connects to the given brokers and creates a publisher
// for the topic. The producer waits for acknowledgment from all replicas.
func NewStatusPublisher(brokers []string, topic string, logger *slog.Logger) (*StatusPublisher, error) {
	config := sarama.NewConfig()
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Retry.Max = 5
	config.Producer.Return.Successes = true

	producer, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka producer: %w", err)
	}

	return &StatusPublisher{
		producer: producer,
		topic:    topic,
		logger:   logger,
	}, nil
}

// PublishStatusChanged sends one status transition event, keyed by order ID
// so transitions of the same order stay ordered within a partition.
func (p *StatusPublisher) PublishStatusChanged(_ context.Context, event order.StatusChangedEvent) error {
	message := statusChangedMessage{
		OrderID:   event.OrderID().String(),
		OldStatus: event.OldStatus().String(),
		NewStatus: event.NewStatus().String(),
		EventTime: time.Now(),
	}

	data, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(message.OrderID),
		Value: sarama.ByteEncoder(data),
	}

	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}

	p.logger.Info("status change published",
		"topic", p.topic,
		"partition", partition,
		"offset", offset,
		"orderId", message.OrderID,
	)

	return nil
}

// Close shuts down the underlying producer.
func (p *StatusPublisher) Close() error {
	return p.producer.Close()
}

package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/AreveiHQ/jenii-Admin/orders"
	kafkaGo "github.com/segmentio/kafka-go"
)

const orderStatusTopic = "order.status.changed"

// KafkaPublisher emits order status changes so the storefront and
// notification services can react to admin updates.
type KafkaPublisher struct {
	writer *kafkaGo.Writer
}

func NewKafkaPublisher(brokers []string) *KafkaPublisher {
	return &KafkaPublisher{
		writer: &kafkaGo.Writer{
			Addr:     kafkaGo.TCP(brokers...),
			Topic:    orderStatusTopic,
			Balancer: &kafkaGo.LeastBytes{},
		},
	}
}

func (p *KafkaPublisher) PublishOrderStatus(ctx context.Context, change orders.StatusChange) error {
	payload, err := json.Marshal(change)
	if err != nil {
		return fmt.Errorf("marshal status change: %w", err)
	}
	return p.writer.WriteMessages(ctx, kafkaGo.Message{
		Key:   []byte(change.SubOrderID),
		Value: payload,
	})
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// NopPublisher drops events. Used when no brokers are configured.
type NopPublisher struct{}

func (NopPublisher) PublishOrderStatus(context.Context, orders.StatusChange) error {
	return nil
}

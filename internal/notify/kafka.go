package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/kitforge/order-service/internal/config"
	"github.com/kitforge/order-service/internal/entities"

	"github.com/segmentio/kafka-go"
)

// KafkaNotifier publishes order-paid events for the downstream notification
// and document-generation consumers.
type KafkaNotifier struct {
	logger *slog.Logger
	writer *kafka.Writer
}

func NewKafkaNotifier(logger *slog.Logger, cfg config.Kafka) *KafkaNotifier {
	return &KafkaNotifier{
		logger: logger.With(slog.String("component", "kafka_notifier")),
		writer: &kafka.Writer{
			Addr:         kafka.TCP(cfg.Brokers...),
			Topic:        cfg.PaidTopic,
			Balancer:     &kafka.LeastBytes{},
			BatchTimeout: cfg.BatchTimeout,
		},
	}
}

type orderPaidEvent struct {
	OrderID          string `json:"order_id"`
	UserID           string `json:"user_id"`
	DesignRef        string `json:"design_ref,omitempty"`
	TotalAmountMinor int64  `json:"total_amount_minor"`
	ItemCount        int    `json:"item_count"`
}

func (n *KafkaNotifier) OrderPaid(ctx context.Context, order entities.Order) error {
	event := orderPaidEvent{
		OrderID:          order.ID,
		UserID:           order.UserID,
		DesignRef:        order.DesignRef,
		TotalAmountMinor: order.Breakdown.GrandTotalMinor,
		ItemCount:        order.Breakdown.ItemCount,
	}

	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal paid event: %w", err)
	}

	if err := n.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(order.ID),
		Value: value,
	}); err != nil {
		return fmt.Errorf("failed to publish paid event: %w", err)
	}

	n.logger.DebugContext(ctx, "paid event published", slog.String("order_id", order.ID))
	return nil
}

func (n *KafkaNotifier) Close() error {
	return n.writer.Close()
}

package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/kitforge/order-service/internal/config"
	"github.com/kitforge/order-service/internal/entities"
	"github.com/kitforge/order-service/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/segmentio/kafka-go"
)

// PaymentApplier is the lifecycle surface the payment-events consumer needs.
type PaymentApplier interface {
	MarkPaid(ctx context.Context, orderID, paymentRef string) error
	MarkPaymentFailed(ctx context.Context, orderID string) error
}

// PaymentEvent приходит от платежного коллаборатора после попытки списания
type PaymentEvent struct {
	OrderID    string `json:"order_id" validate:"required,uuid"`
	PaymentRef string `json:"payment_ref" validate:"required"`
	Status     string `json:"status" validate:"required,oneof=succeeded failed"`
}

type kafkaHandler struct {
	dlq      *kafka.Writer
	reader   *kafka.Reader
	logger   *slog.Logger
	validate *validator.Validate
	applier  PaymentApplier
}

func NewKafkaHandler(logger *slog.Logger, cfg config.Kafka, applier PaymentApplier) *kafkaHandler {
	return &kafkaHandler{
		logger: logger.With(slog.String("handler", "kafka")),
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers: cfg.Brokers,
			GroupID: cfg.GroupID,
			Topic:   cfg.PaymentsTopic,
			MaxWait: cfg.ReaderMaxWait,
		}),
		dlq: &kafka.Writer{
			Addr:         kafka.TCP(cfg.Brokers...),
			Balancer:     &kafka.LeastBytes{},
			BatchTimeout: cfg.BatchTimeout,
		},
		validate: validator.New(),
		applier:  applier,
	}
}

func (h *kafkaHandler) Consume(ctx context.Context) {
	for {
		m, err := h.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
				break
			} else {
				h.logger.Error("failed to fetch message", slog.Any("error", err))
				continue
			}
		}

		start := time.Now()
		if err := h.handlePaymentEvent(ctx, m); err != nil {
			paymentEventsFailed.Inc()
			h.logger.Error("failed to handle payment event", slog.Any("error", err))

			// В библиотеке уже есть retry
			if err := h.WriteToDLQ(ctx, m); err != nil {
				h.logger.Error("failed to write message to DLQ", slog.Any("error", err))
				continue
			}
			paymentEventsDLQ.Inc()
		} else {
			paymentEventsProcessed.Inc()
		}
		paymentEventDuration.Observe(time.Since(start).Seconds())

		if err := h.reader.CommitMessages(ctx, m); err != nil {
			commitErrors.Inc()
			h.logger.Error("failed to commit message", slog.Any("error", err))
		}
	}
}

// handlePaymentEvent applies a capture outcome to the lifecycle. Verification
// failures are retried with backoff; events that can never apply (unknown
// order, illegal edge) go straight to the DLQ.
func (h *kafkaHandler) handlePaymentEvent(ctx context.Context, m kafka.Message) error {
	var event PaymentEvent
	if err := json.Unmarshal(m.Value, &event); err != nil {
		return fmt.Errorf("failed to unmarshal payment event: %w", err)
	}

	if err := h.validate.Struct(event); err != nil {
		return fmt.Errorf("invalid payment event: %w", err)
	}

	cfg := utils.RetryConfig{
		InitialDelay: 100 * time.Millisecond,
		MaxAttempts:  5,
		Multiplier:   2,
	}

	fn := func() error {
		if event.Status == "failed" {
			return h.applier.MarkPaymentFailed(ctx, event.OrderID)
		}
		return h.applier.MarkPaid(ctx, event.OrderID, event.PaymentRef)
	}

	return utils.Retry(cfg, fn,
		entities.ErrOrderNotFound,
		entities.ErrIllegalTransition,
	)
}

func (h *kafkaHandler) WriteToDLQ(ctx context.Context, m kafka.Message) error {
	m.Topic = fmt.Sprintf("%s-dlq", m.Topic)
	return h.dlq.WriteMessages(ctx, m)
}

func (h *kafkaHandler) Close() error {
	if err := h.reader.Close(); err != nil {
		return err
	}
	return h.dlq.Close()
}

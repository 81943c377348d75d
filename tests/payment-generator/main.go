package main

import (
	"context"
	"encoding/json"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

type PaymentEvent struct {
	OrderID    string `json:"order_id"`
	PaymentRef string `json:"payment_ref"`
	Status     string `json:"status"`
}

func generateEvent(orderIDs []string) PaymentEvent {
	orderID := uuid.NewString()
	if len(orderIDs) > 0 && rand.Intn(3) != 0 {
		orderID = orderIDs[rand.Intn(len(orderIDs))]
	}

	status := "succeeded"
	if rand.Intn(5) == 0 {
		status = "failed"
	}

	return PaymentEvent{
		OrderID:    orderID,
		PaymentRef: "pay_" + uuid.NewString(),
		Status:     status,
	}
}

func main() {
	addr := kafka.TCP("localhost:9092")

	writer := &kafka.Writer{
		Addr:  addr,
		Topic: "payments",
	}

	// ID существующих заказов можно передать аргументами, иначе генерируются
	// случайные (сервис ответит not found и отправит их в DLQ)
	orderIDs := os.Args[1:]

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	ticker := time.NewTicker(2 * time.Second)
	for {
		select {
		case <-ticker.C:
			event := generateEvent(orderIDs)
			data, _ := json.Marshal(event)
			writer.WriteMessages(context.Background(), kafka.Message{Value: data})
			log.Println("payment event generated", event.OrderID, event.Status)
		case <-ctx.Done():
			return
		}
	}
}

package entities

import (
	"bytes"
	"encoding/gob"
	"time"
)

type OrderStatus string

const (
	StatusDraft         OrderStatus = "draft"
	StatusPending       OrderStatus = "pending"
	StatusPaymentFailed OrderStatus = "payment_failed"
	StatusPaid          OrderStatus = "paid"
	StatusProcessing    OrderStatus = "processing"
	StatusShipped       OrderStatus = "shipped"
	StatusCompleted     OrderStatus = "completed"
	StatusCancelled     OrderStatus = "cancelled"
)

// transitions is the full legality matrix. Cancellation is legal from every
// non-terminal state; fulfillment is forward-only.
var transitions = map[OrderStatus][]OrderStatus{
	StatusDraft:         {StatusPending, StatusCancelled},
	StatusPending:       {StatusPaid, StatusPaymentFailed, StatusCancelled},
	StatusPaymentFailed: {StatusPending, StatusCancelled},
	StatusPaid:          {StatusProcessing, StatusCancelled},
	StatusProcessing:    {StatusShipped, StatusCancelled},
	StatusShipped:       {StatusCompleted, StatusCancelled},
	StatusCompleted:     {},
	StatusCancelled:     {},
}

func (s OrderStatus) CanTransitionTo(target OrderStatus) bool {
	for _, next := range transitions[s] {
		if next == target {
			return true
		}
	}
	return false
}

func (s OrderStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

func (s OrderStatus) Valid() bool {
	_, ok := transitions[s]
	return ok
}

func (s OrderStatus) String() string {
	return string(s)
}

// Order is the persisted aggregate. Snapshot and Breakdown are immutable once
// the order leaves draft; a draft's snapshot is replaced wholesale on each
// save, never merged.
type Order struct {
	ID         string
	UserID     string
	DesignRef  string
	Status     OrderStatus
	Snapshot   Cart
	Breakdown  PriceBreakdown
	TrackingID string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (o *Order) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(o); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (o *Order) Unmarshal(data []byte) error {
	return gob.NewDecoder(bytes.NewBuffer(data)).Decode(o)
}

func init() {
	gob.Register(Order{})
	gob.Register(Cart{})
	gob.Register(LineEntry{})
	gob.Register(PriceBreakdown{})
}

package entities_test

import (
	"testing"

	"github.com/kitforge/order-service/internal/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderStatus_CanTransitionTo(t *testing.T) {
	legal := []struct{ from, to entities.OrderStatus }{
		{entities.StatusDraft, entities.StatusPending},
		{entities.StatusPending, entities.StatusPaid},
		{entities.StatusPending, entities.StatusPaymentFailed},
		{entities.StatusPaymentFailed, entities.StatusPending},
		{entities.StatusPaid, entities.StatusProcessing},
		{entities.StatusProcessing, entities.StatusShipped},
		{entities.StatusShipped, entities.StatusCompleted},
	}
	for _, tr := range legal {
		assert.True(t, tr.from.CanTransitionTo(tr.to), "%s -> %s", tr.from, tr.to)
	}

	illegal := []struct{ from, to entities.OrderStatus }{
		{entities.StatusDraft, entities.StatusPaid},
		{entities.StatusPaid, entities.StatusPending},
		{entities.StatusPaid, entities.StatusShipped},
		{entities.StatusShipped, entities.StatusProcessing},
		{entities.StatusCompleted, entities.StatusCancelled},
		{entities.StatusCancelled, entities.StatusPending},
		{entities.StatusPending, entities.StatusPending},
	}
	for _, tr := range illegal {
		assert.False(t, tr.from.CanTransitionTo(tr.to), "%s -> %s", tr.from, tr.to)
	}
}

func TestOrderStatus_CancellableFromEveryNonTerminalState(t *testing.T) {
	all := []entities.OrderStatus{
		entities.StatusDraft,
		entities.StatusPending,
		entities.StatusPaymentFailed,
		entities.StatusPaid,
		entities.StatusProcessing,
		entities.StatusShipped,
		entities.StatusCompleted,
		entities.StatusCancelled,
	}
	for _, s := range all {
		assert.Equal(t, !s.IsTerminal(), s.CanTransitionTo(entities.StatusCancelled), "status %s", s)
	}
}

func TestOrderStatus_Valid(t *testing.T) {
	assert.True(t, entities.StatusDraft.Valid())
	assert.True(t, entities.StatusCancelled.Valid())
	assert.False(t, entities.OrderStatus("refunded").Valid())
	assert.False(t, entities.OrderStatus("").Valid())
}

func TestOrder_MarshalRoundTrip(t *testing.T) {
	order := entities.Order{
		ID:     "order-1",
		UserID: "user-1",
		Status: entities.StatusPaid,
		Snapshot: entities.Cart{
			IsTeamOrder: true,
			Lines: []entities.LineEntry{
				{ProductID: "JRS-1/M/m", ProductType: entities.ProductJersey, UnitPriceMinor: 10_000, Quantity: 1},
			},
		},
		Breakdown: entities.PriceBreakdown{BaseTotalMinor: 10_000, SubtotalMinor: 10_000, GrandTotalMinor: 10_000, ItemCount: 1},
	}

	data, err := order.Marshal()
	require.NoError(t, err)

	var got entities.Order
	require.NoError(t, got.Unmarshal(data))
	assert.Equal(t, order, got)

	var broken entities.Order
	assert.Error(t, broken.Unmarshal([]byte("garbage")))
}

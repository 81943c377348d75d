package pricing_test

import (
	"testing"

	"github.com/kitforge/order-service/internal/pricing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConfig(t *testing.T) {
	t.Run("parses rate tables", func(t *testing.T) {
		got, err := pricing.ParseConfig("50:0.15, 20:0.10,10:0.05", "100000:0,0:1500", 0.10, 0.08)
		require.NoError(t, err)

		assert.Equal(t, pricing.Config{
			Tiers: []pricing.Tier{
				{MinQty: 50, Rate: 0.15},
				{MinQty: 20, Rate: 0.10},
				{MinQty: 10, Rate: 0.05},
			},
			SubscriberRate: 0.10,
			Shipping: []pricing.ShippingTier{
				{MinSubtotalMinor: 100_000, CostMinor: 0},
				{MinSubtotalMinor: 0, CostMinor: 1_500},
			},
			TaxRate: 0.08,
		}, got)
	})

	t.Run("empty tables", func(t *testing.T) {
		got, err := pricing.ParseConfig("", "", 0, 0)
		require.NoError(t, err)
		assert.Empty(t, got.Tiers)
		assert.Empty(t, got.Shipping)
	})

	t.Run("malformed entry", func(t *testing.T) {
		_, err := pricing.ParseConfig("50-0.15", "", 0, 0)
		assert.Error(t, err)
	})

	t.Run("non-numeric rate", func(t *testing.T) {
		_, err := pricing.ParseConfig("50:abc", "", 0, 0)
		assert.Error(t, err)
	})
}

package pricing_test

import (
	"testing"

	"github.com/kitforge/order-service/internal/entities"
	"github.com/kitforge/order-service/internal/pricing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func jerseys(qty int, unitMinor int64) entities.Cart {
	return entities.Cart{Lines: []entities.LineEntry{
		{ProductID: "JRS-CLASSIC", ProductType: entities.ProductJersey, UnitPriceMinor: unitMinor, Quantity: qty},
	}}
}

func TestEngine_Price(t *testing.T) {
	engine := pricing.NewEngine(pricing.Default())

	testCases := []struct {
		name string
		cart entities.Cart
		want entities.PriceBreakdown
	}{
		{
			name: "empty cart prices to zero",
			cart: entities.Cart{},
			want: entities.PriceBreakdown{},
		},
		{
			name: "below first tier, no discount",
			cart: jerseys(9, 10_000),
			want: entities.PriceBreakdown{
				BaseTotalMinor:  90_000,
				SubtotalMinor:   90_000,
				ShippingMinor:   1_500,
				TaxMinor:        7_320,
				GrandTotalMinor: 98_820,
				ItemCount:       9,
			},
		},
		{
			name: "first tier at exactly 10 items",
			cart: jerseys(10, 10_000),
			want: entities.PriceBreakdown{
				BaseTotalMinor:    100_000,
				TierDiscountMinor: 5_000,
				TierDiscountRate:  0.05,
				SubtotalMinor:     95_000,
				ShippingMinor:     1_500,
				TaxMinor:          7_720,
				GrandTotalMinor:   104_220,
				ItemCount:         10,
			},
		},
		{
			name: "subscriber discount stacks additively with tier",
			cart: func() entities.Cart {
				c := jerseys(10, 10_000)
				c.IsSubscriber = true
				return c
			}(),
			want: entities.PriceBreakdown{
				BaseTotalMinor:            100_000,
				TierDiscountMinor:         5_000,
				TierDiscountRate:          0.05,
				SubscriptionDiscountMinor: 10_000,
				SubscriptionDiscountRate:  0.10,
				SubtotalMinor:             85_000,
				ShippingMinor:             1_500,
				TaxMinor:                  6_920,
				GrandTotalMinor:           93_420,
				ItemCount:                 10,
			},
		},
		{
			name: "second tier crosses free shipping threshold",
			cart: jerseys(20, 10_000),
			want: entities.PriceBreakdown{
				BaseTotalMinor:    200_000,
				TierDiscountMinor: 20_000,
				TierDiscountRate:  0.10,
				SubtotalMinor:     180_000,
				ShippingMinor:     0,
				TaxMinor:          14_400,
				GrandTotalMinor:   194_400,
				ItemCount:         20,
			},
		},
		{
			name: "largest tier wins, never stacked",
			cart: jerseys(50, 1_000),
			want: entities.PriceBreakdown{
				BaseTotalMinor:    50_000,
				TierDiscountMinor: 7_500,
				TierDiscountRate:  0.15,
				SubtotalMinor:     42_500,
				ShippingMinor:     1_500,
				TaxMinor:          3_520,
				GrandTotalMinor:   47_520,
				ItemCount:         50,
			},
		},
		{
			name: "quantity summed across lines for tier selection",
			cart: entities.Cart{Lines: []entities.LineEntry{
				{ProductID: "JRS-CLASSIC", ProductType: entities.ProductJersey, UnitPriceMinor: 10_000, Quantity: 6},
				{ProductID: "SHR-CLASSIC", ProductType: entities.ProductShorts, UnitPriceMinor: 5_000, Quantity: 4},
			}},
			want: entities.PriceBreakdown{
				BaseTotalMinor:    80_000,
				TierDiscountMinor: 4_000,
				TierDiscountRate:  0.05,
				SubtotalMinor:     76_000,
				ShippingMinor:     1_500,
				TaxMinor:          6_200,
				GrandTotalMinor:   83_500,
				ItemCount:         10,
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := engine.Price(tc.cart)
			assert.Equal(t, tc.want, got)

			// Derived fields stay exactly additive after rounding.
			assert.Equal(t, got.BaseTotalMinor-got.TierDiscountMinor-got.SubscriptionDiscountMinor, got.SubtotalMinor)
			assert.Equal(t, got.SubtotalMinor+got.ShippingMinor+got.TaxMinor, got.GrandTotalMinor)
		})
	}
}

func TestEngine_Price_DiscountsFromBase(t *testing.T) {
	// Both discounts are computed from the base total independently, so the
	// subscriber discount is identical with and without a tier discount.
	engine := pricing.NewEngine(pricing.Default())

	withTier := jerseys(10, 10_000)
	withTier.IsSubscriber = true
	noTier := jerseys(9, 10_000)
	noTier.IsSubscriber = true

	gotWithTier := engine.Price(withTier)
	gotNoTier := engine.Price(noTier)

	assert.Equal(t, int64(10_000), gotWithTier.SubscriptionDiscountMinor)
	assert.Equal(t, int64(9_000), gotNoTier.SubscriptionDiscountMinor)
	require.NotZero(t, gotWithTier.TierDiscountMinor)
	assert.Zero(t, gotNoTier.TierDiscountMinor)
}

func TestEngine_Price_ShippingFallsBackExpensive(t *testing.T) {
	// No shipping tier reaches down to a zero subtotal: the engine must charge
	// the most expensive tier rather than silently ship for free.
	engine := pricing.NewEngine(pricing.Config{
		Shipping: []pricing.ShippingTier{
			{MinSubtotalMinor: 5_000, CostMinor: 0},
			{MinSubtotalMinor: 2_000, CostMinor: 800},
		},
	})

	got := engine.Price(jerseys(1, 1_000))
	assert.Equal(t, int64(800), got.ShippingMinor)
}

func TestEngine_Price_Simplified(t *testing.T) {
	engine := pricing.NewEngine(pricing.Simplified())

	cart := jerseys(50, 10_000)
	cart.IsSubscriber = true

	got := engine.Price(cart)
	assert.Equal(t, entities.PriceBreakdown{
		BaseTotalMinor:  500_000,
		SubtotalMinor:   500_000,
		GrandTotalMinor: 500_000,
		ItemCount:       50,
	}, got)
}

func TestEngine_Price_MonotonicWithoutDiscounts(t *testing.T) {
	// With all rate tables zeroed, adding items never decreases the total.
	// (The full table breaks strict monotonicity at tier boundaries on
	// purpose: crossing into a tier can drop the grand total.)
	engine := pricing.NewEngine(pricing.Simplified())

	var prev int64
	for qty := 1; qty <= 60; qty++ {
		got := engine.Price(jerseys(qty, 3_999))
		require.GreaterOrEqual(t, got.GrandTotalMinor, prev, "quantity %d", qty)
		prev = got.GrandTotalMinor
	}
}

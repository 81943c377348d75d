package pricing

import (
	"math"
	"sort"

	"github.com/kitforge/order-service/internal/entities"
)

// Tier grants a volume discount once the cart's total quantity reaches MinQty.
type Tier struct {
	MinQty int
	Rate   float64
}

// ShippingTier sets the shipping cost once the subtotal reaches MinSubtotalMinor.
type ShippingTier struct {
	MinSubtotalMinor int64
	CostMinor        int64
}

// Config parameterizes a single engine. The "simplified" storefront variant is
// this same engine with all rates and tables zeroed, never a second code path.
type Config struct {
	Tiers          []Tier
	SubscriberRate float64
	Shipping       []ShippingTier
	TaxRate        float64
}

// Default mirrors the storefront's production rate tables.
func Default() Config {
	return Config{
		Tiers: []Tier{
			{MinQty: 50, Rate: 0.15},
			{MinQty: 20, Rate: 0.10},
			{MinQty: 10, Rate: 0.05},
		},
		SubscriberRate: 0.10,
		Shipping: []ShippingTier{
			{MinSubtotalMinor: 100_000, CostMinor: 0},
			{MinSubtotalMinor: 0, CostMinor: 1_500},
		},
		TaxRate: 0.08,
	}
}

// Simplified is the zero-rate configuration: no discounts, shipping or tax.
func Simplified() Config {
	return Config{}
}

// Engine computes the authoritative price breakdown for a cart. It is pure and
// stateless, safe for concurrent use across requests.
type Engine struct {
	tiers          []Tier
	subscriberRate float64
	shipping       []ShippingTier
	taxRate        float64
}

func NewEngine(cfg Config) *Engine {
	tiers := make([]Tier, len(cfg.Tiers))
	copy(tiers, cfg.Tiers)
	sort.Slice(tiers, func(i, j int) bool { return tiers[i].MinQty > tiers[j].MinQty })

	shipping := make([]ShippingTier, len(cfg.Shipping))
	copy(shipping, cfg.Shipping)
	sort.Slice(shipping, func(i, j int) bool {
		return shipping[i].MinSubtotalMinor > shipping[j].MinSubtotalMinor
	})

	return &Engine{
		tiers:          tiers,
		subscriberRate: cfg.SubscriberRate,
		shipping:       shipping,
		taxRate:        cfg.TaxRate,
	}
}

// Price returns the full breakdown for a normalized cart. An empty cart prices
// to an all-zero breakdown, never to a minimum shipping or tax charge.
func (e *Engine) Price(cart entities.Cart) entities.PriceBreakdown {
	if cart.IsEmpty() {
		return entities.PriceBreakdown{}
	}

	var base int64
	for _, line := range cart.Lines {
		base += line.TotalMinor()
	}
	totalQty := cart.TotalQuantity()

	tierRate := e.tierRate(totalQty)
	tierDiscount := roundHalfUp(float64(base) * tierRate)

	var subRate float64
	var subDiscount int64
	if cart.IsSubscriber {
		// Stacks additively with the tier discount: both are taken from the
		// base total, not compounded on top of each other.
		subRate = e.subscriberRate
		subDiscount = roundHalfUp(float64(base) * subRate)
	}

	subtotal := base - tierDiscount - subDiscount
	shipping := e.shippingCost(subtotal)
	tax := roundHalfUp(float64(subtotal+shipping) * e.taxRate)

	return entities.PriceBreakdown{
		BaseTotalMinor:            base,
		TierDiscountMinor:         tierDiscount,
		TierDiscountRate:          tierRate,
		SubscriptionDiscountMinor: subDiscount,
		SubscriptionDiscountRate:  subRate,
		SubtotalMinor:             subtotal,
		ShippingMinor:             shipping,
		TaxMinor:                  tax,
		GrandTotalMinor:           subtotal + shipping + tax,
		ItemCount:                 totalQty,
	}
}

// tierRate picks the largest threshold met; tiers never stack.
func (e *Engine) tierRate(totalQty int) float64 {
	for _, t := range e.tiers {
		if totalQty >= t.MinQty {
			return t.Rate
		}
	}
	return 0
}

// shippingCost picks the highest subtotal threshold met. When no threshold
// matches it falls back to the most expensive tier: failing closed never
// under-charges shipping.
func (e *Engine) shippingCost(subtotalMinor int64) int64 {
	if len(e.shipping) == 0 {
		return 0
	}
	for _, t := range e.shipping {
		if subtotalMinor >= t.MinSubtotalMinor {
			return t.CostMinor
		}
	}
	worst := e.shipping[0].CostMinor
	for _, t := range e.shipping[1:] {
		if t.CostMinor > worst {
			worst = t.CostMinor
		}
	}
	return worst
}

// roundHalfUp rounds to the nearest minor unit, half away from zero. Applied
// exactly once per derived field so the additive invariants stay exact.
func roundHalfUp(v float64) int64 {
	return int64(math.Floor(v + 0.5))
}

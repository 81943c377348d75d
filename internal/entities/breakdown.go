package entities

// PriceBreakdown is the authoritative pricing output. Invariants:
//
//	SubtotalMinor   = BaseTotalMinor - TierDiscountMinor - SubscriptionDiscountMinor
//	GrandTotalMinor = SubtotalMinor + ShippingMinor + TaxMinor
//
// Every derived field is rounded half-up exactly once, so the sums above hold
// to the minor unit.
type PriceBreakdown struct {
	BaseTotalMinor            int64
	TierDiscountMinor         int64
	TierDiscountRate          float64
	SubscriptionDiscountMinor int64
	SubscriptionDiscountRate  float64
	SubtotalMinor             int64
	ShippingMinor             int64
	TaxMinor                  int64
	GrandTotalMinor           int64
	ItemCount                 int
}

// ReconcileResult is the outcome of comparing a client-declared total against
// the server-computed breakdown. FinalAmountMinor always originates from the
// server breakdown; the client figure is advisory only.
type ReconcileResult struct {
	Accepted         bool
	FinalAmountMinor int64
	Warning          string
}

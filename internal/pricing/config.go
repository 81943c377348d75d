package pricing

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseConfig builds an engine configuration from "threshold:value" pair
// lists, e.g. tiers "50:0.15,20:0.10,10:0.05" and shipping "100000:0,0:1500".
func ParseConfig(tierTable, shippingTable string, subscriberRate, taxRate float64) (Config, error) {
	cfg := Config{
		SubscriberRate: subscriberRate,
		TaxRate:        taxRate,
	}

	tierPairs, err := splitPairs(tierTable)
	if err != nil {
		return Config{}, err
	}
	for _, pair := range tierPairs {
		minQty, err := strconv.Atoi(pair[0])
		if err != nil {
			return Config{}, fmt.Errorf("invalid tier threshold %q: %w", pair[0], err)
		}
		rate, err := strconv.ParseFloat(pair[1], 64)
		if err != nil {
			return Config{}, fmt.Errorf("invalid tier rate %q: %w", pair[1], err)
		}
		cfg.Tiers = append(cfg.Tiers, Tier{MinQty: minQty, Rate: rate})
	}

	shippingPairs, err := splitPairs(shippingTable)
	if err != nil {
		return Config{}, err
	}
	for _, pair := range shippingPairs {
		minSubtotal, err := strconv.ParseInt(pair[0], 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("invalid shipping threshold %q: %w", pair[0], err)
		}
		cost, err := strconv.ParseInt(pair[1], 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("invalid shipping cost %q: %w", pair[1], err)
		}
		cfg.Shipping = append(cfg.Shipping, ShippingTier{MinSubtotalMinor: minSubtotal, CostMinor: cost})
	}

	return cfg, nil
}

func splitPairs(table string) ([][2]string, error) {
	var pairs [][2]string
	for _, raw := range strings.Split(table, ",") {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		threshold, value, found := strings.Cut(raw, ":")
		if !found {
			return nil, fmt.Errorf("malformed table entry %q", raw)
		}
		pairs = append(pairs, [2]string{strings.TrimSpace(threshold), strings.TrimSpace(value)})
	}
	return pairs, nil
}

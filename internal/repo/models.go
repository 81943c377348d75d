package repo

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/kitforge/order-service/internal/entities"
)

type Order struct {
	ID               string         `db:"id"`
	UserID           string         `db:"user_id"`
	DesignRef        sql.NullString `db:"design_ref"`
	Status           string         `db:"status"`
	TotalAmountMinor int64          `db:"total_amount_minor"`
	Snapshot         []byte         `db:"snapshot"`
	TrackingID       sql.NullString `db:"tracking_id"`
	CreatedAt        time.Time      `db:"created_at"`
	UpdatedAt        time.Time      `db:"updated_at"`
}

type Product struct {
	SKU            string `db:"sku"`
	Name           string `db:"name"`
	ProductType    string `db:"product_type"`
	UnitPriceMinor int64  `db:"unit_price_minor"`
	Active         bool   `db:"active"`
}

// snapshot is the opaque structured blob stored in the jsonb column. The typed
// status and total_amount_minor columns exist alongside it for reporting.
type snapshot struct {
	Cart      cartJSON      `json:"cart"`
	Breakdown breakdownJSON `json:"breakdown"`
}

type cartJSON struct {
	Lines        []lineJSON `json:"lines"`
	IsTeamOrder  bool       `json:"is_team_order"`
	IsSubscriber bool       `json:"is_subscriber"`
}

type lineJSON struct {
	ProductID      string `json:"product_id"`
	ProductType    string `json:"product_type"`
	UnitPriceMinor int64  `json:"unit_price_minor"`
	Quantity       int    `json:"quantity"`
}

type breakdownJSON struct {
	BaseTotalMinor            int64   `json:"base_total_minor"`
	TierDiscountMinor         int64   `json:"tier_discount_minor"`
	TierDiscountRate          float64 `json:"tier_discount_rate"`
	SubscriptionDiscountMinor int64   `json:"subscription_discount_minor"`
	SubscriptionDiscountRate  float64 `json:"subscription_discount_rate"`
	SubtotalMinor             int64   `json:"subtotal_minor"`
	ShippingMinor             int64   `json:"shipping_minor"`
	TaxMinor                  int64   `json:"tax_minor"`
	GrandTotalMinor           int64   `json:"grand_total_minor"`
	ItemCount                 int     `json:"item_count"`
}

func marshalSnapshot(cart entities.Cart, breakdown entities.PriceBreakdown) ([]byte, error) {
	lines := make([]lineJSON, 0, len(cart.Lines))
	for _, l := range cart.Lines {
		lines = append(lines, lineJSON{
			ProductID:      l.ProductID,
			ProductType:    string(l.ProductType),
			UnitPriceMinor: l.UnitPriceMinor,
			Quantity:       l.Quantity,
		})
	}

	return json.Marshal(snapshot{
		Cart: cartJSON{
			Lines:        lines,
			IsTeamOrder:  cart.IsTeamOrder,
			IsSubscriber: cart.IsSubscriber,
		},
		Breakdown: breakdownJSON(breakdown),
	})
}

func unmarshalSnapshot(data []byte) (entities.Cart, entities.PriceBreakdown, error) {
	var s snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return entities.Cart{}, entities.PriceBreakdown{}, fmt.Errorf("failed to unmarshal snapshot: %w", err)
	}

	cart := entities.Cart{
		IsTeamOrder:  s.Cart.IsTeamOrder,
		IsSubscriber: s.Cart.IsSubscriber,
	}
	if len(s.Cart.Lines) > 0 {
		cart.Lines = make([]entities.LineEntry, 0, len(s.Cart.Lines))
		for _, l := range s.Cart.Lines {
			cart.Lines = append(cart.Lines, entities.LineEntry{
				ProductID:      l.ProductID,
				ProductType:    entities.ProductType(l.ProductType),
				UnitPriceMinor: l.UnitPriceMinor,
				Quantity:       l.Quantity,
			})
		}
	}

	return cart, entities.PriceBreakdown(s.Breakdown), nil
}

func OrderToEntity(o Order) (entities.Order, error) {
	cart, breakdown, err := unmarshalSnapshot(o.Snapshot)
	if err != nil {
		return entities.Order{}, err
	}

	return entities.Order{
		ID:         o.ID,
		UserID:     o.UserID,
		DesignRef:  nullStringToString(o.DesignRef),
		Status:     entities.OrderStatus(o.Status),
		Snapshot:   cart,
		Breakdown:  breakdown,
		TrackingID: nullStringToString(o.TrackingID),
		CreatedAt:  o.CreatedAt,
		UpdatedAt:  o.UpdatedAt,
	}, nil
}

func ProductToEntity(p Product) entities.Product {
	return entities.Product{
		SKU:            p.SKU,
		Name:           p.Name,
		ProductType:    entities.ProductType(p.ProductType),
		UnitPriceMinor: p.UnitPriceMinor,
		Active:         p.Active,
	}
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

func nullStringToString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}

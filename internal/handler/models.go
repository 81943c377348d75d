package handler

import (
	"time"

	"github.com/kitforge/order-service/internal/cart"
	"github.com/kitforge/order-service/internal/entities"
)

// Item одна позиция индивидуального заказа
type Item struct {
	SKU      string `json:"sku" validate:"required"`
	Size     string `json:"size,omitempty"`
	Gender   string `json:"gender,omitempty"`
	Quantity int    `json:"quantity" validate:"required,gte=1"`
}

// AddOn дополнение к заказу (печать имени, нашивки и т.п.)
type AddOn struct {
	SKU      string `json:"sku" validate:"required"`
	Quantity int    `json:"quantity" validate:"gte=0"`
}

// RosterEntry участник командного заказа
type RosterEntry struct {
	Name        string   `json:"name" validate:"required"`
	Number      string   `json:"number,omitempty"`
	Size        string   `json:"size,omitempty"`
	Gender      string   `json:"gender,omitempty"`
	PackageSKUs []string `json:"package_skus" validate:"required,min=1"`
}

// CheckoutRequest запрос на оформление заказа
type CheckoutRequest struct {
	UserID           string        `json:"user_id" validate:"required"`
	DesignRef        string        `json:"design_ref,omitempty"`
	Items            []Item        `json:"items,omitempty" validate:"dive"`
	AddOns           []AddOn       `json:"add_ons,omitempty" validate:"dive"`
	Roster           []RosterEntry `json:"roster,omitempty" validate:"dive"`
	ClientTotalMinor int64         `json:"client_total_minor" validate:"gte=0"`
}

// DraftRequest запрос на сохранение черновика
type DraftRequest struct {
	UserID    string        `json:"user_id" validate:"required"`
	DesignRef string        `json:"design_ref,omitempty"`
	Items     []Item        `json:"items,omitempty" validate:"dive"`
	AddOns    []AddOn       `json:"add_ons,omitempty" validate:"dive"`
	Roster    []RosterEntry `json:"roster,omitempty" validate:"dive"`
}

// ConvertRequest запрос на конвертацию черновика в заказ
type ConvertRequest struct {
	ClientTotalMinor int64 `json:"client_total_minor" validate:"gte=0"`
}

// AdvanceRequest перевод заказа на следующий этап фулфилмента
type AdvanceRequest struct {
	Status     string `json:"status" validate:"required,oneof=processing shipped completed"`
	TrackingID string `json:"tracking_id,omitempty"`
}

// Line строка нормализованной корзины
type Line struct {
	ProductID      string `json:"product_id"`
	ProductType    string `json:"product_type"`
	UnitPriceMinor int64  `json:"unit_price_minor"`
	Quantity       int    `json:"quantity"`
}

// Breakdown расчет стоимости заказа
type Breakdown struct {
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

// Order представляет заказ
type Order struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	DesignRef    string    `json:"design_ref,omitempty"`
	Status       string    `json:"status"`
	IsTeamOrder  bool      `json:"is_team_order"`
	IsSubscriber bool      `json:"is_subscriber"`
	Lines        []Line    `json:"lines"`
	Breakdown    Breakdown `json:"breakdown"`
	TrackingID   string    `json:"tracking_id,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func CheckoutRequestToInput(req CheckoutRequest) cart.Input {
	return cartInput(req.Items, req.AddOns, req.Roster)
}

func DraftRequestToInput(req DraftRequest) cart.Input {
	return cartInput(req.Items, req.AddOns, req.Roster)
}

func cartInput(items []Item, addOns []AddOn, roster []RosterEntry) cart.Input {
	in := cart.Input{}
	for _, item := range items {
		in.Items = append(in.Items, cart.ItemInput{
			SKU:      item.SKU,
			Size:     item.Size,
			Gender:   item.Gender,
			Quantity: item.Quantity,
		})
	}
	for _, addOn := range addOns {
		in.AddOns = append(in.AddOns, cart.AddOnInput{
			SKU:      addOn.SKU,
			Quantity: addOn.Quantity,
		})
	}
	for _, member := range roster {
		in.Roster = append(in.Roster, cart.RosterMember{
			Name:        member.Name,
			Number:      member.Number,
			Size:        member.Size,
			Gender:      member.Gender,
			PackageSKUs: member.PackageSKUs,
		})
	}
	return in
}

func BreakdownEntityToJSON(b entities.PriceBreakdown) Breakdown {
	return Breakdown(b)
}

func OrderEntityToJSON(o entities.Order) Order {
	lines := make([]Line, 0, len(o.Snapshot.Lines))
	for _, l := range o.Snapshot.Lines {
		lines = append(lines, Line{
			ProductID:      l.ProductID,
			ProductType:    string(l.ProductType),
			UnitPriceMinor: l.UnitPriceMinor,
			Quantity:       l.Quantity,
		})
	}

	return Order{
		ID:           o.ID,
		UserID:       o.UserID,
		DesignRef:    o.DesignRef,
		Status:       o.Status.String(),
		IsTeamOrder:  o.Snapshot.IsTeamOrder,
		IsSubscriber: o.Snapshot.IsSubscriber,
		Lines:        lines,
		Breakdown:    BreakdownEntityToJSON(o.Breakdown),
		TrackingID:   o.TrackingID,
		CreatedAt:    o.CreatedAt,
		UpdatedAt:    o.UpdatedAt,
	}
}

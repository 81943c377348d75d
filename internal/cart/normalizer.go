package cart

import (
	"context"
	"fmt"

	"github.com/kitforge/order-service/internal/entities"
)

// ProductCatalog resolves SKUs to priced catalog entries.
type ProductCatalog interface {
	GetProduct(ctx context.Context, sku string) (entities.Product, error)
}

// ItemInput is one requested product in an individual order. Size and gender
// distinguish otherwise identical SKUs into separate line entries.
type ItemInput struct {
	SKU      string
	Size     string
	Gender   string
	Quantity int
}

// AddOnInput is a requested add-on (name printing, badges, etc).
type AddOnInput struct {
	SKU      string
	Quantity int
}

// RosterMember is one team member with their selected package items. Each
// member contributes one quantity-1 line per package SKU, so the roster size
// is exactly the sum of line quantities.
type RosterMember struct {
	Name        string
	Number      string
	Size        string
	Gender      string
	PackageSKUs []string
}

type Input struct {
	Items  []ItemInput
	AddOns []AddOnInput
	Roster []RosterMember
}

// Normalizer converts heterogeneous checkout input into a uniform list of
// priced line entries. An unknown or inactive SKU aborts normalization;
// defaulting a price silently is a revenue leak.
type Normalizer struct {
	catalog ProductCatalog
}

func NewNormalizer(catalog ProductCatalog) *Normalizer {
	return &Normalizer{catalog: catalog}
}

func (n *Normalizer) Normalize(ctx context.Context, in Input) (entities.Cart, error) {
	cart := entities.Cart{IsTeamOrder: len(in.Roster) > 0}

	if cart.IsTeamOrder {
		lines, err := n.rosterLines(ctx, in.Roster)
		if err != nil {
			return entities.Cart{}, err
		}
		cart.Lines = lines
	} else {
		lines, err := n.itemLines(ctx, in.Items)
		if err != nil {
			return entities.Cart{}, err
		}
		cart.Lines = lines
	}

	addOns, err := n.addOnLines(ctx, in.AddOns)
	if err != nil {
		return entities.Cart{}, err
	}
	cart.Lines = append(cart.Lines, addOns...)

	return cart, nil
}

// itemLines merges requests into one entry per distinct (product, size,
// gender) tuple, summing quantities.
func (n *Normalizer) itemLines(ctx context.Context, items []ItemInput) ([]entities.LineEntry, error) {
	var lines []entities.LineEntry
	index := make(map[string]int)

	for _, item := range items {
		if item.Quantity < 1 {
			return nil, &entities.InvalidQuantityError{SKU: item.SKU, Quantity: item.Quantity}
		}
		product, err := n.lookup(ctx, item.SKU)
		if err != nil {
			return nil, err
		}

		id := lineID(item.SKU, item.Size, item.Gender)
		if i, ok := index[id]; ok {
			lines[i].Quantity += item.Quantity
			continue
		}
		index[id] = len(lines)
		lines = append(lines, entities.LineEntry{
			ProductID:      id,
			ProductType:    product.ProductType,
			UnitPriceMinor: product.UnitPriceMinor,
			Quantity:       item.Quantity,
		})
	}
	return lines, nil
}

// rosterLines prices every member's package items individually at quantity 1.
// No per-member averages are derived; each line keeps its exact catalog price.
func (n *Normalizer) rosterLines(ctx context.Context, roster []RosterMember) ([]entities.LineEntry, error) {
	var lines []entities.LineEntry
	for _, member := range roster {
		for _, sku := range member.PackageSKUs {
			product, err := n.lookup(ctx, sku)
			if err != nil {
				return nil, err
			}
			lines = append(lines, entities.LineEntry{
				ProductID:      lineID(sku, member.Size, member.Gender),
				ProductType:    product.ProductType,
				UnitPriceMinor: product.UnitPriceMinor,
				Quantity:       1,
			})
		}
	}
	return lines, nil
}

// addOnLines appends requested add-ons. A zero-quantity add-on is dropped, not
// stored as a zero line.
func (n *Normalizer) addOnLines(ctx context.Context, addOns []AddOnInput) ([]entities.LineEntry, error) {
	var lines []entities.LineEntry
	for _, addOn := range addOns {
		if addOn.Quantity < 0 {
			return nil, &entities.InvalidQuantityError{SKU: addOn.SKU, Quantity: addOn.Quantity}
		}
		if addOn.Quantity == 0 {
			continue
		}
		product, err := n.lookup(ctx, addOn.SKU)
		if err != nil {
			return nil, err
		}
		lines = append(lines, entities.LineEntry{
			ProductID:      addOn.SKU,
			ProductType:    entities.ProductAddOn,
			UnitPriceMinor: product.UnitPriceMinor,
			Quantity:       addOn.Quantity,
		})
	}
	return lines, nil
}

func (n *Normalizer) lookup(ctx context.Context, sku string) (entities.Product, error) {
	product, err := n.catalog.GetProduct(ctx, sku)
	if err != nil {
		return entities.Product{}, err
	}
	if !product.Active {
		return entities.Product{}, &entities.UnknownProductError{SKU: sku}
	}
	return product, nil
}

func lineID(sku, size, gender string) string {
	if size == "" && gender == "" {
		return sku
	}
	return fmt.Sprintf("%s/%s/%s", sku, size, gender)
}

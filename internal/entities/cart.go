package entities

type ProductType string

const (
	ProductJersey  ProductType = "jersey"
	ProductShorts  ProductType = "shorts"
	ProductSocks   ProductType = "socks"
	ProductTrouser ProductType = "trouser"
	ProductAddOn   ProductType = "addon"
)

// LineEntry is one priced (product, quantity) unit inside a cart.
// Money is always integer minor units.
type LineEntry struct {
	ProductID      string
	ProductType    ProductType
	UnitPriceMinor int64
	Quantity       int
}

func (l LineEntry) TotalMinor() int64 {
	return l.UnitPriceMinor * int64(l.Quantity)
}

// Cart is the normalized checkout payload. Line order matters for display
// only, never for pricing. IsSubscriber is re-evaluated on every price
// calculation, not at cart-creation time.
type Cart struct {
	Lines        []LineEntry
	IsTeamOrder  bool
	IsSubscriber bool
}

// TotalQuantity is the effective quantity for volume-discount purposes.
// Always derived from the lines so it cannot drift from them.
func (c Cart) TotalQuantity() int {
	var total int
	for _, l := range c.Lines {
		total += l.Quantity
	}
	return total
}

func (c Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

package entities

// Product is a priced catalog entry. Inactive products are treated as unknown
// during normalization.
type Product struct {
	SKU            string
	Name           string
	ProductType    ProductType
	UnitPriceMinor int64
	Active         bool
}

package cart_test

import (
	"context"
	"testing"

	"github.com/kitforge/order-service/internal/cart"
	mocks "github.com/kitforge/order-service/internal/cart/mocks"
	"github.com/kitforge/order-service/internal/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func catalogWith(products ...entities.Product) func(catalog *mocks.MockProductCatalog) {
	return func(catalog *mocks.MockProductCatalog) {
		for _, p := range products {
			catalog.EXPECT().GetProduct(mock.Anything, p.SKU).Return(p, nil).Maybe()
		}
	}
}

func TestNormalizer_Normalize(t *testing.T) {
	type MockBehavior func(catalog *mocks.MockProductCatalog)

	jersey := entities.Product{SKU: "JRS-1", Name: "Classic Jersey", ProductType: entities.ProductJersey, UnitPriceMinor: 10_000, Active: true}
	shorts := entities.Product{SKU: "SHR-1", Name: "Classic Shorts", ProductType: entities.ProductShorts, UnitPriceMinor: 5_000, Active: true}
	badge := entities.Product{SKU: "ADD-BADGE", Name: "Club Badge", ProductType: entities.ProductAddOn, UnitPriceMinor: 700, Active: true}
	retired := entities.Product{SKU: "JRS-OLD", Name: "Retired Jersey", ProductType: entities.ProductJersey, UnitPriceMinor: 8_000, Active: false}

	testCases := []struct {
		name         string
		input        cart.Input
		mockBehavior MockBehavior
		want         entities.Cart
		wantErr      error
	}{
		{
			name: "merges identical (sku, size, gender) tuples",
			input: cart.Input{Items: []cart.ItemInput{
				{SKU: "JRS-1", Size: "M", Gender: "m", Quantity: 2},
				{SKU: "JRS-1", Size: "L", Gender: "m", Quantity: 1},
				{SKU: "JRS-1", Size: "M", Gender: "m", Quantity: 3},
			}},
			mockBehavior: catalogWith(jersey),
			want: entities.Cart{Lines: []entities.LineEntry{
				{ProductID: "JRS-1/M/m", ProductType: entities.ProductJersey, UnitPriceMinor: 10_000, Quantity: 5},
				{ProductID: "JRS-1/L/m", ProductType: entities.ProductJersey, UnitPriceMinor: 10_000, Quantity: 1},
			}},
		},
		{
			name: "roster emits quantity-1 lines per package item",
			input: cart.Input{Roster: []cart.RosterMember{
				{Name: "Iva", Number: "7", Size: "S", Gender: "f", PackageSKUs: []string{"JRS-1", "SHR-1"}},
				{Name: "Petr", Number: "10", Size: "L", Gender: "m", PackageSKUs: []string{"JRS-1"}},
			}},
			mockBehavior: catalogWith(jersey, shorts),
			want: entities.Cart{
				IsTeamOrder: true,
				Lines: []entities.LineEntry{
					{ProductID: "JRS-1/S/f", ProductType: entities.ProductJersey, UnitPriceMinor: 10_000, Quantity: 1},
					{ProductID: "SHR-1/S/f", ProductType: entities.ProductShorts, UnitPriceMinor: 5_000, Quantity: 1},
					{ProductID: "JRS-1/L/m", ProductType: entities.ProductJersey, UnitPriceMinor: 10_000, Quantity: 1},
				},
			},
		},
		{
			name: "add-ons appended, zero quantity dropped",
			input: cart.Input{
				Items: []cart.ItemInput{{SKU: "JRS-1", Quantity: 1}},
				AddOns: []cart.AddOnInput{
					{SKU: "ADD-BADGE", Quantity: 2},
					{SKU: "ADD-PRINT", Quantity: 0},
				},
			},
			mockBehavior: catalogWith(jersey, badge),
			want: entities.Cart{Lines: []entities.LineEntry{
				{ProductID: "JRS-1", ProductType: entities.ProductJersey, UnitPriceMinor: 10_000, Quantity: 1},
				{ProductID: "ADD-BADGE", ProductType: entities.ProductAddOn, UnitPriceMinor: 700, Quantity: 2},
			}},
		},
		{
			name:  "unknown sku aborts normalization",
			input: cart.Input{Items: []cart.ItemInput{{SKU: "NOPE", Quantity: 1}}},
			mockBehavior: func(catalog *mocks.MockProductCatalog) {
				catalog.EXPECT().
					GetProduct(mock.Anything, "NOPE").
					Return(entities.Product{}, &entities.UnknownProductError{SKU: "NOPE"})
			},
			wantErr: entities.ErrUnknownProduct,
		},
		{
			name:         "inactive product treated as unknown",
			input:        cart.Input{Items: []cart.ItemInput{{SKU: "JRS-OLD", Quantity: 1}}},
			mockBehavior: catalogWith(retired),
			wantErr:      entities.ErrUnknownProduct,
		},
		{
			name:         "non-positive item quantity rejected",
			input:        cart.Input{Items: []cart.ItemInput{{SKU: "JRS-1", Quantity: 0}}},
			mockBehavior: func(catalog *mocks.MockProductCatalog) {},
			wantErr:      entities.ErrInvalidQuantity,
		},
		{
			name: "negative add-on quantity rejected",
			input: cart.Input{
				Items:  []cart.ItemInput{{SKU: "JRS-1", Quantity: 1}},
				AddOns: []cart.AddOnInput{{SKU: "ADD-BADGE", Quantity: -1}},
			},
			mockBehavior: catalogWith(jersey),
			wantErr:      entities.ErrInvalidQuantity,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			catalog := mocks.NewMockProductCatalog(t)
			tc.mockBehavior(catalog)

			normalizer := cart.NewNormalizer(catalog)

			got, err := normalizer.Normalize(context.Background(), tc.input)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestNormalizer_Normalize_RosterQuantityIsLineSum(t *testing.T) {
	jersey := entities.Product{SKU: "JRS-1", ProductType: entities.ProductJersey, UnitPriceMinor: 10_000, Active: true}

	catalog := mocks.NewMockProductCatalog(t)
	catalog.EXPECT().GetProduct(mock.Anything, "JRS-1").Return(jersey, nil)

	roster := make([]cart.RosterMember, 12)
	for i := range roster {
		roster[i] = cart.RosterMember{Size: "M", Gender: "m", PackageSKUs: []string{"JRS-1"}}
	}

	got, err := cart.NewNormalizer(catalog).Normalize(context.Background(), cart.Input{Roster: roster})
	require.NoError(t, err)
	assert.True(t, got.IsTeamOrder)
	assert.Equal(t, 12, got.TotalQuantity())
}

package pricing_test

import (
	"testing"

	"github.com/kitforge/order-service/internal/entities"
	"github.com/kitforge/order-service/internal/pricing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReconciler_Reconcile(t *testing.T) {
	breakdown := func(grand int64) entities.PriceBreakdown {
		return entities.PriceBreakdown{GrandTotalMinor: grand}
	}

	testCases := []struct {
		name         string
		client       int64
		server       entities.PriceBreakdown
		wantMismatch bool
		wantFinal    int64
		wantWarning  bool
	}{
		{
			name:      "exact match",
			client:    10_000,
			server:    breakdown(10_000),
			wantFinal: 10_000,
		},
		{
			name:        "drift inside tolerance charges server amount",
			client:      10_090,
			server:      breakdown(10_000),
			wantFinal:   10_000,
			wantWarning: true,
		},
		{
			name:        "drift at tolerance boundary accepted",
			client:      10_100,
			server:      breakdown(10_000),
			wantFinal:   10_000,
			wantWarning: true,
		},
		{
			name:         "drift above tolerance rejected",
			client:       10_500,
			server:       breakdown(10_000),
			wantMismatch: true,
		},
		{
			name:      "both zero",
			client:    0,
			server:    breakdown(0),
			wantFinal: 0,
		},
		{
			name:         "server zero but client declares a charge",
			client:       500,
			server:       breakdown(0),
			wantMismatch: true,
		},
		{
			name:        "client under-declares inside tolerance",
			client:      9_920,
			server:      breakdown(10_000),
			wantFinal:   10_000,
			wantWarning: true,
		},
	}

	reconciler := pricing.NewReconciler(0.01)

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := reconciler.Reconcile(tc.client, tc.server)

			if tc.wantMismatch {
				require.Error(t, err)
				assert.ErrorIs(t, err, entities.ErrAmountMismatch)
				var mismatch *entities.AmountMismatchError
				require.ErrorAs(t, err, &mismatch)
				assert.Equal(t, tc.client, mismatch.ClientMinor)
				assert.Equal(t, tc.server.GrandTotalMinor, mismatch.ServerMinor)
				return
			}

			require.NoError(t, err)
			assert.True(t, got.Accepted)
			assert.Equal(t, tc.wantFinal, got.FinalAmountMinor)
			if tc.wantWarning {
				assert.NotEmpty(t, got.Warning)
			} else {
				assert.Empty(t, got.Warning)
			}
		})
	}
}

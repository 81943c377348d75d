package pricing

import (
	"fmt"
	"math"

	"github.com/kitforge/order-service/internal/entities"
)

// Reconciler compares a client-declared total against the server-computed
// breakdown. Whatever the outcome, the amount actually charged always
// originates from the engine's output, never from client input.
type Reconciler struct {
	tolerance float64
}

// NewReconciler accepts the relative tolerance (e.g. 0.01 for 1%) that absorbs
// benign rounding drift from client-side estimates.
func NewReconciler(tolerance float64) *Reconciler {
	return &Reconciler{tolerance: tolerance}
}

func (r *Reconciler) Reconcile(clientDeclaredMinor int64, server entities.PriceBreakdown) (entities.ReconcileResult, error) {
	diff := math.Abs(float64(clientDeclaredMinor - server.GrandTotalMinor))

	var percentDiff float64
	switch {
	case server.GrandTotalMinor != 0:
		percentDiff = diff / float64(server.GrandTotalMinor)
	case clientDeclaredMinor == 0:
		percentDiff = 0
	default:
		percentDiff = 1
	}

	if percentDiff > r.tolerance {
		return entities.ReconcileResult{}, &entities.AmountMismatchError{
			ClientMinor: clientDeclaredMinor,
			ServerMinor: server.GrandTotalMinor,
		}
	}

	res := entities.ReconcileResult{
		Accepted:         true,
		FinalAmountMinor: server.GrandTotalMinor,
	}
	if diff != 0 {
		res.Warning = fmt.Sprintf("declared amount %d adjusted to computed amount %d", clientDeclaredMinor, server.GrandTotalMinor)
	}
	return res, nil
}

package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/kitforge/order-service/internal/entities"
	"github.com/kitforge/order-service/internal/service"
	mocks "github.com/kitforge/order-service/internal/service/mocks"
	txMocks "github.com/kitforge/order-service/pkg/trm/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type deps struct {
	repo       *mocks.MockOrderRepo
	subs       *mocks.MockSubscriptionChecker
	pricer     *mocks.MockPricer
	reconciler *mocks.MockReconciler
	verifier   *mocks.MockPaymentVerifier
	cache      *mocks.MockCache
	tx         *txMocks.MockManager
}

func newDeps(t *testing.T) deps {
	return deps{
		repo:       mocks.NewMockOrderRepo(t),
		subs:       mocks.NewMockSubscriptionChecker(t),
		pricer:     mocks.NewMockPricer(t),
		reconciler: mocks.NewMockReconciler(t),
		verifier:   mocks.NewMockPaymentVerifier(t),
		cache:      mocks.NewMockCache(t),
		tx:         txMocks.NewMockManager(t),
	}
}

func newService(d deps, notifiers ...service.Notifier) *service.OrderService {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return service.NewOrderService(logger, d.tx, d.repo, d.subs, d.pricer, d.reconciler, d.verifier, d.cache, notifiers...)
}

func TestOrderService_SaveDraft(t *testing.T) {
	type MockBehavior func(d deps)

	cart := entities.Cart{Lines: []entities.LineEntry{
		{ProductID: "JRS-1", ProductType: entities.ProductJersey, UnitPriceMinor: 10_000, Quantity: 2},
	}}
	breakdown := entities.PriceBreakdown{BaseTotalMinor: 20_000, SubtotalMinor: 20_000, GrandTotalMinor: 20_000, ItemCount: 2}
	dbError := errors.New("db error")

	testCases := []struct {
		name         string
		orderID      string
		mockBehavior MockBehavior
		wantErr      error
	}{
		{
			name:    "new draft created with generated id",
			orderID: "",
			mockBehavior: func(d deps) {
				d.subs.EXPECT().IsSubscriber(mock.Anything, "user-1").Return(false, nil)
				d.pricer.EXPECT().Price(mock.Anything).Return(breakdown)
				d.repo.EXPECT().
					CreateOrder(mock.Anything, mock.MatchedBy(func(o entities.Order) bool {
						return o.ID != "" && o.Status == entities.StatusDraft && o.Breakdown == breakdown
					})).
					Return(nil)
			},
		},
		{
			name:    "existing draft snapshot replaced wholesale",
			orderID: "order-1",
			mockBehavior: func(d deps) {
				d.subs.EXPECT().IsSubscriber(mock.Anything, "user-1").Return(false, nil)
				d.pricer.EXPECT().Price(mock.Anything).Return(breakdown)
				d.repo.EXPECT().ReplaceDraftSnapshot(mock.Anything, "order-1", mock.Anything, breakdown).Return(nil)
				d.cache.EXPECT().Delete("order-1").Return()
				d.repo.EXPECT().
					GetOrderByID(mock.Anything, "order-1").
					Return(entities.Order{ID: "order-1", Status: entities.StatusDraft, Snapshot: cart, Breakdown: breakdown}, nil)
			},
		},
		{
			name:    "subscriber flag re-evaluated, client flag ignored",
			orderID: "",
			mockBehavior: func(d deps) {
				d.subs.EXPECT().IsSubscriber(mock.Anything, "user-1").Return(true, nil)
				d.pricer.EXPECT().
					Price(mock.MatchedBy(func(c entities.Cart) bool { return c.IsSubscriber })).
					Return(breakdown)
				d.repo.EXPECT().CreateOrder(mock.Anything, mock.Anything).Return(nil)
			},
		},
		{
			name:    "save on a converted order fails",
			orderID: "order-1",
			mockBehavior: func(d deps) {
				d.subs.EXPECT().IsSubscriber(mock.Anything, "user-1").Return(false, nil)
				d.pricer.EXPECT().Price(mock.Anything).Return(breakdown)
				d.repo.EXPECT().
					ReplaceDraftSnapshot(mock.Anything, "order-1", mock.Anything, breakdown).
					Return(entities.ErrStatusConflict)
				d.repo.EXPECT().
					GetOrderByID(mock.Anything, "order-1").
					Return(entities.Order{ID: "order-1", Status: entities.StatusPending}, nil)
			},
			wantErr: entities.ErrIllegalTransition,
		},
		{
			name:    "subscription check failure aborts",
			orderID: "",
			mockBehavior: func(d deps) {
				d.subs.EXPECT().IsSubscriber(mock.Anything, "user-1").Return(false, dbError)
			},
			wantErr: dbError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := newDeps(t)
			tc.mockBehavior(d)
			svc := newService(d)

			c := cart
			c.IsSubscriber = true // client-supplied, must not be trusted
			_, err := svc.SaveDraft(context.Background(), tc.orderID, "user-1", "design-1", c)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestOrderService_Checkout(t *testing.T) {
	type MockBehavior func(d deps)

	cart := entities.Cart{Lines: []entities.LineEntry{
		{ProductID: "JRS-1", ProductType: entities.ProductJersey, UnitPriceMinor: 10_000, Quantity: 10},
	}}
	breakdown := entities.PriceBreakdown{BaseTotalMinor: 100_000, SubtotalMinor: 95_000, GrandTotalMinor: 104_220, ItemCount: 10}

	testCases := []struct {
		name         string
		clientTotal  int64
		mockBehavior MockBehavior
		wantErr      error
	}{
		{
			name:        "creates a pending order with the server amount",
			clientTotal: 104_220,
			mockBehavior: func(d deps) {
				d.subs.EXPECT().IsSubscriber(mock.Anything, "user-1").Return(false, nil)
				d.pricer.EXPECT().Price(mock.Anything).Return(breakdown)
				d.reconciler.EXPECT().
					Reconcile(int64(104_220), breakdown).
					Return(entities.ReconcileResult{Accepted: true, FinalAmountMinor: 104_220}, nil)
				d.repo.EXPECT().
					CreateOrder(mock.Anything, mock.MatchedBy(func(o entities.Order) bool {
						return o.Status == entities.StatusPending && o.Breakdown.GrandTotalMinor == 104_220
					})).
					Return(nil)
			},
		},
		{
			name:        "mismatch beyond tolerance rejects checkout",
			clientTotal: 50_000,
			mockBehavior: func(d deps) {
				d.subs.EXPECT().IsSubscriber(mock.Anything, "user-1").Return(false, nil)
				d.pricer.EXPECT().Price(mock.Anything).Return(breakdown)
				d.reconciler.EXPECT().
					Reconcile(int64(50_000), breakdown).
					Return(entities.ReconcileResult{}, &entities.AmountMismatchError{ClientMinor: 50_000, ServerMinor: 104_220})
			},
			wantErr: entities.ErrAmountMismatch,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := newDeps(t)
			tc.mockBehavior(d)
			svc := newService(d)

			got, err := svc.Checkout(context.Background(), "user-1", "design-1", cart, tc.clientTotal)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, entities.StatusPending, got.Status)
			assert.NotEmpty(t, got.ID)
		})
	}
}

func TestOrderService_ConvertDraft(t *testing.T) {
	type MockBehavior func(d deps)

	snapshot := entities.Cart{Lines: []entities.LineEntry{
		{ProductID: "JRS-1", ProductType: entities.ProductJersey, UnitPriceMinor: 10_000, Quantity: 2},
	}}
	draft := entities.Order{ID: "order-1", UserID: "user-1", Status: entities.StatusDraft, Snapshot: snapshot}
	breakdown := entities.PriceBreakdown{BaseTotalMinor: 20_000, SubtotalMinor: 20_000, GrandTotalMinor: 23_220, ItemCount: 2}

	testCases := []struct {
		name         string
		mockBehavior MockBehavior
		wantErr      error
	}{
		{
			name: "reprices the stale draft and freezes it",
			mockBehavior: func(d deps) {
				d.repo.EXPECT().GetOrderByID(mock.Anything, "order-1").Return(draft, nil).Once()
				d.subs.EXPECT().IsSubscriber(mock.Anything, "user-1").Return(false, nil)
				d.pricer.EXPECT().Price(mock.Anything).Return(breakdown)
				d.reconciler.EXPECT().
					Reconcile(int64(23_220), breakdown).
					Return(entities.ReconcileResult{Accepted: true, FinalAmountMinor: 23_220}, nil)
				d.repo.EXPECT().FreezeDraft(mock.Anything, "order-1", mock.Anything, breakdown).Return(nil)
				d.cache.EXPECT().Delete("order-1").Return()
				frozen := draft
				frozen.Status = entities.StatusPending
				frozen.Breakdown = breakdown
				d.repo.EXPECT().GetOrderByID(mock.Anything, "order-1").Return(frozen, nil).Once()
			},
		},
		{
			name: "already converted draft is rejected",
			mockBehavior: func(d deps) {
				converted := draft
				converted.Status = entities.StatusPending
				d.repo.EXPECT().GetOrderByID(mock.Anything, "order-1").Return(converted, nil)
			},
			wantErr: entities.ErrIllegalTransition,
		},
		{
			name: "lost freeze race surfaces the winner's state",
			mockBehavior: func(d deps) {
				d.repo.EXPECT().GetOrderByID(mock.Anything, "order-1").Return(draft, nil).Once()
				d.subs.EXPECT().IsSubscriber(mock.Anything, "user-1").Return(false, nil)
				d.pricer.EXPECT().Price(mock.Anything).Return(breakdown)
				d.reconciler.EXPECT().
					Reconcile(int64(23_220), breakdown).
					Return(entities.ReconcileResult{Accepted: true, FinalAmountMinor: 23_220}, nil)
				d.repo.EXPECT().
					FreezeDraft(mock.Anything, "order-1", mock.Anything, breakdown).
					Return(entities.ErrStatusConflict)
				cancelled := draft
				cancelled.Status = entities.StatusCancelled
				d.repo.EXPECT().GetOrderByID(mock.Anything, "order-1").Return(cancelled, nil).Once()
			},
			wantErr: entities.ErrIllegalTransition,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := newDeps(t)
			tc.mockBehavior(d)
			svc := newService(d)

			got, err := svc.ConvertDraft(context.Background(), "order-1", 23_220)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, entities.StatusPending, got.Status)
		})
	}
}

func TestOrderService_MarkPaid(t *testing.T) {
	type MockBehavior func(d deps)

	pending := entities.Order{
		ID:        "order-1",
		UserID:    "user-1",
		Status:    entities.StatusPending,
		Breakdown: entities.PriceBreakdown{GrandTotalMinor: 104_220},
	}
	verifierDown := errors.New("gateway timeout")

	testCases := []struct {
		name         string
		mockBehavior MockBehavior
		wantErr      error
	}{
		{
			name: "verified capture moves pending to paid",
			mockBehavior: func(d deps) {
				d.repo.EXPECT().GetOrderByID(mock.Anything, "order-1").Return(pending, nil)
				d.verifier.EXPECT().VerifyCapture(mock.Anything, "pay-1", int64(104_220)).Return(true, nil)
				d.repo.EXPECT().
					UpdateStatus(mock.Anything, "order-1", entities.StatusPending, entities.StatusPaid).
					Return(nil)
				d.cache.EXPECT().Delete("order-1").Return()
			},
		},
		{
			name: "unconfirmed capture records payment_failed",
			mockBehavior: func(d deps) {
				d.repo.EXPECT().GetOrderByID(mock.Anything, "order-1").Return(pending, nil)
				d.verifier.EXPECT().VerifyCapture(mock.Anything, "pay-1", int64(104_220)).Return(false, nil)
				d.repo.EXPECT().
					UpdateStatus(mock.Anything, "order-1", entities.StatusPending, entities.StatusPaymentFailed).
					Return(nil)
				d.cache.EXPECT().Delete("order-1").Return()
			},
		},
		{
			name: "verifier error leaves the order pending",
			mockBehavior: func(d deps) {
				d.repo.EXPECT().GetOrderByID(mock.Anything, "order-1").Return(pending, nil)
				d.verifier.EXPECT().
					VerifyCapture(mock.Anything, "pay-1", int64(104_220)).
					Return(false, verifierDown)
			},
			wantErr: entities.ErrPaymentVerification,
		},
		{
			name: "draft order cannot be paid",
			mockBehavior: func(d deps) {
				draft := pending
				draft.Status = entities.StatusDraft
				d.repo.EXPECT().GetOrderByID(mock.Anything, "order-1").Return(draft, nil)
			},
			wantErr: entities.ErrIllegalTransition,
		},
		{
			name: "lost race against a concurrent cancel",
			mockBehavior: func(d deps) {
				d.repo.EXPECT().GetOrderByID(mock.Anything, "order-1").Return(pending, nil).Once()
				d.verifier.EXPECT().VerifyCapture(mock.Anything, "pay-1", int64(104_220)).Return(true, nil)
				d.repo.EXPECT().
					UpdateStatus(mock.Anything, "order-1", entities.StatusPending, entities.StatusPaid).
					Return(entities.ErrStatusConflict)
				cancelled := pending
				cancelled.Status = entities.StatusCancelled
				d.repo.EXPECT().GetOrderByID(mock.Anything, "order-1").Return(cancelled, nil).Once()
			},
			wantErr: entities.ErrIllegalTransition,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := newDeps(t)
			tc.mockBehavior(d)
			svc := newService(d)

			err := svc.MarkPaid(context.Background(), "order-1", "pay-1")

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestOrderService_MarkPaid_DispatchesNotifiers(t *testing.T) {
	d := newDeps(t)
	pending := entities.Order{
		ID:        "order-1",
		Status:    entities.StatusPending,
		Breakdown: entities.PriceBreakdown{GrandTotalMinor: 104_220},
	}

	d.repo.EXPECT().GetOrderByID(mock.Anything, "order-1").Return(pending, nil)
	d.verifier.EXPECT().VerifyCapture(mock.Anything, "pay-1", int64(104_220)).Return(true, nil)
	d.repo.EXPECT().
		UpdateStatus(mock.Anything, "order-1", entities.StatusPending, entities.StatusPaid).
		Return(nil)
	d.cache.EXPECT().Delete("order-1").Return()

	notified := make(chan entities.Order, 1)
	notifier := mocks.NewMockNotifier(t)
	notifier.EXPECT().
		OrderPaid(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, order entities.Order) error {
			notified <- order
			return nil
		})

	svc := newService(d, notifier)
	require.NoError(t, svc.MarkPaid(context.Background(), "order-1", "pay-1"))

	select {
	case order := <-notified:
		assert.Equal(t, "order-1", order.ID)
		assert.Equal(t, entities.StatusPaid, order.Status)
	case <-time.After(2 * time.Second):
		t.Fatal("notifier was not invoked")
	}
}

func TestOrderService_Advance(t *testing.T) {
	type MockBehavior func(d deps)

	paid := entities.Order{ID: "order-1", Status: entities.StatusPaid}

	testCases := []struct {
		name         string
		target       entities.OrderStatus
		trackingID   string
		mockBehavior MockBehavior
		wantErr      error
	}{
		{
			name:   "paid advances to processing",
			target: entities.StatusProcessing,
			mockBehavior: func(d deps) {
				d.repo.EXPECT().GetOrderByID(mock.Anything, "order-1").Return(paid, nil)
				d.repo.EXPECT().
					UpdateStatus(mock.Anything, "order-1", entities.StatusPaid, entities.StatusProcessing).
					Return(nil)
				d.cache.EXPECT().Delete("order-1").Return()
			},
		},
		{
			name:       "shipping with tracking is transactional",
			target:     entities.StatusShipped,
			trackingID: "TRK-42",
			mockBehavior: func(d deps) {
				processing := paid
				processing.Status = entities.StatusProcessing
				d.repo.EXPECT().GetOrderByID(mock.Anything, "order-1").Return(processing, nil)
				d.tx.EXPECT().
					Do(mock.Anything, mock.Anything).
					RunAndReturn(func(ctx context.Context, cb func(ctx context.Context) error) error {
						return cb(ctx)
					})
				d.repo.EXPECT().
					UpdateStatus(mock.Anything, "order-1", entities.StatusProcessing, entities.StatusShipped).
					Return(nil)
				d.repo.EXPECT().SetTracking(mock.Anything, "order-1", "TRK-42").Return(nil)
				d.cache.EXPECT().Delete("order-1").Return()
			},
		},
		{
			name:   "skipping a fulfillment step is illegal",
			target: entities.StatusShipped,
			mockBehavior: func(d deps) {
				d.repo.EXPECT().GetOrderByID(mock.Anything, "order-1").Return(paid, nil)
			},
			wantErr: entities.ErrIllegalTransition,
		},
		{
			name:   "cancellation never goes through advance",
			target: entities.StatusCancelled,
			mockBehavior: func(d deps) {
				d.repo.EXPECT().GetOrderByID(mock.Anything, "order-1").Return(paid, nil)
			},
			wantErr: entities.ErrIllegalTransition,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := newDeps(t)
			tc.mockBehavior(d)
			svc := newService(d)

			err := svc.Advance(context.Background(), "order-1", tc.target, tc.trackingID)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestOrderService_Cancel(t *testing.T) {
	type MockBehavior func(d deps)

	testCases := []struct {
		name         string
		status       entities.OrderStatus
		mockBehavior MockBehavior
		wantErr      error
	}{
		{
			name:   "pending order cancels",
			status: entities.StatusPending,
			mockBehavior: func(d deps) {
				d.repo.EXPECT().
					UpdateStatus(mock.Anything, "order-1", entities.StatusPending, entities.StatusCancelled).
					Return(nil)
				d.cache.EXPECT().Delete("order-1").Return()
			},
		},
		{
			name:   "paid order cancels",
			status: entities.StatusPaid,
			mockBehavior: func(d deps) {
				d.repo.EXPECT().
					UpdateStatus(mock.Anything, "order-1", entities.StatusPaid, entities.StatusCancelled).
					Return(nil)
				d.cache.EXPECT().Delete("order-1").Return()
			},
		},
		{
			name:         "completed order cannot cancel",
			status:       entities.StatusCompleted,
			mockBehavior: func(d deps) {},
			wantErr:      entities.ErrIllegalTransition,
		},
		{
			name:         "cancelled order stays cancelled",
			status:       entities.StatusCancelled,
			mockBehavior: func(d deps) {},
			wantErr:      entities.ErrIllegalTransition,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := newDeps(t)
			d.repo.EXPECT().
				GetOrderByID(mock.Anything, "order-1").
				Return(entities.Order{ID: "order-1", Status: tc.status}, nil).Once()
			tc.mockBehavior(d)
			svc := newService(d)

			err := svc.Cancel(context.Background(), "order-1")

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestOrderService_RetryPayment(t *testing.T) {
	t.Run("failed order returns to pending", func(t *testing.T) {
		d := newDeps(t)
		d.repo.EXPECT().
			UpdateStatus(mock.Anything, "order-1", entities.StatusPaymentFailed, entities.StatusPending).
			Return(nil)
		d.cache.EXPECT().Delete("order-1").Return()

		assert.NoError(t, newService(d).RetryPayment(context.Background(), "order-1"))
	})

	t.Run("concurrent retry has exactly one winner", func(t *testing.T) {
		d := newDeps(t)
		d.repo.EXPECT().
			UpdateStatus(mock.Anything, "order-1", entities.StatusPaymentFailed, entities.StatusPending).
			Return(entities.ErrStatusConflict)
		// Re-read shows the winner already moved it to pending; the retried
		// edge payment_failed -> pending is no longer applicable as such,
		// but pending -> pending is not a legal edge either.
		d.repo.EXPECT().
			GetOrderByID(mock.Anything, "order-1").
			Return(entities.Order{ID: "order-1", Status: entities.StatusPending}, nil)

		err := newService(d).RetryPayment(context.Background(), "order-1")
		assert.ErrorIs(t, err, entities.ErrIllegalTransition)
	})
}

func TestOrderService_GetOrder(t *testing.T) {
	type MockBehavior func(d deps)

	validOrder := entities.Order{ID: "order-1", Status: entities.StatusPending}
	validData, err := validOrder.Marshal()
	require.NoError(t, err)

	testCases := []struct {
		name         string
		orderID      string
		mockBehavior MockBehavior
		wantErr      error
		want         entities.Order
	}{
		{
			name:    "success from cache",
			orderID: "order-1",
			mockBehavior: func(d deps) {
				d.cache.EXPECT().Get("order-1").Return(validData, true).Once()
			},
			want: validOrder,
		},
		{
			name:    "cache hit but unmarshal fails",
			orderID: "order-1",
			mockBehavior: func(d deps) {
				d.cache.EXPECT().Get("order-1").Return([]byte("broken"), true).Once()
			},
			wantErr: entities.ErrInvalidOrder,
		},
		{
			name:    "success from repo and set to cache",
			orderID: "order-1",
			mockBehavior: func(d deps) {
				d.cache.EXPECT().Get("order-1").Return(nil, false).Once()
				d.repo.EXPECT().GetOrderByID(mock.Anything, "order-1").Return(validOrder, nil).Once()
				d.cache.EXPECT().Set("order-1", validData).Return().Once()
			},
			want: validOrder,
		},
		{
			name:    "not found is not retried",
			orderID: "not-exist",
			mockBehavior: func(d deps) {
				d.cache.EXPECT().Get("not-exist").Return(nil, false).Once()
				d.repo.EXPECT().
					GetOrderByID(mock.Anything, "not-exist").
					Return(entities.Order{}, entities.ErrOrderNotFound).Once()
			},
			wantErr: entities.ErrOrderNotFound,
		},
		{
			name:    "transient repo error retried",
			orderID: "order-1",
			mockBehavior: func(d deps) {
				d.cache.EXPECT().Get("order-1").Return(nil, false).Once()
				d.repo.EXPECT().
					GetOrderByID(mock.Anything, "order-1").
					Return(entities.Order{}, errors.New("connection reset")).Once()
				d.repo.EXPECT().GetOrderByID(mock.Anything, "order-1").Return(validOrder, nil).Once()
				d.cache.EXPECT().Set("order-1", validData).Return().Once()
			},
			want: validOrder,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := newDeps(t)
			tc.mockBehavior(d)
			svc := newService(d)

			got, err := svc.GetOrder(context.Background(), tc.orderID)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

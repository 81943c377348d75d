package handler_test

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/kitforge/order-service/internal/entities"
	"github.com/kitforge/order-service/internal/handler"
	mocks "github.com/kitforge/order-service/internal/handler/mocks"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) (*mocks.MockNormalizer, *mocks.MockOrderService, *chi.Mux) {
	normalizer := mocks.NewMockNormalizer(t)
	svc := mocks.NewMockOrderService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	h := handler.NewHTTPHandler(logger, normalizer, svc)
	r := chi.NewRouter()
	h.Init(r)
	return normalizer, svc, r
}

func TestHTTPHandler_Checkout(t *testing.T) {
	normalized := entities.Cart{Lines: []entities.LineEntry{
		{ProductID: "JRS-1", ProductType: entities.ProductJersey, UnitPriceMinor: 10_000, Quantity: 10},
	}}
	created := entities.Order{
		ID:        "6f1d2c3b-0000-4000-8000-000000000001",
		UserID:    "user-1",
		Status:    entities.StatusPending,
		Snapshot:  normalized,
		Breakdown: entities.PriceBreakdown{GrandTotalMinor: 104_220, ItemCount: 10},
	}

	validBody := `{"user_id":"user-1","items":[{"sku":"JRS-1","quantity":10}],"client_total_minor":104220}`

	testCases := []struct {
		name         string
		body         string
		mockBehavior func(normalizer *mocks.MockNormalizer, svc *mocks.MockOrderService)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "success",
			body: validBody,
			mockBehavior: func(normalizer *mocks.MockNormalizer, svc *mocks.MockOrderService) {
				normalizer.EXPECT().Normalize(mock.Anything, mock.Anything).Return(normalized, nil).Once()
				svc.EXPECT().
					Checkout(mock.Anything, "user-1", "", normalized, int64(104_220)).
					Return(created, nil).Once()
			},
			wantStatus: http.StatusCreated,
			wantBody:   `"status":"pending"`,
		},
		{
			name:         "missing user_id fails validation",
			body:         `{"items":[{"sku":"JRS-1","quantity":10}],"client_total_minor":104220}`,
			mockBehavior: func(normalizer *mocks.MockNormalizer, svc *mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
		},
		{
			name:         "malformed body",
			body:         `{"user_id":`,
			mockBehavior: func(normalizer *mocks.MockNormalizer, svc *mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"invalid request body"`,
		},
		{
			name: "unknown product",
			body: validBody,
			mockBehavior: func(normalizer *mocks.MockNormalizer, svc *mocks.MockOrderService) {
				normalizer.EXPECT().
					Normalize(mock.Anything, mock.Anything).
					Return(entities.Cart{}, &entities.UnknownProductError{SKU: "JRS-1"}).Once()
			},
			wantStatus: http.StatusUnprocessableEntity,
			wantBody:   "JRS-1",
		},
		{
			name: "amount mismatch",
			body: validBody,
			mockBehavior: func(normalizer *mocks.MockNormalizer, svc *mocks.MockOrderService) {
				normalizer.EXPECT().Normalize(mock.Anything, mock.Anything).Return(normalized, nil).Once()
				svc.EXPECT().
					Checkout(mock.Anything, "user-1", "", normalized, int64(104_220)).
					Return(entities.Order{}, &entities.AmountMismatchError{ClientMinor: 104_220, ServerMinor: 120_000}).Once()
			},
			wantStatus: http.StatusConflict,
		},
		{
			name: "internal error",
			body: validBody,
			mockBehavior: func(normalizer *mocks.MockNormalizer, svc *mocks.MockOrderService) {
				normalizer.EXPECT().Normalize(mock.Anything, mock.Anything).Return(normalized, nil).Once()
				svc.EXPECT().
					Checkout(mock.Anything, "user-1", "", normalized, int64(104_220)).
					Return(entities.Order{}, errors.New("db error")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `"internal server error"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			normalizer, svc, r := newTestRouter(t)
			tc.mockBehavior(normalizer, svc)

			req := httptest.NewRequest(http.MethodPost, "/checkout", strings.NewReader(tc.body))
			rr := httptest.NewRecorder()

			r.ServeHTTP(rr, req)

			res := rr.Result()
			defer res.Body.Close()

			body, err := io.ReadAll(res.Body)
			require.NoError(t, err)

			assert.Equal(t, tc.wantStatus, res.StatusCode)
			if tc.wantBody != "" {
				assert.Contains(t, string(body), tc.wantBody)
			}
		})
	}
}

func TestHTTPHandler_GetOrder(t *testing.T) {
	orderID := "6f1d2c3b-0000-4000-8000-000000000001"
	validOrder := entities.Order{ID: orderID, UserID: "user-1", Status: entities.StatusPaid}

	testCases := []struct {
		name         string
		orderID      string
		mockBehavior func(svc *mocks.MockOrderService)
		wantStatus   int
		wantBody     string
	}{
		{
			name:    "success",
			orderID: orderID,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().GetOrder(mock.Anything, orderID).Return(validOrder, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"status":"paid"`,
		},
		{
			name:    "not found",
			orderID: "6f1d2c3b-0000-4000-8000-00000000dead",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					GetOrder(mock.Anything, "6f1d2c3b-0000-4000-8000-00000000dead").
					Return(entities.Order{}, entities.ErrOrderNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `"order not found"`,
		},
		{
			name:         "id is not a uuid",
			orderID:      "not-a-uuid",
			mockBehavior: func(svc *mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, svc, r := newTestRouter(t)
			tc.mockBehavior(svc)

			req := httptest.NewRequest(http.MethodGet, "/orders/"+tc.orderID, nil)
			rr := httptest.NewRecorder()

			r.ServeHTTP(rr, req)

			res := rr.Result()
			defer res.Body.Close()

			body, err := io.ReadAll(res.Body)
			require.NoError(t, err)

			assert.Equal(t, tc.wantStatus, res.StatusCode)
			if tc.wantBody != "" {
				assert.Contains(t, string(body), tc.wantBody)
			}

			if tc.wantStatus == http.StatusOK {
				var resp map[string]any
				require.NoError(t, json.Unmarshal(body, &resp))
				assert.Equal(t, orderID, resp["id"])
			}
		})
	}
}

func TestHTTPHandler_Advance(t *testing.T) {
	orderID := "6f1d2c3b-0000-4000-8000-000000000001"

	testCases := []struct {
		name         string
		body         string
		mockBehavior func(svc *mocks.MockOrderService)
		wantStatus   int
	}{
		{
			name: "ship with tracking",
			body: `{"status":"shipped","tracking_id":"TRK-42"}`,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					Advance(mock.Anything, orderID, entities.StatusShipped, "TRK-42").
					Return(nil).Once()
			},
			wantStatus: http.StatusNoContent,
		},
		{
			name:         "cancelled is not a fulfillment step",
			body:         `{"status":"cancelled"}`,
			mockBehavior: func(svc *mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
		},
		{
			name: "illegal transition",
			body: `{"status":"completed"}`,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					Advance(mock.Anything, orderID, entities.StatusCompleted, "").
					Return(&entities.IllegalTransitionError{From: entities.StatusPaid, To: entities.StatusCompleted}).Once()
			},
			wantStatus: http.StatusConflict,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, svc, r := newTestRouter(t)
			tc.mockBehavior(svc)

			req := httptest.NewRequest(http.MethodPost, "/orders/"+orderID+"/advance", strings.NewReader(tc.body))
			rr := httptest.NewRecorder()

			r.ServeHTTP(rr, req)
			assert.Equal(t, tc.wantStatus, rr.Code)
		})
	}
}

func TestHTTPHandler_SaveDraft(t *testing.T) {
	orderID := "6f1d2c3b-0000-4000-8000-000000000001"
	normalized := entities.Cart{Lines: []entities.LineEntry{
		{ProductID: "JRS-1", ProductType: entities.ProductJersey, UnitPriceMinor: 10_000, Quantity: 2},
	}}
	draft := entities.Order{ID: orderID, UserID: "user-1", Status: entities.StatusDraft, Snapshot: normalized}
	body := `{"user_id":"user-1","items":[{"sku":"JRS-1","quantity":2}]}`

	t.Run("create returns 201", func(t *testing.T) {
		normalizer, svc, r := newTestRouter(t)
		normalizer.EXPECT().Normalize(mock.Anything, mock.Anything).Return(normalized, nil).Once()
		svc.EXPECT().
			SaveDraft(mock.Anything, "", "user-1", "", normalized).
			Return(draft, nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/orders/draft", strings.NewReader(body))
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)
		assert.Contains(t, rr.Body.String(), `"status":"draft"`)
	})

	t.Run("overwrite returns 200", func(t *testing.T) {
		normalizer, svc, r := newTestRouter(t)
		normalizer.EXPECT().Normalize(mock.Anything, mock.Anything).Return(normalized, nil).Once()
		svc.EXPECT().
			SaveDraft(mock.Anything, orderID, "user-1", "", normalized).
			Return(draft, nil).Once()

		req := httptest.NewRequest(http.MethodPut, "/orders/"+orderID+"/draft", strings.NewReader(body))
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("converted draft conflicts", func(t *testing.T) {
		normalizer, svc, r := newTestRouter(t)
		normalizer.EXPECT().Normalize(mock.Anything, mock.Anything).Return(normalized, nil).Once()
		svc.EXPECT().
			SaveDraft(mock.Anything, orderID, "user-1", "", normalized).
			Return(entities.Order{}, &entities.IllegalTransitionError{From: entities.StatusPending, To: entities.StatusDraft}).Once()

		req := httptest.NewRequest(http.MethodPut, "/orders/"+orderID+"/draft", strings.NewReader(body))
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusConflict, rr.Code)
	})
}

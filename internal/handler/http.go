package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/kitforge/order-service/internal/cart"
	"github.com/kitforge/order-service/internal/entities"
	"github.com/kitforge/order-service/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type Normalizer interface {
	Normalize(ctx context.Context, in cart.Input) (entities.Cart, error)
}

type OrderService interface {
	SaveDraft(ctx context.Context, orderID, userID, designRef string, cart entities.Cart) (entities.Order, error)
	Checkout(ctx context.Context, userID, designRef string, cart entities.Cart, clientTotalMinor int64) (entities.Order, error)
	ConvertDraft(ctx context.Context, orderID string, clientTotalMinor int64) (entities.Order, error)
	Advance(ctx context.Context, orderID string, target entities.OrderStatus, trackingID string) error
	Cancel(ctx context.Context, orderID string) error
	RetryPayment(ctx context.Context, orderID string) error
	GetOrder(ctx context.Context, orderID string) (entities.Order, error)
	ListOrders(ctx context.Context, userID string) ([]entities.Order, error)
}

type HTTPHandler struct {
	logger     *slog.Logger
	validate   *validator.Validate
	normalizer Normalizer
	svc        OrderService
}

func NewHTTPHandler(logger *slog.Logger, normalizer Normalizer, svc OrderService) *HTTPHandler {
	return &HTTPHandler{
		logger:     logger.With(slog.String("handler", "http")),
		validate:   validator.New(),
		normalizer: normalizer,
		svc:        svc,
	}
}

func (h *HTTPHandler) Init(r chi.Router) {
	r.Post("/checkout", h.Checkout)
	r.Route("/orders", func(r chi.Router) {
		r.Get("/", h.ListOrders)
		r.Post("/draft", h.CreateDraft)
		r.Route("/{order_id}", func(r chi.Router) {
			r.Get("/", h.GetOrder)
			r.Put("/draft", h.SaveDraft)
			r.Post("/convert", h.ConvertDraft)
			r.Post("/advance", h.Advance)
			r.Post("/cancel", h.Cancel)
			r.Post("/retry-payment", h.RetryPayment)
		})
	})
}

// Checkout оформляет заказ.
// @Summary      Оформить заказ
// @Description  Нормализует корзину, считает стоимость на сервере, сверяет её с суммой клиента и создает заказ в статусе pending
// @Tags         orders
// @Accept       json
// @Param        request  body  CheckoutRequest  true  "Корзина и заявленная сумма"
// @Success      201  {object}  Order
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      409  {object}  utils.ErrorResponse "Сумма не совпадает с расчетом сервера"
// @Failure      422  {object}  utils.ErrorResponse "Неизвестный товар"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /checkout [post]
func (h *HTTPHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CheckoutRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	normalized, err := h.normalizer.Normalize(ctx, CheckoutRequestToInput(req))
	if err != nil {
		h.writeDomainError(ctx, w, err)
		return
	}

	order, err := h.svc.Checkout(ctx, req.UserID, req.DesignRef, normalized, req.ClientTotalMinor)
	if err != nil {
		checkoutsTotal.WithLabelValues("rejected").Inc()
		h.writeDomainError(ctx, w, err)
		return
	}

	checkoutsTotal.WithLabelValues("accepted").Inc()
	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusCreated)
}

// CreateDraft сохраняет новый черновик заказа.
// @Summary      Создать черновик
// @Tags         drafts
// @Accept       json
// @Param        request  body  DraftRequest  true  "Корзина черновика"
// @Success      201  {object}  Order
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Router       /orders/draft [post]
func (h *HTTPHandler) CreateDraft(w http.ResponseWriter, r *http.Request) {
	h.saveDraft(w, r, "")
}

// SaveDraft перезаписывает корзину существующего черновика.
// @Summary      Перезаписать черновик
// @Description  Снимок черновика заменяется целиком, слияния не происходит
// @Tags         drafts
// @Accept       json
// @Param        order_id  path  string        true  "Идентификатор заказа"
// @Param        request   body  DraftRequest  true  "Корзина черновика"
// @Success      200  {object}  Order
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      409  {object}  utils.ErrorResponse "Заказ уже не черновик"
// @Router       /orders/{order_id}/draft [put]
func (h *HTTPHandler) SaveDraft(w http.ResponseWriter, r *http.Request) {
	h.saveDraft(w, r, chi.URLParam(r, "order_id"))
}

func (h *HTTPHandler) saveDraft(w http.ResponseWriter, r *http.Request, orderID string) {
	ctx := r.Context()

	var req DraftRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	normalized, err := h.normalizer.Normalize(ctx, DraftRequestToInput(req))
	if err != nil {
		h.writeDomainError(ctx, w, err)
		return
	}

	order, err := h.svc.SaveDraft(ctx, orderID, req.UserID, req.DesignRef, normalized)
	if err != nil {
		h.writeDomainError(ctx, w, err)
		return
	}

	code := http.StatusOK
	if orderID == "" {
		code = http.StatusCreated
	}
	utils.WriteJSON(w, OrderEntityToJSON(order), code)
}

// ConvertDraft замораживает черновик и переводит его в pending.
// @Summary      Конвертировать черновик в заказ
// @Description  Черновик переоценивается в момент конвертации, сумма сверяется с заявленной клиентом
// @Tags         drafts
// @Accept       json
// @Param        order_id  path  string          true  "Идентификатор заказа"
// @Param        request   body  ConvertRequest  true  "Заявленная сумма"
// @Success      200  {object}  Order
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      409  {object}  utils.ErrorResponse "Недопустимый переход или расхождение суммы"
// @Router       /orders/{order_id}/convert [post]
func (h *HTTPHandler) ConvertDraft(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	orderID := chi.URLParam(r, "order_id")

	var req ConvertRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	order, err := h.svc.ConvertDraft(ctx, orderID, req.ClientTotalMinor)
	if err != nil {
		h.writeDomainError(ctx, w, err)
		return
	}

	transitionsTotal.WithLabelValues(entities.StatusPending.String()).Inc()
	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

// Advance переводит оплаченный заказ на следующий этап фулфилмента.
// @Summary      Продвинуть заказ по фулфилменту
// @Tags         fulfillment
// @Accept       json
// @Param        order_id  path  string          true  "Идентификатор заказа"
// @Param        request   body  AdvanceRequest  true  "Целевой статус"
// @Success      204  "Без содержимого"
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      409  {object}  utils.ErrorResponse "Недопустимый переход"
// @Router       /orders/{order_id}/advance [post]
func (h *HTTPHandler) Advance(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	orderID := chi.URLParam(r, "order_id")

	var req AdvanceRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	target := entities.OrderStatus(req.Status)
	if err := h.svc.Advance(ctx, orderID, target, req.TrackingID); err != nil {
		h.writeDomainError(ctx, w, err)
		return
	}

	transitionsTotal.WithLabelValues(target.String()).Inc()
	w.WriteHeader(http.StatusNoContent)
}

// Cancel отменяет заказ.
// @Summary      Отменить заказ
// @Description  Отмена допустима из любого нетерминального статуса
// @Tags         orders
// @Param        order_id  path  string  true  "Идентификатор заказа"
// @Success      204  "Без содержимого"
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      409  {object}  utils.ErrorResponse "Недопустимый переход"
// @Router       /orders/{order_id}/cancel [post]
func (h *HTTPHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	orderID := chi.URLParam(r, "order_id")

	if err := h.svc.Cancel(ctx, orderID); err != nil {
		h.writeDomainError(ctx, w, err)
		return
	}

	transitionsTotal.WithLabelValues(entities.StatusCancelled.String()).Inc()
	w.WriteHeader(http.StatusNoContent)
}

// RetryPayment возвращает заказ из payment_failed в pending.
// @Summary      Повторить оплату
// @Tags         orders
// @Param        order_id  path  string  true  "Идентификатор заказа"
// @Success      204  "Без содержимого"
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      409  {object}  utils.ErrorResponse "Недопустимый переход"
// @Router       /orders/{order_id}/retry-payment [post]
func (h *HTTPHandler) RetryPayment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	orderID := chi.URLParam(r, "order_id")

	if err := h.svc.RetryPayment(ctx, orderID); err != nil {
		h.writeDomainError(ctx, w, err)
		return
	}

	transitionsTotal.WithLabelValues(entities.StatusPending.String()).Inc()
	w.WriteHeader(http.StatusNoContent)
}

// GetOrder возвращает заказ по ID.
// @Summary      Получить заказ
// @Tags         orders
// @Param        order_id  path  string  true  "Идентификатор заказа"
// @Success      200  {object}  Order
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Router       /orders/{order_id} [get]
func (h *HTTPHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	orderID := chi.URLParam(r, "order_id")

	if err := h.validate.Var(orderID, "required,uuid"); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	order, err := h.svc.GetOrder(ctx, orderID)
	if err != nil {
		h.writeDomainError(ctx, w, err)
		return
	}

	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

// ListOrders возвращает заказы пользователя.
// @Summary      Список заказов пользователя
// @Tags         orders
// @Param        user_id  query  string  true  "Идентификатор пользователя"
// @Success      200  {array}  Order
// @Router       /orders [get]
func (h *HTTPHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := r.URL.Query().Get("user_id")

	if err := h.validate.Var(userID, "required"); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	orders, err := h.svc.ListOrders(ctx, userID)
	if err != nil {
		h.writeDomainError(ctx, w, err)
		return
	}

	res := make([]Order, 0, len(orders))
	for _, order := range orders {
		res = append(res, OrderEntityToJSON(order))
	}
	utils.WriteJSON(w, res, http.StatusOK)
}

func (h *HTTPHandler) writeDomainError(ctx context.Context, w http.ResponseWriter, err error) {
	var mismatch *entities.AmountMismatchError
	var illegal *entities.IllegalTransitionError

	switch {
	case errors.Is(err, entities.ErrOrderNotFound):
		utils.WriteError(w, "order not found", http.StatusNotFound)
	case errors.As(err, &mismatch):
		reconcileRejected.Inc()
		utils.WriteError(w, mismatch.Error(), http.StatusConflict)
	case errors.As(err, &illegal):
		utils.WriteError(w, illegal.Error(), http.StatusConflict)
	case errors.Is(err, entities.ErrStatusConflict):
		utils.WriteError(w, "order was updated concurrently, retry", http.StatusConflict)
	case errors.Is(err, entities.ErrUnknownProduct):
		utils.WriteError(w, err.Error(), http.StatusUnprocessableEntity)
	case errors.Is(err, entities.ErrInvalidQuantity):
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
	default:
		h.logger.ErrorContext(ctx, "request failed", slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
	}
}

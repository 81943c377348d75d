package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/kitforge/order-service/internal/entities"
	"github.com/kitforge/order-service/pkg/trm"
	"github.com/kitforge/order-service/pkg/utils"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

type OrderRepo interface {
	CreateOrder(ctx context.Context, o entities.Order) error
	GetOrderByID(ctx context.Context, orderID string) (entities.Order, error)
	ListOrdersByUser(ctx context.Context, userID string) ([]entities.Order, error)
	ReplaceDraftSnapshot(ctx context.Context, orderID string, cart entities.Cart, breakdown entities.PriceBreakdown) error
	FreezeDraft(ctx context.Context, orderID string, cart entities.Cart, breakdown entities.PriceBreakdown) error
	UpdateStatus(ctx context.Context, orderID string, from, to entities.OrderStatus) error
	SetTracking(ctx context.Context, orderID, trackingID string) error
}

// SubscriptionChecker reports the account's subscription standing at the
// moment of pricing, never a cached flag from cart-creation time.
type SubscriptionChecker interface {
	IsSubscriber(ctx context.Context, userID string) (bool, error)
}

type Pricer interface {
	Price(cart entities.Cart) entities.PriceBreakdown
}

type Reconciler interface {
	Reconcile(clientDeclaredMinor int64, server entities.PriceBreakdown) (entities.ReconcileResult, error)
}

// PaymentVerifier checks a capture against the payment collaborator's own
// state. A client claiming success is never trusted.
type PaymentVerifier interface {
	VerifyCapture(ctx context.Context, paymentRef string, amountMinor int64) (bool, error)
}

// Notifier is a best-effort downstream collaborator invoked after an order is
// paid (customer notification, receipt generation, ...).
type Notifier interface {
	OrderPaid(ctx context.Context, order entities.Order) error
}

type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte)
	Delete(key string)
}

const sideEffectTimeout = 30 * time.Second

var defaultRetry = utils.RetryConfig{
	InitialDelay: 100 * time.Millisecond,
	MaxAttempts:  5,
	Multiplier:   2,
}

type OrderService struct {
	logger     *slog.Logger
	txManager  trm.Manager
	repo       OrderRepo
	subs       SubscriptionChecker
	pricer     Pricer
	reconciler Reconciler
	verifier   PaymentVerifier
	notifiers  []Notifier
	cache      Cache
}

func NewOrderService(
	logger *slog.Logger,
	txManager trm.Manager,
	repo OrderRepo,
	subs SubscriptionChecker,
	pricer Pricer,
	reconciler Reconciler,
	verifier PaymentVerifier,
	cache Cache,
	notifiers ...Notifier,
) *OrderService {
	return &OrderService{
		logger:     logger.With(slog.String("service", "order")),
		txManager:  txManager,
		repo:       repo,
		subs:       subs,
		pricer:     pricer,
		reconciler: reconciler,
		verifier:   verifier,
		notifiers:  notifiers,
		cache:      cache,
	}
}

// SaveDraft creates a draft order or replaces an existing draft's snapshot
// wholesale. Saving twice leaves the latest snapshot, never a merge.
func (s *OrderService) SaveDraft(ctx context.Context, orderID, userID, designRef string, cart entities.Cart) (entities.Order, error) {
	breakdown, err := s.price(ctx, userID, &cart)
	if err != nil {
		return entities.Order{}, err
	}

	now := time.Now()
	if orderID == "" {
		order := entities.Order{
			ID:        uuid.NewString(),
			UserID:    userID,
			DesignRef: designRef,
			Status:    entities.StatusDraft,
			Snapshot:  cart,
			Breakdown: breakdown,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := s.repo.CreateOrder(ctx, order); err != nil {
			return entities.Order{}, fmt.Errorf("failed to create draft: %w", err)
		}
		s.logger.DebugContext(ctx, "draft created", slog.String("order_id", order.ID))
		return order, nil
	}

	if err := s.repo.ReplaceDraftSnapshot(ctx, orderID, cart, breakdown); err != nil {
		if errors.Is(err, entities.ErrStatusConflict) {
			return entities.Order{}, s.transitionConflict(ctx, orderID, entities.StatusDraft)
		}
		return entities.Order{}, fmt.Errorf("failed to save draft: %w", err)
	}
	s.cache.Delete(orderID)

	return s.repo.GetOrderByID(ctx, orderID)
}

// Checkout prices the cart, reconciles the client-declared total and creates
// a pending order with a frozen snapshot. The persisted amount always comes
// from the engine's breakdown.
func (s *OrderService) Checkout(ctx context.Context, userID, designRef string, cart entities.Cart, clientTotalMinor int64) (entities.Order, error) {
	breakdown, err := s.price(ctx, userID, &cart)
	if err != nil {
		return entities.Order{}, err
	}

	result, err := s.reconciler.Reconcile(clientTotalMinor, breakdown)
	if err != nil {
		return entities.Order{}, err
	}
	if result.Warning != "" {
		s.logger.WarnContext(ctx, "client total adjusted",
			slog.String("user_id", userID), slog.String("warning", result.Warning))
	}

	now := time.Now()
	order := entities.Order{
		ID:        uuid.NewString(),
		UserID:    userID,
		DesignRef: designRef,
		Status:    entities.StatusPending,
		Snapshot:  cart,
		Breakdown: breakdown,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.CreateOrder(ctx, order); err != nil {
		return entities.Order{}, fmt.Errorf("failed to create order: %w", err)
	}

	s.logger.InfoContext(ctx, "order checked out",
		slog.String("order_id", order.ID),
		slog.Int64("amount_minor", result.FinalAmountMinor))
	return order, nil
}

// ConvertDraft freezes a draft into a pending order. The draft may be stale,
// so it is re-priced once more at conversion time before the reconcile.
func (s *OrderService) ConvertDraft(ctx context.Context, orderID string, clientTotalMinor int64) (entities.Order, error) {
	order, err := s.repo.GetOrderByID(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}
	if order.Status != entities.StatusDraft {
		return entities.Order{}, &entities.IllegalTransitionError{From: order.Status, To: entities.StatusPending}
	}

	cart := order.Snapshot
	breakdown, err := s.price(ctx, order.UserID, &cart)
	if err != nil {
		return entities.Order{}, err
	}
	if _, err := s.reconciler.Reconcile(clientTotalMinor, breakdown); err != nil {
		return entities.Order{}, err
	}

	if err := s.repo.FreezeDraft(ctx, orderID, cart, breakdown); err != nil {
		if errors.Is(err, entities.ErrStatusConflict) {
			return entities.Order{}, s.transitionConflict(ctx, orderID, entities.StatusPending)
		}
		return entities.Order{}, fmt.Errorf("failed to convert draft: %w", err)
	}
	s.cache.Delete(orderID)

	s.logger.InfoContext(ctx, "draft converted", slog.String("order_id", orderID))
	return s.repo.GetOrderByID(ctx, orderID)
}

// MarkPaid applies pending -> paid after verifying the capture with the
// payment collaborator. An unconfirmed capture records payment_failed and
// leaves the order retryable. Side effects are dispatched after the
// transition commits and never roll it back.
func (s *OrderService) MarkPaid(ctx context.Context, orderID, paymentRef string) error {
	order, err := s.repo.GetOrderByID(ctx, orderID)
	if err != nil {
		return err
	}
	if !order.Status.CanTransitionTo(entities.StatusPaid) {
		return &entities.IllegalTransitionError{From: order.Status, To: entities.StatusPaid}
	}

	confirmed, err := s.verifier.VerifyCapture(ctx, paymentRef, order.Breakdown.GrandTotalMinor)
	if err != nil {
		// Ambiguous outcome: the order stays pending, the caller retries.
		return fmt.Errorf("%w: %v", entities.ErrPaymentVerification, err)
	}
	if !confirmed {
		return s.MarkPaymentFailed(ctx, orderID)
	}

	if err := s.transition(ctx, orderID, entities.StatusPending, entities.StatusPaid); err != nil {
		return err
	}
	order.Status = entities.StatusPaid

	s.logger.InfoContext(ctx, "order paid",
		slog.String("order_id", orderID), slog.String("payment_ref", paymentRef))
	s.dispatchPaid(order)
	return nil
}

// MarkPaymentFailed records a failed capture. No terminal state is reached;
// payment_failed -> pending stays legal for retries.
func (s *OrderService) MarkPaymentFailed(ctx context.Context, orderID string) error {
	if err := s.transition(ctx, orderID, entities.StatusPending, entities.StatusPaymentFailed); err != nil {
		return err
	}
	s.logger.WarnContext(ctx, "payment failed", slog.String("order_id", orderID))
	return nil
}

// RetryPayment returns a failed order to pending so capture can be attempted
// again.
func (s *OrderService) RetryPayment(ctx context.Context, orderID string) error {
	return s.transition(ctx, orderID, entities.StatusPaymentFailed, entities.StatusPending)
}

// Advance moves a paid order one step along the fulfillment chain
// (processing, shipped, completed). Operator-triggered, forward-only.
func (s *OrderService) Advance(ctx context.Context, orderID string, target entities.OrderStatus, trackingID string) error {
	order, err := s.repo.GetOrderByID(ctx, orderID)
	if err != nil {
		return err
	}
	if !order.Status.CanTransitionTo(target) || target == entities.StatusCancelled {
		return &entities.IllegalTransitionError{From: order.Status, To: target}
	}

	if target == entities.StatusShipped && trackingID != "" {
		err = s.txManager.Do(ctx, func(ctx context.Context) error {
			if err := s.repo.UpdateStatus(ctx, orderID, order.Status, target); err != nil {
				return err
			}
			return s.repo.SetTracking(ctx, orderID, trackingID)
		})
	} else {
		err = s.repo.UpdateStatus(ctx, orderID, order.Status, target)
	}

	if errors.Is(err, entities.ErrStatusConflict) {
		return s.transitionConflict(ctx, orderID, target)
	}
	if err != nil {
		return fmt.Errorf("failed to advance order: %w", err)
	}
	s.cache.Delete(orderID)

	s.logger.InfoContext(ctx, "order advanced",
		slog.String("order_id", orderID), slog.String("status", target.String()))
	return nil
}

// Cancel is legal from every non-terminal state.
func (s *OrderService) Cancel(ctx context.Context, orderID string) error {
	order, err := s.repo.GetOrderByID(ctx, orderID)
	if err != nil {
		return err
	}
	return s.transition(ctx, orderID, order.Status, entities.StatusCancelled)
}

func (s *OrderService) GetOrder(ctx context.Context, orderID string) (entities.Order, error) {
	if data, ok := s.cache.Get(orderID); ok {
		var order entities.Order
		if err := order.Unmarshal(data); err != nil {
			s.logger.ErrorContext(ctx, "failed to unmarshal cached order", slog.Any("error", err))
			return entities.Order{}, fmt.Errorf("%w: %v", entities.ErrInvalidOrder, err)
		}
		return order, nil
	}

	var order entities.Order
	fn := func() error {
		var err error
		order, err = s.repo.GetOrderByID(ctx, orderID)
		return err
	}
	if err := utils.Retry(defaultRetry, fn, entities.ErrOrderNotFound); err != nil {
		return entities.Order{}, err
	}

	data, err := order.Marshal()
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to marshal order", slog.Any("error", err))
		return entities.Order{}, err
	}
	s.cache.Set(orderID, data)
	return order, nil
}

func (s *OrderService) ListOrders(ctx context.Context, userID string) ([]entities.Order, error) {
	return s.repo.ListOrdersByUser(ctx, userID)
}

// price re-evaluates the subscriber flag and runs the engine. The flag on the
// incoming cart is ignored; trusting it would let stale subscriptions keep
// their discount.
func (s *OrderService) price(ctx context.Context, userID string, cart *entities.Cart) (entities.PriceBreakdown, error) {
	isSubscriber, err := s.subs.IsSubscriber(ctx, userID)
	if err != nil {
		return entities.PriceBreakdown{}, fmt.Errorf("failed to check subscription: %w", err)
	}
	cart.IsSubscriber = isSubscriber
	return s.pricer.Price(*cart), nil
}

// transition applies a compare-and-set status change and invalidates the
// cache. On a lost race the current state is re-read so the caller gets an
// IllegalTransitionError naming it.
func (s *OrderService) transition(ctx context.Context, orderID string, from, to entities.OrderStatus) error {
	if !from.CanTransitionTo(to) {
		return &entities.IllegalTransitionError{From: from, To: to}
	}

	err := s.repo.UpdateStatus(ctx, orderID, from, to)
	if errors.Is(err, entities.ErrStatusConflict) {
		return s.transitionConflict(ctx, orderID, to)
	}
	if err != nil {
		return fmt.Errorf("failed to transition order: %w", err)
	}
	s.cache.Delete(orderID)
	return nil
}

// transitionConflict resolves a lost compare-and-set: the loser observes the
// post-transition state and fails if its requested edge is no longer legal.
func (s *OrderService) transitionConflict(ctx context.Context, orderID string, to entities.OrderStatus) error {
	order, err := s.repo.GetOrderByID(ctx, orderID)
	if err != nil {
		return err
	}
	if !order.Status.CanTransitionTo(to) {
		return &entities.IllegalTransitionError{From: order.Status, To: to}
	}
	return entities.ErrStatusConflict
}

// dispatchPaid fans out the post-payment collaborators. Delivery is
// best-effort with bounded retry on a detached context; the paid status is
// authoritative the instant the transition commits.
func (s *OrderService) dispatchPaid(order entities.Order) {
	if len(s.notifiers) == 0 {
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), sideEffectTimeout)
		defer cancel()

		g, ctx := errgroup.WithContext(ctx)
		for _, notifier := range s.notifiers {
			g.Go(func() error {
				return utils.Retry(defaultRetry, func() error {
					return notifier.OrderPaid(ctx, order)
				})
			})
		}
		if err := g.Wait(); err != nil {
			s.logger.Error("failed to dispatch paid side effects",
				slog.String("order_id", order.ID), slog.Any("error", err))
		}
	}()
}

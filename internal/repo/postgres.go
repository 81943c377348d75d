package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/kitforge/order-service/internal/entities"
	"github.com/kitforge/order-service/pkg/trm"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

var orderColumns = []string{
	"id", "user_id", "design_ref", "status",
	"total_amount_minor", "snapshot", "tracking_id",
	"created_at", "updated_at",
}

type postgresRepo struct {
	db *sqlx.DB
	qb sq.StatementBuilderType
}

func NewPostgresRepo(db *sqlx.DB) *postgresRepo {
	return &postgresRepo{
		db: db,
		qb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *postgresRepo) CreateOrder(ctx context.Context, o entities.Order) error {
	blob, err := marshalSnapshot(o.Snapshot, o.Breakdown)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	query, args := r.qb.Insert("orders").
		Columns(orderColumns...).
		Values(
			o.ID, o.UserID, nullString(o.DesignRef), string(o.Status),
			o.Breakdown.GrandTotalMinor, blob, nullString(o.TrackingID),
			o.CreatedAt, o.UpdatedAt,
		).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}
	return nil
}

func (r *postgresRepo) GetOrderByID(ctx context.Context, orderID string) (entities.Order, error) {
	query, args := r.qb.Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"id": orderID}).
		MustSql()

	var row Order
	err := r.getContext(ctx, &row, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order: %w", err)
	}

	return OrderToEntity(row)
}

func (r *postgresRepo) ListOrdersByUser(ctx context.Context, userID string) ([]entities.Order, error) {
	query, args := r.qb.Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		MustSql()

	var rows []Order
	if err := r.selectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select orders: %w", err)
	}

	orders := make([]entities.Order, 0, len(rows))
	for _, row := range rows {
		order, err := OrderToEntity(row)
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	return orders, nil
}

// ReplaceDraftSnapshot overwrites a draft's snapshot wholesale. The status
// guard keeps frozen orders immutable even under a racing conversion.
func (r *postgresRepo) ReplaceDraftSnapshot(ctx context.Context, orderID string, cart entities.Cart, breakdown entities.PriceBreakdown) error {
	blob, err := marshalSnapshot(cart, breakdown)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	query, args := r.qb.Update("orders").
		Set("snapshot", blob).
		Set("total_amount_minor", breakdown.GrandTotalMinor).
		Set("updated_at", time.Now()).
		Where(sq.Eq{"id": orderID, "status": string(entities.StatusDraft)}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to replace draft snapshot: %w", err)
	}
	return r.checkAffected(res)
}

// UpdateStatus is a compare-and-set on the status column. At most one
// concurrent transition wins; losers get ErrStatusConflict and must re-read.
func (r *postgresRepo) UpdateStatus(ctx context.Context, orderID string, from, to entities.OrderStatus) error {
	query, args := r.qb.Update("orders").
		Set("status", string(to)).
		Set("updated_at", time.Now()).
		Where(sq.Eq{"id": orderID, "status": string(from)}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update status: %w", err)
	}
	return r.checkAffected(res)
}

// FreezeDraft converts a draft to pending and freezes the re-priced snapshot
// in the same compare-and-set statement.
func (r *postgresRepo) FreezeDraft(ctx context.Context, orderID string, cart entities.Cart, breakdown entities.PriceBreakdown) error {
	blob, err := marshalSnapshot(cart, breakdown)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	query, args := r.qb.Update("orders").
		Set("status", string(entities.StatusPending)).
		Set("snapshot", blob).
		Set("total_amount_minor", breakdown.GrandTotalMinor).
		Set("updated_at", time.Now()).
		Where(sq.Eq{"id": orderID, "status": string(entities.StatusDraft)}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to freeze draft: %w", err)
	}
	return r.checkAffected(res)
}

func (r *postgresRepo) SetTracking(ctx context.Context, orderID, trackingID string) error {
	query, args := r.qb.Update("orders").
		Set("tracking_id", nullString(trackingID)).
		Set("updated_at", time.Now()).
		Where(sq.Eq{"id": orderID}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to set tracking: %w", err)
	}
	return r.checkAffected(res)
}

func (r *postgresRepo) GetProduct(ctx context.Context, skuID string) (entities.Product, error) {
	query, args := r.qb.Select("sku", "name", "product_type", "unit_price_minor", "active").
		From("products").
		Where(sq.Eq{"sku": skuID}).
		MustSql()

	var row Product
	err := r.getContext(ctx, &row, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Product{}, &entities.UnknownProductError{SKU: skuID}
	}
	if err != nil {
		return entities.Product{}, fmt.Errorf("failed to get product: %w", err)
	}

	return ProductToEntity(row), nil
}

// IsSubscriber reports whether the user holds an active subscription right
// now. Queried at price time so a lapsed subscription never keeps its
// discount.
func (r *postgresRepo) IsSubscriber(ctx context.Context, userID string) (bool, error) {
	query, args := r.qb.Select("COUNT(1)").
		From("subscriptions").
		Where(sq.Eq{"user_id": userID, "active": true}).
		MustSql()

	var count int
	if err := r.getContext(ctx, &count, query, args...); err != nil {
		return false, fmt.Errorf("failed to check subscription: %w", err)
	}
	return count > 0, nil
}

func (r *postgresRepo) checkAffected(res sql.Result) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if affected == 0 {
		return entities.ErrStatusConflict
	}
	return nil
}

func (r *postgresRepo) execContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.ExecContext(ctx, query, args...)
	}
	return r.db.ExecContext(ctx, query, args...)
}

func (r *postgresRepo) getContext(ctx context.Context, dest any, query string, args ...any) error {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.GetContext(ctx, dest, query, args...)
	}
	return r.db.GetContext(ctx, dest, query, args...)
}

func (r *postgresRepo) selectContext(ctx context.Context, dest any, query string, args ...any) error {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.SelectContext(ctx, dest, query, args...)
	}
	return r.db.SelectContext(ctx, dest, query, args...)
}

package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/guttosm/herdpulse/internal/domain/models"
	pq "github.com/lib/pq"
)

// OrdersRepository defines the contract for order (sales transaction) access.
// Every read is scoped to a single seller.
type OrdersRepository interface {
	CountByStatus(ctx context.Context, sellerID string, statuses []models.OrderStatus) (int, error)
	FindByStatus(ctx context.Context, sellerID string, statuses []models.OrderStatus) ([]models.Order, error)
	FindRecent(ctx context.Context, sellerID string, limit int) ([]models.Order, error)
	FindAll(ctx context.Context, sellerID string) ([]models.Order, error)
	InsertOrders(ctx context.Context, orders []models.Order) error
}

const orderColumns = `id, seller_id, buyer_id, status, items, total_amount, created_at`

type ordersRepository struct {
	db *sql.DB
}

func NewOrdersRepository(db *sql.DB) OrdersRepository {
	return &ordersRepository{db: db}
}

// CountByStatus counts the seller's orders whose status is in statuses.
func (r *ordersRepository) CountByStatus(ctx context.Context, sellerID string, statuses []models.OrderStatus) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM orders WHERE seller_id = $1 AND status = ANY($2)`,
		sellerID, pq.Array(models.StatusStrings(statuses)),
	).Scan(&n)
	if err != nil {
		return 0, err
	}
	return n, nil
}

// FindByStatus returns the seller's orders whose status is in statuses.
func (r *ordersRepository) FindByStatus(ctx context.Context, sellerID string, statuses []models.OrderStatus) ([]models.Order, error) {
	return r.query(ctx, `
		SELECT `+orderColumns+`
		FROM orders
		WHERE seller_id = $1 AND status = ANY($2)
		ORDER BY created_at DESC, id
	`, sellerID, pq.Array(models.StatusStrings(statuses)))
}

// FindRecent returns at most limit orders, newest first.
func (r *ordersRepository) FindRecent(ctx context.Context, sellerID string, limit int) ([]models.Order, error) {
	return r.query(ctx, `
		SELECT `+orderColumns+`
		FROM orders
		WHERE seller_id = $1
		ORDER BY created_at DESC, id
		LIMIT $2
	`, sellerID, limit)
}

// FindAll returns every order of the seller regardless of status, newest first.
func (r *ordersRepository) FindAll(ctx context.Context, sellerID string) ([]models.Order, error) {
	return r.query(ctx, `
		SELECT `+orderColumns+`
		FROM orders
		WHERE seller_id = $1
		ORDER BY created_at DESC, id
	`, sellerID)
}

func (r *ordersRepository) query(ctx context.Context, query string, args ...interface{}) ([]models.Order, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	orders := make([]models.Order, 0)
	for rows.Next() {
		var (
			o      models.Order
			status string
			items  []byte
		)
		if err := rows.Scan(&o.ID, &o.SellerID, &o.BuyerID, &status, &items, &o.TotalAmount, &o.CreatedAt); err != nil {
			return nil, err
		}
		o.Status = models.OrderStatus(status)
		if len(items) > 0 {
			if err := json.Unmarshal(items, &o.Items); err != nil {
				return nil, fmt.Errorf("order %s: decode items: %w", o.ID, err)
			}
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return orders, nil
}

// InsertOrders bulk loads orders in a single transaction using COPY.
func (r *ordersRepository) InsertOrders(ctx context.Context, orders []models.Order) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	stmt, err := tx.PrepareContext(ctx, pq.CopyIn(
		"orders",
		"id",
		"seller_id",
		"buyer_id",
		"status",
		"items",
		"total_amount",
		"created_at",
	))
	if err != nil {
		_ = tx.Rollback()
		return err
	}

	for _, o := range orders {
		items, err := marshalJSONArray(o.Items)
		if err != nil {
			_ = stmt.Close()
			_ = tx.Rollback()
			return fmt.Errorf("order %s: encode items: %w", o.ID, err)
		}
		if _, err := stmt.ExecContext(ctx,
			o.ID,
			o.SellerID,
			o.BuyerID,
			string(o.Status),
			items,
			o.TotalAmount.String(),
			o.CreatedAt,
		); err != nil {
			_ = stmt.Close()
			_ = tx.Rollback()
			return err
		}
	}

	if _, err := stmt.ExecContext(ctx); err != nil {
		_ = stmt.Close()
		_ = tx.Rollback()
		return err
	}
	if err := stmt.Close(); err != nil {
		_ = tx.Rollback()
		return err
	}

	return tx.Commit()
}

package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/eggypro/storefront-gateway/internal/domain"
	"github.com/jackc/pgx/v5"
)

var ErrOrderNotFound = errors.New("order not found")

type OrderRepository struct {
	db *DB
}

func NewOrderRepository(db *DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// Save persists a finalized order. One insert, no updates: orders are
// immutable after creation.
func (r *OrderRepository) Save(ctx context.Context, order *domain.Order) error {
	row, err := toOrderRow(order)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO orders (order_id, payment_intent_id, status, amount_cents, items, customer, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err = r.db.Pool.Exec(ctx, query,
		row.OrderID,
		row.PaymentIntentID,
		row.Status,
		row.AmountCents,
		row.Items,
		row.Customer,
		row.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save order: %w", err)
	}

	return nil
}

// FindByID retrieves an order by its public identifier.
func (r *OrderRepository) FindByID(ctx context.Context, orderID string) (*domain.Order, error) {
	query := `
		SELECT order_id, payment_intent_id, status, amount_cents, items, customer, created_at
		FROM orders WHERE order_id = $1
	`

	var row orderRow
	err := r.db.Pool.QueryRow(ctx, query, orderID).Scan(
		&row.OrderID,
		&row.PaymentIntentID,
		&row.Status,
		&row.AmountCents,
		&row.Items,
		&row.Customer,
		&row.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to find order: %w", err)
	}

	return toOrderDomain(row)
}

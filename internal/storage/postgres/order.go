package postgres

import (
	"context"
	"fmt"

	"github.com/go-faster/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/nitaoktaviani28/go-ecommerce/internal/domain/order"
)

const (
	createOrderSQL = `INSERT INTO orders (product_id, quantity, total)
		VALUES ($1, $2, $3) RETURNING id`

	getOrderByIDSQL = `SELECT id, product_id, quantity, total, created_at
		FROM orders WHERE id = $1`
)

var _ order.Repository = (*OrderRepository)(nil)

// OrderRepository implements order.Repository backed by PostgreSQL.
type OrderRepository struct {
	pool *pgxpool.Pool
}

// NewOrderRepository returns an OrderRepository that uses the given pool.
func NewOrderRepository(pool *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{pool: pool}
}

// Create inserts a single order row. The database assigns both the ID and
// the creation timestamp; the insert is one atomic statement, so a failed
// or abandoned checkout never leaves a half-written order.
func (r *OrderRepository) Create(ctx context.Context, productID int64, quantity int, total decimal.Decimal) (int64, error) {
	var id int64
	err := r.pool.QueryRow(ctx, createOrderSQL, productID, quantity, total).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("creating order: %w", err)
	}
	return id, nil
}

// GetByID returns an order by its identifier.
func (r *OrderRepository) GetByID(ctx context.Context, id int64) (*order.Order, error) {
	rows, err := r.pool.Query(ctx, getOrderByIDSQL, id)
	if err != nil {
		return nil, fmt.Errorf("getting order %d: %w", id, err)
	}

	o, err := pgx.CollectExactlyOneRow(rows, scanOrder)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrNotFound
		}
		return nil, fmt.Errorf("getting order %d: %w", id, err)
	}
	return &o, nil
}

func scanOrder(row pgx.CollectableRow) (order.Order, error) {
	var o order.Order
	err := row.Scan(&o.ID, &o.ProductID, &o.Quantity, &o.Total, &o.CreatedAt)
	return o, err
}

package order

import (
	"context"
	"time"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
)

// ErrNotFound is returned when a requested order does not exist.
var ErrNotFound = errors.New("order not found")

// Order represents a persisted purchase. The ID and CreatedAt fields are
// assigned by the store at insertion time, never by the caller, and the
// Total is always recomputed server-side from the catalog price.
type Order struct {
	ID        int64
	ProductID int64
	Quantity  int
	Total     decimal.Decimal
	CreatedAt time.Time
}

// Repository defines persistence operations for orders. Orders are
// append-only: they are created exactly once and never updated or deleted.
type Repository interface {
	// Create inserts a new order row and returns the store-assigned ID.
	// The store also assigns the creation timestamp.
	Create(ctx context.Context, productID int64, quantity int, total decimal.Decimal) (int64, error)
	// GetByID returns an order, or ErrNotFound if it does not exist.
	GetByID(ctx context.Context, id int64) (*Order, error)
}

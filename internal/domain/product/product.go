package product

import (
	"context"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
)

// ErrNotFound is returned when a requested product does not exist.
var ErrNotFound = errors.New("product not found")

// Product represents a catalog item available for purchase. Products are
// seeded once at store initialization and are immutable afterwards, so a
// price read during checkout stays valid for the lifetime of the order.
type Product struct {
	ID    int64
	Name  string
	Price decimal.Decimal
}

// Repository defines read operations for the product catalog.
type Repository interface {
	// List returns every product ordered by ID ascending.
	List(ctx context.Context) ([]Product, error)
	// GetByID returns a single product, or ErrNotFound if it does not exist.
	GetByID(ctx context.Context, id int64) (*Product, error)
}

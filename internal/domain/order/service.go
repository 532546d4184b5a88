package order

import (
	"context"
	"strconv"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"

	"github.com/nitaoktaviani28/go-ecommerce/internal/domain/product"
)

// CheckoutRequest holds the raw checkout input as submitted by a client.
// Both fields arrive as text and must parse to positive integers. There is
// deliberately no price or total field: pricing is always recomputed from
// the stored catalog price.
type CheckoutRequest struct {
	ProductID string
	Quantity  string
}

// OrderView pairs an order with the product it references, for read-only
// confirmation display.
type OrderView struct {
	Order   *Order
	Product *product.Product
}

// Pipeline is the order-creation and lookup pipeline. It exists as an
// interface so that cross-cutting concerns (logging, metrics) can be
// layered around the core Service at wiring time.
type Pipeline interface {
	// CreateOrder validates the request, re-prices it from the catalog,
	// persists a single order row, and returns the store-assigned ID.
	CreateOrder(ctx context.Context, req CheckoutRequest) (int64, error)
	// GetOrderView returns a previously created order and its product.
	GetOrderView(ctx context.Context, orderID string) (*OrderView, error)
}

// Service implements Pipeline against the injected product and order
// repositories. It is stateless and safe for concurrent use.
type Service struct {
	products product.Repository
	orders   Repository
}

var _ Pipeline = (*Service)(nil)

// NewService creates a checkout Service with the required store dependencies.
func NewService(products product.Repository, orders Repository) *Service {
	return &Service{
		products: products,
		orders:   orders,
	}
}

// CreateOrder runs the checkout pipeline: validate input, look up the
// product, compute the total with decimal arithmetic, and insert exactly one
// order row. Every failure path leaves the order store untouched.
func (s *Service) CreateOrder(ctx context.Context, req CheckoutRequest) (int64, error) {
	productID, err := parsePositiveInt("product_id", req.ProductID)
	if err != nil {
		return 0, err
	}
	quantity, err := parsePositiveInt("quantity", req.Quantity)
	if err != nil {
		return 0, err
	}

	p, err := s.products.GetByID(ctx, productID)
	if err != nil {
		if errors.Is(err, product.ErrNotFound) {
			return 0, err
		}
		return 0, errors.Wrapf(err, "get product %d", productID)
	}

	// Re-price server-side. The client never supplies a price or total.
	total := p.Price.Mul(decimal.NewFromInt(quantity))

	id, err := s.orders.Create(ctx, p.ID, int(quantity), total)
	if err != nil {
		return 0, &PersistenceError{Op: "create order", Err: err}
	}

	return id, nil
}

// GetOrderView fetches an order and the product it references. The product
// branch is defensive: products are never deleted, but a dangling reference
// still surfaces as not-found rather than a fabricated view.
func (s *Service) GetOrderView(ctx context.Context, orderID string) (*OrderView, error) {
	id, err := parsePositiveInt("order_id", orderID)
	if err != nil {
		return nil, err
	}

	o, err := s.orders.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, err
		}
		return nil, errors.Wrapf(err, "get order %d", id)
	}

	p, err := s.products.GetByID(ctx, o.ProductID)
	if err != nil {
		if errors.Is(err, product.ErrNotFound) {
			return nil, err
		}
		return nil, errors.Wrapf(err, "get product %d", o.ProductID)
	}

	return &OrderView{Order: o, Product: p}, nil
}

// parsePositiveInt rejects malformed input explicitly instead of coercing it
// and relying on a downstream not-found.
func parsePositiveInt(field, value string) (int64, error) {
	if value == "" {
		return 0, &ValidationError{Field: field, Reason: "missing"}
	}
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, &ValidationError{Field: field, Reason: "must be an integer"}
	}
	if n <= 0 {
		return 0, &ValidationError{Field: field, Reason: "must be positive"}
	}
	return n, nil
}

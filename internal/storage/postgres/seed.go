package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// starterProduct is a catalog entry inserted on first initialization.
type starterProduct struct {
	Name  string
	Price decimal.Decimal
}

// starterCatalog is deployment data, not pipeline logic: the products a
// fresh installation starts with.
var starterCatalog = []starterProduct{
	{Name: "Gaming Laptop", Price: decimal.NewFromInt(15000000)},
	{Name: "Wireless Mouse", Price: decimal.NewFromInt(300000)},
	{Name: "Mechanical Keyboard", Price: decimal.NewFromInt(800000)},
	{Name: "4K Monitor", Price: decimal.NewFromInt(3500000)},
}

// SeedCatalog inserts the starter products when the catalog is empty.
// Running it against a non-empty catalog is a no-op, so repeated startup
// invocations never duplicate the starter set.
func SeedCatalog(ctx context.Context, pool *pgxpool.Pool) error {
	var count int64
	if err := pool.QueryRow(ctx, `SELECT COUNT(*) FROM products`).Scan(&count); err != nil {
		return fmt.Errorf("counting products: %w", err)
	}
	if count > 0 {
		return nil
	}

	for _, p := range starterCatalog {
		_, err := pool.Exec(ctx, `INSERT INTO products (name, price) VALUES ($1, $2)`, p.Name, p.Price)
		if err != nil {
			return fmt.Errorf("seeding product %q: %w", p.Name, err)
		}
	}
	return nil
}

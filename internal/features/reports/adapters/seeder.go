package adapters

import (
	"context"
	"database/sql"
	"fmt"

	"sales-dashboard/internal/features/reports/domain"

	"github.com/google/uuid"
)

// Seeder writes demo data into the order store. The reporting layer itself
// never mutates orders; this exists for cmd/seed and tests.
type Seeder struct {
	db *sql.DB
}

// NewSeeder creates a Seeder over an open order store.
func NewSeeder(db *sql.DB) *Seeder {
	return &Seeder{db: db}
}

// InsertProduct stores a catalog product. A missing ID gets generated.
func (s *Seeder) InsertProduct(ctx context.Context, p domain.Product) (domain.Product, error) {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.Status == "" {
		p.Status = "published"
	}
	if _, err := s.db.ExecContext(ctx,
		`INSERT INTO products(id, title, status) VALUES (?, ?, ?)`,
		p.ID, p.Title, p.Status,
	); err != nil {
		return domain.Product{}, fmt.Errorf("insert product: %w", err)
	}
	return p, nil
}

// InsertOrder stores an order and its items atomically.
func (s *Seeder) InsertOrder(ctx context.Context, o domain.Order, items []domain.OrderItem) (domain.Order, error) {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return domain.Order{}, fmt.Errorf("begin order insert: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO orders(id, buyer_name, buyer_email, total_cents, payment_status, order_status, placed_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		o.ID, o.BuyerName, o.BuyerEmail, o.Total.Shift(2).IntPart(),
		string(o.PaymentStatus), string(o.Status), o.PlacedAt.UTC().Unix(),
	); err != nil {
		return domain.Order{}, fmt.Errorf("insert order: %w", err)
	}

	for _, item := range items {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO order_items(id, order_id, product_id, qty, unit_price_cents, total_cents)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			uuid.NewString(), o.ID, item.ProductID, item.Qty,
			item.UnitPrice.Shift(2).IntPart(), item.Total.Shift(2).IntPart(),
		); err != nil {
			return domain.Order{}, fmt.Errorf("insert order item: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return domain.Order{}, fmt.Errorf("commit order insert: %w", err)
	}
	return o, nil
}

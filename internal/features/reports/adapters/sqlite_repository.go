package adapters

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"sales-dashboard/internal/features/reports/domain"

	"github.com/shopspring/decimal"
)

// SQLiteSalesRepository implements ports.SalesRepository over the relational
// order store. Amounts are persisted as integer cents; placed_at as unix
// seconds so day grouping and range filters stay deterministic.
type SQLiteSalesRepository struct {
	db *sql.DB
}

// NewSQLiteSalesRepository wires a sales repository backed by SQLite.
func NewSQLiteSalesRepository(db *sql.DB) *SQLiteSalesRepository {
	return &SQLiteSalesRepository{db: db}
}

// Migrate applies the order store schema.
func (r *SQLiteSalesRepository) Migrate(ctx context.Context) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS products (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			status TEXT NOT NULL DEFAULT 'published'
		);`,
		`CREATE TABLE IF NOT EXISTS orders (
			id TEXT PRIMARY KEY,
			buyer_name TEXT NOT NULL,
			buyer_email TEXT NOT NULL,
			total_cents INTEGER NOT NULL,
			payment_status TEXT NOT NULL,
			order_status TEXT NOT NULL,
			placed_at INTEGER NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_orders_payment_placed ON orders(payment_status, placed_at DESC);`,
		`CREATE TABLE IF NOT EXISTS order_items (
			id TEXT PRIMARY KEY,
			order_id TEXT NOT NULL,
			product_id TEXT NOT NULL,
			qty INTEGER NOT NULL,
			unit_price_cents INTEGER NOT NULL,
			total_cents INTEGER NOT NULL,
			FOREIGN KEY(order_id) REFERENCES orders(id) ON DELETE CASCADE,
			FOREIGN KEY(product_id) REFERENCES products(id)
		);`,
		`CREATE INDEX IF NOT EXISTS idx_order_items_product ON order_items(product_id);`,
	}

	for _, stmt := range stmts {
		if _, err := r.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("apply order store schema: %w", err)
		}
	}
	return nil
}

// TotalsBetween sums paid orders placed in [from, to).
func (r *SQLiteSalesRepository) TotalsBetween(ctx context.Context, from, to time.Time) (domain.Totals, error) {
	var cents sql.NullInt64
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT SUM(total_cents), COUNT(*) FROM orders
		 WHERE payment_status = ? AND placed_at >= ? AND placed_at < ?`,
		string(domain.PaymentStatusPaid), from.Unix(), to.Unix(),
	).Scan(&cents, &count)
	if err != nil {
		return domain.Totals{}, fmt.Errorf("sum totals: %w", err)
	}
	return domain.Totals{Amount: centsToDecimal(cents), Orders: count}, nil
}

// DailySeries groups paid orders per calendar day within the range.
func (r *SQLiteSalesRepository) DailySeries(ctx context.Context, dr domain.DateRange) ([]domain.SalesBucket, error) {
	from, to := dr.UnixBounds()
	rows, err := r.db.QueryContext(ctx,
		`SELECT date(placed_at, 'unixepoch') AS day, SUM(total_cents), COUNT(*)
		 FROM orders
		 WHERE payment_status = ? AND placed_at >= ? AND placed_at < ?
		 GROUP BY day ORDER BY day`,
		string(domain.PaymentStatusPaid), from, to,
	)
	if err != nil {
		return nil, fmt.Errorf("daily series: %w", err)
	}
	defer rows.Close()

	return scanBuckets(rows, "2006-01-02")
}

// MonthlySeries groups paid orders per calendar month within the range.
func (r *SQLiteSalesRepository) MonthlySeries(ctx context.Context, dr domain.DateRange) ([]domain.SalesBucket, error) {
	from, to := dr.UnixBounds()
	rows, err := r.db.QueryContext(ctx,
		`SELECT strftime('%Y-%m', placed_at, 'unixepoch') AS month, SUM(total_cents), COUNT(*)
		 FROM orders
		 WHERE payment_status = ? AND placed_at >= ? AND placed_at < ?
		 GROUP BY month ORDER BY month`,
		string(domain.PaymentStatusPaid), from, to,
	)
	if err != nil {
		return nil, fmt.Errorf("monthly series: %w", err)
	}
	defer rows.Close()

	return scanBuckets(rows, "2006-01")
}

// TopProducts ranks products in the range by revenue, then units sold, then
// title for a stable order.
func (r *SQLiteSalesRepository) TopProducts(ctx context.Context, dr domain.DateRange, limit int) ([]domain.ProductSales, error) {
	from, to := dr.UnixBounds()
	rows, err := r.db.QueryContext(ctx,
		`SELECT p.id, p.title, SUM(i.qty) AS units, SUM(i.total_cents) AS revenue
		 FROM order_items i
		 JOIN orders o ON o.id = i.order_id
		 JOIN products p ON p.id = i.product_id
		 WHERE o.payment_status = ? AND o.placed_at >= ? AND o.placed_at < ?
		 GROUP BY p.id, p.title
		 ORDER BY revenue DESC, units DESC, p.title
		 LIMIT ?`,
		string(domain.PaymentStatusPaid), from, to, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("top products: %w", err)
	}
	defer rows.Close()

	var out []domain.ProductSales
	for rows.Next() {
		var ps domain.ProductSales
		var revenue int64
		if err := rows.Scan(&ps.ProductID, &ps.Title, &ps.UnitsSold, &revenue); err != nil {
			return nil, fmt.Errorf("scan top product: %w", err)
		}
		ps.Revenue = decimal.New(revenue, -2)
		out = append(out, ps)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iter top products: %w", err)
	}
	return out, nil
}

// RecentOrders returns the most recent paid orders, newest first.
func (r *SQLiteSalesRepository) RecentOrders(ctx context.Context, limit int) ([]domain.Order, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, buyer_name, buyer_email, total_cents, payment_status, order_status, placed_at
		 FROM orders
		 WHERE payment_status = ?
		 ORDER BY placed_at DESC, id
		 LIMIT ?`,
		string(domain.PaymentStatusPaid), limit,
	)
	if err != nil {
		return nil, fmt.Errorf("recent orders: %w", err)
	}
	defer rows.Close()

	var out []domain.Order
	for rows.Next() {
		var o domain.Order
		var cents, placed int64
		if err := rows.Scan(&o.ID, &o.BuyerName, &o.BuyerEmail, &cents, &o.PaymentStatus, &o.Status, &placed); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		o.Total = decimal.New(cents, -2)
		o.PlacedAt = time.Unix(placed, 0).UTC()
		out = append(out, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iter recent orders: %w", err)
	}
	return out, nil
}

// PaymentStatusBreakdown groups all orders by payment status.
func (r *SQLiteSalesRepository) PaymentStatusBreakdown(ctx context.Context) ([]domain.StatusSlice, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT payment_status, COUNT(*), SUM(total_cents)
		 FROM orders GROUP BY payment_status ORDER BY payment_status`,
	)
	if err != nil {
		return nil, fmt.Errorf("payment status breakdown: %w", err)
	}
	defer rows.Close()

	return scanSlices(rows)
}

// OrderStatusBreakdown groups paid orders by fulfilment status.
func (r *SQLiteSalesRepository) OrderStatusBreakdown(ctx context.Context) ([]domain.StatusSlice, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT order_status, COUNT(*), SUM(total_cents)
		 FROM orders WHERE payment_status = ?
		 GROUP BY order_status ORDER BY order_status`,
		string(domain.PaymentStatusPaid),
	)
	if err != nil {
		return nil, fmt.Errorf("order status breakdown: %w", err)
	}
	defer rows.Close()

	return scanSlices(rows)
}

// Ping verifies the store is reachable and the schema is in place.
func (r *SQLiteSalesRepository) Ping(ctx context.Context) error {
	if err := r.db.PingContext(ctx); err != nil {
		return fmt.Errorf("ping order store: %w", err)
	}
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM orders`).Scan(&n); err != nil {
		return fmt.Errorf("order store schema check: %w", err)
	}
	return nil
}

func scanBuckets(rows *sql.Rows, layout string) ([]domain.SalesBucket, error) {
	var out []domain.SalesBucket
	for rows.Next() {
		var key string
		var cents sql.NullInt64
		var count int
		if err := rows.Scan(&key, &cents, &count); err != nil {
			return nil, fmt.Errorf("scan bucket: %w", err)
		}
		day, err := time.ParseInLocation(layout, key, time.UTC)
		if err != nil {
			return nil, fmt.Errorf("parse bucket date %q: %w", key, err)
		}
		out = append(out, domain.SalesBucket{
			Date:   day,
			Amount: centsToDecimal(cents),
			Orders: count,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iter buckets: %w", err)
	}
	return out, nil
}

func scanSlices(rows *sql.Rows) ([]domain.StatusSlice, error) {
	var out []domain.StatusSlice
	for rows.Next() {
		var s domain.StatusSlice
		var cents sql.NullInt64
		if err := rows.Scan(&s.Status, &s.Orders, &cents); err != nil {
			return nil, fmt.Errorf("scan status slice: %w", err)
		}
		s.Amount = centsToDecimal(cents)
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iter status slices: %w", err)
	}
	return out, nil
}

func centsToDecimal(cents sql.NullInt64) decimal.Decimal {
	if !cents.Valid {
		return decimal.Zero
	}
	return decimal.New(cents.Int64, -2)
}

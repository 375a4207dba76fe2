package ports

import (
	"context"
	"time"

	"sales-dashboard/internal/features/reports/domain"
)

// ReportService defines the primary port for dashboard reporting.
type ReportService interface {
	// Dashboard computes the full report for a bound date range.
	Dashboard(ctx context.Context, r domain.DateRange) (*domain.DashboardReport, error)
	// ChartData computes the chart payload for a trailing period in days.
	ChartData(ctx context.Context, periodDays int) (*domain.ChartData, error)
	// Analytics computes status breakdowns and month-over-month growth.
	Analytics(ctx context.Context) (*domain.AnalyticsReport, error)
}

// SalesRepository defines the secondary port over the order store.
// All operations are read-only and return rows in deterministic order.
type SalesRepository interface {
	// TotalsBetween sums paid orders placed in the half-open window [from, to).
	TotalsBetween(ctx context.Context, from, to time.Time) (domain.Totals, error)
	// DailySeries groups paid orders per calendar day within the range.
	// The result is sparse: days with no orders are absent.
	DailySeries(ctx context.Context, r domain.DateRange) ([]domain.SalesBucket, error)
	// MonthlySeries groups paid orders per calendar month within the range.
	MonthlySeries(ctx context.Context, r domain.DateRange) ([]domain.SalesBucket, error)
	// TopProducts ranks products in the range by revenue descending,
	// ties broken by units sold descending, limited to the top N.
	TopProducts(ctx context.Context, r domain.DateRange, limit int) ([]domain.ProductSales, error)
	// RecentOrders returns the most recent paid orders, newest first,
	// independent of any range.
	RecentOrders(ctx context.Context, limit int) ([]domain.Order, error)
	// PaymentStatusBreakdown groups all orders by payment status.
	PaymentStatusBreakdown(ctx context.Context) ([]domain.StatusSlice, error)
	// OrderStatusBreakdown groups paid orders by fulfilment status.
	OrderStatusBreakdown(ctx context.Context) ([]domain.StatusSlice, error)
	// Ping checks that the order store is reachable.
	Ping(ctx context.Context) error
}

// ChartDataCache is an optional short-TTL cache in front of the chart-data
// endpoint. Implementations degrade silently: a miss or a cache outage is
// reported as absent, never as an error.
type ChartDataCache interface {
	// Get returns a cached payload for the period, if fresh.
	Get(ctx context.Context, periodDays int) ([]byte, bool)
	// Set stores a payload for the period.
	Set(ctx context.Context, periodDays int, payload []byte)
}

package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus represents how far an order's payment has progressed.
type PaymentStatus string

const (
	// PaymentStatusPaid indicates a settled payment. Only paid orders
	// count toward sales aggregates.
	PaymentStatusPaid PaymentStatus = "paid"
	// PaymentStatusPending indicates payment has not completed yet.
	PaymentStatusPending PaymentStatus = "pending"
	// PaymentStatusProcessing indicates payment is being processed.
	PaymentStatusProcessing PaymentStatus = "processing"
	// PaymentStatusCancelled indicates payment was aborted.
	PaymentStatusCancelled PaymentStatus = "cancelled"
)

// OrderStatus represents the fulfilment state of an order.
type OrderStatus string

const (
	// OrderStatusPending indicates the order awaits fulfilment.
	OrderStatusPending OrderStatus = "pending"
	// OrderStatusFulfilled indicates the order has been delivered.
	OrderStatusFulfilled OrderStatus = "fulfilled"
	// OrderStatusCancelled indicates the order was cancelled.
	OrderStatusCancelled OrderStatus = "cancelled"
)

// Order is a finalized customer order. The reporting layer reads orders, it
// never mutates them.
type Order struct {
	// ID is the unique identifier for the order.
	ID string `json:"order_id"`
	// BuyerName is the customer's display name.
	BuyerName string `json:"buyer_name"`
	// BuyerEmail is the customer's contact email.
	BuyerEmail string `json:"buyer_email"`
	// Total is the order total amount.
	Total decimal.Decimal `json:"total"`
	// PaymentStatus is the payment state of the order.
	PaymentStatus PaymentStatus `json:"payment_status"`
	// Status is the fulfilment state of the order.
	Status OrderStatus `json:"order_status"`
	// PlacedAt is when the order was placed.
	PlacedAt time.Time `json:"placed_at"`
}

// OrderItem is a single product line within an order, priced at time of sale.
type OrderItem struct {
	// OrderID references the parent order.
	OrderID string `json:"order_id"`
	// ProductID references the purchased product.
	ProductID string `json:"product_id"`
	// Qty is the number of units purchased.
	Qty int `json:"qty"`
	// UnitPrice is the per-unit price at time of sale.
	UnitPrice decimal.Decimal `json:"unit_price"`
	// Total is the line total.
	Total decimal.Decimal `json:"total"`
}

// Product is the catalog entity referenced by order items. Read-only here,
// used for display and top-seller ranking.
type Product struct {
	// ID is the unique product identifier.
	ID string `json:"product_id"`
	// Title is the product display name.
	Title string `json:"title"`
	// Status is the publication status (published, draft, disabled).
	Status string `json:"status"`
}

// SalesBucket is one aggregation slot of the chart series: a calendar day
// (or month) with its summed amount and order count. Derived per request,
// never persisted.
type SalesBucket struct {
	// Date is the bucket's calendar slot at UTC midnight.
	Date time.Time `json:"date"`
	// Amount is the summed order total for the slot.
	Amount decimal.Decimal `json:"amount"`
	// Orders is the number of orders in the slot.
	Orders int `json:"orders"`
}

// Totals is a summed amount together with its order count.
type Totals struct {
	// Amount is the summed order total.
	Amount decimal.Decimal `json:"amount"`
	// Orders is the number of orders summed.
	Orders int `json:"orders"`
}

// AverageOrder returns the mean order value, zero when there are no orders.
func (t Totals) AverageOrder() decimal.Decimal {
	if t.Orders == 0 {
		return decimal.Zero
	}
	return t.Amount.Div(decimal.NewFromInt(int64(t.Orders))).Round(2)
}

// Summary holds the fixed-window totals shown on the dashboard cards,
// computed independently of the requested range.
type Summary struct {
	// Today covers the current calendar day.
	Today Totals `json:"today"`
	// Week covers the trailing 7 days.
	Week Totals `json:"week"`
	// Month covers the trailing 30 days.
	Month Totals `json:"month"`
	// AllTime covers every paid order on record.
	AllTime Totals `json:"all_time"`
}

// ProductSales is one row of the top-sellers ranking.
type ProductSales struct {
	// ProductID is the ranked product.
	ProductID string `json:"product_id"`
	// Title is the product display name.
	Title string `json:"title"`
	// UnitsSold is the summed quantity across the range.
	UnitsSold int `json:"units_sold"`
	// Revenue is the summed line totals across the range.
	Revenue decimal.Decimal `json:"revenue"`
}

// StatusSlice is one row of a status breakdown.
type StatusSlice struct {
	// Status is the grouped status value.
	Status string `json:"status"`
	// Orders is the number of orders with that status.
	Orders int `json:"orders"`
	// Amount is the summed total for that status.
	Amount decimal.Decimal `json:"amount"`
}

// DashboardReport is everything the dashboard page renders for one request.
type DashboardReport struct {
	// Range is the bound date range the series cover.
	Range DateRange `json:"-"`
	// Totals covers the requested range.
	Totals Totals `json:"totals"`
	// AverageOrder is the mean order value over the range.
	AverageOrder decimal.Decimal `json:"average_order"`
	// Summary holds the fixed-window cards.
	Summary Summary `json:"summary"`
	// Daily is the zero-filled per-day series over the range.
	Daily []SalesBucket `json:"daily"`
	// Monthly is the per-month series over the range.
	Monthly []SalesBucket `json:"monthly"`
	// TopProducts ranks products by revenue within the range.
	TopProducts []ProductSales `json:"top_products"`
	// RecentOrders lists the most recent paid orders, range-independent.
	RecentOrders []Order `json:"recent_orders"`
}

// ChartData is the JSON payload behind both charts: three parallel
// sequences of date labels, sales amounts and order counts.
type ChartData struct {
	Labels []string  `json:"labels"`
	Sales  []float64 `json:"sales"`
	Orders []int     `json:"orders"`
}

// AnalyticsReport is the advanced analytics payload: status breakdowns and
// month-over-month growth.
type AnalyticsReport struct {
	PaymentStatuses []StatusSlice   `json:"payment_statuses"`
	OrderStatuses   []StatusSlice   `json:"order_statuses"`
	CurrentMonth    Totals          `json:"current_month"`
	PreviousMonth   Totals          `json:"previous_month"`
	GrowthRate      decimal.Decimal `json:"growth_rate_pct"`
}

// ZeroFillDaily expands a sparse per-day series to exactly one bucket per
// calendar day of the range, in ascending order. Days with no orders get an
// amount of 0 and a count of 0 rather than a missing entry.
func ZeroFillDaily(r DateRange, sparse []SalesBucket) []SalesBucket {
	byDay := make(map[time.Time]SalesBucket, len(sparse))
	for _, b := range sparse {
		byDay[Day(b.Date)] = b
	}

	out := make([]SalesBucket, 0, r.Days())
	for d := r.Start; !d.After(r.End); d = d.AddDate(0, 0, 1) {
		if b, ok := byDay[d]; ok {
			out = append(out, SalesBucket{Date: d, Amount: b.Amount, Orders: b.Orders})
			continue
		}
		out = append(out, SalesBucket{Date: d, Amount: decimal.Zero, Orders: 0})
	}
	return out
}

// ChartDataFrom flattens a bucket series into the parallel chart sequences.
func ChartDataFrom(series []SalesBucket) *ChartData {
	data := &ChartData{
		Labels: make([]string, len(series)),
		Sales:  make([]float64, len(series)),
		Orders: make([]int, len(series)),
	}
	for i, b := range series {
		data.Labels[i] = b.Date.Format(dateLayout)
		data.Sales[i] = b.Amount.InexactFloat64()
		data.Orders[i] = b.Orders
	}
	return data
}

// SumBuckets folds a series back into range totals. Used to verify the
// series/totals consistency invariant in tests.
func SumBuckets(series []SalesBucket) Totals {
	total := Totals{Amount: decimal.Zero}
	for _, b := range series {
		total.Amount = total.Amount.Add(b.Amount)
		total.Orders += b.Orders
	}
	return total
}

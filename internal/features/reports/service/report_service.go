package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"sales-dashboard/internal/features/reports/domain"
	"sales-dashboard/internal/features/reports/ports"

	"github.com/shopspring/decimal"
)

// ErrDataUnavailable is returned when the order store cannot be queried.
// The reporting layer never substitutes fabricated numbers for it.
var ErrDataUnavailable = errors.New("sales data unavailable")

// Limits configures the list sizes of a dashboard report.
type Limits struct {
	// TopProducts caps the top-sellers ranking.
	TopProducts int
	// RecentOrders caps the recent-orders list.
	RecentOrders int
}

// ReportServiceImpl implements ports.ReportService over a sales repository.
// Every report is recomputed per request; the service holds no state beyond
// its collaborators.
type ReportServiceImpl struct {
	repo   ports.SalesRepository
	limits Limits
	now    func() time.Time
}

// NewReportService creates a new ReportServiceImpl.
func NewReportService(repo ports.SalesRepository, limits Limits) *ReportServiceImpl {
	if limits.TopProducts <= 0 {
		limits.TopProducts = 5
	}
	if limits.RecentOrders <= 0 {
		limits.RecentOrders = 10
	}
	return &ReportServiceImpl{
		repo:   repo,
		limits: limits,
		now:    time.Now,
	}
}

// WithClock overrides the time source. Fixed-window summaries (today, week,
// month) depend on it; tests pin it for deterministic output.
func (s *ReportServiceImpl) WithClock(now func() time.Time) *ReportServiceImpl {
	s.now = now
	return s
}

// Dashboard computes the full report for the bound range. Any repository
// failure aborts the whole report: partial numbers are never returned.
func (s *ReportServiceImpl) Dashboard(ctx context.Context, r domain.DateRange) (*domain.DashboardReport, error) {
	from, to := r.UnixBounds()

	totals, err := s.repo.TotalsBetween(ctx, time.Unix(from, 0).UTC(), time.Unix(to, 0).UTC())
	if err != nil {
		return nil, unavailable("range totals", err)
	}

	summary, err := s.summary(ctx)
	if err != nil {
		return nil, err
	}

	sparse, err := s.repo.DailySeries(ctx, r)
	if err != nil {
		return nil, unavailable("daily series", err)
	}

	monthly, err := s.repo.MonthlySeries(ctx, r)
	if err != nil {
		return nil, unavailable("monthly series", err)
	}

	top, err := s.repo.TopProducts(ctx, r, s.limits.TopProducts)
	if err != nil {
		return nil, unavailable("top products", err)
	}

	recent, err := s.repo.RecentOrders(ctx, s.limits.RecentOrders)
	if err != nil {
		return nil, unavailable("recent orders", err)
	}

	return &domain.DashboardReport{
		Range:        r,
		Totals:       totals,
		AverageOrder: totals.AverageOrder(),
		Summary:      summary,
		Daily:        domain.ZeroFillDaily(r, sparse),
		Monthly:      monthly,
		TopProducts:  top,
		RecentOrders: recent,
	}, nil
}

// ChartData computes the zero-filled chart payload for a trailing period.
func (s *ReportServiceImpl) ChartData(ctx context.Context, periodDays int) (*domain.ChartData, error) {
	r := domain.TrailingRange(s.now(), periodDays)

	sparse, err := s.repo.DailySeries(ctx, r)
	if err != nil {
		return nil, unavailable("chart series", err)
	}
	return domain.ChartDataFrom(domain.ZeroFillDaily(r, sparse)), nil
}

// Analytics computes status breakdowns and month-over-month growth.
func (s *ReportServiceImpl) Analytics(ctx context.Context) (*domain.AnalyticsReport, error) {
	payment, err := s.repo.PaymentStatusBreakdown(ctx)
	if err != nil {
		return nil, unavailable("payment breakdown", err)
	}

	order, err := s.repo.OrderStatusBreakdown(ctx)
	if err != nil {
		return nil, unavailable("order breakdown", err)
	}

	now := s.now().UTC()
	currentStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	previousStart := currentStart.AddDate(0, -1, 0)

	current, err := s.repo.TotalsBetween(ctx, currentStart, now)
	if err != nil {
		return nil, unavailable("current month totals", err)
	}

	previous, err := s.repo.TotalsBetween(ctx, previousStart, currentStart)
	if err != nil {
		return nil, unavailable("previous month totals", err)
	}

	growth := decimal.Zero
	if previous.Amount.IsPositive() {
		growth = current.Amount.Sub(previous.Amount).
			Div(previous.Amount).
			Mul(decimal.NewFromInt(100)).
			Round(1)
	}

	return &domain.AnalyticsReport{
		PaymentStatuses: payment,
		OrderStatuses:   order,
		CurrentMonth:    current,
		PreviousMonth:   previous,
		GrowthRate:      growth,
	}, nil
}

// summary computes the fixed-window cards independently of any range.
func (s *ReportServiceImpl) summary(ctx context.Context) (domain.Summary, error) {
	today := domain.Day(s.now())
	tomorrow := today.AddDate(0, 0, 1)

	var out domain.Summary
	var err error

	if out.Today, err = s.repo.TotalsBetween(ctx, today, tomorrow); err != nil {
		return domain.Summary{}, unavailable("today totals", err)
	}
	if out.Week, err = s.repo.TotalsBetween(ctx, today.AddDate(0, 0, -6), tomorrow); err != nil {
		return domain.Summary{}, unavailable("week totals", err)
	}
	if out.Month, err = s.repo.TotalsBetween(ctx, today.AddDate(0, 0, -29), tomorrow); err != nil {
		return domain.Summary{}, unavailable("month totals", err)
	}
	if out.AllTime, err = s.repo.TotalsBetween(ctx, time.Unix(0, 0).UTC(), tomorrow); err != nil {
		return domain.Summary{}, unavailable("all-time totals", err)
	}
	return out, nil
}

func unavailable(step string, err error) error {
	return fmt.Errorf("%w: %s: %s", ErrDataUnavailable, step, err)
}

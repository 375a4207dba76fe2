package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"sales-dashboard/internal/core/httpclient"
	"sales-dashboard/internal/features/reports/domain"
)

// HTTPChartSource implements ports.ChartDataSource against the dashboard
// service's chart-data endpoint.
type HTTPChartSource struct {
	// client is the HTTP client used for API requests.
	client *http.Client
	// baseURL is the dashboard service base URL.
	baseURL string
}

// NewHTTPChartSource creates a new HTTPChartSource.
func NewHTTPChartSource(baseURL string) *HTTPChartSource {
	return &HTTPChartSource{
		client:  httpclient.NewClient(10 * time.Second),
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// Fetch retrieves the chart payload for a trailing period.
func (s *HTTPChartSource) Fetch(ctx context.Context, periodDays int) (*domain.ChartData, error) {
	url := fmt.Sprintf("%s/admin/dashboard/data?period=%d", s.baseURL, periodDays)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("dashboard API returned status: %d", resp.StatusCode)
	}

	var data domain.ChartData
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return &data, nil
}

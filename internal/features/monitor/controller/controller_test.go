package controller

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"sales-dashboard/internal/features/reports/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingSurface captures every series swap and loading toggle.
type recordingSurface struct {
	mu        sync.Mutex
	labels    []string
	series    []float64
	swaps     int
	loading   bool
	destroyed int
}

func (s *recordingSurface) SetSeries(labels []string, series []float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.labels = labels
	s.series = series
	s.swaps++
}

func (s *recordingSurface) SetLoading(loading bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = loading
}

func (s *recordingSurface) Destroy() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.destroyed++
}

func (s *recordingSurface) snapshot() (int, int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.labels), s.swaps, s.loading
}

// recordingIndicator captures show/clear calls.
type recordingIndicator struct {
	mu     sync.Mutex
	shows  []string
	clears int
}

func (i *recordingIndicator) Show(message string) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.shows = append(i.shows, message)
}

func (i *recordingIndicator) Clear() {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.clears++
}

// fakeSource serves synthetic chart data, optionally failing or blocking
// until released.
type fakeSource struct {
	mu      sync.Mutex
	err     error
	block   chan struct{}
	fetches int
}

func (f *fakeSource) Fetch(ctx context.Context, periodDays int) (*domain.ChartData, error) {
	f.mu.Lock()
	f.fetches++
	block := f.block
	err := f.err
	f.mu.Unlock()

	if block != nil {
		select {
		case <-block:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if err != nil {
		return nil, err
	}
	return chartFor(periodDays), nil
}

func (f *fakeSource) fetchCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fetches
}

func chartFor(days int) *domain.ChartData {
	data := &domain.ChartData{}
	for i := 0; i < days; i++ {
		data.Labels = append(data.Labels, fmt.Sprintf("day-%d", i))
		data.Sales = append(data.Sales, float64(i))
		data.Orders = append(data.Orders, i)
	}
	return data
}

func newTestController(source *fakeSource, cfg Config) (*Controller, *recordingSurface, *recordingSurface, *recordingIndicator) {
	sales := &recordingSurface{}
	orders := &recordingSurface{}
	indicator := &recordingIndicator{}
	return New(source, sales, orders, indicator, cfg), sales, orders, indicator
}

func TestStart_InitialPayload(t *testing.T) {
	ctl, sales, orders, _ := newTestController(&fakeSource{}, Config{})
	defer ctl.Close()

	ctl.Start(chartFor(30))

	n, swaps, _ := sales.snapshot()
	assert.Equal(t, 30, n)
	assert.Equal(t, 1, swaps)
	n, _, _ = orders.snapshot()
	assert.Equal(t, 30, n)
	assert.Equal(t, 30, ctl.ActivePeriod())
}

func TestStart_NilPayloadFetches(t *testing.T) {
	source := &fakeSource{}
	ctl, sales, _, _ := newTestController(source, Config{})
	defer ctl.Close()

	ctl.Start(nil)

	require.Eventually(t, func() bool {
		n, _, loading := sales.snapshot()
		return n == 30 && !loading
	}, time.Second, 5*time.Millisecond)
	assert.Equal(t, 1, source.fetchCount())
}

func TestSelectPeriod(t *testing.T) {
	ctl, sales, orders, _ := newTestController(&fakeSource{}, Config{})
	defer ctl.Close()

	ctl.Start(chartFor(30))

	require.NoError(t, ctl.SelectPeriod(7))
	assert.Equal(t, 7, ctl.ActivePeriod())

	// Both charts end up swapped to the new window with the overlay hidden.
	require.Eventually(t, func() bool {
		nSales, _, loadingSales := sales.snapshot()
		nOrders, _, loadingOrders := orders.snapshot()
		return nSales == 7 && nOrders == 7 && !loadingSales && !loadingOrders
	}, time.Second, 5*time.Millisecond)
}

func TestSelectPeriod_Unsupported(t *testing.T) {
	ctl, sales, _, _ := newTestController(&fakeSource{}, Config{})
	defer ctl.Close()

	ctl.Start(chartFor(30))
	_, swapsBefore, _ := sales.snapshot()

	err := ctl.SelectPeriod(13)
	assert.ErrorIs(t, err, ErrUnsupportedPeriod)
	assert.Equal(t, 30, ctl.ActivePeriod())

	_, swapsAfter, _ := sales.snapshot()
	assert.Equal(t, swapsBefore, swapsAfter)
}

func TestSelectPeriod_FailureShowsPlaceholder(t *testing.T) {
	source := &fakeSource{err: errors.New("connection refused")}
	ctl, sales, orders, _ := newTestController(source, Config{})
	defer ctl.Close()

	ctl.Start(chartFor(30))

	require.NoError(t, ctl.SelectPeriod(7))

	// The failed switch swaps in placeholder data of the requested window
	// instead of leaving an empty chart.
	require.Eventually(t, func() bool {
		nSales, _, loading := sales.snapshot()
		nOrders, _, _ := orders.snapshot()
		return nSales == 7 && nOrders == 7 && !loading
	}, time.Second, 5*time.Millisecond)
}

func TestStaleResponseDiscarded(t *testing.T) {
	firstRelease := make(chan struct{})
	source := &fakeSource{block: firstRelease}
	ctl, sales, _, _ := newTestController(source, Config{})
	defer ctl.Close()

	ctl.Start(chartFor(30))

	// First switch blocks in flight.
	require.NoError(t, ctl.SelectPeriod(7))
	require.Eventually(t, func() bool { return source.fetchCount() == 1 }, time.Second, time.Millisecond)

	// Second switch supersedes it and completes first.
	source.mu.Lock()
	source.block = nil
	source.mu.Unlock()
	require.NoError(t, ctl.SelectPeriod(90))

	require.Eventually(t, func() bool {
		n, _, _ := sales.snapshot()
		return n == 90
	}, time.Second, 5*time.Millisecond)
	_, swaps, _ := sales.snapshot()

	// Now the stale first response arrives; it must not touch the charts.
	close(firstRelease)
	time.Sleep(50 * time.Millisecond)

	n, swapsAfter, _ := sales.snapshot()
	assert.Equal(t, 90, n)
	assert.Equal(t, swaps, swapsAfter)
	assert.Equal(t, 90, ctl.ActivePeriod())
}

func TestAutoRefresh(t *testing.T) {
	source := &fakeSource{}
	ctl, sales, _, indicator := newTestController(source, Config{
		RefreshInterval: 20 * time.Millisecond,
		IndicatorFor:    10 * time.Millisecond,
	})
	defer ctl.Close()

	ctl.Start(chartFor(30))

	// Ticks keep re-fetching the active period and flash the indicator.
	require.Eventually(t, func() bool {
		_, swaps, _ := sales.snapshot()
		return swaps >= 3
	}, time.Second, 5*time.Millisecond)

	require.Eventually(t, func() bool {
		indicator.mu.Lock()
		defer indicator.mu.Unlock()
		return len(indicator.shows) > 0 && indicator.clears > 0
	}, time.Second, 5*time.Millisecond)

	indicator.mu.Lock()
	assert.Equal(t, "data updated", indicator.shows[0])
	indicator.mu.Unlock()
}

func TestAutoRefresh_FailureKeepsLastData(t *testing.T) {
	source := &fakeSource{}
	ctl, sales, _, indicator := newTestController(source, Config{
		RefreshInterval: 20 * time.Millisecond,
	})
	defer ctl.Close()

	ctl.Start(chartFor(30))
	source.mu.Lock()
	source.err = errors.New("gateway timeout")
	source.mu.Unlock()

	require.Eventually(t, func() bool { return source.fetchCount() >= 2 }, time.Second, time.Millisecond)
	time.Sleep(50 * time.Millisecond)

	// Timer failures leave the last good data alone and never flash.
	n, swaps, _ := sales.snapshot()
	assert.Equal(t, 30, n)
	assert.Equal(t, 1, swaps)
	indicator.mu.Lock()
	assert.Empty(t, indicator.shows)
	indicator.mu.Unlock()
}

func TestClose(t *testing.T) {
	source := &fakeSource{}
	ctl, sales, orders, _ := newTestController(source, Config{
		RefreshInterval: 10 * time.Millisecond,
	})

	ctl.Start(chartFor(30))
	ctl.Close()
	ctl.Close() // idempotent

	sales.mu.Lock()
	assert.Equal(t, 1, sales.destroyed)
	sales.mu.Unlock()
	orders.mu.Lock()
	assert.Equal(t, 1, orders.destroyed)
	orders.mu.Unlock()

	// No fetches land after teardown. Drain any refresh spawned just
	// before Close first.
	time.Sleep(30 * time.Millisecond)
	fetched := source.fetchCount()
	require.NoError(t, ctl.SelectPeriod(7))
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, fetched, source.fetchCount())

	_, swaps, _ := sales.snapshot()
	time.Sleep(30 * time.Millisecond)
	_, swapsAfter, _ := sales.snapshot()
	assert.Equal(t, swaps, swapsAfter)
}

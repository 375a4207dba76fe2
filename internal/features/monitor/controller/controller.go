package controller

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"time"

	"sales-dashboard/internal/core/logger"
	"sales-dashboard/internal/features/monitor/ports"
	"sales-dashboard/internal/features/reports/domain"

	"go.uber.org/zap"
)

// ErrUnsupportedPeriod is returned when the requested period is not one of
// the supported trailing windows.
var ErrUnsupportedPeriod = errors.New("unsupported period")

// Config holds the controller timing knobs.
type Config struct {
	// RefreshInterval is the auto-refresh cadence. Default 5 minutes.
	RefreshInterval time.Duration
	// IndicatorFor is how long the "data updated" flash stays visible.
	// Default 3 seconds.
	IndicatorFor time.Duration
	// DefaultPeriod is the initially active trailing window. Default 30.
	DefaultPeriod int
}

func (c *Config) applyDefaults() {
	if c.RefreshInterval <= 0 {
		c.RefreshInterval = 5 * time.Minute
	}
	if c.IndicatorFor <= 0 {
		c.IndicatorFor = 3 * time.Second
	}
	if c.DefaultPeriod <= 0 {
		c.DefaultPeriod = 30
	}
}

// Controller owns the two chart surfaces, the active period and the
// auto-refresh timer. Per chart the lifecycle is
// uninitialized → rendered → (refreshing → rendered)*, and Close tears
// everything down so no timer outlives the controller.
//
// Responses carry the sequence number of the request that produced them;
// only the latest issued sequence may touch the surfaces, so rapid period
// switches or a switch racing the timer never regress the charts.
type Controller struct {
	mu sync.Mutex

	source    ports.ChartDataSource
	sales     ports.ChartSurface
	orders    ports.ChartSurface
	indicator ports.StatusIndicator

	cfg Config
	rnd *rand.Rand
	now func() time.Time

	activePeriod  int
	seq           uint64
	started       bool
	closed        bool
	ticker        *time.Ticker
	indicatorStop *time.Timer
	done          chan struct{}
	ctx           context.Context
	cancel        context.CancelFunc
}

// New creates a Controller over a data source and the two chart surfaces.
// indicator may be nil.
func New(source ports.ChartDataSource, sales, orders ports.ChartSurface, indicator ports.StatusIndicator, cfg Config) *Controller {
	cfg.applyDefaults()
	ctx, cancel := context.WithCancel(context.Background())
	return &Controller{
		source:       source,
		sales:        sales,
		orders:       orders,
		indicator:    indicator,
		cfg:          cfg,
		rnd:          rand.New(rand.NewSource(time.Now().UnixNano())),
		now:          time.Now,
		activePeriod: cfg.DefaultPeriod,
		done:         make(chan struct{}),
		ctx:          ctx,
		cancel:       cancel,
	}
}

// Start renders the embedded initial payload and arms the auto-refresh
// timer. A nil payload triggers an immediate fetch of the default period.
func (c *Controller) Start(initial *domain.ChartData) {
	c.mu.Lock()
	if c.started || c.closed {
		c.mu.Unlock()
		return
	}
	c.started = true
	c.ticker = time.NewTicker(c.cfg.RefreshInterval)
	c.mu.Unlock()

	if initial != nil {
		c.apply(initial)
	} else {
		c.SelectPeriod(c.cfg.DefaultPeriod)
	}

	go c.autoRefreshLoop()
}

// ActivePeriod returns the currently selected trailing window.
func (c *Controller) ActivePeriod() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.activePeriod
}

// SelectPeriod activates one of the supported period filters and refreshes
// both charts asynchronously. Exactly one period is active at a time.
func (c *Controller) SelectPeriod(days int) error {
	if !domain.IsSupportedPeriod(days) {
		return ErrUnsupportedPeriod
	}

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil
	}
	c.activePeriod = days
	c.seq++
	seq := c.seq
	c.mu.Unlock()

	go c.refresh(seq, days, false)
	return nil
}

// Close tears the controller down: the auto-refresh timer and indicator
// timer stop, in-flight fetches are cancelled, and both surfaces are
// destroyed. Safe to call more than once.
func (c *Controller) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	if c.ticker != nil {
		c.ticker.Stop()
	}
	if c.indicatorStop != nil {
		c.indicatorStop.Stop()
	}
	close(c.done)
	c.mu.Unlock()

	c.cancel()
	c.sales.Destroy()
	c.orders.Destroy()
}

// autoRefreshLoop re-fetches the active period on every tick. Failures here
// are logged and otherwise ignored; the charts keep their last good data.
func (c *Controller) autoRefreshLoop() {
	for {
		select {
		case <-c.done:
			return
		case <-c.ticker.C:
			c.mu.Lock()
			if c.closed {
				c.mu.Unlock()
				return
			}
			c.seq++
			seq := c.seq
			period := c.activePeriod
			c.mu.Unlock()

			c.refresh(seq, period, true)
		}
	}
}

// refresh performs one fetch-and-swap cycle for the given sequence number.
// A response whose sequence no longer matches the latest issued request is
// discarded without touching the surfaces.
func (c *Controller) refresh(seq uint64, period int, fromTimer bool) {
	c.setLoading(seq, true)

	data, err := c.source.Fetch(c.ctx, period)

	c.mu.Lock()
	if c.closed || seq != c.seq {
		c.mu.Unlock()
		return
	}
	if err != nil {
		logger.Get().Warn("Chart refresh failed",
			zap.Int("period_days", period),
			zap.Bool("auto_refresh", fromTimer),
			zap.Error(err),
		)
		if fromTimer {
			c.mu.Unlock()
			c.setLoading(seq, false)
			return
		}
		// Never leave an empty chart behind a failed filter switch.
		data = placeholderSeries(c.now(), period, c.rnd)
	}
	c.mu.Unlock()

	c.apply(data)
	c.setLoading(seq, false)

	if err == nil && fromTimer {
		c.flashIndicator()
	}
}

// apply swaps both charts' series in place.
func (c *Controller) apply(data *domain.ChartData) {
	sales := make([]float64, len(data.Sales))
	copy(sales, data.Sales)
	orders := make([]float64, len(data.Orders))
	for i, v := range data.Orders {
		orders[i] = float64(v)
	}
	c.sales.SetSeries(data.Labels, sales)
	c.orders.SetSeries(data.Labels, orders)
}

// setLoading toggles the overlay on both surfaces if seq is still current.
func (c *Controller) setLoading(seq uint64, loading bool) {
	c.mu.Lock()
	stale := c.closed || seq != c.seq
	c.mu.Unlock()
	if stale {
		return
	}
	c.sales.SetLoading(loading)
	c.orders.SetLoading(loading)
}

// flashIndicator shows the "data updated" flash and arms its hide timer.
func (c *Controller) flashIndicator() {
	if c.indicator == nil {
		return
	}

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	if c.indicatorStop != nil {
		c.indicatorStop.Stop()
	}
	c.indicatorStop = time.AfterFunc(c.cfg.IndicatorFor, c.indicator.Clear)
	c.mu.Unlock()

	c.indicator.Show("data updated")
}

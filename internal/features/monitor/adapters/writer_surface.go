package adapters

import (
	"fmt"
	"io"
	"strings"
	"sync"
)

// sparkline glyphs from lowest to highest.
var sparks = []rune("▁▂▃▄▅▆▇█")

// WriterSurface implements ports.ChartSurface by printing a titled
// sparkline to an io.Writer on every series swap.
type WriterSurface struct {
	mu        sync.Mutex
	out       io.Writer
	title     string
	loading   bool
	destroyed bool
}

// NewWriterSurface creates a surface that renders to out.
func NewWriterSurface(out io.Writer, title string) *WriterSurface {
	return &WriterSurface{out: out, title: title}
}

// SetSeries replaces the rendered series and redraws.
func (s *WriterSurface) SetSeries(labels []string, values []float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.destroyed {
		return
	}

	var rangeLabel string
	if len(labels) > 0 {
		rangeLabel = fmt.Sprintf("%s .. %s", labels[0], labels[len(labels)-1])
	}
	fmt.Fprintf(s.out, "%-10s %s  %s\n", s.title, sparkline(values), rangeLabel)
}

// SetLoading toggles the loading marker.
func (s *WriterSurface) SetLoading(loading bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.destroyed || s.loading == loading {
		return
	}
	s.loading = loading
	if loading {
		fmt.Fprintf(s.out, "%-10s loading...\n", s.title)
	}
}

// Destroy releases the surface. Further calls are no-ops.
func (s *WriterSurface) Destroy() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.destroyed = true
}

// sparkline maps values onto block glyphs, scaled to the series maximum.
func sparkline(values []float64) string {
	if len(values) == 0 {
		return "(empty)"
	}

	max := values[0]
	for _, v := range values[1:] {
		if v > max {
			max = v
		}
	}

	var b strings.Builder
	for _, v := range values {
		idx := 0
		if max > 0 {
			idx = int(v / max * float64(len(sparks)-1))
		}
		b.WriteRune(sparks[idx])
	}
	return b.String()
}

// WriterIndicator implements ports.StatusIndicator over an io.Writer.
type WriterIndicator struct {
	mu  sync.Mutex
	out io.Writer
}

// NewWriterIndicator creates an indicator that renders to out.
func NewWriterIndicator(out io.Writer) *WriterIndicator {
	return &WriterIndicator{out: out}
}

// Show displays the message.
func (i *WriterIndicator) Show(message string) {
	i.mu.Lock()
	defer i.mu.Unlock()
	fmt.Fprintf(i.out, "* %s\n", message)
}

// Clear hides the indicator. Writer output scrolls, so nothing to erase.
func (i *WriterIndicator) Clear() {}

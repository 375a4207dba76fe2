package adapters

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWriterSurface(t *testing.T) {
	t.Run("RendersSparklineAndRange", func(t *testing.T) {
		var buf bytes.Buffer
		s := NewWriterSurface(&buf, "sales")

		s.SetSeries([]string{"2024-03-01", "2024-03-02", "2024-03-03"}, []float64{0, 50, 100})

		out := buf.String()
		assert.Contains(t, out, "sales")
		assert.Contains(t, out, "2024-03-01 .. 2024-03-03")
		assert.Contains(t, out, "▁")
		assert.Contains(t, out, "█")
	})

	t.Run("EmptySeries", func(t *testing.T) {
		var buf bytes.Buffer
		s := NewWriterSurface(&buf, "orders")

		s.SetSeries(nil, nil)
		assert.Contains(t, buf.String(), "(empty)")
	})

	t.Run("AllZeroSeries", func(t *testing.T) {
		var buf bytes.Buffer
		s := NewWriterSurface(&buf, "orders")

		s.SetSeries([]string{"a", "b"}, []float64{0, 0})
		assert.Equal(t, 2, strings.Count(buf.String(), "▁"))
	})

	t.Run("LoadingMarkerOnce", func(t *testing.T) {
		var buf bytes.Buffer
		s := NewWriterSurface(&buf, "sales")

		s.SetLoading(true)
		s.SetLoading(true)
		s.SetLoading(false)
		assert.Equal(t, 1, strings.Count(buf.String(), "loading..."))
	})

	t.Run("DestroyedIsNoop", func(t *testing.T) {
		var buf bytes.Buffer
		s := NewWriterSurface(&buf, "sales")

		s.Destroy()
		s.SetSeries([]string{"a"}, []float64{1})
		s.SetLoading(true)
		s.Destroy()
		assert.Empty(t, buf.String())
	})
}

func TestWriterIndicator(t *testing.T) {
	var buf bytes.Buffer
	i := NewWriterIndicator(&buf)

	i.Show("data updated")
	i.Clear()
	assert.Equal(t, "* data updated\n", buf.String())
}

package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var testNow = time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)

func TestNewDateRange_Valid(t *testing.T) {
	r := NewDateRange("2024-01-01", "2024-01-31", testNow, 30)

	assert.Equal(t, "2024-01-01", r.StartString())
	assert.Equal(t, "2024-01-31", r.EndString())
	assert.Equal(t, 31, r.Days())
}

func TestNewDateRange_FallsBackToTrailingWindow(t *testing.T) {
	fallback := TrailingRange(testNow, 30)

	t.Run("MissingStart", func(t *testing.T) {
		assert.Equal(t, fallback, NewDateRange("", "2024-01-31", testNow, 30))
	})

	t.Run("MissingEnd", func(t *testing.T) {
		assert.Equal(t, fallback, NewDateRange("2024-01-01", "", testNow, 30))
	})

	t.Run("Unparseable", func(t *testing.T) {
		assert.Equal(t, fallback, NewDateRange("01/01/2024", "2024-01-31", testNow, 30))
		assert.Equal(t, fallback, NewDateRange("2024-01-01", "tomorrow", testNow, 30))
	})

	t.Run("StartAfterEnd", func(t *testing.T) {
		assert.Equal(t, fallback, NewDateRange("2024-02-01", "2024-01-01", testNow, 30))
	})
}

func TestTrailingRange(t *testing.T) {
	r := TrailingRange(testNow, 30)

	assert.Equal(t, 30, r.Days())
	assert.Equal(t, "2024-03-15", r.EndString())
	assert.Equal(t, "2024-02-15", r.StartString())

	t.Run("SingleDay", func(t *testing.T) {
		r := TrailingRange(testNow, 1)
		assert.Equal(t, 1, r.Days())
		assert.Equal(t, r.Start, r.End)
	})

	t.Run("ZeroDaysClampedToOne", func(t *testing.T) {
		assert.Equal(t, 1, TrailingRange(testNow, 0).Days())
	})
}

func TestDateRange_Contains(t *testing.T) {
	r := NewDateRange("2024-01-10", "2024-01-20", testNow, 30)

	assert.True(t, r.Contains(time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)))
	assert.True(t, r.Contains(time.Date(2024, 1, 20, 23, 59, 59, 0, time.UTC)))
	assert.False(t, r.Contains(time.Date(2024, 1, 9, 23, 59, 59, 0, time.UTC)))
	assert.False(t, r.Contains(time.Date(2024, 1, 21, 0, 0, 0, 0, time.UTC)))
}

func TestDateRange_UnixBounds(t *testing.T) {
	r := NewDateRange("2024-01-01", "2024-01-02", testNow, 30)
	from, to := r.UnixBounds()

	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).Unix(), from)
	// End is inclusive: the upper bound is midnight after the last day.
	assert.Equal(t, time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC).Unix(), to)
}

func TestNormalizePeriod(t *testing.T) {
	assert.Equal(t, 7, NormalizePeriod(7, 30))
	assert.Equal(t, 30, NormalizePeriod(30, 30))
	assert.Equal(t, 90, NormalizePeriod(90, 30))
	assert.Equal(t, 30, NormalizePeriod(0, 30))
	assert.Equal(t, 30, NormalizePeriod(365, 30))
	assert.Equal(t, 30, NormalizePeriod(-7, 30))
}

func TestIsSupportedPeriod(t *testing.T) {
	for _, p := range SupportedPeriods {
		assert.True(t, IsSupportedPeriod(p))
	}
	assert.False(t, IsSupportedPeriod(14))
}

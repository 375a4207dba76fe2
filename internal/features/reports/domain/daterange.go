package domain

import (
	"time"
)

// dateLayout is the ISO calendar-date format accepted on the query string.
const dateLayout = "2006-01-02"

// SupportedPeriods are the trailing windows the chart-data endpoint accepts.
var SupportedPeriods = []int{7, 30, 90}

// DateRange is an inclusive calendar-day range at day granularity.
// Both bounds are UTC midnights.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// NewDateRange binds the optional start/end query values to a range.
// A missing bound, an unparseable date or start > end falls back to the
// default trailing window ending today. It never fails.
func NewDateRange(start, end string, now time.Time, defaultDays int) DateRange {
	fallback := TrailingRange(now, defaultDays)
	if start == "" || end == "" {
		return fallback
	}

	s, err := time.ParseInLocation(dateLayout, start, time.UTC)
	if err != nil {
		return fallback
	}
	e, err := time.ParseInLocation(dateLayout, end, time.UTC)
	if err != nil {
		return fallback
	}
	if s.After(e) {
		return fallback
	}
	return DateRange{Start: s, End: e}
}

// TrailingRange returns the window of the given number of days ending today.
func TrailingRange(now time.Time, days int) DateRange {
	if days < 1 {
		days = 1
	}
	today := Day(now)
	return DateRange{
		Start: today.AddDate(0, 0, -(days - 1)),
		End:   today,
	}
}

// Day truncates a timestamp to its UTC calendar day.
func Day(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Days returns the number of calendar days the range covers, inclusive.
func (r DateRange) Days() int {
	return int(r.End.Sub(r.Start).Hours()/24) + 1
}

// Contains reports whether the timestamp falls inside the range.
func (r DateRange) Contains(t time.Time) bool {
	d := Day(t)
	return !d.Before(r.Start) && !d.After(r.End)
}

// UnixBounds returns the half-open [from, to) unix-second bounds matching
// the inclusive day range. Orders are persisted with unix placed_at values,
// so range filters reduce to integer comparisons.
func (r DateRange) UnixBounds() (int64, int64) {
	return r.Start.Unix(), r.End.AddDate(0, 0, 1).Unix()
}

// StartString returns the ISO form of the range start.
func (r DateRange) StartString() string {
	return r.Start.Format(dateLayout)
}

// EndString returns the ISO form of the range end.
func (r DateRange) EndString() string {
	return r.End.Format(dateLayout)
}

// IsSupportedPeriod reports whether days is one of the period filters.
func IsSupportedPeriod(days int) bool {
	for _, p := range SupportedPeriods {
		if days == p {
			return true
		}
	}
	return false
}

// NormalizePeriod maps a requested period to a supported trailing window.
// Unsupported or missing values recover to the default rather than failing.
func NormalizePeriod(days, defaultDays int) int {
	if IsSupportedPeriod(days) {
		return days
	}
	return defaultDays
}

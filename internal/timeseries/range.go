// Package timeseries implements the normalization pipeline: resolving a
// requested display range to an upstream query window, trimming the raw
// series to the window, forward-filling calendar gaps, and deriving summary
// statistics.
package timeseries

import (
	"time"

	"github.com/guttosm/stockpulse/internal/domain/models"
)

// Recognized range codes. Anything else falls back to Range1M.
const (
	Range1W = "1W"
	Range1M = "1M"
	Range6M = "6M"
)

// Window is the resolved query window for a range code.
//
// Fields:
//   - Granularity: daily or weekly upstream aggregation.
//   - Cutoff: earliest calendar date included in the window (midnight, local).
//   - Today: the reference "today" used for both cutoff arithmetic and as the
//     end boundary of gap filling (midnight, local).
type Window struct {
	Granularity models.Granularity
	Cutoff      time.Time
	Today       time.Time
}

// Resolve maps a range code to its query window relative to now.
//
//   - 1W: daily samples, cutoff 7 calendar days back.
//   - 1M: daily samples, cutoff one true calendar month back.
//   - 6M: weekly samples, cutoff six true calendar months back (year
//     rollover handled by the month arithmetic).
//   - anything else: identical to 1M.
//
// Month subtraction clamps the day of month to the last valid day of the
// target month, so Mar 31 minus one month is Feb 28 (29 in leap years)
// rather than drifting into early March.
func Resolve(code string, now time.Time) Window {
	today := truncateToDate(now)

	switch code {
	case Range1W:
		return Window{
			Granularity: models.GranularityDaily,
			Cutoff:      today.AddDate(0, 0, -7),
			Today:       today,
		}
	case Range6M:
		return Window{
			Granularity: models.GranularityWeekly,
			Cutoff:      minusMonths(today, 6),
			Today:       today,
		}
	default:
		return Window{
			Granularity: models.GranularityDaily,
			Cutoff:      minusMonths(today, 1),
			Today:       today,
		}
	}
}

// minusMonths subtracts n calendar months from a date, clamping the day to
// the last valid day of the target month. time.AddDate is unsuitable here
// because it normalizes overflow forward (Mar 31 - 1 month = Mar 3).
func minusMonths(t time.Time, n int) time.Time {
	y, m, d := t.Date()

	month := int(m) - n
	for month <= 0 {
		month += 12
		y--
	}

	if last := daysIn(y, time.Month(month), t.Location()); d > last {
		d = last
	}
	return time.Date(y, time.Month(month), d, 0, 0, 0, 0, t.Location())
}

// daysIn returns the number of days in the given month. Day 0 of the next
// month is the last day of this one.
func daysIn(year int, month time.Month, loc *time.Location) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, loc).Day()
}

func truncateToDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

package timeseries

import (
	"sort"
	"time"

	"github.com/guttosm/stockpulse/internal/domain/models"
)

// dateLayout is the calendar-date format used for upstream series keys.
const dateLayout = "2006-01-02"

// Sample pairs a parsed calendar date with the raw sample reported for it.
type Sample struct {
	Date time.Time
	Raw  models.RawSample
}

// Filter trims a raw series to dates on or after the cutoff and returns the
// samples sorted ascending by date. Keys that do not parse as YYYY-MM-DD are
// skipped, never fatal. The cutoff's location is used when parsing keys so
// comparisons stay within one time zone.
//
// An empty result means the window holds no data; the caller decides whether
// that is a NoData condition.
func Filter(series models.RawSeries, cutoff time.Time) []Sample {
	out := make([]Sample, 0, len(series))
	for key, raw := range series {
		date, err := time.ParseInLocation(dateLayout, key, cutoff.Location())
		if err != nil {
			continue
		}
		if date.Before(cutoff) {
			continue
		}
		out = append(out, Sample{Date: date, Raw: raw})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out
}

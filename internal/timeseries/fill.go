package timeseries

import (
	"strconv"

	"github.com/guttosm/stockpulse/internal/domain/models"
)

// Fill walks every calendar day from the first observed sample through today
// inclusive and emits exactly one NormalizedPoint per day. Days with an
// observed sample emit its close and volume and update the carried value;
// days without one repeat the last carried value. Days before the first
// parseable observation emit nothing.
//
// The result is a step function holding the last traded value flat across
// weekends and holidays, which keeps the chart's day axis continuous.
func Fill(samples []Sample, window Window) []models.NormalizedPoint {
	if len(samples) == 0 {
		return nil
	}

	observed := make(map[string]models.RawSample, len(samples))
	for _, s := range samples {
		observed[s.Date.Format(dateLayout)] = s.Raw
	}

	span := int(window.Today.Sub(samples[0].Date).Hours()/24) + 1
	if span < 0 {
		span = 0
	}
	points := make([]models.NormalizedPoint, 0, span)

	var (
		lastPrice  float64
		lastVolume int64
		seen       bool
	)
	for day := samples[0].Date; !day.After(window.Today); day = day.AddDate(0, 0, 1) {
		if raw, ok := observed[day.Format(dateLayout)]; ok {
			// A sample with an unreadable close is treated like a gap day.
			if price, err := strconv.ParseFloat(raw.Close, 64); err == nil {
				lastPrice = price
				lastVolume = parseVolume(raw.Volume)
				seen = true
			}
		}
		if !seen {
			continue
		}

		points = append(points, models.NormalizedPoint{
			Timestamp: day.Unix(),
			Price:     lastPrice,
			Volume:    lastVolume,
		})
	}
	return points
}

// Passthrough converts filtered samples to points one-to-one without gap
// filling, used for the weekly (6M) granularity. Prices are rounded to two
// decimals; samples with an unreadable close are skipped.
func Passthrough(samples []Sample) []models.NormalizedPoint {
	points := make([]models.NormalizedPoint, 0, len(samples))
	for _, s := range samples {
		price, err := strconv.ParseFloat(s.Raw.Close, 64)
		if err != nil {
			continue
		}
		points = append(points, models.NormalizedPoint{
			Timestamp: s.Date.Unix(),
			Price:     round2(price),
			Volume:    parseVolume(s.Raw.Volume),
		})
	}
	return points
}

func parseVolume(s string) int64 {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil || v < 0 {
		return 0
	}
	return v
}

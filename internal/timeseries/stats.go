package timeseries

import (
	"math"
	"strconv"

	"github.com/guttosm/stockpulse/internal/domain/models"
)

// Stats are the derived summary figures for one normalized series.
type Stats struct {
	CurrentPrice  float64
	Change        float64
	PercentChange float64
	High          float64
	Low           float64
	Open          float64
}

// Derive computes summary statistics over the normalized points and the most
// recent raw sample of the filtered series.
//
// Rules:
//   - CurrentPrice is the last point's price (0 for an empty series, though
//     the pipeline rejects empty series before reaching here).
//   - Change and PercentChange are computed only when at least 2 points
//     exist; otherwise both are exactly 0. This avoids dividing by a first
//     price that a sparse series may not have.
//   - High, Low and Open come from the latest raw sample, each falling back
//     individually to CurrentPrice when absent or unparseable.
func Derive(points []models.NormalizedPoint, latest *models.RawSample) Stats {
	var st Stats
	if len(points) == 0 {
		return st
	}

	st.CurrentPrice = points[len(points)-1].Price
	if first := points[0].Price; len(points) >= 2 && first != 0 {
		st.Change = round2(st.CurrentPrice - first)
		st.PercentChange = round2(st.Change / first * 100)
	}

	st.High = st.CurrentPrice
	st.Low = st.CurrentPrice
	st.Open = st.CurrentPrice
	if latest != nil {
		st.High = parseOr(latest.High, st.CurrentPrice)
		st.Low = parseOr(latest.Low, st.CurrentPrice)
		st.Open = parseOr(latest.Open, st.CurrentPrice)
	}
	return st
}

func parseOr(s string, fallback float64) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fallback
	}
	return v
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

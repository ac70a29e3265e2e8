package models

// Granularity selects the upstream aggregation level for a time series query.
type Granularity string

const (
	// GranularityDaily requests one sample per trading day.
	GranularityDaily Granularity = "daily"
	// GranularityWeekly requests one sample per trading week.
	GranularityWeekly Granularity = "weekly"
)

// RawSample is one upstream-reported trading day (or week) exactly as the
// provider serializes it: all price fields are decimal strings and the
// volume is an integer string. Values are kept verbatim until the
// normalization pipeline parses them.
//
// Field keys follow the Alpha Vantage time-series format.
type RawSample struct {
	Open   string `json:"1. open"`
	High   string `json:"2. high"`
	Low    string `json:"3. low"`
	Close  string `json:"4. close"`
	Volume string `json:"5. volume"`
}

// RawSeries maps a calendar date string (YYYY-MM-DD) to the raw sample
// reported for that date. Keys with any other format are tolerated and
// skipped during filtering.
type RawSeries map[string]RawSample

// NormalizedPoint is one point of the bounded, gap-filled view of a series.
//
// Fields:
//   - Timestamp: epoch seconds for midnight (local time) of the calendar date.
//   - Price: closing price for the date, or the forward-filled last known close.
//   - Volume: traded volume for the date, or the forward-filled last known volume.
type NormalizedPoint struct {
	Timestamp int64
	Price     float64
	Volume    int64
}

// StockSummary is the normalized view of one symbol over the requested
// window, together with its derived statistics.
//
// Invariants:
//   - Points is non-empty whenever a StockSummary is produced.
//   - Points is strictly ascending by Timestamp with no duplicates.
//   - Change and PercentChange are exactly 0 when fewer than 2 points exist.
type StockSummary struct {
	Symbol        string
	Points        []NormalizedPoint
	CurrentPrice  float64
	Change        float64
	PercentChange float64
	High          float64
	Low           float64
	Open          float64
}

// Comparison holds the outcome of a batch retrieval: the summaries that
// resolved successfully plus the symbols that had to be skipped.
type Comparison struct {
	Stocks         []StockSummary
	InvalidSymbols []string
}

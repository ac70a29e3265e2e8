package dto

import "github.com/guttosm/stockpulse/internal/domain/models"

// StockDataResponse is the JSON body of GET /api/stock_data.
//
// Dates, Prices and Volumes are parallel arrays: index i describes the same
// calendar day in each. Dates are epoch seconds for local midnight of the
// day, strictly ascending.
type StockDataResponse struct {
	Symbol        string    `json:"symbol" example:"AAPL"`
	Dates         []int64   `json:"dates"`
	Prices        []float64 `json:"prices"`
	Volumes       []int64   `json:"volumes"`
	CurrentPrice  float64   `json:"current_price" example:"189.95"`
	Change        float64   `json:"change" example:"4.21"`
	PercentChange float64   `json:"percent_change" example:"2.27"`
	High          float64   `json:"high" example:"191.10"`
	Low           float64   `json:"low" example:"188.30"`
	Open          float64   `json:"open" example:"188.90"`
}

// NewStockDataResponse flattens a StockSummary into the single-symbol wire
// format.
func NewStockDataResponse(s models.StockSummary) StockDataResponse {
	dates, prices, volumes := splitPoints(s.Points)
	return StockDataResponse{
		Symbol:        s.Symbol,
		Dates:         dates,
		Prices:        prices,
		Volumes:       volumes,
		CurrentPrice:  s.CurrentPrice,
		Change:        s.Change,
		PercentChange: s.PercentChange,
		High:          s.High,
		Low:           s.Low,
		Open:          s.Open,
	}
}

// MultipleStocksRequest is the JSON body of POST /api/multiple_stocks.
type MultipleStocksRequest struct {
	Symbols []string `json:"symbols" example:"AAPL,MSFT"`
	Range   string   `json:"range" example:"1M"`
}

// StockEntry is one symbol's series inside a comparison response. Unlike the
// single-symbol endpoint it omits volumes and OHLC detail.
type StockEntry struct {
	Symbol        string    `json:"symbol" example:"AAPL"`
	Dates         []int64   `json:"dates"`
	Prices        []float64 `json:"prices"`
	CurrentPrice  float64   `json:"current_price" example:"189.95"`
	Change        float64   `json:"change" example:"4.21"`
	PercentChange float64   `json:"percent_change" example:"2.27"`
}

// MultipleStocksResponse is the JSON body of POST /api/multiple_stocks.
// InvalidSymbols lists symbols skipped due to per-symbol failures; Message
// carries an optional human-readable note (e.g. when a rate limit cut the
// batch short).
type MultipleStocksResponse struct {
	Stocks         []StockEntry `json:"stocks"`
	InvalidSymbols []string     `json:"invalid_symbols,omitempty"`
	Message        string       `json:"message,omitempty"`
}

// NewMultipleStocksResponse flattens a batch Comparison into the wire format.
func NewMultipleStocksResponse(cmp models.Comparison, message string) MultipleStocksResponse {
	stocks := make([]StockEntry, 0, len(cmp.Stocks))
	for _, s := range cmp.Stocks {
		dates, prices, _ := splitPoints(s.Points)
		stocks = append(stocks, StockEntry{
			Symbol:        s.Symbol,
			Dates:         dates,
			Prices:        prices,
			CurrentPrice:  s.CurrentPrice,
			Change:        s.Change,
			PercentChange: s.PercentChange,
		})
	}
	return MultipleStocksResponse{
		Stocks:         stocks,
		InvalidSymbols: cmp.InvalidSymbols,
		Message:        message,
	}
}

func splitPoints(points []models.NormalizedPoint) (dates []int64, prices []float64, volumes []int64) {
	dates = make([]int64, 0, len(points))
	prices = make([]float64, 0, len(points))
	volumes = make([]int64, 0, len(points))
	for _, p := range points {
		dates = append(dates, p.Timestamp)
		prices = append(prices, p.Price)
		volumes = append(volumes, p.Volume)
	}
	return dates, prices, volumes
}

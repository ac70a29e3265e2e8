package service

import (
	"context"
	"fmt"
	"time"

	"github.com/guttosm/stockpulse/internal/domain/apperr"
	"github.com/guttosm/stockpulse/internal/domain/models"
	"github.com/guttosm/stockpulse/internal/timeseries"
)

// SeriesFetcher is the upstream dependency of the pipeline, satisfied by
// *marketdata.Client.
type SeriesFetcher interface {
	FetchSeries(ctx context.Context, symbol string, granularity models.Granularity) (models.RawSeries, error)
}

// StockService defines the business logic for retrieving normalized stock
// series and summary statistics.
type StockService interface {
	// GetStock runs the full pipeline for one symbol: fetch, trim to the
	// range window, gap-fill (daily ranges only) and derive statistics.
	GetStock(ctx context.Context, symbol, rangeCode string) (*models.StockSummary, error)
	// GetStocks processes symbols sequentially. Per-symbol failures are
	// collected into the comparison's InvalidSymbols and the loop continues,
	// except for a rate-limit failure, which aborts the remaining batch and
	// is returned alongside whatever was already collected.
	GetStocks(ctx context.Context, symbols []string, rangeCode string) (*models.Comparison, error)
}

type stockService struct {
	fetcher SeriesFetcher
}

// timeNow is an indirection for unit testing; defaults to time.Now.
var timeNow = time.Now

// NewStockService constructs a StockService backed by the given fetcher.
func NewStockService(fetcher SeriesFetcher) StockService {
	return &stockService{fetcher: fetcher}
}

func (s *stockService) GetStock(ctx context.Context, symbol, rangeCode string) (*models.StockSummary, error) {
	window := timeseries.Resolve(rangeCode, timeNow())

	series, err := s.fetcher.FetchSeries(ctx, symbol, window.Granularity)
	if err != nil {
		return nil, err
	}

	samples := timeseries.Filter(series, window.Cutoff)
	if len(samples) == 0 {
		return nil, apperr.New(apperr.KindNoData, fmt.Sprintf("no data available for %s", symbol))
	}

	var points []models.NormalizedPoint
	if window.Granularity == models.GranularityDaily {
		points = timeseries.Fill(samples, window)
	} else {
		points = timeseries.Passthrough(samples)
	}
	if len(points) == 0 {
		return nil, apperr.New(apperr.KindNoData, fmt.Sprintf("no data available for %s", symbol))
	}

	stats := timeseries.Derive(points, &samples[len(samples)-1].Raw)

	return &models.StockSummary{
		Symbol:        symbol,
		Points:        points,
		CurrentPrice:  stats.CurrentPrice,
		Change:        stats.Change,
		PercentChange: stats.PercentChange,
		High:          stats.High,
		Low:           stats.Low,
		Open:          stats.Open,
	}, nil
}

func (s *stockService) GetStocks(ctx context.Context, symbols []string, rangeCode string) (*models.Comparison, error) {
	cmp := &models.Comparison{Stocks: make([]models.StockSummary, 0, len(symbols))}

	for _, symbol := range symbols {
		summary, err := s.GetStock(ctx, symbol, rangeCode)
		if err != nil {
			// A rate limit affects every remaining call; stop the batch and
			// hand back what was collected so far.
			if apperr.KindOf(err) == apperr.KindRateLimited {
				return cmp, err
			}
			cmp.InvalidSymbols = append(cmp.InvalidSymbols, symbol)
			continue
		}
		cmp.Stocks = append(cmp.Stocks, *summary)
	}
	return cmp, nil
}

// Package marketdata implements the Alpha Vantage upstream client: one
// bounded-timeout call per request, with the raw response classified into
// the application's error taxonomy before it reaches the pipeline.
package marketdata

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/guttosm/stockpulse/internal/domain/apperr"
	"github.com/guttosm/stockpulse/internal/domain/models"
)

// requestTimeout bounds every upstream call so request handlers stay
// responsive. Never retried.
const requestTimeout = 15 * time.Second

// HTTPClient describes the HTTP client dependency, satisfied by
// *http.Client and replaceable in tests.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client queries the Alpha Vantage time-series API.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient HTTPClient
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(httpClient HTTPClient) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// NewClient creates an Alpha Vantage client. The default underlying HTTP
// client carries the fixed request timeout.
func NewClient(baseURL, apiKey string, options ...Option) *Client {
	c := &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: requestTimeout},
	}
	for _, option := range options {
		option(c)
	}
	return c
}

// CloseIdleConnections releases idle keep-alive connections; used as the
// application cleanup hook on shutdown.
func (c *Client) CloseIdleConnections() {
	if hc, ok := c.httpClient.(*http.Client); ok {
		hc.CloseIdleConnections()
	}
}

// FetchSeries issues one time-series query for the symbol at the given
// granularity and classifies the outcome:
//
//   - success: the parsed date-to-sample series is returned.
//   - upstream error marker: apperr.KindInvalidSymbol.
//   - quota marker, or informational text mentioning a rate limit
//     (case-insensitive): apperr.KindRateLimited.
//   - parseable response without a time-series key, or an empty series:
//     apperr.KindNoData.
//   - network/timeout or non-200 status: apperr.KindTransport.
func (c *Client) FetchSeries(ctx context.Context, symbol string, granularity models.Granularity) (models.RawSeries, error) {
	req, err := c.newRequest(ctx, symbol, granularity)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "internal server error", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindTransport, "failed to fetch stock data", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, apperr.New(apperr.KindTransport, fmt.Sprintf("upstream returned status %d", resp.StatusCode))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindTransport, "failed to read upstream response", err)
	}

	return classify(body, symbol)
}

func (c *Client) newRequest(ctx context.Context, symbol string, granularity models.Granularity) (*http.Request, error) {
	fn := "TIME_SERIES_DAILY"
	if granularity == models.GranularityWeekly {
		fn = "TIME_SERIES_WEEKLY"
	}

	query := url.Values{}
	query.Set("function", fn)
	query.Set("symbol", symbol)
	query.Set("apikey", c.apiKey)
	query.Set("outputsize", "compact")
	query.Set("datatype", "json")

	return http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+query.Encode(), nil)
}

// envelope captures the top-level markers Alpha Vantage uses to report
// errors and quota conditions alongside (or instead of) data.
type envelope struct {
	ErrorMessage string `json:"Error Message"`
	Note         string `json:"Note"`
	Information  string `json:"Information"`
}

// classify inspects the raw payload and either extracts the time series or
// converts the upstream condition into a tagged error.
func classify(body []byte, symbol string) (models.RawSeries, error) {
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, apperr.Wrap(apperr.KindTransport, "invalid upstream response", err)
	}

	switch {
	case env.ErrorMessage != "":
		return nil, apperr.New(apperr.KindInvalidSymbol, fmt.Sprintf("no data available for %s", symbol))
	case env.Note != "":
		return nil, apperr.New(apperr.KindRateLimited, "stock data API rate limit exceeded")
	case strings.Contains(strings.ToLower(env.Information), "rate limit"):
		return nil, apperr.New(apperr.KindRateLimited, "stock data API rate limit exceeded")
	}

	var sections map[string]json.RawMessage
	if err := json.Unmarshal(body, &sections); err != nil {
		return nil, apperr.Wrap(apperr.KindTransport, "invalid upstream response", err)
	}

	for key, raw := range sections {
		if !strings.Contains(key, "Time Series") {
			continue
		}
		var series models.RawSeries
		if err := json.Unmarshal(raw, &series); err != nil {
			return nil, apperr.Wrap(apperr.KindTransport, "invalid upstream time series", err)
		}
		if len(series) == 0 {
			break
		}
		return series, nil
	}

	return nil, apperr.New(apperr.KindNoData, fmt.Sprintf("no data available for %s", symbol))
}

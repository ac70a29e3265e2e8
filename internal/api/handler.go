package api

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/stockpulse/internal/domain/apperr"
	"github.com/guttosm/stockpulse/internal/domain/dto"
	"github.com/guttosm/stockpulse/internal/service"
)

// maxBatchSymbols is the upper bound on symbols per comparison request.
const maxBatchSymbols = 5

// Handler provides HTTP handlers for the stock data endpoints.
//
// Responsibilities:
//   - Validate incoming request parameters
//   - Invoke the stock service pipeline
//   - Map pipeline error kinds to HTTP status codes
//   - Return structured JSON responses
type Handler struct {
	svc service.StockService
}

// NewHandler constructs a new Handler instance.
//
// Parameters:
//   - svc (service.StockService): The pipeline dependency used to resolve
//     stock data.
//
// Returns:
//   - *Handler: A handler ready to be registered with the router.
func NewHandler(svc service.StockService) *Handler {
	return &Handler{svc: svc}
}

// GetStockData handles GET /api/stock_data requests.
//
// Query Parameters:
//   - symbol (string, required): Stock ticker symbol (e.g., "AAPL").
//   - range (string, optional): Display window, one of 1W, 1M, 6M.
//     Unrecognized values behave like 1M. Default: 1M.
//
// GetStockData godoc
// @Summary      Get normalized price history for one symbol
// @Description  Returns the gap-filled price/volume series for the requested window plus summary statistics
// @Tags         stocks
// @Produce      json
// @Param        symbol  query     string  true   "Stock ticker" example(AAPL)
// @Param        range   query     string  false  "Display window (1W, 1M or 6M)" example(1M)
// @Success      200     {object}  dto.StockDataResponse  "Success"
// @Failure      400     {object}  dto.ErrorResponse      "Missing symbol or no data"
// @Failure      429     {object}  dto.ErrorResponse      "Upstream rate limit exceeded"
// @Failure      500     {object}  dto.ErrorResponse      "Transport or internal failure"
// @Router       /api/stock_data [get]
func (h *Handler) GetStockData(c *gin.Context) {
	symbol := strings.ToUpper(strings.TrimSpace(c.Query("symbol")))
	if symbol == "" {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("stock symbol is required", nil))
		return
	}
	rangeCode := c.DefaultQuery("range", "1M")

	summary, err := h.svc.GetStock(c.Request.Context(), symbol, rangeCode)
	if err != nil {
		status, message := statusFor(err)
		c.JSON(status, dto.NewErrorResponse(message, nil))
		return
	}

	c.JSON(http.StatusOK, dto.NewStockDataResponse(*summary))
}

// GetMultipleStocks handles POST /api/multiple_stocks requests.
//
// Body:
//   - symbols ([]string, required): Up to 5 distinct ticker symbols.
//     Duplicates (case-insensitive, after trimming) are rejected.
//   - range (string, optional): Display window, as in GetStockData.
//
// Symbols are processed sequentially; per-symbol failures are reported in
// invalid_symbols while the rest of the batch continues. A rate-limit
// condition aborts the remaining batch and returns 429 together with the
// results collected so far.
//
// GetMultipleStocks godoc
// @Summary      Compare price history for up to five symbols
// @Description  Returns normalized series for each valid symbol; skipped symbols are listed in invalid_symbols
// @Tags         stocks
// @Accept       json
// @Produce      json
// @Param        request  body      dto.MultipleStocksRequest   true  "Symbols and display window"
// @Success      200      {object}  dto.MultipleStocksResponse  "Success"
// @Failure      400      {object}  dto.ErrorResponse           "Empty, oversized or duplicated symbol list"
// @Failure      429      {object}  dto.MultipleStocksResponse  "Rate limit hit mid-batch; partial results included"
// @Failure      500      {object}  dto.ErrorResponse           "Transport or internal failure"
// @Router       /api/multiple_stocks [post]
func (h *Handler) GetMultipleStocks(c *gin.Context) {
	var req dto.MultipleStocksRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid request body", err))
		return
	}

	symbols, err := normalizeSymbols(req.Symbols)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(apperr.MessageOf(err, "invalid symbols"), nil))
		return
	}
	rangeCode := req.Range
	if rangeCode == "" {
		rangeCode = "1M"
	}

	cmp, err := h.svc.GetStocks(c.Request.Context(), symbols, rangeCode)
	if err != nil {
		if apperr.KindOf(err) == apperr.KindRateLimited {
			// Partial results are still useful to the caller.
			c.JSON(http.StatusTooManyRequests, dto.NewMultipleStocksResponse(*cmp, apperr.MessageOf(err, "rate limit exceeded")))
			return
		}
		status, message := statusFor(err)
		c.JSON(status, dto.NewErrorResponse(message, nil))
		return
	}

	var message string
	if len(cmp.InvalidSymbols) > 0 {
		message = fmt.Sprintf("no data available for: %s", strings.Join(cmp.InvalidSymbols, ", "))
	}
	c.JSON(http.StatusOK, dto.NewMultipleStocksResponse(*cmp, message))
}

// normalizeSymbols trims and upper-cases the requested symbols and validates
// the batch constraints.
func normalizeSymbols(symbols []string) ([]string, error) {
	if len(symbols) == 0 {
		return nil, apperr.New(apperr.KindInvalidInput, "no symbols provided")
	}
	if len(symbols) > maxBatchSymbols {
		return nil, apperr.New(apperr.KindInvalidInput, fmt.Sprintf("maximum %d stocks can be compared", maxBatchSymbols))
	}

	out := make([]string, 0, len(symbols))
	seen := make(map[string]struct{}, len(symbols))
	for _, s := range symbols {
		symbol := strings.ToUpper(strings.TrimSpace(s))
		if symbol == "" {
			return nil, apperr.New(apperr.KindInvalidInput, "empty symbol provided")
		}
		if _, ok := seen[symbol]; ok {
			return nil, apperr.New(apperr.KindInvalidInput, fmt.Sprintf("duplicate symbol: %s", symbol))
		}
		seen[symbol] = struct{}{}
		out = append(out, symbol)
	}
	return out, nil
}

// statusFor maps a pipeline error to the HTTP status code and client-safe
// message of the response. Internal and transport faults never expose
// underlying error text.
func statusFor(err error) (int, string) {
	switch apperr.KindOf(err) {
	case apperr.KindInvalidInput, apperr.KindInvalidSymbol, apperr.KindNoData:
		return http.StatusBadRequest, apperr.MessageOf(err, "bad request")
	case apperr.KindRateLimited:
		return http.StatusTooManyRequests, apperr.MessageOf(err, "rate limit exceeded")
	case apperr.KindTransport:
		return http.StatusInternalServerError, "failed to fetch stock data"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

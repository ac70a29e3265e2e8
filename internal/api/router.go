package api

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/guttosm/stockpulse/internal/middleware"
)

// NewRouter creates a Gin engine with routes configured.
// It receives a Handler instance with all business logic already injected.
//
// Responsibilities:
//   - Registers global middlewares (RequestID, Logger, Recovery, RateLimiter).
//   - Adds request timeout handling (20 seconds, above the 15s upstream bound).
//   - Mounts Swagger docs (/swagger/*any).
//   - Serves the chart UI at / when indexFile is non-empty.
//   - Configures the stock data API routes (/api).
//
// Note:
//   - Health and readiness endpoints (/healthz, /readyz) are registered in
//     app.InitializeApp().
//
// Parameters:
//   - handler (*Handler): The HTTP handler with business logic.
//   - indexFile (string): Path of the single-page chart UI, "" to disable.
//
// Returns:
//   - *gin.Engine: Configured Gin router.
func NewRouter(handler *Handler, indexFile string) *gin.Engine {
	router := gin.New()

	// ─── Middlewares ───────────────────────────────
	router.Use(
		middleware.RequestID(),
		middleware.RequestLogger(),
		middleware.RecoveryMiddleware(),
		middleware.ErrorHandler,
		middleware.RateLimiter(),
	)

	// ─── Timeout ──────────────────────────────────
	router.Use(func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 20*time.Second)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	})

	// ─── Swagger ──────────────────────────────────
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// ─── Chart UI ─────────────────────────────────
	if indexFile != "" {
		router.StaticFile("/", indexFile)
	}

	// ─── Stock data API ───────────────────────────
	api := router.Group("/api")
	{
		api.GET("/stock_data", handler.GetStockData)
		api.POST("/multiple_stocks", handler.GetMultipleStocks)
	}

	return router
}

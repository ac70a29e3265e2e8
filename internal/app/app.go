package app

import (
	"errors"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/stockpulse/config"
	"github.com/guttosm/stockpulse/internal/api"
	"github.com/guttosm/stockpulse/internal/marketdata"
	"github.com/guttosm/stockpulse/internal/service"
)

// InitializeApp sets up all application dependencies and returns
// a fully configured Gin router, a cleanup function for graceful shutdown,
// and any error encountered during initialization.
//
// Responsibilities:
//   - Creates the Alpha Vantage upstream client.
//   - Initializes the service layer (normalization pipeline).
//   - Creates the HTTP handler layer to handle requests.
//   - Configures the Gin router with all API routes and the chart UI.
//   - Registers health and readiness probes.
//   - Provides a cleanup function to release idle upstream connections.
//
// Parameters:
//   - cfg (config.Config): The validated application configuration.
//
// Returns:
//   - *gin.Engine: the configured Gin HTTP router.
//   - func(): cleanup function to be executed on shutdown.
//   - error: any initialization error that occurred.
func InitializeApp(cfg config.Config) (*gin.Engine, func(), error) {
	if cfg.AlphaVantage.APIKey == "" {
		return nil, nil, errors.New("alpha vantage API key is not configured")
	}

	// Upstream market-data client (single bounded call per request)
	client := marketdata.NewClient(cfg.AlphaVantage.BaseURL, cfg.AlphaVantage.APIKey)

	// Service layer (normalization pipeline + batch orchestration)
	svc := service.NewStockService(client)

	// HTTP handler layer (pipeline outcomes to HTTP mapping)
	handler := api.NewHandler(svc)

	// The chart UI is optional; skip the route when the file is absent so
	// API-only deployments still start.
	indexFile := cfg.Server.WebIndex
	if _, err := os.Stat(indexFile); err != nil {
		indexFile = ""
	}

	// Setup Gin router with routes
	router := api.NewRouter(handler, indexFile)

	// Register health and readiness probes
	healthHandler := api.NewHealthHandler(func() error {
		if cfg.AlphaVantage.APIKey == "" || cfg.AlphaVantage.BaseURL == "" {
			return errors.New("upstream API not configured")
		}
		return nil
	})
	healthHandler.Register(router)

	// Cleanup resources on shutdown
	cleanup := func() {
		client.CloseIdleConnections()
	}

	return router, cleanup, nil
}

package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds the full application configuration loaded from environment
// variables or a .env file.
//
// It is constructed once at startup by Load() and passed explicitly into the
// application wiring; nothing mutates it afterwards.
//
// Example YAML/ENV equivalent:
//
//	SERVER_PORT=8080
//	WEB_INDEX=./web/index.html
//	ALPHA_VANTAGE_API_KEY=secret
//	ALPHA_VANTAGE_BASE_URL=https://www.alphavantage.co/query
type Config struct {
	Server       ServerConfig       // HTTP server configuration
	AlphaVantage AlphaVantageConfig // Upstream market-data API settings
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port     string // The TCP port the HTTP server will listen on (e.g., "8080")
	WebIndex string // Path of the single-page chart UI served at /
}

// AlphaVantageConfig defines how to reach the Alpha Vantage API.
//
// Fields:
//   - APIKey: the account key sent with every query. Required; startup fails
//     without it.
//   - BaseURL: the query endpoint (default https://www.alphavantage.co/query).
type AlphaVantageConfig struct {
	APIKey  string
	BaseURL string
}

// Load reads the configuration from a .env file (if present) and environment
// variables.
//
// Precedence (from lowest to highest):
//  1. Defaults set in this function.
//  2. Values from .env file (if present).
//  3. Environment variables.
//
// Returns an error naming the missing required variables, so the caller can
// fail fast before serving traffic.
func Load() (Config, error) {
	// Default values
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("WEB_INDEX", "./web/index.html")
	viper.SetDefault("ALPHA_VANTAGE_BASE_URL", "https://www.alphavantage.co/query")

	// Optionally read from .env if present (common in local dev)
	viper.SetConfigFile(".env")
	_ = viper.ReadInConfig() // ignore error if no .env

	// Read environment variables automatically
	viper.AutomaticEnv()

	cfg := Config{
		Server: ServerConfig{
			Port:     viper.GetString("SERVER_PORT"),
			WebIndex: viper.GetString("WEB_INDEX"),
		},
		AlphaVantage: AlphaVantageConfig{
			APIKey:  viper.GetString("ALPHA_VANTAGE_API_KEY"),
			BaseURL: viper.GetString("ALPHA_VANTAGE_BASE_URL"),
		},
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// validate collects the required variables that are missing and reports them
// in one error.
func (c Config) validate() error {
	var missing []string

	if c.Server.Port == "" {
		missing = append(missing, "SERVER_PORT")
	}
	if c.AlphaVantage.APIKey == "" {
		missing = append(missing, "ALPHA_VANTAGE_API_KEY")
	}
	if c.AlphaVantage.BaseURL == "" {
		missing = append(missing, "ALPHA_VANTAGE_BASE_URL")
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}
	return nil
}

package config

import (
	"strings"
	"testing"
)

// TestLoad_Defaults verifies that defaults are applied when only the
// required key is provided.
func TestLoad_Defaults(t *testing.T) {
	t.Setenv("ALPHA_VANTAGE_API_KEY", "test-key")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != "8080" {
		t.Fatalf("expected default SERVER_PORT=8080, got %q", cfg.Server.Port)
	}
	if cfg.Server.WebIndex != "./web/index.html" {
		t.Fatalf("unexpected default WEB_INDEX: %q", cfg.Server.WebIndex)
	}
	if cfg.AlphaVantage.BaseURL != "https://www.alphavantage.co/query" {
		t.Fatalf("unexpected default base URL: %q", cfg.AlphaVantage.BaseURL)
	}
	if cfg.AlphaVantage.APIKey != "test-key" {
		t.Fatalf("api key not read from env: %q", cfg.AlphaVantage.APIKey)
	}
}

// TestLoad_Overrides verifies env variables take precedence over defaults.
func TestLoad_Overrides(t *testing.T) {
	t.Setenv("ALPHA_VANTAGE_API_KEY", "k")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("ALPHA_VANTAGE_BASE_URL", "http://localhost:1234/query")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != "9090" || cfg.AlphaVantage.BaseURL != "http://localhost:1234/query" {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
}

// TestLoad_MissingAPIKey asserts that startup fails fast without the key.
func TestLoad_MissingAPIKey(t *testing.T) {
	t.Setenv("ALPHA_VANTAGE_API_KEY", "")

	_, err := Load()
	if err == nil {
		t.Fatalf("expected error for missing API key")
	}
	if !strings.Contains(err.Error(), "ALPHA_VANTAGE_API_KEY") {
		t.Fatalf("error should name the missing variable: %v", err)
	}
}

package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	tests := []struct {
		name string
		got  any
		want any
	}{
		{"StatementsBaseURL", cfg.StatementsBaseURL, "https://stockanalysis.com"},
		{"QuoteBaseURL", cfg.QuoteBaseURL, "https://query1.finance.yahoo.com"},
		{"FetchAttempts", cfg.FetchAttempts, 3},
		{"RetryWait", cfg.RetryWait, 2 * time.Second},
		{"RequestTimeout", cfg.RequestTimeout, 10 * time.Second},
		{"GrowthThreshold", cfg.GrowthThreshold, 25.0},
		{"InclusiveThreshold", cfg.InclusiveThreshold, false},
		{"StatementsRatePerMinute", cfg.StatementsRatePerMinute, 25.0},
		{"QuotesRatePerMinute", cfg.QuotesRatePerMinute, 60.0},
		{"Workers", cfg.Workers, 1},
		{"SymbolsFile", cfg.SymbolsFile, "symbols.txt"},
		{"ReportDir", cfg.ReportDir, "."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
			}
		})
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	envVars := map[string]string{
		"STATEMENTS_BASE_URL": "http://localhost:8080",
		"QUOTE_BASE_URL":      "http://localhost:8081",
		"FETCH_ATTEMPTS":      "5",
		"RETRY_WAIT":          "100ms",
		"GROWTH_THRESHOLD":    "30",
		"INCLUSIVE_THRESHOLD": "true",
		"WORKERS":             "4",
		"SYMBOLS_FILE":        "watchlist.txt",
	}
	for key, value := range envVars {
		t.Setenv(key, value)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	if cfg.StatementsBaseURL != "http://localhost:8080" {
		t.Errorf("StatementsBaseURL = %q, want %q", cfg.StatementsBaseURL, "http://localhost:8080")
	}
	if cfg.QuoteBaseURL != "http://localhost:8081" {
		t.Errorf("QuoteBaseURL = %q, want %q", cfg.QuoteBaseURL, "http://localhost:8081")
	}
	if cfg.FetchAttempts != 5 {
		t.Errorf("FetchAttempts = %d, want 5", cfg.FetchAttempts)
	}
	if cfg.RetryWait != 100*time.Millisecond {
		t.Errorf("RetryWait = %v, want 100ms", cfg.RetryWait)
	}
	if cfg.GrowthThreshold != 30 {
		t.Errorf("GrowthThreshold = %v, want 30", cfg.GrowthThreshold)
	}
	if !cfg.InclusiveThreshold {
		t.Error("InclusiveThreshold = false, want true")
	}
	if cfg.Workers != 4 {
		t.Errorf("Workers = %d, want 4", cfg.Workers)
	}
	if cfg.SymbolsFile != "watchlist.txt" {
		t.Errorf("SymbolsFile = %q, want %q", cfg.SymbolsFile, "watchlist.txt")
	}
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"zero attempts", "FETCH_ATTEMPTS", "0"},
		{"zero workers", "WORKERS", "0"},
		{"negative workers", "WORKERS", "-2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			if _, err := Load(); err == nil {
				t.Errorf("Load() with %s=%s expected error, got nil", tt.key, tt.value)
			}
		})
	}
}

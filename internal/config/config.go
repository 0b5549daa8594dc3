package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the screener.
type Config struct {
	// Base URLs for external hosts (configurable for testing)
	StatementsBaseURL string `mapstructure:"statements_base_url"`
	QuoteBaseURL      string `mapstructure:"quote_base_url"`

	// Fetch retry policy
	FetchAttempts  int           `mapstructure:"fetch_attempts"`
	RetryWait      time.Duration `mapstructure:"retry_wait"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`

	// Screening criteria
	GrowthThreshold    float64 `mapstructure:"growth_threshold"`
	InclusiveThreshold bool    `mapstructure:"inclusive_threshold"`

	// Request pacing, requests per minute per host
	StatementsRatePerMinute float64 `mapstructure:"statements_rate_per_minute"`
	QuotesRatePerMinute     float64 `mapstructure:"quotes_rate_per_minute"`

	// Concurrency: tickers screened at once. 1 = sequential.
	Workers int `mapstructure:"workers"`

	// Inputs and outputs
	SymbolsFile string `mapstructure:"symbols_file"`
	ReportDir   string `mapstructure:"report_dir"`

	// Optional override for the client-identity (User-Agent) pool
	UserAgents []string `mapstructure:"user_agents"`
}

// Load reads configuration from environment variables and an optional
// config file. Environment variables take precedence over config file
// values. Every key has a default; nothing is required.
func Load() (*Config, error) {
	v := viper.New()

	v.AutomaticEnv()

	v.SetDefault("statements_base_url", "https://stockanalysis.com")
	v.SetDefault("quote_base_url", "https://query1.finance.yahoo.com")
	v.SetDefault("fetch_attempts", 3)
	v.SetDefault("retry_wait", "2s")
	v.SetDefault("request_timeout", "10s")
	v.SetDefault("growth_threshold", 25.0)
	v.SetDefault("inclusive_threshold", false)
	v.SetDefault("statements_rate_per_minute", 25.0)
	v.SetDefault("quotes_rate_per_minute", 60.0)
	v.SetDefault("workers", 1)
	v.SetDefault("symbols_file", "symbols.txt")
	v.SetDefault("report_dir", ".")

	// Optionally read from config file if it exists
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.canslimscreener")
	_ = v.ReadInConfig()

	v.BindEnv("statements_base_url", "STATEMENTS_BASE_URL")
	v.BindEnv("quote_base_url", "QUOTE_BASE_URL")
	v.BindEnv("fetch_attempts", "FETCH_ATTEMPTS")
	v.BindEnv("retry_wait", "RETRY_WAIT")
	v.BindEnv("request_timeout", "REQUEST_TIMEOUT")
	v.BindEnv("growth_threshold", "GROWTH_THRESHOLD")
	v.BindEnv("inclusive_threshold", "INCLUSIVE_THRESHOLD")
	v.BindEnv("statements_rate_per_minute", "STATEMENTS_RATE_PER_MINUTE")
	v.BindEnv("quotes_rate_per_minute", "QUOTES_RATE_PER_MINUTE")
	v.BindEnv("workers", "WORKERS")
	v.BindEnv("symbols_file", "SYMBOLS_FILE")
	v.BindEnv("report_dir", "REPORT_DIR")

	config := &Config{}
	if err := v.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if config.FetchAttempts < 1 {
		return nil, fmt.Errorf("fetch_attempts must be at least 1, got %d", config.FetchAttempts)
	}
	if config.Workers < 1 {
		return nil, fmt.Errorf("workers must be at least 1, got %d", config.Workers)
	}
	if config.SymbolsFile == "" {
		return nil, fmt.Errorf("symbols_file must not be empty")
	}

	return config, nil
}

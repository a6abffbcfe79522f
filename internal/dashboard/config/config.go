package config

import (
	"fmt"
	"time"

	"golang-news-volatility/pkg/config"

	"github.com/go-playground/validator/v10"
)

// News holds the configuration for the Google News RSS source.
type News struct {
	BaseURL             string        `mapstructure:"base_url" default:"https://news.google.com/rss/search" validate:"required,url"`
	Language            string        `mapstructure:"language" default:"en-US"`
	Country             string        `mapstructure:"country" default:"US"`
	Edition             string        `mapstructure:"edition" default:"US:en"`
	MaxResults          int           `mapstructure:"max_results" default:"100" validate:"gt=0"`
	MaxRequestPerMinute int           `mapstructure:"max_request_per_minute" default:"30" validate:"gt=0"`
	Timeout             time.Duration `mapstructure:"timeout" default:"15s" validate:"gt=0"`
	TimeZone            string        `mapstructure:"time_zone" default:"UTC"`
	StripPublisher      bool          `mapstructure:"strip_publisher" default:"true"`
}

// MarketData holds the configuration for the Yahoo Finance chart API.
type MarketData struct {
	BaseURL             string        `mapstructure:"base_url" default:"https://query1.finance.yahoo.com/v8/finance/chart" validate:"required,url"`
	Symbol              string        `mapstructure:"symbol" default:"^GSPC" validate:"required"`
	MaxRequestPerMinute int           `mapstructure:"max_request_per_minute" default:"30" validate:"gt=0"`
	Timeout             time.Duration `mapstructure:"timeout" default:"15s" validate:"gt=0"`
}

// Duplicate holds the near-duplicate headline settings.
type Duplicate struct {
	Threshold float64 `mapstructure:"threshold" default:"80" validate:"gte=0,lte=100"`
	Metric    string  `mapstructure:"metric" default:"token_sort_ratio" validate:"oneof=ratio token_sort_ratio"`
}

// Volatility holds the rolling volatility settings.
type Volatility struct {
	Window     int    `mapstructure:"window" default:"5" validate:"gte=2"`
	Estimator  string `mapstructure:"estimator" default:"population" validate:"oneof=sample population"`
	ReturnType string `mapstructure:"return_type" default:"simple" validate:"oneof=simple log"`
}

// Dashboard holds presentation settings.
type Dashboard struct {
	DefaultKeyword   string `mapstructure:"default_keyword" default:"stock market" validate:"required"`
	DefaultRangeDays int    `mapstructure:"default_range_days" default:"30" validate:"gt=0"`
	JoinMode         string `mapstructure:"join_mode" default:"outer" validate:"oneof=inner outer"`
	ChartWidth       string `mapstructure:"chart_width" default:"1000px"`
	ChartHeight      string `mapstructure:"chart_height" default:"500px"`
	// ChartAssetsHost serves the echarts scripts; empty uses the go-echarts CDN.
	ChartAssetsHost  string `mapstructure:"chart_assets_host"`
	TimeZone         string `mapstructure:"time_zone" default:"UTC"`
}

// Config holds the full configuration for the dashboard service.
type Config struct {
	App        config.App     `mapstructure:"app"`
	Logger     config.Logger  `mapstructure:"logger"`
	API        config.API     `mapstructure:"api"`
	Metrics    config.Metrics `mapstructure:"metrics"`
	News       News           `mapstructure:"news"`
	MarketData MarketData     `mapstructure:"market_data"`
	Duplicate  Duplicate      `mapstructure:"duplicate"`
	Volatility Volatility     `mapstructure:"volatility"`
	Dashboard  Dashboard      `mapstructure:"dashboard"`
}

// Load loads the dashboard configuration from the given path and validates it.
func Load(path string) (*Config, error) {
	var cfg Config
	if err := config.Load(path, &cfg); err != nil {
		return nil, err
	}
	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

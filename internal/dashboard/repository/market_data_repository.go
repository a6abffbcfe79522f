package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"sort"
	"time"

	"golang-news-volatility/internal/dashboard/config"
	"golang-news-volatility/internal/dashboard/dto"
	"golang-news-volatility/internal/entity"
	"golang-news-volatility/pkg/common"
	"golang-news-volatility/pkg/logger"
	"golang-news-volatility/pkg/utils"

	"cloud.google.com/go/civil"
)

// MarketDataRepository fetches daily closing prices for a ticker or index symbol.
type MarketDataRepository interface {
	FetchDailyCloses(ctx context.Context, symbol string, start, end civil.Date) ([]entity.PriceBar, error)
}

type yahooFinanceRepository struct {
	cfg    config.MarketData
	log    *logger.Logger
	client *upstreamClient
}

// NewYahooFinanceRepository creates a MarketDataRepository backed by the Yahoo Finance chart API.
func NewYahooFinanceRepository(cfg *config.Config, log *logger.Logger) MarketDataRepository {
	return &yahooFinanceRepository{
		cfg:    cfg.MarketData,
		log:    log,
		client: newUpstreamClient(common.SourceMarketData, log, cfg.MarketData.Timeout, cfg.MarketData.MaxRequestPerMinute),
	}
}

func (r *yahooFinanceRepository) FetchDailyCloses(ctx context.Context, symbol string, start, end civil.Date) ([]entity.PriceBar, error) {
	if end.Before(start) {
		return nil, ErrInvalidDateRange
	}

	query := url.Values{}
	query.Set("period1", fmt.Sprint(utils.StartOfDayUnix(start)))
	query.Set("period2", fmt.Sprint(utils.StartOfDayUnix(end.AddDays(1))))
	query.Set("interval", "1d")
	query.Set("events", "history")
	chartURL := fmt.Sprintf("%s/%s?%s", r.cfg.BaseURL, url.PathEscape(symbol), query.Encode())

	body, err := r.client.get(ctx, chartURL, "application/json")
	if err != nil {
		return nil, err
	}

	var response dto.YahooChartResponse
	if err := json.Unmarshal(body, &response); err != nil {
		r.log.ErrorContext(ctx, "Failed to decode chart response", logger.ErrorField(err), logger.StringField("symbol", symbol))
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if response.Chart.Error != nil {
		return nil, fmt.Errorf("%w: %s: %s", ErrMalformedResponse, response.Chart.Error.Code, response.Chart.Error.Description)
	}
	if len(response.Chart.Result) == 0 {
		return nil, nil
	}

	bars := closesFromChart(response.Chart.Result[0], start, end)
	r.log.DebugContext(ctx, "Fetched daily closes",
		logger.StringField("symbol", symbol),
		logger.IntField("bars", len(bars)),
	)
	return bars, nil
}

// closesFromChart keeps one bar per trading day inside [start, end], ascending.
// The whole series comes from adjusted closes when the payload has them and from raw
// closes otherwise, so the two are never mixed; days with a null price are skipped.
func closesFromChart(result dto.YahooChartResult, start, end civil.Date) []entity.PriceBar {
	var prices []*float64
	if len(result.Indicators.Quote) > 0 {
		prices = result.Indicators.Quote[0].Close
	}
	if len(result.Indicators.AdjClose) > 0 && len(result.Indicators.AdjClose[0].AdjClose) > 0 {
		prices = result.Indicators.AdjClose[0].AdjClose
	}

	byDay := make(map[civil.Date]float64, len(result.Timestamp))
	for i, ts := range result.Timestamp {
		if i >= len(prices) || prices[i] == nil {
			continue
		}
		price := prices[i]
		day := civil.DateOf(time.Unix(ts+result.Meta.GMTOffset, 0).UTC())
		if !utils.WithinRange(day, start, end) {
			continue
		}
		byDay[day] = *price
	}

	bars := make([]entity.PriceBar, 0, len(byDay))
	for day, price := range byDay {
		bars = append(bars, entity.PriceBar{Date: day, Close: price})
	}
	sort.Slice(bars, func(i, j int) bool { return bars[i].Date.Before(bars[j].Date) })
	return bars
}

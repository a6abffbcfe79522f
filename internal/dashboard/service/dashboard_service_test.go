package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"golang-news-volatility/internal/dashboard/config"
	"golang-news-volatility/internal/dashboard/dto"
	"golang-news-volatility/internal/dashboard/repository"
	"golang-news-volatility/internal/entity"
	"golang-news-volatility/pkg/logger"
	"golang-news-volatility/pkg/metrics"

	"cloud.google.com/go/civil"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockHeadlineRepository is a mock implementation of HeadlineRepository
type MockHeadlineRepository struct {
	mock.Mock
}

func (m *MockHeadlineRepository) FetchHeadlines(ctx context.Context, keyword string, start, end civil.Date) (entity.DailyHeadlineSet, error) {
	args := m.Called(ctx, keyword, start, end)
	if set, ok := args.Get(0).(entity.DailyHeadlineSet); ok {
		return set, args.Error(1)
	}
	return nil, args.Error(1)
}

// MockMarketDataRepository is a mock implementation of MarketDataRepository
type MockMarketDataRepository struct {
	mock.Mock
}

func (m *MockMarketDataRepository) FetchDailyCloses(ctx context.Context, symbol string, start, end civil.Date) ([]entity.PriceBar, error) {
	args := m.Called(ctx, symbol, start, end)
	if bars, ok := args.Get(0).([]entity.PriceBar); ok {
		return bars, args.Error(1)
	}
	return nil, args.Error(1)
}

func serviceConfig() *config.Config {
	return &config.Config{
		MarketData: config.MarketData{Symbol: "^GSPC"},
		Duplicate:  config.Duplicate{Threshold: 80, Metric: "token_sort_ratio"},
		Volatility: config.Volatility{Window: 5, Estimator: "population", ReturnType: "simple"},
		Dashboard:  config.Dashboard{DefaultKeyword: "stock market", JoinMode: "outer"},
	}
}

type serviceFixture struct {
	svc    DashboardService
	news   *MockHeadlineRepository
	market *MockMarketDataRepository
	reg    *prometheus.Registry
}

func newServiceFixture(t *testing.T, cfg *config.Config) serviceFixture {
	t.Helper()
	news := &MockHeadlineRepository{}
	market := &MockMarketDataRepository{}
	reg := prometheus.NewRegistry()
	svc, err := NewDashboardService(cfg, logger.NewNop(), news, market, metrics.New(reg))
	require.NoError(t, err)
	return serviceFixture{svc: svc, news: news, market: market, reg: reg}
}

var (
	rangeStart = civil.Date{Year: 2024, Month: time.March, Day: 1}
	rangeEnd   = civil.Date{Year: 2024, Month: time.March, Day: 8}
)

func TestBuildView(t *testing.T) {
	f := newServiceFixture(t, serviceConfig())
	ctx := context.Background()
	bars := tradingBars(100, 102, 101, 105, 103, 107)

	f.news.On("FetchHeadlines", ctx, "stock market", rangeStart, rangeEnd).Return(entity.DailyHeadlineSet{
		rangeStart: {"Fed raises rates", "Fed Raises Rates", "Stocks rally"},
	}, nil)
	f.market.On("FetchDailyCloses", ctx, "^GSPC", rangeStart, rangeEnd).Return(bars, nil)

	view, err := f.svc.BuildView(ctx, dto.ViewQuery{Start: rangeStart, End: rangeEnd})
	require.NoError(t, err)

	assert.Equal(t, "stock market", view.Keyword)
	assert.Equal(t, "^GSPC", view.Symbol)
	assert.Equal(t, entity.JoinOuter, view.Mode)
	assert.Equal(t, rangeStart, view.Start)
	assert.Equal(t, rangeEnd, view.End)
	assert.Equal(t, []string{"2024-03-01", "2024-03-06"}, view.Dates())
	assert.Equal(t, 1, *view.Points[0].Duplicates)
	assert.Nil(t, view.Points[0].Volatility)
	assert.Nil(t, view.Points[1].Duplicates)
	assert.InDelta(t, 0.0244, *view.Points[1].Volatility, 1e-3)

	f.news.AssertExpectations(t)
	f.market.AssertExpectations(t)

	count, err := testutil.GatherAndCount(f.reg, "dashboard_view_builds_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestBuildViewOverridesAndSubRange(t *testing.T) {
	f := newServiceFixture(t, serviceConfig())
	ctx := context.Background()
	bars := tradingBars(100, 102, 101, 105, 103, 107)

	f.news.On("FetchHeadlines", ctx, "inflation", rangeStart, rangeEnd).Return(entity.DailyHeadlineSet{
		rangeStart:            {"CPI hotter than expected"},
		rangeStart.AddDays(5): {"Inflation cools", "Inflation cools"},
	}, nil)
	f.market.On("FetchDailyCloses", ctx, "^IXIC", rangeStart, rangeEnd).Return(bars, nil)

	view, err := f.svc.BuildView(ctx, dto.ViewQuery{
		Keyword: "inflation",
		Symbol:  "^IXIC",
		Start:   rangeStart,
		End:     rangeEnd,
		From:    rangeStart.AddDays(2),
		To:      rangeEnd.AddDays(10),
		Join:    entity.JoinInner,
	})
	require.NoError(t, err)

	assert.Equal(t, rangeStart.AddDays(2), view.Start)
	assert.Equal(t, rangeEnd, view.End)
	require.Len(t, view.Points, 1)
	assert.Equal(t, rangeStart.AddDays(5), view.Points[0].Date)
	assert.Equal(t, 1, *view.Points[0].Duplicates)
}

func TestBuildViewConfiguredJoinMode(t *testing.T) {
	cfg := serviceConfig()
	cfg.Dashboard.JoinMode = "inner"
	f := newServiceFixture(t, cfg)
	ctx := context.Background()

	f.news.On("FetchHeadlines", ctx, "stock market", rangeStart, rangeEnd).Return(entity.DailyHeadlineSet{
		rangeStart: {"Fed raises rates"},
	}, nil)
	f.market.On("FetchDailyCloses", ctx, "^GSPC", rangeStart, rangeEnd).Return(tradingBars(100, 102, 101, 105, 103, 107), nil)

	view, err := f.svc.BuildView(ctx, dto.ViewQuery{Start: rangeStart, End: rangeEnd})
	require.NoError(t, err)

	assert.Equal(t, entity.JoinInner, view.Mode)
	assert.Empty(t, view.Points)
}

func TestBuildViewErrors(t *testing.T) {
	ctx := context.Background()

	t.Run("end before start", func(t *testing.T) {
		f := newServiceFixture(t, serviceConfig())
		_, err := f.svc.BuildView(ctx, dto.ViewQuery{Start: rangeEnd, End: rangeStart})
		assert.ErrorIs(t, err, ErrInvalidDateRange)
		f.news.AssertNotCalled(t, "FetchHeadlines", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("sub-range reversed", func(t *testing.T) {
		f := newServiceFixture(t, serviceConfig())
		_, err := f.svc.BuildView(ctx, dto.ViewQuery{Start: rangeStart, End: rangeEnd, From: rangeStart.AddDays(4), To: rangeStart.AddDays(2)})
		assert.ErrorIs(t, err, ErrInvalidDateRange)
	})

	t.Run("no headlines", func(t *testing.T) {
		f := newServiceFixture(t, serviceConfig())
		f.news.On("FetchHeadlines", ctx, "stock market", rangeStart, rangeEnd).Return(entity.DailyHeadlineSet{}, nil)

		_, err := f.svc.BuildView(ctx, dto.ViewQuery{Start: rangeStart, End: rangeEnd})
		assert.ErrorIs(t, err, ErrNoHeadlines)
		f.market.AssertNotCalled(t, "FetchDailyCloses", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("no price data", func(t *testing.T) {
		f := newServiceFixture(t, serviceConfig())
		f.news.On("FetchHeadlines", ctx, "stock market", rangeStart, rangeEnd).Return(entity.DailyHeadlineSet{rangeStart: {"a"}}, nil)
		f.market.On("FetchDailyCloses", ctx, "^GSPC", rangeStart, rangeEnd).Return([]entity.PriceBar{}, nil)

		_, err := f.svc.BuildView(ctx, dto.ViewQuery{Start: rangeStart, End: rangeEnd})
		assert.ErrorIs(t, err, ErrNoPriceData)
	})

	t.Run("network error is passed through", func(t *testing.T) {
		f := newServiceFixture(t, serviceConfig())
		netErr := &repository.NetworkError{Source: "news", URL: "http://x", Err: errors.New("connection refused")}
		f.news.On("FetchHeadlines", ctx, "stock market", rangeStart, rangeEnd).Return(nil, netErr)

		_, err := f.svc.BuildView(ctx, dto.ViewQuery{Start: rangeStart, End: rangeEnd})
		var got *repository.NetworkError
		require.True(t, errors.As(err, &got))
		assert.Equal(t, "news", got.Source)
	})

	t.Run("market error is passed through", func(t *testing.T) {
		f := newServiceFixture(t, serviceConfig())
		f.news.On("FetchHeadlines", ctx, "stock market", rangeStart, rangeEnd).Return(entity.DailyHeadlineSet{rangeStart: {"a"}}, nil)
		f.market.On("FetchDailyCloses", ctx, "^GSPC", rangeStart, rangeEnd).Return(nil, repository.ErrMalformedResponse)

		_, err := f.svc.BuildView(ctx, dto.ViewQuery{Start: rangeStart, End: rangeEnd})
		assert.ErrorIs(t, err, repository.ErrMalformedResponse)
	})
}

func TestNewDashboardServiceUnknownMetric(t *testing.T) {
	cfg := serviceConfig()
	cfg.Duplicate.Metric = "jaro"

	_, err := NewDashboardService(cfg, logger.NewNop(), &MockHeadlineRepository{}, &MockMarketDataRepository{}, metrics.New(prometheus.NewRegistry()))
	assert.Error(t, err)
}

func TestOutcomeOf(t *testing.T) {
	assert.Equal(t, "ok", outcomeOf(nil))
	assert.Equal(t, "network_error", outcomeOf(&repository.NetworkError{Err: errors.New("x")}))
	assert.Equal(t, "upstream_error", outcomeOf(repository.ErrMalformedResponse))
	assert.Equal(t, "no_data", outcomeOf(ErrNoPriceData))
	assert.Equal(t, "invalid_input", outcomeOf(ErrInvalidDateRange))
	assert.Equal(t, "error", outcomeOf(errors.New("boom")))
}

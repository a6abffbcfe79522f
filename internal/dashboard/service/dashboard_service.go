package service

import (
	"context"
	"errors"
	"time"

	"golang-news-volatility/internal/dashboard/config"
	"golang-news-volatility/internal/dashboard/dto"
	"golang-news-volatility/internal/dashboard/repository"
	"golang-news-volatility/internal/entity"
	"golang-news-volatility/pkg/common"
	"golang-news-volatility/pkg/logger"
	"golang-news-volatility/pkg/metrics"
	"golang-news-volatility/pkg/similarity"

	"cloud.google.com/go/civil"
)

// DashboardService builds the aligned duplicate/volatility view for one user interaction.
type DashboardService interface {
	BuildView(ctx context.Context, query dto.ViewQuery) (*entity.AlignedView, error)
}

type dashboardService struct {
	cfg        *config.Config
	log        *logger.Logger
	newsRepo   repository.HeadlineRepository
	marketRepo repository.MarketDataRepository
	scorer     similarity.Scorer
	metrics    *metrics.Recorder
}

// NewDashboardService creates a DashboardService.
func NewDashboardService(cfg *config.Config, log *logger.Logger,
	newsRepo repository.HeadlineRepository,
	marketRepo repository.MarketDataRepository,
	recorder *metrics.Recorder) (DashboardService, error) {
	scorer, err := similarity.ScorerByName(cfg.Duplicate.Metric)
	if err != nil {
		return nil, err
	}
	return &dashboardService{
		cfg:        cfg,
		log:        log,
		newsRepo:   newsRepo,
		marketRepo: marketRepo,
		scorer:     scorer,
		metrics:    recorder,
	}, nil
}

func (s *dashboardService) BuildView(ctx context.Context, query dto.ViewQuery) (*entity.AlignedView, error) {
	view, err := s.buildView(ctx, query)
	s.metrics.RecordViewBuild(outcomeOf(err))
	return view, err
}

func (s *dashboardService) buildView(ctx context.Context, query dto.ViewQuery) (*entity.AlignedView, error) {
	if query.End.Before(query.Start) {
		return nil, ErrInvalidDateRange
	}
	from, to, err := subRange(query)
	if err != nil {
		return nil, err
	}
	symbol := query.Symbol
	if symbol == "" {
		symbol = s.cfg.MarketData.Symbol
	}
	keyword := query.Keyword
	if keyword == "" {
		keyword = s.cfg.Dashboard.DefaultKeyword
	}
	mode := query.Join
	if mode == "" {
		mode = entity.JoinMode(s.cfg.Dashboard.JoinMode)
	}

	started := time.Now()
	headlines, err := s.newsRepo.FetchHeadlines(ctx, keyword, query.Start, query.End)
	s.metrics.RecordFetch(common.SourceNews, outcomeOf(err), time.Since(started).Seconds())
	if err != nil {
		s.log.ErrorContext(ctx, "Failed to fetch headlines", logger.ErrorField(err), logger.StringField("keyword", keyword))
		return nil, err
	}
	if headlines.Total() == 0 {
		return nil, ErrNoHeadlines
	}
	s.metrics.RecordHeadlines(headlines.Total())

	scores := CountDuplicates(headlines, s.cfg.Duplicate.Threshold, s.scorer)
	pairs := 0
	for _, n := range scores {
		pairs += n
	}
	s.metrics.RecordDuplicatePairs(pairs)

	started = time.Now()
	bars, err := s.marketRepo.FetchDailyCloses(ctx, symbol, query.Start, query.End)
	s.metrics.RecordFetch(common.SourceMarketData, outcomeOf(err), time.Since(started).Seconds())
	if err != nil {
		s.log.ErrorContext(ctx, "Failed to fetch daily closes", logger.ErrorField(err), logger.StringField("symbol", symbol))
		return nil, err
	}
	if len(bars) == 0 {
		return nil, ErrNoPriceData
	}

	volatility, err := RollingVolatility(bars, VolatilityOptions{
		Window:     s.cfg.Volatility.Window,
		Estimator:  s.cfg.Volatility.Estimator,
		ReturnType: s.cfg.Volatility.ReturnType,
	})
	if err != nil {
		return nil, err
	}

	view := Align(scores, volatility, from, to, mode)
	view.Keyword = keyword
	view.Symbol = symbol

	s.log.DebugContext(ctx, "Built aligned view",
		logger.StringField("keyword", keyword),
		logger.StringField("symbol", symbol),
		logger.IntField("headlines", headlines.Total()),
		logger.IntField("duplicate_pairs", pairs),
		logger.IntField("trading_days", len(bars)),
		logger.IntField("points", len(view.Points)),
	)
	return &view, nil
}

// subRange resolves the displayed window, defaulting to and clamping into [Start, End].
func subRange(query dto.ViewQuery) (civil.Date, civil.Date, error) {
	from, to := query.From, query.To
	if from == (civil.Date{}) || from.Before(query.Start) {
		from = query.Start
	}
	if to == (civil.Date{}) || to.After(query.End) {
		to = query.End
	}
	if to.Before(from) {
		return civil.Date{}, civil.Date{}, ErrInvalidDateRange
	}
	return from, to, nil
}

func outcomeOf(err error) string {
	var netErr *repository.NetworkError
	switch {
	case err == nil:
		return "ok"
	case errors.As(err, &netErr):
		return "network_error"
	case errors.Is(err, repository.ErrMalformedResponse):
		return "upstream_error"
	case errors.Is(err, ErrNoHeadlines), errors.Is(err, ErrNoPriceData):
		return "no_data"
	case errors.Is(err, ErrInvalidDateRange):
		return "invalid_input"
	default:
		return "error"
	}
}

package http

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"golang-news-volatility/internal/dashboard/chart"
	"golang-news-volatility/internal/dashboard/config"
	"golang-news-volatility/internal/dashboard/dto"
	"golang-news-volatility/internal/dashboard/repository"
	"golang-news-volatility/internal/dashboard/service"
	"golang-news-volatility/internal/entity"
	"golang-news-volatility/pkg/logger"
	"golang-news-volatility/pkg/utils"

	"github.com/labstack/echo/v4"
)

// DashboardHandler handles the dashboard page and the series API.
type DashboardHandler struct {
	dashboardService service.DashboardService
	cfg              *config.Config
	logger           *logger.Logger
	location         *time.Location
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(dashboardService service.DashboardService, cfg *config.Config, logger *logger.Logger) (*DashboardHandler, error) {
	loc, err := utils.LoadLocation(cfg.Dashboard.TimeZone)
	if err != nil {
		return nil, err
	}
	return &DashboardHandler{dashboardService: dashboardService, cfg: cfg, logger: logger, location: loc}, nil
}

// RegisterPageRoutes registers the HTML dashboard and the liveness probe.
func (h *DashboardHandler) RegisterPageRoutes(g *echo.Group) {
	g.GET("/", h.Dashboard)
	g.GET("/healthz", h.Healthz)
}

// RegisterRoutes registers the JSON API routes to the Echo group.
func (h *DashboardHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/series", h.GetSeries)
}

type pageData struct {
	Form   dto.SeriesRequest
	Error  string
	Chart  string
	Symbol string
	Window int
}

// Dashboard renders the form and, once submitted, the duplicate/volatility chart.
func (h *DashboardHandler) Dashboard(c echo.Context) error {
	page := pageData{
		Symbol: h.cfg.MarketData.Symbol,
		Window: h.cfg.Volatility.Window,
	}

	var req dto.SeriesRequest
	if err := readAndValidateRequest(c, &req); err != nil {
		page.Form = req
		return h.renderError(c, page, err)
	}

	query, err := h.resolveQuery(req)
	page.Form = formValues(req, query)
	if err != nil {
		return h.renderError(c, page, err)
	}

	// nothing submitted yet
	if c.QueryString() == "" {
		return c.Render(http.StatusOK, "dashboard.html", page)
	}

	view, err := h.dashboardService.BuildView(c.Request().Context(), query)
	if err != nil {
		return h.renderError(c, page, err)
	}
	page.Symbol = view.Symbol

	var buf bytes.Buffer
	if err := chart.Render(&buf, view, chart.Options{
		Width:      h.cfg.Dashboard.ChartWidth,
		Height:     h.cfg.Dashboard.ChartHeight,
		AssetsHost: h.cfg.Dashboard.ChartAssetsHost,
	}); err != nil {
		h.logger.ErrorContext(c.Request().Context(), "Failed to render chart", logger.ErrorField(err))
		return h.renderError(c, page, err)
	}
	page.Chart = buf.String()

	return c.Render(http.StatusOK, "dashboard.html", page)
}

// GetSeries godoc
// @Summary Get the aligned duplicate and volatility series
// @Description Fetches headlines and daily closes for the range, counts near-duplicate headlines per day, computes rolling volatility and joins both on date.
// @Tags series
// @Produce  json
// @Param   start    query   string  false  "Range start (YYYY-MM-DD), defaults to end minus the configured number of days"
// @Param   end      query   string  false  "Range end (YYYY-MM-DD), defaults to today"
// @Param   from     query   string  false  "Displayed sub-range start (YYYY-MM-DD)"
// @Param   to       query   string  false  "Displayed sub-range end (YYYY-MM-DD)"
// @Param   keyword  query   string  false  "News search keyword"
// @Param   symbol   query   string  false  "Market symbol"
// @Param   join     query   string  false  "Join mode (inner or outer)"
// @Success 200 {object} dto.SeriesResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 502 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /series [get]
func (h *DashboardHandler) GetSeries(c echo.Context) error {
	var req dto.SeriesRequest
	if err := readAndValidateRequest(c, &req); err != nil {
		status, msg := errorStatus(err)
		return c.JSON(status, dto.ErrorResponse{Error: msg})
	}

	query, err := h.resolveQuery(req)
	if err != nil {
		status, msg := errorStatus(err)
		return c.JSON(status, dto.ErrorResponse{Error: msg})
	}

	view, err := h.dashboardService.BuildView(c.Request().Context(), query)
	if err != nil {
		status, msg := errorStatus(err)
		if status >= http.StatusInternalServerError {
			h.logger.ErrorContext(c.Request().Context(), "Failed to build series", logger.ErrorField(err))
		}
		return c.JSON(status, dto.ErrorResponse{Error: msg})
	}

	return c.JSON(http.StatusOK, dto.SeriesResponse{Data: view})
}

// Healthz reports that the process is serving.
func (h *DashboardHandler) Healthz(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
}

func (h *DashboardHandler) renderError(c echo.Context, page pageData, err error) error {
	status, msg := errorStatus(err)
	if status >= http.StatusInternalServerError {
		h.logger.ErrorContext(c.Request().Context(), "Failed to build dashboard", logger.ErrorField(err))
	}
	page.Error = msg
	return c.Render(status, "dashboard.html", page)
}

// resolveQuery fills in the default range and parses the dates of req.
func (h *DashboardHandler) resolveQuery(req dto.SeriesRequest) (dto.ViewQuery, error) {
	end, ok, err := utils.ParseDate(req.End)
	if err != nil {
		return dto.ViewQuery{}, fmt.Errorf("%w: %v", errBadRequest, err)
	}
	if !ok {
		end = utils.Today(h.location)
	}
	start, ok, err := utils.ParseDate(req.Start)
	if err != nil {
		return dto.ViewQuery{}, fmt.Errorf("%w: %v", errBadRequest, err)
	}
	if !ok {
		start = end.AddDays(-h.cfg.Dashboard.DefaultRangeDays)
	}
	from, _, err := utils.ParseDate(req.From)
	if err != nil {
		return dto.ViewQuery{}, fmt.Errorf("%w: %v", errBadRequest, err)
	}
	to, _, err := utils.ParseDate(req.To)
	if err != nil {
		return dto.ViewQuery{}, fmt.Errorf("%w: %v", errBadRequest, err)
	}

	keyword := strings.TrimSpace(req.Keyword)
	if keyword == "" {
		keyword = h.cfg.Dashboard.DefaultKeyword
	}
	return dto.ViewQuery{
		Keyword: keyword,
		Symbol:  strings.TrimSpace(req.Symbol),
		Start:   start,
		End:     end,
		From:    from,
		To:      to,
		Join:    entity.JoinMode(req.Join),
	}, nil
}

// formValues echoes the submitted form back with the resolved defaults filled in.
func formValues(req dto.SeriesRequest, query dto.ViewQuery) dto.SeriesRequest {
	form := req
	if query.Start.IsValid() {
		form.Start = query.Start.String()
	}
	if query.End.IsValid() {
		form.End = query.End.String()
	}
	if form.Keyword == "" {
		form.Keyword = query.Keyword
	}
	return form
}

// errorStatus maps an error to its HTTP status and the message shown to the user.
func errorStatus(err error) (int, string) {
	var netErr *repository.NetworkError
	switch {
	case errors.Is(err, errBadRequest):
		return http.StatusBadRequest, strings.TrimPrefix(err.Error(), errBadRequest.Error()+": ")
	case errors.Is(err, service.ErrInvalidDateRange):
		return http.StatusBadRequest, "Start date must be before end date."
	case errors.Is(err, service.ErrNoHeadlines):
		return http.StatusNotFound, "No news data found for given range."
	case errors.Is(err, service.ErrNoPriceData):
		return http.StatusNotFound, "No price data found for given range."
	case errors.As(err, &netErr):
		return http.StatusBadGateway, netErr.Error()
	case errors.Is(err, repository.ErrMalformedResponse):
		return http.StatusBadGateway, err.Error()
	default:
		return http.StatusInternalServerError, fmt.Sprintf("Something went wrong: %v", err)
	}
}

package repository

import (
	"context"
	"io"
	"net/http"
	"time"

	"golang-news-volatility/pkg/logger"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

// upstreamClient performs throttled GET requests against one external source.
type upstreamClient struct {
	source         string
	log            *logger.Logger
	httpClient     *http.Client
	requestLimiter *rate.Limiter
}

func newUpstreamClient(source string, log *logger.Logger, timeout time.Duration, maxRequestPerMinute int) *upstreamClient {
	perRequest := time.Minute / time.Duration(maxRequestPerMinute)
	return &upstreamClient{
		source: source,
		log:    log,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		requestLimiter: rate.NewLimiter(rate.Every(perRequest), 1),
	}
}

func (c *upstreamClient) get(ctx context.Context, url string, accept string) ([]byte, error) {
	fields := []zap.Field{
		zap.String("source", c.source),
		zap.String("url", url),
	}

	if err := c.requestLimiter.Wait(ctx); err != nil {
		fields = append(fields, zap.Error(err))
		c.log.ErrorContext(ctx, "Failed to wait for request limit", fields...)
		return nil, &NetworkError{Source: c.source, URL: url, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		fields = append(fields, zap.Error(err))
		c.log.ErrorContext(ctx, "Failed to create new http request", fields...)
		return nil, &NetworkError{Source: c.source, URL: url, Err: err}
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", accept)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		fields = append(fields, zap.Error(err))
		c.log.ErrorContext(ctx, "Failed to send request", fields...)
		return nil, &NetworkError{Source: c.source, URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		fields = append(fields, zap.Int("status_code", resp.StatusCode))
		c.log.ErrorContext(ctx, "Received non-OK response", fields...)
		return nil, &NetworkError{Source: c.source, URL: url, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		fields = append(fields, zap.Error(err))
		c.log.ErrorContext(ctx, "Failed to read response body", fields...)
		return nil, &NetworkError{Source: c.source, URL: url, Err: err}
	}

	fields = append(fields, zap.Duration("latency", time.Since(start)), zap.Int("bytes", len(body)))
	c.log.DebugContext(ctx, "Upstream request completed", fields...)
	return body, nil
}

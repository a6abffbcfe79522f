package repository

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"golang-news-volatility/internal/dashboard/config"
	"golang-news-volatility/internal/entity"
	"golang-news-volatility/pkg/common"
	"golang-news-volatility/pkg/logger"
	"golang-news-volatility/pkg/utils"

	"cloud.google.com/go/civil"
	"github.com/PuerkitoBio/goquery"
	"github.com/mmcdole/gofeed"
)

// HeadlineRepository fetches news headlines grouped by publication day.
type HeadlineRepository interface {
	FetchHeadlines(ctx context.Context, keyword string, start, end civil.Date) (entity.DailyHeadlineSet, error)
}

type googleNewsRepository struct {
	cfg      config.News
	log      *logger.Logger
	client   *upstreamClient
	location *time.Location
}

// NewGoogleNewsRepository creates a HeadlineRepository backed by the Google News RSS search feed.
func NewGoogleNewsRepository(cfg *config.Config, log *logger.Logger) (HeadlineRepository, error) {
	loc, err := utils.LoadLocation(cfg.News.TimeZone)
	if err != nil {
		return nil, err
	}
	return &googleNewsRepository{
		cfg:      cfg.News,
		log:      log,
		client:   newUpstreamClient(common.SourceNews, log, cfg.News.Timeout, cfg.News.MaxRequestPerMinute),
		location: loc,
	}, nil
}

func (r *googleNewsRepository) FetchHeadlines(ctx context.Context, keyword string, start, end civil.Date) (entity.DailyHeadlineSet, error) {
	if end.Before(start) {
		return nil, ErrInvalidDateRange
	}

	feedURL := r.searchURL(keyword, start, end)
	body, err := r.client.get(ctx, feedURL, "application/rss+xml, application/xml;q=0.9, */*;q=0.8")
	if err != nil {
		return nil, err
	}

	feed, err := gofeed.NewParser().Parse(bytes.NewReader(body))
	if err != nil {
		r.log.ErrorContext(ctx, "Failed to parse RSS feed", logger.ErrorField(err), logger.StringField("url", feedURL))
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	set := entity.DailyHeadlineSet{}
	skipped := 0
	for i, item := range feed.Items {
		if i >= r.cfg.MaxResults {
			break
		}
		headline, ok := r.toHeadline(item)
		if !ok || !utils.WithinRange(headline.Date, start, end) {
			skipped++
			continue
		}
		set.Add(headline)
	}

	r.log.DebugContext(ctx, "Fetched headlines",
		logger.StringField("keyword", keyword),
		logger.IntField("feed_items", len(feed.Items)),
		logger.IntField("kept", set.Total()),
		logger.IntField("skipped", skipped),
		logger.IntField("days", len(set)),
	)
	return set, nil
}

func (r *googleNewsRepository) searchURL(keyword string, start, end civil.Date) string {
	// before: is exclusive on Google News, so ask for the day after end
	query := url.Values{}
	query.Set("q", fmt.Sprintf("%s after:%s before:%s", keyword, start, end.AddDays(1)))
	query.Set("hl", r.cfg.Language)
	query.Set("gl", r.cfg.Country)
	query.Set("ceid", r.cfg.Edition)
	return r.cfg.BaseURL + "?" + query.Encode()
}

func (r *googleNewsRepository) toHeadline(item *gofeed.Item) (entity.Headline, bool) {
	published := item.PublishedParsed
	if published == nil {
		published = item.UpdatedParsed
	}
	if published == nil {
		return entity.Headline{}, false
	}

	title := utils.CleanToValidUTF8(item.Title)
	publisher := publisherFromDescription(item.Description)
	if r.cfg.StripPublisher && publisher != "" {
		title = strings.TrimSpace(strings.TrimSuffix(title, " - "+publisher))
	}
	if title == "" {
		return entity.Headline{}, false
	}

	return entity.Headline{
		Date:   utils.DayOf(*published, r.location),
		Text:   title,
		Source: publisher,
		Link:   item.Link,
	}, true
}

// publisherFromDescription reads the publisher name Google News puts in a <font> element of the item description.
func publisherFromDescription(description string) string {
	if description == "" {
		return ""
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(description))
	if err != nil {
		return ""
	}
	return utils.CleanToValidUTF8(doc.Find("font").Last().Text())
}

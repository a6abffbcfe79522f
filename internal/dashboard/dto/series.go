package dto

import (
	"cloud.google.com/go/civil"

	"golang-news-volatility/internal/entity"
)

// SeriesRequest is the query string accepted by the dashboard page and the series API.
type SeriesRequest struct {
	Start   string `query:"start" json:"start" validate:"omitempty,datetime=2006-01-02"`
	End     string `query:"end" json:"end" validate:"omitempty,datetime=2006-01-02"`
	From    string `query:"from" json:"from" validate:"omitempty,datetime=2006-01-02"`
	To      string `query:"to" json:"to" validate:"omitempty,datetime=2006-01-02"`
	Keyword string `query:"keyword" json:"keyword" validate:"max=100"`
	Symbol  string `query:"symbol" json:"symbol" validate:"max=20"`
	Join    string `query:"join" json:"join" validate:"omitempty,oneof=inner outer"`
}

// ViewQuery is a resolved SeriesRequest. A zero From or To means the edge of the range.
type ViewQuery struct {
	Keyword string
	Symbol  string
	Start   civil.Date
	End     civil.Date
	From    civil.Date
	To      civil.Date
	Join    entity.JoinMode
}

// SeriesResponse wraps the aligned view returned by the series API.
type SeriesResponse struct {
	Data *entity.AlignedView `json:"data"`
}

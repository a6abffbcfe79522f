package service

import (
	"golang-news-volatility/internal/entity"
	"golang-news-volatility/pkg/utils"

	"cloud.google.com/go/civil"
)

// Align joins the duplicate scores and the volatility series on date, keeping only
// dates in [from, to]. Inner keeps dates present in both; outer keeps the union and
// leaves the missing side nil.
func Align(dup entity.DuplicateScore, vol entity.VolatilitySeries, from, to civil.Date, mode entity.JoinMode) entity.AlignedView {
	union := make(map[civil.Date]struct{}, len(dup)+len(vol))
	for d := range dup {
		union[d] = struct{}{}
	}
	for d := range vol {
		union[d] = struct{}{}
	}

	points := make([]entity.AlignedPoint, 0, len(union))
	for _, d := range entity.SortedDates(union) {
		if !utils.WithinRange(d, from, to) {
			continue
		}
		point := entity.AlignedPoint{Date: d}
		if n, ok := dup[d]; ok {
			point.Duplicates = &n
		}
		if v, ok := vol[d]; ok {
			point.Volatility = &v
		}
		if mode == entity.JoinInner && (point.Duplicates == nil || point.Volatility == nil) {
			continue
		}
		points = append(points, point)
	}

	return entity.AlignedView{
		Start:  from,
		End:    to,
		Mode:   mode,
		Points: points,
	}
}

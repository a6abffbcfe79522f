// Package chart renders an aligned duplicate/volatility view as an interactive echarts page.
package chart

import (
	"fmt"
	"io"

	"golang-news-volatility/internal/entity"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

const (
	duplicateColor  = "#d62728"
	volatilityColor = "#1f77b4"
	// missing values are drawn as gaps
	missing = "-"
)

// Options controls the size of the rendered chart and where its scripts load from.
type Options struct {
	Width      string
	Height     string
	AssetsHost string
}

// Render writes a standalone HTML page with the duplicate bars on the left axis and the
// rolling volatility line on the right axis, sharing the date axis of view.
func Render(w io.Writer, view *entity.AlignedView, o Options) error {
	dates := view.Dates()

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle:  "News Redundancy vs Market Volatility",
			Width:      o.Width,
			Height:     o.Height,
			AssetsHost: o.AssetsHost,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    fmt.Sprintf("News Redundancy (%q) vs %s Volatility", view.Keyword, view.Symbol),
			Subtitle: fmt.Sprintf("%s to %s", view.Start, view.End),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Trigger: "axis"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Date", Type: "category"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Duplicate headline pairs", Type: "value"}),
		charts.WithDataZoomOpts(opts.DataZoom{Type: "slider", Start: 0, End: 100}),
	)
	bar.ExtendYAxis(opts.YAxis{Name: "Volatility", Type: "value"})

	bar.SetXAxis(dates).AddSeries("Duplicate headline pairs", duplicateData(view.Points),
		charts.WithItemStyleOpts(opts.ItemStyle{Color: duplicateColor}),
	)

	line := charts.NewLine()
	line.SetXAxis(dates).AddSeries(fmt.Sprintf("%s rolling volatility", view.Symbol), volatilityData(view.Points),
		charts.WithLineChartOpts(opts.LineChart{YAxisIndex: 1}),
		charts.WithLineStyleOpts(opts.LineStyle{Color: volatilityColor}),
		charts.WithItemStyleOpts(opts.ItemStyle{Color: volatilityColor}),
	)
	bar.Overlap(line)

	return bar.Render(w)
}

func duplicateData(points []entity.AlignedPoint) []opts.BarData {
	data := make([]opts.BarData, len(points))
	for i, p := range points {
		if p.Duplicates == nil {
			data[i] = opts.BarData{Value: missing}
			continue
		}
		data[i] = opts.BarData{Value: *p.Duplicates}
	}
	return data
}

func volatilityData(points []entity.AlignedPoint) []opts.LineData {
	data := make([]opts.LineData, len(points))
	for i, p := range points {
		if p.Volatility == nil {
			data[i] = opts.LineData{Value: missing}
			continue
		}
		data[i] = opts.LineData{Value: *p.Volatility}
	}
	return data
}

package service

import (
	"fmt"
	"math"
	"sort"

	"golang-news-volatility/internal/entity"
	"golang-news-volatility/pkg/common"

	"github.com/montanaflynn/stats"
	"github.com/shopspring/decimal"
)

// VolatilityOptions configures RollingVolatility.
type VolatilityOptions struct {
	Window     int
	Estimator  string
	ReturnType string
}

// RollingVolatility computes the standard deviation of daily returns over a trailing
// window of opts.Window returns, keyed by the date of the last return in the window.
// The first price has no return, so the first Window trading days have no value.
func RollingVolatility(bars []entity.PriceBar, opts VolatilityOptions) (entity.VolatilitySeries, error) {
	if opts.Window < 2 {
		return nil, ErrInvalidWindow
	}
	deviation, err := deviationFunc(opts.Estimator)
	if err != nil {
		return nil, err
	}

	sorted := make([]entity.PriceBar, len(bars))
	copy(sorted, bars)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Date.Before(sorted[j].Date) })

	returns, err := dailyReturns(sorted, opts.ReturnType)
	if err != nil {
		return nil, err
	}

	series := entity.VolatilitySeries{}
	for end := opts.Window; end < len(sorted); end++ {
		window := returns[end-opts.Window+1 : end+1]
		if containsNaN(window) {
			continue
		}
		sd, err := deviation(window)
		if err != nil {
			return nil, fmt.Errorf("failed to compute deviation ending %s: %w", sorted[end].Date, err)
		}
		series[sorted[end].Date] = sd
	}
	return series, nil
}

// dailyReturns returns one value per bar; index 0 and any return next to a non-positive price are NaN.
func dailyReturns(bars []entity.PriceBar, returnType string) ([]float64, error) {
	returns := make([]float64, len(bars))
	if len(bars) > 0 {
		returns[0] = math.NaN()
	}
	for i := 1; i < len(bars); i++ {
		prev, cur := bars[i-1].Close, bars[i].Close
		if prev <= 0 || cur <= 0 {
			returns[i] = math.NaN()
			continue
		}
		switch returnType {
		case common.ReturnTypeSimple, "":
			r, _ := decimal.NewFromFloat(cur).Div(decimal.NewFromFloat(prev)).Sub(decimal.NewFromInt(1)).Float64()
			returns[i] = r
		case common.ReturnTypeLog:
			returns[i] = math.Log(cur / prev)
		default:
			return nil, fmt.Errorf("unknown return type %q", returnType)
		}
	}
	return returns, nil
}

func deviationFunc(estimator string) (func(stats.Float64Data) (float64, error), error) {
	switch estimator {
	case common.EstimatorPopulation, "":
		return stats.StandardDeviationPopulation, nil
	case common.EstimatorSample:
		return stats.StandardDeviationSample, nil
	default:
		return nil, fmt.Errorf("unknown volatility estimator %q", estimator)
	}
}

func containsNaN(values []float64) bool {
	for _, v := range values {
		if math.IsNaN(v) {
			return true
		}
	}
	return false
}

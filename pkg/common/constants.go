package common

const (
	SourceNews       = "news"
	SourceMarketData = "market_data"

	EstimatorSample     = "sample"
	EstimatorPopulation = "population"

	ReturnTypeSimple = "simple"
	ReturnTypeLog    = "log"

	MetricRatio          = "ratio"
	MetricTokenSortRatio = "token_sort_ratio"
)

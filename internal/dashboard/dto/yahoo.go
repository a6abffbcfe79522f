package dto

// YahooChartResponse is the subset of the Yahoo Finance v8 chart payload the dashboard reads.
type YahooChartResponse struct {
	Chart struct {
		Result []YahooChartResult `json:"result"`
		Error  *YahooChartError   `json:"error"`
	} `json:"chart"`
}

type YahooChartResult struct {
	Meta struct {
		Symbol               string `json:"symbol"`
		Currency             string `json:"currency"`
		GMTOffset            int64  `json:"gmtoffset"`
		ExchangeTimezoneName string `json:"exchangeTimezoneName"`
	} `json:"meta"`
	Timestamp  []int64 `json:"timestamp"`
	Indicators struct {
		Quote    []YahooQuote    `json:"quote"`
		AdjClose []YahooAdjClose `json:"adjclose"`
	} `json:"indicators"`
}

// YahooQuote holds raw closes; entries are null on days the exchange reported no bar.
type YahooQuote struct {
	Close []*float64 `json:"close"`
}

// YahooAdjClose holds split and dividend adjusted closes, nullable like YahooQuote.
type YahooAdjClose struct {
	AdjClose []*float64 `json:"adjclose"`
}

type YahooChartError struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

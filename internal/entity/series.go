package entity

import (
	"sort"

	"cloud.google.com/go/civil"
)

// DuplicateScore is the number of near-duplicate headline pairs per day.
type DuplicateScore map[civil.Date]int

// VolatilitySeries holds the rolling volatility ending on each trading day.
// Days where the window is not yet full are absent, never zero.
type VolatilitySeries map[civil.Date]float64

// JoinMode selects how the two series are combined on the date axis.
type JoinMode string

const (
	JoinInner JoinMode = "inner"
	JoinOuter JoinMode = "outer"
)

// AlignedPoint is one date on the shared axis. A nil side has no value on that date.
type AlignedPoint struct {
	Date       civil.Date `json:"date"`
	Duplicates *int       `json:"duplicates"`
	Volatility *float64   `json:"volatility"`
}

// AlignedView is the joined series handed to the presentation layer.
type AlignedView struct {
	Keyword string         `json:"keyword"`
	Symbol  string         `json:"symbol"`
	Start   civil.Date     `json:"start"`
	End     civil.Date     `json:"end"`
	Mode    JoinMode       `json:"mode"`
	Points  []AlignedPoint `json:"points"`
}

// Dates returns the axis labels in order.
func (v *AlignedView) Dates() []string {
	out := make([]string, len(v.Points))
	for i, p := range v.Points {
		out[i] = p.Date.String()
	}
	return out
}

// SortedDates returns the keys of m in ascending order.
func SortedDates[V any](m map[civil.Date]V) []civil.Date {
	out := make([]civil.Date, 0, len(m))
	for d := range m {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Before(out[j]) })
	return out
}

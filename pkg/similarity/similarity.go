// Package similarity scores how alike two short texts are on a 0-100 scale.
package similarity

import (
	"fmt"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"

	"golang-news-volatility/pkg/common"
)

// Scorer returns a similarity in [0, 100].
type Scorer func(a, b string) float64

// Normalize lower-cases s and replaces every rune that is not a letter or digit with a single space.
func Normalize(s string) string {
	tokens := strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	return strings.Join(tokens, " ")
}

// Ratio compares the normalized strings with a Levenshtein ratio.
func Ratio(a, b string) float64 {
	if a == b {
		return 100
	}
	return levenshteinRatio(Normalize(a), Normalize(b))
}

// TokenSortRatio compares the normalized strings after sorting their tokens,
// so word order does not matter.
//
// The score is a Levenshtein ratio normalized by the longer string, not the
// Indel ratio (normalized by the summed lengths) that rapidfuzz uses under the
// same name. For strings of unequal length it is the stricter of the two, so a
// threshold tuned for rapidfuzz admits fewer pairs here.
func TokenSortRatio(a, b string) float64 {
	if a == b {
		return 100
	}
	return levenshteinRatio(sortTokens(Normalize(a)), sortTokens(Normalize(b)))
}

// ScorerByName resolves a configured metric name.
func ScorerByName(name string) (Scorer, error) {
	switch name {
	case common.MetricRatio:
		return Ratio, nil
	case common.MetricTokenSortRatio, "":
		return TokenSortRatio, nil
	default:
		return nil, fmt.Errorf("unknown similarity metric %q", name)
	}
}

func sortTokens(s string) string {
	tokens := strings.Fields(s)
	sort.Strings(tokens)
	return strings.Join(tokens, " ")
}

// levenshteinRatio returns 100 * (1 - distance / max(len a, len b)) in runes.
func levenshteinRatio(a, b string) float64 {
	if a == b {
		if a == "" {
			return 0
		}
		return 100
	}
	longest := utf8.RuneCountInString(a)
	if n := utf8.RuneCountInString(b); n > longest {
		longest = n
	}
	dist := levenshtein.ComputeDistance(a, b)
	return 100 * (1 - float64(dist)/float64(longest))
}

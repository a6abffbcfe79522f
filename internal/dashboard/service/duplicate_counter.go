package service

import (
	"golang-news-volatility/internal/entity"
	"golang-news-volatility/pkg/similarity"
)

// CountDuplicates counts, for every day of set, the unordered headline pairs whose
// similarity reaches threshold. Days with fewer than two headlines score 0.
func CountDuplicates(set entity.DailyHeadlineSet, threshold float64, scorer similarity.Scorer) entity.DuplicateScore {
	scores := make(entity.DuplicateScore, len(set))
	for day, titles := range set {
		count := 0
		for i := 0; i < len(titles); i++ {
			for j := i + 1; j < len(titles); j++ {
				if scorer(titles[i], titles[j]) >= threshold {
					count++
				}
			}
		}
		scores[day] = count
	}
	return scores
}

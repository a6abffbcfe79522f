package entity

import "cloud.google.com/go/civil"

// Headline is one news headline as returned by the news source.
type Headline struct {
	Date   civil.Date `json:"date"`
	Text   string     `json:"text"`
	Source string     `json:"source,omitempty"`
	Link   string     `json:"link,omitempty"`
}

// DailyHeadlineSet groups headline texts by the calendar day they were published.
// Days without headlines are absent.
type DailyHeadlineSet map[civil.Date][]string

// Add appends a headline to its day.
func (s DailyHeadlineSet) Add(h Headline) {
	s[h.Date] = append(s[h.Date], h.Text)
}

// Total returns the number of headlines across all days.
func (s DailyHeadlineSet) Total() int {
	n := 0
	for _, texts := range s {
		n += len(texts)
	}
	return n
}

package service

import (
	"testing"
	"time"

	"golang-news-volatility/internal/entity"

	"cloud.google.com/go/civil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlign(t *testing.T) {
	day0 := civil.Date{Year: 2024, Month: time.March, Day: 3}
	dup := entity.DuplicateScore{day0: 3, day1: 2, day3: 0}
	vol := entity.VolatilitySeries{day1: 0.01, day2: 0.02}

	t.Run("outer keeps the union", func(t *testing.T) {
		view := Align(dup, vol, day0, day3, entity.JoinOuter)

		require.Len(t, view.Points, 4)
		assert.Equal(t, []string{"2024-03-03", "2024-03-04", "2024-03-05", "2024-03-06"}, view.Dates())
		assert.Nil(t, view.Points[0].Volatility)
		assert.Equal(t, 3, *view.Points[0].Duplicates)
		assert.Equal(t, 2, *view.Points[1].Duplicates)
		assert.Equal(t, 0.01, *view.Points[1].Volatility)
		assert.Nil(t, view.Points[2].Duplicates)
		assert.Equal(t, 0.02, *view.Points[2].Volatility)
		assert.Equal(t, 0, *view.Points[3].Duplicates)
		assert.Nil(t, view.Points[3].Volatility)
		assert.Equal(t, entity.JoinOuter, view.Mode)
	})

	t.Run("inner keeps dates with both values", func(t *testing.T) {
		view := Align(dup, vol, day0, day3, entity.JoinInner)

		require.Len(t, view.Points, 1)
		assert.Equal(t, day1, view.Points[0].Date)
	})

	t.Run("range filter", func(t *testing.T) {
		view := Align(dup, vol, day1, day2, entity.JoinOuter)

		assert.Equal(t, []string{"2024-03-04", "2024-03-05"}, view.Dates())
		assert.Equal(t, day1, view.Start)
		assert.Equal(t, day2, view.End)
	})

	t.Run("never invents dates", func(t *testing.T) {
		view := Align(entity.DuplicateScore{day0: 1}, entity.VolatilitySeries{day3: 0.5}, day0, day3, entity.JoinOuter)

		assert.Equal(t, []string{"2024-03-03", "2024-03-06"}, view.Dates())
	})

	t.Run("empty", func(t *testing.T) {
		view := Align(nil, nil, day0, day3, entity.JoinOuter)
		assert.Empty(t, view.Points)
	})
}

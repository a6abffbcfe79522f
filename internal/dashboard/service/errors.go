package service

import (
	"errors"

	"golang-news-volatility/internal/dashboard/repository"
)

var (
	ErrInvalidDateRange = repository.ErrInvalidDateRange
	ErrNoHeadlines      = errors.New("no news data found for given range")
	ErrNoPriceData      = errors.New("no price data found for given range")
	ErrInvalidWindow    = errors.New("volatility window must be at least 2 returns")
)

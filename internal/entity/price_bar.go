package entity

import "cloud.google.com/go/civil"

// PriceBar is the closing price of one trading day.
type PriceBar struct {
	Date  civil.Date `json:"date"`
	Close float64    `json:"close"`
}

package model

import "github.com/shopspring/decimal"

// DayCategory classifies a calendar day by its aggregate PnL.
type DayCategory string

const (
	// CategoryProfit marks a day whose PnL sum is strictly positive.
	CategoryProfit DayCategory = "profit"

	// CategoryLoss marks a day whose PnL sum is strictly negative.
	CategoryLoss DayCategory = "loss"

	// CategoryNeutral marks a day with zero PnL, including days without
	// any trades at all.
	CategoryNeutral DayCategory = "neutral"
)

// CalendarCell is one slot in the week-major month grid.
// Day is nil for padding slots before the first and after the last day of
// the month; a padding cell carries no category and zero values.
type CalendarCell struct {
	Day        *int            `json:"day"`
	PnL        decimal.Decimal `json:"pnl"`
	TradeCount int             `json:"tradeCount"`
	Category   DayCategory     `json:"category,omitempty"`
}

// CalendarWeek is one grid row of exactly seven cells, Monday first.
type CalendarWeek []CalendarCell

// CalendarMonth is the full week-major grid for one month, joined with the
// daily summary. It is built fresh per request and never persisted.
type CalendarMonth struct {
	Year      int            `json:"year"`
	Month     int            `json:"month"`
	MonthName string         `json:"monthName"`
	Weeks     []CalendarWeek `json:"weeks"`
}

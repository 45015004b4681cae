package calendar

import (
	"time"

	"github.com/tradecal/trade-calendar-backend/internal/model"
)

// daysPerWeek is the fixed width of every grid row.
const daysPerWeek = 7

// BuildMonthGrid lays the given month out as a week-major grid, Monday
// first, and joins each in-month day with the daily summary. Leading and
// trailing out-of-month slots are explicit nil-day padding cells, never a
// day-zero sentinel. Days absent from the summary resolve to zero PnL, zero
// trades, neutral.
//
// A month with no trades at all still produces a full grid so the shape is
// renderable; every cell is simply neutral.
func BuildMonthGrid(year int, month time.Month, summaries map[string]model.DailySummary) model.CalendarMonth {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := first.AddDate(0, 1, -1).Day()

	// Monday-first offset of the month's first day.
	leading := (int(first.Weekday()) + 6) % daysPerWeek

	cells := make([]model.CalendarCell, 0, leading+daysInMonth+daysPerWeek)
	for i := 0; i < leading; i++ {
		cells = append(cells, paddingCell())
	}
	for day := 1; day <= daysInMonth; day++ {
		cells = append(cells, dayCell(year, month, day, summaries))
	}
	for len(cells)%daysPerWeek != 0 {
		cells = append(cells, paddingCell())
	}

	weeks := make([]model.CalendarWeek, 0, len(cells)/daysPerWeek)
	for i := 0; i < len(cells); i += daysPerWeek {
		weeks = append(weeks, model.CalendarWeek(cells[i:i+daysPerWeek]))
	}

	return model.CalendarMonth{
		Year:      year,
		Month:     int(month),
		MonthName: month.String(),
		Weeks:     weeks,
	}
}

// paddingCell is an out-of-month slot: no day, no category, zero values.
func paddingCell() model.CalendarCell {
	return model.CalendarCell{}
}

// dayCell builds the cell for one in-month day, joined with its summary.
func dayCell(year int, month time.Month, day int, summaries map[string]model.DailySummary) model.CalendarCell {
	key := time.Date(year, month, day, 0, 0, 0, 0, time.UTC).Format(model.DateLayout)
	summary := summaries[key]

	d := day
	return model.CalendarCell{
		Day:        &d,
		PnL:        summary.PnL,
		TradeCount: summary.TradeCount,
		Category:   Categorize(summary.PnL),
	}
}

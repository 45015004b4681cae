// Package calendar holds the pure aggregation and month-grid logic.
// Everything here is a function over a snapshot of the stored trades; no
// state survives between calls.
package calendar

import (
	"github.com/shopspring/decimal"

	"github.com/tradecal/trade-calendar-backend/internal/model"
)

// DailySummaries groups trades by calendar date and sums their PnL exactly.
// Dates without trades do not appear in the map; an absent key means "no
// data", which is distinct from a present zero-PnL day. Identical input
// always produces an identical map regardless of trade order.
func DailySummaries(trades []model.Trade) map[string]model.DailySummary {
	summaries := make(map[string]model.DailySummary, len(trades))

	for _, trade := range trades {
		key := trade.DateKey()
		summary := summaries[key]
		summary.PnL = summary.PnL.Add(trade.PnL)
		summary.TradeCount++
		summaries[key] = summary
	}

	return summaries
}

// Categorize classifies an aggregate PnL: strictly positive is profit,
// strictly negative is loss, exact zero is neutral.
func Categorize(pnl decimal.Decimal) model.DayCategory {
	switch pnl.Sign() {
	case 1:
		return model.CategoryProfit
	case -1:
		return model.CategoryLoss
	default:
		return model.CategoryNeutral
	}
}

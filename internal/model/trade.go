package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the canonical calendar-date format used in the database,
// the API and the daily summary keys.
const DateLayout = "2006-01-02"

// TimestampLayout is the canonical full date-time format stored per trade.
// Every stored timestamp is re-formatted into this layout regardless of the
// precision or layout of the source file.
const TimestampLayout = "2006-01-02 15:04:05"

// Trade represents one canonical stored execution record.
// The ID is assigned by the store on insert, is unique and monotonically
// increasing, and is never reused even after a full wipe.
type Trade struct {
	ID        int64           `json:"id"`
	Date      time.Time       `json:"date"`
	Symbol    string          `json:"symbol,omitempty"`
	Quantity  int64           `json:"quantity"`
	PnL       decimal.Decimal `json:"pnl"`
	Timestamp string          `json:"timestamp"`
}

// DateKey returns the trade's calendar date in DateLayout form, the key
// used by the daily summary and the calendar grid.
func (t Trade) DateKey() string {
	return t.Date.Format(DateLayout)
}

// DailySummary is the derived per-day aggregate: exact decimal PnL sum and
// trade count. It is recomputed from the full trade set on every read,
// never persisted.
type DailySummary struct {
	PnL        decimal.Decimal `json:"pnl"`
	TradeCount int             `json:"tradeCount"`
}

// ImportResult summarizes one batch import of a trade log file.
// Dropped counts rows excluded because their date or PnL could not be
// parsed; the import is lossy only in ways this count makes visible.
type ImportResult struct {
	BatchID  string `json:"batchId"`
	Format   string `json:"format"`
	Imported int    `json:"imported"`
	Dropped  int    `json:"dropped"`
}

package testutil

import (
	"database/sql"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tradecal/trade-calendar-backend/internal/model"
)

// TradeBuilder provides a fluent interface for creating test trades.
//
// Example usage:
//
//	// Simple creation with defaults
//	trade := testutil.NewTrade().Build(t, db)
//
//	// Customized trade
//	trade := testutil.NewTrade().
//	    WithDate("2024-06-03").
//	    WithSymbol("ES").
//	    WithPnL("150.00").
//	    Build(t, db)
type TradeBuilder struct {
	Date      string
	Symbol    string
	Quantity  int64
	PnL       string
	Timestamp string
}

// NewTrade creates a TradeBuilder with sensible defaults.
func NewTrade() *TradeBuilder {
	return &TradeBuilder{
		Date:      "2024-06-03",
		Symbol:    "ES",
		Quantity:  1,
		PnL:       "100.00",
		Timestamp: "2024-06-03 09:30:00",
	}
}

// WithDate sets a custom date (YYYY-MM-DD).
func (b *TradeBuilder) WithDate(date string) *TradeBuilder {
	b.Date = date
	return b
}

// WithSymbol sets a custom symbol.
func (b *TradeBuilder) WithSymbol(symbol string) *TradeBuilder {
	b.Symbol = symbol
	return b
}

// WithQuantity sets a custom quantity.
func (b *TradeBuilder) WithQuantity(quantity int64) *TradeBuilder {
	b.Quantity = quantity
	return b
}

// WithPnL sets a custom PnL decimal string.
func (b *TradeBuilder) WithPnL(pnl string) *TradeBuilder {
	b.PnL = pnl
	return b
}

// WithTimestamp sets a custom timestamp string.
func (b *TradeBuilder) WithTimestamp(timestamp string) *TradeBuilder {
	b.Timestamp = timestamp
	return b
}

// Build inserts the trade into the database and returns it with its
// store-assigned id.
func (b *TradeBuilder) Build(t *testing.T, db *sql.DB) model.Trade {
	t.Helper()

	query := `
		INSERT INTO trade (date, symbol, quantity, pnl, timestamp)
		VALUES (?, ?, ?, ?, ?)
	`

	result, err := db.Exec(query, b.Date, b.Symbol, b.Quantity, b.PnL, b.Timestamp)
	if err != nil {
		t.Fatalf("Failed to create test trade: %v", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		t.Fatalf("Failed to read test trade id: %v", err)
	}

	date, err := time.Parse(model.DateLayout, b.Date)
	if err != nil {
		t.Fatalf("Invalid test trade date %q: %v", b.Date, err)
	}

	pnl, err := decimal.NewFromString(b.PnL)
	if err != nil {
		t.Fatalf("Invalid test trade pnl %q: %v", b.PnL, err)
	}

	return model.Trade{
		ID:        id,
		Date:      date.UTC(),
		Symbol:    b.Symbol,
		Quantity:  b.Quantity,
		PnL:       pnl,
		Timestamp: b.Timestamp,
	}
}

// Convenience functions

// CreateTrade creates a trade with the given date, symbol, quantity and pnl.
//
// Example usage:
//
//	trade := testutil.CreateTrade(t, db, "2024-06-03", "ES", 2, "150.00")
func CreateTrade(t *testing.T, db *sql.DB, date, symbol string, quantity int64, pnl string) model.Trade {
	t.Helper()
	return NewTrade().
		WithDate(date).
		WithSymbol(symbol).
		WithQuantity(quantity).
		WithPnL(pnl).
		WithTimestamp(date + " 09:30:00").
		Build(t, db)
}

// CreateTrades creates count trades on the same date with the given pnl.
func CreateTrades(t *testing.T, db *sql.DB, date string, count int, pnl string) []model.Trade {
	t.Helper()

	trades := make([]model.Trade, count)
	for i := 0; i < count; i++ {
		trades[i] = NewTrade().WithDate(date).WithPnL(pnl).Build(t, db)
	}
	return trades
}

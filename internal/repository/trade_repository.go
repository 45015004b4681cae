package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tradecal/trade-calendar-backend/internal/apperrors"
	"github.com/tradecal/trade-calendar-backend/internal/model"
)

// TradeRepository provides data access methods for the trade table.
// It is the only owner of the durable trade set; aggregation and calendar
// layout are computed elsewhere over snapshots it returns.
type TradeRepository struct {
	db *sql.DB
}

// NewTradeRepository creates a new TradeRepository with the provided database connection.
func NewTradeRepository(db *sql.DB) *TradeRepository {
	return &TradeRepository{db: db}
}

// InsertTrade appends one trade and fills in its store-assigned ID.
// Each insert is its own implicit SQLite transaction, so a batch interrupted
// partway leaves every earlier insert durable and duplicates none.
func (s *TradeRepository) InsertTrade(ctx context.Context, trade *model.Trade) error {
	query := `
		INSERT INTO trade (date, symbol, quantity, pnl, timestamp)
		VALUES (?, ?, ?, ?, ?)
	`

	result, err := s.db.ExecContext(ctx, query,
		trade.Date.Format(model.DateLayout),
		trade.Symbol,
		trade.Quantity,
		trade.PnL.String(),
		trade.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("%w: failed to insert trade: %v", apperrors.ErrStorage, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("%w: failed to read inserted trade id: %v", apperrors.ErrStorage, err)
	}
	trade.ID = id

	return nil
}

// GetAllTrades retrieves every stored trade in id (insertion) order.
func (s *TradeRepository) GetAllTrades(ctx context.Context) ([]model.Trade, error) {
	query := `
		SELECT id, date, symbol, quantity, pnl, timestamp
		FROM trade
		ORDER BY id ASC
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to query trade table: %v", apperrors.ErrStorage, err)
	}
	defer rows.Close()

	return scanTrades(rows)
}

// GetTradesByDate retrieves all trades attributed to the given calendar
// date, exact match only.
func (s *TradeRepository) GetTradesByDate(ctx context.Context, date time.Time) ([]model.Trade, error) {
	query := `
		SELECT id, date, symbol, quantity, pnl, timestamp
		FROM trade
		WHERE date = ?
		ORDER BY id ASC
	`

	rows, err := s.db.QueryContext(ctx, query, date.Format(model.DateLayout))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to query trade table: %v", apperrors.ErrStorage, err)
	}
	defer rows.Close()

	return scanTrades(rows)
}

// DeleteAllTrades irreversibly removes every stored trade. The id sequence
// is intentionally not reset: AUTOINCREMENT keeps sqlite_sequence intact, so
// future inserts continue from the old maximum and deleted ids never return.
// Deleting from an already-empty table succeeds.
func (s *TradeRepository) DeleteAllTrades(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM trade`); err != nil {
		return fmt.Errorf("%w: failed to delete trades: %v", apperrors.ErrStorage, err)
	}
	return nil
}

// GetLatestTradeDate returns the most recent date with at least one stored
// trade, or the zero time when the store is empty.
func (s *TradeRepository) GetLatestTradeDate(ctx context.Context) (time.Time, error) {
	var latest sql.NullString

	err := s.db.QueryRowContext(ctx, `SELECT MAX(date) FROM trade`).Scan(&latest)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: failed to query latest trade date: %v", apperrors.ErrStorage, err)
	}
	if !latest.Valid {
		return time.Time{}, nil
	}

	date, err := ParseDate(latest.String)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", apperrors.ErrStorage, err)
	}

	return date, nil
}

// scanTrades reads trade rows into models, parsing the stored date and
// decimal pnl text.
func scanTrades(rows *sql.Rows) ([]model.Trade, error) {
	trades := []model.Trade{}

	for rows.Next() {
		var t model.Trade
		var dateStr, pnlStr string

		err := rows.Scan(
			&t.ID,
			&dateStr,
			&t.Symbol,
			&t.Quantity,
			&pnlStr,
			&t.Timestamp,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to scan trade row: %v", apperrors.ErrStorage, err)
		}

		t.Date, err = ParseDate(dateStr)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", apperrors.ErrStorage, err)
		}

		t.PnL, err = decimal.NewFromString(pnlStr)
		if err != nil {
			return nil, fmt.Errorf("%w: stored pnl %q is not a decimal: %v", apperrors.ErrStorage, pnlStr, err)
		}

		trades = append(trades, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: error iterating trade table: %v", apperrors.ErrStorage, err)
	}

	return trades, nil
}

package testutil

import (
	"database/sql"
	"testing"

	"github.com/tradecal/trade-calendar-backend/internal/repository"
	"github.com/tradecal/trade-calendar-backend/internal/service"
)

func NewTestTradeService(t *testing.T, db *sql.DB) *service.TradeService {
	t.Helper()

	tradeRepo := repository.NewTradeRepository(db)

	return service.NewTradeService(tradeRepo)
}

func NewTestCalendarService(t *testing.T, db *sql.DB) *service.CalendarService {
	t.Helper()

	tradeRepo := repository.NewTradeRepository(db)

	return service.NewCalendarService(tradeRepo)
}

func NewTestSystemService(t *testing.T, db *sql.DB) *service.SystemService {
	t.Helper()

	return service.NewSystemService(db)
}

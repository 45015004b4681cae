package service

import (
	"context"
	"fmt"
	"time"

	"github.com/tradecal/trade-calendar-backend/internal/apperrors"
	"github.com/tradecal/trade-calendar-backend/internal/calendar"
	"github.com/tradecal/trade-calendar-backend/internal/model"
	"github.com/tradecal/trade-calendar-backend/internal/repository"
)

// CalendarService computes the daily summary and the month-grid views over
// the current trade store contents.
type CalendarService struct {
	tradeRepo *repository.TradeRepository
}

// NewCalendarService creates a new CalendarService with the provided repository dependencies.
func NewCalendarService(tradeRepo *repository.TradeRepository) *CalendarService {
	return &CalendarService{
		tradeRepo: tradeRepo,
	}
}

// GetDailySummary recomputes the per-day PnL sums and trade counts from the
// full trade set. The result is always consistent with the store at the
// moment of the call.
func (s *CalendarService) GetDailySummary(ctx context.Context) (map[string]model.DailySummary, error) {
	trades, err := s.tradeRepo.GetAllTrades(ctx)
	if err != nil {
		return nil, err
	}
	return calendar.DailySummaries(trades), nil
}

// GetMonthGrid builds the week-major grid for an explicit year and month.
func (s *CalendarService) GetMonthGrid(ctx context.Context, year int, month int) (*model.CalendarMonth, error) {
	if month < 1 || month > 12 || year < 1 {
		return nil, fmt.Errorf("%w: %d-%d", apperrors.ErrInvalidMonth, year, month)
	}

	summaries, err := s.GetDailySummary(ctx)
	if err != nil {
		return nil, err
	}

	grid := calendar.BuildMonthGrid(year, time.Month(month), summaries)
	return &grid, nil
}

// GetLatestMonthGrid builds the grid for the most recent month containing a
// trade. With an empty store there is no such month and the caller gets
// apperrors.ErrNoTrades; the frontend renders its empty state instead.
func (s *CalendarService) GetLatestMonthGrid(ctx context.Context) (*model.CalendarMonth, error) {
	latest, err := s.tradeRepo.GetLatestTradeDate(ctx)
	if err != nil {
		return nil, err
	}
	if latest.IsZero() {
		return nil, apperrors.ErrNoTrades
	}

	return s.GetMonthGrid(ctx, latest.Year(), int(latest.Month()))
}

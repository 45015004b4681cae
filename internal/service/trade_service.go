package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tradecal/trade-calendar-backend/internal/api/request"
	"github.com/tradecal/trade-calendar-backend/internal/apperrors"
	"github.com/tradecal/trade-calendar-backend/internal/importer"
	"github.com/tradecal/trade-calendar-backend/internal/model"
	"github.com/tradecal/trade-calendar-backend/internal/repository"
)

// TradeService handles trade-related business logic operations.
type TradeService struct {
	tradeRepo *repository.TradeRepository
}

// NewTradeService creates a new TradeService with the provided repository dependencies.
func NewTradeService(tradeRepo *repository.TradeRepository) *TradeService {
	return &TradeService{
		tradeRepo: tradeRepo,
	}
}

// GetAllTrades retrieves every stored trade in insertion order.
func (s *TradeService) GetAllTrades(ctx context.Context) ([]model.Trade, error) {
	return s.tradeRepo.GetAllTrades(ctx)
}

// GetTradesByDate retrieves the trades attributed to one calendar date,
// the detail view behind a calendar cell.
func (s *TradeService) GetTradesByDate(ctx context.Context, dateStr string) ([]model.Trade, error) {
	date, err := time.Parse(model.DateLayout, dateStr)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", apperrors.ErrInvalidDate, dateStr)
	}
	return s.tradeRepo.GetTradesByDate(ctx, date)
}

// CreateTrade stores one manually entered trade.
//
// PnL is taken from the request when present; otherwise it is computed as
// (sellPrice - buyPrice) * quantity. The prices themselves are entry
// assistance only and are never stored.
func (s *TradeService) CreateTrade(ctx context.Context, req request.CreateTradeRequest) (*model.Trade, error) {
	date, err := time.Parse(model.DateLayout, req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", apperrors.ErrInvalidDate, req.Date)
	}

	pnl, err := resolvePnL(req)
	if err != nil {
		return nil, err
	}

	timestamp := time.Now().UTC()
	if req.Timestamp != "" {
		parsed, err := time.Parse(model.TimestampLayout, req.Timestamp)
		if err != nil {
			parsed, err = time.Parse(time.RFC3339, req.Timestamp)
			if err != nil {
				return nil, fmt.Errorf("%w: timestamp %q", apperrors.ErrInvalidDate, req.Timestamp)
			}
		}
		timestamp = parsed.UTC()
	}

	trade := &model.Trade{
		Date:      date.UTC(),
		Symbol:    req.Symbol,
		Quantity:  req.Quantity,
		PnL:       pnl,
		Timestamp: timestamp.Format(model.TimestampLayout),
	}

	if err := s.tradeRepo.InsertTrade(ctx, trade); err != nil {
		return nil, err
	}

	return trade, nil
}

// DeleteAllTrades wipes the store. Safe to call on an empty store; the id
// sequence keeps counting either way.
func (s *TradeService) DeleteAllTrades(ctx context.Context) error {
	return s.tradeRepo.DeleteAllTrades(ctx)
}

// ImportTrades normalizes an uploaded row set and stores the resulting
// trades one insert at a time. Rows dropped during normalization are
// reported in the result; a storage failure partway aborts the batch but
// leaves the rows inserted before it durable.
func (s *TradeService) ImportTrades(ctx context.Context, rs importer.RowSet) (*model.ImportResult, error) {
	format, normalized, err := importer.Normalize(rs)
	if err != nil {
		return nil, err
	}

	batchID := uuid.New().String()

	imported := 0
	for i := range normalized.Trades {
		if err := s.tradeRepo.InsertTrade(ctx, &normalized.Trades[i]); err != nil {
			return nil, fmt.Errorf("import batch %s failed after %d inserts: %w", batchID, imported, err)
		}
		imported++
	}

	log.Printf("import batch %s: format=%s imported=%d dropped=%d",
		batchID, format, imported, normalized.Dropped)

	return &model.ImportResult{
		BatchID:  batchID,
		Format:   string(format),
		Imported: imported,
		Dropped:  normalized.Dropped,
	}, nil
}

// resolvePnL picks the trade's PnL from the request: the explicit pnl field
// when given, else the buy/sell price pair.
func resolvePnL(req request.CreateTradeRequest) (decimal.Decimal, error) {
	if req.PnL != "" {
		pnl, err := decimal.NewFromString(req.PnL)
		if err != nil {
			return decimal.Decimal{}, fmt.Errorf("%w: pnl %q", apperrors.ErrInvalidAmount, req.PnL)
		}
		return pnl, nil
	}

	if req.BuyPrice == "" || req.SellPrice == "" {
		return decimal.Decimal{}, fmt.Errorf("%w: pnl or buyPrice/sellPrice", apperrors.ErrMissingRequiredField)
	}

	buy, err := decimal.NewFromString(req.BuyPrice)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: buyPrice %q", apperrors.ErrInvalidAmount, req.BuyPrice)
	}
	sell, err := decimal.NewFromString(req.SellPrice)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: sellPrice %q", apperrors.ErrInvalidAmount, req.SellPrice)
	}

	return sell.Sub(buy).Mul(decimal.NewFromInt(req.Quantity)), nil
}

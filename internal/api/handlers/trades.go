package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tradecal/trade-calendar-backend/internal/api/request"
	"github.com/tradecal/trade-calendar-backend/internal/api/response"
	"github.com/tradecal/trade-calendar-backend/internal/apperrors"
	"github.com/tradecal/trade-calendar-backend/internal/service"
	"github.com/tradecal/trade-calendar-backend/internal/validation"
)

// TradeHandler handles HTTP requests for trade endpoints.
// It serves as the HTTP layer adapter, parsing requests and delegating
// business logic to the tradeService.
type TradeHandler struct {
	tradeService *service.TradeService
}

// NewTradeHandler creates a new TradeHandler with the provided service dependency.
func NewTradeHandler(tradeService *service.TradeService) *TradeHandler {
	return &TradeHandler{
		tradeService: tradeService,
	}
}

// AllTrades handles GET requests to retrieve every stored trade.
//
// Endpoint: GET /api/trade
// Response: 200 OK with array of Trade
// Error: 500 Internal Server Error if retrieval fails
func (h *TradeHandler) AllTrades(w http.ResponseWriter, r *http.Request) {
	trades, err := h.tradeService.GetAllTrades(r.Context())
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveTrades.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, trades)
}

// TradesByDate handles GET requests for the trades of one calendar date,
// the detail view behind a calendar cell.
//
// Endpoint: GET /api/trade/date/{date}
// Response: 200 OK with array of Trade (empty array for a date without trades)
// Error: 400 Bad Request if the date is malformed (validated by middleware)
// Error: 500 Internal Server Error if retrieval fails
func (h *TradeHandler) TradesByDate(w http.ResponseWriter, r *http.Request) {
	date := chi.URLParam(r, "date")

	trades, err := h.tradeService.GetTradesByDate(r.Context(), date)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveTrades.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, trades)
}

// CreateTrade handles POST requests to store one manually entered trade.
//
// Endpoint: POST /api/trade
// Request Body: CreateTradeRequest (date, symbol, quantity, pnl or buy/sell price)
// Response: 201 Created with the stored Trade (including its assigned id)
// Error: 400 Bad Request if validation fails or request body is invalid
// Error: 500 Internal Server Error if creation fails
func (h *TradeHandler) CreateTrade(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.CreateTradeRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateCreateTrade(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	trade, err := h.tradeService.CreateTrade(r.Context(), req)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToCreateTrade.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusCreated, trade)
}

// DeleteAllTrades handles DELETE requests to wipe the trade store.
// Confirmation is a frontend concern; the call is idempotent.
//
// Endpoint: DELETE /api/trade
// Response: 204 No Content
// Error: 500 Internal Server Error if deletion fails
func (h *TradeHandler) DeleteAllTrades(w http.ResponseWriter, r *http.Request) {
	if err := h.tradeService.DeleteAllTrades(r.Context()); err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToDeleteTrades.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusNoContent, nil)
}

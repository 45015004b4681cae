package handlers

import (
	"errors"
	"net/http"

	"github.com/tradecal/trade-calendar-backend/internal/api/response"
	"github.com/tradecal/trade-calendar-backend/internal/apperrors"
	"github.com/tradecal/trade-calendar-backend/internal/importer"
	"github.com/tradecal/trade-calendar-backend/internal/service"
)

// ImportHandler handles HTTP requests for trade log uploads.
type ImportHandler struct {
	tradeService *service.TradeService
}

// NewImportHandler creates a new ImportHandler with the provided service dependency.
func NewImportHandler(tradeService *service.TradeService) *ImportHandler {
	return &ImportHandler{
		tradeService: tradeService,
	}
}

// ImportCSV handles POST requests to ingest a trade log CSV. The format
// (generic log or broker export) is detected from the header row.
//
// Endpoint: POST /api/import (body: text/csv)
// Response: 200 OK with ImportResult (batch id, detected format, imported
// and dropped row counts)
// Error: 400 Bad Request if the CSV is unreadable, empty, or matches no
// known format (nothing stored in that case)
// Error: 500 Internal Server Error on a storage failure (rows inserted
// before the failure remain stored)
func (h *ImportHandler) ImportCSV(w http.ResponseWriter, r *http.Request) {
	rowSet, err := importer.ReadCSV(r.Body)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid CSV upload", err.Error())
		return
	}

	result, err := h.tradeService.ImportTrades(r.Context(), rowSet)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidImportSchema) {
			response.RespondError(w, http.StatusBadRequest, apperrors.ErrInvalidImportSchema.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToImportTrades.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, result)
}

package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/tradecal/trade-calendar-backend/internal/api/response"
	"github.com/tradecal/trade-calendar-backend/internal/apperrors"
	"github.com/tradecal/trade-calendar-backend/internal/service"
)

// CalendarHandler handles HTTP requests for the month-grid and daily
// summary endpoints.
type CalendarHandler struct {
	calendarService *service.CalendarService
}

// NewCalendarHandler creates a new CalendarHandler with the provided service dependency.
func NewCalendarHandler(calendarService *service.CalendarService) *CalendarHandler {
	return &CalendarHandler{
		calendarService: calendarService,
	}
}

// LatestMonth handles GET requests for the grid of the most recent month
// containing a trade.
//
// Endpoint: GET /api/calendar
// Response: 200 OK with CalendarMonth
// Error: 404 Not Found when no trades are stored (frontend shows its empty state)
// Error: 500 Internal Server Error if the grid cannot be built
func (h *CalendarHandler) LatestMonth(w http.ResponseWriter, r *http.Request) {
	grid, err := h.calendarService.GetLatestMonthGrid(r.Context())
	if err != nil {
		if errors.Is(err, apperrors.ErrNoTrades) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrNoTrades.Error(), "")
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToBuildCalendar.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, grid)
}

// Month handles GET requests for an explicit month's grid. A month without
// trades still yields a full all-neutral grid.
//
// Endpoint: GET /api/calendar/{year}/{month}
// Response: 200 OK with CalendarMonth
// Error: 400 Bad Request if year or month is not a number or out of range
// Error: 500 Internal Server Error if the grid cannot be built
func (h *CalendarHandler) Month(w http.ResponseWriter, r *http.Request) {
	year, errYear := strconv.Atoi(chi.URLParam(r, "year"))
	month, errMonth := strconv.Atoi(chi.URLParam(r, "month"))
	if errYear != nil || errMonth != nil {
		response.RespondError(w, http.StatusBadRequest, apperrors.ErrInvalidMonth.Error(), "year and month must be numeric")
		return
	}

	grid, err := h.calendarService.GetMonthGrid(r.Context(), year, month)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidMonth) {
			response.RespondError(w, http.StatusBadRequest, apperrors.ErrInvalidMonth.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToBuildCalendar.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, grid)
}

// Summary handles GET requests for the raw daily summary map.
//
// Endpoint: GET /api/calendar/summary
// Response: 200 OK with map of date to DailySummary
// Error: 500 Internal Server Error if aggregation fails
func (h *CalendarHandler) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.calendarService.GetDailySummary(r.Context())
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveSummary.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, summary)
}

// Package middleware provides HTTP middleware for request validation and processing.
package middleware

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tradecal/trade-calendar-backend/internal/api/response"
	"github.com/tradecal/trade-calendar-backend/internal/validation"
)

// ValidateDateMiddleware validates that the date URL parameter is present
// and in YYYY-MM-DD form. Returns 400 Bad Request otherwise.
// Apply it to routes that take a calendar date in the URL path.
//
// Example usage in router:
//
//	r.Route("/date/{date}", func(r chi.Router) {
//	    r.Use(middleware.ValidateDateMiddleware)
//	    r.Get("/", handler.TradesByDate)
//	})
func ValidateDateMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		date := chi.URLParam(r, "date")

		if date == "" {
			response.RespondError(w, http.StatusBadRequest, "valid date is required", "")
			return
		}

		if err := validation.ValidateDate(date); err != nil {
			response.RespondError(w, http.StatusBadRequest, "invalid date format", err.Error())
			return
		}

		next.ServeHTTP(w, r)
	})
}

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/tradecal/trade-calendar-backend/internal/api/handlers"
	custommiddleware "github.com/tradecal/trade-calendar-backend/internal/api/middleware"
	"github.com/tradecal/trade-calendar-backend/internal/config"
	"github.com/tradecal/trade-calendar-backend/internal/service"
)

// NewRouter creates and configures the HTTP router
func NewRouter(systemService *service.SystemService, tradeService *service.TradeService, calendarService *service.CalendarService, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(custommiddleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS middleware
	corsMiddleware := custommiddleware.NewCORS(cfg.CORS.AllowedOrigins)
	r.Use(corsMiddleware.Handler)

	// API routes
	r.Route("/api", func(r chi.Router) {
		// System namespace
		r.Route("/system", func(r chi.Router) {
			systemHandler := handlers.NewSystemHandler(systemService)
			r.Get("/health", systemHandler.Health)
			r.Get("/version", systemHandler.Version)
		})

		r.Route("/trade", func(r chi.Router) {
			tradeHandler := handlers.NewTradeHandler(tradeService)
			r.Get("/", tradeHandler.AllTrades)
			r.Post("/", tradeHandler.CreateTrade)
			r.Delete("/", tradeHandler.DeleteAllTrades)

			r.Route("/date/{date}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateDateMiddleware)
				r.Get("/", tradeHandler.TradesByDate)
			})
		})

		r.Route("/import", func(r chi.Router) {
			importHandler := handlers.NewImportHandler(tradeService)
			r.Post("/", importHandler.ImportCSV)
		})

		r.Route("/calendar", func(r chi.Router) {
			calendarHandler := handlers.NewCalendarHandler(calendarService)
			r.Get("/", calendarHandler.LatestMonth)
			r.Get("/summary", calendarHandler.Summary)
			r.Get("/{year}/{month}", calendarHandler.Month)
		})
	})

	return r
}

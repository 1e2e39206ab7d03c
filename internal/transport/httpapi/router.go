package httpapi

import (
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/odalys-dev/pennybook/internal/transport/httpapi/handler"
	"github.com/odalys-dev/pennybook/internal/transport/httpapi/middleware"
	"github.com/odalys-dev/pennybook/pkg/logger"
)

// Config holds router configuration
type Config struct {
	Logger             *logger.Logger
	AllowedOrigins     []string
	HealthHandler      *handler.HealthHandler
	TransactionHandler *handler.TransactionHandler
	StatsHandler       *handler.StatsHandler
	CategoryHandler    *handler.CategoryHandler
	PrefsHandler       *handler.PrefsHandler
	BackupHandler      *handler.BackupHandler
}

// NewRouter creates a new HTTP router
func NewRouter(cfg Config) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.Logger(cfg.Logger))
	r.Use(middleware.CORS(cfg.AllowedOrigins))
	r.Use(chimiddleware.Compress(5))
	r.Use(middleware.RateLimit())

	// Health check endpoints
	r.Get("/health", handler.GetHealth)
	if cfg.HealthHandler != nil {
		r.Get("/health/ready", cfg.HealthHandler.GetReadiness)
	}

	// API routes
	r.Route("/api/v1", func(r chi.Router) {
		if cfg.TransactionHandler != nil {
			r.Post("/transactions", cfg.TransactionHandler.CreateTransaction)
			r.Get("/transactions", cfg.TransactionHandler.ListTransactions)
			r.Put("/transactions/{id}", cfg.TransactionHandler.UpdateTransaction)
			r.Delete("/transactions/{id}", cfg.TransactionHandler.DeleteTransaction)
		}

		if cfg.StatsHandler != nil {
			r.Get("/stats/totals", cfg.StatsHandler.GetTotals)
			r.Get("/stats/breakdown", cfg.StatsHandler.GetBreakdown)
			r.Get("/stats/categories", cfg.StatsHandler.GetDistinctCategories)
		}

		if cfg.CategoryHandler != nil {
			r.Get("/categories", cfg.CategoryHandler.GetCategories)
		}

		if cfg.PrefsHandler != nil {
			r.Get("/preferences", cfg.PrefsHandler.GetPreferences)
			r.Put("/preferences", cfg.PrefsHandler.UpdatePreferences)
		}

		if cfg.BackupHandler != nil {
			r.Post("/export", cfg.BackupHandler.Export)
			r.Post("/import", cfg.BackupHandler.Import)
		}
	})

	return r
}

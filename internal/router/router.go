package router

import (
	"net/http"

	"jewelry-inventory-api/internal/handler"
	"jewelry-inventory-api/internal/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

// Config holds the configuration for creating a router.
type Config struct {
	Logger           *zap.Logger
	Handler          *handler.Handler
	InventoryHandler *handler.InventoryHandler
	StatsHandler     *handler.StatsHandler
	ActivityHandler  *handler.ActivityHandler
	Activity         middleware.ActivityRecorder
	MetricsHandler   http.Handler
	MetricsPath      string
}

// New creates and configures the HTTP router.
func New(cfg Config) *chi.Mux {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	r := chi.NewRouter()

	// Global middleware stack (applies to ALL routes, matched or not)
	r.Use(middleware.RequestID)
	r.Use(middleware.NewRecovery(logger))
	r.Use(middleware.NewLogging(logger))
	r.Use(middleware.Metrics)
	r.Use(middleware.NewActivity(cfg.Activity))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         300,
	}))

	// Unmatched paths and wrong methods share one 404 shape
	r.NotFound(handler.NotFound)
	r.MethodNotAllowed(handler.NotFound)

	if cfg.Handler != nil {
		r.Get("/", cfg.Handler.Index)
		r.Get("/health", cfg.Handler.Health)
		r.Get("/ready", cfg.Handler.Ready)
		r.Get("/status", cfg.Handler.Status)
	}

	if cfg.InventoryHandler != nil {
		r.Route("/items", func(r chi.Router) {
			r.Get("/", cfg.InventoryHandler.ListItems)
			r.Get("/filters", cfg.InventoryHandler.FilterItems)
			r.Get("/item/{id}", cfg.InventoryHandler.GetItem)
		})
	}

	if cfg.StatsHandler != nil {
		r.Get("/stats", cfg.StatsHandler.GetStats)
	}

	if cfg.ActivityHandler != nil {
		r.Get("/activity", cfg.ActivityHandler.Recent)
	}

	if cfg.MetricsHandler != nil {
		path := cfg.MetricsPath
		if path == "" {
			path = "/metrics"
		}
		r.Method(http.MethodGet, path, cfg.MetricsHandler)
	}

	return r
}

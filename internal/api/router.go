// Package api provides the HTTP API for railboard.
package api

import (
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/railboard/railboard/internal/api/handler"
	"github.com/railboard/railboard/internal/api/middleware"
	"github.com/railboard/railboard/pkg/nationalrail"
)

// RouterConfig holds configuration for the router.
type RouterConfig struct {
	Version   string
	BuildTime string
	Logger    zerolog.Logger
	Boards    nationalrail.BoardProvider
}

// NewRouter creates a new chi router with all API routes configured.
func NewRouter(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware - order matters
	r.Use(middleware.RequestID)            // Generate/propagate request ID first
	r.Use(middleware.Tracing())            // Distributed tracing
	r.Use(middleware.Logger(cfg.Logger))   // Structured logging
	r.Use(middleware.Recovery(cfg.Logger)) // Panic recovery
	r.Use(chimiddleware.RealIP)            // Real IP extraction

	opsHandler := handler.NewOpsHandler(cfg.Version, cfg.BuildTime)
	boardHandler := handler.NewBoardHandler(cfg.Boards, cfg.Logger)

	boardRateLimit := middleware.RateLimitByIP(middleware.BoardRateLimit)

	r.Route("/v1", func(r chi.Router) {
		r.Route("/ops", func(r chi.Router) {
			r.Get("/health", opsHandler.HealthCheck)
		})

		// Board endpoints fan out to the upstream Darwin service, hence
		// the per-IP rate limit.
		r.Group(func(r chi.Router) {
			r.Use(boardRateLimit)
			r.Get("/boards/{crs}", boardHandler.GetBoard)
			r.Get("/services/{serviceID}", boardHandler.GetService)
		})
	})

	return r
}

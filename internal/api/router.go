// Pulseboard - Social Content Analytics and Engagement Insights
// Copyright 2026 enamorak
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/enamorak/pulseboard

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/enamorak/pulseboard/internal/config"
	"github.com/enamorak/pulseboard/internal/middleware"
)

// NewRouter assembles the HTTP routing tree.
func NewRouter(cfg config.APIConfig, handler *Handler) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	r.Use(securityHeaders)

	// Operational endpoints skip the rate limiter so probes and
	// scrapers are never throttled by dashboard traffic.
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.Handler())
	r.Get("/ws", handler.WebSocket)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(httprate.LimitByIP(cfg.RateLimitReqs, cfg.RateLimitWindow))
		r.Use(middleware.Prometheus)

		r.Get("/health", handler.Health)

		r.Route("/content", func(r chi.Router) {
			r.Get("/", handler.ContentList)
			r.Get("/analytics", handler.ContentAnalytics)
			r.Get("/patterns", handler.ContentPatterns)
			r.Get("/recommendations", handler.ContentRecommendations)
		})

		r.Post("/chat", handler.Chat)

		r.Route("/notifications", func(r chi.Router) {
			r.Get("/", handler.Notifications)
			r.Post("/{id}/read", handler.NotificationRead)
		})

		r.Route("/plan", func(r chi.Router) {
			r.Get("/", handler.PlanList)
			r.Post("/", handler.PlanCreate)
			r.Get("/{id}/tasks", handler.PlanTasks)
		})

		r.Get("/networks/stats", handler.NetworkStats)
	})

	return r
}

// securityHeaders sets the baseline response headers for a JSON API.
func securityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Referrer-Policy", "no-referrer")
		next.ServeHTTP(w, r)
	})
}

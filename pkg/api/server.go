// Package api exposes the binascii conversions over HTTP.
//
// Encode operations and crc32 return a JSON envelope; decode operations
// return the raw decoded bytes as an octet-stream. All /api/v1 routes are
// protected by an X-API-Key header, and /metrics serves Prometheus
// metrics unauthenticated for scraping.
package api

import (
	"fmt"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Routes builds the router for the server, with middleware and all
// endpoints configured
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(requestIDMiddleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Prometheus metrics endpoint (unprotected for scraping)
	r.Handle("/metrics", promhttp.Handler())

	// API key authentication middleware for protected routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(s.metrics.InstrumentAuthMiddleware(apiKeyMiddleware(s.config.APIKey)))

		// Health check
		r.Get("/health", s.metrics.InstrumentHandler("GET", "/api/v1/health", s.handleHealth))

		// Codec operations
		r.Post("/hex/encode", s.metrics.InstrumentHandler("POST", "/api/v1/hex/encode", s.handleHexEncode))
		r.Post("/hex/decode", s.metrics.InstrumentHandler("POST", "/api/v1/hex/decode", s.handleHexDecode))
		r.Post("/base64/encode", s.metrics.InstrumentHandler("POST", "/api/v1/base64/encode", s.handleBase64Encode))
		r.Post("/base64/decode", s.metrics.InstrumentHandler("POST", "/api/v1/base64/decode", s.handleBase64Decode))
		r.Post("/crc32", s.metrics.InstrumentHandler("POST", "/api/v1/crc32", s.handleCRC32))
	})

	return r
}

// StartServer starts the HTTP server with all routes configured
func StartServer(config ServerConfig) error {
	metrics := NewMetrics()
	server := NewServer(config, metrics)

	addr := fmt.Sprintf("%s:%d", config.Bind, config.Port)
	log.Printf("binascii API listening on %s", addr)
	return http.ListenAndServe(addr, server.Routes())
}

// Package http provides the HTTP presentation surface: session
// creation and the session commands, with transcripts submitted over
// HTTP feeding the push speech input.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"cognitive-screening-service/internal/app"
)

// NewRouter constructs the HTTP router for the service.
func NewRouter(application *app.Application, reg *Registry) http.Handler {
	r := chi.NewRouter()

	// Basic middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(Instrument)

	// Health endpoints
	r.Get("/v1/liveness", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/v1/readiness", func(w http.ResponseWriter, _ *http.Request) {
		if application.StartupTime.IsZero() {
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte("starting"))
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	// API routes
	r.Route("/v1/sessions", func(r chi.Router) {
		r.Post("/", reg.handleCreate)
		r.Route("/{sessionID}", func(r chi.Router) {
			r.Get("/", reg.handleGet)
			r.Post("/start", reg.handleStart)
			r.Post("/transcript", reg.handleTranscript)
			r.Post("/audio", reg.handleAudio)
			r.Post("/advance", reg.handleAdvance)
			r.Post("/skip", reg.handleSkip)
			r.Post("/reset", reg.handleReset)
		})
	})

	return r
}

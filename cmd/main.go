package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	api "cognitive-screening-service/internal/api/http"
	"cognitive-screening-service/internal/app"
	"cognitive-screening-service/internal/config"
	"cognitive-screening-service/internal/events"
	"cognitive-screening-service/internal/observability"
)

func main() {
	cfg := config.Load()

	application := app.New(cfg)
	if err := application.Start(); err != nil {
		log.Fatal().Err(err).Msg("Application startup failed")
	}
	defer application.Shutdown()

	// Kafka publisher with separate topics for scored turns and final results
	publisher := events.New(&events.Config{
		Enabled:      cfg.Kafka.Enabled,
		Brokers:      cfg.Kafka.Brokers,
		TopicTurns:   cfg.Kafka.TopicTurns,
		TopicResults: cfg.Kafka.TopicResults,
		Principal:    cfg.Kafka.Principal,
	})
	defer publisher.Close()

	// Metrics and health endpoints on a separate port
	obs := observability.NewServer(":" + cfg.Service.MetricsPort)
	obs.Start()

	registry := api.NewRegistry(cfg, publisher)
	server := &http.Server{
		Addr:         ":" + cfg.Service.HTTPPort,
		Handler:      api.NewRouter(application, registry),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", server.Addr).Msg("Cognitive screening service listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP serve failed")
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	log.Info().Msg("Shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("HTTP shutdown failed")
	}
	if err := obs.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Observability shutdown failed")
	}
}

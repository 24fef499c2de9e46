package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fortuna/pallas/internal/api/rest"
	"github.com/fortuna/pallas/internal/cache"
	"github.com/fortuna/pallas/internal/config"
	"github.com/fortuna/pallas/internal/library"
	"github.com/fortuna/pallas/pkg/logger"
)

const (
	serviceName    = "pallas"
	serviceVersion = "1.0.0"
)

func main() {
	cfg := config.Load()
	log := logger.New(cfg.LogLevel, cfg.LogPretty).With().Str("service", serviceName).Logger()

	log.Info().Str("version", serviceVersion).Msg("starting tracking-data service")

	// Load every TF05 document up front; the library is immutable after
	// this point.
	lib, err := library.LoadDir(cfg.DataDir, log)
	if err != nil {
		log.Fatal().Err(err).Str("dir", cfg.DataDir).Msg("failed to load match documents")
	}
	log.Info().Int("matches", lib.Len()).Str("dir", cfg.DataDir).Msg("match library loaded")

	// Redis is optional: without it the service just re-renders SVGs.
	var svgCache *cache.RenderCache
	if cfg.RedisURL != "" {
		svgCache, err = cache.NewRenderCache(cfg.RedisURL, cfg.CacheTTL)
		if err != nil {
			log.Warn().Err(err).Msg("redis unavailable, render caching disabled")
			svgCache = nil
		} else {
			defer svgCache.Close()
			log.Info().Dur("ttl", cfg.CacheTTL).Msg("render cache connected")
		}
	}

	restServer := rest.NewServer(cfg.RESTPort, lib, svgCache, log)
	go func() {
		log.Info().Str("port", cfg.RESTPort).Msg("REST API server listening")
		if err := restServer.Start(); err != nil {
			log.Error().Err(err).Msg("REST server error")
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	log.Info().Msg("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := restServer.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("REST server shutdown error")
	}

	log.Info().Msg("stopped")
}

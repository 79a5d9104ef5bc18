package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nguyentantai21042004/script-extractor/internal/api"
	"github.com/nguyentantai21042004/script-extractor/internal/config"
	"github.com/nguyentantai21042004/script-extractor/internal/logger"
	"github.com/nguyentantai21042004/script-extractor/internal/processor"
)

const shutdownTimeout = 30 * time.Second

func main() {
	ctx := context.Background()

	if err := config.LoadEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load .env: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.Load("config.yaml")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Logging.Level)

	if err := os.MkdirAll(cfg.Paths.Temp, 0755); err != nil {
		log.Error(ctx, "Failed to create temp dir: %v", err)
		os.Exit(1)
	}

	proc, components := processor.Build(ctx, cfg, log)
	defer components.Close()

	if cfg.Server.APIKey == "" {
		log.Warn(ctx, "SERVICE_API_KEY not set, API key check disabled")
	} else {
		log.Info(ctx, "API key: %s", logger.MaskSecret(cfg.Server.APIKey))
	}

	router := api.NewRouter(api.Deps{
		Processor: proc,
		Provider:  components.Provider,
		Store:     components.Store,
		APIKey:    cfg.Server.APIKey,
	}, log)

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		log.Info(ctx, "Server listening on %s", cfg.Server.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-sigChan:
		log.Info(ctx, "Shutdown signal received")
	case err := <-errChan:
		log.Error(ctx, "Server error: %v", err)
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error(ctx, "Shutdown failed: %v", err)
	}

	log.Info(ctx, "Server stopped")
}

package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/finverse-labs/cardinfo-service/internal/application/services"
	"github.com/finverse-labs/cardinfo-service/internal/config"
	"github.com/finverse-labs/cardinfo-service/internal/infrastructure/binlist"
	"github.com/finverse-labs/cardinfo-service/internal/interfaces/rest/handlers"
	"github.com/finverse-labs/cardinfo-service/internal/validation"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := cfg.Logger.NewLogger()
	slog.SetDefault(logger)

	logger.Info("starting cardinfo service",
		"port", cfg.Server.Port,
		"lookup_base_url", cfg.Lookup.BaseURL,
		"log_level", cfg.Logger.Level,
	)

	validator := validation.New()
	lookupClient := binlist.NewClient(cfg.Lookup)
	cardInfoService := services.NewCardInfoService(validator, lookupClient, logger)

	h := handlers.NewHandlers(cardInfoService, logger)
	router := handlers.NewRouter(h, logger, cfg.Server.ReadTimeout)

	server := &http.Server{
		Addr:         "0.0.0.0:" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		logger.Info("server starting", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	logger.Info("server exited")
}

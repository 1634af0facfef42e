// Package main is the entry point for the customer web front-end.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"customerweb/internal/config"
	"customerweb/internal/infrastructure/customerapi"
	"customerweb/internal/infrastructure/http/web"
	"customerweb/pkg/logger"
)

func main() {
	// Configuration first: a missing customer API endpoint is fatal
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(logger.Config{
		Level:       cfg.Log.Level,
		Development: cfg.IsDevelopment(),
	})
	if err != nil {
		fmt.Printf("failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	log.Infow("starting customer web",
		"env", cfg.App.Env,
		"customer_api", cfg.CustomerAPI.BaseURL,
	)

	// --- Customer API client ---
	client := customerapi.New(customerapi.Config{
		BaseURL: cfg.CustomerAPI.BaseURL,
		Timeout: cfg.CustomerAPI.Timeout,
	})

	// --- Router ---
	handler, err := web.NewHandler(web.RouterConfig{
		CustomerAPI:        client,
		CustomerAPIBaseURL: cfg.CustomerAPI.BaseURL,
		Logger:             log.WithComponent("http"),
		Development:        cfg.IsDevelopment(),
		SecureCookies:      !cfg.IsDevelopment(),
	})
	if err != nil {
		log.Fatalw("failed to build router", "error", err)
	}

	// --- HTTP Server ---
	port := strconv.Itoa(cfg.App.Port)
	server := &http.Server{
		Addr:         ":" + port,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Infow("server starting", "port", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalw("server failed", "error", err)
		}
	}()

	// --- Graceful shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalw("server forced to shutdown", "error", err)
	}

	log.Info("server stopped")
}

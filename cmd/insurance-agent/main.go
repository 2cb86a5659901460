// cmd/insurance-agent/main.go
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"insurance-mcp/internal/common/config"
	"insurance-mcp/internal/common/database"
	"insurance-mcp/internal/common/logger"
	"insurance-mcp/internal/common/observability"
	"insurance-mcp/internal/mcpserver"
)

// retryWithBackoff attempts to execute a function with exponential backoff
func retryWithBackoff(operation func() error, maxRetries int, initialDelay time.Duration, log *zap.Logger, operationName string) error {
	var err error
	delay := initialDelay

	for i := 0; i < maxRetries; i++ {
		err = operation()
		if err == nil {
			return nil
		}

		if i < maxRetries-1 {
			log.Warn(fmt.Sprintf("%s failed, retrying...", operationName),
				zap.Error(err),
				zap.Int("attempt", i+1),
				zap.Int("maxRetries", maxRetries),
				zap.Duration("nextRetryIn", delay),
			)
			time.Sleep(delay)
			delay *= 2 // Exponential backoff
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operationName, maxRetries, err)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		// Logging config is unavailable before the config loads; fall back
		// to a console logger for the fatal path.
		logger.New("info", "console").Fatal("config load failed", zap.Error(err))
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()

	// Wrap zap logger with our logger interface
	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting insurance agent...",
		zap.String("transport", cfg.Server.Transport),
	)

	obs := observability.New(cfg.App.Name)
	defer obs.Shutdown()

	ctx := context.Background()

	// --- Init MongoDB with retry ---
	// Connect disconnects a client whose ping fails, so each retry starts
	// from a clean slate instead of stacking driver monitors.
	var store *database.MongoClient
	err = retryWithBackoff(func() error {
		var err error
		store, err = database.Connect(ctx, cfg.Database.MongoDB)
		return err
	}, 10, 2*time.Second, zapLog, "MongoDB connection")

	if err != nil {
		zapLog.Fatal("mongodb failed after retries", zap.Error(err))
	}
	zapLog.Info("MongoDB connected successfully")

	// --- Build MCP Server ---
	registry := mcpserver.NewRegistry(cfg, store, log)
	s := mcpserver.New(cfg, registry, log, obs)

	// --- Health & Metrics Server ---
	// The stdio transport owns stdin/stdout, so health and metrics get their
	// own listener.
	if cfg.Metrics.Enabled {
		go func() {
			mux := http.NewServeMux()
			mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusOK)
				json.NewEncoder(w).Encode(map[string]string{
					"status": "healthy",
					"time":   time.Now().Format(time.RFC3339),
				})
			})
			mux.HandleFunc("/ready", func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				if err := store.Ping(r.Context()); err != nil {
					w.WriteHeader(http.StatusServiceUnavailable)
					json.NewEncoder(w).Encode(map[string]string{
						"status": "not ready",
						"error":  err.Error(),
					})
					return
				}
				w.WriteHeader(http.StatusOK)
				json.NewEncoder(w).Encode(map[string]string{
					"status": "ready",
					"time":   time.Now().Format(time.RFC3339),
				})
			})
			mux.Handle("/metrics", promhttp.Handler())

			addr := fmt.Sprintf(":%d", cfg.Metrics.Port)
			zapLog.Info("Health/Metrics server listening", zap.String("addr", addr))
			if err := http.ListenAndServe(addr, mux); err != nil {
				zapLog.Error("Health/Metrics server failed", zap.Error(err))
			}
		}()
	}

	// --- Serve the selected transport ---
	serveErr := make(chan error, 1)
	go func() {
		switch cfg.Server.Transport {
		case "http":
			zapLog.Info("Serving MCP over HTTP",
				zap.String("host", cfg.Server.Host),
				zap.Int("port", cfg.Server.Port),
			)
			serveErr <- mcpserver.ServeHTTP(s, cfg.Server)
		default:
			zapLog.Info("Serving MCP over stdio")
			serveErr <- mcpserver.ServeStdio(s)
		}
	}()

	// --- Graceful Shutdown ---
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serveErr:
		if err != nil {
			zapLog.Fatal("transport failed", zap.Error(err))
		}
		zapLog.Info("Transport closed")
	case sig := <-sigCh:
		zapLog.Info("Shutdown signal received", zap.String("signal", sig.String()))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := store.Close(shutdownCtx); err != nil {
		zapLog.Error("Error closing MongoDB client", zap.Error(err))
	}

	zapLog.Info("Insurance agent stopped gracefully")
}

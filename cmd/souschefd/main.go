// Command souschefd serves recipe generation over HTTP. POST /v1/recipes
// accepts narration text or a page URL and returns the structured record;
// /healthz and /metrics cover liveness and Prometheus metrics.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"

	"souschef/core/generate"
	"souschef/core/jobs"
	"souschef/internal/config"
	"souschef/internal/httpapi"
	"souschef/providers/runner/httprunner"
)

func main() {
	level := parseLogLevel(getenv("LOG_LEVEL", "INFO"))
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})))

	addr := getenv("API_ADDR", ":8080")

	cfg, err := config.Load(os.Getenv("SOUSCHEF_CONFIG"))
	if err != nil {
		slog.Error("failed to load configuration", "error", err.Error())
		os.Exit(1)
	}

	provider := httprunner.New().WithAPIKey(cfg.APIKey)
	if cfg.RunnerURL != "" {
		provider = provider.WithBaseURL(cfg.RunnerURL)
	}

	driver := jobs.NewDriver(provider,
		jobs.WithPollInterval(cfg.PollInterval()),
		jobs.WithMaxAttempts(cfg.MaxAttempts),
		jobs.WithPollObserver(func(attempt int, status jobs.Status) {
			httpapi.JobPollsTotal.Inc()
		}),
	)

	generator := generate.New(driver,
		generate.WithModel(cfg.Model),
		generate.WithGenerationConfig(cfg.GenerationConfig()),
	)

	srv := &http.Server{
		Addr:              addr,
		Handler:           httpapi.NewRouter(generator),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      90 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		slog.Info("server listening", "addr", addr, "model", cfg.Model)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err.Error())
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("shutdown signal received")

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server shutdown error", "error", err.Error())
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseLogLevel(s string) slog.Level {
	switch s {
	case "DEBUG", "debug":
		return slog.LevelDebug
	case "WARN", "warn", "warning":
		return slog.LevelWarn
	case "ERROR", "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

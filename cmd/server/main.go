package main

import (
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/adlens/campaign-brief-go/internal/brief"
	"github.com/adlens/campaign-brief-go/internal/config"
	"github.com/adlens/campaign-brief-go/internal/httpx"
)

func main() {
	cfg := config.FromEnv()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	var gen brief.Generator
	if cfg.OpenAIKey != "" {
		gen = brief.NewOpenAI(cfg, logger)
	} else {
		logger.Warn("OPENAI_API_KEY not set, /brief will return analysis only")
	}

	r := httpx.NewRouter(logger, cfg, gen)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Info("starting server", slog.String("port", cfg.Port))
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server error", slog.String("err", err.Error()))
		os.Exit(1)
	}
}

package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port           string
	LogLevel       slog.Level
	OpenAIKey      string
	OpenAIModel    string
	OpenAITimeout  time.Duration
	MaxUploadBytes int64
}

func FromEnv() Config {
	to := 30 * time.Second
	if v := os.Getenv("OPENAI_TIMEOUT_SECONDS"); v != "" {
		if d, err := time.ParseDuration(v + "s"); err == nil {
			to = d
		}
	}
	lvl := slog.LevelInfo
	if os.Getenv("LOG_LEVEL") == "debug" {
		lvl = slog.LevelDebug
	}
	maxUp := int64(10 << 20)
	if v := os.Getenv("MAX_UPLOAD_BYTES"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
			maxUp = n
		}
	}
	return Config{
		Port:           envOr("PORT", "8080"),
		LogLevel:       lvl,
		OpenAIKey:      os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:    envOr("OPENAI_MODEL", "gpt-4o-mini"),
		OpenAITimeout:  to,
		MaxUploadBytes: maxUp,
	}
}

func envOr(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}

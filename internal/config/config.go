package config

import (
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/akozyrev/draft-miniapp/internal/backend"
)

// Config holds the environment configuration for the mini app server.
type Config struct {
	Port          string
	BackendURL    string
	BotToken      string
	SessionSecret string
	SessionTTL    time.Duration
	TemplatesDir  string
}

// Load reads configuration from the environment, honoring a local .env file
// when present. Only BACKEND_URL matters for correctness; everything else
// has a development default.
func Load() Config {
	if err := godotenv.Load(); err == nil {
		slog.Debug("loaded .env file")
	}

	return Config{
		Port:          getEnv("PORT", "8080"),
		BackendURL:    getEnv("BACKEND_URL", backend.DefaultBaseURL),
		BotToken:      os.Getenv("BOT_TOKEN"),
		SessionSecret: getEnv("SESSION_SECRET", "dev-secret-change-me"),
		SessionTTL:    30 * 24 * time.Hour,
		TemplatesDir:  getEnv("TEMPLATES_DIR", "templates"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

package main

import (
	"html/template"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/akozyrev/draft-miniapp/internal/backend"
	"github.com/akozyrev/draft-miniapp/internal/config"
	"github.com/akozyrev/draft-miniapp/internal/handlers"
	"github.com/akozyrev/draft-miniapp/internal/lobbyview"
	"github.com/akozyrev/draft-miniapp/internal/session"
	"github.com/akozyrev/draft-miniapp/pkg/logging"
)

func main() {
	logging.Setup()

	cfg := config.Load()
	if cfg.BotToken == "" {
		slog.Warn("BOT_TOKEN is not set, init data verification will reject all users")
	}

	tmpl, err := template.ParseGlob(filepath.Join(cfg.TemplatesDir, "*.html"))
	if err != nil {
		slog.Error("failed to parse templates", "error", err)
		os.Exit(1)
	}

	api := backend.New(cfg.BackendURL)
	app := &handlers.Context{
		Backend:   api,
		Lobby:     lobbyview.NewSyncer(api),
		Sessions:  session.NewManager(cfg.SessionSecret, cfg.SessionTTL),
		Templates: tmpl,
		BotToken:  cfg.BotToken,
	}

	addr := ":" + cfg.Port
	slog.Info("starting server", "addr", addr, "backend", cfg.BackendURL)
	if err := http.ListenAndServe(addr, app.Routes()); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

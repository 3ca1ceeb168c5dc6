package handlers

import (
	"errors"
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"github.com/akozyrev/draft-miniapp/internal/backend"
	"github.com/akozyrev/draft-miniapp/internal/models"
	"github.com/akozyrev/draft-miniapp/internal/telegram"
)

// homeData feeds the home template.
type homeData struct {
	User   telegram.User
	Mock   bool
	Bridge template.JS
}

// HandleHome serves the landing screen with the create and join forms.
func (app *Context) HandleHome(w http.ResponseWriter, r *http.Request) {
	ident := CurrentIdentity(r.Context())

	d := telegram.NewDirectives()
	d.Ready()
	d.HideBackButton()

	app.renderPage(w, "home.html", homeData{
		User:   ident.User,
		Mock:   ident.Mock,
		Bridge: template.JS(d.JSON()),
	})
}

// HandleAuth upgrades a mock session using init data posted by the page
// shim. Verification failure keeps the current session; the screens stay
// usable either way.
func (app *Context) HandleAuth(w http.ResponseWriter, r *http.Request) {
	user, err := telegram.VerifyInitData(r.FormValue("init_data"), app.BotToken, time.Now())
	if err != nil {
		slog.Warn("auth init data rejected", "error", err)
		w.WriteHeader(http.StatusNoContent)
		return
	}

	token, err := app.Sessions.Issue(*user, false)
	if err != nil {
		slog.Error("failed to issue session", "error", err)
		w.WriteHeader(http.StatusNoContent)
		return
	}

	http.SetCookie(w, sessionCookie(token))
	slog.Info("session upgraded", "player_id", user.ID)
	w.WriteHeader(http.StatusNoContent)
}

// HandleCreateLobby registers the player, creates a lobby and sends the
// client to the lobby screen.
func (app *Context) HandleCreateLobby(w http.ResponseWriter, r *http.Request) {
	user := CurrentIdentity(r.Context()).User

	// An already-registered id is a normal outcome here, not a failure.
	if _, err := app.Backend.AddPlayer(r.Context(), user.DisplayName(), user.ID); err != nil {
		slog.Debug("add_player rejected", "player_id", user.ID, "error", err)
	}

	lobby, err := app.Backend.CreateLobby(r.Context(), user.ID)
	if err != nil {
		msg := "Не удалось создать лобби"
		if errors.Is(err, backend.ErrNoLobbyCode) {
			// The lobby may exist server-side, but without a code there is
			// nothing to navigate to.
			msg = "Лобби создано, но код не получен"
		}
		slog.Error("create lobby failed", "player_id", user.ID, "error", err)
		app.formError(w, msg)
		return
	}

	slog.Info("lobby created", "code", lobby.Code, "player_id", user.ID)
	setHaptic(w, telegram.HapticSuccess)
	w.Header().Set("HX-Redirect", "/lobby/"+lobby.Code)
	w.WriteHeader(http.StatusOK)
}

// HandleJoinLobby validates the entered code and sends the client to the
// lobby screen, which owns the actual membership check and join.
func (app *Context) HandleJoinLobby(w http.ResponseWriter, r *http.Request) {
	user := CurrentIdentity(r.Context()).User

	code := models.NormalizeCode(r.FormValue("code"))
	if code == "" {
		app.formError(w, "Введите код лобби")
		return
	}
	if len(code) != models.CodeLength {
		app.formError(w, "Введите 6-значный код лобби")
		return
	}

	if _, err := app.Backend.AddPlayer(r.Context(), user.DisplayName(), user.ID); err != nil {
		slog.Debug("add_player rejected", "player_id", user.ID, "error", err)
	}

	setHaptic(w, telegram.HapticMedium)
	w.Header().Set("HX-Redirect", "/lobby/"+code)
	w.WriteHeader(http.StatusOK)
}

func (app *Context) renderPage(w http.ResponseWriter, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := app.Templates.ExecuteTemplate(w, name, data); err != nil {
		slog.Error("template render failed", "template", name, "error", err)
	}
}

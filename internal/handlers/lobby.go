package handlers

import (
	"html/template"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/akozyrev/draft-miniapp/internal/lobbyview"
	"github.com/akozyrev/draft-miniapp/internal/models"
	"github.com/akozyrev/draft-miniapp/internal/render"
	"github.com/akozyrev/draft-miniapp/internal/telegram"
)

// lobbyData feeds the lobby template. Error and Body are mutually
// exclusive: a load failure renders the error state instead of the rosters.
type lobbyData struct {
	Code   string
	Body   template.HTML
	Error  string
	Bridge template.JS
}

// HandleLobby renders the lobby screen, joining first when the user is not
// yet a member.
func (app *Context) HandleLobby(w http.ResponseWriter, r *http.Request) {
	code := models.NormalizeCode(chi.URLParam(r, "code"))
	user := CurrentIdentity(r.Context()).User

	d := telegram.NewDirectives()
	d.Ready()
	d.ShowBackButton("/")

	state, joined, err := app.Lobby.Enter(r.Context(), code, user.ID)
	if err != nil {
		slog.Error("lobby load failed", "code", code, "player_id", user.ID, "error", err)
		d.Feedback(telegram.HapticError)
		app.renderPage(w, "lobby.html", lobbyData{
			Code:   code,
			Error:  "Не удалось загрузить лобби",
			Bridge: template.JS(d.JSON()),
		})
		return
	}
	if joined {
		slog.Info("joined lobby", "code", code, "player_id", user.ID)
	}

	view := lobbyview.Build(state, user.ID)
	app.renderPage(w, "lobby.html", lobbyData{
		Code:   code,
		Body:   template.HTML(render.LobbyBody(view)),
		Bridge: template.JS(d.JSON()),
	})
}

// HandleLobbyRefresh re-runs the lobby entry and returns the body fragment
// for the HTMX swap. On failure the swap is suppressed so the screen keeps
// the last good state.
func (app *Context) HandleLobbyRefresh(w http.ResponseWriter, r *http.Request) {
	code := models.NormalizeCode(chi.URLParam(r, "code"))
	user := CurrentIdentity(r.Context()).User

	state, _, err := app.Lobby.Enter(r.Context(), code, user.ID)
	if err != nil {
		slog.Error("lobby refresh failed", "code", code, "error", err)
		setHaptic(w, telegram.HapticError)
		w.Header().Set("HX-Reswap", "none")
		w.WriteHeader(http.StatusOK)
		return
	}

	view := lobbyview.Build(state, user.ID)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(render.LobbyBody(view)))
}

// HandleLobbyQR renders the shareable lobby code as a QR image.
func (app *Context) HandleLobbyQR(w http.ResponseWriter, r *http.Request) {
	code := models.NormalizeCode(chi.URLParam(r, "code"))
	if len(code) != models.CodeLength {
		http.NotFound(w, r)
		return
	}

	png, err := qrcode.Encode(code, qrcode.Medium, 256)
	if err != nil {
		slog.Error("qr encode failed", "code", code, "error", err)
		http.Error(w, "qr unavailable", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Write(png)
}

package handlers

import (
	"context"
	"fmt"
	"html/template"
	"net/http"

	"github.com/akozyrev/draft-miniapp/internal/lobbyview"
	"github.com/akozyrev/draft-miniapp/internal/models"
	"github.com/akozyrev/draft-miniapp/internal/render"
	"github.com/akozyrev/draft-miniapp/internal/session"
	"github.com/akozyrev/draft-miniapp/internal/telegram"
)

// DraftService is the slice of the backend client the screens call directly.
// Lobby entry goes through the Syncer instead.
type DraftService interface {
	AddPlayer(ctx context.Context, name string, id int64) (*models.Player, error)
	CreateLobby(ctx context.Context, playerID int64) (*models.Lobby, error)
}

// Context holds shared application dependencies.
type Context struct {
	Backend   DraftService
	Lobby     *lobbyview.Syncer
	Sessions  *session.Manager
	Templates *template.Template
	BotToken  string
}

// setHaptic asks the page shim to pulse the given feedback category via an
// HTMX trigger event.
func setHaptic(w http.ResponseWriter, h telegram.Haptic) {
	w.Header().Set("HX-Trigger", fmt.Sprintf(`{"haptic":%q}`, h))
}

// formError returns an inline error fragment for the home screen forms and
// pulses the error haptic.
func (app *Context) formError(w http.ResponseWriter, message string) {
	setHaptic(w, telegram.HapticError)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(render.ErrorText(message)))
}

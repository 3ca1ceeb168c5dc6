package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/akozyrev/draft-miniapp/internal/session"
	"github.com/akozyrev/draft-miniapp/internal/telegram"
)

type contextKey string

const identityKey contextKey = "identity"

// Identity is the resolved user plus how it was obtained. Mock identities
// come from the development fallback and can be upgraded through /auth.
type Identity struct {
	User telegram.User
	Mock bool
}

// CurrentIdentity returns the identity resolved for this request.
func CurrentIdentity(ctx context.Context) Identity {
	ident, _ := ctx.Value(identityKey).(Identity)
	return ident
}

// WithIdentity resolves the request identity: session cookie first, then
// init data supplied by the host, then the development mock. A fresh
// identity is written back as a session cookie so it stays stable across
// requests.
func (app *Context) WithIdentity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ident, ok := app.identityFromCookie(r)
		if !ok {
			ident = app.freshIdentity(r)
			if token, err := app.Sessions.Issue(ident.User, ident.Mock); err == nil {
				http.SetCookie(w, sessionCookie(token))
			} else {
				slog.Error("failed to issue session", "error", err)
			}
		}
		ctx := context.WithValue(r.Context(), identityKey, ident)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (app *Context) identityFromCookie(r *http.Request) (Identity, bool) {
	cookie, err := r.Cookie(session.CookieName)
	if err != nil {
		return Identity{}, false
	}
	claims, err := app.Sessions.Parse(cookie.Value)
	if err != nil {
		return Identity{}, false
	}
	return Identity{User: claims.User(), Mock: claims.Mock}, true
}

// freshIdentity verifies init data when the host supplied it and falls back
// to a mock identity otherwise.
func (app *Context) freshIdentity(r *http.Request) Identity {
	if raw := r.Header.Get("X-Telegram-Init-Data"); raw != "" {
		user, err := telegram.VerifyInitData(raw, app.BotToken, time.Now())
		if err == nil {
			return Identity{User: *user}
		}
		slog.Warn("init data rejected", "error", err)
	}

	user := telegram.MockUser()
	slog.Warn("no Telegram user available, using mock identity", "player_id", user.ID)
	return Identity{User: user, Mock: true}
}

func sessionCookie(token string) *http.Cookie {
	return &http.Cookie{
		Name:     session.CookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}

var requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "draft_http_requests_total",
	Help: "HTTP requests by method and status.",
}, []string{"method", "status"})

// RequestLogger logs every request with a generated id and counts it.
func RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		reqID := uuid.NewString()

		ww := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(ww, r)

		requestsTotal.WithLabelValues(r.Method, strconv.Itoa(ww.status)).Inc()
		slog.Info("request",
			"id", reqID,
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.status,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Routes builds the application router.
func (app *Context) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(RequestLogger)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Group(func(r chi.Router) {
		r.Use(app.WithIdentity)

		r.Get("/", app.HandleHome)
		r.Post("/auth", app.HandleAuth)
		r.Post("/create", app.HandleCreateLobby)
		r.Post("/join", app.HandleJoinLobby)

		r.Get("/lobby/{code}", app.HandleLobby)
		r.Get("/lobby/{code}/refresh", app.HandleLobbyRefresh)
		r.Get("/lobby/{code}/qr.png", app.HandleLobbyQR)
	})

	return r
}

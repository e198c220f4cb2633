package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"poolmirror/internal/http/handlers"
	"poolmirror/internal/middleware"
)

func NewRouter(app *handlers.App, logger zerolog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.RequestID,
		chimw.RealIP,
		chimw.Recoverer,
		middleware.Logger(logger),
	)

	r.Get("/v1/healthz", app.Health)
	r.Get("/v1/stats", app.Stats)
	r.Route("/v1/contributors", func(r chi.Router) {
		r.Get("/", app.ListContributors)
		r.Get("/{id}/payments", app.ContributorPayments)
	})
	r.Get("/v1/payments", app.ListPayments)

	return r
}

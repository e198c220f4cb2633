package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"poolmirror/internal/adapter/repo"
	"poolmirror/internal/domain"
	"poolmirror/internal/infra"
)

// App bundles the dependencies shared by the read-only API handlers.
type App struct {
	Contributors domain.ContributorStore
	Payments     domain.PaymentStore
	SQL          infra.SQLExecutor
	Logger       zerolog.Logger
}

func NewApp(sql infra.SQLExecutor, logger zerolog.Logger) *App {
	return &App{
		Contributors: repo.NewContributorRepository(sql, logger),
		Payments:     repo.NewPaymentRepository(sql, logger),
		SQL:          sql,
		Logger:       logger,
	}
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) serverError(w http.ResponseWriter, err error, msg string) {
	a.Logger.Error().Err(err).Msg(msg)
	a.json(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
}

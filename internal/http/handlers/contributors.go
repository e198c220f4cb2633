package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"poolmirror/internal/domain"
)

const (
	defaultListLimit = 100
	maxListLimit     = 500
)

type contributorJSON struct {
	ContributorID string `json:"contributor_id"`
	FullName      string `json:"full_name"`
}

// ListContributors renders the mirrored contributor records.
func (a *App) ListContributors(w http.ResponseWriter, r *http.Request) {
	contributors, err := a.Contributors.List(r.Context(), listLimit(r))
	if err != nil {
		a.serverError(w, err, "list contributors failed")
		return
	}

	items := make([]contributorJSON, 0, len(contributors))
	for _, c := range contributors {
		items = append(items, contributorJSON{ContributorID: c.ContributorID, FullName: c.FullName})
	}
	a.json(w, http.StatusOK, map[string]any{"items": items})
}

// ContributorPayments renders one contributor's mirrored payments, newest first.
func (a *App) ContributorPayments(w http.ResponseWriter, r *http.Request) {
	contributorID := chi.URLParam(r, "id")
	if contributorID == "" {
		a.json(w, http.StatusBadRequest, map[string]string{"error": "contributor id is required"})
		return
	}

	payments, err := a.Payments.ListByContributor(r.Context(), contributorID, listLimit(r))
	if err != nil {
		a.serverError(w, err, "list contributor payments failed")
		return
	}
	a.json(w, http.StatusOK, map[string]any{"items": paymentItems(payments)})
}

func paymentItems(payments []domain.Payment) []paymentJSON {
	items := make([]paymentJSON, 0, len(payments))
	for _, p := range payments {
		items = append(items, paymentJSON{
			ID:            p.ID,
			Date:          p.Date.Format("2006-01-02"),
			Amount:        p.Amount,
			ContributorID: p.ContributorID,
		})
	}
	return items
}

func listLimit(r *http.Request) int {
	limit := defaultListLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	return limit
}

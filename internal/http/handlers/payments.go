package handlers

import (
	"net/http"
)

type paymentJSON struct {
	ID            string  `json:"id"`
	Date          string  `json:"date"`
	Amount        float64 `json:"amount"`
	ContributorID string  `json:"contributor_id"`
}

// ListPayments renders the mirrored payments, newest first.
func (a *App) ListPayments(w http.ResponseWriter, r *http.Request) {
	payments, err := a.Payments.ListRecent(r.Context(), listLimit(r))
	if err != nil {
		a.serverError(w, err, "list payments failed")
		return
	}
	a.json(w, http.StatusOK, map[string]any{"items": paymentItems(payments)})
}

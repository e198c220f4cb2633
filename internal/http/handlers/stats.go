package handlers

import (
	"net/http"
	"time"

	"poolmirror/internal/sqlinline"
)

// Stats renders a summary of the mirrored pool state.
func (a *App) Stats(w http.ResponseWriter, r *http.Request) {
	var (
		contributorCount int64
		paymentCount     int64
		totalAmount      float64
		latestPayment    *time.Time
	)
	row := a.SQL.QueryRow(r.Context(), sqlinline.QStatsSummary)
	if err := row.Scan(&contributorCount, &paymentCount, &totalAmount, &latestPayment); err != nil {
		a.serverError(w, err, "stats summary failed")
		return
	}

	resp := map[string]any{
		"contributor_count": contributorCount,
		"payment_count":     paymentCount,
		"total_amount":      totalAmount,
	}
	if latestPayment != nil {
		resp["latest_payment"] = latestPayment.Format("2006-01-02")
	}
	a.json(w, http.StatusOK, resp)
}

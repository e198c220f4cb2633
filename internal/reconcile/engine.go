// Package reconcile computes the rows a snapshot adds on top of the mirrored
// history. The engine is pure: it does no I/O and the persistence layer's
// idempotent upserts take care of collapsing anything already stored.
package reconcile

import (
	"sort"
	"time"

	"poolmirror/internal/domain"
)

// Engine derives new contributor and payment rows from a pool snapshot.
type Engine struct {
	now func() time.Time
}

// New constructs an Engine using the wall clock.
func New() *Engine {
	return &Engine{now: time.Now}
}

// NewWithClock constructs an Engine with an injected clock. The clock decides
// the date and identifier of the synthetic owner payment, so tests pin it.
func NewWithClock(now func() time.Time) *Engine {
	return &Engine{now: now}
}

// Reconcile turns a snapshot plus the owner's already-recorded payment total
// into candidate rows for the store.
//
// The owner's own contribution only exists remotely as a running total
// (the pledge). When the pledge exceeds what the store has already attributed
// to the owner, the difference becomes one synthetic payment dated at this
// run's instant; its identifier therefore never collides with one from an
// earlier run. A pledge at or below the recorded sum emits nothing.
//
// Every remote transaction maps to one payment whose identifier is a pure
// function of (instant, contributor id), preserving snapshot order.
//
// Contributors are the owner followed by the snapshot's contributor map
// entries sorted by id. Duplicates are allowed; the store's upsert collapses
// them.
func (e *Engine) Reconcile(snap domain.Snapshot, ownerRecordedSum float64) ([]domain.Contributor, []domain.Payment) {
	payments := make([]domain.Payment, 0, len(snap.Transactions)+1)

	if remainder := snap.OwnerPledge - ownerRecordedSum; remainder > 0 {
		now := e.now().UTC()
		payments = append(payments, domain.Payment{
			ID:            domain.PaymentID(now, snap.OwnerID),
			Date:          now,
			Amount:        remainder,
			ContributorID: snap.OwnerID,
		})
	}

	for _, t := range snap.Transactions {
		payments = append(payments, domain.Payment{
			ID:            domain.PaymentID(t.Date, t.ContributorID),
			Date:          t.Date.UTC(),
			Amount:        t.Amount,
			ContributorID: t.ContributorID,
		})
	}

	contributors := make([]domain.Contributor, 0, len(snap.Contributors)+1)
	contributors = append(contributors, domain.Contributor{
		ContributorID: snap.OwnerID,
		FullName:      snap.OwnerName,
	})
	ids := make([]string, 0, len(snap.Contributors))
	for id := range snap.Contributors {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		contributors = append(contributors, domain.Contributor{
			ContributorID: id,
			FullName:      snap.Contributors[id],
		})
	}

	return contributors, payments
}

package reconcile

import (
	"strconv"
	"testing"
	"time"

	"poolmirror/internal/domain"
)

var runInstant = time.Date(2025, 4, 1, 12, 0, 0, 0, time.UTC)

func fixedClock() func() time.Time {
	return func() time.Time { return runInstant }
}

func ownerOnlySnapshot(pledge float64) domain.Snapshot {
	return domain.Snapshot{
		PoolID:       "pool-1",
		Title:        "Team trip 2025",
		OwnerID:      "owner-1",
		OwnerName:    "Ada Owner",
		OwnerPledge:  pledge,
		Transactions: nil,
		Contributors: map[string]string{},
	}
}

func TestReconcileFreshPoolEmitsOwnerRemainder(t *testing.T) {
	engine := NewWithClock(fixedClock())

	contributors, payments := engine.Reconcile(ownerOnlySnapshot(100.0), 0)

	if len(contributors) != 1 {
		t.Fatalf("expected 1 contributor, got %d", len(contributors))
	}
	if contributors[0].ContributorID != "owner-1" || contributors[0].FullName != "Ada Owner" {
		t.Fatalf("owner contributor mismatch: %+v", contributors[0])
	}
	if len(payments) != 1 {
		t.Fatalf("expected 1 payment, got %d", len(payments))
	}
	p := payments[0]
	if p.Amount != 100.0 || p.ContributorID != "owner-1" {
		t.Fatalf("owner payment mismatch: %+v", p)
	}
	wantID := strconv.FormatInt(runInstant.Unix(), 10) + "owner-1"
	if p.ID != wantID {
		t.Fatalf("owner payment id mismatch: got %q want %q", p.ID, wantID)
	}
	if !p.Date.Equal(runInstant) {
		t.Fatalf("owner payment date mismatch: got %v", p.Date)
	}
}

func TestReconcileOwnerRemainderArithmetic(t *testing.T) {
	engine := NewWithClock(fixedClock())

	cases := []struct {
		name       string
		pledge     float64
		recorded   float64
		wantCount  int
		wantAmount float64
	}{
		{"partial remainder", 150.5, 100.0, 1, 50.5},
		{"store current", 100.0, 100.0, 0, 0},
		{"store over-recorded", 80.0, 100.0, 0, 0},
		{"zero pledge", 0, 0, 0, 0},
	}
	for _, tc := range cases {
		_, payments := engine.Reconcile(ownerOnlySnapshot(tc.pledge), tc.recorded)
		if len(payments) != tc.wantCount {
			t.Fatalf("%s: expected %d payments, got %d", tc.name, tc.wantCount, len(payments))
		}
		if tc.wantCount == 1 && payments[0].Amount != tc.wantAmount {
			t.Fatalf("%s: amount mismatch: got %v want %v", tc.name, payments[0].Amount, tc.wantAmount)
		}
	}
}

func TestReconcileTransactionsKeepSnapshotOrder(t *testing.T) {
	engine := NewWithClock(fixedClock())
	t1 := time.Date(2025, 3, 2, 8, 0, 0, 0, time.UTC)
	t2 := time.Date(2025, 3, 1, 9, 30, 0, 0, time.UTC)
	snap := ownerOnlySnapshot(100.0)
	snap.Transactions = []domain.Transaction{
		{Date: t1, Amount: 5.0, ContributorID: "abc"},
		{Date: t2, Amount: 7.5, ContributorID: "def"},
	}

	_, payments := engine.Reconcile(snap, 100.0)

	if len(payments) != 2 {
		t.Fatalf("expected 2 payments, got %d", len(payments))
	}
	// Remote order is preserved, not re-sorted by date.
	if payments[0].ContributorID != "abc" || payments[1].ContributorID != "def" {
		t.Fatalf("payment order mismatch: %+v", payments)
	}
	wantID := strconv.FormatInt(t1.Unix(), 10) + "abc"
	if payments[0].ID != wantID {
		t.Fatalf("payment id mismatch: got %q want %q", payments[0].ID, wantID)
	}
}

func TestReconcileTransactionIDsAreDeterministic(t *testing.T) {
	at := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	snap := ownerOnlySnapshot(0)
	snap.Transactions = []domain.Transaction{{Date: at, Amount: 5.0, ContributorID: "abc"}}

	_, first := New().Reconcile(snap, 0)
	_, second := New().Reconcile(snap, 0)

	if first[0].ID != second[0].ID {
		t.Fatalf("ids differ across runs: %q vs %q", first[0].ID, second[0].ID)
	}
	if got := domain.PaymentID(at, "abd"); got == first[0].ID {
		t.Fatalf("distinct contributors produced the same id %q", got)
	}
	if got := domain.PaymentID(at.Add(time.Second), "abc"); got == first[0].ID {
		t.Fatalf("distinct instants produced the same id %q", got)
	}
}

func TestReconcileContributorsOwnerFirstThenMapSorted(t *testing.T) {
	engine := NewWithClock(fixedClock())
	snap := ownerOnlySnapshot(0)
	snap.Contributors = map[string]string{
		"def": "Carol",
		"abc": "Bob",
	}

	contributors, _ := engine.Reconcile(snap, 0)

	want := []domain.Contributor{
		{ContributorID: "owner-1", FullName: "Ada Owner"},
		{ContributorID: "abc", FullName: "Bob"},
		{ContributorID: "def", FullName: "Carol"},
	}
	if len(contributors) != len(want) {
		t.Fatalf("expected %d contributors, got %d", len(want), len(contributors))
	}
	for i := range want {
		if contributors[i] != want[i] {
			t.Fatalf("contributor[%d] mismatch: got %+v want %+v", i, contributors[i], want[i])
		}
	}
}

func TestReconcileOwnerAlwaysPresentEvenWhenMapped(t *testing.T) {
	engine := NewWithClock(fixedClock())
	snap := ownerOnlySnapshot(0)
	snap.Contributors = map[string]string{"owner-1": "Ada O."}

	contributors, _ := engine.Reconcile(snap, 0)

	// Duplicates are allowed here; the store's upsert collapses them and the
	// first-seen name wins.
	if len(contributors) != 2 {
		t.Fatalf("expected 2 contributors, got %d", len(contributors))
	}
	if contributors[0].ContributorID != "owner-1" || contributors[0].FullName != "Ada Owner" {
		t.Fatalf("owner entry must come first with the owner field's name: %+v", contributors[0])
	}
}

func TestReconcileUnmappedTransactionContributorGetsNoRecord(t *testing.T) {
	engine := NewWithClock(fixedClock())
	snap := ownerOnlySnapshot(100.0)
	snap.Transactions = []domain.Transaction{
		{Date: time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC), Amount: 5.0, ContributorID: "abc"},
	}

	contributors, payments := engine.Reconcile(snap, 100.0)

	if len(payments) != 1 || payments[0].ContributorID != "abc" {
		t.Fatalf("expected the transaction payment, got %+v", payments)
	}
	if len(contributors) != 1 || contributors[0].ContributorID != "owner-1" {
		t.Fatalf("expected only the owner contributor, got %+v", contributors)
	}
}

func TestReconcileSecondRunRepeatsTransactionIDs(t *testing.T) {
	firstRun := NewWithClock(fixedClock())
	secondRun := NewWithClock(func() time.Time { return runInstant.Add(time.Hour) })
	snap := ownerOnlySnapshot(100.0)
	snap.Transactions = []domain.Transaction{
		{Date: time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC), Amount: 5.0, ContributorID: "abc"},
	}

	_, first := firstRun.Reconcile(snap, 0)
	_, second := secondRun.Reconcile(snap, 0)

	if len(first) != 2 || len(second) != 2 {
		t.Fatalf("expected owner + transaction payments: %d, %d", len(first), len(second))
	}
	// Transaction-derived rows are identical including ids, so persisting the
	// second run inserts nothing for them.
	if first[1] != second[1] {
		t.Fatalf("transaction payment changed between runs: %+v vs %+v", first[1], second[1])
	}
	// Only the synthetic owner payment is keyed by the run instant.
	if first[0].ID == second[0].ID {
		t.Fatalf("owner payment ids must differ across runs, both %q", first[0].ID)
	}
}

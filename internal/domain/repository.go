package domain

import "context"

// ContributorStore persists contributor identity records.
type ContributorStore interface {
	// UpsertAll inserts the contributors that are not present yet and
	// returns the number of rows actually inserted. Existing rows are left
	// untouched.
	UpsertAll(ctx context.Context, contributors []Contributor) (int, error)
	List(ctx context.Context, limit int) ([]Contributor, error)
}

// PaymentStore persists payment rows keyed by their stable identifier.
type PaymentStore interface {
	// RecordedSum returns the sum of all stored payment amounts for the
	// contributor, 0 when none exist.
	RecordedSum(ctx context.Context, contributorID string) (float64, error)
	// UpsertAll inserts the payments whose ids are not present yet and
	// returns the number of rows actually inserted.
	UpsertAll(ctx context.Context, payments []Payment) (int, error)
	ListRecent(ctx context.Context, limit int) ([]Payment, error)
	ListByContributor(ctx context.Context, contributorID string, limit int) ([]Payment, error)
}

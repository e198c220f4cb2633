package repo

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"poolmirror/internal/domain"
	"poolmirror/internal/infra"
	"poolmirror/internal/sqlinline"
)

// PaymentRepositoryPG implements domain.PaymentStore using PostgreSQL.
type PaymentRepositoryPG struct {
	sql    infra.SQLExecutor
	logger zerolog.Logger
}

// NewPaymentRepository constructs the repository.
func NewPaymentRepository(sql infra.SQLExecutor, logger zerolog.Logger) *PaymentRepositoryPG {
	return &PaymentRepositoryPG{sql: sql, logger: logger}
}

// RecordedSum returns the total amount already stored for the contributor,
// 0 when no payments exist.
func (r *PaymentRepositoryPG) RecordedSum(ctx context.Context, contributorID string) (float64, error) {
	var sum float64
	if err := r.sql.QueryRow(ctx, sqlinline.QOwnerRecordedSum, contributorID).Scan(&sum); err != nil {
		return 0, fmt.Errorf("sum payments for %s: %w", contributorID, err)
	}
	return sum, nil
}

// UpsertAll inserts payments whose ids are not stored yet and reports how
// many rows were actually inserted. Re-importing an already stored payment is
// a no-op, not an error.
func (r *PaymentRepositoryPG) UpsertAll(ctx context.Context, payments []domain.Payment) (int, error) {
	inserted := 0
	for _, p := range payments {
		tag, err := r.sql.Exec(ctx, sqlinline.QUpsertPayment, p.ID, p.Date, p.Amount, p.ContributorID)
		if err != nil {
			if isDuplicateKey(err) {
				r.logger.Warn().Err(err).Str("payment_id", p.ID).Msg("duplicate payment skipped")
				continue
			}
			return inserted, fmt.Errorf("upsert payment %s: %w", p.ID, err)
		}
		inserted += int(tag.RowsAffected())
	}
	return inserted, nil
}

// ListRecent returns stored payments, newest first.
func (r *PaymentRepositoryPG) ListRecent(ctx context.Context, limit int) ([]domain.Payment, error) {
	rows, err := r.sql.Query(ctx, sqlinline.QListRecentPayments, limit)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	defer rows.Close()
	return scanPayments(rows)
}

// ListByContributor returns a contributor's stored payments, newest first.
func (r *PaymentRepositoryPG) ListByContributor(ctx context.Context, contributorID string, limit int) ([]domain.Payment, error) {
	rows, err := r.sql.Query(ctx, sqlinline.QListPaymentsByContributor, contributorID, limit)
	if err != nil {
		return nil, fmt.Errorf("list payments for %s: %w", contributorID, err)
	}
	defer rows.Close()
	return scanPayments(rows)
}

func scanPayments(rows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}) ([]domain.Payment, error) {
	var out []domain.Payment
	for rows.Next() {
		var p domain.Payment
		if err := rows.Scan(&p.ID, &p.Date, &p.Amount, &p.ContributorID); err != nil {
			return nil, fmt.Errorf("scan payment: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

var _ domain.PaymentStore = (*PaymentRepositoryPG)(nil)

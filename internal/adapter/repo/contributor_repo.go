package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"

	"poolmirror/internal/domain"
	"poolmirror/internal/infra"
	"poolmirror/internal/sqlinline"
)

// ContributorRepositoryPG implements domain.ContributorStore using PostgreSQL.
type ContributorRepositoryPG struct {
	sql    infra.SQLExecutor
	logger zerolog.Logger
}

// NewContributorRepository constructs the repository.
func NewContributorRepository(sql infra.SQLExecutor, logger zerolog.Logger) *ContributorRepositoryPG {
	return &ContributorRepositoryPG{sql: sql, logger: logger}
}

// UpsertAll inserts contributors that are not stored yet and reports how many
// rows were actually inserted. A conflicting row keeps its existing full name.
// A duplicate-key violation is logged and skipped; any other failure aborts
// the batch.
func (r *ContributorRepositoryPG) UpsertAll(ctx context.Context, contributors []domain.Contributor) (int, error) {
	inserted := 0
	for _, c := range contributors {
		tag, err := r.sql.Exec(ctx, sqlinline.QUpsertContributor, c.ContributorID, c.FullName)
		if err != nil {
			if isDuplicateKey(err) {
				r.logger.Warn().Err(err).Str("contributor_id", c.ContributorID).Msg("duplicate contributor skipped")
				continue
			}
			return inserted, fmt.Errorf("upsert contributor %s: %w", c.ContributorID, err)
		}
		inserted += int(tag.RowsAffected())
	}
	return inserted, nil
}

// List returns stored contributors ordered by id.
func (r *ContributorRepositoryPG) List(ctx context.Context, limit int) ([]domain.Contributor, error) {
	rows, err := r.sql.Query(ctx, sqlinline.QListContributors, limit)
	if err != nil {
		return nil, fmt.Errorf("list contributors: %w", err)
	}
	defer rows.Close()

	var out []domain.Contributor
	for rows.Next() {
		var c domain.Contributor
		if err := rows.Scan(&c.ContributorID, &c.FullName); err != nil {
			return nil, fmt.Errorf("scan contributor: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// isDuplicateKey reports whether err is a Postgres unique violation. The
// upserts resolve conflicts on their own key with "do nothing", so this only
// fires for violations of some other unique index.
func isDuplicateKey(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

var _ domain.ContributorStore = (*ContributorRepositoryPG)(nil)

package repo

import (
	"context"
	"fmt"

	"poolmirror/internal/infra"
	"poolmirror/internal/sqlinline"
)

// EnsureSchema creates the mirror tables when they do not exist yet. The sync
// run calls it before touching the store so a fresh database works without a
// separate migration step.
func EnsureSchema(ctx context.Context, sql infra.SQLExecutor) error {
	if _, err := sql.Exec(ctx, sqlinline.QCreateContributorsTable); err != nil {
		return fmt.Errorf("create contributors table: %w", err)
	}
	if _, err := sql.Exec(ctx, sqlinline.QCreatePaymentsTable); err != nil {
		return fmt.Errorf("create payments table: %w", err)
	}
	return nil
}

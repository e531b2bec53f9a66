//go:build integration

package testutil

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	pgrepo "github.com/Gunvolt24/eventbus/internal/repo/postgres"
	"github.com/Gunvolt24/eventbus/migrations"
)

// ApplyMigrations применяет вшитые миграции goose к базе пула.
func ApplyMigrations(ctx context.Context, pool *pgxpool.Pool) error {
	if err := pgrepo.Migrate(ctx, pool, migrations.FS); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}

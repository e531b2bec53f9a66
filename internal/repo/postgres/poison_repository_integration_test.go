//go:build integration

package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Gunvolt24/eventbus/internal/domain"
	pgrepo "github.com/Gunvolt24/eventbus/internal/repo/postgres"
	"github.com/Gunvolt24/eventbus/internal/testutil"
)

func startRepo(t *testing.T) (*pgrepo.PoisonRepository, context.Context) {
	t.Helper()

	ctxStart, cancelStart := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancelStart()

	pg, stopPG, err := testutil.StartPostgresTC(ctxStart)
	require.NoError(t, err)
	t.Cleanup(func() { _ = stopPG(context.Background()) })

	require.NoError(t, testutil.ApplyMigrations(ctxStart, pg.Pool))

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	t.Cleanup(cancel)
	return pgrepo.NewPoisonRepository(pg.Pool), ctx
}

func TestPoisonRepo_SaveAndList_TC(t *testing.T) {
	t.Parallel()
	repo, ctx := startRepo(t)

	a := &domain.PoisonRecord{Topic: "media.uploaded", Partition: 0, Offset: 10, Attempts: 3, Error: "boom"}
	b := &domain.PoisonRecord{Topic: "other", Partition: 1, Offset: 5, Attempts: 1, Error: "bad json"}
	require.NoError(t, repo.Save(ctx, a))
	require.NoError(t, repo.Save(ctx, b))
	require.NotZero(t, a.ID)
	require.False(t, a.CreatedAt.IsZero())

	got, err := repo.List(ctx, "media.uploaded", 10, 0)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, int64(10), got[0].Offset)
	require.Equal(t, "boom", got[0].Error)

	all, err := repo.List(ctx, "", 10, 0)
	require.NoError(t, err)
	require.Len(t, all, 2)
}

func TestPoisonRepo_Save_UpsertSameCoordinates_TC(t *testing.T) {
	t.Parallel()
	repo, ctx := startRepo(t)

	rec := &domain.PoisonRecord{Topic: "t", Partition: 2, Offset: 7, Attempts: 1, Error: "first"}
	require.NoError(t, repo.Save(ctx, rec))
	firstID := rec.ID

	again := &domain.PoisonRecord{Topic: "t", Partition: 2, Offset: 7, Attempts: 4, Error: "second"}
	require.NoError(t, repo.Save(ctx, again))
	require.Equal(t, firstID, again.ID)

	got, err := repo.List(ctx, "t", 10, 0)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, 4, got[0].Attempts)
	require.Equal(t, "second", got[0].Error)
}

func TestPoisonRepo_List_Pagination_TC(t *testing.T) {
	t.Parallel()
	repo, ctx := startRepo(t)

	for i := 0; i < 5; i++ {
		require.NoError(t, repo.Save(ctx, &domain.PoisonRecord{Topic: "p", Offset: int64(i), Error: "x"}))
	}

	page, err := repo.List(ctx, "p", 2, 0)
	require.NoError(t, err)
	require.Len(t, page, 2)

	tail, err := repo.List(ctx, "p", 10, 4)
	require.NoError(t, err)
	require.Len(t, tail, 1)
}

func TestPoisonRepo_Save_RejectsEmpty(t *testing.T) {
	repo := pgrepo.NewPoisonRepository(nil)
	require.Error(t, repo.Save(context.Background(), nil))
	require.Error(t, repo.Save(context.Background(), &domain.PoisonRecord{}))
}

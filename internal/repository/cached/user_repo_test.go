package cached

import (
	"context"
	"testing"
	"time"

	"kanban-board-api/internal/models"
	"kanban-board-api/internal/repository/sqlite"
	"kanban-board-api/internal/testutil"

	"github.com/stretchr/testify/require"
)

func newCachedRepo(t *testing.T) (*UserRepo, *sqlite.UserRepo) {
	t.Helper()
	db, err := testutil.NewInMemoryDB()
	require.NoError(t, err)
	inner := sqlite.NewUserRepo(db)
	return NewUserRepo(inner, time.Minute), inner
}

func TestCachedRepo_GetByID_ServedFromCache(t *testing.T) {
	repo, inner := newCachedRepo(t)
	ctx := context.Background()

	user := &models.User{ID: "u-1", Username: "alice", PasswordHash: "x"}
	require.NoError(t, repo.Create(ctx, user))

	got, err := repo.GetByID(ctx, "u-1")
	require.NoError(t, err)
	require.Equal(t, "alice", got.Username)

	// Mutate behind the cache's back; the stale value is still served.
	user.Username = "renamed"
	require.NoError(t, inner.Update(ctx, user))

	got, err = repo.GetByID(ctx, "u-1")
	require.NoError(t, err)
	require.Equal(t, "alice", got.Username)
}

func TestCachedRepo_UpdateInvalidates(t *testing.T) {
	repo, _ := newCachedRepo(t)
	ctx := context.Background()

	user := &models.User{ID: "u-1", Username: "alice", PasswordHash: "x"}
	require.NoError(t, repo.Create(ctx, user))

	_, err := repo.GetByID(ctx, "u-1")
	require.NoError(t, err)

	user.Username = "renamed"
	require.NoError(t, repo.Update(ctx, user))

	got, err := repo.GetByID(ctx, "u-1")
	require.NoError(t, err)
	require.Equal(t, "renamed", got.Username)
}

func TestCachedRepo_GetByIDs_MixedHitMiss(t *testing.T) {
	repo, inner := newCachedRepo(t)
	ctx := context.Background()

	alice := &models.User{ID: "u-1", Username: "alice", PasswordHash: "x"}
	bob := &models.User{ID: "u-2", Username: "bob", PasswordHash: "x"}
	require.NoError(t, inner.Create(ctx, alice))
	require.NoError(t, inner.Create(ctx, bob))

	// warm the cache with alice only
	_, err := repo.GetByID(ctx, "u-1")
	require.NoError(t, err)

	users, err := repo.GetByIDs(ctx, []string{"u-1", "u-2"})
	require.NoError(t, err)
	require.Len(t, users, 2)

	// unknown ids simply come back absent
	users, err = repo.GetByIDs(ctx, []string{"u-1", "ghost"})
	require.NoError(t, err)
	require.Len(t, users, 1)
}

func TestCachedRepo_MissingUser(t *testing.T) {
	repo, _ := newCachedRepo(t)

	got, err := repo.GetByID(context.Background(), "nope")
	require.NoError(t, err)
	require.Nil(t, got)
}

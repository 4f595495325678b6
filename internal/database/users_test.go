package database_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"pizzapension/internal/database"
	"pizzapension/internal/testutil"
)

func TestUserStore_CreateAndFind(t *testing.T) {
	ctx := context.Background()
	users := database.NewUserStore(testutil.NewDatabase(t))

	created, err := users.Create(ctx, "Oscar", "hash")
	require.NoError(t, err)
	require.Greater(t, created.ID, int64(0))

	found, err := users.FindByUsername(ctx, "Oscar")
	require.NoError(t, err)
	require.Equal(t, created, found)

	exists, err := users.Exists(ctx, "Oscar")
	require.NoError(t, err)
	require.True(t, exists)
}

func TestUserStore_FindMissing(t *testing.T) {
	users := database.NewUserStore(testutil.NewDatabase(t))

	_, err := users.FindByUsername(context.Background(), "nobody")
	require.ErrorIs(t, err, database.ErrUserNotFound)

	exists, err := users.Exists(context.Background(), "nobody")
	require.NoError(t, err)
	require.False(t, exists)
}

func TestUserStore_DuplicateUsername(t *testing.T) {
	ctx := context.Background()
	users := database.NewUserStore(testutil.NewDatabase(t))

	_, err := users.Create(ctx, "Oscar", "hash")
	require.NoError(t, err)
	_, err = users.Create(ctx, "Oscar", "other")
	require.ErrorIs(t, err, database.ErrStorage)
}

package users

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/waterbill/internal/common"
	"github.com/dmitrijs2005/waterbill/internal/server/access"
	"github.com/dmitrijs2005/waterbill/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRepository_Lifecycle(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	u, err := repo.Create(ctx, &models.User{Email: "a@x.io", Name: "Alice", Role: access.RoleUser})
	require.NoError(t, err)
	require.NotEmpty(t, u.ID)

	_, err = repo.Create(ctx, &models.User{Email: "a@x.io"})
	assert.ErrorIs(t, err, common.ErrorConflict)

	got, err := repo.GetByEmail(ctx, "a@x.io")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)

	email := "b@x.io"
	_, err = repo.Update(ctx, u.ID, models.UserPatch{Email: &email})
	require.NoError(t, err)

	_, err = repo.GetByEmail(ctx, "a@x.io")
	assert.ErrorIs(t, err, common.ErrorNotFound)
	got, err = repo.GetByEmail(ctx, "b@x.io")
	require.NoError(t, err)
	assert.Equal(t, "Alice", got.Name)

	require.NoError(t, repo.Delete(ctx, u.ID))
	assert.ErrorIs(t, repo.Delete(ctx, u.ID), common.ErrorNotFound)
	_, err = repo.GetByID(ctx, u.ID)
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestMemoryRepository_UpdateEmailConflict(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	a, err := repo.Create(ctx, &models.User{Email: "a@x.io"})
	require.NoError(t, err)
	_, err = repo.Create(ctx, &models.User{Email: "b@x.io"})
	require.NoError(t, err)

	taken := "b@x.io"
	_, err = repo.Update(ctx, a.ID, models.UserPatch{Email: &taken})
	assert.ErrorIs(t, err, common.ErrorConflict)
}

package readings

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/waterbill/internal/common"
	"github.com/dmitrijs2005/waterbill/internal/server/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(m time.Month, d int) time.Time {
	return time.Date(2024, m, d, 0, 0, 0, 0, time.UTC)
}

func seed(t *testing.T, repo *MemoryRepository, user string, date time.Time, paid bool) *models.Reading {
	t.Helper()
	rd, err := repo.Create(context.Background(), &models.Reading{
		UserID: user, ApartmentNumber: "1", Date: date, ColdWater: 1, HotWater: 1,
		Amount: decimal.RequireFromString("7"), IsPaid: paid,
	})
	require.NoError(t, err)
	return rd
}

func TestMemoryRepository_FindFiltersAndSorts(t *testing.T) {
	repo := NewMemoryRepository()
	a1 := seed(t, repo, "alice", day(1, 10), false)
	a2 := seed(t, repo, "alice", day(3, 10), true)
	a3 := seed(t, repo, "alice", day(2, 10), false)
	seed(t, repo, "bob", day(2, 11), false)

	got, err := repo.Find(context.Background(), models.ReadingFilter{UserID: "alice"}, models.DateDesc)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, []string{a2.ID, a3.ID, a1.ID}, []string{got[0].ID, got[1].ID, got[2].ID})

	from, to := day(1, 10), day(2, 10)
	got, err = repo.Find(context.Background(), models.ReadingFilter{UserID: "alice", From: &from, To: &to}, models.DateAsc)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, a1.ID, got[0].ID)
	assert.Equal(t, a3.ID, got[1].ID)

	unpaid := false
	got, err = repo.Find(context.Background(), models.ReadingFilter{IsPaid: &unpaid}, models.DateDesc)
	require.NoError(t, err)
	assert.Len(t, got, 3)
}

func TestMemoryRepository_UpdateDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()
	rd := seed(t, repo, "alice", day(1, 1), false)
	seed(t, repo, "alice", day(1, 2), false)
	seed(t, repo, "bob", day(1, 3), false)

	paid := true
	got, err := repo.Update(ctx, rd.ID, models.ReadingPatch{IsPaid: &paid})
	require.NoError(t, err)
	assert.True(t, got.IsPaid)
	assert.Equal(t, "alice", got.UserID)

	_, err = repo.Update(ctx, "missing", models.ReadingPatch{IsPaid: &paid})
	assert.ErrorIs(t, err, common.ErrorNotFound)

	n, err := repo.DeleteByUser(ctx, "alice")
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)
	assert.ErrorIs(t, repo.Delete(ctx, rd.ID), common.ErrorNotFound)
}

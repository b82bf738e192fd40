package readings

import (
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/waterbill/internal/common"
	"github.com/dmitrijs2005/waterbill/internal/server/models"
	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

func TestFindQuery(t *testing.T) {
	owner := bson.NewObjectID()
	from := time.Date(2024, 1, 1, 2, 0, 0, 0, time.FixedZone("EET", 2*3600))
	to := time.Date(2024, 12, 31, 23, 59, 59, 0, time.UTC)
	unpaid := false

	tests := []struct {
		name   string
		filter models.ReadingFilter
		want   bson.M
	}{
		{name: "empty", filter: models.ReadingFilter{}, want: bson.M{}},
		{name: "owner", filter: models.ReadingFilter{UserID: owner.Hex()}, want: bson.M{"userId": owner}},
		{
			name:   "inclusive bounds in UTC",
			filter: models.ReadingFilter{From: &from, To: &to},
			want: bson.M{"date": bson.M{
				"$gte": time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
				"$lte": to,
			}},
		},
		{name: "open end", filter: models.ReadingFilter{To: &to}, want: bson.M{"date": bson.M{"$lte": to}}},
		{
			name:   "unpaid for owner",
			filter: models.ReadingFilter{UserID: owner.Hex(), IsPaid: &unpaid},
			want:   bson.M{"userId": owner, "isPaid": false},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := findQuery(tt.filter)
			require.True(t, ok)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("query mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFindQuery_InvalidOwnerMatchesNothing(t *testing.T) {
	q, ok := findQuery(models.ReadingFilter{UserID: "not-a-hex-id"})
	assert.False(t, ok)
	assert.Nil(t, q)
}

func TestSortBy(t *testing.T) {
	assert.Equal(t, bson.D{{Key: "date", Value: -1}, {Key: "createdAt", Value: -1}}, sortBy(models.DateDesc))
	assert.Equal(t, bson.D{{Key: "date", Value: 1}, {Key: "createdAt", Value: 1}}, sortBy(models.DateAsc))
}

func TestUpdateSet(t *testing.T) {
	cold, paid := 3.5, true
	amount := decimal.RequireFromString("8.75")

	got := updateSet(models.ReadingPatch{ColdWater: &cold, Amount: &amount, IsPaid: &paid})
	assert.Equal(t, bson.M{"coldWater": 3.5, "amount": 8.75, "isPaid": true}, got)
	assert.Empty(t, updateSet(models.ReadingPatch{}))
}

func TestReadingDocument_ToModel(t *testing.T) {
	id, owner := bson.NewObjectID(), bson.NewObjectID()
	eet := time.FixedZone("EET", 2*3600)
	doc := readingDocument{
		ID: id, ApartmentNumber: "12", UserName: "Alice", UserID: owner,
		Date:      time.Date(2024, 1, 15, 2, 0, 0, 0, eet),
		ColdWater: 10, HotWater: 5, Amount: 47.5, IsPaid: true,
		CreatedAt: time.Date(2024, 1, 16, 12, 0, 0, 0, eet),
	}

	got := doc.toModel()
	assert.Equal(t, id.Hex(), got.ID)
	assert.Equal(t, owner.Hex(), got.UserID)
	assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), got.Date)
	assert.Equal(t, time.UTC, got.CreatedAt.Location())
	assert.True(t, got.Amount.Equal(decimal.RequireFromString("47.5")), got.Amount.String())
	assert.True(t, got.IsPaid)
}

func TestTranslateMongoError(t *testing.T) {
	assert.ErrorIs(t, translateMongoError(mongo.ErrNoDocuments), common.ErrorNotFound)

	dup := mongo.WriteException{WriteErrors: mongo.WriteErrors{{Code: 11000, Message: "E11000 duplicate key error"}}}
	assert.ErrorIs(t, translateMongoError(dup), common.ErrorConflict)

	boom := errors.New("connection reset")
	err := translateMongoError(boom)
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, common.ErrorConflict)
	assert.Contains(t, err.Error(), "db error")
}

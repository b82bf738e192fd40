package views

import (
	"testing"
	"time"

	"github.com/dmitrijs2005/waterbill/internal/api"
	"github.com/dmitrijs2005/waterbill/internal/common"
	"github.com/dmitrijs2005/waterbill/internal/server/models"
	"github.com/dmitrijs2005/waterbill/internal/server/services"
	"github.com/dmitrijs2005/waterbill/internal/server/tariff"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReading(t *testing.T) {
	d := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	r := models.Reading{ID: "r1", ApartmentNumber: "5", UserID: "u1", UserName: "Alice",
		Date: d, ColdWater: 10, HotWater: 5, Amount: tariff.Amount(10, 5)}

	want := api.Reading{ID: "r1", ApartmentNumber: "5", UserID: "u1", UserName: "Alice",
		Date: d, ColdWater: 10, HotWater: 5, Amount: 47.5}
	if diff := cmp.Diff(want, Reading(&r)); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
	assert.NotNil(t, Readings(nil))
}

func TestBatch(t *testing.T) {
	b := services.NewBatchResult([]services.Outcome{
		{ReadingID: "a", ApartmentNumber: "1", Email: "N/A", Status: services.StatusFailed, Reason: services.ReasonUserNotFound},
		{ReadingID: "b", ApartmentNumber: "2", Email: "x@y.io", Status: services.StatusSent},
	})
	got := Batch(b)
	assert.Equal(t, "Sent 1 emails successfully, 1 failed", got.Message)
	assert.Equal(t, 2, got.TotalUnpaidBills)
	assert.Equal(t, 1, got.EmailsSent)
	assert.Equal(t, 1, got.EmailsFailed)
	assert.Equal(t, "failed", got.Details[0].Status)
	assert.Equal(t, "user not found", got.Details[0].Reason)
}

func TestRequests(t *testing.T) {
	r, err := DateRange(&api.ListReadingsRequest{StartDate: "2024-01-01"})
	require.NoError(t, err)
	require.NotNil(t, r.From)
	assert.Nil(t, r.To)

	_, err = DateRange(&api.ListReadingsRequest{EndDate: "yesterday"})
	assert.ErrorIs(t, err, common.ErrorValidation)

	in, err := CreateReading(&api.CreateReadingRequest{ApartmentNumber: "1", Date: "2024-02-01", ColdWater: 1})
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), in.Date)

	in, err = CreateReading(&api.CreateReadingRequest{ApartmentNumber: "1"})
	require.NoError(t, err)
	assert.True(t, in.Date.IsZero())

}

func TestCheckPasswordConfirmation(t *testing.T) {
	tests := []struct {
		name    string
		req     api.ChangePasswordRequest
		wantErr bool
	}{
		{"match", api.ChangePasswordRequest{NewPassword: "secret1", ConfirmPassword: "secret1"}, false},
		{"mismatch", api.ChangePasswordRequest{NewPassword: "secret1", ConfirmPassword: "secret2"}, true},
		{"missing confirmation", api.ChangePasswordRequest{NewPassword: "secret1"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckPasswordConfirmation(&tt.req)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, common.ErrorValidation)
		})
	}
}

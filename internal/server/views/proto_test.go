package views

import (
	"testing"
	"time"

	"github.com/dmitrijs2005/waterbill/internal/common"
	pb "github.com/dmitrijs2005/waterbill/internal/proto"
	"github.com/dmitrijs2005/waterbill/internal/server/access"
	"github.com/dmitrijs2005/waterbill/internal/server/models"
	"github.com/dmitrijs2005/waterbill/internal/server/services"
	"github.com/dmitrijs2005/waterbill/internal/server/tariff"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/testing/protocmp"
)

func TestProtoReading(t *testing.T) {
	d := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	created := time.Date(2024, 1, 16, 9, 30, 0, 0, time.FixedZone("EET", 2*3600))
	r := models.Reading{ID: "r1", ApartmentNumber: "5", UserID: "u1", UserName: "Alice",
		Date: d, ColdWater: 10, HotWater: 5, Amount: tariff.Amount(10, 5), CreatedAt: created}

	want := &pb.Reading{Id: "r1", ApartmentNumber: "5", UserId: "u1", UserName: "Alice",
		Date: "2024-01-15T00:00:00Z", ColdWater: 10, HotWater: 5, Amount: 47.5,
		CreatedAt: "2024-01-16T07:30:00Z"}
	if diff := cmp.Diff(want, ProtoReading(&r), protocmp.Transform()); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
	assert.NotNil(t, ProtoReadings(nil))
}

func TestProtoUser(t *testing.T) {
	u := &models.User{ID: "u1", Email: "a@b.io", Name: "A", ApartmentNumber: "7", Role: access.RoleAdmin}
	got := ProtoUser(u)
	assert.Equal(t, "admin", got.GetRole())
	assert.Empty(t, got.GetCreatedAt())
}

func TestProtoBatch_SurvivesWireRoundTrip(t *testing.T) {
	b := services.NewBatchResult([]services.Outcome{
		{ReadingID: "a", ApartmentNumber: "1", Email: "N/A", Status: services.StatusFailed, Reason: services.ReasonUserNotFound},
		{ReadingID: "b", ApartmentNumber: "2", Email: "x@y.io", Status: services.StatusSent},
	})
	raw, err := proto.Marshal(ProtoBatch(b))
	require.NoError(t, err)

	var got pb.SendAllRemindersResponse
	require.NoError(t, proto.Unmarshal(raw, &got))
	assert.Equal(t, "Sent 1 emails successfully, 1 failed", got.GetMessage())
	assert.Equal(t, int32(2), got.GetTotalUnpaidBills())
	assert.Equal(t, int32(1), got.GetEmailsSent())
	assert.Equal(t, int32(1), got.GetEmailsFailed())
	require.Len(t, got.GetDetails(), 2)
	assert.Equal(t, "user not found", got.GetDetails()[0].GetReason())
}

func TestProtoRequests(t *testing.T) {
	r, err := ProtoDateRange(&pb.ListReadingsRequest{EndDate: "2024-12-31"})
	require.NoError(t, err)
	assert.Nil(t, r.From)
	require.NotNil(t, r.To)

	_, err = ProtoDateRange(&pb.ListReadingsRequest{StartDate: "01/01/2024"})
	assert.ErrorIs(t, err, common.ErrorValidation)

	in, err := ProtoCreateReading(&pb.CreateReadingRequest{ApartmentNumber: "1", Date: "2024-02-01", ColdWater: 2.5})
	require.NoError(t, err)
	assert.Equal(t, services.CreateReading{ApartmentNumber: "1", Date: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), ColdWater: 2.5}, in)

	upd := ProtoUpdateReading(&pb.UpdateReadingRequest{Id: "r1", IsPaid: proto.Bool(true)})
	assert.Nil(t, upd.ColdWater)
	assert.Nil(t, upd.HotWater)
	require.NotNil(t, upd.IsPaid)
	assert.True(t, *upd.IsPaid)

	assert.Nil(t, ProtoYear(&pb.AnnualReportRequest{}))
	y := ProtoYear(&pb.AnnualReportRequest{Year: proto.Int32(2023)})
	require.NotNil(t, y)
	assert.Equal(t, 2023, *y)

	reg := ProtoRegister(&pb.RegisterRequest{Email: "a@b.io", Password: "p", Name: "A", ApartmentNumber: "3"})
	assert.Equal(t, services.RegisterUser{Email: "a@b.io", Password: "p", Name: "A", ApartmentNumber: "3"}, reg)
}

func TestProtoAnnualReport(t *testing.T) {
	rep := &services.AnnualReport{Year: 2024, Summary: services.AnnualSummary{
		TotalReadings: 1, TotalAmount: "47.50", PaidAmount: "0.00", UnpaidAmount: "47.50",
	}}
	got := ProtoAnnualReport(rep)
	assert.Equal(t, int32(2024), got.GetYear())
	assert.Equal(t, int32(1), got.GetSummary().GetTotalReadings())
	assert.Equal(t, "47.50", got.GetSummary().GetUnpaidAmount())
	assert.NotNil(t, got.GetReadings())
}

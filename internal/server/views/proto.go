package views

import (
	"time"

	pb "github.com/dmitrijs2005/waterbill/internal/proto"
	"github.com/dmitrijs2005/waterbill/internal/server/models"
	"github.com/dmitrijs2005/waterbill/internal/server/services"
)

// Timestamps cross the gRPC boundary as RFC 3339 strings in UTC.
func wireTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

func ProtoUser(u *models.User) *pb.User {
	return &pb.User{
		Id:              u.ID,
		Email:           u.Email,
		Name:            u.Name,
		ApartmentNumber: u.ApartmentNumber,
		Role:            u.Role.String(),
		CreatedAt:       wireTime(u.CreatedAt),
	}
}

func ProtoReading(r *models.Reading) *pb.Reading {
	return &pb.Reading{
		Id:              r.ID,
		ApartmentNumber: r.ApartmentNumber,
		UserId:          r.UserID,
		UserName:        r.UserName,
		Date:            wireTime(r.Date),
		ColdWater:       r.ColdWater,
		HotWater:        r.HotWater,
		Amount:          r.Amount.Round(2).InexactFloat64(),
		IsPaid:          r.IsPaid,
		CreatedAt:       wireTime(r.CreatedAt),
	}
}

func ProtoReadings(rs []models.Reading) []*pb.Reading {
	out := make([]*pb.Reading, 0, len(rs))
	for i := range rs {
		out = append(out, ProtoReading(&rs[i]))
	}
	return out
}

func ProtoUnpaid(u *services.UnpaidBills) *pb.UnpaidBillsResponse {
	return &pb.UnpaidBillsResponse{Count: int32(u.Count), TotalAmount: u.TotalAmount, Bills: ProtoReadings(u.Bills)}
}

func ProtoAnnualReport(r *services.AnnualReport) *pb.AnnualReportResponse {
	s := r.Summary
	return &pb.AnnualReportResponse{
		Year: int32(r.Year),
		Summary: &pb.AnnualSummary{
			TotalReadings:  int32(s.TotalReadings),
			TotalColdWater: s.TotalColdWater,
			TotalHotWater:  s.TotalHotWater,
			TotalAmount:    s.TotalAmount,
			PaidAmount:     s.PaidAmount,
			UnpaidAmount:   s.UnpaidAmount,
		},
		Readings: ProtoReadings(r.Readings),
	}
}

func ProtoExported(e *services.ExportedReport) *pb.ExportAnnualReportResponse {
	return &pb.ExportAnnualReportResponse{Year: int32(e.Year), Key: e.Key, Url: e.URL}
}

func ProtoReminder(r *services.Reminder) *pb.SendReminderResponse {
	return &pb.SendReminderResponse{EmailSent: r.Sent, Message: r.Message, Recipient: r.Recipient}
}

func ProtoBatch(b services.BatchResult) *pb.SendAllRemindersResponse {
	details := make([]*pb.ReminderDetail, 0, len(b.Items))
	for _, it := range b.Items {
		details = append(details, &pb.ReminderDetail{
			ReadingId:       it.ReadingID,
			ApartmentNumber: it.ApartmentNumber,
			Email:           it.Email,
			Status:          string(it.Status),
			Reason:          it.Reason,
		})
	}
	return &pb.SendAllRemindersResponse{
		Message:          b.Message(),
		TotalUnpaidBills: int32(b.Total),
		EmailsSent:       int32(b.Sent),
		EmailsFailed:     int32(b.Failed),
		Details:          details,
	}
}

func ProtoRegister(req *pb.RegisterRequest) services.RegisterUser {
	return services.RegisterUser{
		Email:           req.GetEmail(),
		Password:        req.GetPassword(),
		Name:            req.GetName(),
		ApartmentNumber: req.GetApartmentNumber(),
	}
}

func ProtoDateRange(req *pb.ListReadingsRequest) (services.DateRange, error) {
	return dateRange(req.GetStartDate(), req.GetEndDate())
}

func ProtoCreateReading(req *pb.CreateReadingRequest) (services.CreateReading, error) {
	return createReading(req.GetApartmentNumber(), req.GetDate(), req.GetColdWater(), req.GetHotWater())
}

// ProtoUpdateReading keeps unset optional fields nil so they stay untouched.
func ProtoUpdateReading(req *pb.UpdateReadingRequest) services.UpdateReading {
	return services.UpdateReading{ColdWater: req.ColdWater, HotWater: req.HotWater, IsPaid: req.IsPaid}
}

// ProtoYear returns nil when the request leaves the year unset.
func ProtoYear(req *pb.AnnualReportRequest) *int {
	if req == nil || req.Year == nil {
		return nil
	}
	y := int(req.GetYear())
	return &y
}

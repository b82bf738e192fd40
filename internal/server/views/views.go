// Package views converts between service values and the transport types:
// the api JSON DTOs for REST and the generated protobuf messages for gRPC.
package views

import (
	"fmt"

	"github.com/dmitrijs2005/waterbill/internal/api"
	"github.com/dmitrijs2005/waterbill/internal/common"
	"github.com/dmitrijs2005/waterbill/internal/server/models"
	"github.com/dmitrijs2005/waterbill/internal/server/services"
)

func User(u *models.User) api.User {
	return api.User{
		ID:              u.ID,
		Email:           u.Email,
		Name:            u.Name,
		ApartmentNumber: u.ApartmentNumber,
		Role:            u.Role.String(),
		CreatedAt:       u.CreatedAt,
	}
}

func Reading(r *models.Reading) api.Reading {
	return api.Reading{
		ID:              r.ID,
		ApartmentNumber: r.ApartmentNumber,
		UserID:          r.UserID,
		UserName:        r.UserName,
		Date:            r.Date,
		ColdWater:       r.ColdWater,
		HotWater:        r.HotWater,
		Amount:          r.Amount.Round(2).InexactFloat64(),
		IsPaid:          r.IsPaid,
		CreatedAt:       r.CreatedAt,
	}
}

// Readings never returns nil so empty lists encode as [].
func Readings(rs []models.Reading) []api.Reading {
	out := make([]api.Reading, 0, len(rs))
	for i := range rs {
		out = append(out, Reading(&rs[i]))
	}
	return out
}

func Unpaid(u *services.UnpaidBills) *api.UnpaidBillsResponse {
	return &api.UnpaidBillsResponse{Count: u.Count, TotalAmount: u.TotalAmount, Bills: Readings(u.Bills)}
}

func AnnualReport(r *services.AnnualReport) *api.AnnualReport {
	s := r.Summary
	return &api.AnnualReport{
		Year: r.Year,
		Summary: api.AnnualSummary{
			TotalReadings:  s.TotalReadings,
			TotalColdWater: s.TotalColdWater,
			TotalHotWater:  s.TotalHotWater,
			TotalAmount:    s.TotalAmount,
			PaidAmount:     s.PaidAmount,
			UnpaidAmount:   s.UnpaidAmount,
		},
		Readings: Readings(r.Readings),
	}
}

func Exported(e *services.ExportedReport) *api.ExportResponse {
	return &api.ExportResponse{Year: e.Year, Key: e.Key, URL: e.URL}
}

func Reminder(r *services.Reminder) *api.ReminderResponse {
	return &api.ReminderResponse{EmailSent: r.Sent, Message: r.Message, Recipient: r.Recipient}
}

func Batch(b services.BatchResult) *api.BulkReminderResponse {
	details := make([]api.ReminderDetail, 0, len(b.Items))
	for _, it := range b.Items {
		details = append(details, api.ReminderDetail{
			ReadingID:       it.ReadingID,
			ApartmentNumber: it.ApartmentNumber,
			Email:           it.Email,
			Status:          string(it.Status),
			Reason:          it.Reason,
		})
	}
	return &api.BulkReminderResponse{
		Message:          b.Message(),
		TotalUnpaidBills: b.Total,
		EmailsSent:       b.Sent,
		EmailsFailed:     b.Failed,
		Details:          details,
	}
}

func dateRange(start, end string) (services.DateRange, error) {
	from, err := api.ParseDate(start)
	if err != nil {
		return services.DateRange{}, err
	}
	to, err := api.ParseDate(end)
	if err != nil {
		return services.DateRange{}, err
	}
	return services.DateRange{From: from, To: to}, nil
}

// DateRange parses the optional list bounds.
func DateRange(req *api.ListReadingsRequest) (services.DateRange, error) {
	return dateRange(req.StartDate, req.EndDate)
}

func createReading(apartment, date string, cold, hot float64) (services.CreateReading, error) {
	in := services.CreateReading{ApartmentNumber: apartment, ColdWater: cold, HotWater: hot}
	d, err := api.ParseDate(date)
	if err != nil {
		return in, err
	}
	if d != nil {
		in.Date = *d
	}
	return in, nil
}

func CreateReading(req *api.CreateReadingRequest) (services.CreateReading, error) {
	return createReading(req.ApartmentNumber, req.Date, req.ColdWater, req.HotWater)
}

func UpdateReading(req *api.UpdateReadingRequest) services.UpdateReading {
	return services.UpdateReading{ColdWater: req.ColdWater, HotWater: req.HotWater, IsPaid: req.IsPaid}
}

func ProfilePatch(req *api.UpdateProfileRequest) services.ProfilePatch {
	return services.ProfilePatch{Name: req.Name, ApartmentNumber: req.ApartmentNumber, Email: req.Email}
}

// CheckPasswordConfirmation requires a confirmation equal to the new password.
func CheckPasswordConfirmation(req *api.ChangePasswordRequest) error {
	switch {
	case req.ConfirmPassword == "":
		return fmt.Errorf("%w: password confirmation is required", common.ErrorValidation)
	case req.ConfirmPassword != req.NewPassword:
		return fmt.Errorf("%w: password confirmation does not match", common.ErrorValidation)
	}
	return nil
}

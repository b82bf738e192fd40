package grpc

import (
	"context"

	"github.com/dmitrijs2005/waterbill/internal/logging"
	pb "github.com/dmitrijs2005/waterbill/internal/proto"
	"github.com/dmitrijs2005/waterbill/internal/server/access"
	"github.com/dmitrijs2005/waterbill/internal/server/services"
	"github.com/dmitrijs2005/waterbill/internal/server/views"
)

type handler struct {
	pb.UnimplementedBillingServiceServer
	svc    *services.Services
	logger logging.Logger
}

func (h *handler) fail(ctx context.Context, err error) error {
	h.logger.Debug(ctx, "request failed", "error", err)
	return toStatus(err)
}

func (h *handler) Register(ctx context.Context, req *pb.RegisterRequest) (*pb.RegisterResponse, error) {
	res, err := h.svc.Users.Register(ctx, views.ProtoRegister(req))
	if err != nil {
		return nil, h.fail(ctx, err)
	}
	return &pb.RegisterResponse{Message: "User registered successfully", Token: res.Token, User: views.ProtoUser(res.User)}, nil
}

func (h *handler) Login(ctx context.Context, req *pb.LoginRequest) (*pb.LoginResponse, error) {
	res, err := h.svc.Users.Login(ctx, req.GetEmail(), req.GetPassword())
	if err != nil {
		return nil, h.fail(ctx, err)
	}
	return &pb.LoginResponse{Token: res.Token, User: views.ProtoUser(res.User)}, nil
}

func (h *handler) Ping(context.Context, *pb.PingRequest) (*pb.PingResponse, error) {
	return &pb.PingResponse{Status: "OK"}, nil
}

func (h *handler) ListReadings(ctx context.Context, req *pb.ListReadingsRequest) (*pb.ListReadingsResponse, error) {
	scope, err := scopeFrom(ctx)
	if err != nil {
		return nil, err
	}
	r, err := views.ProtoDateRange(req)
	if err != nil {
		return nil, h.fail(ctx, err)
	}
	out, err := h.svc.Readings.List(ctx, scope, r)
	if err != nil {
		return nil, h.fail(ctx, err)
	}
	return &pb.ListReadingsResponse{Readings: views.ProtoReadings(out)}, nil
}

func (h *handler) GetReading(ctx context.Context, req *pb.GetReadingRequest) (*pb.Reading, error) {
	scope, err := scopeFrom(ctx)
	if err != nil {
		return nil, err
	}
	rd, err := h.svc.Readings.Get(ctx, req.GetId(), scope)
	if err != nil {
		return nil, h.fail(ctx, err)
	}
	return views.ProtoReading(rd), nil
}

func (h *handler) CreateReading(ctx context.Context, req *pb.CreateReadingRequest) (*pb.Reading, error) {
	scope, err := scopeFrom(ctx)
	if err != nil {
		return nil, err
	}
	in, err := views.ProtoCreateReading(req)
	if err != nil {
		return nil, h.fail(ctx, err)
	}
	rd, err := h.svc.Readings.Create(ctx, scope, in)
	if err != nil {
		return nil, h.fail(ctx, err)
	}
	return views.ProtoReading(rd), nil
}

func (h *handler) UpdateReading(ctx context.Context, req *pb.UpdateReadingRequest) (*pb.Reading, error) {
	scope, err := scopeFrom(ctx)
	if err != nil {
		return nil, err
	}
	rd, err := h.svc.Readings.Update(ctx, req.GetId(), scope, views.ProtoUpdateReading(req))
	if err != nil {
		return nil, h.fail(ctx, err)
	}
	return views.ProtoReading(rd), nil
}

func (h *handler) DeleteReading(ctx context.Context, req *pb.DeleteReadingRequest) (*pb.DeleteReadingResponse, error) {
	scope, err := scopeFrom(ctx)
	if err != nil {
		return nil, err
	}
	if err := h.svc.Readings.Delete(ctx, req.GetId(), scope); err != nil {
		return nil, h.fail(ctx, err)
	}
	return &pb.DeleteReadingResponse{Message: "Reading deleted successfully"}, nil
}

func (h *handler) UnpaidBills(ctx context.Context, _ *pb.UnpaidBillsRequest) (*pb.UnpaidBillsResponse, error) {
	scope, err := scopeFrom(ctx)
	if err != nil {
		return nil, err
	}
	res, err := h.svc.Bills.Unpaid(ctx, scope)
	if err != nil {
		return nil, h.fail(ctx, err)
	}
	return views.ProtoUnpaid(res), nil
}

func (h *handler) AnnualReport(ctx context.Context, req *pb.AnnualReportRequest) (*pb.AnnualReportResponse, error) {
	scope, err := scopeFrom(ctx)
	if err != nil {
		return nil, err
	}
	res, err := h.svc.Bills.AnnualReport(ctx, scope, views.ProtoYear(req))
	if err != nil {
		return nil, h.fail(ctx, err)
	}
	return views.ProtoAnnualReport(res), nil
}

func (h *handler) ExportAnnualReport(ctx context.Context, req *pb.AnnualReportRequest) (*pb.ExportAnnualReportResponse, error) {
	scope, err := scopeFrom(ctx)
	if err != nil {
		return nil, err
	}
	res, err := h.svc.Bills.ExportAnnualReport(ctx, scope, views.ProtoYear(req))
	if err != nil {
		return nil, h.fail(ctx, err)
	}
	return views.ProtoExported(res), nil
}

func (h *handler) setPaid(ctx context.Context, id string, paid bool) (*pb.SetPaidResponse, error) {
	scope, err := scopeFrom(ctx)
	if err != nil {
		return nil, err
	}
	rd, err := h.svc.Bills.SetPaid(ctx, scope, id, paid)
	if err != nil {
		return nil, h.fail(ctx, err)
	}
	msg := "Bill marked as unpaid"
	if paid {
		msg = "Bill marked as paid"
	}
	return &pb.SetPaidResponse{Message: msg, Reading: views.ProtoReading(rd)}, nil
}

func (h *handler) MarkPaid(ctx context.Context, req *pb.SetPaidRequest) (*pb.SetPaidResponse, error) {
	return h.setPaid(ctx, req.GetId(), true)
}

func (h *handler) MarkUnpaid(ctx context.Context, req *pb.SetPaidRequest) (*pb.SetPaidResponse, error) {
	return h.setPaid(ctx, req.GetId(), false)
}

func (h *handler) requireAdmin(ctx context.Context) error {
	scope, err := scopeFrom(ctx)
	if err != nil {
		return err
	}
	return toStatus(access.RequireAdmin(scope))
}

func (h *handler) SendReminder(ctx context.Context, req *pb.SendReminderRequest) (*pb.SendReminderResponse, error) {
	if err := h.requireAdmin(ctx); err != nil {
		return nil, err
	}
	res, err := h.svc.Reminders.SendOne(ctx, req.GetId())
	if err != nil {
		return nil, h.fail(ctx, err)
	}
	return views.ProtoReminder(res), nil
}

func (h *handler) SendAllReminders(ctx context.Context, _ *pb.SendAllRemindersRequest) (*pb.SendAllRemindersResponse, error) {
	if err := h.requireAdmin(ctx); err != nil {
		return nil, err
	}
	res, err := h.svc.Reminders.SendAll(ctx)
	if err != nil {
		return nil, h.fail(ctx, err)
	}
	return views.ProtoBatch(res), nil
}

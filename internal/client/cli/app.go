// Package cli implements the waterbill-cli cobra commands.
package cli

import (
	"bufio"
	"context"
	"io"
	"os"
	"time"

	"github.com/dmitrijs2005/waterbill/internal/client/client"
	"github.com/dmitrijs2005/waterbill/internal/client/config"
	"github.com/dmitrijs2005/waterbill/internal/netx"
	pb "github.com/dmitrijs2005/waterbill/internal/proto"
)

// Backend is the server API the commands use.
type Backend interface {
	Register(ctx context.Context, req *pb.RegisterRequest) (*pb.RegisterResponse, error)
	Login(ctx context.Context, email, password string) (*pb.User, error)
	Logout() error
	ListReadings(ctx context.Context, from, to string) ([]*pb.Reading, error)
	CreateReading(ctx context.Context, req *pb.CreateReadingRequest) (*pb.Reading, error)
	DeleteReading(ctx context.Context, id string) error
	UnpaidBills(ctx context.Context) (*pb.UnpaidBillsResponse, error)
	SetPaid(ctx context.Context, id string, paid bool) (*pb.Reading, error)
	SendReminder(ctx context.Context, id string) (*pb.SendReminderResponse, error)
	SendAllReminders(ctx context.Context) (*pb.SendAllRemindersResponse, error)
	AnnualReport(ctx context.Context, year *int) (*pb.AnnualReportResponse, error)
	ExportAnnualReport(ctx context.Context, year *int) (*pb.ExportAnnualReportResponse, error)
	Close() error
}

type App struct {
	config   *config.Config
	backend  Backend
	reader   *bufio.Reader
	download func(ctx context.Context, url string, dst io.Writer) (int64, error)
}

func NewApp(c *config.Config) *App {
	return &App{config: c, reader: bufio.NewReader(os.Stdin), download: netx.Download}
}

// connect builds the gRPC backend unless one was injected.
func (a *App) connect() error {
	if a.backend != nil {
		return nil
	}
	c, err := client.NewGRPCClient(a.config.ServerEndpointAddr, client.NewTokenStore(a.config.TokenDir))
	if err != nil {
		return err
	}
	a.backend = c
	return nil
}

func (a *App) close() {
	if a.backend != nil {
		_ = a.backend.Close()
	}
}

func (a *App) timeout(ctx context.Context) (context.Context, context.CancelFunc) {
	d := a.config.RequestTimeout
	if d <= 0 {
		d = 30 * time.Second
	}
	return context.WithTimeout(ctx, d)
}

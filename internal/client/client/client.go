// Package client talks to the waterbill gRPC service on behalf of the CLI
// and keeps the access token between invocations.
package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/waterbill/internal/common"
	pb "github.com/dmitrijs2005/waterbill/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// ErrNotLoggedIn is returned for authenticated calls without a saved token.
var ErrNotLoggedIn = errors.New("not logged in, run 'waterbill-cli login' first")

type GRPCClient struct {
	conn   *grpc.ClientConn
	rpc    pb.BillingServiceClient
	tokens *TokenStore
}

// NewGRPCClient prepares a connection to endpoint. The connection is
// established lazily on the first call.
func NewGRPCClient(endpoint string, tokens *TokenStore, opts ...grpc.DialOption) (*GRPCClient, error) {
	c := &GRPCClient{tokens: tokens}

	opts = append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(c.accessTokenInterceptor),
	}, opts...)

	conn, err := grpc.NewClient(endpoint, opts...)
	if err != nil {
		return nil, fmt.Errorf("grpc client: %w", err)
	}
	c.conn = conn
	c.rpc = pb.NewBillingServiceClient(conn)
	return c, nil
}

func (c *GRPCClient) Close() error { return c.conn.Close() }

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Set(common.AccessTokenHeaderName, token)
	return metadata.NewOutgoingContext(ctx, md)
}

var publicMethods = map[string]bool{
	pb.BillingService_Register_FullMethodName: true,
	pb.BillingService_Login_FullMethodName:    true,
	pb.BillingService_Ping_FullMethodName:     true,
}

func (c *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply interface{},
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	if !publicMethods[method] {
		token, err := c.tokens.Load()
		if err != nil {
			return err
		}
		if token == "" {
			return ErrNotLoggedIn
		}
		ctx = withAccessToken(ctx, token)
	}

	err := invoker(ctx, method, req, reply, cc, opts...)
	if status.Code(err) == codes.Unauthenticated && !publicMethods[method] {
		return fmt.Errorf("%w (%s)", ErrNotLoggedIn, status.Convert(err).Message())
	}
	return err
}

// Describe turns an RPC error into a one-line message for the terminal.
func Describe(err error) string {
	st, ok := status.FromError(err)
	if !ok {
		return err.Error()
	}
	switch st.Code() {
	case codes.Unavailable:
		return "server unavailable: " + st.Message()
	case codes.PermissionDenied:
		return "permission denied: " + st.Message()
	case codes.NotFound:
		return "not found: " + st.Message()
	case codes.AlreadyExists:
		return "conflict: " + st.Message()
	case codes.InvalidArgument:
		return "invalid input: " + st.Message()
	case codes.Unauthenticated:
		return "authentication failed: " + st.Message()
	default:
		return st.Message()
	}
}

func (c *GRPCClient) Register(ctx context.Context, req *pb.RegisterRequest) (*pb.RegisterResponse, error) {
	res, err := c.rpc.Register(ctx, req)
	if err != nil {
		return nil, err
	}
	if res.GetToken() != "" {
		if err := c.tokens.Save(res.GetToken()); err != nil {
			return nil, err
		}
	}
	return res, nil
}

// Login authenticates and stores the token for later commands.
func (c *GRPCClient) Login(ctx context.Context, email, password string) (*pb.User, error) {
	res, err := c.rpc.Login(ctx, &pb.LoginRequest{Email: email, Password: password})
	if err != nil {
		return nil, err
	}
	if err := c.tokens.Save(res.GetToken()); err != nil {
		return nil, err
	}
	return res.GetUser(), nil
}

func (c *GRPCClient) Logout() error { return c.tokens.Clear() }

func (c *GRPCClient) Ping(ctx context.Context) error {
	_, err := c.rpc.Ping(ctx, &pb.PingRequest{})
	return err
}

func (c *GRPCClient) ListReadings(ctx context.Context, from, to string) ([]*pb.Reading, error) {
	res, err := c.rpc.ListReadings(ctx, &pb.ListReadingsRequest{StartDate: from, EndDate: to})
	if err != nil {
		return nil, err
	}
	return res.GetReadings(), nil
}

func (c *GRPCClient) CreateReading(ctx context.Context, req *pb.CreateReadingRequest) (*pb.Reading, error) {
	return c.rpc.CreateReading(ctx, req)
}

func (c *GRPCClient) DeleteReading(ctx context.Context, id string) error {
	_, err := c.rpc.DeleteReading(ctx, &pb.DeleteReadingRequest{Id: id})
	return err
}

func (c *GRPCClient) UnpaidBills(ctx context.Context) (*pb.UnpaidBillsResponse, error) {
	return c.rpc.UnpaidBills(ctx, &pb.UnpaidBillsRequest{})
}

func (c *GRPCClient) SetPaid(ctx context.Context, id string, paid bool) (*pb.Reading, error) {
	call := c.rpc.MarkUnpaid
	if paid {
		call = c.rpc.MarkPaid
	}
	res, err := call(ctx, &pb.SetPaidRequest{Id: id})
	if err != nil {
		return nil, err
	}
	return res.GetReading(), nil
}

func (c *GRPCClient) SendReminder(ctx context.Context, id string) (*pb.SendReminderResponse, error) {
	return c.rpc.SendReminder(ctx, &pb.SendReminderRequest{Id: id})
}

func (c *GRPCClient) SendAllReminders(ctx context.Context) (*pb.SendAllRemindersResponse, error) {
	return c.rpc.SendAllReminders(ctx, &pb.SendAllRemindersRequest{})
}

func annualRequest(year *int) *pb.AnnualReportRequest {
	req := &pb.AnnualReportRequest{}
	if year != nil {
		y := int32(*year)
		req.Year = &y
	}
	return req
}

func (c *GRPCClient) AnnualReport(ctx context.Context, year *int) (*pb.AnnualReportResponse, error) {
	return c.rpc.AnnualReport(ctx, annualRequest(year))
}

func (c *GRPCClient) ExportAnnualReport(ctx context.Context, year *int) (*pb.ExportAnnualReportResponse, error) {
	return c.rpc.ExportAnnualReport(ctx, annualRequest(year))
}

package grpc

import (
	"context"
	"errors"
	"time"

	"github.com/dmitrijs2005/waterbill/internal/common"
	pb "github.com/dmitrijs2005/waterbill/internal/proto"
	"github.com/dmitrijs2005/waterbill/internal/server/access"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type ctxKey string

const scopeKey ctxKey = "scope"

var publicMethods = map[string]bool{
	pb.BillingService_Register_FullMethodName: true,
	pb.BillingService_Login_FullMethodName:    true,
	pb.BillingService_Ping_FullMethodName:     true,
}

func scopeFrom(ctx context.Context) (access.Scope, error) {
	s, ok := ctx.Value(scopeKey).(access.Scope)
	if !ok {
		return access.Scope{}, status.Error(codes.Unauthenticated, "missing token")
	}
	return s, nil
}

func (s *GRPCServer) accessTokenInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	if publicMethods[info.FullMethod] {
		return handler(ctx, req)
	}

	var accessToken string
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		values := md.Get(common.AccessTokenHeaderName)
		if len(values) > 0 {
			accessToken = values[0]
		}
	}
	if len(accessToken) == 0 {
		return nil, status.Error(codes.Unauthenticated, "missing token")
	}

	scope, err := s.verifier.Verify(accessToken)
	if err != nil {
		if errors.Is(err, common.ErrTokenExpired) {
			return nil, status.Error(codes.Unauthenticated, "token expired")
		}
		return nil, status.Error(codes.Unauthenticated, "invalid token")
	}

	return handler(context.WithValue(ctx, scopeKey, scope), req)
}

func (s *GRPCServer) loggingInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	start := time.Now()
	resp, err := handler(ctx, req)
	code := status.Code(err)

	args := []any{"method", info.FullMethod, "code", code.String(), "latency", time.Since(start)}
	switch code {
	case codes.OK:
		s.logger.Info(ctx, "gRPC call", args...)
	case codes.Internal, codes.Unknown:
		s.logger.Error(ctx, "gRPC call", append(args, "error", err)...)
	default:
		s.logger.Warn(ctx, "gRPC call", append(args, "error", err)...)
	}
	return resp, err
}

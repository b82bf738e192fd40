// Package grpc serves the protobuf BillingService.
package grpc

import (
	"context"
	"net"

	"github.com/dmitrijs2005/waterbill/internal/logging"
	pb "github.com/dmitrijs2005/waterbill/internal/proto"
	"github.com/dmitrijs2005/waterbill/internal/server/access"
	"github.com/dmitrijs2005/waterbill/internal/server/services"
	"google.golang.org/grpc"
)

// TokenVerifier turns an access token into the caller's scope.
type TokenVerifier interface {
	Verify(token string) (access.Scope, error)
}

type GRPCServer struct {
	address  string
	svc      *services.Services
	verifier TokenVerifier
	logger   logging.Logger
}

func NewGRPCServer(address string, l logging.Logger, svc *services.Services, verifier TokenVerifier) *GRPCServer {
	return &GRPCServer{
		address:  address,
		svc:      svc,
		verifier: verifier,
		logger:   l.With("module", "grpc_server"),
	}
}

func (s *GRPCServer) newServer() *grpc.Server {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.loggingInterceptor, s.accessTokenInterceptor))
	pb.RegisterBillingServiceServer(srv, &handler{svc: s.svc, logger: s.logger})
	return srv
}

// Run listens on the configured address and serves until ctx is cancelled.
func (s *GRPCServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, listen)
}

// Serve serves on lis until ctx is cancelled, then stops gracefully.
func (s *GRPCServer) Serve(ctx context.Context, lis net.Listener) error {
	srv := s.newServer()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", lis.Addr().String())

	if err := srv.Serve(lis); err != nil {
		return err
	}
	return nil
}

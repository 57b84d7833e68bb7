// Package grpc exposes the tallier over the VoteIngest gRPC service.
package grpc

import (
	"context"
	"net"
	"time"

	"google.golang.org/grpc"

	"github.com/dmitrijs2005/urna/internal/logging"
	pb "github.com/dmitrijs2005/urna/internal/proto"
	"github.com/dmitrijs2005/urna/internal/tallier/decrypt"
	"github.com/dmitrijs2005/urna/internal/tallier/intake"
	"github.com/dmitrijs2005/urna/internal/tallier/verify"
)

type GRPCServer struct {
	pb.UnimplementedVoteIngestServer
	address       string
	pipeline      *intake.Pipeline
	verifier      *verify.Verifier
	decryptor     *decrypt.Decryptor
	logger        logging.Logger
	jwtSecret     []byte
	tokenValidity time.Duration
}

func NewGRPCServer(addr string, l logging.Logger, p *intake.Pipeline, v *verify.Verifier, d *decrypt.Decryptor, secretKey string, tokenValidity time.Duration) (*GRPCServer, error) {
	return &GRPCServer{
		address:       addr,
		logger:        l.With("module", "grpc_server"),
		pipeline:      p,
		verifier:      v,
		decryptor:     d,
		jwtSecret:     []byte(secretKey),
		tokenValidity: tokenValidity,
	}, nil
}

func (s *GRPCServer) Run(ctx context.Context) error {

	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.accessTokenInterceptor))

	pb.RegisterVoteIngestServer(srv, s)

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", s.address)

	if err := srv.Serve(listen); err != nil {
		return err
	}

	return nil
}

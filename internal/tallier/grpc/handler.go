package grpc

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pb "github.com/dmitrijs2005/urna/internal/proto"
	"github.com/dmitrijs2005/urna/internal/tallier/auth"
)

// SubmitBallot runs the submission through the intake pipeline. The
// Accepted boolean is the authoritative acknowledgement: true means the
// ballot is in the dedup set and counted. Pipeline refusals are not gRPC
// errors; a token that does not match the request's station is refused
// with PermissionDenied.
func (s *GRPCServer) SubmitBallot(ctx context.Context, req *pb.SubmitBallotRequest) (*pb.SubmitBallotResponse, error) {

	if tokenStationID(ctx) != req.StationId {
		return nil, status.Error(codes.PermissionDenied, "token station mismatch")
	}

	accepted := s.pipeline.Process(ctx,
		req.BallotId, req.StationId, req.EmittedAt, req.SealedPayload, req.Signature)

	return &pb.SubmitBallotResponse{Accepted: accepted}, nil
}

func (s *GRPCServer) Ping(ctx context.Context, req *pb.PingRequest) (*pb.PingResponse, error) {

	return &pb.PingResponse{Status: "OK"}, nil

}

func (s *GRPCServer) FetchServerPublicKey(ctx context.Context, req *pb.FetchServerPublicKeyRequest) (*pb.FetchServerPublicKeyResponse, error) {

	key, err := s.decryptor.PublicKeyBase64()
	if err != nil {
		s.logger.Error(ctx, err.Error())
		return nil, status.Error(codes.Internal, "internal error")
	}

	return &pb.FetchServerPublicKeyResponse{PublicKeyB64: key}, nil
}

// RegisterStation is the out-of-band key enrolment: it installs the
// station's signing key and unwraps its symmetric key, then mints the
// access token every subsequent submission must carry.
func (s *GRPCServer) RegisterStation(ctx context.Context, req *pb.RegisterStationRequest) (*pb.RegisterStationResponse, error) {

	s.logger.Info(ctx, "Station enrolment request", "station_id", req.StationId)

	if req.StationId == "" {
		return nil, status.Error(codes.InvalidArgument, "missing station id")
	}

	if err := s.verifier.RegisterKey(req.StationId, req.SigningKeyB64); err != nil {
		s.logger.Warn(ctx, "signing key rejected", "station_id", req.StationId, "error", err.Error())
		return nil, status.Error(codes.InvalidArgument, "invalid signing key")
	}

	if err := s.decryptor.RegisterStationKey(req.StationId, req.WrappedAesKeyB64); err != nil {
		s.logger.Warn(ctx, "wrapped key rejected", "station_id", req.StationId, "error", err.Error())
		return nil, status.Error(codes.InvalidArgument, "invalid wrapped key")
	}

	token, err := auth.GenerateToken(req.StationId, s.jwtSecret, s.tokenValidity)
	if err != nil {
		s.logger.Error(ctx, err.Error())
		return nil, status.Error(codes.Internal, "internal error")
	}

	s.logger.Info(ctx, "Station enrolled", "station_id", req.StationId)
	return &pb.RegisterStationResponse{AccessToken: token}, nil
}

// CheckReceipts returns the subset of the given ballot ids the tallier has
// admitted. Stations use this as the out-of-band confirmation channel for
// their acknowledged ballots.
func (s *GRPCServer) CheckReceipts(ctx context.Context, req *pb.CheckReceiptsRequest) (*pb.CheckReceiptsResponse, error) {

	known := make([]string, 0, len(req.BallotIds))
	for _, id := range req.BallotIds {
		if s.pipeline.HasReceipt(id) {
			known = append(known, id)
		}
	}

	return &pb.CheckReceiptsResponse{KnownIds: known}, nil
}

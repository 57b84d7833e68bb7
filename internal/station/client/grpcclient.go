package client

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/dmitrijs2005/urna/internal/common"
	pb "github.com/dmitrijs2005/urna/internal/proto"
	"github.com/dmitrijs2005/urna/internal/station/models"
)

// GRPCClient implements Client over the VoteIngest gRPC service. The
// access token obtained at enrolment rides on every outbound call.
type GRPCClient struct {
	endpointURL string
	conn        *grpc.ClientConn
	client      pb.VoteIngestClient
	accessToken string
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Delete(common.AccessTokenHeaderName)
	md.Set(common.AccessTokenHeaderName, token)

	return metadata.NewOutgoingContext(ctx, md)
}

func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply interface{},
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	if s.accessToken != "" {
		ctx = withAccessToken(ctx, s.accessToken)
	}
	return invoker(ctx, method, req, reply, cc, opts...)
}

func NewVoteIngestClient(endpointURL string) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL}
	if err := c.initGRPCClient(); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) initGRPCClient() error {
	conn, err := grpc.NewClient(s.endpointURL,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(s.accessTokenInterceptor))
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = pb.NewVoteIngestClient(conn)
	return nil
}

func (s *GRPCClient) Close() error {
	return s.conn.Close()
}

func (s *GRPCClient) SubmitBallot(ctx context.Context, b *models.Ballot) (bool, error) {

	ctx, cancel := context.WithTimeout(ctx, 12*time.Second)
	defer cancel()

	req := &pb.SubmitBallotRequest{
		BallotId:      b.ID.String(),
		StationId:     b.StationID,
		EmittedAt:     b.EmittedAtString(),
		SealedPayload: b.SealedPayload,
		Signature:     b.Signature,
	}

	resp, err := s.client.SubmitBallot(ctx, req)
	if err != nil {
		return false, s.mapError(err)
	}

	return resp.Accepted, nil
}

func (s *GRPCClient) Ping(ctx context.Context) error {

	resp, err := s.client.Ping(ctx, &pb.PingRequest{})
	if err != nil {
		return s.mapError(err)
	}

	if resp.Status != "OK" {
		return ErrUnavailable
	}

	return nil
}

func (s *GRPCClient) FetchServerPublicKey(ctx context.Context) (string, error) {

	resp, err := s.client.FetchServerPublicKey(ctx, &pb.FetchServerPublicKeyRequest{})
	if err != nil {
		return "", s.mapError(err)
	}

	return resp.PublicKeyB64, nil
}

func (s *GRPCClient) RegisterStation(ctx context.Context, stationID, wrappedAESKeyB64, signingKeyB64 string) error {

	req := &pb.RegisterStationRequest{
		StationId:        stationID,
		WrappedAesKeyB64: wrappedAESKeyB64,
		SigningKeyB64:    signingKeyB64,
	}

	resp, err := s.client.RegisterStation(ctx, req)
	if err != nil {
		return s.mapError(err)
	}

	s.accessToken = resp.AccessToken
	return nil
}

func (s *GRPCClient) CheckReceipts(ctx context.Context, ballotIDs []string) ([]string, error) {

	resp, err := s.client.CheckReceipts(ctx, &pb.CheckReceiptsRequest{BallotIds: ballotIDs})
	if err != nil {
		return nil, s.mapError(err)
	}

	return resp.KnownIds, nil
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.Unauthenticated, codes.PermissionDenied:
		return ErrUnauthorized
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}

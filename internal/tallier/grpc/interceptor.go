package grpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/dmitrijs2005/urna/internal/common"
	pb "github.com/dmitrijs2005/urna/internal/proto"
	"github.com/dmitrijs2005/urna/internal/tallier/auth"
)

type ctxKey string

const stationIDKey ctxKey = "stationID"

// guardedMethods require a station access token minted at enrolment.
var guardedMethods = map[string]struct{}{
	pb.VoteIngest_SubmitBallot_FullMethodName:  {},
	pb.VoteIngest_CheckReceipts_FullMethodName: {},
}

func (s *GRPCServer) accessTokenInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {

	if _, guarded := guardedMethods[info.FullMethod]; guarded {

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

		stationID, err := auth.GetStationIDFromToken(accessToken, s.jwtSecret)
		if err != nil {
			return nil, status.Error(codes.Unauthenticated, "invalid token")
		}

		ctx = context.WithValue(ctx, stationIDKey, stationID)
	}

	return handler(ctx, req)
}

// tokenStationID returns the station identity the interceptor attached.
func tokenStationID(ctx context.Context) string {
	id, _ := ctx.Value(stationIDKey).(string)
	return id
}

package rpc

import (
	"context"
	"crypto/subtle"
	"fwgate/internal/service"
	"fwgate/pkg/fwgatepb"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"time"
)

const (
	accessKeyMetadata = "x-access-token"
	requestIDMetadata = "x-request-id"
)

// NewServer returns a gRPC server exposing control. Outcomes, failures
// included, travel in the reply; only a bad access key becomes a gRPC status.
func NewServer(control service.Control, accessKey string, l *zap.Logger, opts ...grpc.ServerOption) *grpc.Server {
	if l == nil {
		l = zap.NewNop()
	}
	l = l.Named("grpc")

	opts = append(opts, grpc.ChainUnaryInterceptor(logInterceptor(l), authInterceptor(accessKey)))
	srv := grpc.NewServer(opts...)
	fwgatepb.RegisterFirewallControlServer(srv, &controlServer{control: control})
	return srv
}

func authInterceptor(accessKey string) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		if accessKey == "" {
			return handler(ctx, req)
		}

		md, _ := metadata.FromIncomingContext(ctx)
		var key string
		if values := md.Get(accessKeyMetadata); len(values) > 0 {
			key = values[0]
		}
		if subtle.ConstantTimeCompare([]byte(key), []byte(accessKey)) != 1 {
			return nil, status.Error(codes.Unauthenticated, "invalid access key")
		}
		return handler(ctx, req)
	}
}

func logInterceptor(l *zap.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		id := uuid.NewString()
		if md, ok := metadata.FromIncomingContext(ctx); ok {
			if values := md.Get(requestIDMetadata); len(values) > 0 && values[0] != "" {
				id = values[0]
			}
		}

		start := time.Now()
		resp, err := handler(ctx, req)
		l.Info("call",
			zap.String("request_id", id),
			zap.String("method", info.FullMethod),
			zap.String("code", status.Code(err).String()),
			zap.Duration("took", time.Since(start)))
		return resp, err
	}
}

package grpc

import (
	"log/slog"
	"message-board/observability"
	"message-board/wire"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// NewServer returns a gRPC server speaking the wire codec, with call logging
// and metrics installed.
func NewServer(log *slog.Logger, monitoring *observability.MonitoringManager, opts ...grpc.ServerOption) *grpc.Server {
	opts = append([]grpc.ServerOption{
		grpc.ForceServerCodec(wire.Codec{}),
		grpc.ChainUnaryInterceptor(observability.UnaryServerInterceptor(log, monitoring)),
	}, opts...)
	return grpc.NewServer(opts...)
}

// NewClient opens a plaintext connection to a message board server.
func NewClient(address string, opts ...grpc.DialOption) (*grpc.ClientConn, error) {
	opts = append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	}, opts...)
	return grpc.NewClient(address, opts...)
}

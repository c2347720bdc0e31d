package grpc

import (
	"roomrent-backend/internal/api/grpc/interceptor"

	"google.golang.org/grpc"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

// NewServer builds the gRPC server exposing grpc.health.v1 and reflection.
func NewServer(checker *HealthChecker) *grpc.Server {
	s := grpc.NewServer(
		grpc.UnaryInterceptor(interceptor.RequestID()),
	)
	healthpb.RegisterHealthServer(s, checker.Server())

	// Register reflection service for grpcurl
	reflection.Register(s)
	return s
}

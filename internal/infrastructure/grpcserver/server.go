package grpcserver

import (
	"fmt"
	"net"

	"github.com/dezh-tech/immortal/pkg/logger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// ServiceName is the health service name reported next to the overall "".
const ServiceName = "mediabridge"

// Server exposes grpc.health.v1 for orchestrators that probe over gRPC.
// Like GET /api/health it reports liveness only.
type Server struct {
	grpc   *grpc.Server
	health *health.Server
	cfg    Config
}

func New(cfg Config) *Server {
	s := &Server{
		grpc:   grpc.NewServer(),
		health: health.NewServer(),
		cfg:    cfg,
	}

	healthpb.RegisterHealthServer(s.grpc, s.health)
	s.health.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_SERVING)

	return s
}

func (s *Server) Address() string {
	return net.JoinHostPort(s.cfg.Bind, fmt.Sprint(s.cfg.Port))
}

// Start listens on the configured address and serves until Stop.
func (s *Server) Start() error {
	lis, err := net.Listen("tcp", s.Address())
	if err != nil {
		return err
	}

	return s.Serve(lis)
}

func (s *Server) Serve(lis net.Listener) error {
	logger.Info("grpc health server listening", "address", lis.Addr().String())

	return s.grpc.Serve(lis)
}

// Stop marks every service NOT_SERVING and drains open calls.
func (s *Server) Stop() {
	s.health.Shutdown()
	s.grpc.GracefulStop()
}

package server

import (
	"fmt"
	"net"

	clientv1 "ChordDHT/internal/api/client/v1"
	dhtv1 "ChordDHT/internal/api/dht/v1"
	"ChordDHT/internal/logger"
	"ChordDHT/internal/node"

	"google.golang.org/grpc"
)

// Server hosts a chord node's two RPC surfaces on one gRPC listener:
// the node-to-node DHT service (lookups, stabilization, key hand-off)
// and the external client API (put/get/diagnostics). Start blocks
// serving remote requests until the node shuts down.
type Server struct {
	grpcServer *grpc.Server
	listener   net.Listener
	lgr        logger.Logger
}

// New registers both services around n on lis. grpcOpts go straight to
// grpc.NewServer (interceptors, message limits); srvOpts configure the
// wrapper itself.
func New(lis net.Listener, n *node.Node, grpcOpts []grpc.ServerOption, srvOpts ...Option) (*Server, error) {
	s := &Server{
		grpcServer: grpc.NewServer(grpcOpts...),
		listener:   lis,
		lgr:        &logger.NopLogger{},
	}
	for _, opt := range srvOpts {
		opt(s)
	}
	clientv1.RegisterClientAPIServer(s.grpcServer, NewClientService(n))
	dhtv1.RegisterDHTServer(s.grpcServer, NewDHTService(n))
	return s, nil
}

// Start serves until the listener closes or Stop/GracefulStop is called.
func (s *Server) Start() error {
	s.lgr.Info("serving chord RPC surfaces", logger.F("addr", s.listener.Addr().String()))
	if err := s.grpcServer.Serve(s.listener); err != nil {
		return fmt.Errorf("gRPC server stopped: %w", err)
	}
	return nil
}

// Stop tears the server down immediately, dropping in-flight RPCs.
func (s *Server) Stop() {
	s.grpcServer.Stop()
}

// GracefulStop waits for in-flight RPCs to finish before shutting down;
// the disconnect path uses it so a final key hand-off is never cut off.
func (s *Server) GracefulStop() {
	s.grpcServer.GracefulStop()
}

package server

import "ChordDHT/internal/logger"

// Option configures the Server wrapper (as opposed to grpc.ServerOption,
// which configures the underlying gRPC server).
type Option func(*Server)

// WithLogger injects a structured logger. Defaults to a no-op logger.
func WithLogger(lgr logger.Logger) Option {
	return func(s *Server) {
		s.lgr = lgr
	}
}

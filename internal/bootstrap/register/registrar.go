package register

import (
	"context"
)

// Registrar is the DNS-side registration backend behind
// RegistrarBootstrap: it publishes this node's address under a
// well-known name so other nodes' Discover calls can find it.
type Registrar interface {
	// RegisterNode publishes nodeID -> targetHost:port.
	RegisterNode(ctx context.Context, nodeID, targetHost string, port int) error
	// DeregisterNode withdraws the record on graceful departure.
	DeregisterNode(ctx context.Context, nodeID, targetHost string, port int) error
	// RenewNode refreshes a TTL-bound record before it expires.
	RenewNode(ctx context.Context, nodeID, targetHost string, port int) error
	// Discover lists every "host:port" currently registered by any node,
	// including this one, so a joining node can pick an anchor.
	Discover(ctx context.Context) ([]string, error)
	Close() error
}

package bootstrap

import (
	"context"

	"ChordDHT/internal/domain"
)

// Bootstrap abstracts how a starting node finds an anchor already on the
// ring, and how it announces/retracts its own presence. Backends range
// from a static peer list to DNS records to the directory service; the
// join path only ever needs Discover.
type Bootstrap interface {
	// Discover returns addresses of peers believed to be live. The join
	// path picks one of them at random as its anchor.
	Discover(ctx context.Context) ([]string, error)
	// Register announces this node to the backend. Backends without a
	// registration concept (static lists) treat it as a no-op.
	Register(ctx context.Context, node *domain.Node) error
	// Deregister retracts the announcement on graceful departure.
	Deregister(ctx context.Context, node *domain.Node) error
}

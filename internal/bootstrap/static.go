package bootstrap

import (
	"context"

	"ChordDHT/internal/domain"
)

// StaticBootstrap discovers peers from a fixed list baked into the
// node's configuration. Register/Deregister are no-ops: there is nothing
// to announce to.
type StaticBootstrap struct {
	peers []string
}

func NewStaticBootstrap(peers []string) *StaticBootstrap {
	out := make([]string, 0, len(peers))
	for _, p := range peers {
		if p != "" {
			out = append(out, p)
		}
	}
	return &StaticBootstrap{peers: out}
}

// Discover returns the configured peer list as-is.
func (s *StaticBootstrap) Discover(ctx context.Context) ([]string, error) {
	return s.peers, nil
}

func (s *StaticBootstrap) Register(ctx context.Context, node *domain.Node) error {
	return nil
}

func (s *StaticBootstrap) Deregister(ctx context.Context, node *domain.Node) error {
	return nil
}

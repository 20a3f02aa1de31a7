package bootstrap

import (
	"context"
	"fmt"

	"ChordDHT/internal/directory"
	"ChordDHT/internal/domain"
)

// nodeType is the directory type tag chord nodes register under
// (`node.<type>.<id>`, type ∈ {chord, router, client}).
const nodeType = "chord"

// DirectoryBootstrap adapts internal/directory.Client into the
// Bootstrap interface, so a node can discover/register/deregister
// through the name service exactly like the static/DNS/Route53
// backends (bootstrap.mode=directory).
type DirectoryBootstrap struct {
	client *directory.Client
}

// NewDirectoryBootstrap dials the directory service at addr.
func NewDirectoryBootstrap(addr string) (*DirectoryBootstrap, error) {
	c, err := directory.Connect(addr)
	if err != nil {
		return nil, fmt.Errorf("connect to directory at %s: %w", addr, err)
	}
	return &DirectoryBootstrap{client: c}, nil
}

// Close releases the connection to the directory service.
func (b *DirectoryBootstrap) Close() error {
	return b.client.Close()
}

// Discover lists every chord node currently registered and resolves
// each id to its address.
func (b *DirectoryBootstrap) Discover(ctx context.Context) ([]string, error) {
	ids, err := b.client.List(ctx, nodeType)
	if err != nil {
		return nil, fmt.Errorf("list chord nodes: %w", err)
	}

	var addrs []string
	for _, id := range ids {
		addr, found, err := b.client.Resolve(ctx, nodeType, id)
		if err != nil {
			return nil, fmt.Errorf("resolve chord node: %w", err)
		}
		if found {
			addrs = append(addrs, addr)
		}
	}
	return addrs, nil
}

// PickFreeChordID asks the directory for an id in [0, 2^bits) not
// currently registered as a chord node, for callers that want the
// directory to assign a fresh id instead of deriving one from an
// address hash.
func (b *DirectoryBootstrap) PickFreeChordID(ctx context.Context, bits int) (domain.ID, error) {
	id, err := b.client.PickFreeChordID(ctx, bits)
	if err != nil {
		return nil, err
	}
	return domain.ID(id), nil
}

// Register publishes node under `node.chord.<id>`.
func (b *DirectoryBootstrap) Register(ctx context.Context, node *domain.Node) error {
	_, err := b.client.Register(ctx, nodeType, []byte(node.ID), node.Addr)
	return err
}

// Deregister removes node's entry.
func (b *DirectoryBootstrap) Deregister(ctx context.Context, node *domain.Node) error {
	return b.client.Remove(ctx, nodeType, []byte(node.ID))
}

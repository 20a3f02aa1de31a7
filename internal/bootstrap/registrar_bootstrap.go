package bootstrap

import (
	"context"
	"net"
	"strconv"

	"ChordDHT/internal/bootstrap/register"
	"ChordDHT/internal/domain"
)

// RegistrarBootstrap adapts a register.Registrar (Route53 or
// CoreDNS/etcd, selected by register.NewRegistrar) into the Bootstrap
// interface, used for bootstrap.mode=route53/coredns.
type RegistrarBootstrap struct {
	registrar register.Registrar
}

// NewRegistrarBootstrap wraps r.
func NewRegistrarBootstrap(r register.Registrar) *RegistrarBootstrap {
	return &RegistrarBootstrap{registrar: r}
}

// Discover lists every node address currently registered.
func (b *RegistrarBootstrap) Discover(ctx context.Context) ([]string, error) {
	return b.registrar.Discover(ctx)
}

// Register publishes node's address under its ring identifier.
func (b *RegistrarBootstrap) Register(ctx context.Context, node *domain.Node) error {
	host, portStr, err := net.SplitHostPort(node.Addr)
	if err != nil {
		return err
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return err
	}
	return b.registrar.RegisterNode(ctx, node.ID.ToHexString(true), host, port)
}

// Deregister removes node's published record.
func (b *RegistrarBootstrap) Deregister(ctx context.Context, node *domain.Node) error {
	host, portStr, err := net.SplitHostPort(node.Addr)
	if err != nil {
		return err
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return err
	}
	return b.registrar.DeregisterNode(ctx, node.ID.ToHexString(true), host, port)
}

// Close releases the underlying registrar's connections.
func (b *RegistrarBootstrap) Close() error {
	return b.registrar.Close()
}

package register

import (
	"context"
	"fmt"

	"ChordDHT/internal/config"
)

// NewRegistrar builds the DNS registrar backend named by the config:
// route53 writes records through the AWS API, coredns writes them into
// etcd for CoreDNS to serve.
func NewRegistrar(ctx context.Context, cfg config.RegisterConfig) (Registrar, error) {
	switch cfg.Type {
	case "route53":
		return NewRoute53Registrar(ctx, cfg.Route53.HostedZoneID, cfg.Route53.DomainSuffix, cfg.TTL)
	case "coredns":
		return NewCoreDNSRegistrar(cfg.CoreDNS.EtcdEndpoints, cfg.CoreDNS.BasePath, cfg.CoreDNS.Domain, cfg.TTL)
	default:
		return nil, fmt.Errorf("unsupported registrar type: %s", cfg.Type)
	}
}

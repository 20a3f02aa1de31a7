package bootstrap

import (
	"context"
	"fmt"

	"ChordDHT/internal/bootstrap/register"
	"ChordDHT/internal/config"
	"ChordDHT/internal/logger"
)

// New builds the Bootstrap backend named by cfg.Mode. ctx bounds only
// backend construction (e.g. loading AWS credentials, dialing etcd),
// not any later Discover/Register call.
func New(ctx context.Context, cfg config.BootstrapConfig, lgr logger.Logger) (Bootstrap, error) {
	switch cfg.Mode {
	case "static":
		return NewStaticBootstrap(cfg.Peers), nil

	case "dns":
		return NewDNSBootstrap(cfg, lgr), nil

	case "route53", "coredns":
		registerCfg := cfg.Register
		if registerCfg.Type == "" {
			registerCfg.Type = cfg.Mode
		}
		registrar, err := register.NewRegistrar(ctx, registerCfg)
		if err != nil {
			return nil, fmt.Errorf("build %s registrar: %w", cfg.Mode, err)
		}
		return NewRegistrarBootstrap(registrar), nil

	case "directory":
		return NewDirectoryBootstrap(cfg.DirectoryAddr)

	case "init":
		return NewStaticBootstrap(nil), nil

	default:
		return nil, fmt.Errorf("unsupported bootstrap mode: %s", cfg.Mode)
	}
}

package tester

import (
	"context"
	"fmt"
	"strings"

	"ChordDHT/internal/domain"

	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/filters"
	"github.com/docker/docker/client"
)

// DockerBootstrap discovers nodes by container name suffix and network,
// querying the local Docker daemon directly through its Go SDK rather
// than shelling out to the docker CLI.
type DockerBootstrap struct {
	Suffix  string // e.g. "localtest-node"
	Port    int    // e.g. 4000
	Network string // e.g. "chord-net"

	cli *client.Client
}

// NewDockerBootstrap creates a Docker-based bootstrapper talking to the
// daemon over the environment-configured connection (DOCKER_HOST, or
// the default Unix socket).
func NewDockerBootstrap(suffix string, port int, network string) (*DockerBootstrap, error) {
	cli, err := client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation())
	if err != nil {
		return nil, fmt.Errorf("docker client: %w", err)
	}
	return &DockerBootstrap{
		Suffix:  strings.TrimSpace(suffix),
		Port:    port,
		Network: strings.TrimSpace(network),
		cli:     cli,
	}, nil
}

// Discover returns a list of reachable peers in the given Docker network.
func (d *DockerBootstrap) Discover(ctx context.Context) ([]string, error) {
	containers, err := d.cli.ContainerList(ctx, container.ListOptions{
		Filters: filters.NewArgs(filters.Arg("network", d.Network)),
	})
	if err != nil {
		return nil, fmt.Errorf("docker container list: %w", err)
	}

	// The network filter above already restricts the result set to
	// containers attached to d.Network; only the name-suffix match is
	// left to do here.
	var addrs []string
	for _, c := range containers {
		name := strings.TrimPrefix(firstName(c.Names), "/")
		if name == "" || !strings.Contains(name, d.Suffix) {
			continue
		}
		// Use the container name (resolvable via Docker's embedded DNS)
		// rather than its IP, so restarts that reassign IPs don't break
		// bootstrap.
		addrs = append(addrs, fmt.Sprintf("%s:%d", name, d.Port))
	}
	return addrs, nil
}

func firstName(names []string) string {
	if len(names) == 0 {
		return ""
	}
	return names[0]
}

// Register and Deregister are no-ops: Docker's own network DNS already
// makes this node discoverable by name, nothing to write.
func (d *DockerBootstrap) Register(ctx context.Context, node *domain.Node) error   { return nil }
func (d *DockerBootstrap) Deregister(ctx context.Context, node *domain.Node) error { return nil }

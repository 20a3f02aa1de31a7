package client

import (
	"fmt"

	clientv1 "ChordDHT/internal/api/client/v1"
	"ChordDHT/internal/telemetry/lookuptrace"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// Connect dials addr and returns a client-API stub plus the owning
// connection, which the caller must Close. This is the external-client
// dial path (CLI, tester); node-to-node RPC goes through Manager's
// pooled connections instead. The lookuptrace interceptor is a no-op
// unless a tracer provider is installed.
func Connect(addr string) (clientv1.ClientAPIClient, *grpc.ClientConn, error) {
	conn, err := grpc.NewClient(
		addr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithChainUnaryInterceptor(lookuptrace.ClientInterceptor()),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to %s: %w", addr, err)
	}
	return clientv1.NewClientAPIClient(conn), conn, nil
}

package client

import (
	"context"
	"errors"
	"time"

	"ChordDHT/internal/api"
	clientv1 "ChordDHT/internal/api/client/v1"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var (
	ErrNotFound         = errors.New("resource not found")
	ErrUnavailable      = errors.New("node unavailable")
	ErrDeadlineExceeded = errors.New("request timeout exceeded")
	ErrInternal         = errors.New("internal gRPC error")
)

// normalizeError converts a gRPC status error into a common internal error.
func normalizeError(err error) error {
	if err == nil {
		return nil
	}

	s, ok := status.FromError(err)
	if !ok {
		return ErrInternal
	}

	switch s.Code() {
	case codes.NotFound:
		return ErrNotFound
	case codes.Unavailable:
		return ErrUnavailable
	case codes.DeadlineExceeded:
		return ErrDeadlineExceeded
	default:
		return ErrInternal
	}
}

// Put inserts or updates a key-value pair on the node.
func Put(ctx context.Context, c clientv1.ClientAPIClient, key, value string) (time.Duration, error) {
	start := time.Now()
	_, err := c.Put(ctx, &clientv1.PutRequest{Key: key, Value: value})
	return time.Since(start), normalizeError(err)
}

// Get retrieves the value for a given key. A false Found (no error)
// means the key wasn't present anywhere it should be.
func Get(ctx context.Context, c clientv1.ClientAPIClient, key string) (string, bool, time.Duration, error) {
	start := time.Now()
	resp, err := c.Get(ctx, &clientv1.GetRequest{Key: key})
	if err != nil {
		return "", false, time.Since(start), normalizeError(err)
	}
	return resp.Value, resp.Found, time.Since(start), nil
}

// Contains reports whether a key is currently stored.
func Contains(ctx context.Context, c clientv1.ClientAPIClient, key string) (bool, time.Duration, error) {
	start := time.Now()
	resp, err := c.Contains(ctx, &clientv1.ContainsRequest{Key: key})
	if err != nil {
		return false, time.Since(start), normalizeError(err)
	}
	return resp.Found, time.Since(start), nil
}

// Delete removes a key from the node.
func Delete(ctx context.Context, c clientv1.ClientAPIClient, key string) (time.Duration, error) {
	start := time.Now()
	_, err := c.Remove(ctx, &clientv1.RemoveRequest{Key: key})
	return time.Since(start), normalizeError(err)
}

// Lookup resolves which node owns key, without reading or writing it.
func Lookup(ctx context.Context, c clientv1.ClientAPIClient, key string) (*clientv1.LookupResponse, time.Duration, error) {
	start := time.Now()
	resp, err := c.Lookup(ctx, &clientv1.LookupRequest{Key: key})
	if err != nil {
		return nil, time.Since(start), normalizeError(err)
	}
	return resp, time.Since(start), nil
}

// GetFingerTable retrieves the node's finger table, backing the
// `finger-table` CLI command.
func GetFingerTable(ctx context.Context, c clientv1.ClientAPIClient) (*clientv1.FingerTableResponse, time.Duration, error) {
	start := time.Now()
	resp, err := c.GetFingerTable(ctx, &api.Empty{})
	return resp, time.Since(start), normalizeError(err)
}

// GetHashTable retrieves a snapshot of the node's local store, backing
// the `hash-table` CLI command.
func GetHashTable(ctx context.Context, c clientv1.ClientAPIClient) (*clientv1.HashTableResponse, time.Duration, error) {
	start := time.Now()
	resp, err := c.GetHashTable(ctx, &api.Empty{})
	return resp, time.Since(start), normalizeError(err)
}

// Disconnect tells the node to leave the ring gracefully, backing the
// `disconnect-chord-node` CLI command.
func Disconnect(ctx context.Context, c clientv1.ClientAPIClient) (time.Duration, error) {
	start := time.Now()
	_, err := c.Disconnect(ctx, &api.Empty{})
	return time.Since(start), normalizeError(err)
}

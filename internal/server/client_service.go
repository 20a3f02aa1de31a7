package server

import (
	"context"

	"ChordDHT/internal/api"
	clientv1 "ChordDHT/internal/api/client/v1"
	"ChordDHT/internal/ctxutil"
	"ChordDHT/internal/node"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// clientService adapts internal/node to the external ClientAPIServer
// surface used by CLIs and other collaborators.
type clientService struct {
	clientv1.UnimplementedClientAPIServer
	node *node.Node
}

// NewClientService builds the client-facing gRPC service backed by n.
func NewClientService(n *node.Node) clientv1.ClientAPIServer {
	return &clientService{node: n}
}

func (s *clientService) Put(ctx context.Context, in *clientv1.PutRequest) (*clientv1.PutResponse, error) {
	if err := ctxutil.CheckContext(ctx); err != nil {
		return nil, err
	}
	hashed, err := s.node.Insert(ctx, in.Key, in.Value)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return &clientv1.PutResponse{HashedKey: []byte(hashed)}, nil
}

func (s *clientService) Get(ctx context.Context, in *clientv1.GetRequest) (*clientv1.GetResponse, error) {
	if err := ctxutil.CheckContext(ctx); err != nil {
		return nil, err
	}
	value, found, err := s.node.Get(ctx, in.Key)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return &clientv1.GetResponse{Value: value, Found: found}, nil
}

func (s *clientService) Contains(ctx context.Context, in *clientv1.ContainsRequest) (*clientv1.ContainsResponse, error) {
	if err := ctxutil.CheckContext(ctx); err != nil {
		return nil, err
	}
	found, err := s.node.Contains(ctx, in.Key)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return &clientv1.ContainsResponse{Found: found}, nil
}

func (s *clientService) Remove(ctx context.Context, in *clientv1.RemoveRequest) (*api.Empty, error) {
	if err := ctxutil.CheckContext(ctx); err != nil {
		return nil, err
	}
	if err := s.node.Remove(ctx, in.Key); err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return &api.Empty{}, nil
}

func (s *clientService) Lookup(ctx context.Context, in *clientv1.LookupRequest) (*clientv1.LookupResponse, error) {
	if err := ctxutil.CheckContext(ctx); err != nil {
		return nil, err
	}
	ctx = ctxutil.EnsureTraceID(ctx, s.node.ID())
	hashed := s.node.Space().HashKey(in.Key)
	owner, err := s.node.FindSuccessor(ctx, hashed)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return &clientv1.LookupResponse{NodeId: []byte(owner.ID), NodeAddr: owner.Addr}, nil
}

func (s *clientService) GetFingerTable(ctx context.Context, _ *api.Empty) (*clientv1.FingerTableResponse, error) {
	if err := ctxutil.CheckContext(ctx); err != nil {
		return nil, err
	}
	self := s.node.Self()
	pred := s.node.Predecessor()
	entries := s.node.Table().Entries()
	fingers := make([]*clientv1.FingerEntry, len(entries))
	for i, e := range entries {
		fe := &clientv1.FingerEntry{Index: int32(i + 1), Start: []byte(e.Start)}
		if e.Node != nil {
			fe.NodeId = []byte(e.Node.ID)
			fe.NodeAddr = e.Node.Addr
		}
		fingers[i] = fe
	}
	resp := &clientv1.FingerTableResponse{
		SelfId:   []byte(self.ID),
		SelfAddr: self.Addr,
		Fingers:  fingers,
	}
	if pred != nil {
		resp.PredecessorId = []byte(pred.ID)
		resp.PredecessorAddr = pred.Addr
	}
	return resp, nil
}

func (s *clientService) GetHashTable(ctx context.Context, _ *api.Empty) (*clientv1.HashTableResponse, error) {
	if err := ctxutil.CheckContext(ctx); err != nil {
		return nil, err
	}
	kvs := s.node.Store().Snapshot()
	out := make([]*clientv1.HashTableEntry, len(kvs))
	for i, kv := range kvs {
		out[i] = &clientv1.HashTableEntry{Key: kv.Key, HashedKey: []byte(kv.HashedKey), Value: kv.Value}
	}
	return &clientv1.HashTableResponse{Entries: out}, nil
}

// Disconnect implements the external disconnect-chord-node command:
// leave the ring gracefully, then tell the caller. The
// node's own process is expected to exit shortly after this returns;
// tearing down the listener and background workers is the process
// main's job, not this RPC's.
func (s *clientService) Disconnect(ctx context.Context, _ *api.Empty) (*clientv1.DisconnectResponse, error) {
	if err := ctxutil.CheckContext(ctx); err != nil {
		return nil, err
	}
	if err := s.node.Disconnect(ctx); err != nil {
		return &clientv1.DisconnectResponse{Ok: false}, status.Error(codes.Internal, err.Error())
	}
	return &clientv1.DisconnectResponse{Ok: true}, nil
}

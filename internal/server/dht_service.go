package server

import (
	"context"

	"ChordDHT/internal/api"
	dhtv1 "ChordDHT/internal/api/dht/v1"
	"ChordDHT/internal/ctxutil"
	"ChordDHT/internal/domain"
	"ChordDHT/internal/node"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// dhtService adapts internal/node's Chord logic to the node-to-node
// DHTServer surface.
type dhtService struct {
	dhtv1.UnimplementedDHTServer
	node *node.Node
}

// NewDHTService builds the node-to-node gRPC service backed by n.
func NewDHTService(n *node.Node) dhtv1.DHTServer {
	return &dhtService{node: n}
}

func toNodeRef(n *domain.Node) *dhtv1.NodeRef {
	if n == nil {
		return nil
	}
	return &dhtv1.NodeRef{Id: []byte(n.ID), Addr: n.Addr}
}

func fromNodeRef(r *dhtv1.NodeRef) *domain.Node {
	if r == nil {
		return nil
	}
	return &domain.Node{ID: domain.ID(r.Id), Addr: r.Addr}
}

func (s *dhtService) Id(ctx context.Context, _ *api.Empty) (*dhtv1.IdResponse, error) {
	if err := ctxutil.CheckContext(ctx); err != nil {
		return nil, err
	}
	return &dhtv1.IdResponse{Id: []byte(s.node.ID())}, nil
}

func (s *dhtService) Successor(ctx context.Context, _ *api.Empty) (*dhtv1.NodeResponse, error) {
	if err := ctxutil.CheckContext(ctx); err != nil {
		return nil, err
	}
	return &dhtv1.NodeResponse{Node: toNodeRef(s.node.Successor())}, nil
}

func (s *dhtService) Predecessor(ctx context.Context, _ *api.Empty) (*dhtv1.NodeResponse, error) {
	if err := ctxutil.CheckContext(ctx); err != nil {
		return nil, err
	}
	return &dhtv1.NodeResponse{Node: toNodeRef(s.node.Predecessor())}, nil
}

func (s *dhtService) SetSuccessor(ctx context.Context, in *dhtv1.NodeRef) (*api.Empty, error) {
	if err := ctxutil.CheckContext(ctx); err != nil {
		return nil, err
	}
	s.node.SetSuccessor(fromNodeRef(in))
	return &api.Empty{}, nil
}

func (s *dhtService) SetPredecessor(ctx context.Context, in *dhtv1.NodeRef) (*api.Empty, error) {
	if err := ctxutil.CheckContext(ctx); err != nil {
		return nil, err
	}
	s.node.SetPredecessor(fromNodeRef(in))
	return &api.Empty{}, nil
}

func (s *dhtService) FindSuccessor(ctx context.Context, in *dhtv1.IdRequest) (*dhtv1.NodeResponse, error) {
	if err := ctxutil.CheckContext(ctx); err != nil {
		return nil, err
	}
	succ, err := s.node.FindSuccessor(ctx, domain.ID(in.Target))
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return &dhtv1.NodeResponse{Node: toNodeRef(succ)}, nil
}

func (s *dhtService) ClosestPrecedingFinger(ctx context.Context, in *dhtv1.IdRequest) (*dhtv1.NodeResponse, error) {
	if err := ctxutil.CheckContext(ctx); err != nil {
		return nil, err
	}
	return &dhtv1.NodeResponse{Node: toNodeRef(s.node.ClosestPrecedingFinger(domain.ID(in.Target)))}, nil
}

func (s *dhtService) UpdateFingerTable(ctx context.Context, in *dhtv1.UpdateFingerTableRequest) (*api.Empty, error) {
	if err := ctxutil.CheckContext(ctx); err != nil {
		return nil, err
	}
	joining := &domain.Node{ID: domain.ID(in.S), Addr: in.SAddr}
	if err := s.node.UpdateFingerTable(ctx, joining, int(in.I), 0); err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return &api.Empty{}, nil
}

func (s *dhtService) Notify(ctx context.Context, in *dhtv1.NodeRef) (*api.Empty, error) {
	if err := ctxutil.CheckContext(ctx); err != nil {
		return nil, err
	}
	if err := s.node.Notify(ctx, fromNodeRef(in)); err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return &api.Empty{}, nil
}

func (s *dhtService) Insert(ctx context.Context, in *dhtv1.KVRequest) (*api.Empty, error) {
	if err := ctxutil.CheckContext(ctx); err != nil {
		return nil, err
	}
	if _, err := s.node.LocalPut(in.Key, in.Value); err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return &api.Empty{}, nil
}

func (s *dhtService) Get(ctx context.Context, in *dhtv1.KeyRequest) (*dhtv1.ValueResponse, error) {
	if err := ctxutil.CheckContext(ctx); err != nil {
		return nil, err
	}
	v, found, err := s.node.LocalGet(in.Key)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	if !found {
		return nil, status.Errorf(codes.NotFound, "key %q not found", in.Key)
	}
	return &dhtv1.ValueResponse{Value: v}, nil
}

func (s *dhtService) Contains(ctx context.Context, in *dhtv1.KeyRequest) (*dhtv1.BoolResponse, error) {
	if err := ctxutil.CheckContext(ctx); err != nil {
		return nil, err
	}
	return &dhtv1.BoolResponse{Value: s.node.LocalContains(in.Key)}, nil
}

func (s *dhtService) Remove(ctx context.Context, in *dhtv1.KeyRequest) (*api.Empty, error) {
	if err := ctxutil.CheckContext(ctx); err != nil {
		return nil, err
	}
	s.node.LocalRemove(in.Key)
	return &api.Empty{}, nil
}

func (s *dhtService) PopInInterval(ctx context.Context, in *dhtv1.RangeRequest) (*dhtv1.KVListResponse, error) {
	if err := ctxutil.CheckContext(ctx); err != nil {
		return nil, err
	}
	kvs := s.node.PopInInterval(domain.ID(in.Lo), domain.ID(in.Hi))
	return &dhtv1.KVListResponse{Entries: toKVEntries(kvs)}, nil
}

func (s *dhtService) UpdateHashTable(ctx context.Context, _ *api.Empty) (*api.Empty, error) {
	if err := ctxutil.CheckContext(ctx); err != nil {
		return nil, err
	}
	if err := s.node.UpdateHashTable(ctx); err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return &api.Empty{}, nil
}

func (s *dhtService) UpdateHashTableWithKeys(ctx context.Context, in *dhtv1.KVListRequest) (*api.Empty, error) {
	if err := ctxutil.CheckContext(ctx); err != nil {
		return nil, err
	}
	s.node.UpdateHashTableWithKeys(fromKVEntries(in.Entries))
	return &api.Empty{}, nil
}

func (s *dhtService) Ping(ctx context.Context, _ *api.Empty) (*api.Empty, error) {
	if err := ctxutil.CheckContext(ctx); err != nil {
		return nil, err
	}
	if err := s.node.Ping(); err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return &api.Empty{}, nil
}

func (s *dhtService) SerializedFingerTable(ctx context.Context, _ *api.Empty) (*dhtv1.FingerTableResponse, error) {
	if err := ctxutil.CheckContext(ctx); err != nil {
		return nil, err
	}
	entries := s.node.Table().Entries()
	fingers := make([]*dhtv1.FingerEntryMsg, len(entries))
	for i, e := range entries {
		fingers[i] = &dhtv1.FingerEntryMsg{Index: int32(i + 1), Start: []byte(e.Start), Node: toNodeRef(e.Node)}
	}
	return &dhtv1.FingerTableResponse{
		Self:        toNodeRef(s.node.Self()),
		Predecessor: toNodeRef(s.node.Predecessor()),
		Fingers:     fingers,
	}, nil
}

func (s *dhtService) SerializedHashTableKeys(ctx context.Context, _ *api.Empty) (*dhtv1.HashTableResponse, error) {
	if err := ctxutil.CheckContext(ctx); err != nil {
		return nil, err
	}
	kvs := s.node.Store().Snapshot()
	out := make([]*dhtv1.HashTableEntry, len(kvs))
	for i, kv := range kvs {
		out[i] = &dhtv1.HashTableEntry{Key: kv.Key, HashedKey: []byte(kv.HashedKey), Value: kv.Value}
	}
	return &dhtv1.HashTableResponse{Entries: out}, nil
}

func toKVEntries(kvs []domain.KeyValue) []*dhtv1.KVEntry {
	out := make([]*dhtv1.KVEntry, len(kvs))
	for i, kv := range kvs {
		out[i] = &dhtv1.KVEntry{HashedKey: []byte(kv.HashedKey), Key: kv.Key, Value: kv.Value}
	}
	return out
}

func fromKVEntries(entries []*dhtv1.KVEntry) []domain.KeyValue {
	out := make([]domain.KeyValue, len(entries))
	for i, e := range entries {
		out[i] = domain.KeyValue{HashedKey: domain.ID(e.HashedKey), Key: e.Key, Value: e.Value}
	}
	return out
}

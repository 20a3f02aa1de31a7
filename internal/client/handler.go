package client

import (
	"context"

	"ChordDHT/internal/api"
	dhtv1 "ChordDHT/internal/api/dht/v1"
	"ChordDHT/internal/domain"
)

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

// Id asks addr for its own ring identifier.
func (m *Manager) Id(ctx context.Context, addr string) (domain.ID, error) {
	var id domain.ID
	err := m.Do(ctx, addr, func(c dhtv1.DHTClient) error {
		resp, err := c.Id(ctx, &api.Empty{})
		if err != nil {
			return err
		}
		id = domain.ID(resp.Id)
		return nil
	})
	return id, err
}

// Successor asks addr for its current successor.
func (m *Manager) Successor(ctx context.Context, addr string) (*domain.Node, error) {
	var node *domain.Node
	err := m.Do(ctx, addr, func(c dhtv1.DHTClient) error {
		resp, err := c.Successor(ctx, &api.Empty{})
		if err != nil {
			return err
		}
		node = fromNodeRef(resp.Node)
		return nil
	})
	return node, err
}

// Predecessor asks addr for its current predecessor. A nil node with a nil
// error means addr currently has no predecessor.
func (m *Manager) Predecessor(ctx context.Context, addr string) (*domain.Node, error) {
	var node *domain.Node
	err := m.Do(ctx, addr, func(c dhtv1.DHTClient) error {
		resp, err := c.Predecessor(ctx, &api.Empty{})
		if err != nil {
			return err
		}
		node = fromNodeRef(resp.Node)
		return nil
	})
	return node, err
}

// FindSuccessor asks addr to resolve target, hopping as many times as it
// needs to internally before replying with the final owner.
func (m *Manager) FindSuccessor(ctx context.Context, addr string, target domain.ID) (*domain.Node, error) {
	var node *domain.Node
	err := m.Do(ctx, addr, func(c dhtv1.DHTClient) error {
		resp, err := c.FindSuccessor(ctx, &dhtv1.IdRequest{Target: []byte(target)})
		if err != nil {
			return err
		}
		node = fromNodeRef(resp.Node)
		return nil
	})
	return node, err
}

// ClosestPrecedingFinger asks addr for the node in its own finger table
// that most closely precedes target.
func (m *Manager) ClosestPrecedingFinger(ctx context.Context, addr string, target domain.ID) (*domain.Node, error) {
	var node *domain.Node
	err := m.Do(ctx, addr, func(c dhtv1.DHTClient) error {
		resp, err := c.ClosestPrecedingFinger(ctx, &dhtv1.IdRequest{Target: []byte(target)})
		if err != nil {
			return err
		}
		node = fromNodeRef(resp.Node)
		return nil
	})
	return node, err
}

// SetSuccessor tells addr to adopt node as its finger-1 successor.
func (m *Manager) SetSuccessor(ctx context.Context, addr string, node *domain.Node) error {
	return m.Do(ctx, addr, func(c dhtv1.DHTClient) error {
		_, err := c.SetSuccessor(ctx, toNodeRef(node))
		return err
	})
}

// SetPredecessor tells addr to adopt node as its predecessor.
func (m *Manager) SetPredecessor(ctx context.Context, addr string, node *domain.Node) error {
	return m.Do(ctx, addr, func(c dhtv1.DHTClient) error {
		_, err := c.SetPredecessor(ctx, toNodeRef(node))
		return err
	})
}

// UpdateFingerTable relays update_finger_table(s, i) to addr during the
// atomic join path.
func (m *Manager) UpdateFingerTable(ctx context.Context, addr string, s *domain.Node, i int) error {
	return m.Do(ctx, addr, func(c dhtv1.DHTClient) error {
		_, err := c.UpdateFingerTable(ctx, &dhtv1.UpdateFingerTableRequest{S: []byte(s.ID), SAddr: s.Addr, I: int32(i)})
		return err
	})
}

// Notify tells addr that self believes it may be its predecessor.
func (m *Manager) Notify(ctx context.Context, addr string, self *domain.Node) error {
	return m.Do(ctx, addr, func(c dhtv1.DHTClient) error {
		_, err := c.Notify(ctx, toNodeRef(self))
		return err
	})
}

// Insert stores key/value on addr, which is assumed to already own key.
func (m *Manager) Insert(ctx context.Context, addr, key, value string) error {
	return m.Do(ctx, addr, func(c dhtv1.DHTClient) error {
		_, err := c.Insert(ctx, &dhtv1.KVRequest{Key: key, Value: value})
		return err
	})
}

// Get reads key from addr's local store.
func (m *Manager) Get(ctx context.Context, addr, key string) (string, error) {
	var value string
	err := m.Do(ctx, addr, func(c dhtv1.DHTClient) error {
		resp, err := c.Get(ctx, &dhtv1.KeyRequest{Key: key})
		if err != nil {
			return err
		}
		value = resp.Value
		return nil
	})
	return value, err
}

// Contains reports whether addr's local store holds key.
func (m *Manager) Contains(ctx context.Context, addr, key string) (bool, error) {
	var found bool
	err := m.Do(ctx, addr, func(c dhtv1.DHTClient) error {
		resp, err := c.Contains(ctx, &dhtv1.KeyRequest{Key: key})
		if err != nil {
			return err
		}
		found = resp.Value
		return nil
	})
	return found, err
}

// Remove deletes key from addr's local store.
func (m *Manager) Remove(ctx context.Context, addr, key string) error {
	return m.Do(ctx, addr, func(c dhtv1.DHTClient) error {
		_, err := c.Remove(ctx, &dhtv1.KeyRequest{Key: key})
		return err
	})
}

// PopInInterval asks addr to extract and return every entry whose hashed
// key falls in the clockwise arc (lo, hi], used during key hand-off.
func (m *Manager) PopInInterval(ctx context.Context, addr string, lo, hi domain.ID) ([]domain.KeyValue, error) {
	var kvs []domain.KeyValue
	err := m.Do(ctx, addr, func(c dhtv1.DHTClient) error {
		resp, err := c.PopInInterval(ctx, &dhtv1.RangeRequest{Lo: []byte(lo), Hi: []byte(hi)})
		if err != nil {
			return err
		}
		kvs = fromKVEntries(resp.Entries)
		return nil
	})
	return kvs, err
}

// UpdateHashTable asks addr to pull any keys it should now own from its
// successor, used by notify when it adopts addr as the new predecessor.
func (m *Manager) UpdateHashTable(ctx context.Context, addr string) error {
	return m.Do(ctx, addr, func(c dhtv1.DHTClient) error {
		_, err := c.UpdateHashTable(ctx, &api.Empty{})
		return err
	})
}

// UpdateHashTableWithKeys pushes kvs onto addr's local store, used when a
// node departs and hands its table to its successor.
func (m *Manager) UpdateHashTableWithKeys(ctx context.Context, addr string, kvs []domain.KeyValue) error {
	return m.Do(ctx, addr, func(c dhtv1.DHTClient) error {
		_, err := c.UpdateHashTableWithKeys(ctx, &dhtv1.KVListRequest{Entries: toKVEntries(kvs)})
		return err
	})
}

// Ping is a liveness probe used by check_predecessor.
func (m *Manager) Ping(ctx context.Context, addr string) error {
	return m.Do(ctx, addr, func(c dhtv1.DHTClient) error {
		_, err := c.Ping(ctx, &api.Empty{})
		return err
	})
}

// SerializedFingerTable fetches addr's full finger-table snapshot over
// the node-to-node surface. The `finger-table` CLI command does not use
// it; it reads the table through the client API's GetFingerTable.
func (m *Manager) SerializedFingerTable(ctx context.Context, addr string) (*dhtv1.FingerTableResponse, error) {
	var out *dhtv1.FingerTableResponse
	err := m.Do(ctx, addr, func(c dhtv1.DHTClient) error {
		resp, err := c.SerializedFingerTable(ctx, &api.Empty{})
		if err != nil {
			return err
		}
		out = resp
		return nil
	})
	return out, err
}

// SerializedHashTableKeys fetches a snapshot of addr's local store over
// the node-to-node surface. The `hash-table` CLI command does not use
// it; it reads the store through the client API's GetHashTable.
func (m *Manager) SerializedHashTableKeys(ctx context.Context, addr string) (*dhtv1.HashTableResponse, error) {
	var out *dhtv1.HashTableResponse
	err := m.Do(ctx, addr, func(c dhtv1.DHTClient) error {
		resp, err := c.SerializedHashTableKeys(ctx, &api.Empty{})
		if err != nil {
			return err
		}
		out = resp
		return nil
	})
	return out, err
}

package node

import (
	"context"
	"errors"

	"ChordDHT/internal/ctxutil"
	"ChordDHT/internal/domain"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Insert routes key/value to whichever node currently owns key, storing
// it locally if that happens to be this node.
func (n *Node) Insert(ctx context.Context, key, value string) (domain.ID, error) {
	ctx = ctxutil.EnsureTraceID(ctx, n.self.ID)
	hashed := n.space.HashKey(key)
	owner, err := n.FindSuccessor(ctx, hashed)
	if err != nil {
		return nil, err
	}
	if owner.ID.Equal(n.self.ID) {
		return n.store.Put(key, value)
	}
	if err := n.rpc.Insert(ctx, owner.Addr, key, value); err != nil {
		return nil, err
	}
	return hashed, nil
}

// Get routes to key's owner and returns its value. found is false (with
// a nil error) when the key simply isn't present anywhere it should be.
func (n *Node) Get(ctx context.Context, key string) (value string, found bool, err error) {
	ctx = ctxutil.EnsureTraceID(ctx, n.self.ID)
	hashed := n.space.HashKey(key)
	owner, err := n.FindSuccessor(ctx, hashed)
	if err != nil {
		return "", false, err
	}
	if owner.ID.Equal(n.self.ID) {
		v, err := n.store.Get(key)
		if errors.Is(err, domain.ErrKeyNotFound) {
			return "", false, nil
		}
		if err != nil {
			return "", false, err
		}
		return v, true, nil
	}
	v, err := n.rpc.Get(ctx, owner.Addr, key)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return "", false, nil
		}
		return "", false, err
	}
	return v, true, nil
}

// Contains reports whether key's owner currently holds it.
func (n *Node) Contains(ctx context.Context, key string) (bool, error) {
	ctx = ctxutil.EnsureTraceID(ctx, n.self.ID)
	hashed := n.space.HashKey(key)
	owner, err := n.FindSuccessor(ctx, hashed)
	if err != nil {
		return false, err
	}
	if owner.ID.Equal(n.self.ID) {
		return n.store.Contains(key), nil
	}
	return n.rpc.Contains(ctx, owner.Addr, key)
}

// Remove deletes key from its owner's store. Removing an absent key is
// not an error.
func (n *Node) Remove(ctx context.Context, key string) error {
	ctx = ctxutil.EnsureTraceID(ctx, n.self.ID)
	hashed := n.space.HashKey(key)
	owner, err := n.FindSuccessor(ctx, hashed)
	if err != nil {
		return err
	}
	if owner.ID.Equal(n.self.ID) {
		n.store.Remove(key)
		return nil
	}
	return n.rpc.Remove(ctx, owner.Addr, key)
}

// LocalGet reads key directly from this node's own store, without
// resolving ownership. Used by the Get RPC handler: a lookup already
// routed the request here, so there is no reason to look it up again.
func (n *Node) LocalGet(key string) (string, bool, error) {
	v, err := n.store.Get(key)
	if errors.Is(err, domain.ErrKeyNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return v, true, nil
}

// LocalPut and LocalContains/LocalRemove mirror LocalGet: direct,
// no-routing access to this node's own store, used by the RPC handlers
// that back Insert/Contains/Remove on the wire.
func (n *Node) LocalPut(key, value string) (domain.ID, error) { return n.store.Put(key, value) }
func (n *Node) LocalContains(key string) bool                 { return n.store.Contains(key) }
func (n *Node) LocalRemove(key string)                        { n.store.Remove(key) }

// PopInInterval implements pop_in_interval(lo, hi):
// extract and remove every locally-stored key whose hash falls in the
// clockwise arc (lo, hi]. The underlying store's ExtractRange is
// [lo, hi), so both endpoints are shifted forward by one to realize the
// inclusive-upper, exclusive-lower contract this method always has,
// independent of how a caller derived lo and hi.
func (n *Node) PopInInterval(lo, hi domain.ID) []domain.KeyValue {
	return n.store.ExtractRange(n.plusOne(lo), n.plusOne(hi))
}

// UpdateHashTable implements update_hash_table(): pull
// from the successor every key this node should now own, i.e. every key
// in (predecessor, self]. A no-op until both a successor and a
// predecessor are known.
func (n *Node) UpdateHashTable(ctx context.Context) error {
	succ := n.Successor()
	pred := n.Predecessor()
	if succ == nil || pred == nil || succ.ID.Equal(n.self.ID) {
		return nil
	}

	kvs, err := n.rpc.PopInInterval(ctx, succ.Addr, pred.ID, n.self.ID)
	if err != nil {
		return err
	}
	n.store.Merge(kvs)
	return nil
}

// UpdateHashTableWithKeys implements update_hash_table_with_keys(kvs):
// absorb a departing node's entire table.
func (n *Node) UpdateHashTableWithKeys(kvs []domain.KeyValue) {
	n.store.Merge(kvs)
}

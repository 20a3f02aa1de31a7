package node

import (
	"context"
	"fmt"

	"ChordDHT/internal/ctxutil"
	"ChordDHT/internal/domain"
	"ChordDHT/internal/logger"
)

// maxLookupHops bounds find_predecessor's walk around the ring. A
// correctly stabilized ring resolves in O(log N) hops; this is a safety
// net against a still-converging or partially inconsistent ring, not a
// correctness limit.
const maxLookupHops = 256

// peer is the small interface find_predecessor's loop dispatches
// through, so a step onto the local node never pays an RPC round trip.
type peer interface {
	id() domain.ID
	successor(ctx context.Context) (*domain.Node, error)
	closestPrecedingFinger(ctx context.Context, k domain.ID) (*domain.Node, error)
}

// localPeer executes directly against this node's own state.
type localPeer struct{ n *Node }

func (p localPeer) id() domain.ID { return p.n.self.ID }

func (p localPeer) successor(ctx context.Context) (*domain.Node, error) {
	if err := ctxutil.CheckContext(ctx); err != nil {
		return nil, err
	}
	return p.n.Successor(), nil
}

func (p localPeer) closestPrecedingFinger(ctx context.Context, k domain.ID) (*domain.Node, error) {
	if err := ctxutil.CheckContext(ctx); err != nil {
		return nil, err
	}
	return p.n.ClosestPrecedingFinger(k), nil
}

// remotePeer executes against another node over RPC.
type remotePeer struct {
	n      *Node
	target *domain.Node
}

func (p remotePeer) id() domain.ID { return p.target.ID }

func (p remotePeer) successor(ctx context.Context) (*domain.Node, error) {
	return p.n.rpc.Successor(ctx, p.target.Addr)
}

func (p remotePeer) closestPrecedingFinger(ctx context.Context, k domain.ID) (*domain.Node, error) {
	return p.n.rpc.ClosestPrecedingFinger(ctx, p.target.Addr, k)
}

// handleFor wraps node as a peer, short-circuiting to a local handle
// whenever node happens to be this node itself.
func (n *Node) handleFor(node *domain.Node) peer {
	if node == nil || node.ID.Equal(n.self.ID) {
		return localPeer{n: n}
	}
	return remotePeer{n: n, target: node}
}

// ClosestPrecedingFinger scans this node's own finger table from slot m
// down to 1 and returns the closest known node strictly between self
// and k. Falls back to self when
// no finger qualifies. Purely local: no I/O, no error to report.
func (n *Node) ClosestPrecedingFinger(k domain.ID) *domain.Node {
	entries := n.rt.Entries()
	for i := len(entries) - 1; i >= 0; i-- {
		f := entries[i].Node
		if f == nil {
			continue
		}
		if f.ID.Between(n.plusOne(n.self.ID), k, false) {
			return f
		}
	}
	return n.self
}

// FindPredecessor walks the ring towards k, returning the node that
// immediately precedes whichever node owns k. The walk starts locally
// and steps to remote peers only as finger hops demand it.
func (n *Node) FindPredecessor(ctx context.Context, k domain.ID) (*domain.Node, error) {
	var cur peer = localPeer{n: n}

	for hop := 0; ; hop++ {
		if hop >= maxLookupHops {
			return nil, fmt.Errorf("node: find_predecessor exceeded %d hops resolving %s", maxLookupHops, k.ToHexString(true))
		}
		if err := ctxutil.CheckContext(ctx); err != nil {
			return nil, err
		}

		succ, err := cur.successor(ctx)
		if err != nil {
			return nil, err
		}
		if succ == nil {
			// Not yet joined to a ring; cur is the only node we know of.
			return n.nodeFor(cur), nil
		}
		if k.Between(n.plusOne(cur.id()), n.plusOne(succ.ID), true) {
			n.logResolved(ctx, k, hop)
			return n.nodeFor(cur), nil
		}

		next, err := cur.closestPrecedingFinger(ctx, k)
		if err != nil {
			return nil, err
		}
		if next == nil || next.ID.Equal(cur.id()) {
			// No finger strictly closer than cur itself: cur is as far
			// as this walk can get.
			n.logResolved(ctx, k, hop)
			return n.nodeFor(cur), nil
		}
		cur = n.handleFor(next)
		ctx = ctxutil.IncHops(ctx)
	}
}

// logResolved records how many hops a lookup took. The context's hop
// counter (seeded by the background workers' NewContext) wins when
// present, since it also counts hops taken before this node got the
// request; the local count is the fallback.
func (n *Node) logResolved(ctx context.Context, k domain.ID, localHops int) {
	hops := ctxutil.HopsFromContext(ctx)
	if hops < 0 {
		hops = localHops
	}
	n.lgr.Debug("find_predecessor resolved",
		logger.F("key", k.ToHexString(true)),
		logger.F("hops", hops),
		logger.F("trace_id", ctxutil.TraceIDFromContext(ctx)),
	)
}

// nodeFor materializes a peer handle back into a concrete domain.Node.
func (n *Node) nodeFor(p peer) *domain.Node {
	if lp, ok := p.(localPeer); ok {
		return lp.n.self
	}
	return p.(remotePeer).target
}

// FindSuccessor resolves the node currently responsible for k: its
// predecessor's successor.
func (n *Node) FindSuccessor(ctx context.Context, k domain.ID) (*domain.Node, error) {
	pred, err := n.FindPredecessor(ctx, k)
	if err != nil {
		return nil, err
	}
	succ, err := n.handleFor(pred).successor(ctx)
	if err != nil {
		return nil, err
	}
	if succ == nil {
		// Singleton ring that hasn't been initialized yet; pred is the
		// only node there is.
		return pred, nil
	}
	return succ, nil
}

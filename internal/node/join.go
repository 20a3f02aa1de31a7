package node

import (
	"context"

	"ChordDHT/internal/ctxutil"
	"ChordDHT/internal/domain"
	"ChordDHT/internal/logger"
)

// maxUpdateFingerTableDepth bounds how often update_finger_table
// forwards to itself within one node during the atomic join path. It
// does not bound the relay across nodes: each inbound
// UpdateFingerTable RPC starts again at depth 0.
const maxUpdateFingerTableDepth = 256

// Join attaches this node to the ring reachable through anchor. A nil
// anchor means this is the first node: the ring is initialized as a
// singleton. Which join algorithm runs depends on WithStabilization:
// the atomic path resolves every finger before returning; the
// incremental path sets only the successor and leaves periodic
// stabilization to converge the rest.
func (n *Node) Join(ctx context.Context, anchor *domain.Node) error {
	n.lifecycleMu.Lock()
	defer n.lifecycleMu.Unlock()

	if anchor == nil {
		n.rt.InitSingleNode()
		n.lgr.Info("joined as singleton ring")
		return nil
	}

	if n.useStabilization {
		return n.joinIncremental(ctx, anchor)
	}
	return n.joinAtomic(ctx, anchor)
}

// joinIncremental resolves only the successor through anchor and
// leaves every other finger at NONE.
// stabilize/fix_fingers (driven by StartStabilizers) converge the rest.
func (n *Node) joinIncremental(ctx context.Context, anchor *domain.Node) error {
	succ, err := n.rpc.FindSuccessor(ctx, anchor.Addr, n.rt.Start(1))
	if err != nil {
		return err
	}
	n.rt.SetSuccessor(succ)
	n.lgr.Info("joined (incremental)", logger.FNode("successor", succ))
	return nil
}

// joinAtomic resolves every finger up front via anchor, then tells
// every other node in the ring whose finger table should now point at
// this node.
func (n *Node) joinAtomic(ctx context.Context, anchor *domain.Node) error {
	if err := n.initFingerTable(ctx, anchor); err != nil {
		return err
	}
	if err := n.updateOthers(ctx); err != nil {
		return err
	}
	return n.UpdateHashTable(ctx)
}

// initFingerTable implements init_finger_table(n'):
// resolve finger 1 through the anchor, derive predecessor from the new
// successor, then resolve each remaining finger — reusing the previous
// finger's node as the starting point for the next lookup whenever it
// already covers the new finger's start, rather than asking the anchor
// again each time.
func (n *Node) initFingerTable(ctx context.Context, anchor *domain.Node) error {
	succ1, err := n.rpc.FindSuccessor(ctx, anchor.Addr, n.rt.Start(1))
	if err != nil {
		return err
	}
	n.rt.SetFinger(1, succ1)

	if succ1.ID.Equal(n.self.ID) {
		// We are the only node on the ring after all; anchor must have
		// been unreachable from the rest of the ring, or this is a
		// race with a concurrent join. Fall back to a singleton.
		n.rt.InitSingleNode()
		return nil
	}

	pred, err := n.rpc.Predecessor(ctx, succ1.Addr)
	if err != nil {
		return err
	}
	n.rt.SetPredecessor(pred)
	if err := n.rpc.SetPredecessor(ctx, succ1.Addr, n.self); err != nil {
		return err
	}

	m := n.rt.M()
	for i := 1; i < m; i++ {
		start := n.rt.Start(i + 1)
		cur := n.rt.Finger(i)
		if cur != nil && start.Between(n.plusOne(n.self.ID), n.plusOne(cur.ID), true) {
			n.rt.SetFinger(i+1, cur)
			continue
		}
		next, err := n.rpc.FindSuccessor(ctx, anchor.Addr, start)
		if err != nil {
			return err
		}
		if n.self.ID.Between(n.plusOne(start), next.ID, false) {
			// The anchor resolved start without knowing about this node
			// yet; self sits between start and the node it found, so self
			// is the actual successor of start.
			n.rt.SetFinger(i+1, n.self)
			continue
		}
		n.rt.SetFinger(i+1, next)
	}
	return nil
}

// updateOthers implements update_others(): for every
// finger slot i, find the node whose i'th finger should now be this
// node and tell it so.
func (n *Node) updateOthers(ctx context.Context) error {
	m := n.rt.M()
	for i := 1; i <= m; i++ {
		delta := n.space.PowerOfTwo(i - 1)
		lookFor, err := n.space.SubMod(n.self.ID, delta)
		if err != nil {
			return err
		}
		pred, err := n.FindPredecessor(ctx, lookFor)
		if err != nil {
			return err
		}
		if err := n.updateFingerTableOn(ctx, pred, n.self, i, 0); err != nil {
			n.lgr.Warn("updateOthers: update_finger_table relay failed",
				logger.FNode("target", pred), logger.F("index", i), logger.F("error", err))
		}
	}
	return nil
}

// updateFingerTableOn dispatches update_finger_table(s, i) to target,
// locally if target is this node, over RPC otherwise.
func (n *Node) updateFingerTableOn(ctx context.Context, target, s *domain.Node, i, depth int) error {
	if target.ID.Equal(n.self.ID) {
		return n.UpdateFingerTable(ctx, s, i, depth)
	}
	return n.rpc.UpdateFingerTable(ctx, target.Addr, s, i)
}

// UpdateFingerTable implements update_finger_table(s, i):
// if s belongs in this node's i'th finger slot, adopt it there and
// forward the same request to the predecessor (unless the predecessor
// is s itself, which would just echo the update back to where it came
// from). depth guards against an unbounded relay chain; it is always 0
// when entered from an inbound RPC and only grows through this node's
// own recursive forwarding.
func (n *Node) UpdateFingerTable(ctx context.Context, s *domain.Node, i int, depth int) error {
	if err := ctxutil.CheckContext(ctx); err != nil {
		return err
	}
	if depth >= maxUpdateFingerTableDepth {
		return nil
	}

	if s.ID.Equal(n.self.ID) {
		// A node never finger-points at itself via this path.
		return nil
	}
	cur := n.rt.Finger(i)
	if cur != nil && !s.ID.Between(n.self.ID, cur.ID, true) {
		// s is not closer to finger i's start than its current node;
		// nothing to do here, and nothing for our predecessor either.
		return nil
	}

	n.rt.SetFinger(i, s)

	pred := n.rt.Predecessor()
	if pred == nil || pred.ID.Equal(s.ID) {
		return nil
	}
	return n.updateFingerTableOn(ctx, pred, s, i, depth+1)
}

package node

import (
	"context"

	"ChordDHT/internal/domain"
	"ChordDHT/internal/logger"
)

// Disconnect implements disconnect_chord_node: stitch the
// ring around this node and hand off its entire local store to its
// successor. Stop (background workers) and releasing the RPC manager's
// connections are the caller's responsibility, since both are shared
// infrastructure this Node doesn't own exclusively.
func (n *Node) Disconnect(ctx context.Context) error {
	n.lifecycleMu.Lock()
	defer n.lifecycleMu.Unlock()

	succ := n.Successor()
	pred := n.Predecessor()

	if succ != nil && !succ.ID.Equal(n.self.ID) {
		if err := n.setPredecessorOn(ctx, succ, pred); err != nil {
			n.lgr.Warn("disconnect: failed telling successor our predecessor", logger.FNode("successor", succ), logger.F("error", err))
		}
	}
	if pred != nil && !pred.ID.Equal(n.self.ID) {
		if err := n.setSuccessorOn(ctx, pred, succ); err != nil {
			n.lgr.Warn("disconnect: failed telling predecessor our successor", logger.FNode("predecessor", pred), logger.F("error", err))
		}
	}

	if succ != nil && !succ.ID.Equal(n.self.ID) {
		all := n.store.Drain()
		if len(all) > 0 {
			if err := n.rpc.UpdateHashTableWithKeys(ctx, succ.Addr, all); err != nil {
				return err
			}
		}
	}

	n.disconnectedOnce.Do(func() { close(n.disconnectedCh) })
	n.lgr.Info("disconnected from ring")
	return nil
}

// setPredecessorOn and setSuccessorOn dispatch set_predecessor/
// set_successor to target, locally if target is this node, over RPC
// otherwise — the same local/remote split lookup.go and join.go use.
func (n *Node) setPredecessorOn(ctx context.Context, target, newPred *domain.Node) error {
	if target.ID.Equal(n.self.ID) {
		n.rt.SetPredecessor(newPred)
		return nil
	}
	return n.rpc.SetPredecessor(ctx, target.Addr, newPred)
}

func (n *Node) setSuccessorOn(ctx context.Context, target, newSucc *domain.Node) error {
	if target.ID.Equal(n.self.ID) {
		n.rt.SetSuccessor(newSucc)
		return nil
	}
	return n.rpc.SetSuccessor(ctx, target.Addr, newSucc)
}

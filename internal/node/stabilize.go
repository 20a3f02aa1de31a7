package node

import (
	"context"
	"math/rand"
	"time"

	"ChordDHT/internal/ctxutil"
	"ChordDHT/internal/domain"
	"ChordDHT/internal/logger"
)

// StartStabilizers launches the three background loops the incremental
// join path relies on to converge a ring that was only partially linked
// at join time: stabilize, fix_fingers, and
// check_predecessor, each on its own ticker. Call once per node, after
// Join. Stop cancels all three.
func (n *Node) StartStabilizers() {
	n.wg.Add(3)
	go n.runLoop(n.stabilizeInterval, n.tickStabilize)
	go n.runLoop(n.fixFingersInterval, n.tickFixFingers)
	go n.runLoop(n.checkPredecessorInterval, n.tickCheckPredecessor)
}

// Stop signals every background loop to exit and waits for them to
// finish. Safe to call multiple times.
func (n *Node) Stop() {
	n.stopOnce.Do(func() { close(n.stopCh) })
	n.wg.Wait()
}

// runLoop drives one worker. Each sleep is drawn uniformly from
// [T - T/4, T + T/4] rather than being a fixed T, so nodes started
// together don't tick in lock-step against each other forever.
func (n *Node) runLoop(interval time.Duration, tick func(ctx context.Context)) {
	defer n.wg.Done()
	t := time.NewTimer(jitter(interval))
	defer t.Stop()
	for {
		select {
		case <-n.stopCh:
			return
		case <-t.C:
			ctx, cancel := ctxutil.NewContext(
				ctxutil.WithTimeout(n.rpcTimeout),
				ctxutil.WithTrace(n.self.ID),
				ctxutil.WithHops(),
			)
			tick(ctx)
			if cancel != nil {
				cancel()
			}
			t.Reset(jitter(interval))
		}
	}
}

func jitter(d time.Duration) time.Duration {
	quarter := d / 4
	if quarter <= 0 {
		return d
	}
	return d - quarter + time.Duration(rand.Int63n(int64(2*quarter)))
}

func (n *Node) tickStabilize(ctx context.Context) {
	n.lifecycleMu.Lock()
	defer n.lifecycleMu.Unlock()
	if err := n.Stabilize(ctx); err != nil {
		n.lgr.Warn("stabilize failed", logger.F("error", err))
	}
}

func (n *Node) tickFixFingers(ctx context.Context) {
	if err := n.FixFingers(ctx); err != nil {
		n.lgr.Warn("fix_fingers failed", logger.F("error", err))
	}
}

func (n *Node) tickCheckPredecessor(ctx context.Context) {
	n.CheckPredecessor(ctx)
}

// Stabilize implements stabilize(): ask the successor for
// its predecessor, adopt it as the new successor if it lies strictly
// between this node and the current successor, then notify whoever the
// successor now is, and finally pull over any keys that now belong
// here.
func (n *Node) Stabilize(ctx context.Context) error {
	if err := ctxutil.CheckContext(ctx); err != nil {
		return err
	}
	succ := n.Successor()
	if succ == nil || succ.ID.Equal(n.self.ID) {
		return nil
	}

	x, err := n.rpc.Predecessor(ctx, succ.Addr)
	if err != nil {
		return err
	}
	if x != nil && x.ID.Between(n.plusOne(n.self.ID), succ.ID, false) {
		succ = x
		n.rt.SetSuccessor(succ)
	}

	if succ.ID.Equal(n.self.ID) {
		return nil
	}
	if err := n.rpc.Notify(ctx, succ.Addr, n.self); err != nil {
		n.lgr.Warn("stabilize: notify failed", logger.FNode("successor", succ), logger.F("error", err))
	}
	return n.UpdateHashTable(ctx)
}

// Notify implements notify(n'): n' thinks it might be our
// predecessor. Before clobbering the current predecessor, check whether
// it's still alive; a dead predecessor is cleared either way.
func (n *Node) Notify(ctx context.Context, caller *domain.Node) error {
	if err := ctxutil.CheckContext(ctx); err != nil {
		return err
	}
	pred := n.rt.Predecessor()

	if pred != nil && !pred.ID.Equal(caller.ID) {
		if err := n.rpc.Ping(ctx, pred.Addr); err != nil {
			n.lgr.Debug("notify: stale predecessor unreachable, clearing", logger.FNode("predecessor", pred))
			pred = nil
		}
	}

	if pred == nil || caller.ID.Between(n.plusOne(pred.ID), n.self.ID, false) {
		n.rt.SetPredecessor(caller)
		go n.pushKeysTo(caller)
	}
	return nil
}

// pushKeysTo asks caller (our new predecessor) to pull the keys it now
// owns. Run asynchronously from Notify so a slow or unreachable new
// predecessor never blocks the RPC that told us about it.
func (n *Node) pushKeysTo(caller *domain.Node) {
	ctx, cancel := context.WithTimeout(context.Background(), n.rpcTimeout)
	defer cancel()
	if caller.ID.Equal(n.self.ID) {
		_ = n.UpdateHashTable(ctx)
		return
	}
	if err := n.rpc.UpdateHashTable(ctx, caller.Addr); err != nil {
		n.lgr.Warn("notify: new predecessor failed to pull keys", logger.FNode("predecessor", caller), logger.F("error", err))
	}
}

// FixFingers implements fix_fingers(): refresh one
// randomly chosen finger slot (never slot 1, which stabilize already
// keeps current) per tick.
func (n *Node) FixFingers(ctx context.Context) error {
	if err := ctxutil.CheckContext(ctx); err != nil {
		return err
	}
	m := n.rt.M()
	if m <= 1 {
		return nil
	}
	i := 2 + rand.Intn(m-1)
	node, err := n.FindSuccessor(ctx, n.rt.Start(i))
	if err != nil {
		return err
	}
	n.rt.SetFinger(i, node)
	return nil
}

// CheckPredecessor implements check_predecessor(): ping
// the predecessor and clear it if it no longer answers. Errors are
// swallowed; an unreachable predecessor is the expected, handled case,
// not a failure worth propagating.
func (n *Node) CheckPredecessor(ctx context.Context) {
	pred := n.rt.Predecessor()
	if pred == nil || pred.ID.Equal(n.self.ID) {
		return
	}
	if err := n.rpc.Ping(ctx, pred.Addr); err != nil {
		n.lgr.Info("check_predecessor: predecessor unreachable, clearing", logger.FNode("predecessor", pred))
		n.rt.SetPredecessor(nil)
	}
}

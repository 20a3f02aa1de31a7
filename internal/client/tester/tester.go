package tester

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	clientv1 "ChordDHT/internal/api/client/v1"
	"ChordDHT/internal/bootstrap"
	"ChordDHT/internal/client"
	"ChordDHT/internal/client/tester/writer"
	"ChordDHT/internal/domain"
	"ChordDHT/internal/logger"

	"google.golang.org/grpc"
)

// Tester drives a configurable workload against a live ring: waves of
// concurrent put/get/lookup operations spread across every node the
// bootstrap backend can discover. Written keys are remembered so later
// get operations verify the ring still returns what was stored, which is
// what makes the tester usable as a churn harness (run it while joining
// and disconnecting nodes and watch for MISMATCH/NOT_FOUND rows).
type Tester struct {
	cfg     *Config
	logger  logger.Logger
	writer  writer.Writer
	boot    bootstrap.Bootstrap
	space   domain.Space
	started time.Time

	mu       sync.Mutex
	inserted []domain.KeyValue
}

// New builds a Tester. Run does the actual work.
func New(cfg *Config, lgr logger.Logger, w writer.Writer, boot bootstrap.Bootstrap, space domain.Space) *Tester {
	return &Tester{
		cfg:    cfg,
		logger: lgr,
		writer: w,
		space:  space,
		boot:   boot,
	}
}

// Run generates query waves at the configured rate until the simulation
// duration elapses or ctx is cancelled.
func (t *Tester) Run(ctx context.Context) error {
	t.logger.Info("Tester started", logger.F("duration", t.cfg.Simulation.Duration))
	t.started = time.Now()
	endTime := t.started.Add(t.cfg.Simulation.Duration)
	interval := time.Duration(float64(time.Second) / t.cfg.Query.Rate)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for time.Now().Before(endTime) {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := t.runQueryWave(ctx); err != nil {
				t.logger.Error("query wave failed", logger.F("err", err))
			}
		}
	}

	t.logger.Info("Tester finished", logger.F("keys_written", t.insertedCount()))
	return nil
}

// runQueryWave fires a random number of parallel workers, each issuing
// one operation against a randomly chosen node.
func (t *Tester) runQueryWave(ctx context.Context) error {
	nodes, err := t.boot.Discover(ctx)
	if err != nil {
		return fmt.Errorf("bootstrap discovery failed: %w", err)
	}
	if len(nodes) == 0 {
		t.logger.Warn("no nodes discovered")
		return nil
	}

	p := randomInt(t.cfg.Query.Parallelism.MinWorkers, t.cfg.Query.Parallelism.MaxWorkers)
	t.logger.Debug("starting query wave",
		logger.F("parallel", p),
		logger.F("nodes", len(nodes)),
	)

	var wg sync.WaitGroup
	wg.Add(p)
	for i := 0; i < p; i++ {
		go func() {
			defer wg.Done()
			select {
			case <-ctx.Done():
			default:
				t.doOperation(nodes)
			}
		}()
	}
	wg.Wait()
	return nil
}

// errSkipRow marks an outcome that should not be recorded, e.g. an
// unreachable node: those rows would measure the tester's own luck in
// node selection, not the ring.
var errSkipRow = errors.New("skip row")

// doOperation picks an operation per the configured workload weights and
// runs it against a random node.
func (t *Tester) doOperation(nodes []string) {
	addr := nodes[rand.Intn(len(nodes))]

	c, conn, err := client.Connect(addr)
	if err != nil {
		t.logger.Warn("failed to connect to node", logger.F("node", addr), logger.F("err", err))
		return
	}
	defer func(conn *grpc.ClientConn) {
		if err := conn.Close(); err != nil {
			t.logger.Warn("failed to close connection", logger.F("node", addr), logger.F("err", err))
		}
	}(conn)

	ctx, cancel := context.WithTimeout(context.Background(), t.cfg.Query.Timeout)
	defer cancel()

	var (
		op     string
		result string
		delay  time.Duration
	)
	w := t.cfg.Query.Workload
	switch pick := rand.Intn(w.PutWeight + w.GetWeight + w.LookupWeight); {
	case pick < w.PutWeight:
		op = "put"
		result, delay, err = t.doPut(ctx, c)
	case pick < w.PutWeight+w.GetWeight:
		op = "get"
		result, delay, err = t.doGet(ctx, c)
	default:
		op = "lookup"
		result, delay, err = t.doLookup(ctx, c)
	}
	if errors.Is(err, errSkipRow) {
		return
	}

	t.logger.Info("operation result",
		logger.F("op", op),
		logger.F("node", addr),
		logger.F("result", result),
		logger.F("delay_ms", delay.Milliseconds()),
	)
	if err := t.writer.WriteRow(op, addr, result, delay); err != nil {
		t.logger.Warn("failed to write CSV row", logger.F("err", err))
	}
}

// doPut writes a fresh random key and remembers it for later read-back.
func (t *Tester) doPut(ctx context.Context, c clientv1.ClientAPIClient) (string, time.Duration, error) {
	key, err := randomHexKey()
	if err != nil {
		t.logger.Warn("failed to generate random key", logger.F("err", err))
		return "", 0, errSkipRow
	}
	value := "v-" + key[:8]

	delay, err := client.Put(ctx, c, key, value)
	switch {
	case err == nil:
		t.rememberKey(domain.KeyValue{Key: key, Value: value})
		return "SUCCESS", delay, nil
	case errors.Is(err, client.ErrUnavailable):
		return "", delay, errSkipRow
	case errors.Is(err, client.ErrDeadlineExceeded):
		return "TIMEOUT", delay, nil
	default:
		return fmt.Sprintf("ERROR_%v", err), delay, nil
	}
}

// doGet reads back a previously written key and checks the value. Until
// the first put lands there is nothing to read, so the row is skipped.
func (t *Tester) doGet(ctx context.Context, c clientv1.ClientAPIClient) (string, time.Duration, error) {
	kv, ok := t.randomInsertedKey()
	if !ok {
		return "", 0, errSkipRow
	}

	value, found, delay, err := client.Get(ctx, c, kv.Key)
	switch {
	case errors.Is(err, client.ErrUnavailable):
		return "", delay, errSkipRow
	case errors.Is(err, client.ErrDeadlineExceeded):
		return "TIMEOUT", delay, nil
	case err != nil:
		return fmt.Sprintf("ERROR_%v", err), delay, nil
	case !found:
		return "NOT_FOUND", delay, nil
	case value != kv.Value:
		return "MISMATCH", delay, nil
	default:
		return "SUCCESS", delay, nil
	}
}

// doLookup resolves the owner of a random identifier without touching
// any stored data, exercising the routing path alone.
func (t *Tester) doLookup(ctx context.Context, c clientv1.ClientAPIClient) (string, time.Duration, error) {
	seed, err := randomHexKey()
	if err != nil {
		t.logger.Warn("failed to generate random key", logger.F("err", err))
		return "", 0, errSkipRow
	}
	key := t.space.NewIdFromString(seed).ToHexString(true)

	_, delay, err := client.Lookup(ctx, c, key)
	switch {
	case err == nil:
		return "SUCCESS", delay, nil
	case errors.Is(err, client.ErrUnavailable):
		return "", delay, errSkipRow
	case errors.Is(err, client.ErrDeadlineExceeded):
		return "TIMEOUT", delay, nil
	case errors.Is(err, client.ErrNotFound):
		return "NOT_FOUND", delay, nil
	default:
		return fmt.Sprintf("ERROR_%v", err), delay, nil
	}
}

// randomInt returns a random integer between min and max (inclusive).
func randomInt(min, max int) int {
	if min >= max {
		return min
	}
	return rand.Intn(max-min+1) + min
}

// randomHexKey produces a random 32-char hex string, long enough that
// collisions across a run are not a practical concern.
func randomHexKey() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

func (t *Tester) insertedCount() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.inserted)
}

func (t *Tester) rememberKey(kv domain.KeyValue) {
	t.mu.Lock()
	t.inserted = append(t.inserted, kv)
	t.mu.Unlock()
}

func (t *Tester) randomInsertedKey() (domain.KeyValue, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if len(t.inserted) == 0 {
		return domain.KeyValue{}, false
	}
	return t.inserted[rand.Intn(len(t.inserted))], true
}

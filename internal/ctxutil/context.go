package ctxutil

import (
	"context"
	"errors"
	"time"

	"ChordDHT/internal/domain"
	"ChordDHT/internal/trace"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// hopsKey is the context key for the per-lookup hop counter. Unexported
// struct keys cannot collide with other packages' context values.
type hopsKey struct{}

// ContextOption configures NewContext. Options compose.
type ContextOption func(*ctxConfig)

type ctxConfig struct {
	withTrace bool
	withHops  bool
	nodeID    domain.ID
	timeout   time.Duration
}

// WithTrace attaches a fresh trace id, derived from nodeID, to the
// created context. Lookup spans started downstream pick it up.
func WithTrace(nodeID domain.ID) ContextOption {
	return func(cfg *ctxConfig) {
		cfg.withTrace = true
		cfg.nodeID = nodeID
	}
}

// WithTimeout bounds the created context. The caller must defer the
// cancel function NewContext returns.
func WithTimeout(d time.Duration) ContextOption {
	return func(cfg *ctxConfig) {
		cfg.timeout = d
	}
}

// WithHops seeds a hop counter at 0, so each routing step on the lookup
// path can record how far the request has already travelled.
func WithHops() ContextOption {
	return func(cfg *ctxConfig) {
		cfg.withHops = true
	}
}

// NewContext builds a context for an outbound operation from the given
// options. The returned cancel function is nil unless WithTimeout was
// used.
func NewContext(opts ...ContextOption) (context.Context, context.CancelFunc) {
	cfg := &ctxConfig{}
	for _, o := range opts {
		o(cfg)
	}

	ctx := context.Background()
	var cancel context.CancelFunc
	if cfg.timeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, cfg.timeout)
	}
	if cfg.withTrace {
		ctx, _ = trace.AttachTraceID(ctx, cfg.nodeID)
	}
	if cfg.withHops {
		ctx = context.WithValue(ctx, hopsKey{}, 0)
	}
	return ctx, cancel
}

// TraceIDFromContext returns the trace id carried by ctx, or "" if none.
func TraceIDFromContext(ctx context.Context) string {
	return trace.GetTraceID(ctx)
}

// EnsureTraceID returns ctx with a trace id attached, generating one
// from nodeID only when ctx doesn't already carry one. Inbound RPC
// handlers call this so a request keeps its originator's trace id across
// every hop.
func EnsureTraceID(ctx context.Context, nodeID domain.ID) context.Context {
	if trace.GetTraceID(ctx) == "" {
		ctx, _ = trace.AttachTraceID(ctx, nodeID)
	}
	return ctx
}

// HopsFromContext returns the hop counter, or -1 when ctx carries none.
func HopsFromContext(ctx context.Context) int {
	if hops, ok := ctx.Value(hopsKey{}).(int); ok {
		return hops
	}
	return -1
}

// IncHops returns ctx with its hop counter advanced by one. A context
// without a counter (or with the -1 "don't count" sentinel) is returned
// unchanged.
func IncHops(ctx context.Context) context.Context {
	hops, ok := ctx.Value(hopsKey{}).(int)
	if !ok || hops == -1 {
		return ctx
	}
	return context.WithValue(ctx, hopsKey{}, hops+1)
}

// CheckContext maps an expired or cancelled ctx to the matching gRPC
// status error, and returns nil while ctx is still live. RPC handlers
// and the lookup loop call it before doing any work on a request.
func CheckContext(ctx context.Context) error {
	switch err := ctx.Err(); {
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, "request was canceled by client")
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, "request deadline exceeded")
	default:
		return nil
	}
}

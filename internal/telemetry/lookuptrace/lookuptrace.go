// Package lookuptrace spans the lookup path and only the lookup path:
// a client Lookup and every FindSuccessor hop it fans out into share one
// trace, while stabilization chatter stays out of the tracing backend.
package lookuptrace

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
)

const (
	lookupMetaKey = "x-chord-lookup"
	tracerName    = "chord/lookuptrace"
)

var tracer = otel.Tracer(tracerName)

// WithLookup marks ctx's outgoing metadata as belonging to a lookup, so
// downstream hops know to keep spanning.
func WithLookup(ctx context.Context) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	md.Set(lookupMetaKey, "true")
	return metadata.NewOutgoingContext(ctx, md)
}

// IsLookup reports whether the inbound request carries the lookup mark.
func IsLookup(ctx context.Context) bool {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return false
	}
	values := md.Get(lookupMetaKey)
	return len(values) > 0 && values[0] == "true"
}

// inLookup reports whether ctx belongs to a lookup from either side:
// the inbound mark (a hop that arrived marked) or the outbound mark
// (the entry node, whose ServerInterceptor marked the context before
// the first FindSuccessor fan-out).
func inLookup(ctx context.Context) bool {
	if IsLookup(ctx) {
		return true
	}
	md, ok := metadata.FromOutgoingContext(ctx)
	if !ok {
		return false
	}
	values := md.Get(lookupMetaKey)
	return len(values) > 0 && values[0] == "true"
}

// ServerInterceptor opens a server span for client-facing Lookup calls,
// and for FindSuccessor hops that arrived already marked as part of a
// lookup. Everything else passes through untraced.
func ServerInterceptor() grpc.UnaryServerInterceptor {
	propagator := otel.GetTextMapPropagator()

	return func(
		ctx context.Context,
		req interface{},
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (interface{}, error) {
		if md, ok := metadata.FromIncomingContext(ctx); ok {
			ctx = propagator.Extract(ctx, metadataCarrier(md))
		}

		method := info.FullMethod
		traced := strings.Contains(method, "Lookup") ||
			(strings.Contains(method, "FindSuccessor") && IsLookup(ctx))
		if !traced {
			return handler(ctx, req)
		}

		ctx = WithLookup(ctx)
		ctx, span := tracer.Start(ctx, method, trace.WithSpanKind(trace.SpanKindServer))
		defer span.End()
		return handler(ctx, req)
	}
}

// ClientInterceptor opens a client span on outbound calls made inside a
// lookup, injecting the OTel context into the metadata so the receiving
// node's ServerInterceptor can continue the same trace.
func ClientInterceptor() grpc.UnaryClientInterceptor {
	propagator := otel.GetTextMapPropagator()

	return func(
		ctx context.Context,
		method string,
		req, reply interface{},
		cc *grpc.ClientConn,
		invoker grpc.UnaryInvoker,
		opts ...grpc.CallOption,
	) error {
		if !inLookup(ctx) {
			return invoker(ctx, method, req, reply, cc, opts...)
		}

		ctx = WithLookup(ctx)
		ctx, span := tracer.Start(ctx, method, trace.WithSpanKind(trace.SpanKindClient))
		defer span.End()

		md, _ := metadata.FromOutgoingContext(ctx)
		md = md.Copy()
		propagator.Inject(ctx, metadataCarrier(md))
		ctx = metadata.NewOutgoingContext(ctx, md)

		return invoker(ctx, method, req, reply, cc, opts...)
	}
}

// metadataCarrier adapts gRPC metadata to OTel's TextMapCarrier.
type metadataCarrier metadata.MD

func (mc metadataCarrier) Get(key string) string {
	vals := metadata.MD(mc).Get(key)
	if len(vals) == 0 {
		return ""
	}
	return vals[0]
}

func (mc metadataCarrier) Set(key, value string) {
	metadata.MD(mc).Set(key, value)
}

func (mc metadataCarrier) Keys() []string {
	out := make([]string, 0, len(mc))
	for k := range mc {
		out = append(out, k)
	}
	return out
}

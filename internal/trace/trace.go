package trace

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"ChordDHT/internal/domain"

	"github.com/oklog/ulid/v2"
)

type traceKey struct{}

// GenerateTraceID creates a globally unique traceID in the format:
//
//	<nodeID>-<ULID>
func GenerateTraceID(nodeID string) string {
	t := time.Now().UTC()
	entropy := ulid.Monotonic(rand.New(rand.NewSource(t.UnixNano())), 0)
	id := ulid.MustNew(ulid.Timestamp(t), entropy)
	return fmt.Sprintf("%s-%s", nodeID, id.String())
}

// AttachTraceID generates and inserts a traceID into the context,
// derived from the given nodeID. Returns the new context and the traceID.
func AttachTraceID(ctx context.Context, nodeID domain.ID) (context.Context, string) {
	traceID := GenerateTraceID(nodeID.ToHexString(true))
	return context.WithValue(ctx, traceKey{}, traceID), traceID
}

// GetTraceID retrieves the traceID from the context.
// Returns "" if not present.
func GetTraceID(ctx context.Context) string {
	if v := ctx.Value(traceKey{}); v != nil {
		if id, ok := v.(string); ok && id != "" {
			return id
		}
	}
	return ""
}

package telemetry

import (
	"ChordDHT/internal/domain"

	"go.opentelemetry.io/otel/attribute"
)

// IdAttributes renders a ring identifier as span attributes in all three
// bases; with small identifier spaces (m = 3 in the demo configs) the
// decimal form is the one a human actually reads.
func IdAttributes(prefix string, id domain.ID) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.String(prefix+".dec", id.ToBigInt().String()),
		attribute.String(prefix+".hex", id.ToHexString(true)),
		attribute.String(prefix+".bin", id.ToBinaryString(true)),
	}
}

// Package api provides the wire encoding shared by every RPC service in
// this module. The original protobuf/.proto toolchain is not available
// in this environment, so the usual generated marshal/unmarshal code is
// replaced by a small gob-based codec registered under the same name
// ("proto") gRPC looks up by default — every service in internal/api/*
// rides on it transparently, through plain Go structs instead of
// generated message types.
package api

import (
	"bytes"
	"encoding/gob"
	"fmt"

	"google.golang.org/grpc/encoding"
)

func init() {
	encoding.RegisterCodec(gobCodec{})
}

// gobCodec implements google.golang.org/grpc/encoding.Codec.
type gobCodec struct{}

// Name intentionally collides with protobuf's registered codec name:
// gRPC looks up the codec for the "proto" content-subtype used by every
// call in this module, so registering under that name makes the codec
// apply without any call-site changes.
func (gobCodec) Name() string { return "proto" }

func (gobCodec) Marshal(v any) ([]byte, error) {
	if _, ok := v.(*Empty); ok {
		// gob rejects any struct with no exported fields, Empty included;
		// an argument-less message is simply zero bytes on the wire.
		return nil, nil
	}
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (gobCodec) Unmarshal(data []byte, v any) error {
	if _, ok := v.(*Empty); ok {
		if len(data) != 0 {
			return fmt.Errorf("api: %d unexpected bytes for empty message", len(data))
		}
		return nil
	}
	return gob.NewDecoder(bytes.NewReader(data)).Decode(v)
}

// Empty is the argument/return value for RPCs that carry no data. It
// exists (instead of protobuf's emptypb.Empty) so the codec above can
// recognize argument-less messages by type; see Marshal.
type Empty struct{}

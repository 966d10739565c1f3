package wire

import "fmt"

// Codec plugs the wire types into gRPC. It is named "proto" because the
// bytes it produces are plain protobuf, so ordinary protobuf clients can
// talk to the server.
type Codec struct{}

func (Codec) Name() string {
	return "proto"
}

func (Codec) Marshal(v any) ([]byte, error) {
	m, ok := v.(Marshaler)
	if !ok {
		return nil, fmt.Errorf("wire: cannot marshal %T", v)
	}
	return m.MarshalWire()
}

func (Codec) Unmarshal(data []byte, v any) error {
	u, ok := v.(Unmarshaler)
	if !ok {
		return fmt.Errorf("wire: cannot unmarshal into %T", v)
	}
	return u.UnmarshalWire(data)
}

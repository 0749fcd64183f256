package service

import (
	"encoding/json"

	"connectrpc.com/connect"
)

// jsonCodec marshals plain Go request/response structs. It replaces Connect's
// default JSON codecs, which only accept protobuf messages.
type jsonCodec struct {
	name string
}

var _ connect.Codec = jsonCodec{}

func (c jsonCodec) Name() string { return c.name }

func (jsonCodec) Marshal(msg any) ([]byte, error) {
	return json.Marshal(msg)
}

func (jsonCodec) Unmarshal(data []byte, msg any) error {
	if len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, msg)
}

// WithJSON is the codec option every handler and client in this package uses.
// Handlers key codecs by content subtype, so the charset form browsers send
// needs its own entry. Clients keep the last codec, plain "json".
func WithJSON() connect.Option {
	return connect.WithOptions(
		connect.WithCodec(jsonCodec{name: "json; charset=utf-8"}),
		connect.WithCodec(jsonCodec{name: "json"}),
	)
}

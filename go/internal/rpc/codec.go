// Package rpc carries the connect options shared by every service: messages
// are plain Go structs encoded as JSON.
package rpc

import (
	"encoding/json"

	"connectrpc.com/connect"
)

const codecName = "json"

type jsonCodec struct{}

func (jsonCodec) Name() string { return codecName }

func (jsonCodec) Marshal(msg any) ([]byte, error) {
	return json.Marshal(msg)
}

// MarshalStable lets clients send read-only calls as GET requests.
// encoding/json already sorts map keys.
func (c jsonCodec) MarshalStable(msg any) ([]byte, error) {
	return c.Marshal(msg)
}

func (jsonCodec) IsBinary() bool { return false }

func (jsonCodec) Unmarshal(data []byte, msg any) error {
	if len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, msg)
}

// HandlerOptions returns the options every handler is built with.
func HandlerOptions(extra ...connect.HandlerOption) []connect.HandlerOption {
	return append([]connect.HandlerOption{connect.WithCodec(jsonCodec{})}, extra...)
}

// ClientOptions returns options for a connect client talking to these
// services. The client sends application/json since the codec is named json.
func ClientOptions(extra ...connect.ClientOption) []connect.ClientOption {
	return append([]connect.ClientOption{connect.WithCodec(jsonCodec{})}, extra...)
}

// ReadOnlyHandlerOptions marks a procedure as free of side effects so
// clients may call it with HTTP GET.
func ReadOnlyHandlerOptions(extra ...connect.HandlerOption) []connect.HandlerOption {
	return HandlerOptions(append([]connect.HandlerOption{
		connect.WithIdempotency(connect.IdempotencyNoSideEffects),
	}, extra...)...)
}

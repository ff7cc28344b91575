package transport

import (
	"encoding/json"
	"errors"
)

// ErrEmptyMessage is returned when a reply carries no bytes at all. Every
// message, even an empty one, encodes to at least "{}".
var ErrEmptyMessage = errors.New("empty message")

// Codec marshals request and reply messages. Its method set matches
// grpc's encoding.Codec so one value serves both transports.
type Codec interface {
	Name() string
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
}

// JSONCodec encodes messages with encoding/json. Message types follow the
// protobuf JSON mapping through their struct tags.
type JSONCodec struct{}

func (JSONCodec) Name() string {
	return "json"
}

func (JSONCodec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

func (JSONCodec) Unmarshal(data []byte, v any) error {
	if len(data) == 0 {
		return ErrEmptyMessage
	}
	return json.Unmarshal(data, v)
}

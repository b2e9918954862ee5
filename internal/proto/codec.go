package proto

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrDecode marks a frame that is not a valid protocol envelope.
// Callers log it and drop the frame; it never tears down the connection.
var ErrDecode = errors.New("malformed frame")

// Decode parses a single text frame into an envelope.
func Decode(data []byte) (Inbound, error) {
	var in Inbound
	if err := json.Unmarshal(data, &in); err != nil {
		return Inbound{}, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	if in.Type == "" {
		return Inbound{}, fmt.Errorf("%w: missing type", ErrDecode)
	}
	return in, nil
}

// DecodePayload parses the envelope payload into the type-specific shape.
func DecodePayload(in Inbound, dst any) error {
	if len(in.Payload) == 0 {
		return fmt.Errorf("%w: %s without payload", ErrDecode, in.Type)
	}
	if err := json.Unmarshal(in.Payload, dst); err != nil {
		return fmt.Errorf("%w: %s payload: %v", ErrDecode, in.Type, err)
	}
	return nil
}

// Encode serializes an outbound envelope into a single text frame.
func Encode(out Outbound) ([]byte, error) {
	data, err := json.Marshal(out)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", out.Type, err)
	}
	return data, nil
}

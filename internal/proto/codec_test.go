package proto

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestDecodeValidEnvelope(t *testing.T) {
	in, err := Decode([]byte(`{"type":"ADD_PERSON","payload":{"name":"Bob"}}`))
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if in.Type != TypeAddPerson {
		t.Fatalf("unexpected type: %s", in.Type)
	}

	var payload AddPersonPayload
	if err := DecodePayload(in, &payload); err != nil {
		t.Fatalf("decode payload: %v", err)
	}
	if payload.Name != "Bob" {
		t.Fatalf("unexpected name: %q", payload.Name)
	}
}

func TestDecodeMalformedFrames(t *testing.T) {
	frames := []string{
		"",
		"not json",
		"[1,2,3]",
		`{"payload":{"name":"x"}}`,
		`{"type":""}`,
	}
	for _, frame := range frames {
		if _, err := Decode([]byte(frame)); !errors.Is(err, ErrDecode) {
			t.Errorf("frame %q: expected ErrDecode, got %v", frame, err)
		}
	}
}

func TestDecodePayloadMismatch(t *testing.T) {
	in, err := Decode([]byte(`{"type":"UPDATE_COUNT","payload":{"id":"not-a-number"}}`))
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	var payload UpdateCountPayload
	if err := DecodePayload(in, &payload); !errors.Is(err, ErrDecode) {
		t.Fatalf("expected ErrDecode, got %v", err)
	}
}

func TestEncodeSyncState(t *testing.T) {
	frame, err := Encode(Outbound{
		Type: TypeSyncState,
		Payload: SyncStatePayload{
			People:             []Person{{ID: 1, Name: "Ann", Count: 2}},
			AuthenticatedCount: 1,
			ClientID:           "c1",
		},
	})
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}

	var round struct {
		Type    string          `json:"type"`
		Payload json.RawMessage `json:"payload"`
	}
	if err := json.Unmarshal(frame, &round); err != nil {
		t.Fatalf("unmarshal frame: %v", err)
	}
	if round.Type != TypeSyncState {
		t.Fatalf("unexpected type: %s", round.Type)
	}
	var payload SyncStatePayload
	if err := json.Unmarshal(round.Payload, &payload); err != nil {
		t.Fatalf("unmarshal payload: %v", err)
	}
	if payload.ClientID != "c1" || len(payload.People) != 1 || payload.People[0].Name != "Ann" {
		t.Fatalf("unexpected payload: %+v", payload)
	}
}
